// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avalanche

import (
	"sort"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/container/apbf"
	"github.com/decred/dcrd/container/lru"
	"github.com/decred/dcrd/wire"
)

// validEntry additionally carries the peer id the proof was promoted to,
// so a valid-pool lookup doesn't require a secondary peer-table scan.
type validEntry struct {
	proof  *Proof
	peerID PeerID
}

// conflictEntry carries the set of stake outpoints that collide with a
// valid-pool entry, so the façade can find every conflicting-pool entry
// touching a given stake without rescanning every proof's stake list.
type conflictEntry struct {
	proof        *Proof
	conflictKeys map[wire.OutPoint]struct{}
}

// orphanEntry is ordered by insertion sequence rather than wall time, so
// ordering survives even when the clock does not advance between inserts.
type orphanEntry struct {
	proof    *Proof
	inserted uint64
}

// proofPools holds the three mutually exclusive collections of known
// proofs described in §4.2: valid, conflicting, and orphan. A proof id
// exists in at most one of the three at any time; the façade is
// responsible for enforcing that invariant across operations.
type proofPools struct {
	valid           map[chainhash.Hash]*validEntry
	validByOutpoint map[wire.OutPoint]chainhash.Hash

	conflicting    map[chainhash.Hash]*conflictEntry
	conflictingCap int

	orphan    map[chainhash.Hash]*orphanEntry
	orphanCap int
	orphanSeq uint64

	// blacklist remembers proof ids rejected with the INVALIDATE mode so
	// they cannot be re-registered. blacklistGuard is a probabilistic
	// fast-reject filter checked before the exact (and bounded) lru map,
	// avoiding an LRU touch for the overwhelmingly common case of a proof
	// id that was never blacklisted.
	blacklist      *lru.Map[chainhash.Hash, time.Time]
	blacklistGuard *apbf.Filter
}

func newProofPools(conflictingCap, orphanCap, blacklistCap int) *proofPools {
	if blacklistCap < 1 {
		blacklistCap = 1
	}
	return &proofPools{
		valid:           make(map[chainhash.Hash]*validEntry),
		validByOutpoint: make(map[wire.OutPoint]chainhash.Hash),
		conflicting:     make(map[chainhash.Hash]*conflictEntry),
		conflictingCap:  conflictingCap,
		orphan:          make(map[chainhash.Hash]*orphanEntry),
		orphanCap:       orphanCap,
		blacklist:       lru.NewMap[chainhash.Hash, time.Time](uint32(blacklistCap)),
		blacklistGuard:  apbf.NewFilter(uint32(blacklistCap), 0.01),
	}
}

func (p *proofPools) isBlacklisted(id chainhash.Hash) bool {
	if !p.blacklistGuard.Contains(id[:]) {
		return false
	}
	_, ok := p.blacklist.Get(id)
	return ok
}

func (p *proofPools) blacklistAdd(id chainhash.Hash, now time.Time) {
	p.blacklistGuard.Add(id[:])
	p.blacklist.Put(id, now)
}

// locate reports which of the three pools, if any, currently hold id.
func (p *proofPools) locate(id chainhash.Hash) (inValid, inConflicting, inOrphan bool) {
	_, inValid = p.valid[id]
	_, inConflicting = p.conflicting[id]
	_, inOrphan = p.orphan[id]
	return
}

func (p *proofPools) exists(id chainhash.Hash) bool {
	v, c, o := p.locate(id)
	return v || c || o
}

// conflictsWithValid returns every valid-pool proof whose stake outpoints
// intersect the candidate's, excluding the candidate itself.
func (p *proofPools) conflictsWithValid(proof *Proof) []*Proof {
	seen := make(map[chainhash.Hash]*Proof)
	for _, st := range proof.Stakes {
		id, ok := p.validByOutpoint[st.Outpoint]
		if !ok || id == proof.ProofID {
			continue
		}
		if _, already := seen[id]; !already {
			seen[id] = p.valid[id].proof
		}
	}
	out := make([]*Proof, 0, len(seen))
	for _, pr := range seen {
		out = append(out, pr)
	}
	return out
}

func (p *proofPools) insertValid(proof *Proof, peerID PeerID) {
	p.valid[proof.ProofID] = &validEntry{proof: proof, peerID: peerID}
	for _, st := range proof.Stakes {
		p.validByOutpoint[st.Outpoint] = proof.ProofID
	}
}

func (p *proofPools) removeValid(id chainhash.Hash) *validEntry {
	e, ok := p.valid[id]
	if !ok {
		return nil
	}
	delete(p.valid, id)
	for _, st := range e.proof.Stakes {
		if cur, ok := p.validByOutpoint[st.Outpoint]; ok && cur == id {
			delete(p.validByOutpoint, st.Outpoint)
		}
	}
	return e
}

// conflictKeysFor returns the outpoints proof shares with any proof in
// against.
func conflictKeysFor(proof *Proof, against []*Proof) map[wire.OutPoint]struct{} {
	againstOutpoints := make(map[wire.OutPoint]struct{})
	for _, a := range against {
		for _, st := range a.Stakes {
			againstOutpoints[st.Outpoint] = struct{}{}
		}
	}
	keys := make(map[wire.OutPoint]struct{})
	for _, st := range proof.Stakes {
		if _, ok := againstOutpoints[st.Outpoint]; ok {
			keys[st.Outpoint] = struct{}{}
		}
	}
	return keys
}

// worstTouching returns the worst (by IsBetter) conflicting-pool entry
// whose conflict keys intersect keys, i.e. the current occupant of the
// stake-conflict group the candidate is entering.
func (p *proofPools) worstTouching(keys map[wire.OutPoint]struct{}) (chainhash.Hash, *Proof) {
	var worstID chainhash.Hash
	var worst *Proof
	for id, e := range p.conflicting {
		touches := false
		for op := range e.conflictKeys {
			if _, ok := keys[op]; ok {
				touches = true
				break
			}
		}
		if !touches {
			continue
		}
		if worst == nil || IsBetter(worst, e.proof) {
			worstID, worst = id, e.proof
		}
	}
	return worstID, worst
}

func (p *proofPools) worstConflicting() (chainhash.Hash, *Proof) {
	var worstID chainhash.Hash
	var worst *Proof
	for id, e := range p.conflicting {
		if worst == nil || IsBetter(worst, e.proof) {
			worstID, worst = id, e.proof
		}
	}
	return worstID, worst
}

// insertConflicting inserts proof into the conflicting pool under the
// stake-conflict group identified by keys.
//
// If an existing entry already touches the same keys, candidate and
// occupant are compared directly: the loser is discarded (evicted, if it
// was the occupant; rejected outright, if it was the candidate) and the
// winner occupies the group. This keeps at most one contender per
// overlapping stake group, per §4.6 step 5 and scenarios S3/S4.
//
// Only when no entry touches the same keys does the pool-wide size cap
// come into play, evicting the globally worst entry to make room.
func (p *proofPools) insertConflicting(proof *Proof, keys map[wire.OutPoint]struct{}) (evicted *Proof, inserted bool) {
	if touchingID, touching := p.worstTouching(keys); touching != nil {
		if !IsBetter(proof, touching) {
			return nil, false
		}
		delete(p.conflicting, touchingID)
		p.conflicting[proof.ProofID] = &conflictEntry{proof: proof, conflictKeys: keys}
		return touching, true
	}

	if p.conflictingCap > 0 && len(p.conflicting) >= p.conflictingCap {
		worstID, worst := p.worstConflicting()
		if worst == nil || !IsBetter(proof, worst) {
			return nil, false
		}
		delete(p.conflicting, worstID)
		p.conflicting[proof.ProofID] = &conflictEntry{proof: proof, conflictKeys: keys}
		return worst, true
	}

	p.conflicting[proof.ProofID] = &conflictEntry{proof: proof, conflictKeys: keys}
	return nil, true
}

func (p *proofPools) removeConflicting(id chainhash.Hash) *conflictEntry {
	e, ok := p.conflicting[id]
	if !ok {
		return nil
	}
	delete(p.conflicting, id)
	return e
}

// conflictingTouching returns every conflicting-pool entry whose conflict
// keys intersect outpoints.
func (p *proofPools) conflictingTouching(outpoints map[wire.OutPoint]struct{}) []*Proof {
	var out []*Proof
	for _, e := range p.conflicting {
		for op := range e.conflictKeys {
			if _, ok := outpoints[op]; ok {
				out = append(out, e.proof)
				break
			}
		}
	}
	return out
}

func (p *proofPools) insertOrphan(proof *Proof) {
	if p.orphanCap > 0 && len(p.orphan) >= p.orphanCap {
		var oldestID chainhash.Hash
		var oldestSeq uint64
		first := true
		for id, e := range p.orphan {
			if first || e.inserted < oldestSeq {
				oldestID, oldestSeq, first = id, e.inserted, false
			}
		}
		if !first {
			delete(p.orphan, oldestID)
		}
	}
	p.orphanSeq++
	p.orphan[proof.ProofID] = &orphanEntry{proof: proof, inserted: p.orphanSeq}
}

func (p *proofPools) removeOrphan(id chainhash.Hash) *orphanEntry {
	e, ok := p.orphan[id]
	if !ok {
		return nil
	}
	delete(p.orphan, id)
	return e
}

// orphansOldestFirst returns every orphan-pool proof ordered by insertion
// time, oldest first.
func (p *proofPools) orphansOldestFirst() []*Proof {
	type kv struct {
		seq   uint64
		proof *Proof
	}
	items := make([]kv, 0, len(p.orphan))
	for _, e := range p.orphan {
		items = append(items, kv{e.inserted, e.proof})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].seq < items[j].seq })
	out := make([]*Proof, len(items))
	for i, it := range items {
		out[i] = it.proof
	}
	return out
}
