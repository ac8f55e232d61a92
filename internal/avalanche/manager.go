// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avalanche

import (
	"io"
	"sync"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/internal/uniform"
	"github.com/decred/dcrd/wire"
)

// RegisterMode controls how RegisterProof resolves a stake conflict.
type RegisterMode int

const (
	// Polite only swaps a candidate in for its conflicts when the
	// candidate beats every one of them under IsBetter.
	Polite RegisterMode = iota

	// ForceAccept always swaps the candidate in regardless of the
	// comparison outcome, bypassing both the cooldown check and the
	// enable_proof_replacement gate. It is intended for re-submitting a
	// proof that a local operator has chosen to prioritize, and for the
	// chain listener's own re-validation cascade.
	ForceAccept
)

// RejectMode controls whether RejectProof remembers the proof id to
// prevent it from being re-registered.
type RejectMode int

const (
	// Default simply removes the proof from whatever pool holds it.
	Default RejectMode = iota

	// Invalidate additionally blacklists the proof id.
	Invalidate
)

// Config holds the tunables named in §6.
type Config struct {
	// ConflictCooldown is the minimum interval between two accepted
	// conflicts against the same peer. Zero disables the cooldown.
	ConflictCooldown time.Duration

	// EnableProofReplacement gates the §4.6 step-5 "better than all"
	// swap. When false, a candidate that beats every conflicting valid
	// peer is still only ever stored in the conflicting pool.
	EnableProofReplacement bool

	// MaxValidPeers caps the number of simultaneously live peers. Zero
	// means unbounded.
	MaxValidPeers int

	// MaxConflictingProofs caps the conflicting pool's overall size, used
	// only once no directly-touching entry resolves the insert. Zero
	// means unbounded.
	MaxConflictingProofs int

	// MaxOrphanProofs caps the orphan pool's size. Zero means unbounded.
	MaxOrphanProofs int

	// MaxBlacklist caps the number of blacklisted proof ids remembered at
	// once, and sizes the probabilistic pre-filter guarding it.
	MaxBlacklist int
}

// ManagerStats is a point-in-time snapshot of the façade's bookkeeping
// counters, intended for periodic logging (see internal/progresslog).
type ManagerStats struct {
	ValidPeers        int
	ConflictingProofs int
	OrphanProofs      int
	BoundNodes        int
	PendingNodes      int
	SlotCount         uint64
	Fragmentation     uint64
}

// PeerManager is the façade described in §4.6-§4.9: the single entry point
// that coordinates the slot sampler, the three proof pools, the peer
// table, and the node table under one lock.
//
// Every exported method acquires the façade's lock for its own duration;
// no method blocks on anything other than that lock, and no method
// performs I/O. Callers provide the thread: there is no internal
// goroutine other than none at all.
type PeerManager struct {
	mtx sync.RWMutex

	cfg       Config
	validator Validator
	clock     Clock
	rand      io.Reader

	pools *proofPools
	peers *peerTable
	nodes *nodeTable

	shouldRequestMore bool
	unbroadcast       map[chainhash.Hash]struct{}
}

// New creates a PeerManager. validator is consulted on every registration
// attempt and every chain-listener rescan; clock supplies wall-clock time
// for cooldowns and node scheduling; rand is the CSPRNG source used by
// SelectPeer/SelectNode's draws (see internal/uniform).
func New(cfg Config, validator Validator, clock Clock, rand io.Reader) *PeerManager {
	return &PeerManager{
		cfg:         cfg,
		validator:   validator,
		clock:       clock,
		rand:        rand,
		pools:       newProofPools(cfg.MaxConflictingProofs, cfg.MaxOrphanProofs, cfg.MaxBlacklist),
		peers:       newPeerTable(),
		nodes:       newNodeTable(),
		unbroadcast: make(map[chainhash.Hash]struct{}),
	}
}

// RegisterProof attempts to admit proof under the algorithm in §4.6.
func (pm *PeerManager) RegisterProof(proof *Proof, mode RegisterMode) (PeerID, error) {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()
	return pm.registerProofLocked(proof, mode, false)
}

// RegisterLocalProof registers a proof owned by the local node operator.
// It behaves like RegisterProof(proof, ForceAccept) except that the
// resulting Peer, if any, is flagged Local — a supplemental feature
// (grounded on the source's local-proof / "delegation" concept) letting
// callers distinguish their own avalanche identity from remote peers when
// iterating, e.g. to never select it for outbound scoring.
func (pm *PeerManager) RegisterLocalProof(proof *Proof) (PeerID, error) {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()
	id, err := pm.registerProofLocked(proof, ForceAccept, true)
	return id, err
}

func (pm *PeerManager) registerProofLocked(proof *Proof, mode RegisterMode, local bool) (PeerID, error) {
	now := pm.clock.Now()

	if pm.pools.isBlacklisted(proof.ProofID) {
		return 0, registrationError(ErrInvalid, "proof id is blacklisted")
	}

	result, verr := pm.validator.Validate(proof)
	switch result {
	case Invalid:
		desc := "invalid proof"
		if verr != nil {
			desc = verr.Error()
		}
		return 0, registrationError(ErrInvalid, desc)
	case NeedsUtxo:
		pm.pools.insertOrphan(proof)
		return 0, registrationError(ErrOrphan, "referenced stake is not yet visible")
	}

	inValid, inConflicting, inOrphan := pm.pools.locate(proof.ProofID)
	if inValid || inOrphan {
		return 0, registrationError(ErrAlreadyRegistered, "proof already registered")
	}

	conflicts := pm.pools.conflictsWithValid(proof)

	if len(conflicts) == 0 {
		if inConflicting {
			pm.pools.removeConflicting(proof.ProofID)
		}
		if pm.peers.full(pm.cfg.MaxValidPeers) {
			return 0, registrationError(ErrRejected, "peer table at capacity")
		}
		return pm.promoteLocked(proof, now, local), nil
	}

	force := mode == ForceAccept
	if !force && pm.cfg.ConflictCooldown > 0 {
		for _, r := range conflicts {
			if peer, ok := pm.peers.byProof(r.ProofID); ok && now.Before(peer.NextPossibleConflictTime) {
				return 0, registrationError(ErrCooldownNotElapsed, "conflicting proof is in cooldown")
			}
		}
	}

	betterThanAll := true
	for _, r := range conflicts {
		if !IsBetter(proof, r) {
			betterThanAll = false
			break
		}
	}

	if force || (pm.cfg.EnableProofReplacement && betterThanAll) {
		if inConflicting {
			pm.pools.removeConflicting(proof.ProofID)
		}
		for _, r := range conflicts {
			pm.demoteToConflictingLocked(r, proof, now)
		}
		return pm.promoteLocked(proof, now, local), nil
	}

	if inConflicting {
		pm.pools.removeConflicting(proof.ProofID)
	}
	keys := conflictKeysFor(proof, conflicts)
	evicted, inserted := pm.pools.insertConflicting(proof, keys)
	if !inserted {
		return 0, registrationError(ErrRejected, "not better than the existing conflicting-pool entry for this stake")
	}
	if evicted != nil {
		log.Debugf("proof %v evicted from conflicting pool in favor of %v", evicted.ProofID, proof.ProofID)
	}
	for _, r := range conflicts {
		if peer, ok := pm.peers.byProof(r.ProofID); ok {
			peer.NextPossibleConflictTime = now.Add(pm.cfg.ConflictCooldown)
		}
	}
	return 0, registrationError(ErrConflicting, "stake conflicts with an active peer")
}

// promoteLocked inserts proof into the valid pool, allocates it a peer and
// slot range, and drains any nodes pending on its proof id.
func (pm *PeerManager) promoteLocked(proof *Proof, now time.Time, local bool) PeerID {
	peer := pm.peers.promote(proof, local)
	peer.NextPossibleConflictTime = now.Add(pm.cfg.ConflictCooldown)
	pm.pools.insertValid(proof, peer.ID)
	for _, d := range pm.nodes.drainPendingForProof(proof.ProofID) {
		pm.nodes.setBound(d.nodeID, peer.ID, d.nextRequestTime)
		peer.NodeCount++
	}
	return peer.ID
}

// demotePeerLocked tears down the peer bound to proof, if any, moving its
// nodes back to pending with their schedule preserved.
func (pm *PeerManager) demotePeerLocked(proofID chainhash.Hash) {
	peer, ok := pm.peers.byProof(proofID)
	if !ok {
		return
	}
	for _, nodeID := range pm.nodes.allBoundToPeer(peer.ID) {
		nextRequestTime := pm.nodes.bound[nodeID].NextRequestTime
		pm.nodes.removeAny(nodeID)
		pm.nodes.setPending(nodeID, proofID, nextRequestTime)
	}
	pm.peers.demote(peer.ID)
}

// demoteToConflictingLocked tears down loser's peer and files it as a
// conflicting-pool contender against winner.
func (pm *PeerManager) demoteToConflictingLocked(loser, winner *Proof, now time.Time) {
	pm.demotePeerLocked(loser.ProofID)
	pm.pools.removeValid(loser.ProofID)
	keys := conflictKeysFor(loser, []*Proof{winner})
	pm.pools.insertConflicting(loser, keys)
	log.Debugf("proof %v demoted to conflicting pool at %v in favor of %v",
		loser.ProofID, now, winner.ProofID)
}

// RejectProof implements §4.7.
func (pm *PeerManager) RejectProof(id chainhash.Hash, mode RejectMode) bool {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()

	now := pm.clock.Now()
	inValid, inConflicting, inOrphan := pm.pools.locate(id)
	if !inValid && !inConflicting && !inOrphan {
		return false
	}

	switch {
	case inOrphan:
		pm.pools.removeOrphan(id)
	case inConflicting:
		pm.pools.removeConflicting(id)
	case inValid:
		entry := pm.pools.valid[id]
		proof := entry.proof
		pm.demotePeerLocked(id)
		pm.pools.removeValid(id)

		outpoints := outpointSet(proof)
		if best := pm.bestConflictingTouching(outpoints); best != nil {
			pm.pools.removeConflicting(best.ProofID)
			_, _ = pm.registerProofLocked(best, ForceAccept, false)
		}
	}

	if mode == Invalidate {
		pm.pools.blacklistAdd(id, now)
	}
	return true
}

func (pm *PeerManager) bestConflictingTouching(outpoints map[wire.OutPoint]struct{}) *Proof {
	candidates := pm.pools.conflictingTouching(outpoints)
	var best *Proof
	for _, c := range candidates {
		if best == nil || IsBetter(c, best) {
			best = c
		}
	}
	return best
}

// Exists reports whether id is known in any pool.
func (pm *PeerManager) Exists(id chainhash.Hash) bool {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	return pm.pools.exists(id)
}

// IsBoundToPeer reports whether id is in the valid pool.
func (pm *PeerManager) IsBoundToPeer(id chainhash.Hash) bool {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	_, ok := pm.pools.valid[id]
	return ok
}

// IsOrphan reports whether id is in the orphan pool.
func (pm *PeerManager) IsOrphan(id chainhash.Hash) bool {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	_, ok := pm.pools.orphan[id]
	return ok
}

// IsInConflictingPool reports whether id is in the conflicting pool.
func (pm *PeerManager) IsInConflictingPool(id chainhash.Hash) bool {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	_, ok := pm.pools.conflicting[id]
	return ok
}

// GetProof returns the proof known under id, from whichever pool holds it.
func (pm *PeerManager) GetProof(id chainhash.Hash) (*Proof, bool) {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	if e, ok := pm.pools.valid[id]; ok {
		return e.proof, true
	}
	if e, ok := pm.pools.conflicting[id]; ok {
		return e.proof, true
	}
	if e, ok := pm.pools.orphan[id]; ok {
		return e.proof, true
	}
	return nil, false
}

// AddNode implements §4.4's add_node.
func (pm *PeerManager) AddNode(nodeID int32, proofID chainhash.Hash) bool {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()

	now := pm.clock.Now()
	oldPeerID, wasBound, _ := pm.nodes.removeAny(nodeID)
	if wasBound {
		if p, ok := pm.peers.byID[oldPeerID]; ok {
			p.NodeCount--
		}
	}

	if peer, ok := pm.peers.byProof(proofID); ok {
		pm.nodes.setBound(nodeID, peer.ID, now)
		peer.NodeCount++
		return true
	}
	pm.nodes.setPending(nodeID, proofID, now)
	return false
}

// RemoveNode implements §4.4's remove_node.
func (pm *PeerManager) RemoveNode(nodeID int32) bool {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()

	peerID, wasBound, existed := pm.nodes.removeAny(nodeID)
	if wasBound {
		if p, ok := pm.peers.byID[peerID]; ok {
			p.NodeCount--
		}
	}
	return existed
}

// UpdateNextRequestTime implements §4.4's update_next_request_time.
func (pm *PeerManager) UpdateNextRequestTime(nodeID int32, t time.Time) bool {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()

	bn, ok := pm.nodes.bound[nodeID]
	if !ok {
		return false
	}
	bn.NextRequestTime = t
	return true
}

// SelectPeer draws a uniform sample over the sampler's range and returns
// the peer it lands in, or (0, false) on a fragmentation-hole miss.
func (pm *PeerManager) SelectPeer() (PeerID, bool) {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()
	return pm.selectPeerLocked()
}

func (pm *PeerManager) selectPeerLocked() (PeerID, bool) {
	if pm.peers.sampler.max == 0 {
		return 0, false
	}
	u := uniform.Uint64n(pm.rand, pm.peers.sampler.max)
	return pm.peers.selectPeer(u)
}

// SelectNode implements §4.4's select_node.
func (pm *PeerManager) SelectNode() (int32, bool) {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()

	peerID, ok := pm.selectPeerLocked()
	if !ok {
		pm.shouldRequestMore = true
		return 0, false
	}

	ids := pm.nodes.boundByPeer[peerID]
	if len(ids) == 0 {
		pm.shouldRequestMore = true
		return 0, false
	}

	var best int32
	var bestTime time.Time
	first := true
	for id := range ids {
		bn := pm.nodes.bound[id]
		if first || bn.NextRequestTime.Before(bestTime) {
			best, bestTime, first = id, bn.NextRequestTime, false
		}
	}

	if bestTime.After(pm.clock.Now()) {
		pm.shouldRequestMore = true
		return 0, false
	}

	pm.shouldRequestMore = false
	return best, true
}

// ShouldRequestMoreNodes reports and consumes the should_request_more_nodes
// latch.
func (pm *PeerManager) ShouldRequestMoreNodes() bool {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()
	v := pm.shouldRequestMore
	pm.shouldRequestMore = false
	return v
}

// Compact reclaims sampler fragmentation and returns the number of
// slot-units reclaimed.
func (pm *PeerManager) Compact() uint64 {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()
	return pm.peers.compact()
}

// Verify checks every invariant listed in §8 and returns false on the
// first violation. It is a testing aid, not used on any production path.
func (pm *PeerManager) Verify() bool {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	return pm.verifyLocked()
}

func (pm *PeerManager) verifyLocked() bool {
	if !pm.peers.verify() || !pm.nodes.verify() {
		return false
	}
	for id := range pm.pools.valid {
		_, c, o := pm.pools.locate(id)
		if c || o {
			return false
		}
	}
	for id := range pm.pools.conflicting {
		v, _, o := pm.pools.locate(id)
		if v || o {
			return false
		}
	}
	for id := range pm.pools.orphan {
		v, c, _ := pm.pools.locate(id)
		if v || c {
			return false
		}
	}
	return true
}

// SlotCount returns the sampler's current max.
func (pm *PeerManager) SlotCount() uint64 {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	return pm.peers.sampler.max
}

// Fragmentation returns the sampler's current fragmentation.
func (pm *PeerManager) Fragmentation() uint64 {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	return pm.peers.sampler.fragmentation
}

// NodeCount returns the number of currently bound nodes.
func (pm *PeerManager) NodeCount() uint64 {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	return uint64(len(pm.nodes.bound))
}

// PendingNodeCount returns the number of nodes currently pending.
func (pm *PeerManager) PendingNodeCount() uint64 {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	return uint64(len(pm.nodes.pending))
}

// Stats returns a point-in-time snapshot of the façade's bookkeeping
// counters.
func (pm *PeerManager) Stats() ManagerStats {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	return ManagerStats{
		ValidPeers:        len(pm.pools.valid),
		ConflictingProofs: len(pm.pools.conflicting),
		OrphanProofs:      len(pm.pools.orphan),
		BoundNodes:        len(pm.nodes.bound),
		PendingNodes:      len(pm.nodes.pending),
		SlotCount:         pm.peers.sampler.max,
		Fragmentation:     pm.peers.sampler.fragmentation,
	}
}

// ForPeer applies fn to the peer known under id under a shared lock. fn
// must not mutate observable state. Returns false if no peer is bound to
// id.
func (pm *PeerManager) ForPeer(id chainhash.Hash, fn func(*Peer) bool) bool {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	p, ok := pm.peers.byProof(id)
	if !ok {
		return false
	}
	return fn(p)
}

// ForEachPeer applies fn to every live peer under a shared lock, stopping
// early if fn returns false.
func (pm *PeerManager) ForEachPeer(fn func(*Peer) bool) {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	for _, p := range pm.peers.byID {
		if !fn(p) {
			return
		}
	}
}

// ForNode applies fn to the bound node known under nodeID under a shared
// lock. Returns false if nodeID is not bound.
func (pm *PeerManager) ForNode(nodeID int32, fn func(*BoundNode) bool) bool {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	bn, ok := pm.nodes.bound[nodeID]
	if !ok {
		return false
	}
	return fn(bn)
}

// ForEachNode applies fn to every node bound to peerID under a shared
// lock, stopping early if fn returns false.
func (pm *PeerManager) ForEachNode(peerID PeerID, fn func(*BoundNode) bool) {
	pm.mtx.RLock()
	defer pm.mtx.RUnlock()
	for nodeID := range pm.nodes.boundByPeer[peerID] {
		if !fn(pm.nodes.bound[nodeID]) {
			return
		}
	}
}

// AddUnbroadcastProof remembers proofID for eventual relay by the caller's
// broadcast layer.
func (pm *PeerManager) AddUnbroadcastProof(id chainhash.Hash) {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()
	pm.unbroadcast[id] = struct{}{}
}

// GetUnbroadcastProofs returns, and clears, the set of proof ids queued
// for relay.
func (pm *PeerManager) GetUnbroadcastProofs() []chainhash.Hash {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()
	out := make([]chainhash.Hash, 0, len(pm.unbroadcast))
	for id := range pm.unbroadcast {
		out = append(out, id)
		delete(pm.unbroadcast, id)
	}
	return out
}
