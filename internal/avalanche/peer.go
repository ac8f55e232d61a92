// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avalanche

import (
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// PeerID is a small dense integer identifying an accepted proof. Peer ids
// are reused via a free-list once their peer is removed, so callers must
// treat them as opaque and short-lived across removals. The zero value
// never identifies a live peer.
type PeerID uint32

// Peer is a proof that has been accepted and assigned a dense id and a
// slot range in the sampler.
type Peer struct {
	ID                       PeerID
	Proof                    *Proof
	Score                    uint32
	SlotStart                uint64
	NodeCount                uint32
	NextPossibleConflictTime time.Time
	Local                    bool
}

// peerTable issues dense peer ids, owns the slot sampler, and maps peer
// ids and proof ids to their Peer record.
type peerTable struct {
	byID      map[PeerID]*Peer
	byProofID map[chainhash.Hash]PeerID
	freeIDs   []PeerID
	nextID    PeerID
	sampler   sampler
}

func newPeerTable() *peerTable {
	return &peerTable{
		byID:      make(map[PeerID]*Peer),
		byProofID: make(map[chainhash.Hash]PeerID),
		nextID:    1,
	}
}

func (t *peerTable) allocID() PeerID {
	if n := len(t.freeIDs); n > 0 {
		id := t.freeIDs[n-1]
		t.freeIDs = t.freeIDs[:n-1]
		return id
	}
	id := t.nextID
	t.nextID++
	return id
}

func (t *peerTable) full(maxPeers int) bool {
	return maxPeers > 0 && len(t.byID) >= maxPeers
}

// promote allocates a peer id and a slot range for proof and records the
// new Peer. It does not touch the node table; the façade drains pending
// nodes for the proof separately.
func (t *peerTable) promote(proof *Proof, local bool) *Peer {
	id := t.allocID()
	score := proof.Score()
	start := t.sampler.append(score, id)
	p := &Peer{
		ID:        id,
		Proof:     proof,
		Score:     score,
		SlotStart: start,
		Local:     local,
	}
	t.byID[id] = p
	t.byProofID[proof.ProofID] = id
	return p
}

// demote removes the slot and frees the peer id for reuse. It returns the
// removed Peer, or nil if id was not live.
func (t *peerTable) demote(id PeerID) *Peer {
	p, ok := t.byID[id]
	if !ok {
		return nil
	}
	t.sampler.remove(p.SlotStart)
	delete(t.byID, id)
	delete(t.byProofID, p.Proof.ProofID)
	t.freeIDs = append(t.freeIDs, id)
	return p
}

func (t *peerTable) byProof(proofID chainhash.Hash) (*Peer, bool) {
	id, ok := t.byProofID[proofID]
	if !ok {
		return nil, false
	}
	return t.byID[id], true
}

func (t *peerTable) selectPeer(u uint64) (PeerID, bool) {
	return t.sampler.selectPeer(u)
}

// compact reclaims every fragmentation hole and refreshes the cached
// SlotStart of every surviving peer accordingly.
func (t *peerTable) compact() uint64 {
	reclaimed, moved := t.sampler.compact()
	for _, m := range moved {
		if p, ok := t.byID[m.peerID]; ok {
			p.SlotStart = m.start
		}
	}
	return reclaimed
}

func (t *peerTable) verify() bool {
	if !t.sampler.verify() {
		return false
	}
	if len(t.byID) != len(t.byProofID) {
		return false
	}
	for id, p := range t.byID {
		if p.ID != id {
			return false
		}
		if got, ok := t.byProofID[p.Proof.ProofID]; !ok || got != id {
			return false
		}
	}
	return true
}
