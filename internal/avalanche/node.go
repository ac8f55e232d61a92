// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avalanche

import (
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// BoundNode is a network node identity currently bound to a peer.
type BoundNode struct {
	NodeID          int32
	PeerID          PeerID
	NextRequestTime time.Time
}

// pendingNode is a node awaiting a peer that does not exist yet, keyed on
// the proof id the node expects to eventually bind to. NextRequestTime is
// carried along even while pending so that a node's query schedule
// survives a demote-then-repromote cycle (see scenario S6).
type pendingNode struct {
	proofID         chainhash.Hash
	nextRequestTime time.Time
}

// pendingDrain describes a pending node that has just been moved to the
// bound sub-table because its target proof was promoted to a peer.
type pendingDrain struct {
	nodeID          int32
	nextRequestTime time.Time
}

// nodeTable holds the two disjoint sub-tables of node bindings: nodes
// bound to a live peer, and nodes pending a proof id that is not yet
// bound to any peer.
type nodeTable struct {
	bound          map[int32]*BoundNode
	boundByPeer    map[PeerID]map[int32]struct{}
	pending        map[int32]*pendingNode
	pendingByProof map[chainhash.Hash]map[int32]struct{}
}

func newNodeTable() *nodeTable {
	return &nodeTable{
		bound:          make(map[int32]*BoundNode),
		boundByPeer:    make(map[PeerID]map[int32]struct{}),
		pending:        make(map[int32]*pendingNode),
		pendingByProof: make(map[chainhash.Hash]map[int32]struct{}),
	}
}

// removeAny deletes nodeID from whichever sub-table holds it. It reports
// the peer it was bound to (if any) and whether the node existed at all,
// so the caller can adjust Peer.NodeCount and its own return value.
func (nt *nodeTable) removeAny(nodeID int32) (peerID PeerID, wasBound, existed bool) {
	if bn, ok := nt.bound[nodeID]; ok {
		delete(nt.bound, nodeID)
		if m := nt.boundByPeer[bn.PeerID]; m != nil {
			delete(m, nodeID)
			if len(m) == 0 {
				delete(nt.boundByPeer, bn.PeerID)
			}
		}
		return bn.PeerID, true, true
	}
	if pn, ok := nt.pending[nodeID]; ok {
		delete(nt.pending, nodeID)
		if m := nt.pendingByProof[pn.proofID]; m != nil {
			delete(m, nodeID)
			if len(m) == 0 {
				delete(nt.pendingByProof, pn.proofID)
			}
		}
		return 0, false, true
	}
	return 0, false, false
}

func (nt *nodeTable) setPending(nodeID int32, proofID chainhash.Hash, nextRequestTime time.Time) {
	nt.pending[nodeID] = &pendingNode{proofID: proofID, nextRequestTime: nextRequestTime}
	m := nt.pendingByProof[proofID]
	if m == nil {
		m = make(map[int32]struct{})
		nt.pendingByProof[proofID] = m
	}
	m[nodeID] = struct{}{}
}

func (nt *nodeTable) setBound(nodeID int32, peerID PeerID, nextRequestTime time.Time) {
	nt.bound[nodeID] = &BoundNode{NodeID: nodeID, PeerID: peerID, NextRequestTime: nextRequestTime}
	m := nt.boundByPeer[peerID]
	if m == nil {
		m = make(map[int32]struct{})
		nt.boundByPeer[peerID] = m
	}
	m[nodeID] = struct{}{}
}

// drainPendingForProof moves every node pending on proofID out of the
// pending sub-table, returning their ids and preserved NextRequestTime.
// The caller is responsible for binding them to the newly promoted peer.
func (nt *nodeTable) drainPendingForProof(proofID chainhash.Hash) []pendingDrain {
	ids := nt.pendingByProof[proofID]
	out := make([]pendingDrain, 0, len(ids))
	for nodeID := range ids {
		pn := nt.pending[nodeID]
		out = append(out, pendingDrain{nodeID: nodeID, nextRequestTime: pn.nextRequestTime})
		delete(nt.pending, nodeID)
	}
	delete(nt.pendingByProof, proofID)
	return out
}

// allBoundToPeer returns the node ids currently bound to peerID.
func (nt *nodeTable) allBoundToPeer(peerID PeerID) []int32 {
	ids := nt.boundByPeer[peerID]
	out := make([]int32, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	return out
}

func (nt *nodeTable) verify() bool {
	for id, bn := range nt.bound {
		if bn.NodeID != id {
			return false
		}
		if _, ok := nt.pending[id]; ok {
			return false
		}
		m := nt.boundByPeer[bn.PeerID]
		if m == nil {
			return false
		}
		if _, ok := m[id]; !ok {
			return false
		}
	}
	for id, pn := range nt.pending {
		if _, ok := nt.bound[id]; ok {
			return false
		}
		m := nt.pendingByProof[pn.proofID]
		if m == nil {
			return false
		}
		if _, ok := m[id]; !ok {
			return false
		}
	}
	return true
}
