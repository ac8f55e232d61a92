// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avalanche

import (
	"crypto/rand"
	"errors"
	"testing"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/wire"
)

// fakeClock is a mutable, manually-advanced Clock for deterministic tests.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

// utxoValidator treats a fixed in-memory set of outpoints as "visible" and
// accepts any proof whose stakes are all within that set. It never returns
// Invalid, mirroring the fact that signature verification is out of scope
// for these tests.
type utxoValidator struct {
	present map[wire.OutPoint]bool
}

func newUTXOValidator() *utxoValidator {
	return &utxoValidator{present: make(map[wire.OutPoint]bool)}
}

func (v *utxoValidator) addUTXO(op wire.OutPoint) {
	v.present[op] = true
}

func (v *utxoValidator) removeUTXO(op wire.OutPoint) {
	delete(v.present, op)
}

func (v *utxoValidator) Validate(proof *Proof) (ValidationResult, error) {
	if len(proof.Stakes) == 0 {
		return Invalid, errors.New("no stakes")
	}
	for _, s := range proof.Stakes {
		if !v.present[s.Outpoint] {
			return NeedsUtxo, nil
		}
	}
	return Valid, nil
}

// alwaysValid accepts any non-empty proof outright, used by tests that
// don't exercise the orphan path.
type alwaysValid struct{}

func (alwaysValid) Validate(proof *Proof) (ValidationResult, error) {
	if len(proof.Stakes) == 0 {
		return Invalid, errors.New("no stakes")
	}
	return Valid, nil
}

func testOutpoint(b byte) wire.OutPoint {
	var h chainhash.Hash
	h[0] = b
	return wire.OutPoint{Hash: h, Index: 0}
}

func testProof(id byte, sequence uint64, amount int64, outpoints ...wire.OutPoint) *Proof {
	stakes := make([]Stake, len(outpoints))
	for i, op := range outpoints {
		stakes[i] = Stake{Outpoint: op, Amount: amount / int64(len(outpoints))}
	}
	return &Proof{ProofID: idFromByte(id), Sequence: sequence, Stakes: stakes}
}

func newTestManager(cfg Config, v Validator, clk Clock) *PeerManager {
	return New(cfg, v, clk, rand.Reader)
}

func TestS1FragmentationAndCompact(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	pm := newTestManager(Config{}, alwaysValid{}, clk)

	var peerIDs []PeerID
	for i := byte(0); i < 4; i++ {
		p := testProof(i, uint64(i)+1, int64(100)*UnitStake, testOutpoint(i))
		id, err := pm.RegisterProof(p, Polite)
		if err != nil {
			t.Fatalf("register proof %d: %v", i, err)
		}
		peerIDs = append(peerIDs, id)
	}

	if got := pm.SlotCount(); got != 400 {
		t.Fatalf("slot count = %d, want 400", got)
	}
	if got := pm.Fragmentation(); got != 0 {
		t.Fatalf("fragmentation = %d, want 0", got)
	}

	proof3 := testProof(2, 3, int64(100)*UnitStake, testOutpoint(2))
	if !pm.RejectProof(proof3.ProofID, Default) {
		t.Fatal("reject of third peer's proof failed")
	}

	if got := pm.SlotCount(); got != 400 {
		t.Fatalf("slot count after remove = %d, want 400", got)
	}
	if got := pm.Fragmentation(); got != 100 {
		t.Fatalf("fragmentation after remove = %d, want 100", got)
	}

	reclaimed := pm.Compact()
	if reclaimed != 100 {
		t.Fatalf("compact reclaimed = %d, want 100", reclaimed)
	}
	if got := pm.SlotCount(); got != 300 {
		t.Fatalf("slot count after compact = %d, want 300", got)
	}
	if got := pm.Fragmentation(); got != 0 {
		t.Fatalf("fragmentation after compact = %d, want 0", got)
	}
	if !pm.Verify() {
		t.Fatal("invariants violated after compact")
	}

	for i := 0; i < 50; i++ {
		peerID, ok := pm.SelectPeer()
		if !ok {
			t.Fatal("select_peer unexpectedly missed after compact")
		}
		found := false
		for _, id := range []PeerID{peerIDs[0], peerIDs[1], peerIDs[3]} {
			if peerID == id {
				found = true
			}
		}
		if !found {
			t.Fatalf("select_peer returned unexpected peer %d", peerID)
		}
	}
}

func TestS2ProbabilityWeighting(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	pm := newTestManager(Config{}, alwaysValid{}, clk)

	pA := testProof(1, 1, int64(UnitStake), testOutpoint(1))
	pB := testProof(2, 1, int64(2*UnitStake), testOutpoint(2))
	if _, err := pm.RegisterProof(pA, Polite); err != nil {
		t.Fatalf("register A: %v", err)
	}
	if _, err := pm.RegisterProof(pB, Polite); err != nil {
		t.Fatalf("register B: %v", err)
	}

	pm.AddNode(100, pA.ProofID)
	pm.AddNode(200, pB.ProofID)

	var countA, countB int
	const trials = 10000
	for i := 0; i < trials; i++ {
		node, ok := pm.SelectNode()
		if !ok {
			continue
		}
		switch node {
		case 100:
			countA++
		case 200:
			countB++
		}
		pm.UpdateNextRequestTime(node, clk.now)
	}

	diff := 2*countA - countB
	if diff < 0 {
		diff = -diff
	}
	if diff >= 500 {
		t.Errorf("|2*countA - countB| = %d, want < 500 (countA=%d countB=%d)", diff, countA, countB)
	}
}

func TestS3ConflictReplacementNoCooldown(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	pm := newTestManager(Config{EnableProofReplacement: true}, alwaysValid{}, clk)

	op := testOutpoint(1)
	p30 := testProof(30, 30, int64(UnitStake), op)
	p20 := testProof(20, 20, int64(UnitStake), op)
	p10 := testProof(10, 10, int64(UnitStake), op)

	if _, err := pm.RegisterProof(p30, Polite); err != nil {
		t.Fatalf("register P30: %v", err)
	}

	_, err := pm.RegisterProof(p20, Polite)
	if !errors.Is(err, ErrConflicting) {
		t.Fatalf("register P20 err = %v, want ErrConflicting", err)
	}
	if !pm.IsInConflictingPool(p20.ProofID) {
		t.Fatal("P20 should be in the conflicting pool")
	}

	_, err = pm.RegisterProof(p10, Polite)
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("register P10 err = %v, want ErrRejected", err)
	}
	if pm.Exists(p10.ProofID) {
		t.Fatal("P10 should not be stored anywhere")
	}
	if !pm.IsInConflictingPool(p20.ProofID) {
		t.Fatal("P20 should still occupy the conflicting pool")
	}

	if _, err := pm.RegisterProof(p20, ForceAccept); err != nil {
		t.Fatalf("force-accept P20: %v", err)
	}
	if !pm.IsBoundToPeer(p20.ProofID) {
		t.Fatal("P20 should now be a peer")
	}
	if !pm.IsInConflictingPool(p30.ProofID) {
		t.Fatal("P30 should have moved to the conflicting pool")
	}
}

func TestS4ConflictCooldown(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	cfg := Config{ConflictCooldown: 100 * time.Second, EnableProofReplacement: true}
	pm := newTestManager(cfg, alwaysValid{}, clk)

	op := testOutpoint(1)
	p30 := testProof(30, 30, int64(UnitStake), op)
	p20 := testProof(20, 20, int64(UnitStake), op)
	p40 := testProof(40, 40, int64(UnitStake), op)

	if _, err := pm.RegisterProof(p30, Polite); err != nil {
		t.Fatalf("register P30: %v", err)
	}

	clk.now = time.Unix(10, 0)
	_, err := pm.RegisterProof(p20, Polite)
	if !errors.Is(err, ErrCooldownNotElapsed) {
		t.Fatalf("register P20 at t=10 err = %v, want ErrCooldownNotElapsed", err)
	}
	if pm.Exists(p20.ProofID) {
		t.Fatal("P20 must not be stored while cooldown blocks it")
	}

	clk.now = time.Unix(100, 0)
	_, err = pm.RegisterProof(p20, Polite)
	if !errors.Is(err, ErrConflicting) {
		t.Fatalf("register P20 at t=100 err = %v, want ErrConflicting", err)
	}

	_, err = pm.RegisterProof(p40, Polite)
	if !errors.Is(err, ErrCooldownNotElapsed) {
		t.Fatalf("register P40 at t=100 err = %v, want ErrCooldownNotElapsed", err)
	}

	// By t=200 the cooldown against P30 (refreshed when P20's conflicting
	// registration touched it at t=100) has elapsed, and P40 beats P30
	// under §4.5 as the sole valid-pool conflict, so §4.6 step 5 auto-swaps
	// it in regardless of mode: P30 is demoted to the conflicting pool,
	// displacing P20 there in turn since P30 also beats P20.
	clk.now = time.Unix(200, 0)
	_, err = pm.RegisterProof(p40, Polite)
	if err != nil {
		t.Fatalf("register P40 at t=200: %v", err)
	}
	if pm.IsInConflictingPool(p20.ProofID) || pm.Exists(p20.ProofID) {
		t.Fatal("P20 should have been evicted entirely once P30 took its slot")
	}
	if pm.IsInConflictingPool(p40.ProofID) {
		t.Fatal("P40 should have been promoted, not left in the conflicting pool")
	}
	if !pm.IsInConflictingPool(p30.ProofID) {
		t.Fatal("P30 should have been demoted to the conflicting pool by P40")
	}
}

func TestS5OrphanBecomesValid(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	v := newUTXOValidator()
	pm := newTestManager(Config{}, v, clk)

	op := testOutpoint(1)
	proof := testProof(1, 1, int64(UnitStake), op)

	_, err := pm.RegisterProof(proof, Polite)
	if !errors.Is(err, ErrOrphan) {
		t.Fatalf("register err = %v, want ErrOrphan", err)
	}
	if !pm.IsOrphan(proof.ProofID) {
		t.Fatal("proof should be an orphan")
	}

	v.addUTXO(op)
	pm.UpdatedBlockTip()

	if pm.IsOrphan(proof.ProofID) {
		t.Fatal("proof should no longer be an orphan")
	}
	if !pm.IsBoundToPeer(proof.ProofID) {
		t.Fatal("proof should now be bound to a peer")
	}
}

func TestS6NodeBindingAcrossPeerRebirth(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	v := newUTXOValidator()
	op := testOutpoint(1)
	v.addUTXO(op)
	pm := newTestManager(Config{}, v, clk)

	proof := testProof(1, 1, int64(UnitStake), op)
	if _, err := pm.RegisterProof(proof, Polite); err != nil {
		t.Fatalf("register: %v", err)
	}

	requestTimes := make(map[int32]time.Time)
	for i := int32(0); i < 10; i++ {
		nt := time.Unix(int64(1000+i), 0)
		pm.AddNode(i, proof.ProofID)
		pm.UpdateNextRequestTime(i, nt)
		requestTimes[i] = nt
	}
	if got := pm.NodeCount(); got != 10 {
		t.Fatalf("node count = %d, want 10", got)
	}

	v.removeUTXO(op)
	pm.UpdatedBlockTip()

	if !pm.IsOrphan(proof.ProofID) {
		t.Fatal("proof should have returned to the orphan pool")
	}
	if got := pm.PendingNodeCount(); got != 10 {
		t.Fatalf("pending node count = %d, want 10", got)
	}
	for i := int32(0); i < 10; i++ {
		pn, ok := pm.nodes.pending[i]
		if !ok {
			t.Fatalf("node %d should be pending", i)
		}
		if !pn.nextRequestTime.Equal(requestTimes[i]) {
			t.Errorf("node %d next_request_time = %v, want %v", i, pn.nextRequestTime, requestTimes[i])
		}
	}

	v.addUTXO(op)
	pm.UpdatedBlockTip()

	if !pm.IsBoundToPeer(proof.ProofID) {
		t.Fatal("proof should be re-promoted to a peer")
	}
	if got := pm.NodeCount(); got != 10 {
		t.Fatalf("node count after rebind = %d, want 10", got)
	}
	for i := int32(0); i < 10; i++ {
		bn, ok := pm.nodes.bound[i]
		if !ok {
			t.Fatalf("node %d should be rebound", i)
		}
		if !bn.NextRequestTime.Equal(requestTimes[i]) {
			t.Errorf("node %d next_request_time after rebind = %v, want %v", i, bn.NextRequestTime, requestTimes[i])
		}
	}
}

func TestAddRemoveNodeRoundTrip(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	pm := newTestManager(Config{}, alwaysValid{}, clk)

	proof := testProof(1, 1, int64(UnitStake), testOutpoint(1))
	if _, err := pm.RegisterProof(proof, Polite); err != nil {
		t.Fatalf("register: %v", err)
	}

	before := pm.Stats()
	pm.AddNode(1, proof.ProofID)
	if !pm.RemoveNode(1) {
		t.Fatal("remove_node should report the node existed")
	}
	after := pm.Stats()
	if before != after {
		t.Fatalf("stats before/after add+remove differ: %+v vs %+v", before, after)
	}
}

func TestRegisterThenRejectRoundTrip(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	pm := newTestManager(Config{}, alwaysValid{}, clk)

	proof := testProof(1, 1, int64(UnitStake), testOutpoint(1))
	before := pm.Stats()
	if _, err := pm.RegisterProof(proof, Polite); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !pm.RejectProof(proof.ProofID, Default) {
		t.Fatal("reject should report success")
	}
	after := pm.Stats()
	if before != after {
		t.Fatalf("stats before/after register+reject differ: %+v vs %+v", before, after)
	}
	if pm.Exists(proof.ProofID) {
		t.Fatal("proof should be gone from every pool")
	}
}

func TestRejectInvalidateBlocksReRegistration(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	pm := newTestManager(Config{}, alwaysValid{}, clk)

	proof := testProof(1, 1, int64(UnitStake), testOutpoint(1))
	if _, err := pm.RegisterProof(proof, Polite); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !pm.RejectProof(proof.ProofID, Invalidate) {
		t.Fatal("reject should report success")
	}

	_, err := pm.RegisterProof(proof, Polite)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("re-register after invalidate err = %v, want ErrInvalid", err)
	}
}

func TestShouldRequestMoreNodesLatchIsConsuming(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	pm := newTestManager(Config{}, alwaysValid{}, clk)

	if _, ok := pm.SelectNode(); ok {
		t.Fatal("select_node on an empty manager should miss")
	}
	if !pm.ShouldRequestMoreNodes() {
		t.Fatal("latch should be set after a missed select_node")
	}
	if pm.ShouldRequestMoreNodes() {
		t.Fatal("latch should be consumed by the first poll")
	}
}
