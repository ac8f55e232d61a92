// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avalanche

import "testing"

func TestSamplerAppendAndSelect(t *testing.T) {
	var s sampler
	idA := s.append(100, 1)
	idB := s.append(200, 2)
	idC := s.append(50, 3)

	if idA != 0 || idB != 100 || idC != 300 {
		t.Fatalf("unexpected starts: %d %d %d", idA, idB, idC)
	}
	if s.max != 350 {
		t.Fatalf("max = %d, want 350", s.max)
	}

	tests := []struct {
		u    uint64
		want PeerID
		ok   bool
	}{
		{0, 1, true},
		{99, 1, true},
		{100, 2, true},
		{299, 2, true},
		{300, 3, true},
		{349, 3, true},
	}
	for _, tc := range tests {
		got, ok := s.selectPeer(tc.u)
		if ok != tc.ok || got != tc.want {
			t.Errorf("selectPeer(%d) = (%d, %v), want (%d, %v)", tc.u, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSamplerFragmentationAndCompact(t *testing.T) {
	var s sampler
	s.append(100, 1)
	s.append(100, 2)
	s.append(100, 3)
	s.append(100, 4)

	if s.max != 400 || s.fragmentation != 0 {
		t.Fatalf("initial state = (%d, %d), want (400, 0)", s.max, s.fragmentation)
	}

	// Remove the third peer's slot, which starts at 200.
	if !s.remove(200) {
		t.Fatal("remove(200) failed")
	}
	if s.max != 400 {
		t.Fatalf("max after remove = %d, want 400", s.max)
	}
	if s.fragmentation != 100 {
		t.Fatalf("fragmentation after remove = %d, want 100", s.fragmentation)
	}
	if !s.verify() {
		t.Fatal("sampler invariants violated after remove")
	}

	if _, ok := s.selectPeer(250); ok {
		t.Fatal("selectPeer landed in a fragmentation hole")
	}

	reclaimed, moved := s.compact()
	if reclaimed != 100 {
		t.Fatalf("compact reclaimed = %d, want 100", reclaimed)
	}
	if s.max != 300 || s.fragmentation != 0 {
		t.Fatalf("state after compact = (%d, %d), want (300, 0)", s.max, s.fragmentation)
	}
	if !s.verify() {
		t.Fatal("sampler invariants violated after compact")
	}

	wantMoved := map[PeerID]uint64{1: 0, 2: 100, 4: 200}
	if len(moved) != len(wantMoved) {
		t.Fatalf("moved has %d entries, want %d", len(moved), len(wantMoved))
	}
	for _, m := range moved {
		if want, ok := wantMoved[m.peerID]; !ok || want != m.start {
			t.Errorf("peer %d moved to %d, want %d", m.peerID, m.start, want)
		}
	}

	for u := uint64(0); u < s.max; u++ {
		if _, ok := s.selectPeer(u); !ok {
			t.Fatalf("selectPeer(%d) missed after compact", u)
		}
	}
}

func TestSamplerRemoveTailShrinksMax(t *testing.T) {
	var s sampler
	s.append(100, 1)
	s.append(50, 2)

	if !s.remove(100) {
		t.Fatal("remove(100) failed")
	}
	if s.max != 100 {
		t.Fatalf("max = %d, want 100", s.max)
	}
	if s.fragmentation != 0 {
		t.Fatalf("fragmentation = %d, want 0 (tail removal should not fragment)", s.fragmentation)
	}
}

func TestSamplerEmptySelect(t *testing.T) {
	var s sampler
	if _, ok := s.selectPeer(0); ok {
		t.Fatal("selectPeer on empty sampler should miss")
	}
}
