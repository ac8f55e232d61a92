// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avalanche

import "sort"

// slot is a half-open interval [start, start+score) of stake units mapped
// to a peer.
type slot struct {
	start  uint64
	score  uint32
	peerID PeerID
}

// stop returns the exclusive upper bound of the slot's interval.
func (s slot) stop() uint64 {
	return s.start + uint64(s.score)
}

// slotMove describes a live slot's position after compaction, so that
// callers holding a cached slot_start for a peer can refresh it.
type slotMove struct {
	peerID PeerID
	start  uint64
	score  uint32
}

// sampler is a sorted, non-overlapping array of slots plus a running
// maximum, supporting O(log N) weighted selection by binary search. It
// never allocates during selection.
//
// Invariants maintained after every mutation:
//   - slots are sorted by start and pairwise non-overlapping,
//     i.e. slots[i].stop() <= slots[i+1].start
//   - max equals the stop of the last slot, or 0 when empty
//   - sum(score over live slots) + fragmentation == max
type sampler struct {
	slots         []slot
	max           uint64
	fragmentation uint64
}

// append adds a new slot of the given score at the tail of the array and
// returns the slot's start. O(1).
func (s *sampler) append(score uint32, peerID PeerID) uint64 {
	start := s.max
	s.slots = append(s.slots, slot{start: start, score: score, peerID: peerID})
	s.max += uint64(score)
	return start
}

// indexForStart locates the slot beginning exactly at start via binary
// search. O(log N).
func (s *sampler) indexForStart(start uint64) (int, bool) {
	i := sort.Search(len(s.slots), func(i int) bool {
		return s.slots[i].start >= start
	})
	if i < len(s.slots) && s.slots[i].start == start {
		return i, true
	}
	return 0, false
}

// remove clears the score of the slot beginning at start, turning it into
// a fragmentation hole, unless it is the tail slot, in which case max
// shrinks instead and any holes left exposed at the new tail are dropped
// along with their fragmentation. Reports whether a slot was found.
// O(log N) plus the number of holes dropped.
func (s *sampler) remove(start uint64) bool {
	i, ok := s.indexForStart(start)
	if !ok {
		return false
	}
	removed := s.slots[i]
	if i == len(s.slots)-1 {
		s.slots = s.slots[:i]
		for n := len(s.slots); n > 0 && s.slots[n-1].score == 0; n-- {
			s.slots = s.slots[:n-1]
		}
		var newMax uint64
		if n := len(s.slots); n > 0 {
			newMax = s.slots[n-1].stop()
		}
		s.fragmentation -= removed.start - newMax
		s.max = newMax
		return true
	}
	s.fragmentation += uint64(removed.score)
	s.slots[i].score = 0
	s.slots[i].peerID = 0
	return true
}

// select returns the peer whose interval contains u, or (0, false) if u
// falls in a fragmentation hole or is out of range. O(log N).
func (s *sampler) selectPeer(u uint64) (PeerID, bool) {
	i := sort.Search(len(s.slots), func(i int) bool {
		return s.slots[i].start > u
	}) - 1
	if i < 0 {
		return 0, false
	}
	sl := s.slots[i]
	if u < sl.stop() {
		return sl.peerID, true
	}
	return 0, false
}

// compact rebuilds the array with every fragmentation hole removed and
// start values recomputed, preserving the relative order of the surviving
// slots. It returns the number of slot-units reclaimed and the new
// position of every surviving slot so the caller can refresh any cached
// slot_start values.
func (s *sampler) compact() (reclaimed uint64, moved []slotMove) {
	reclaimed = s.fragmentation
	if reclaimed == 0 {
		return 0, nil
	}
	out := make([]slot, 0, len(s.slots))
	moved = make([]slotMove, 0, len(s.slots))
	var start uint64
	for _, sl := range s.slots {
		if sl.score == 0 {
			continue
		}
		out = append(out, slot{start: start, score: sl.score, peerID: sl.peerID})
		moved = append(moved, slotMove{peerID: sl.peerID, start: start, score: sl.score})
		start += uint64(sl.score)
	}
	s.slots = out
	s.max = start
	s.fragmentation = 0
	return reclaimed, moved
}

// verify checks the sampler's invariants, returning false on the first
// violation found. It is a testing aid, not used on any hot path.
func (s *sampler) verify() bool {
	var sumScore uint64
	var prevStop uint64
	for i, sl := range s.slots {
		if sl.start < prevStop {
			return false
		}
		if i > 0 && sl.start < s.slots[i-1].stop() {
			return false
		}
		sumScore += uint64(sl.score)
		prevStop = sl.stop()
	}
	if len(s.slots) > 0 && s.slots[len(s.slots)-1].stop() != s.max {
		return false
	}
	if len(s.slots) == 0 && s.max != 0 {
		return false
	}
	return sumScore+s.fragmentation == s.max
}
