// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avalanche

import "bytes"

// IsBetter reports whether candidate is strictly preferred to reference
// under the total order used to resolve proofs that share stake. The first
// differing attribute in this sequence decides the outcome:
//
//  1. higher sequence number wins,
//  2. greater staked amount wins,
//  3. smaller stake count wins (fewer UTXOs locked),
//  4. lexicographically smaller proof id wins.
//
// Step 4 is total over the proof-id space, so ties never occur: for any
// two distinct proofs, exactly one of IsBetter(a, b) or IsBetter(b, a)
// holds.
func IsBetter(candidate, reference *Proof) bool {
	if candidate.Sequence != reference.Sequence {
		return candidate.Sequence > reference.Sequence
	}
	candAmount, refAmount := candidate.StakedAmount(), reference.StakedAmount()
	if candAmount != refAmount {
		return candAmount > refAmount
	}
	candCount, refCount := candidate.StakeCount(), reference.StakeCount()
	if candCount != refCount {
		return candCount < refCount
	}
	return bytes.Compare(candidate.ProofID[:], reference.ProofID[:]) < 0
}
