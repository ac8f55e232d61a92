// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avalanche

import (
	"sort"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/wire"
)

// UpdatedBlockTip re-evaluates every orphan, valid, and conflicting-pool
// proof against the latest UTXO snapshot, which the injected Validator is
// assumed to have already been pointed at. It promotes orphans that now
// validate, demotes peers whose proof no longer does, and cascades the
// resulting conflict re-evaluation, repeating until a full pass produces
// no further pool transition.
//
// The Chain Listener never queries the UTXO snapshot directly (see the
// chainlistener.go entry in DESIGN.md): re-validation is delegated entirely to the same
// Validator injected at construction time, avoiding a second collaborator
// interface that would just duplicate the validator's own UTXO lookups.
func (pm *PeerManager) UpdatedBlockTip() {
	pm.mtx.Lock()
	defer pm.mtx.Unlock()

	maxPasses := pm.maxFixedPointPassesLocked()
	for pass := 0; pass < maxPasses; pass++ {
		changed := pm.rescanOrphansLocked()
		changed = pm.rescanValidLocked() || changed
		changed = pm.rescanConflictingLocked() || changed
		if !changed {
			return
		}
	}
	log.Warnf("updated block tip: fixed-point re-evaluation did not converge after %d passes", maxPasses)
}

// maxFixedPointPassesLocked bounds the fixed-point loop by a small
// multiple of the total known proof count, per the open question resolved
// in SPEC_FULL.md §13: cap iterations and log rather than guess intent.
func (pm *PeerManager) maxFixedPointPassesLocked() int {
	total := len(pm.pools.valid) + len(pm.pools.conflicting) + len(pm.pools.orphan)
	if total < 1 {
		total = 1
	}
	return 4 * total
}

// rescanOrphansLocked re-validates every orphan pool entry, best-first so
// that a better proof wins any conflict it enters via re-submission.
func (pm *PeerManager) rescanOrphansLocked() bool {
	proofs := pm.pools.orphansOldestFirst()
	sort.Slice(proofs, func(i, j int) bool { return IsBetter(proofs[i], proofs[j]) })

	changed := false
	for _, proof := range proofs {
		if _, ok := pm.pools.orphan[proof.ProofID]; !ok {
			continue // consumed earlier in this pass, e.g. capacity eviction
		}
		result, _ := pm.validator.Validate(proof)
		switch result {
		case Valid:
			pm.pools.removeOrphan(proof.ProofID)
			_, _ = pm.registerProofLocked(proof, Polite, false)
			changed = true
		case Invalid:
			pm.pools.removeOrphan(proof.ProofID)
			changed = true
		case NeedsUtxo:
			// Remains an orphan.
		}
	}
	return changed
}

// rescanValidLocked re-validates every valid-pool peer's proof, demoting
// any that no longer validates and promoting the best conflicting-pool
// contender for the freed stake, if one now validates.
func (pm *PeerManager) rescanValidLocked() bool {
	ids := make([]chainhash.Hash, 0, len(pm.pools.valid))
	for id := range pm.pools.valid {
		ids = append(ids, id)
	}

	changed := false
	for _, id := range ids {
		entry, ok := pm.pools.valid[id]
		if !ok {
			continue
		}
		result, _ := pm.validator.Validate(entry.proof)
		if result == Valid {
			continue
		}

		pm.demotePeerLocked(id)
		pm.pools.removeValid(id)
		changed = true

		if result == NeedsUtxo {
			pm.pools.insertOrphan(entry.proof)
		}

		if pm.promoteBestConflictingLocked(outpointSet(entry.proof)) {
			changed = true
		}
	}
	return changed
}

// promoteBestConflictingLocked finds the best conflicting-pool entry
// touching outpoints that currently validates and promotes it, if any.
func (pm *PeerManager) promoteBestConflictingLocked(outpoints map[wire.OutPoint]struct{}) bool {
	candidates := pm.pools.conflictingTouching(outpoints)
	var best *Proof
	for _, c := range candidates {
		if result, _ := pm.validator.Validate(c); result != Valid {
			continue
		}
		if best == nil || IsBetter(c, best) {
			best = c
		}
	}
	if best == nil {
		return false
	}
	pm.pools.removeConflicting(best.ProofID)
	_, _ = pm.registerProofLocked(best, ForceAccept, false)
	return true
}

// rescanConflictingLocked promotes any conflicting-pool entry that no
// longer overlaps a live valid-pool proof, e.g. because rescanValidLocked
// demoted the colliding peer but no waiting contender happened to touch
// the exact same conflict-key set checked there.
func (pm *PeerManager) rescanConflictingLocked() bool {
	ids := make([]chainhash.Hash, 0, len(pm.pools.conflicting))
	for id := range pm.pools.conflicting {
		ids = append(ids, id)
	}

	changed := false
	for _, id := range ids {
		entry, ok := pm.pools.conflicting[id]
		if !ok {
			continue
		}
		result, _ := pm.validator.Validate(entry.proof)
		if result != Valid {
			continue
		}
		if len(pm.pools.conflictsWithValid(entry.proof)) > 0 {
			continue
		}
		pm.pools.removeConflicting(id)
		if _, err := pm.registerProofLocked(entry.proof, ForceAccept, false); err == nil {
			changed = true
		}
	}
	return changed
}
