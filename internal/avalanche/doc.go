// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avalanche implements the peer manager for a Sybil-resistant
// stake-weighted voting layer.
//
// The manager admits proofs of stake submitted by would-be voting peers,
// binds network node identities to accepted proofs, resolves conflicts
// between proofs that share underlying stake, tracks proofs whose stake is
// not yet visible in the UTXO snapshot, and performs stake-weighted random
// selection of a peer or a node for the next voting round.
//
// The package is organized around a handful of components that the
// [PeerManager] façade coordinates under a single lock:
//
//   - a slot sampler ([sampler]) backed by a fragmentable array of
//     half-open intervals for O(log N) weighted selection,
//   - three mutually exclusive proof pools ([proofPools]) — valid,
//     conflicting, and orphan,
//   - a peer table ([peerTable]) mapping dense peer ids to accepted
//     proofs and their slot ranges,
//   - a node table ([nodeTable]) binding external node identities to
//     peers, with a pending sub-table for nodes awaiting an unknown
//     proof,
//   - a conflict resolver ([IsBetter]) giving a strict total order over
//     proofs that share stake, and
//   - a chain listener ([PeerManager.UpdatedBlockTip]) that re-drives
//     the pipeline whenever the caller's UTXO snapshot changes.
//
// Everything the package needs from the outside world — proof validation,
// wall-clock time, and randomness — is injected. The package does no I/O,
// does not persist state across restarts, and does not replicate state
// across peer manager instances.
package avalanche
