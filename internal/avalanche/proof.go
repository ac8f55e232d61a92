// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avalanche

import (
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/wire"
)

// UnitStake is the amount of staked value, expressed in atoms, that a
// single unit of avalanche voting score represents. A proof's score is the
// number of whole units its staked amount covers.
const UnitStake = 1_000_000

// Stake is a single UTXO pledged by a proof.
type Stake struct {
	Outpoint   wire.OutPoint
	Amount     int64
	Height     int32
	IsCoinbase bool
	PubKey     *secp256k1.PublicKey
}

// Proof is a signed bundle asserting ownership of one or more UTXOs,
// establishing voting weight. The core treats a Proof as opaque beyond the
// attributes below; signature verification and stake cryptography are the
// injected Validator's responsibility.
type Proof struct {
	ProofID   chainhash.Hash
	MasterKey *secp256k1.PublicKey
	Sequence  uint64
	Stakes    []Stake
}

// StakedAmount returns the sum of every stake's amount.
func (p *Proof) StakedAmount() int64 {
	var total int64
	for _, s := range p.Stakes {
		total += s.Amount
	}
	return total
}

// StakeCount returns the number of UTXOs the proof locks.
func (p *Proof) StakeCount() int {
	return len(p.Stakes)
}

// Score returns the proof's voting weight, the staked amount expressed in
// whole UnitStake units.
func (p *Proof) Score() uint32 {
	return uint32(p.StakedAmount() / UnitStake)
}

// outpointSet returns the set of outpoints a proof stakes, suitable for
// intersection tests against another proof's stake set.
func outpointSet(p *Proof) map[wire.OutPoint]struct{} {
	set := make(map[wire.OutPoint]struct{}, len(p.Stakes))
	for _, s := range p.Stakes {
		set[s.Outpoint] = struct{}{}
	}
	return set
}

// ValidationResult is the outcome of handing a proof to the injected
// Validator.
type ValidationResult int

const (
	// Valid indicates the proof's signatures, stake cryptography, and
	// referenced UTXOs all check out against the current snapshot.
	Valid ValidationResult = iota

	// Invalid indicates the proof is malformed or cryptographically
	// unsound. It can never become valid by a UTXO snapshot change alone.
	Invalid

	// NeedsUtxo indicates the proof is well-formed but one or more of its
	// referenced outpoints are not currently visible (or do not match the
	// amount/height/coinbase flag) in the UTXO snapshot. A later snapshot
	// change may resolve this.
	NeedsUtxo
)

// Validator is injected by the caller and performs proof parsing,
// signature verification, and stake cryptography — all of which are
// deliberately out of scope for the peer manager itself. Validate may
// consult whatever UTXO snapshot the caller wired it to; the peer manager
// never queries UTXOs directly, only through this interface.
type Validator interface {
	// Validate reports whether proof is structurally and cryptographically
	// sound and whether its stake is currently visible. When the result is
	// Invalid, err should describe the reason.
	Validate(proof *Proof) (ValidationResult, error)
}

// Clock is injected so that the conflict cooldown and node scheduling logic
// can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}
