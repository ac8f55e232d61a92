// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avalanchesvc

import (
	"github.com/decred/dcrd/internal/avalanche"
	"github.com/decred/dcrd/wire"
)

// UtxoEntry describes the subset of a chain's UTXO entry that proof
// validation needs to cross-check a staked outpoint against.
type UtxoEntry struct {
	Amount     int64
	Height     int32
	IsCoinbase bool
	Spent      bool
}

// UtxoChecker is the chain-side collaborator a ChainValidator consults. It
// is satisfied by a thin wrapper around the real UTXO set (e.g. a
// blockchain.BlockChain's cached view); avalanchesvc never touches the
// UTXO set directly.
type UtxoChecker interface {
	// FetchUtxoEntry returns the current UTXO entry for op, or (nil, nil)
	// if the outpoint does not exist or has already been spent.
	FetchUtxoEntry(op wire.OutPoint) (*UtxoEntry, error)
}

// SignatureChecker verifies the cryptographic portions of a proof
// (master-key ownership, per-stake signatures, delegation chains) that
// avalanchesvc itself does not implement.
type SignatureChecker interface {
	// CheckSignatures reports whether proof's signatures and any
	// delegation chain are valid.
	CheckSignatures(proof *avalanche.Proof) error
}

// ChainValidator implements avalanche.Validator by cross-checking a
// proof's stakes against the chain's current UTXO set and its signatures
// against the injected SignatureChecker. It is the only bridge between the
// peer manager and chain state: as the chainlistener.go entry in DESIGN.md
// records, the peer manager's
// own chain listener never queries UtxoChecker directly, instead
// delegating every re-validation back through this same Validate call.
type ChainValidator struct {
	utxo UtxoChecker
	sig  SignatureChecker
}

// NewChainValidator returns a ChainValidator backed by utxo and sig.
func NewChainValidator(utxo UtxoChecker, sig SignatureChecker) *ChainValidator {
	return &ChainValidator{utxo: utxo, sig: sig}
}

// Validate implements avalanche.Validator.
func (v *ChainValidator) Validate(proof *avalanche.Proof) (avalanche.ValidationResult, error) {
	if len(proof.Stakes) == 0 {
		return avalanche.Invalid, errNoStakes
	}
	if err := v.sig.CheckSignatures(proof); err != nil {
		return avalanche.Invalid, err
	}

	for _, st := range proof.Stakes {
		entry, err := v.utxo.FetchUtxoEntry(st.Outpoint)
		if err != nil {
			return avalanche.Invalid, err
		}
		if entry == nil || entry.Spent {
			return avalanche.NeedsUtxo, nil
		}
		if entry.Amount != st.Amount || entry.Height != st.Height ||
			entry.IsCoinbase != st.IsCoinbase {
			return avalanche.NeedsUtxo, nil
		}
	}
	return avalanche.Valid, nil
}

var errNoStakes = chainValidatorError("proof stakes no outpoints")

type chainValidatorError string

func (e chainValidatorError) Error() string { return string(e) }
