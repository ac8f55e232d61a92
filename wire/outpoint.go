// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// Tree identifiers for the two transaction trees that make up a Decred
// block: the regular transaction tree and the stake transaction tree.
const (
	TxTreeRegular int8 = 0
	TxTreeStake   int8 = 1
)

// MaxPrevOutIndex is the maximum index that can be used in a previous
// output point.
const MaxPrevOutIndex uint32 = 0xffffffff

// OutPoint defines a data type that is used to track previous transaction
// outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
	Tree  int8
}

// NewOutPoint returns a new transaction outpoint point with the provided
// hash, index, and tree.
func NewOutPoint(hash *chainhash.Hash, index uint32, tree int8) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
		Tree:  tree,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.Hash, o.Index)
}
