// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// NOTE: This file is intended to house the RPC commands that are supported
// by an avalanche-enabled server.

package avalanchetypes

import "github.com/decred/dcrd/dcrjson/v4"

// GetAvalancheKeyCmd defines the getavalanchekey JSON-RPC command.
type GetAvalancheKeyCmd struct{}

// NewGetAvalancheKeyCmd returns a new instance which can be used to issue a
// getavalanchekey JSON-RPC command.
func NewGetAvalancheKeyCmd() *GetAvalancheKeyCmd {
	return &GetAvalancheKeyCmd{}
}

// AddAvalancheNodeCmd defines the addavalanchenode JSON-RPC command.
type AddAvalancheNodeCmd struct {
	NodeID  int32
	ProofID string
	PubKey  *string
}

// NewAddAvalancheNodeCmd returns a new instance which can be used to issue an
// addavalanchenode JSON-RPC command.
func NewAddAvalancheNodeCmd(nodeID int32, proofID string, pubKey *string) *AddAvalancheNodeCmd {
	return &AddAvalancheNodeCmd{
		NodeID:  nodeID,
		ProofID: proofID,
		PubKey:  pubKey,
	}
}

// AvalancheStakeInput represents a single staked outpoint supplied to
// buildavalancheproof, identifying the UTXO and the private key that signs
// for it.
type AvalancheStakeInput struct {
	TxID       string
	Vout       uint32
	Amount     int64
	PrivateKey string
}

// BuildAvalancheProofCmd defines the buildavalancheproof JSON-RPC command.
type BuildAvalancheProofCmd struct {
	Sequence  uint64
	Expiration int64
	MasterKey string
	Stakes    []AvalancheStakeInput
}

// NewBuildAvalancheProofCmd returns a new instance which can be used to
// issue a buildavalancheproof JSON-RPC command.
func NewBuildAvalancheProofCmd(sequence uint64, expiration int64, masterKey string, stakes []AvalancheStakeInput) *BuildAvalancheProofCmd {
	return &BuildAvalancheProofCmd{
		Sequence:   sequence,
		Expiration: expiration,
		MasterKey:  masterKey,
		Stakes:     stakes,
	}
}

// DecodeAvalancheProofCmd defines the decodeavalancheproof JSON-RPC command.
type DecodeAvalancheProofCmd struct {
	Proof string
}

// NewDecodeAvalancheProofCmd returns a new instance which can be used to
// issue a decodeavalancheproof JSON-RPC command.
func NewDecodeAvalancheProofCmd(proof string) *DecodeAvalancheProofCmd {
	return &DecodeAvalancheProofCmd{Proof: proof}
}

// DelegateAvalancheProofCmd defines the delegateavalancheproof JSON-RPC
// command.
type DelegateAvalancheProofCmd struct {
	ProofID       string
	PrivateKey    string
	DelegationKey string
}

// NewDelegateAvalancheProofCmd returns a new instance which can be used to
// issue a delegateavalancheproof JSON-RPC command.
func NewDelegateAvalancheProofCmd(proofID, privateKey, delegationKey string) *DelegateAvalancheProofCmd {
	return &DelegateAvalancheProofCmd{
		ProofID:       proofID,
		PrivateKey:    privateKey,
		DelegationKey: delegationKey,
	}
}

// GetAvalancheInfoCmd defines the getavalancheinfo JSON-RPC command.
type GetAvalancheInfoCmd struct{}

// NewGetAvalancheInfoCmd returns a new instance which can be used to issue a
// getavalancheinfo JSON-RPC command.
func NewGetAvalancheInfoCmd() *GetAvalancheInfoCmd {
	return &GetAvalancheInfoCmd{}
}

// GetAvalanchePeerInfoCmd defines the getavalanchepeerinfo JSON-RPC command.
type GetAvalanchePeerInfoCmd struct{}

// NewGetAvalanchePeerInfoCmd returns a new instance which can be used to
// issue a getavalanchepeerinfo JSON-RPC command.
func NewGetAvalanchePeerInfoCmd() *GetAvalanchePeerInfoCmd {
	return &GetAvalanchePeerInfoCmd{}
}

// GetRawAvalancheProofCmd defines the getrawavalancheproof JSON-RPC command.
type GetRawAvalancheProofCmd struct {
	ProofID string
}

// NewGetRawAvalancheProofCmd returns a new instance which can be used to
// issue a getrawavalancheproof JSON-RPC command.
func NewGetRawAvalancheProofCmd(proofID string) *GetRawAvalancheProofCmd {
	return &GetRawAvalancheProofCmd{ProofID: proofID}
}

// SendAvalancheProofCmd defines the sendavalancheproof JSON-RPC command.
type SendAvalancheProofCmd struct {
	Proof string
}

// NewSendAvalancheProofCmd returns a new instance which can be used to issue
// a sendavalancheproof JSON-RPC command.
func NewSendAvalancheProofCmd(proof string) *SendAvalancheProofCmd {
	return &SendAvalancheProofCmd{Proof: proof}
}

// VerifyAvalancheProofCmd defines the verifyavalancheproof JSON-RPC command.
type VerifyAvalancheProofCmd struct {
	Proof string
}

// NewVerifyAvalancheProofCmd returns a new instance which can be used to
// issue a verifyavalancheproof JSON-RPC command.
func NewVerifyAvalancheProofCmd(proof string) *VerifyAvalancheProofCmd {
	return &VerifyAvalancheProofCmd{Proof: proof}
}

func init() {
	flags := dcrjson.UsageFlag(0)

	dcrjson.MustRegister("getavalanchekey", (*GetAvalancheKeyCmd)(nil), flags)
	dcrjson.MustRegister("addavalanchenode", (*AddAvalancheNodeCmd)(nil), flags)
	dcrjson.MustRegister("buildavalancheproof", (*BuildAvalancheProofCmd)(nil), flags)
	dcrjson.MustRegister("decodeavalancheproof", (*DecodeAvalancheProofCmd)(nil), flags)
	dcrjson.MustRegister("delegateavalancheproof", (*DelegateAvalancheProofCmd)(nil), flags)
	dcrjson.MustRegister("getavalancheinfo", (*GetAvalancheInfoCmd)(nil), flags)
	dcrjson.MustRegister("getavalanchepeerinfo", (*GetAvalanchePeerInfoCmd)(nil), flags)
	dcrjson.MustRegister("getrawavalancheproof", (*GetRawAvalancheProofCmd)(nil), flags)
	dcrjson.MustRegister("sendavalancheproof", (*SendAvalancheProofCmd)(nil), flags)
	dcrjson.MustRegister("verifyavalancheproof", (*VerifyAvalancheProofCmd)(nil), flags)
}
