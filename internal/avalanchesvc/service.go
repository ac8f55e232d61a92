// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avalanchesvc wires the in-memory avalanche.PeerManager to the
// surrounding process: it adapts the chain's UTXO state into the peer
// manager's injected Validator, relays newly accepted proofs to the
// network, and exposes the RPC-facing operations named in SPEC_FULL.md §6
// as plain Go methods a JSON-RPC handler can call directly.
package avalanchesvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/internal/avalanche"
	"github.com/decred/dcrd/rpc/avalanchetypes"
	"github.com/decred/dcrd/wire"
)

// ProofCodec parses and serializes the hex-encoded wire format of a proof,
// and performs the stake cryptography (signing, delegation) that the peer
// manager itself deliberately stays out of. Concrete implementations live
// outside this package; avalanchesvc only depends on the shape.
type ProofCodec interface {
	// Decode parses the hex-encoded wire representation of a proof.
	Decode(hexProof string) (*avalanche.Proof, error)

	// Encode serializes proof to its hex-encoded wire representation.
	Encode(proof *avalanche.Proof) (string, error)

	// Build assembles and signs a new proof over the given stakes under
	// masterKey, stamped with sequence and expiration.
	Build(sequence uint64, expiration int64, masterKeyWIF string, stakes []avalanchetypes.AvalancheStakeInput) (*avalanche.Proof, error)

	// Delegate produces a delegation transferring the signing authority of
	// proofID from privateKeyWIF to delegationPubKeyHex.
	Delegate(proofID chainhash.Hash, privateKeyWIF, delegationPubKeyHex string) (string, error)

	// MasterPublicKey returns the node's own avalanche master public key,
	// hex-encoded, used to answer getavalanchekey.
	MasterPublicKey() (string, error)
}

// BroadcastRelay is consulted to announce accepted proofs to the rest of
// the network. It is injected rather than owned so that avalanchesvc has
// no direct dependency on the P2P transport.
type BroadcastRelay interface {
	// RelayProof announces proofID to the network.
	RelayProof(ctx context.Context, proofID chainhash.Hash) error
}

// Config bundles a Service's collaborators.
type Config struct {
	Manager  *avalanche.PeerManager
	Codec    ProofCodec
	Relay    BroadcastRelay
	ChainCfg CooldownInfo
}

// CooldownInfo exposes the configured conflict cooldown for getavalancheinfo
// reporting, since the peer manager itself does not expose its own Config.
type CooldownInfo interface {
	ConflictCooldownSeconds() float64
}

// Service implements the avalanche RPC surface described in SPEC_FULL.md
// §6 on top of a avalanche.PeerManager.
type Service struct {
	cfg Config
}

// New returns a Service wrapping cfg.Manager.
func New(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// DrainAndRelay pulls every proof id queued by the peer manager for relay
// and hands each to the configured BroadcastRelay, logging (but not
// failing) individual relay errors. Intended to be called periodically by
// the process's main loop or block-connected notification handler.
func (s *Service) DrainAndRelay(ctx context.Context) {
	if s.cfg.Relay == nil {
		return
	}
	for _, id := range s.cfg.Manager.GetUnbroadcastProofs() {
		if err := s.cfg.Relay.RelayProof(ctx, id); err != nil {
			log.Warnf("unable to relay avalanche proof %v: %v", id, err)
		}
	}
}

// GetAvalancheKey implements the getavalanchekey RPC.
func (s *Service) GetAvalancheKey() (*avalanchetypes.GetAvalancheKeyResult, error) {
	key, err := s.cfg.Codec.MasterPublicKey()
	if err != nil {
		return nil, err
	}
	return &avalanchetypes.GetAvalancheKeyResult{Key: key}, nil
}

// AddAvalancheNode implements the addavalanchenode RPC.
func (s *Service) AddAvalancheNode(cmd *avalanchetypes.AddAvalancheNodeCmd) (bool, error) {
	id, err := chainhash.NewHashFromStr(cmd.ProofID)
	if err != nil {
		return false, fmt.Errorf("invalid proof id: %w", err)
	}
	return s.cfg.Manager.AddNode(cmd.NodeID, *id), nil
}

// BuildAvalancheProof implements the buildavalancheproof RPC.
func (s *Service) BuildAvalancheProof(cmd *avalanchetypes.BuildAvalancheProofCmd) (*avalanchetypes.BuildAvalancheProofResult, error) {
	proof, err := s.cfg.Codec.Build(cmd.Sequence, cmd.Expiration, cmd.MasterKey, cmd.Stakes)
	if err != nil {
		return nil, err
	}
	hexProof, err := s.cfg.Codec.Encode(proof)
	if err != nil {
		return nil, err
	}
	return &avalanchetypes.BuildAvalancheProofResult{
		ProofID: proof.ProofID.String(),
		Proof:   hexProof,
	}, nil
}

// DecodeAvalancheProof implements the decodeavalancheproof RPC.
func (s *Service) DecodeAvalancheProof(cmd *avalanchetypes.DecodeAvalancheProofCmd) (*avalanchetypes.DecodeAvalancheProofResult, error) {
	proof, err := s.cfg.Codec.Decode(cmd.Proof)
	if err != nil {
		return nil, err
	}
	return decodeResultFromProof(proof), nil
}

func decodeResultFromProof(proof *avalanche.Proof) *avalanchetypes.DecodeAvalancheProofResult {
	stakes := make([]avalanchetypes.AvalancheProofStakeResult, len(proof.Stakes))
	for i, st := range proof.Stakes {
		var pubKeyHex string
		if st.PubKey != nil {
			pubKeyHex = fmt.Sprintf("%x", st.PubKey.SerializeCompressed())
		}
		stakes[i] = avalanchetypes.AvalancheProofStakeResult{
			TxID:       st.Outpoint.Hash.String(),
			Vout:       st.Outpoint.Index,
			Amount:     st.Amount,
			Height:     st.Height,
			IsCoinbase: st.IsCoinbase,
			PubKey:     pubKeyHex,
		}
	}
	var masterKeyHex string
	if proof.MasterKey != nil {
		masterKeyHex = fmt.Sprintf("%x", proof.MasterKey.SerializeCompressed())
	}
	return &avalanchetypes.DecodeAvalancheProofResult{
		ProofID:   proof.ProofID.String(),
		Sequence:  proof.Sequence,
		MasterKey: masterKeyHex,
		Stakes:    stakes,
	}
}

// DelegateAvalancheProof implements the delegateavalancheproof RPC.
func (s *Service) DelegateAvalancheProof(cmd *avalanchetypes.DelegateAvalancheProofCmd) (*avalanchetypes.DelegateAvalancheProofResult, error) {
	id, err := chainhash.NewHashFromStr(cmd.ProofID)
	if err != nil {
		return nil, fmt.Errorf("invalid proof id: %w", err)
	}
	delegation, err := s.cfg.Codec.Delegate(*id, cmd.PrivateKey, cmd.DelegationKey)
	if err != nil {
		return nil, err
	}
	return &avalanchetypes.DelegateAvalancheProofResult{Delegation: delegation}, nil
}

// GetAvalancheInfo implements the getavalancheinfo RPC.
func (s *Service) GetAvalancheInfo() *avalanchetypes.GetAvalancheInfoResult {
	stats := s.cfg.Manager.Stats()
	res := &avalanchetypes.GetAvalancheInfoResult{
		Ready:             true,
		ValidPeers:        stats.ValidPeers,
		ConflictingProofs: stats.ConflictingProofs,
		OrphanProofs:      stats.OrphanProofs,
		BoundNodes:        stats.BoundNodes,
		PendingNodes:      stats.PendingNodes,
		SlotCount:         stats.SlotCount,
		Fragmentation:     stats.Fragmentation,
	}
	if s.cfg.ChainCfg != nil {
		res.CooldownSeconds = s.cfg.ChainCfg.ConflictCooldownSeconds()
	}
	return res
}

// GetAvalanchePeerInfo implements the getavalanchepeerinfo RPC.
func (s *Service) GetAvalanchePeerInfo() []avalanchetypes.GetAvalanchePeerInfoResult {
	var out []avalanchetypes.GetAvalanchePeerInfoResult
	s.cfg.Manager.ForEachPeer(func(p *avalanche.Peer) bool {
		var nodeIDs []int32
		s.cfg.Manager.ForEachNode(p.ID, func(bn *avalanche.BoundNode) bool {
			nodeIDs = append(nodeIDs, bn.NodeID)
			return true
		})
		out = append(out, avalanchetypes.GetAvalanchePeerInfoResult{
			PeerID:    uint32(p.ID),
			ProofID:   p.Proof.ProofID.String(),
			Score:     p.Score,
			NodeCount: p.NodeCount,
			NodeIDs:   nodeIDs,
			Local:     p.Local,
		})
		return true
	})
	return out
}

// GetRawAvalancheProof implements the getrawavalancheproof RPC.
func (s *Service) GetRawAvalancheProof(cmd *avalanchetypes.GetRawAvalancheProofCmd) (*avalanchetypes.GetRawAvalancheProofResult, error) {
	id, err := chainhash.NewHashFromStr(cmd.ProofID)
	if err != nil {
		return nil, fmt.Errorf("invalid proof id: %w", err)
	}
	proof, ok := s.cfg.Manager.GetProof(*id)
	if !ok {
		return nil, errors.New("proof not found")
	}
	hexProof, err := s.cfg.Codec.Encode(proof)
	if err != nil {
		return nil, err
	}
	return &avalanchetypes.GetRawAvalancheProofResult{
		Proof: hexProof,
		State: proofState(s.cfg.Manager, *id),
	}, nil
}

func proofState(mgr *avalanche.PeerManager, id chainhash.Hash) string {
	switch {
	case mgr.IsBoundToPeer(id):
		return "valid"
	case mgr.IsInConflictingPool(id):
		return "conflicting"
	case mgr.IsOrphan(id):
		return "orphan"
	default:
		return "unknown"
	}
}

// SendAvalancheProof implements the sendavalancheproof RPC: it registers the
// proof and, on success, queues it for relay.
func (s *Service) SendAvalancheProof(cmd *avalanchetypes.SendAvalancheProofCmd) (bool, error) {
	proof, err := s.cfg.Codec.Decode(cmd.Proof)
	if err != nil {
		return false, err
	}
	if _, err := s.cfg.Manager.RegisterProof(proof, avalanche.Polite); err != nil {
		return false, err
	}
	s.cfg.Manager.AddUnbroadcastProof(proof.ProofID)
	return true, nil
}

// VerifyAvalancheProof implements the verifyavalancheproof RPC. It decodes
// the proof but does not register it, matching the original
// implementation's read-only sanity check.
func (s *Service) VerifyAvalancheProof(cmd *avalanchetypes.VerifyAvalancheProofCmd) *avalanchetypes.VerifyAvalancheProofResult {
	if _, err := s.cfg.Codec.Decode(cmd.Proof); err != nil {
		return &avalanchetypes.VerifyAvalancheProofResult{Valid: false, Reason: err.Error()}
	}
	return &avalanchetypes.VerifyAvalancheProofResult{Valid: true}
}
