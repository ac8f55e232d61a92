// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avalanchecodec implements avalanchesvc.ProofCodec: it parses and
// serializes the wire format of an avalanche proof and performs the stake
// cryptography (signing, delegation) that internal/avalanche deliberately
// stays out of.
package avalanchecodec

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/decred/base58"
	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/container/lru"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/internal/avalanche"
	"github.com/decred/dcrd/rpc/avalanchetypes"
	"github.com/decred/dcrd/wire"
)

// maxCachedSignatures bounds the codec's proof id -> signature cache, used
// so Encode can re-serialize a proof that was Decode'd or Build'd earlier
// in the process's lifetime without needing the signature threaded back in
// by the caller.
const maxCachedSignatures = 4096

// wifNetID identifies the network byte prepended to a WIF-encoded private
// key managed by this codec. It is unrelated to any chain's own address
// version bytes, since this package never derives addresses.
const wifNetID = 0x80

var (
	errMalformedWIF  = errors.New("avalanchecodec: malformed WIF-encoded key")
	errWIFChecksum   = errors.New("avalanchecodec: WIF checksum mismatch")
	errMalformedHex  = errors.New("avalanchecodec: malformed hex-encoded proof")
	errNoMasterKey   = errors.New("avalanchecodec: node has no local master key configured")
)

// decodeWIF recovers a secp256k1 private key from its WIF encoding.
func decodeWIF(wif string) (*secp256k1.PrivateKey, error) {
	decoded := base58.Decode(wif)
	if len(decoded) != 1+32+4 {
		return nil, errMalformedWIF
	}
	payload := decoded[:len(decoded)-4]
	checksum := decoded[len(decoded)-4:]
	want := chainhash.HashB(chainhash.HashB(payload))
	if !bytes.Equal(want[:4], checksum) {
		return nil, errWIFChecksum
	}
	if payload[0] != wifNetID {
		return nil, errMalformedWIF
	}
	return secp256k1.PrivKeyFromBytes(payload[1:]), nil
}

// encodeWIF is the inverse of decodeWIF.
func encodeWIF(key *secp256k1.PrivateKey) string {
	payload := make([]byte, 0, 1+32)
	payload = append(payload, wifNetID)
	payload = append(payload, key.Serialize()...)
	checksum := chainhash.HashB(chainhash.HashB(payload))
	payload = append(payload, checksum[:4]...)
	return base58.Encode(payload)
}

// Codec implements avalanchesvc.ProofCodec.
type Codec struct {
	// localMasterKey signs this node's own proofs when set via
	// SetLocalMasterKey.
	localMasterKey *secp256k1.PrivateKey

	signatures *lru.Map[chainhash.Hash, []byte]
}

// New returns an empty Codec. Call SetLocalMasterKey to enable signing of
// locally-originated proofs and to answer getavalanchekey.
func New() *Codec {
	return &Codec{
		signatures: lru.NewMap[chainhash.Hash, []byte](maxCachedSignatures),
	}
}

// SetLocalMasterKey configures the node's own avalanche master private key
// from its WIF encoding.
func (c *Codec) SetLocalMasterKey(wif string) error {
	key, err := decodeWIF(wif)
	if err != nil {
		return err
	}
	c.localMasterKey = key
	return nil
}

// MasterPublicKey implements avalanchesvc.ProofCodec.
func (c *Codec) MasterPublicKey() (string, error) {
	if c.localMasterKey == nil {
		return "", errNoMasterKey
	}
	return hex.EncodeToString(c.localMasterKey.PubKey().SerializeCompressed()), nil
}

// signedDigest returns the digest a proof's signature commits to: every
// field except the signature itself, in a fixed order.
func signedDigest(masterPub *secp256k1.PublicKey, sequence uint64, stakes []avalanche.Stake) []byte {
	var buf bytes.Buffer
	buf.Write(masterPub.SerializeCompressed())
	var seqBytes [8]byte
	binary.LittleEndian.PutUint64(seqBytes[:], sequence)
	buf.Write(seqBytes[:])
	for _, st := range stakes {
		buf.Write(st.Outpoint.Hash[:])
		var idx [4]byte
		binary.LittleEndian.PutUint32(idx[:], st.Outpoint.Index)
		buf.Write(idx[:])
		buf.WriteByte(byte(st.Outpoint.Tree))
		var amt [8]byte
		binary.LittleEndian.PutUint64(amt[:], uint64(st.Amount))
		buf.Write(amt[:])
		var height [4]byte
		binary.LittleEndian.PutUint32(height[:], uint32(st.Height))
		buf.Write(height[:])
		if st.IsCoinbase {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
		buf.Write(st.PubKey.SerializeCompressed())
	}
	return chainhash.HashB(buf.Bytes())
}

// Build implements avalanchesvc.ProofCodec.
func (c *Codec) Build(sequence uint64, expiration int64, masterKeyWIF string, stakeInputs []avalanchetypes.AvalancheStakeInput) (*avalanche.Proof, error) {
	masterKey, err := decodeWIF(masterKeyWIF)
	if err != nil {
		return nil, err
	}
	if len(stakeInputs) == 0 {
		return nil, errors.New("avalanchecodec: a proof must stake at least one output")
	}

	stakes := make([]avalanche.Stake, len(stakeInputs))
	for i, in := range stakeInputs {
		txHash, err := chainhash.NewHashFromStr(in.TxID)
		if err != nil {
			return nil, fmt.Errorf("avalanchecodec: invalid stake txid: %w", err)
		}
		stakeKey, err := decodeWIF(in.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("avalanchecodec: invalid stake private key: %w", err)
		}
		stakes[i] = avalanche.Stake{
			Outpoint: wire.OutPoint{Hash: *txHash, Index: in.Vout, Tree: wire.TxTreeRegular},
			Amount:   in.Amount,
			PubKey:   stakeKey.PubKey(),
		}
	}

	masterPub := masterKey.PubKey()
	digest := signedDigest(masterPub, sequence, stakes)
	sig := masterKey.Sign(digest)
	sigBytes := sig.Serialize()

	proofID := chainhash.HashH(append(digest, sigBytes...))
	c.signatures.Put(proofID, sigBytes)

	return &avalanche.Proof{
		ProofID:   proofID,
		MasterKey: masterPub,
		Sequence:  sequence,
		Stakes:    stakes,
	}, nil
}

// Encode implements avalanchesvc.ProofCodec.
func (c *Codec) Encode(proof *avalanche.Proof) (string, error) {
	var buf bytes.Buffer

	masterPubBytes := proof.MasterKey.SerializeCompressed()
	buf.WriteByte(byte(len(masterPubBytes)))
	buf.Write(masterPubBytes)

	var seqBytes [8]byte
	binary.LittleEndian.PutUint64(seqBytes[:], proof.Sequence)
	buf.Write(seqBytes[:])

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(proof.Stakes)))
	buf.Write(count[:])

	for _, st := range proof.Stakes {
		buf.Write(st.Outpoint.Hash[:])
		var idx [4]byte
		binary.LittleEndian.PutUint32(idx[:], st.Outpoint.Index)
		buf.Write(idx[:])
		buf.WriteByte(byte(st.Outpoint.Tree))
		var amt [8]byte
		binary.LittleEndian.PutUint64(amt[:], uint64(st.Amount))
		buf.Write(amt[:])
		var height [4]byte
		binary.LittleEndian.PutUint32(height[:], uint32(st.Height))
		buf.Write(height[:])
		if st.IsCoinbase {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
		pubBytes := st.PubKey.SerializeCompressed()
		buf.WriteByte(byte(len(pubBytes)))
		buf.Write(pubBytes)
	}

	sig, ok := c.signatures.Get(proof.ProofID)
	if !ok {
		return "", fmt.Errorf("avalanchecodec: no signature on file for proof %s", proof.ProofID)
	}
	buf.WriteByte(byte(len(sig)))
	buf.Write(sig)

	return hex.EncodeToString(buf.Bytes()), nil
}

// Decode implements avalanchesvc.ProofCodec.
func (c *Codec) Decode(hexProof string) (*avalanche.Proof, error) {
	raw, err := hex.DecodeString(hexProof)
	if err != nil {
		return nil, errMalformedHex
	}
	r := bytes.NewReader(raw)

	pubLen, err := r.ReadByte()
	if err != nil {
		return nil, errMalformedHex
	}
	masterPubBytes := make([]byte, pubLen)
	if _, err := readFull(r, masterPubBytes); err != nil {
		return nil, errMalformedHex
	}
	masterPub, err := secp256k1.ParsePubKey(masterPubBytes)
	if err != nil {
		return nil, fmt.Errorf("avalanchecodec: invalid master key: %w", err)
	}

	var seqBytes [8]byte
	if _, err := readFull(r, seqBytes[:]); err != nil {
		return nil, errMalformedHex
	}
	sequence := binary.LittleEndian.Uint64(seqBytes[:])

	var countBytes [4]byte
	if _, err := readFull(r, countBytes[:]); err != nil {
		return nil, errMalformedHex
	}
	count := binary.LittleEndian.Uint32(countBytes[:])

	stakes := make([]avalanche.Stake, count)
	for i := range stakes {
		var hashBytes [chainhash.HashSize]byte
		if _, err := readFull(r, hashBytes[:]); err != nil {
			return nil, errMalformedHex
		}
		var idxBytes [4]byte
		if _, err := readFull(r, idxBytes[:]); err != nil {
			return nil, errMalformedHex
		}
		treeByte, err := r.ReadByte()
		if err != nil {
			return nil, errMalformedHex
		}
		var amtBytes [8]byte
		if _, err := readFull(r, amtBytes[:]); err != nil {
			return nil, errMalformedHex
		}
		var heightBytes [4]byte
		if _, err := readFull(r, heightBytes[:]); err != nil {
			return nil, errMalformedHex
		}
		coinbaseByte, err := r.ReadByte()
		if err != nil {
			return nil, errMalformedHex
		}
		stakePubLen, err := r.ReadByte()
		if err != nil {
			return nil, errMalformedHex
		}
		stakePubBytes := make([]byte, stakePubLen)
		if _, err := readFull(r, stakePubBytes); err != nil {
			return nil, errMalformedHex
		}
		stakePub, err := secp256k1.ParsePubKey(stakePubBytes)
		if err != nil {
			return nil, fmt.Errorf("avalanchecodec: invalid stake key: %w", err)
		}

		stakes[i] = avalanche.Stake{
			Outpoint: wire.OutPoint{
				Hash:  chainhash.Hash(hashBytes),
				Index: binary.LittleEndian.Uint32(idxBytes[:]),
				Tree:  int8(treeByte),
			},
			Amount:     int64(binary.LittleEndian.Uint64(amtBytes[:])),
			Height:     int32(binary.LittleEndian.Uint32(heightBytes[:])),
			IsCoinbase: coinbaseByte == 1,
			PubKey:     stakePub,
		}
	}

	sigLen, err := r.ReadByte()
	if err != nil {
		return nil, errMalformedHex
	}
	sigBytes := make([]byte, sigLen)
	if _, err := readFull(r, sigBytes); err != nil {
		return nil, errMalformedHex
	}
	sig, err := secp256k1.ParseSignature(sigBytes)
	if err != nil {
		return nil, fmt.Errorf("avalanchecodec: invalid signature: %w", err)
	}

	digest := signedDigest(masterPub, sequence, stakes)
	if !sig.Verify(digest, masterPub) {
		return nil, errors.New("avalanchecodec: signature does not verify against proof contents")
	}
	proofID := chainhash.HashH(append(digest, sigBytes...))
	c.signatures.Put(proofID, sigBytes)

	return &avalanche.Proof{
		ProofID:   proofID,
		MasterKey: masterPub,
		Sequence:  sequence,
		Stakes:    stakes,
	}, nil
}

func readFull(r *bytes.Reader, buf []byte) (int, error) {
	n, err := r.Read(buf)
	if err == nil && n != len(buf) {
		err = errMalformedHex
	}
	return n, err
}

// Delegate implements avalanchesvc.ProofCodec. It re-signs proofID's
// delegation chain, transferring signing authority from privateKeyWIF's
// key to delegationPubKeyHex, and returns the hex-encoded delegation.
func (c *Codec) Delegate(proofID chainhash.Hash, privateKeyWIF, delegationPubKeyHex string) (string, error) {
	priv, err := decodeWIF(privateKeyWIF)
	if err != nil {
		return "", err
	}
	delegationPubBytes, err := hex.DecodeString(delegationPubKeyHex)
	if err != nil {
		return "", fmt.Errorf("avalanchecodec: invalid delegation public key: %w", err)
	}
	if _, err := secp256k1.ParsePubKey(delegationPubBytes); err != nil {
		return "", fmt.Errorf("avalanchecodec: invalid delegation public key: %w", err)
	}

	digest := chainhash.HashB(append(proofID[:], delegationPubBytes...))
	sig := priv.Sign(digest)

	var buf bytes.Buffer
	buf.Write(proofID[:])
	buf.WriteByte(byte(len(delegationPubBytes)))
	buf.Write(delegationPubBytes)
	sigBytes := sig.Serialize()
	buf.WriteByte(byte(len(sigBytes)))
	buf.Write(sigBytes)

	return hex.EncodeToString(buf.Bytes()), nil
}
