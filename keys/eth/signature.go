package eth

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	signatureLength = 64
	recoveryBits    = 27
	compressedBit   = 4
	recoveryIDMask  = 3
)

var errSignatureLength = errors.New("compact signature must be 65 bytes")

// Curve implements compact signatures on top of Ethereum crypto functions.
// Ethereum signatures are laid out as <R><S><V> with V in [0, 3]; the compact
// form moves V to the front and offsets it by 27, plus 4 for compressed keys.
type Curve struct{}

func (Curve) SignCompact(key *btcec.PrivateKey, hash []byte, compressed bool) ([]byte, error) {
	privateKey, err := crypto.ToECDSA(key.Serialize())
	if err != nil {
		return nil, fmt.Errorf("converting private key: %w", err)
	}

	signature, err := crypto.Sign(hash, privateKey)
	if err != nil {
		return nil, err
	}
	if len(signature) != signatureLength+1 {
		return nil, errSignatureLength
	}

	header := signature[signatureLength] + recoveryBits
	if compressed {
		header += compressedBit
	}

	compact := make([]byte, 0, signatureLength+1)
	compact = append(compact, header)
	compact = append(compact, signature[:signatureLength]...)
	return compact, nil
}

func (Curve) RecoverCompact(signature, hash []byte) (*btcec.PublicKey, bool, error) {
	if len(signature) != signatureLength+1 {
		return nil, false, errSignatureLength
	}
	header := signature[0]
	if header < recoveryBits || header >= recoveryBits+2*compressedBit {
		return nil, false, fmt.Errorf("invalid compact signature header %d", header)
	}
	code := header - recoveryBits

	rsv := make([]byte, signatureLength+1)
	copy(rsv, signature[1:])
	rsv[signatureLength] = code & recoveryIDMask

	raw, err := crypto.Ecrecover(hash, rsv)
	if err != nil {
		return nil, false, err
	}
	pub, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, false, err
	}

	return pub, code&compressedBit != 0, nil
}

// Verify checks that key created the (r, s) signature over hash. Ethereum
// rejects signatures with s in the upper half of the group order.
func (Curve) Verify(key *btcec.PublicKey, hash, r, s []byte) bool {
	if key == nil || len(r) != 32 || len(s) != 32 {
		return false
	}

	rs := make([]byte, 0, signatureLength)
	rs = append(rs, r...)
	rs = append(rs, s...)
	return crypto.VerifySignature(key.SerializeUncompressed(), hash, rs)
}
