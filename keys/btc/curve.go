package btc

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// Curve signs, recovers and verifies secp256k1 compact signatures with btcec.
type Curve struct{}

// SignCompact produces a <header><R><S> signature over hash. Nonces are
// derived with RFC6979, so the output is deterministic.
func (Curve) SignCompact(key *btcec.PrivateKey, hash []byte, compressed bool) ([]byte, error) {
	return ecdsa.SignCompact(key, hash, compressed), nil
}

// RecoverCompact returns the public key that produced signature over hash and
// whether the signer used the compressed serialization.
func (Curve) RecoverCompact(signature, hash []byte) (*btcec.PublicKey, bool, error) {
	return ecdsa.RecoverCompact(signature, hash)
}

// Verify checks the (r, s) pair against key and hash. Values outside
// [1, N-1] never verify.
func (Curve) Verify(key *btcec.PublicKey, hash, r, s []byte) bool {
	if key == nil {
		return false
	}

	var rs, ss btcec.ModNScalar
	if len(r) != 32 || len(s) != 32 {
		return false
	}
	if overflow := rs.SetByteSlice(r); overflow || rs.IsZero() {
		return false
	}
	if overflow := ss.SetByteSlice(s); overflow || ss.IsZero() {
		return false
	}

	return ecdsa.NewSignature(&rs, &ss).Verify(hash, key)
}
