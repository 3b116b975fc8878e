package message

import (
	"encoding/base64"
	"fmt"
)

const (
	// CompactSignatureSize is the length of <header><R><S>.
	CompactSignatureSize = 1 + 32 + 32

	compactHeaderOffset = 27
	compactCompressed   = 4
	recoveryIDMask      = 3

	minCompactHeader = compactHeaderOffset
	maxCompactHeader = compactHeaderOffset + compactCompressed + recoveryIDMask
)

// CompactSignature is a recoverable secp256k1 signature. The header byte is
// 27 + recovery id, plus 4 when the signer's public key is compressed.
type CompactSignature struct {
	Header byte
	R      [32]byte
	S      [32]byte
}

// ParseCompactSignature decodes the 65-byte wire form.
func ParseCompactSignature(raw []byte) (*CompactSignature, error) {
	if len(raw) != CompactSignatureSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedSignature, CompactSignatureSize, len(raw))
	}
	if raw[0] < minCompactHeader || raw[0] > maxCompactHeader {
		return nil, fmt.Errorf("%w: header byte %d is outside [%d, %d]",
			ErrMalformedSignature, raw[0], minCompactHeader, maxCompactHeader)
	}

	sig := &CompactSignature{Header: raw[0]}
	copy(sig.R[:], raw[1:33])
	copy(sig.S[:], raw[33:])
	return sig, nil
}

// DecodeSignature decodes a base64 (standard alphabet, padded) compact signature.
func DecodeSignature(encoded string) (*CompactSignature, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}
	return ParseCompactSignature(raw)
}

// RecoveryID selects which of the candidate public keys signed.
func (s *CompactSignature) RecoveryID() byte {
	return (s.Header - compactHeaderOffset) & recoveryIDMask
}

// Compressed reports whether the signer's address hashes the compressed key.
func (s *CompactSignature) Compressed() bool {
	return (s.Header-compactHeaderOffset)&compactCompressed != 0
}

func (s *CompactSignature) Bytes() []byte {
	raw := make([]byte, CompactSignatureSize)
	raw[0] = s.Header
	copy(raw[1:33], s.R[:])
	copy(raw[33:], s.S[:])
	return raw
}

// String returns the base64 text form exchanged with other implementations.
func (s *CompactSignature) String() string {
	return base64.StdEncoding.EncodeToString(s.Bytes())
}
