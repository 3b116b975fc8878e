package keys

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/anoideaopen/signedmessage/network"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// PrivateKeyLength is the length of a raw secp256k1 private scalar.
const PrivateKeyLength = btcec.PrivKeyBytesLen

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidPublicKey  = errors.New("invalid public key")
)

// Generate creates a random private key for the network. The compressed flag
// selects which public key serialization the key signs for.
func Generate(net *network.Network, compressed bool) (*btcutil.WIF, error) {
	if net == nil {
		return nil, network.ErrNilNetwork
	}
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generating secp256k1 key: %w", err)
	}
	return btcutil.NewWIF(key, net.Params, compressed)
}

// ParseWIF decodes a wallet import format private key of the given network.
func ParseWIF(encoded string, net *network.Network) (*btcutil.WIF, error) {
	if net == nil {
		return nil, network.ErrNilNetwork
	}
	encoded = strings.TrimSpace(encoded)

	wif, err := btcutil.DecodeWIF(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	if !wif.IsForNet(net.Params) {
		return nil, fmt.Errorf("%w: WIF does not belong to %s", ErrInvalidPrivateKey, net)
	}

	// DecodeWIF reduces the scalar modulo the group order, so the range
	// check has to look at the encoded bytes.
	payload := base58.Decode(encoded)
	if len(payload) < 1+PrivateKeyLength {
		return nil, fmt.Errorf("%w: WIF payload is too short", ErrInvalidPrivateKey)
	}
	if err = validateScalar(payload[1 : 1+PrivateKeyLength]); err != nil {
		return nil, err
	}

	return wif, nil
}

// PrivateKeyFromHex builds a private key from its hex encoded 32-byte scalar.
func PrivateKeyFromHex(hexEncoded string, net *network.Network, compressed bool) (*btcutil.WIF, error) {
	if net == nil {
		return nil, network.ErrNilNetwork
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(hexEncoded), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	if err = validateScalar(raw); err != nil {
		return nil, err
	}

	key, _ := btcec.PrivKeyFromBytes(raw)
	return btcutil.NewWIF(key, net.Params, compressed)
}

// ValidatePrivateKey checks that the key holds a usable scalar.
func ValidatePrivateKey(key *btcec.PrivateKey) error {
	if key == nil {
		return fmt.Errorf("%w: key is nil", ErrInvalidPrivateKey)
	}
	if key.Key.IsZero() {
		return fmt.Errorf("%w: scalar is zero", ErrInvalidPrivateKey)
	}
	return nil
}

// ParsePublicKey decodes a hex encoded compressed or uncompressed public key.
func ParsePublicKey(hexEncoded string) (*btcec.PublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(hexEncoded), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	pub, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return pub, nil
}

// PublicKeyBytes returns the compressed or uncompressed serialization of a key
func PublicKeyBytes(pub *btcec.PublicKey, compressed bool) []byte {
	if compressed {
		return pub.SerializeCompressed()
	}
	return pub.SerializeUncompressed()
}

func validateScalar(raw []byte) error {
	if len(raw) != PrivateKeyLength {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPrivateKey, PrivateKeyLength, len(raw))
	}

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow {
		return fmt.Errorf("%w: scalar is not below the group order", ErrInvalidPrivateKey)
	}
	if scalar.IsZero() {
		return fmt.Errorf("%w: scalar is zero", ErrInvalidPrivateKey)
	}
	return nil
}
