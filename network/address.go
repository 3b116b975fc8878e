package network

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrNilNetwork     = errors.New("network is nil")
)

// Address is a pay-to-pubkey-hash address bound to the network it was
// parsed for or derived on.
type Address struct {
	pkh *btcutil.AddressPubKeyHash
	net *Network
}

// ParseAddress decodes a base58check P2PKH address of the given network.
func ParseAddress(addr string, net *Network) (*Address, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if addr == "" {
		return nil, fmt.Errorf("%w: address is empty", ErrInvalidAddress)
	}

	decoded, err := btcutil.DecodeAddress(addr, net.Params)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s' on %s: %v", ErrInvalidAddress, addr, net, err)
	}
	pkh, ok := decoded.(*btcutil.AddressPubKeyHash)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is not a pay-to-pubkey-hash address", ErrInvalidAddress, addr)
	}
	if !pkh.IsForNet(net.Params) {
		return nil, fmt.Errorf("%w: '%s' does not belong to %s", ErrInvalidAddress, addr, net)
	}

	return &Address{pkh: pkh, net: net}, nil
}

// AddressFromPublicKey derives the P2PKH address of a public key. The
// compressed flag selects which serialization of the key is hashed, so the
// same key yields two different addresses.
func AddressFromPublicKey(pub *btcec.PublicKey, compressed bool, net *Network) (*Address, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if pub == nil {
		return nil, errors.New("public key is nil")
	}

	var serialized []byte
	if compressed {
		serialized = pub.SerializeCompressed()
	} else {
		serialized = pub.SerializeUncompressed()
	}

	pkh, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(serialized), net.Params)
	if err != nil {
		return nil, fmt.Errorf("deriving address: %w", err)
	}

	return &Address{pkh: pkh, net: net}, nil
}

// Network returns the network the address belongs to.
func (a *Address) Network() *Network {
	return a.net
}

// Hash160 returns the public key hash carried by the address.
func (a *Address) Hash160() [20]byte {
	return *a.pkh.Hash160()
}

func (a *Address) String() string {
	return a.pkh.EncodeAddress()
}

// Equal compares two addresses by their string form.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.String() == other.String()
}
