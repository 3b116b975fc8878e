package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

const (
	// MagicDarkCoin is the message magic of Dash-derived coins (Axe included).
	MagicDarkCoin = "DarkCoin Signed Message:\n"
	// MagicBitcoin is the message magic of Bitcoin Core.
	MagicBitcoin = "Bitcoin Signed Message:\n"
)

// Network binds coin address parameters to the message magic used by that coin.
type Network struct {
	Name         string
	Params       *chaincfg.Params
	MessageMagic string
}

func (n *Network) String() string {
	return n.Name
}

var axeMainNetParams = chaincfg.Params{
	Name:             "axe",
	Net:              wire.BitcoinNet(0xbd6b0cbf),
	DefaultPort:      "9937",
	PubKeyHashAddrID: 55,
	ScriptHashAddrID: 16,
	PrivateKeyID:     204,
	HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xad, 0xe4},
	HDPublicKeyID:    [4]byte{0x04, 0x88, 0xb2, 0x1e},
	HDCoinType:       4242,
}

var axeTestNetParams = chaincfg.Params{
	Name:             "axe-testnet",
	Net:              wire.BitcoinNet(0xffcae2ce),
	DefaultPort:      "19937",
	PubKeyHashAddrID: 140,
	ScriptHashAddrID: 19,
	PrivateKeyID:     239,
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
	HDCoinType:       1,
}

var (
	AxeMainNet = &Network{
		Name:         "axe",
		Params:       &axeMainNetParams,
		MessageMagic: MagicDarkCoin,
	}
	AxeTestNet = &Network{
		Name:         "axe-testnet",
		Params:       &axeTestNetParams,
		MessageMagic: MagicDarkCoin,
	}
	BitcoinMainNet = &Network{
		Name:         "bitcoin",
		Params:       &chaincfg.MainNetParams,
		MessageMagic: MagicBitcoin,
	}
	BitcoinTestNet = &Network{
		Name:         "bitcoin-testnet",
		Params:       &chaincfg.TestNet3Params,
		MessageMagic: MagicBitcoin,
	}
)

var networks = map[string]*Network{
	AxeMainNet.Name:     AxeMainNet,
	AxeTestNet.Name:     AxeTestNet,
	BitcoinMainNet.Name: BitcoinMainNet,
	BitcoinTestNet.Name: BitcoinTestNet,
}

// ByName returns a predefined network. Lookup is case-insensitive.
func ByName(name string) (*Network, error) {
	n, ok := networks[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown network '%s', expected one of: %s", name, strings.Join(Names(), ", "))
	}
	return n, nil
}

// Names returns the names of all predefined networks, sorted.
func Names() []string {
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
