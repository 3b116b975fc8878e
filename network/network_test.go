package network_test

import (
	"encoding/hex"
	"testing"

	"github.com/anoideaopen/signedmessage/network"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
)

const (
	testAddress = "yZKdLYCvDXa2kyQr8Tg3N6c3xeZoK7XDcj"
	testPubKey  = "0293126ccc927c111b88a0fe09baa0eca719e2a3e087e8a5d1059163f5c566feef"
)

func testPublicKey(t *testing.T) *btcec.PublicKey {
	t.Helper()

	raw, err := hex.DecodeString(testPubKey)
	require.NoError(t, err)
	pub, err := btcec.ParsePubKey(raw)
	require.NoError(t, err)
	return pub
}

func TestByName(t *testing.T) {
	for _, name := range network.Names() {
		n, err := network.ByName(name)
		require.NoError(t, err)
		require.Equal(t, name, n.String())
	}

	n, err := network.ByName(" Axe-Testnet ")
	require.NoError(t, err)
	require.Equal(t, network.AxeTestNet, n)

	_, err = network.ByName("dogecoin")
	require.ErrorContains(t, err, "unknown network")
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{"axe", "axe-testnet", "bitcoin", "bitcoin-testnet"}, network.Names())
}

func TestAddressFromPublicKey(t *testing.T) {
	pub := testPublicKey(t)

	for _, tc := range []struct {
		net        *network.Network
		compressed bool
		expected   string
	}{
		{network.AxeTestNet, true, testAddress},
		{network.AxeTestNet, false, "yPS54NboyrVvFdWUmBSJZPe8twVCLE8Lft"},
		{network.AxeMainNet, true, "PMbMeJsRsCBZF8ZV3oMx9SUBTmfcuFVR5G"},
		{network.BitcoinTestNet, true, "mtX8nPZZdJ8d3QNLRJ1oJTiEi26Sj6LQXS"},
	} {
		addr, err := network.AddressFromPublicKey(pub, tc.compressed, tc.net)
		require.NoError(t, err)
		require.Equal(t, tc.expected, addr.String())
		require.Equal(t, tc.net, addr.Network())
	}

	_, err := network.AddressFromPublicKey(nil, true, network.AxeTestNet)
	require.Error(t, err)
	_, err = network.AddressFromPublicKey(pub, true, nil)
	require.ErrorIs(t, err, network.ErrNilNetwork)
}

func TestParseAddress(t *testing.T) {
	addr, err := network.ParseAddress(testAddress, network.AxeTestNet)
	require.NoError(t, err)
	require.Equal(t, testAddress, addr.String())
	require.Equal(t, network.AxeTestNet, addr.Network())

	derived, err := network.AddressFromPublicKey(testPublicKey(t), true, network.AxeTestNet)
	require.NoError(t, err)
	require.True(t, addr.Equal(derived))
	require.Equal(t, derived.Hash160(), addr.Hash160())

	other, err := network.ParseAddress("yj3v6A6gQkiRbChbGwvahiFZ6EfpYxk9na", network.AxeTestNet)
	require.NoError(t, err)
	require.False(t, addr.Equal(other))
	require.False(t, addr.Equal(nil))
}

func TestParseAddressInvalid(t *testing.T) {
	for name, input := range map[string]string{
		"empty":        "",
		"garbage":      "not an address",
		"checksum":     "yZKdLYCvDXa2kyQr8Tg3N6c3xeZoK7XDck",
		"other net":    "PMbMeJsRsCBZF8ZV3oMx9SUBTmfcuFVR5G",
		"bitcoin test": "mtX8nPZZdJ8d3QNLRJ1oJTiEi26Sj6LQXS",
		"pubkey hex":   testPubKey,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := network.ParseAddress(input, network.AxeTestNet)
			require.ErrorIs(t, err, network.ErrInvalidAddress)
		})
	}

	_, err := network.ParseAddress(testAddress, nil)
	require.ErrorIs(t, err, network.ErrNilNetwork)
}
