package keys_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/anoideaopen/signedmessage/keys"
	"github.com/anoideaopen/signedmessage/network"
	"github.com/stretchr/testify/require"
)

const (
	testWIF    = "cR4qogdN9UxLZJXCNFNwDRRZNeLRWuds9TTSuLNweFVjiaE4gPaq"
	testKeyHex = "67fd2209ce4a95f6f1d421ab3fbea47ada13df11b73b30c4d9a9f78cc80651ac"
	testPubKey = "0293126ccc927c111b88a0fe09baa0eca719e2a3e087e8a5d1059163f5c566feef"

	// secp256k1 group order
	groupOrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

func TestParseWIF(t *testing.T) {
	wif, err := keys.ParseWIF(testWIF, network.AxeTestNet)
	require.NoError(t, err)
	require.True(t, wif.CompressPubKey)
	require.Equal(t, testKeyHex, hex.EncodeToString(wif.PrivKey.Serialize()))
	require.Equal(t, testPubKey, hex.EncodeToString(wif.PrivKey.PubKey().SerializeCompressed()))

	_, err = keys.ParseWIF(testWIF, network.AxeMainNet)
	require.ErrorIs(t, err, keys.ErrInvalidPrivateKey)

	_, err = keys.ParseWIF("not a private key", network.AxeTestNet)
	require.ErrorIs(t, err, keys.ErrInvalidPrivateKey)

	_, err = keys.ParseWIF(testWIF, nil)
	require.ErrorIs(t, err, network.ErrNilNetwork)
}

func TestPrivateKeyFromHex(t *testing.T) {
	wif, err := keys.PrivateKeyFromHex(testKeyHex, network.AxeTestNet, true)
	require.NoError(t, err)
	require.Equal(t, testWIF, wif.String())

	wif, err = keys.PrivateKeyFromHex("0x"+testKeyHex, network.AxeTestNet, false)
	require.NoError(t, err)
	require.False(t, wif.CompressPubKey)

	for name, input := range map[string]string{
		"not hex": "zz",
		"short":   testKeyHex[:62],
		"zero":    strings.Repeat("00", 32),
		"order":   groupOrderHex,
		"max":     strings.Repeat("ff", 32),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := keys.PrivateKeyFromHex(input, network.AxeTestNet, true)
			require.ErrorIs(t, err, keys.ErrInvalidPrivateKey)
		})
	}
}

func TestGenerate(t *testing.T) {
	for _, compressed := range []bool{true, false} {
		wif, err := keys.Generate(network.BitcoinMainNet, compressed)
		require.NoError(t, err)
		require.Equal(t, compressed, wif.CompressPubKey)
		require.True(t, wif.IsForNet(network.BitcoinMainNet.Params))
		require.NoError(t, keys.ValidatePrivateKey(wif.PrivKey))

		parsed, err := keys.ParseWIF(wif.String(), network.BitcoinMainNet)
		require.NoError(t, err)
		require.Equal(t, wif.PrivKey.Serialize(), parsed.PrivKey.Serialize())
	}

	_, err := keys.Generate(nil, true)
	require.ErrorIs(t, err, network.ErrNilNetwork)
}

func TestValidatePrivateKey(t *testing.T) {
	require.ErrorIs(t, keys.ValidatePrivateKey(nil), keys.ErrInvalidPrivateKey)
}

func TestParsePublicKey(t *testing.T) {
	pub, err := keys.ParsePublicKey(testPubKey)
	require.NoError(t, err)
	require.Len(t, keys.PublicKeyBytes(pub, true), 33)
	require.Len(t, keys.PublicKeyBytes(pub, false), 65)

	uncompressed, err := keys.ParsePublicKey(hex.EncodeToString(keys.PublicKeyBytes(pub, false)))
	require.NoError(t, err)
	require.True(t, pub.IsEqual(uncompressed))

	for _, input := range []string{"", "zz", "02" + strings.Repeat("00", 32), testPubKey[:64]} {
		_, err = keys.ParsePublicKey(input)
		require.ErrorIs(t, err, keys.ErrInvalidPublicKey, input)
	}
}
