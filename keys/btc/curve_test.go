package btc_test

import (
	"crypto/sha256"
	"testing"

	"github.com/anoideaopen/signedmessage/keys/btc"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
)

func TestSignRecoverVerify(t *testing.T) {
	key, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	hash := sha256.Sum256([]byte("digest"))
	curve := btc.Curve{}

	for _, compressed := range []bool{true, false} {
		sig, err := curve.SignCompact(key, hash[:], compressed)
		require.NoError(t, err)
		require.Len(t, sig, 65)

		pub, wasCompressed, err := curve.RecoverCompact(sig, hash[:])
		require.NoError(t, err)
		require.Equal(t, compressed, wasCompressed)
		require.True(t, pub.IsEqual(key.PubKey()))

		require.True(t, curve.Verify(key.PubKey(), hash[:], sig[1:33], sig[33:]))
		other := sha256.Sum256([]byte("other"))
		require.False(t, curve.Verify(key.PubKey(), other[:], sig[1:33], sig[33:]))
	}
}

func TestVerifyRejectsOutOfRange(t *testing.T) {
	key, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	hash := sha256.Sum256([]byte("digest"))
	curve := btc.Curve{}

	sig, err := curve.SignCompact(key, hash[:], true)
	require.NoError(t, err)

	zero := make([]byte, 32)
	overflow := make([]byte, 32)
	for i := range overflow {
		overflow[i] = 0xff
	}

	require.False(t, curve.Verify(key.PubKey(), hash[:], zero, sig[33:]))
	require.False(t, curve.Verify(key.PubKey(), hash[:], sig[1:33], zero))
	require.False(t, curve.Verify(key.PubKey(), hash[:], overflow, sig[33:]))
	require.False(t, curve.Verify(key.PubKey(), hash[:], sig[1:33], overflow))
	require.False(t, curve.Verify(key.PubKey(), hash[:], sig[1:32], sig[33:]))
	require.False(t, curve.Verify(nil, hash[:], sig[1:33], sig[33:]))
}

func TestSignCompactHeader(t *testing.T) {
	key, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	hash := sha256.Sum256([]byte("digest"))
	curve := btc.Curve{}

	sig, err := curve.SignCompact(key, hash[:], true)
	require.NoError(t, err)
	require.GreaterOrEqual(t, sig[0], byte(31))
	require.LessOrEqual(t, sig[0], byte(34))

	sig, err = curve.SignCompact(key, hash[:], false)
	require.NoError(t, err)
	require.GreaterOrEqual(t, sig[0], byte(27))
	require.LessOrEqual(t, sig[0], byte(30))
}
