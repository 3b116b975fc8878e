package message_test

import (
	"encoding/hex"
	"testing"

	"github.com/anoideaopen/signedmessage/message"
	"github.com/anoideaopen/signedmessage/network"
	"github.com/stretchr/testify/require"
)

func TestMagicHash(t *testing.T) {
	for _, tc := range []struct {
		name     string
		magic    string
		message  string
		expected string
	}{
		{
			name:     "darkcoin magic",
			magic:    network.MagicDarkCoin,
			message:  "hello, world",
			expected: "02fb45194ae43b76bcd5204cd7ba0e820dcb6b6b7c020cd5a039ee8d5f500f37",
		},
		{
			name:     "bitcoin magic",
			magic:    network.MagicBitcoin,
			message:  "hello, world",
			expected: "e5189df6fd400b232654b971b7e0d705601a41041c3737fd4d53974ea0d7e54e",
		},
		{
			name:     "empty message",
			magic:    network.MagicDarkCoin,
			message:  "",
			expected: "b5f0ab7af45b65bff97b1ec122fa75485edef27523aa7138e5654585204112f9",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			hash := message.New(tc.message).MagicHash(tc.magic)
			require.Equal(t, tc.expected, hex.EncodeToString(hash[:]))
		})
	}
}

func TestMagicHashDeterministic(t *testing.T) {
	m := message.New(testText)
	require.Equal(t, m.MagicHash(network.MagicDarkCoin), m.MagicHash(network.MagicDarkCoin))
	require.Equal(t, m.MagicHash(network.MagicDarkCoin), message.MagicHash(network.MagicDarkCoin, []byte(testText)))
	require.NotEqual(t, m.MagicHash(network.MagicDarkCoin), message.New(testText+" ").MagicHash(network.MagicDarkCoin))
	require.NotEqual(t, m.MagicHash(network.MagicDarkCoin), m.MagicHash(network.MagicBitcoin))
}

func TestMagicHashLongMessage(t *testing.T) {
	// 0xfd and above switch the length prefix to the 3-byte form
	short := make([]byte, 0xfc)
	long := make([]byte, 0xfd)
	require.NotEqual(t,
		message.MagicHash(network.MagicDarkCoin, short),
		message.MagicHash(network.MagicDarkCoin, long),
	)
}
