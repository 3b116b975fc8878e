package message

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// MagicHash computes the digest that is actually signed:
//
//	sha256d(varint(len(magic)) || magic || varint(len(msg)) || msg)
//
// Lengths use the Bitcoin CompactSize encoding.
func MagicHash(magic string, msg []byte) chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(wire.VarIntSerializeSize(uint64(len(magic))) + len(magic) +
		wire.VarIntSerializeSize(uint64(len(msg))) + len(msg))

	// writes to a bytes.Buffer do not fail
	_ = wire.WriteVarString(&buf, 0, magic)
	_ = wire.WriteVarBytes(&buf, 0, msg)

	return chainhash.DoubleHashH(buf.Bytes())
}

// MagicHash returns the digest of the message under the given magic.
func (m *Message) MagicHash(magic string) chainhash.Hash {
	return MagicHash(magic, m.Bytes())
}
