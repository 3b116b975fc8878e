package message

import (
	"errors"

	"github.com/anoideaopen/signedmessage/keys"
	"github.com/anoideaopen/signedmessage/network"
)

// Input errors. They abort the call; a signature that simply does not verify
// is reported through Result instead.
var (
	ErrNilMessage         = errors.New("message is nil")
	ErrNilSignature       = errors.New("signature is nil")
	ErrMalformedSignature = errors.New("malformed signature")
	ErrInvalidJSON        = errors.New("invalid message json")
	ErrInvalidPrivateKey  = keys.ErrInvalidPrivateKey
	ErrInvalidPublicKey   = keys.ErrInvalidPublicKey
	ErrInvalidAddress     = network.ErrInvalidAddress
)
