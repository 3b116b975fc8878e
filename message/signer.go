package message

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/anoideaopen/signedmessage/keys"
	"github.com/anoideaopen/signedmessage/keys/btc"
	"github.com/anoideaopen/signedmessage/network"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/sirupsen/logrus"
)

// Curve is the secp256k1 primitive set the signer drives. Signatures use the
// compact <header><R><S> layout.
type Curve interface {
	SignCompact(key *btcec.PrivateKey, hash []byte, compressed bool) ([]byte, error)
	RecoverCompact(signature, hash []byte) (*btcec.PublicKey, bool, error)
	Verify(key *btcec.PublicKey, hash, r, s []byte) bool
}

// Signer signs and verifies messages for one network. A Signer holds no
// mutable state and may be shared between goroutines.
type Signer struct {
	net    *network.Network
	curve  Curve
	logger logrus.FieldLogger
}

type Option func(*Signer)

// WithCurve replaces the default btcec backend.
func WithCurve(curve Curve) Option {
	return func(s *Signer) {
		s.curve = curve
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Signer) {
		s.logger = logger
	}
}

// NewSigner creates a signer bound to net.
func NewSigner(net *network.Network, opts ...Option) (*Signer, error) {
	if net == nil {
		return nil, network.ErrNilNetwork
	}

	s := &Signer{
		net:    net,
		curve:  btc.Curve{},
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.curve == nil {
		return nil, errors.New("curve is nil")
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}

	return s, nil
}

func (s *Signer) Network() *network.Network {
	return s.net
}

// Sign signs msg with key and returns the base64 compact signature. The
// compression flag of the WIF decides which address the signature recovers to.
func (s *Signer) Sign(msg *Message, key *btcutil.WIF) (string, error) {
	sig, err := s.SignCompact(msg, key)
	if err != nil {
		return "", err
	}
	return sig.String(), nil
}

// SignCompact signs msg with key and returns the decoded compact signature.
func (s *Signer) SignCompact(msg *Message, key *btcutil.WIF) (*CompactSignature, error) {
	if msg == nil {
		return nil, ErrNilMessage
	}
	if key == nil {
		return nil, fmt.Errorf("%w: key is nil", ErrInvalidPrivateKey)
	}
	if err := keys.ValidatePrivateKey(key.PrivKey); err != nil {
		return nil, err
	}

	hash := msg.MagicHash(s.net.MessageMagic)
	raw, err := s.curve.SignCompact(key.PrivKey, hash[:], key.CompressPubKey)
	if err != nil {
		return nil, fmt.Errorf("error signing message: %w", err)
	}
	sig, err := ParseCompactSignature(raw)
	if err != nil {
		return nil, fmt.Errorf("error signing message: %w", err)
	}

	recovered, compressed, err := s.curve.RecoverCompact(raw, hash[:])
	if err != nil {
		return nil, fmt.Errorf("error recovering signer: %w", err)
	}
	if compressed != key.CompressPubKey ||
		!bytes.Equal(recovered.SerializeCompressed(), key.PrivKey.PubKey().SerializeCompressed()) {
		return nil, errors.New("secp256k1 signature rejected")
	}

	return sig, nil
}

// VerifyWithKey checks sig against a known public key. The recovery id and
// compression flag of sig are ignored.
func (s *Signer) VerifyWithKey(msg *Message, pub *btcec.PublicKey, sig *CompactSignature) (Result, error) {
	if msg == nil {
		return Result{}, ErrNilMessage
	}
	if pub == nil {
		return Result{}, fmt.Errorf("%w: key is nil", ErrInvalidPublicKey)
	}
	if sig == nil {
		return Result{}, ErrNilSignature
	}

	hash := msg.MagicHash(s.net.MessageMagic)
	return s.verifyDigest(hash[:], pub, sig), nil
}

// VerifyAddress parses addr for the signer's network and verifies signature
// against it.
func (s *Signer) VerifyAddress(msg *Message, addr string, signature string) (Result, error) {
	if msg == nil {
		return Result{}, ErrNilMessage
	}
	claimed, err := network.ParseAddress(addr, s.net)
	if err != nil {
		return Result{}, err
	}
	return s.Verify(msg, claimed, signature)
}

// Verify recovers the signer's public key from signature, derives its address
// on the network of addr and compares the two. A matching address is then
// confirmed by verifying the signature against the recovered key.
func (s *Signer) Verify(msg *Message, addr *network.Address, signature string) (Result, error) {
	if msg == nil {
		return Result{}, ErrNilMessage
	}
	if addr == nil {
		return Result{}, fmt.Errorf("%w: address is nil", ErrInvalidAddress)
	}
	sig, err := DecodeSignature(signature)
	if err != nil {
		return Result{}, err
	}

	net := addr.Network()
	hash := msg.MagicHash(net.MessageMagic)
	log := s.logger.WithFields(logrus.Fields{
		"network": net.Name,
		"address": addr.String(),
	})

	pub, compressed, err := s.curve.RecoverCompact(sig.Bytes(), hash[:])
	if err != nil {
		log.WithError(err).Debug("public key recovery failed")
		return failed(ReasonRecoveryFailed), nil
	}

	recovered, err := network.AddressFromPublicKey(pub, compressed, net)
	if err != nil {
		return Result{}, err
	}
	if recovered.String() != addr.String() {
		log.WithField("recovered", recovered.String()).Debug(ReasonAddressMismatch.String())
		return failed(ReasonAddressMismatch), nil
	}

	res := s.verifyDigest(hash[:], pub, sig)
	if !res.Valid {
		log.Debug(res.Reason.String())
	}
	return res, nil
}

func (s *Signer) verifyDigest(hash []byte, pub *btcec.PublicKey, sig *CompactSignature) Result {
	if !s.curve.Verify(pub, hash, sig.R[:], sig.S[:]) {
		return failed(ReasonInvalidSignature)
	}
	return valid()
}
