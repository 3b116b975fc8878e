package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anoideaopen/signedmessage/keys"
	"github.com/anoideaopen/signedmessage/message"
	"github.com/anoideaopen/signedmessage/network"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/term"
)

// exitInvalid is the exit code of a signature that does not verify.
const exitInvalid = 2

func signCommand(c *cli.Context, rt *runtime, log logrus.FieldLogger, _ trace.Span) error {
	key, err := readPrivateKey(c, rt)
	if err != nil {
		return err
	}
	msg, err := readMessage(c, rt)
	if err != nil {
		return err
	}

	signature, err := rt.signer.Sign(msg, key)
	if err != nil {
		return err
	}
	log.Debug("message signed")

	_, err = fmt.Fprintln(rt.stdout, signature)
	return err
}

func verifyCommand(c *cli.Context, rt *runtime, log logrus.FieldLogger, span trace.Span) error {
	msg, err := readMessage(c, rt)
	if err != nil {
		return err
	}

	var res message.Result
	switch {
	case c.String("address") != "" && c.String("pubkey") != "":
		return errors.New("use either --address or --pubkey")
	case c.String("address") != "":
		res, err = rt.signer.VerifyAddress(msg, c.String("address"), c.String("signature"))
	case c.String("pubkey") != "":
		var pub *btcec.PublicKey
		pub, err = keys.ParsePublicKey(c.String("pubkey"))
		if err != nil {
			return err
		}
		var sig *message.CompactSignature
		sig, err = message.DecodeSignature(c.String("signature"))
		if err != nil {
			return err
		}
		res, err = rt.signer.VerifyWithKey(msg, pub, sig)
	default:
		return errors.New("--address or --pubkey is required")
	}
	if err != nil {
		return err
	}

	setResult(span, res)
	log.WithField("valid", res.Valid).Info("signature verified")

	if !res.Valid {
		return cli.Exit(res.Reason.String(), exitInvalid)
	}
	_, err = fmt.Fprintln(rt.stdout, "valid")
	return err
}

func hashCommand(c *cli.Context, rt *runtime, _ logrus.FieldLogger, _ trace.Span) error {
	msg, err := readMessage(c, rt)
	if err != nil {
		return err
	}
	hash := msg.MagicHash(rt.net.MessageMagic)

	_, err = fmt.Fprintln(rt.stdout, hex.EncodeToString(hash[:]))
	return err
}

func addressCommand(c *cli.Context, rt *runtime, _ logrus.FieldLogger, _ trace.Span) error {
	var (
		addr *network.Address
		err  error
	)
	switch {
	case c.String("wif") != "":
		var key *btcutil.WIF
		key, err = keys.ParseWIF(c.String("wif"), rt.net)
		if err != nil {
			return err
		}
		addr, err = network.AddressFromPublicKey(key.PrivKey.PubKey(), key.CompressPubKey, rt.net)
	case c.String("pubkey") != "":
		var pub *btcec.PublicKey
		pub, err = keys.ParsePublicKey(c.String("pubkey"))
		if err != nil {
			return err
		}
		addr, err = network.AddressFromPublicKey(pub, !c.Bool("uncompressed"), rt.net)
	default:
		return errors.New("--wif or --pubkey is required")
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(rt.stdout, addr.String())
	return err
}

func keygenCommand(c *cli.Context, rt *runtime, log logrus.FieldLogger, _ trace.Span) error {
	compressed := !c.Bool("uncompressed")
	key, err := keys.Generate(rt.net, compressed)
	if err != nil {
		return err
	}
	addr, err := network.AddressFromPublicKey(key.PrivKey.PubKey(), compressed, rt.net)
	if err != nil {
		return err
	}
	log.WithField("address", addr.String()).Info("key generated")

	_, err = fmt.Fprintf(rt.stdout, "wif: %s\naddress: %s\n", key.String(), addr.String())
	return err
}

func readPrivateKey(c *cli.Context, rt *runtime) (*btcutil.WIF, error) {
	set := 0
	for _, name := range []string{"wif", "key-hex", "prompt-key"} {
		if c.IsSet(name) {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("exactly one of --wif, --key-hex or --prompt-key is required")
	}

	switch {
	case c.String("key-hex") != "":
		return keys.PrivateKeyFromHex(c.String("key-hex"), rt.net, !c.Bool("uncompressed"))
	case c.Bool("prompt-key"):
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return nil, errors.New("--prompt-key needs a terminal")
		}
		fmt.Fprint(os.Stderr, "Enter WIF: ")
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("reading private key: %w", err)
		}
		return keys.ParseWIF(string(secret), rt.net)
	default:
		return keys.ParseWIF(c.String("wif"), rt.net)
	}
}

// readMessage takes --message, then the first argument, then stdin. Text read
// from stdin is used as is, trailing newline included.
func readMessage(c *cli.Context, rt *runtime) (*message.Message, error) {
	if c.IsSet("message") {
		return message.New(c.String("message")), nil
	}
	if c.Args().Present() {
		return message.New(strings.Join(c.Args().Slice(), " ")), nil
	}

	data, err := io.ReadAll(rt.stdin)
	if err != nil {
		return nil, fmt.Errorf("reading message: %w", err)
	}
	return message.New(string(data)), nil
}
