package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/anoideaopen/signedmessage/core/logger"
	"github.com/anoideaopen/signedmessage/core/telemetry"
	"github.com/anoideaopen/signedmessage/internal/config"
	"github.com/anoideaopen/signedmessage/keys/eth"
	"github.com/anoideaopen/signedmessage/message"
	"github.com/anoideaopen/signedmessage/network"
	"github.com/anoideaopen/signedmessage/version"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// runtime is what every command needs, built once in Before.
type runtime struct {
	stdin    io.Reader
	stdout   io.Writer
	log      *logrus.Logger
	net      *network.Network
	signer   *message.Signer
	shutdown telemetry.ShutdownFunc
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	rt := &runtime{stdin: stdin, stdout: stdout}

	return &cli.App{
		Name:  "msgsign",
		Usage: "Sign and verify messages with Bitcoin-style compact signatures",
		Description: `Signs a text message with a secp256k1 private key and verifies such
signatures against an address. The signer's public key is recovered from
the signature, so verification only needs the claimed address.`,
		Version:   version.String(),
		Writer:    stdout,
		ErrWriter: stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Load settings from a .env file",
			},
			&cli.StringFlag{
				Name:    "network",
				Aliases: []string{"n"},
				Usage:   fmt.Sprintf("Network to sign for (%s)", joinNames()),
			},
			&cli.StringFlag{
				Name:  "curve",
				Usage: "secp256k1 backend: btcec or geth",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format: text or json",
			},
		},
		// exit codes are handled in main
		ExitErrHandler: func(*cli.Context, error) {},
		Before:         rt.setup,
		After:          rt.teardown,
		Commands: []*cli.Command{
			{
				Name:      "sign",
				Usage:     "Sign a message, prints the base64 signature",
				ArgsUsage: "[message]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "wif", Usage: "Private key in wallet import format"},
					&cli.StringFlag{Name: "key-hex", Usage: "Private key as a 32-byte hex scalar"},
					&cli.BoolFlag{Name: "uncompressed", Usage: "Sign for the uncompressed public key (with --key-hex)"},
					&cli.BoolFlag{Name: "prompt-key", Usage: "Read the WIF from the terminal without echo"},
					&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "Message text, read from stdin when omitted"},
				},
				Action: rt.traced(telemetry.OperationSign, signCommand),
			},
			{
				Name:  "verify",
				Usage: "Verify a signature against an address or a public key",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Aliases: []string{"a"}, Usage: "Claimed signer address"},
					&cli.StringFlag{Name: "pubkey", Usage: "Hex encoded signer public key, instead of --address"},
					&cli.StringFlag{Name: "signature", Aliases: []string{"s"}, Usage: "Base64 compact signature", Required: true},
					&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "Message text, read from stdin when omitted"},
				},
				Action: rt.traced(telemetry.OperationVerify, verifyCommand),
			},
			{
				Name:  "hash",
				Usage: "Print the hex digest that gets signed for a message",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "Message text, read from stdin when omitted"},
				},
				Action: rt.traced(telemetry.OperationHash, hashCommand),
			},
			{
				Name:  "address",
				Usage: "Print the address of a private or public key",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "wif", Usage: "Private key in wallet import format"},
					&cli.StringFlag{Name: "pubkey", Usage: "Hex encoded public key"},
					&cli.BoolFlag{Name: "uncompressed", Usage: "Hash the uncompressed public key (with --pubkey)"},
				},
				Action: rt.traced(telemetry.OperationAddress, addressCommand),
			},
			{
				Name:  "keygen",
				Usage: "Generate a random private key",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "uncompressed", Usage: "Use the uncompressed public key"},
				},
				Action: rt.traced(telemetry.OperationKeygen, keygenCommand),
			},
		},
	}
}

func (rt *runtime) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return err
	}
	for flag, dst := range map[string]*string{
		"network":    &cfg.Network,
		"curve":      &cfg.Curve,
		"log-level":  &cfg.LogLevel,
		"log-format": &cfg.LogFormat,
	} {
		if c.IsSet(flag) {
			*dst = c.String(flag)
		}
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	rt.log, err = logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	rt.net, err = network.ByName(cfg.Network)
	if err != nil {
		return err
	}

	opts := []message.Option{message.WithLogger(rt.log)}
	if cfg.Curve == config.CurveGeth {
		opts = append(opts, message.WithCurve(eth.Curve{}))
	}
	rt.signer, err = message.NewSigner(rt.net, opts...)
	if err != nil {
		return err
	}

	rt.shutdown, err = telemetry.InstallTraceProvider(&telemetry.CollectorEndpoint{
		Endpoint: cfg.OTLPEndpoint,
		CACerts:  cfg.OTLPCACerts,
	}, cfg.ServiceName)
	if err != nil {
		rt.log.WithError(err).Warn("tracing disabled")
	}

	return nil
}

func (rt *runtime) teardown(c *cli.Context) error {
	if rt.shutdown == nil {
		return nil
	}
	if err := rt.shutdown(context.Background()); err != nil {
		rt.log.WithError(err).Warn("flushing traces")
	}
	return nil
}

type action func(c *cli.Context, rt *runtime, log logrus.FieldLogger, span trace.Span) error

// traced runs a command inside a span tagged with a fresh operation id.
func (rt *runtime) traced(op telemetry.OperationTypeNum, fn action) cli.ActionFunc {
	return func(c *cli.Context) error {
		id := uuid.NewString()
		ctx, span := telemetry.Tracer().Start(c.Context, "msgsign."+op.String(),
			trace.WithAttributes(
				telemetry.OperationType(op),
				telemetry.OperationID(id),
				telemetry.Network(rt.net.Name),
			))
		defer span.End()

		log := rt.log.WithFields(logrus.Fields{
			"operation":    op.String(),
			"operation_id": id,
			"network":      rt.net.Name,
		})

		c.Context = ctx
		err := fn(c, rt, log, span)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			log.WithError(err).Debug("command failed")
		}
		return err
	}
}

func setResult(span trace.Span, res message.Result) {
	span.SetAttributes(telemetry.Valid(res.Valid))
	if !res.Valid {
		span.SetAttributes(telemetry.Reason(res.Reason.String()), attribute.Int("reason_code", int(res.Reason)))
	}
}

func joinNames() string {
	return strings.Join(network.Names(), ", ")
}
