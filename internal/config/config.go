package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anoideaopen/signedmessage/network"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvNetwork      = "MSGSIGN_NETWORK"
	EnvCurve        = "MSGSIGN_CURVE"
	EnvLogLevel     = "MSGSIGN_LOG_LEVEL"
	EnvLogFormat    = "MSGSIGN_LOG_FORMAT"
	EnvOTLPEndpoint = "MSGSIGN_OTLP_ENDPOINT"
	EnvOTLPCACerts  = "MSGSIGN_OTLP_CA_CERTS"
	EnvServiceName  = "MSGSIGN_SERVICE_NAME"
)

const (
	CurveBtcec = "btcec"
	CurveGeth  = "geth"

	DefaultNetwork     = "axe"
	DefaultServiceName = "msgsign"
)

var ErrEnvFileNotFound = errors.New("env file not found")

// Config holds the settings shared by all commands.
type Config struct {
	Network      string `validate:"required,network"`
	Curve        string `validate:"required,oneof=btcec geth"`
	LogLevel     string `validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	LogFormat    string `validate:"omitempty,oneof=text json"`
	OTLPEndpoint string `validate:"omitempty,hostname_port"`
	OTLPCACerts  string `validate:"omitempty,base64"`
	ServiceName  string `validate:"required"`
}

// Load reads the configuration from the environment.
//
// If envFile is not empty, its variables are loaded first; variables already
// present in the environment are not overridden. A missing envFile results in
// ErrEnvFileNotFound.
//
// Unset values get their defaults. The result is not validated, callers
// apply their overrides first and then call Validate.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrEnvFileNotFound, envFile)
		}
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file: %w", err)
		}
	}

	cfg := &Config{
		Network:      getEnv(EnvNetwork, DefaultNetwork),
		Curve:        getEnv(EnvCurve, CurveBtcec),
		LogLevel:     getEnv(EnvLogLevel, ""),
		LogFormat:    getEnv(EnvLogFormat, ""),
		OTLPEndpoint: getEnv(EnvOTLPEndpoint, ""),
		OTLPCACerts:  getEnv(EnvOTLPCACerts, ""),
		ServiceName:  getEnv(EnvServiceName, DefaultServiceName),
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func newValidator() *validator.Validate {
	validate := validator.New()

	// registration only fails for an empty tag or a nil func
	_ = validate.RegisterValidation("network", func(fl validator.FieldLevel) bool {
		_, err := network.ByName(fl.Field().String())
		return err == nil
	})

	return validate
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
