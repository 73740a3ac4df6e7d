package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig is the environment-only configuration used by the demo command
// and as overrides for the daemon; no repo dir is required.
type EnvConfig struct {
	RPCURL        string `envconfig:"RPC_URL" default:"http://127.0.0.1:8545"`
	SecretKey     string `envconfig:"SECRET_KEY"`
	TokenContract string `envconfig:"TOKEN_CONTRACT"`
	BankContract  string `envconfig:"BANK_CONTRACT"`
}

// FromEnv loads PERMIT_BANK_* environment variables.
func FromEnv() (*EnvConfig, error) {
	ec := &EnvConfig{}
	if err := envconfig.Process("PERMIT_BANK", ec); err != nil {
		return nil, err
	}
	return ec, nil
}
