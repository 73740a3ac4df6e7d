package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/enzhaowang/go-permit-bank/config"
	"github.com/enzhaowang/go-permit-bank/lib/utils/paths"
	"github.com/enzhaowang/go-permit-bank/submodule/wallet"
)

var InitCmd = &cli.Command{
	Name:  "init",
	Usage: "Initialize a permit-bank repo",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  pwKwd,
			Usage: "password for access private key",
			Value: "permit-bank",
		},
		&cli.StringFlag{
			Name:  "sk",
			Usage: "import this hex secret key instead of generating one",
		},
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "chain rpc endpoint",
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "erc20 permit token contract address",
		},
		&cli.StringFlag{
			Name:  "bank",
			Usage: "token bank contract address",
		},
	},
	Action: func(cctx *cli.Context) error {
		logger.Info("Initializing permit-bank node")

		repoDir, err := paths.GetRepoPath(cctx.String(FlagNodeRepo))
		if err != nil {
			return err
		}

		configFile := filepath.Join(repoDir, "config.json")
		if _, err := os.Stat(configFile); err == nil {
			return xerrors.Errorf("repo at '%s' is already initialized", repoDir)
		}

		logger.Infof("Initializing repo at '%s'", repoDir)

		if err := os.MkdirAll(repoDir, 0700); err != nil {
			return err
		}

		cfg := config.NewDefaultConfig()
		if ep := cctx.String("endpoint"); ep != "" {
			cfg.Contract.EndPoint = ep
		}
		if tk := cctx.String("token"); tk != "" {
			cfg.Contract.TokenContract = tk
		}
		if bk := cctx.String("bank"); bk != "" {
			cfg.Contract.BankContract = bk
		}

		password := cctx.String(pwKwd)

		hexSk := cctx.String("sk")
		if hexSk == "" {
			logger.Info("generating wallet key...")
			sk, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			hexSk = hex.EncodeToString(crypto.FromECDSA(sk))
		}

		w := wallet.New(filepath.Join(repoDir, "keystore"), password)
		addr, err := w.Import(hexSk)
		if err != nil {
			return err
		}

		cfg.Wallet.DefaultAddress = addr.Hex()

		if err := cfg.WriteFile(configFile); err != nil {
			return err
		}

		fmt.Println("default wallet address:", addr.Hex())
		return nil
	},
}
