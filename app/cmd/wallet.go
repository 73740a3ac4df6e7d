package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

var WalletCmd = &cli.Command{
	Name:  "wallet",
	Usage: "Interact with wallet",
	Subcommands: []*cli.Command{
		walletListCmd,
		walletImportCmd,
		walletExportCmd,
		walletDeleteCmd,
	},
}

var walletListCmd = &cli.Command{
	Name:  "list",
	Usage: "list all addrs",
	Action: func(cctx *cli.Context) error {
		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		addrs, err := napi.WalletList(cctx.Context)
		if err != nil {
			return err
		}

		for _, as := range addrs {
			fmt.Println(as.Hex())
		}
		return nil
	},
}

var walletImportCmd = &cli.Command{
	Name:      "import",
	Usage:     "import a hex secret key",
	ArgsUsage: "[hex secret key]",
	Action: func(cctx *cli.Context) error {
		if !cctx.Args().Present() {
			return xerrors.New("need secret key")
		}

		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		addr, err := napi.WalletImport(cctx.Context, cctx.Args().First())
		if err != nil {
			return err
		}

		fmt.Println(addr.Hex())
		return nil
	},
}

var walletExportCmd = &cli.Command{
	Name:      "export",
	Usage:     "export the hex secret key of an address",
	ArgsUsage: "[address]",
	Action: func(cctx *cli.Context) error {
		if !cctx.Args().Present() {
			return xerrors.New("need address")
		}
		if !common.IsHexAddress(cctx.Args().First()) {
			return xerrors.Errorf("invalid address %s", cctx.Args().First())
		}

		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		sk, err := napi.WalletExport(cctx.Context, common.HexToAddress(cctx.Args().First()))
		if err != nil {
			return err
		}

		fmt.Println(sk)
		return nil
	},
}

var walletDeleteCmd = &cli.Command{
	Name:      "delete",
	Usage:     "delete the keyfile of an address",
	ArgsUsage: "[address]",
	Action: func(cctx *cli.Context) error {
		if !cctx.Args().Present() {
			return xerrors.New("need address")
		}
		if !common.IsHexAddress(cctx.Args().First()) {
			return xerrors.Errorf("invalid address %s", cctx.Args().First())
		}

		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		return napi.WalletDelete(cctx.Context, common.HexToAddress(cctx.Args().First()))
	},
}
