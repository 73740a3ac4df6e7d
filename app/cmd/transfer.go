package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mgutz/ansi"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

var TransferCmd = &cli.Command{
	Name:      "transfer",
	Usage:     "transfer tokens to another address",
	ArgsUsage: "[recipient] [amount]",
	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() < 2 {
			return xerrors.New("need recipient and amount")
		}

		recipient := cctx.Args().Get(0)
		if !common.IsHexAddress(recipient) {
			return xerrors.Errorf("invalid recipient %s", recipient)
		}

		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		tv, err := napi.Transfer(cctx.Context, common.HexToAddress(recipient), cctx.Args().Get(1))
		if err != nil {
			return err
		}

		fmt.Println(ansi.Color("transfer "+tv.Status, "green"))
		fmt.Println("Tx: ", tv.Hash.Hex())
		fmt.Println("Explorer: ", tv.Explorer)
		return nil
	},
}

var TxCmd = &cli.Command{
	Name:  "tx",
	Usage: "Inspect transactions",
	Subcommands: []*cli.Command{
		txStatusCmd,
	},
}

var txStatusCmd = &cli.Command{
	Name:      "status",
	Usage:     "query the receipt status of a transaction",
	ArgsUsage: "[tx hash]",
	Action: func(cctx *cli.Context) error {
		if !cctx.Args().Present() {
			return xerrors.New("need tx hash")
		}

		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		tv, err := napi.TxStatus(cctx.Context, common.HexToHash(cctx.Args().First()))
		if err != nil {
			return err
		}

		fmt.Println("Status: ", tv.Status)
		fmt.Println("Explorer: ", tv.Explorer)
		return nil
	},
}
