package cmd

import (
	"fmt"

	"github.com/mgutz/ansi"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

var DepositCmd = &cli.Command{
	Name:      "deposit",
	Usage:     "deposit tokens into the bank with a signed permit",
	ArgsUsage: "[amount]",
	Action: func(cctx *cli.Context) error {
		if !cctx.Args().Present() {
			return xerrors.New("need amount")
		}

		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		tv, err := napi.Deposit(cctx.Context, cctx.Args().First())
		if err != nil {
			return err
		}

		fmt.Println(ansi.Color("deposit "+tv.Status, "green"))
		fmt.Println("Tx: ", tv.Hash.Hex())
		fmt.Println("Explorer: ", tv.Explorer)
		return nil
	},
}

var WithdrawCmd = &cli.Command{
	Name:      "withdraw",
	Usage:     "withdraw tokens from the bank",
	ArgsUsage: "[amount]",
	Action: func(cctx *cli.Context) error {
		if !cctx.Args().Present() {
			return xerrors.New("need amount")
		}

		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		tv, err := napi.Withdraw(cctx.Context, cctx.Args().First())
		if err != nil {
			return err
		}

		fmt.Println(ansi.Color("withdraw "+tv.Status, "green"))
		fmt.Println("Tx: ", tv.Hash.Hex())
		fmt.Println("Explorer: ", tv.Explorer)
		return nil
	},
}
