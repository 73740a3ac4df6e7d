package cmd

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mgutz/ansi"
	"github.com/urfave/cli/v2"

	"github.com/enzhaowang/go-permit-bank/build"
)

var InfoCmd = &cli.Command{
	Name:  "info",
	Usage: "print information of this node",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "address",
			Usage: "show balances of this address instead of the node's own",
		},
	},
	Action: func(cctx *cli.Context) error {
		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		fmt.Println(ansi.Color("----------- Information -----------", "green"))

		fmt.Println(time.Now())
		fmt.Println("Version:", build.UserVersion())

		v, err := napi.Version(cctx.Context)
		if err != nil {
			return err
		}
		fmt.Println("Daemon:", v)

		fmt.Println(ansi.Color("----------- Token Information -----------", "green"))
		ti, err := napi.TokenInfo(cctx.Context)
		if err != nil {
			return err
		}
		fmt.Println("Name: ", ti.Name)
		fmt.Println("Symbol: ", ti.Symbol)
		fmt.Println("Decimals: ", ti.Decimals)
		fmt.Println("Contract: ", ti.Address.Hex())

		fmt.Println(ansi.Color("----------- Account Information -----------", "green"))

		var owner common.Address
		if raw := cctx.String("address"); raw != "" {
			owner = common.HexToAddress(raw)
		} else {
			addrs, err := napi.WalletList(cctx.Context)
			if err != nil {
				return err
			}
			if len(addrs) == 0 {
				fmt.Println("no wallet address")
				return nil
			}
			owner = addrs[0]
		}

		av, err := napi.Account(cctx.Context, owner)
		if err != nil {
			return err
		}

		fmt.Println("Wallet: ", av.Address.Hex())
		fmt.Printf("Balance: %s %s (wallet), %s %s (in bank)\n", av.Balance, ti.Symbol, av.Deposit, ti.Symbol)

		nonce, err := napi.PermitNonce(cctx.Context, owner)
		if err != nil {
			return err
		}
		fmt.Println("Permit nonce: ", nonce)

		return nil
	},
}
