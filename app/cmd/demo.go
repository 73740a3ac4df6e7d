package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mgutz/ansi"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/enzhaowang/go-permit-bank/config"
	"github.com/enzhaowang/go-permit-bank/service/gateway"
	"github.com/enzhaowang/go-permit-bank/submodule/connect"
)

// DemoCmd is a self-contained walkthrough driven entirely by PERMIT_BANK_*
// environment variables; it needs no repo and no daemon. It reads the token
// metadata and balances, optionally sends a plain transfer, then signs a
// permit and deposits with it.
var DemoCmd = &cli.Command{
	Name:      "demo",
	Usage:     "run the transfer and permit deposit flows end to end from env config",
	ArgsUsage: "[amount]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "transfer-to",
			Usage: "also send a plain transfer to this address first",
		},
		&cli.StringFlag{
			Name:  "transfer-amount",
			Usage: "amount for the plain transfer leg",
			Value: "1",
		},
	},
	Action: func(cctx *cli.Context) error {
		if !cctx.Args().Present() {
			return xerrors.New("need amount")
		}
		amount := cctx.Args().First()

		ec, err := config.FromEnv()
		if err != nil {
			return err
		}
		if ec.SecretKey == "" {
			return xerrors.New("PERMIT_BANK_SECRET_KEY is not set")
		}
		if !common.IsHexAddress(ec.TokenContract) {
			return xerrors.Errorf("bad token contract %s", ec.TokenContract)
		}
		if !common.IsHexAddress(ec.BankContract) {
			return xerrors.Errorf("bad bank contract %s", ec.BankContract)
		}

		ctx := cctx.Context

		owner, err := connect.SkToAddr(ec.SecretKey)
		if err != nil {
			return err
		}

		token, err := connect.NewErc20(ctx, ec.RPCURL, ec.SecretKey, common.HexToAddress(ec.TokenContract))
		if err != nil {
			return err
		}

		bank, err := connect.NewBank(ctx, ec.RPCURL, ec.SecretKey, common.HexToAddress(ec.BankContract))
		if err != nil {
			return err
		}

		chainID, err := connect.ChainID(ec.RPCURL)
		if err != nil {
			return err
		}

		gw := gateway.New(token, bank, ec.RPCURL, chainID, owner)

		ti, err := gw.TokenInfo(ctx)
		if err != nil {
			return err
		}
		fmt.Println(ansi.Color("----------- Token -----------", "green"))
		fmt.Printf("%s (%s), %d decimals, at %s\n", ti.Name, ti.Symbol, ti.Decimals, ti.Address.Hex())

		av, err := gw.Account(ctx, owner)
		if err != nil {
			return err
		}
		fmt.Println(ansi.Color("----------- Before -----------", "green"))
		fmt.Printf("wallet %s: %s %s, bank deposit %s %s\n", owner.Hex(), av.Balance, ti.Symbol, av.Deposit, ti.Symbol)

		if to := cctx.String("transfer-to"); to != "" {
			if !common.IsHexAddress(to) {
				return xerrors.Errorf("bad transfer recipient %s", to)
			}

			fmt.Println(ansi.Color("----------- Transfer -----------", "green"))
			tv, err := gw.Transfer(ctx, common.HexToAddress(to), cctx.String("transfer-amount"))
			if err != nil {
				return err
			}
			fmt.Println("Tx: ", tv.Hash.Hex())
			fmt.Println("Status: ", tv.Status)
			fmt.Println("Explorer: ", tv.Explorer)
		}

		fmt.Println(ansi.Color("----------- Deposit -----------", "green"))
		tv, err := gw.Deposit(ctx, amount)
		if err != nil {
			return err
		}
		fmt.Println("Tx: ", tv.Hash.Hex())
		fmt.Println("Status: ", tv.Status)
		fmt.Println("Explorer: ", tv.Explorer)

		av, err = gw.Account(ctx, owner)
		if err != nil {
			return err
		}
		fmt.Println(ansi.Color("----------- After -----------", "green"))
		fmt.Printf("wallet %s: %s %s, bank deposit %s %s\n", owner.Hex(), av.Balance, ti.Symbol, av.Deposit, ti.Symbol)

		return nil
	},
}
