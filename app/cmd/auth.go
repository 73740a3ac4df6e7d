package cmd

import (
	"fmt"

	"github.com/filecoin-project/go-jsonrpc/auth"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/enzhaowang/go-permit-bank/api"
)

var AuthCmd = &cli.Command{
	Name:  "auth",
	Usage: "Manage rpc access tokens",
	Subcommands: []*cli.Command{
		authCreateTokenCmd,
		authVerifyCmd,
	},
}

var authCreateTokenCmd = &cli.Command{
	Name:  "create-token",
	Usage: "create a token with the given permission",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "perm",
			Usage: "permission to assign: read, write, sign or admin",
			Value: "read",
		},
	},
	Action: func(cctx *cli.Context) error {
		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		perm := auth.Permission(cctx.String("perm"))

		idx := 0
		for i, p := range api.AllPermissions {
			if p == perm {
				idx = i + 1
				break
			}
		}
		if idx == 0 {
			return xerrors.Errorf("unknown permission %s", perm)
		}

		// a token for perm level n carries all levels up to n
		tk, err := napi.AuthNew(cctx.Context, api.AllPermissions[:idx])
		if err != nil {
			return err
		}

		fmt.Println(string(tk))
		return nil
	},
}

var authVerifyCmd = &cli.Command{
	Name:      "verify",
	Usage:     "print the permissions of a token",
	ArgsUsage: "[token]",
	Action: func(cctx *cli.Context) error {
		if !cctx.Args().Present() {
			return xerrors.New("need token")
		}

		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		perms, err := napi.AuthVerify(cctx.Context, cctx.Args().First())
		if err != nil {
			return err
		}

		for _, p := range perms {
			fmt.Println(p)
		}
		return nil
	},
}
