package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

var ConfigCmd = &cli.Command{
	Name:  "config",
	Usage: "Manage node config",
	Subcommands: []*cli.Command{
		configGetCmd,
		configSetCmd,
	},
}

var configGetCmd = &cli.Command{
	Name:      "get",
	Usage:     "get config value by dotted key, e.g. contract.endPoint",
	ArgsUsage: "[key]",
	Action: func(cctx *cli.Context) error {
		if !cctx.Args().Present() {
			return xerrors.New("need key")
		}

		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		val, err := napi.ConfigGet(cctx.Context, cctx.Args().First())
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(val, "", "\t")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var configSetCmd = &cli.Command{
	Name:      "set",
	Usage:     "set config value by dotted key",
	ArgsUsage: "[key] [value]",
	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() < 2 {
			return xerrors.New("need key and value")
		}

		napi, closer, err := getAPI(cctx)
		if err != nil {
			return err
		}
		defer closer()

		return napi.ConfigSet(cctx.Context, cctx.Args().Get(0), cctx.Args().Get(1))
	},
}
