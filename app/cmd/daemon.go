package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/enzhaowang/go-permit-bank/api/client"
	"github.com/enzhaowang/go-permit-bank/build"
	"github.com/enzhaowang/go-permit-bank/config"
	"github.com/enzhaowang/go-permit-bank/lib/utils/paths"
	basenode "github.com/enzhaowang/go-permit-bank/submodule/node"
)

var DaemonCmd = &cli.Command{
	Name:  "daemon",
	Usage: "Run a permit-bank node.",

	Subcommands: []*cli.Command{
		daemonStartCmd,
		daemonStopCmd,
	},
}

var daemonStartCmd = &cli.Command{
	Name:  "start",
	Usage: "Start a permit-bank daemon",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  pwKwd,
			Usage: "password for asset private key",
			Value: "permit-bank",
		},
		&cli.StringFlag{
			Name:  apiAddrKwd,
			Usage: "set the api addr to use",
			Value: "/ip4/127.0.0.1/tcp/8001",
		},
	},
	Action: func(cctx *cli.Context) error {
		return daemonStartFunc(cctx)
	},
}

var daemonStopCmd = &cli.Command{
	Name:  "stop",
	Usage: "Stop a running permit-bank daemon",
	Action: func(cctx *cli.Context) error {
		return daemonStopFunc(cctx)
	},
}

// create a node with repo data and start it
func daemonStartFunc(cctx *cli.Context) (_err error) {
	logger.Info("Initializing daemon...")
	logger.Info("version: ", build.UserVersion())

	ctx := cctx.Context

	repoDir, err := paths.GetRepoPath(cctx.String(FlagNodeRepo))
	if err != nil {
		return err
	}

	// the api addr flag overrides the configured one before the node reads it
	if apiAddr := cctx.String(apiAddrKwd); cctx.IsSet(apiAddrKwd) {
		cfg, err := config.ReadFile(repoDir + "/config.json")
		if err != nil {
			return err
		}
		cfg.API.APIAddress = apiAddr
		if err := cfg.WriteFile(repoDir + "/config.json"); err != nil {
			return err
		}
	}

	pwd := cctx.String(pwKwd)
	if pwd == "" {
		pwd, err = GetPassWord()
		if err != nil {
			return err
		}
	}

	node, err := basenode.New(ctx, repoDir, pwd)
	if err != nil {
		return err
	}

	ready := make(chan interface{})
	return node.RunRPCAndWait(ctx, ready)
}

// stop a node
func daemonStopFunc(cctx *cli.Context) (_err error) {
	repoDir := cctx.String(FlagNodeRepo)
	addr, headers, err := client.GetClientInfo(repoDir)
	if err != nil {
		return err
	}

	napi, closer, err := client.NewFullNode(cctx.Context, addr, headers)
	if err != nil {
		return err
	}
	defer closer()

	return napi.Shutdown(cctx.Context)
}
