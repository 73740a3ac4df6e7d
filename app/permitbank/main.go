package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/enzhaowang/go-permit-bank/app/cmd"
	"github.com/enzhaowang/go-permit-bank/build"
	logging "github.com/enzhaowang/go-permit-bank/lib/log"
	"github.com/enzhaowang/go-permit-bank/lib/utils/paths"
)

func main() {
	logging.SetupLogLevels()

	app := &cli.App{
		Name:                 "permit-bank",
		Usage:                "Gasless-approval token bank node",
		Version:              build.UserVersion(),
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    cmd.FlagNodeRepo,
				EnvVars: []string{paths.EnvRepoPath},
				Value:   "~/.permit-bank",
				Usage:   "Specify permit-bank repo path.",
			},
		},

		Commands: cmd.CommonCmd,
	}

	app.Setup()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n\n", err) // nolint:errcheck
		os.Exit(1)
	}
}
