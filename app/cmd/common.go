package cmd

import (
	"fmt"

	"github.com/filecoin-project/go-jsonrpc"
	"github.com/howeyc/gopass"
	"github.com/urfave/cli/v2"

	"github.com/enzhaowang/go-permit-bank/api"
	"github.com/enzhaowang/go-permit-bank/api/client"
	logging "github.com/enzhaowang/go-permit-bank/lib/log"
)

var logger = logging.Logger("main")

const (
	FlagNodeRepo = "repo"

	pwKwd      = "password"
	apiAddrKwd = "api"
)

var CommonCmd []*cli.Command

func init() {
	CommonCmd = []*cli.Command{
		InitCmd,
		DaemonCmd,
		AuthCmd,
		ConfigCmd,
		WalletCmd,
		InfoCmd,
		TransferCmd,
		DepositCmd,
		WithdrawCmd,
		TxCmd,
		DemoCmd,
	}
}

// getAPI dials the daemon whose repo dir the global flag points at.
func getAPI(cctx *cli.Context) (api.FullNode, jsonrpc.ClientCloser, error) {
	repoDir := cctx.String(FlagNodeRepo)
	addr, headers, err := client.GetClientInfo(repoDir)
	if err != nil {
		return nil, nil, err
	}

	return client.NewFullNode(cctx.Context, addr, headers)
}

// GetPassWord prompts for the wallet password without echo.
func GetPassWord() (string, error) {
	fmt.Println("Enter wallet password:")
	pw, err := gopass.GetPasswdMasked()
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
