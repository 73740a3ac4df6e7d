package client

import (
	"context"
	"net/http"
	"os"
	"path"

	"github.com/filecoin-project/go-jsonrpc"
	"github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"

	"github.com/enzhaowang/go-permit-bank/api"
	"github.com/enzhaowang/go-permit-bank/lib/utils/paths"
)

// GetClientInfo reads the rpc endpoint and admin token the daemon wrote
// into its repo dir.
func GetClientInfo(repoDir string) (string, http.Header, error) {
	repoPath, err := paths.GetRepoPath(repoDir)
	if err != nil {
		return "", nil, err
	}

	rpcPath := path.Join(repoPath, "api")
	rpcBytes, err := os.ReadFile(rpcPath)
	if err != nil {
		return "", nil, err
	}

	headers := http.Header{}
	tokenPath := path.Join(repoPath, "token")
	if tokenBytes, err := os.ReadFile(tokenPath); err == nil {
		headers.Add("Authorization", "Bearer "+string(tokenBytes))
	}

	apima, err := multiaddr.NewMultiaddr(string(rpcBytes))
	if err != nil {
		return "", nil, err
	}

	_, addr, err := manet.DialArgs(apima)
	if err != nil {
		return "", nil, err
	}

	addr = "ws://" + addr + "/rpc/v0"
	return addr, headers, nil
}

// NewFullNode connects to a running daemon over websocket jsonrpc.
func NewFullNode(ctx context.Context, addr string, requestHeader http.Header) (api.FullNode, jsonrpc.ClientCloser, error) {
	var res api.FullNodeStruct
	closer, err := jsonrpc.NewMergeClient(ctx, addr, "PermitBank",
		api.GetInternalStructs(&res), requestHeader)

	return &res, closer, err
}
