package node

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/filecoin-project/go-jsonrpc"
	"github.com/filecoin-project/go-jsonrpc/auth"
	"github.com/gorilla/mux"
	ma "github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
	"golang.org/x/xerrors"

	"github.com/enzhaowang/go-permit-bank/api"
	"github.com/enzhaowang/go-permit-bank/build"
	"github.com/enzhaowang/go-permit-bank/config"
	"github.com/enzhaowang/go-permit-bank/lib/log"
	"github.com/enzhaowang/go-permit-bank/service/gateway"
	mauth "github.com/enzhaowang/go-permit-bank/submodule/auth"
	"github.com/enzhaowang/go-permit-bank/submodule/connect"
	inter "github.com/enzhaowang/go-permit-bank/submodule/connect/interface"
	"github.com/enzhaowang/go-permit-bank/submodule/wallet"
)

var logger = log.Logger("basenode")

const configFile = "config.json"

// BaseNode wires the chain connectors, wallet and auth into one daemon
// process serving jsonrpc plus the browser gateway.
type BaseNode struct {
	*mauth.JwtAuth

	ctx context.Context

	repoPath string
	cfg      *config.Config

	wallet *wallet.LocalWallet
	gw     *gateway.Gateway

	ShutdownChan chan struct{}
}

var _ api.FullNode = (*BaseNode)(nil)

// New assembles a node from the repo at repoPath. The wallet password
// decrypts the default key; the key funds every transaction the node
// sends.
func New(ctx context.Context, repoPath, password string) (*BaseNode, error) {
	cfg, err := config.ReadFile(filepath.Join(repoPath, configFile))
	if err != nil {
		return nil, xerrors.Errorf("read config: %w", err)
	}

	if cfg.Wallet.DefaultAddress == "" {
		return nil, xerrors.New("no default wallet address, run init first")
	}

	ja, err := mauth.NewJwtAuth(repoPath)
	if err != nil {
		return nil, err
	}

	w := wallet.New(filepath.Join(repoPath, "keystore"), password)
	owner := common.HexToAddress(cfg.Wallet.DefaultAddress)
	key, err := w.Get(owner)
	if err != nil {
		return nil, err
	}

	ep := cfg.Contract.EndPoint

	token, err := connect.NewErc20(ctx, ep, key.SecretKey(), common.HexToAddress(cfg.Contract.TokenContract))
	if err != nil {
		return nil, xerrors.Errorf("connect token: %w", err)
	}

	bank, err := connect.NewBank(ctx, ep, key.SecretKey(), common.HexToAddress(cfg.Contract.BankContract))
	if err != nil {
		return nil, xerrors.Errorf("connect bank: %w", err)
	}

	chainID, err := connect.ChainID(ep)
	if err != nil {
		return nil, err
	}

	return &BaseNode{
		JwtAuth:      ja,
		ctx:          ctx,
		repoPath:     repoPath,
		cfg:          cfg,
		wallet:       w,
		gw:           gateway.New(token, bank, ep, chainID, owner),
		ShutdownChan: make(chan struct{}),
	}, nil
}

func (n *BaseNode) Stop(ctx context.Context) {
	fmt.Println("\nstopping permit-bank :(")
}

func (n *BaseNode) Version(ctx context.Context) (string, error) {
	return build.UserVersion(), nil
}

// Shutdown asks the daemon loop to exit.
func (n *BaseNode) Shutdown(ctx context.Context) error {
	close(n.ShutdownChan)
	return nil
}

// RunRPCAndWait serves the api until a shutdown signal arrives.
func (n *BaseNode) RunRPCAndWait(ctx context.Context, ready chan interface{}) error {
	apiAddr, err := ma.NewMultiaddr(n.cfg.API.APIAddress)
	if err != nil {
		return err
	}

	// Listen on the configured address in order to bind the port number in case it has
	// been configured as zero (i.e. OS-provided)
	apiListener, err := manet.Listen(apiAddr)
	if err != nil {
		return err
	}

	netListener := manet.NetListener(apiListener)

	handler := mux.NewRouter()

	rpcServer := jsonrpc.NewServer()
	rpcServer.Register("PermitBank", api.PermissionedFullAPI(n))
	handler.Handle("/rpc/v0", rpcServer)

	gateway.NewHandler(n.gw).Register(handler)

	ah := &auth.Handler{
		Verify: n.AuthVerify,
		Next:   handler.ServeHTTP,
	}

	apiserv := &http.Server{
		Handler: n.corsHandler(ah),
	}

	n.cfg.API.APIAddress = apiListener.Multiaddr().String()
	if err := os.WriteFile(filepath.Join(n.repoPath, "api"), []byte(n.cfg.API.APIAddress), 0644); err != nil {
		return err
	}

	// admin token for the cli client
	tk, err := n.AuthNew(ctx, api.AllPermissions)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(n.repoPath, "token"), tk, 0600); err != nil {
		return err
	}

	var terminate = make(chan os.Signal, 1)
	signal.Notify(terminate, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(terminate)

	close(ready)

	go func() {
		select {
		case <-n.ShutdownChan:
			logger.Warn("received shutdown")
		case <-terminate:
			logger.Warn("received shutdown signal")
		}

		logger.Warn("shutdown...")
		err = apiserv.Shutdown(ctx)
		if err != nil {
			return
		}
		n.Stop(ctx)
	}()

	logger.Info("api serving on ", n.cfg.API.APIAddress)
	return apiserv.Serve(netListener)
}

// corsHandler answers preflight requests for the browser gateway with the
// configured origins.
func (n *BaseNode) corsHandler(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(n.cfg.API.AccessControlAllowOrigin))
	for _, o := range n.cfg.API.AccessControlAllowOrigin {
		allowed[o] = true
	}
	methods := strings.Join(n.cfg.API.AccessControlAllowMethods, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			if n.cfg.API.AccessControlAllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// config ops

func (n *BaseNode) ConfigSet(ctx context.Context, key, val string) error {
	if err := n.cfg.Set(key, val); err != nil {
		return err
	}
	return n.cfg.WriteFile(filepath.Join(n.repoPath, configFile))
}

func (n *BaseNode) ConfigGet(ctx context.Context, key string) (interface{}, error) {
	return n.cfg.Get(key)
}

// wallet ops

func (n *BaseNode) WalletImport(ctx context.Context, hexSk string) (common.Address, error) {
	return n.wallet.Import(hexSk)
}

func (n *BaseNode) WalletExport(ctx context.Context, addr common.Address) (string, error) {
	return n.wallet.Export(addr)
}

func (n *BaseNode) WalletList(ctx context.Context) ([]common.Address, error) {
	return n.wallet.List()
}

func (n *BaseNode) WalletHas(ctx context.Context, addr common.Address) (bool, error) {
	return n.wallet.Has(addr), nil
}

func (n *BaseNode) WalletDelete(ctx context.Context, addr common.Address) error {
	return n.wallet.Delete(addr)
}

// gateway ops

func (n *BaseNode) TokenInfo(ctx context.Context) (*inter.TokenInfo, error) {
	return n.gw.TokenInfo(ctx)
}

func (n *BaseNode) Account(ctx context.Context, addr common.Address) (*gateway.AccountView, error) {
	return n.gw.Account(ctx, addr)
}

func (n *BaseNode) PermitNonce(ctx context.Context, owner common.Address) (*big.Int, error) {
	return n.gw.PermitNonce(ctx, owner)
}

func (n *BaseNode) Transfer(ctx context.Context, recipient common.Address, amount string) (*gateway.TxView, error) {
	return n.gw.Transfer(ctx, recipient, amount)
}

func (n *BaseNode) Deposit(ctx context.Context, amount string) (*gateway.TxView, error) {
	return n.gw.Deposit(ctx, amount)
}

func (n *BaseNode) Withdraw(ctx context.Context, amount string) (*gateway.TxView, error) {
	return n.gw.Withdraw(ctx, amount)
}

func (n *BaseNode) TxStatus(ctx context.Context, th common.Hash) (*gateway.TxView, error) {
	return n.gw.TxStatus(ctx, th)
}
