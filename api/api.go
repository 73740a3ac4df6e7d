package api

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/filecoin-project/go-jsonrpc/auth"

	"github.com/enzhaowang/go-permit-bank/service/gateway"
	inter "github.com/enzhaowang/go-permit-bank/submodule/connect/interface"
)

type FullNode interface {
	ICommon
	IAuth
	IConfig
	IWallet
	IGateway
}

type ICommon interface {
	Version(context.Context) (string, error)
	Shutdown(context.Context) error
}

// json api auth and verify
type IAuth interface {
	AuthVerify(context.Context, string) ([]auth.Permission, error)
	AuthNew(context.Context, []auth.Permission) ([]byte, error)
}

// config
type IConfig interface {
	ConfigSet(context.Context, string, string) error
	ConfigGet(context.Context, string) (interface{}, error)
}

// wallet ops; keys travel as hex secp256k1 secrets
type IWallet interface {
	WalletImport(context.Context, string) (common.Address, error)
	WalletExport(context.Context, common.Address) (string, error)
	WalletList(context.Context) ([]common.Address, error)
	WalletHas(context.Context, common.Address) (bool, error)
	WalletDelete(context.Context, common.Address) error
}

// token and bank screens
type IGateway interface {
	TokenInfo(context.Context) (*inter.TokenInfo, error)
	Account(context.Context, common.Address) (*gateway.AccountView, error)
	PermitNonce(context.Context, common.Address) (*big.Int, error)

	Transfer(ctx context.Context, recipient common.Address, amount string) (*gateway.TxView, error)
	Deposit(ctx context.Context, amount string) (*gateway.TxView, error)
	Withdraw(ctx context.Context, amount string) (*gateway.TxView, error)

	TxStatus(context.Context, common.Hash) (*gateway.TxView, error)
}
