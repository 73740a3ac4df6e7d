package api

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/filecoin-project/go-jsonrpc/auth"

	"github.com/enzhaowang/go-permit-bank/service/gateway"
	inter "github.com/enzhaowang/go-permit-bank/submodule/connect/interface"
)

// common API permissions constraints
type CommonStruct struct {
	Internal struct {
		Version  func(context.Context) (string, error) `perm:"read"`
		Shutdown func(context.Context) error           `perm:"admin"`

		AuthVerify func(ctx context.Context, token string) ([]auth.Permission, error) `perm:"read"`
		AuthNew    func(ctx context.Context, perms []auth.Permission) ([]byte, error) `perm:"admin"`

		ConfigSet func(context.Context, string, string) error        `perm:"write"`
		ConfigGet func(context.Context, string) (interface{}, error) `perm:"write"`

		WalletImport func(context.Context, string) (common.Address, error)  `perm:"admin"`
		WalletExport func(context.Context, common.Address) (string, error)  `perm:"admin"`
		WalletList   func(context.Context) ([]common.Address, error)        `perm:"write"`
		WalletHas    func(context.Context, common.Address) (bool, error)    `perm:"write"`
		WalletDelete func(context.Context, common.Address) error            `perm:"admin"`
	}
}

type FullNodeStruct struct {
	CommonStruct

	Internal struct {
		TokenInfo   func(context.Context) (*inter.TokenInfo, error)                     `perm:"read"`
		Account     func(context.Context, common.Address) (*gateway.AccountView, error) `perm:"read"`
		PermitNonce func(context.Context, common.Address) (*big.Int, error)             `perm:"read"`

		Transfer func(context.Context, common.Address, string) (*gateway.TxView, error) `perm:"sign"`
		Deposit  func(context.Context, string) (*gateway.TxView, error)                 `perm:"sign"`
		Withdraw func(context.Context, string) (*gateway.TxView, error)                 `perm:"sign"`

		TxStatus func(context.Context, common.Hash) (*gateway.TxView, error) `perm:"read"`
	}
}

func (s *CommonStruct) Version(ctx context.Context) (string, error) {
	return s.Internal.Version(ctx)
}

func (s *CommonStruct) Shutdown(ctx context.Context) error {
	return s.Internal.Shutdown(ctx)
}

func (s *CommonStruct) AuthVerify(ctx context.Context, token string) ([]auth.Permission, error) {
	return s.Internal.AuthVerify(ctx, token)
}

func (s *CommonStruct) AuthNew(ctx context.Context, perms []auth.Permission) ([]byte, error) {
	return s.Internal.AuthNew(ctx, perms)
}

func (s *CommonStruct) ConfigSet(ctx context.Context, key, val string) error {
	return s.Internal.ConfigSet(ctx, key, val)
}

func (s *CommonStruct) ConfigGet(ctx context.Context, key string) (interface{}, error) {
	return s.Internal.ConfigGet(ctx, key)
}

func (s *CommonStruct) WalletImport(ctx context.Context, hexSk string) (common.Address, error) {
	return s.Internal.WalletImport(ctx, hexSk)
}

func (s *CommonStruct) WalletExport(ctx context.Context, addr common.Address) (string, error) {
	return s.Internal.WalletExport(ctx, addr)
}

func (s *CommonStruct) WalletList(ctx context.Context) ([]common.Address, error) {
	return s.Internal.WalletList(ctx)
}

func (s *CommonStruct) WalletHas(ctx context.Context, addr common.Address) (bool, error) {
	return s.Internal.WalletHas(ctx, addr)
}

func (s *CommonStruct) WalletDelete(ctx context.Context, addr common.Address) error {
	return s.Internal.WalletDelete(ctx, addr)
}

func (s *FullNodeStruct) TokenInfo(ctx context.Context) (*inter.TokenInfo, error) {
	return s.Internal.TokenInfo(ctx)
}

func (s *FullNodeStruct) Account(ctx context.Context, addr common.Address) (*gateway.AccountView, error) {
	return s.Internal.Account(ctx, addr)
}

func (s *FullNodeStruct) PermitNonce(ctx context.Context, owner common.Address) (*big.Int, error) {
	return s.Internal.PermitNonce(ctx, owner)
}

func (s *FullNodeStruct) Transfer(ctx context.Context, recipient common.Address, amount string) (*gateway.TxView, error) {
	return s.Internal.Transfer(ctx, recipient, amount)
}

func (s *FullNodeStruct) Deposit(ctx context.Context, amount string) (*gateway.TxView, error) {
	return s.Internal.Deposit(ctx, amount)
}

func (s *FullNodeStruct) Withdraw(ctx context.Context, amount string) (*gateway.TxView, error) {
	return s.Internal.Withdraw(ctx, amount)
}

func (s *FullNodeStruct) TxStatus(ctx context.Context, th common.Hash) (*gateway.TxView, error) {
	return s.Internal.TxStatus(ctx, th)
}

// GetInternalStructs exposes the rpc proxy targets for the merge client.
func GetInternalStructs(s *FullNodeStruct) []interface{} {
	return []interface{}{
		&s.CommonStruct.Internal,
		&s.Internal,
	}
}
