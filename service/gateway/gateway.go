package gateway

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/enzhaowang/go-permit-bank/lib/log"
	"github.com/enzhaowang/go-permit-bank/lib/types"
	"github.com/enzhaowang/go-permit-bank/submodule/connect"
	inter "github.com/enzhaowang/go-permit-bank/submodule/connect/interface"
)

var logger = log.Logger("gateway")

// AccountView is what the balance screen renders for one address.
type AccountView struct {
	Address common.Address `json:"address"`
	Balance string         `json:"balance"`
	Deposit string         `json:"deposit"`
	Raw     *big.Int       `json:"raw"`
}

// TxView is a submitted transaction as the screens track it.
type TxView struct {
	Hash     common.Hash `json:"hash"`
	Status   string      `json:"status"`
	Explorer string      `json:"explorer"`
}

// Gateway glues the screens to the chain connectors. All chain state is
// read fresh per call, nothing is cached.
type Gateway struct {
	token inter.IERC20
	bank  inter.IBank

	endPoint string
	chainID  uint64
	owner    common.Address
}

func New(token inter.IERC20, bank inter.IBank, endPoint string, chainID uint64, owner common.Address) *Gateway {
	return &Gateway{
		token:    token,
		bank:     bank,
		endPoint: endPoint,
		chainID:  chainID,
		owner:    owner,
	}
}

func (g *Gateway) Owner() common.Address {
	return g.owner
}

func (g *Gateway) TokenInfo(ctx context.Context) (*inter.TokenInfo, error) {
	return g.token.TokenInfo(ctx)
}

// Account returns the wallet balance and bank deposit of addr, formatted
// with the token's decimals.
func (g *Gateway) Account(ctx context.Context, addr common.Address) (*AccountView, error) {
	ti, err := g.token.TokenInfo(ctx)
	if err != nil {
		return nil, err
	}

	bal, err := g.token.BalanceOf(ctx, addr)
	if err != nil {
		return nil, xerrors.Errorf("balance of %s: %w", addr, err)
	}

	dep, err := g.bank.DepositOf(ctx, addr)
	if err != nil {
		return nil, xerrors.Errorf("deposit of %s: %w", addr, err)
	}

	return &AccountView{
		Address: addr,
		Balance: types.FormatAmount(bal, ti.Decimals),
		Deposit: types.FormatAmount(dep, ti.Decimals),
		Raw:     bal,
	}, nil
}

// PermitNonce reads the owner's current permit nonce from the token.
func (g *Gateway) PermitNonce(ctx context.Context, owner common.Address) (*big.Int, error) {
	nonce, err := g.token.NonceOf(ctx, owner)
	if err != nil {
		return nil, xerrors.Errorf("nonce of %s: %w", owner, err)
	}
	return nonce, nil
}

// Transfer parses amount against the token's decimals and sends a plain
// ERC-20 transfer to recipient.
func (g *Gateway) Transfer(ctx context.Context, recipient common.Address, amount string) (*TxView, error) {
	ti, err := g.token.TokenInfo(ctx)
	if err != nil {
		return nil, err
	}

	val, err := types.ParseAmount(amount, ti.Decimals)
	if err != nil {
		return nil, err
	}

	bal, err := g.token.BalanceOf(ctx, g.owner)
	if err != nil {
		return nil, err
	}
	if bal.Cmp(val) < 0 {
		return nil, xerrors.Errorf("balance %s less than transfer amount %s", types.FormatAmount(bal, ti.Decimals), amount)
	}

	logger.Info("transfer ", amount, " ", ti.Symbol, " to ", recipient)

	th, err := g.token.Transfer(ctx, recipient, val)
	if err != nil {
		return nil, err
	}

	return g.txView(th), nil
}

// Deposit signs a permit for amount and composes it into a single
// depositWithPermit transaction.
func (g *Gateway) Deposit(ctx context.Context, amount string) (*TxView, error) {
	ti, err := g.token.TokenInfo(ctx)
	if err != nil {
		return nil, err
	}

	val, err := types.ParseAmount(amount, ti.Decimals)
	if err != nil {
		return nil, err
	}

	logger.Info("deposit ", amount, " ", ti.Symbol, " with permit")

	th, err := g.bank.DepositWithPermit(ctx, val)
	if err != nil {
		return nil, err
	}

	return g.txView(th), nil
}

// Withdraw pulls amount back out of the bank.
func (g *Gateway) Withdraw(ctx context.Context, amount string) (*TxView, error) {
	ti, err := g.token.TokenInfo(ctx)
	if err != nil {
		return nil, err
	}

	val, err := types.ParseAmount(amount, ti.Decimals)
	if err != nil {
		return nil, err
	}

	th, err := g.bank.Withdraw(ctx, val)
	if err != nil {
		return nil, err
	}

	return g.txView(th), nil
}

// TxStatus re-checks a previously submitted transaction.
func (g *Gateway) TxStatus(ctx context.Context, th common.Hash) (*TxView, error) {
	st, err := connect.TxStatus(g.endPoint, th)
	if err != nil {
		return nil, err
	}
	return &TxView{
		Hash:     th,
		Status:   st,
		Explorer: connect.ExplorerTxURL(g.chainID, th),
	}, nil
}

// txView is built after the connector's receipt wait returned nil, so the
// transaction is already mined.
func (g *Gateway) txView(th common.Hash) *TxView {
	return &TxView{
		Hash:     th,
		Status:   "confirmed",
		Explorer: connect.ExplorerTxURL(g.chainID, th),
	}
}
