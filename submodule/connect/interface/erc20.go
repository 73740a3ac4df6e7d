package inter

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TokenInfo is the token metadata resolved from the contract.
type TokenInfo struct {
	Name     string
	Symbol   string
	Decimals uint8
	Address  common.Address
}

type IERC20 interface {
	TokenInfo(ctx context.Context) (*TokenInfo, error)

	Transfer(ctx context.Context, recipient common.Address, amount *big.Int) (common.Hash, error)

	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	NonceOf(ctx context.Context, owner common.Address) (*big.Int, error)
}
