package inter

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Permit is a signed EIP-2612 authorization, ready to compose into a
// depositWithPermit call.
type Permit struct {
	Owner    common.Address
	Spender  common.Address
	Value    *big.Int
	Nonce    *big.Int
	Deadline *big.Int

	V uint8
	R [32]byte
	S [32]byte
}

type IBank interface {
	Token(ctx context.Context) (common.Address, error)
	DepositOf(ctx context.Context, owner common.Address) (*big.Int, error)

	DepositWithPermit(ctx context.Context, amount *big.Int) (common.Hash, error)
	Withdraw(ctx context.Context, amount *big.Int) (common.Hash, error)
}
