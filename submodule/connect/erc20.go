package connect

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	"github.com/enzhaowang/go-permit-bank/contracts/token"
	inter "github.com/enzhaowang/go-permit-bank/submodule/connect/interface"
)

type ercImpl struct {
	endPoint string
	chainID  *big.Int

	sk string

	eAddr common.Address
	erc20 common.Address
}

// NewErc20 checks the contract is reachable and returns a token handle.
func NewErc20(ctx context.Context, endPoint, hexSk string, erc20 common.Address) (inter.IERC20, error) {
	client, err := ethclient.DialContext(ctx, endPoint)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, xerrors.Errorf("get chain id: %w", err)
	}

	eAddr, err := SkToAddr(hexSk)
	if err != nil {
		return nil, err
	}

	// check erc20 is a contract
	erc20Ins, err := token.NewERC20Permit(erc20, client)
	if err != nil {
		return nil, err
	}

	_, err = erc20Ins.Name(&bind.CallOpts{
		Context: ctx,
		From:    eAddr,
	})
	if err != nil {
		return nil, xerrors.Errorf("%s is not an erc20 contract: %w", erc20, err)
	}

	e := &ercImpl{
		endPoint: endPoint,
		chainID:  chainID,
		sk:       hexSk,
		eAddr:    eAddr,
		erc20:    erc20,
	}

	return e, nil
}

func (e *ercImpl) TokenInfo(ctx context.Context) (*inter.TokenInfo, error) {
	client, err := ethclient.DialContext(ctx, e.endPoint)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	erc20Ins, err := token.NewERC20Permit(e.erc20, client)
	if err != nil {
		return nil, err
	}

	opts := &bind.CallOpts{Context: ctx, From: e.eAddr}

	name, err := erc20Ins.Name(opts)
	if err != nil {
		return nil, err
	}
	symbol, err := erc20Ins.Symbol(opts)
	if err != nil {
		return nil, err
	}
	decimals, err := erc20Ins.Decimals(opts)
	if err != nil {
		return nil, err
	}

	return &inter.TokenInfo{
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
		Address:  e.erc20,
	}, nil
}

func (e *ercImpl) Transfer(ctx context.Context, recipient common.Address, amount *big.Int) (common.Hash, error) {
	val, err := e.BalanceOf(ctx, e.eAddr)
	if err != nil {
		return common.Hash{}, err
	}
	if val.Cmp(amount) < 0 {
		return common.Hash{}, xerrors.Errorf("%s balance not enough, need %d, has %d", e.eAddr, amount, val)
	}

	client, err := ethclient.DialContext(ctx, e.endPoint)
	if err != nil {
		return common.Hash{}, err
	}
	defer client.Close()

	erc20Ins, err := token.NewERC20Permit(e.erc20, client)
	if err != nil {
		return common.Hash{}, err
	}

	auth, err := MakeAuth(ctx, client, e.chainID, e.sk)
	if err != nil {
		return common.Hash{}, err
	}

	tx, err := erc20Ins.Transfer(auth, recipient, amount)
	if err != nil {
		return common.Hash{}, err
	}

	return tx.Hash(), CheckTx(e.endPoint, tx.Hash(), "transfer")
}

func (e *ercImpl) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	client, err := ethclient.DialContext(ctx, e.endPoint)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	erc20Ins, err := token.NewERC20Permit(e.erc20, client)
	if err != nil {
		return nil, err
	}

	retryCount := 0
	for {
		retryCount++
		bal, err := erc20Ins.BalanceOf(&bind.CallOpts{
			Context: ctx,
			From:    e.eAddr,
		}, account)
		if err != nil {
			if retryCount > readRetryCount {
				return nil, err
			}
			time.Sleep(readRetrySleepTime)
			continue
		}

		return bal, nil
	}
}

// NonceOf reads the owner's permit nonce; a permit must carry the chain's
// current value or the contract rejects it.
func (e *ercImpl) NonceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	client, err := ethclient.DialContext(ctx, e.endPoint)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	erc20Ins, err := token.NewERC20Permit(e.erc20, client)
	if err != nil {
		return nil, err
	}

	return erc20Ins.Nonces(&bind.CallOpts{
		Context: ctx,
		From:    e.eAddr,
	}, owner)
}
