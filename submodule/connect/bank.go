package connect

import (
	"context"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	"github.com/enzhaowang/go-permit-bank/contracts/bank"
	"github.com/enzhaowang/go-permit-bank/contracts/token"
	inter "github.com/enzhaowang/go-permit-bank/submodule/connect/interface"
)

type bankImpl struct {
	endPoint string
	chainID  *big.Int

	sk string

	eAddr    common.Address
	bankAddr common.Address
	erc20    common.Address

	signer *PermitSigner
}

// NewBank resolves the bank's token contract and prepares a permit signer
// for it.
func NewBank(ctx context.Context, endPoint, hexSk string, bankAddr common.Address) (inter.IBank, error) {
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

	bankIns, err := bank.NewTokenBank(bankAddr, client)
	if err != nil {
		return nil, err
	}

	opts := &bind.CallOpts{Context: ctx, From: eAddr}

	erc20, err := bankIns.Token(opts)
	if err != nil {
		return nil, xerrors.Errorf("%s is not a bank contract: %w", bankAddr, err)
	}

	// the permit domain is scoped by the token's name
	erc20Ins, err := token.NewERC20Permit(erc20, client)
	if err != nil {
		return nil, err
	}
	tokenName, err := erc20Ins.Name(opts)
	if err != nil {
		return nil, err
	}

	signer, err := NewPermitSigner(chainID, tokenName, erc20, hexSk, DefaultPermitTTL)
	if err != nil {
		return nil, err
	}

	b := &bankImpl{
		endPoint: endPoint,
		chainID:  chainID,
		sk:       hexSk,
		eAddr:    eAddr,
		bankAddr: bankAddr,
		erc20:    erc20,
		signer:   signer,
	}

	return b, nil
}

func (b *bankImpl) Token(ctx context.Context) (common.Address, error) {
	return b.erc20, nil
}

func (b *bankImpl) DepositOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	client, err := ethclient.DialContext(ctx, b.endPoint)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	bankIns, err := bank.NewTokenBank(b.bankAddr, client)
	if err != nil {
		return nil, err
	}

	return bankIns.Deposits(&bind.CallOpts{
		Context: ctx,
		From:    b.eAddr,
	}, owner)
}

// DepositWithPermit signs a permit for the bank and submits the deposit.
// The call is simulated first so a permit doomed to revert is caught
// before spending gas.
func (b *bankImpl) DepositWithPermit(ctx context.Context, amount *big.Int) (common.Hash, error) {
	client, err := ethclient.DialContext(ctx, b.endPoint)
	if err != nil {
		return common.Hash{}, err
	}
	defer client.Close()

	erc20Ins, err := token.NewERC20Permit(b.erc20, client)
	if err != nil {
		return common.Hash{}, err
	}

	opts := &bind.CallOpts{Context: ctx, From: b.eAddr}

	val, err := erc20Ins.BalanceOf(opts, b.eAddr)
	if err != nil {
		return common.Hash{}, err
	}
	if val.Cmp(amount) < 0 {
		return common.Hash{}, xerrors.Errorf("%s balance not enough, need %d, has %d", b.eAddr, amount, val)
	}

	// the nonce must be the chain's view at signing time
	nonce, err := erc20Ins.Nonces(opts, b.eAddr)
	if err != nil {
		return common.Hash{}, err
	}

	permit, err := b.signer.Sign(b.bankAddr, amount, nonce)
	if err != nil {
		return common.Hash{}, err
	}

	if err := b.simulateDeposit(ctx, client, permit); err != nil {
		return common.Hash{}, xerrors.Errorf("deposit simulation reverted: %w", err)
	}

	bankIns, err := bank.NewTokenBank(b.bankAddr, client)
	if err != nil {
		return common.Hash{}, err
	}

	auth, err := MakeAuth(ctx, client, b.chainID, b.sk)
	if err != nil {
		return common.Hash{}, err
	}

	tx, err := bankIns.DepositWithPermit(auth, permit.Owner, permit.Value, permit.Deadline, permit.V, permit.R, permit.S)
	if err != nil {
		return common.Hash{}, err
	}

	return tx.Hash(), CheckTx(b.endPoint, tx.Hash(), "depositWithPermit")
}

func (b *bankImpl) simulateDeposit(ctx context.Context, client *ethclient.Client, permit *inter.Permit) error {
	parsed, err := bank.TokenBankMetaData.GetAbi()
	if err != nil {
		return err
	}

	input, err := parsed.Pack("depositWithPermit", permit.Owner, permit.Value, permit.Deadline, permit.V, permit.R, permit.S)
	if err != nil {
		return err
	}

	_, err = client.CallContract(ctx, ethereum.CallMsg{
		From: b.eAddr,
		To:   &b.bankAddr,
		Data: input,
	}, nil)
	return err
}

func (b *bankImpl) Withdraw(ctx context.Context, amount *big.Int) (common.Hash, error) {
	dep, err := b.DepositOf(ctx, b.eAddr)
	if err != nil {
		return common.Hash{}, err
	}
	if dep.Cmp(amount) < 0 {
		return common.Hash{}, xerrors.Errorf("%s deposit not enough, need %d, has %d", b.eAddr, amount, dep)
	}

	client, err := ethclient.DialContext(ctx, b.endPoint)
	if err != nil {
		return common.Hash{}, err
	}
	defer client.Close()

	bankIns, err := bank.NewTokenBank(b.bankAddr, client)
	if err != nil {
		return common.Hash{}, err
	}

	auth, err := MakeAuth(ctx, client, b.chainID, b.sk)
	if err != nil {
		return common.Hash{}, err
	}

	tx, err := bankIns.Withdraw(auth, amount)
	if err != nil {
		return common.Hash{}, err
	}

	return tx.Hash(), CheckTx(b.endPoint, tx.Hash(), "withdraw")
}
