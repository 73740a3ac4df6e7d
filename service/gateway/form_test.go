package gateway

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/enzhaowang/go-permit-bank/lib/types"
)

var (
	testOwner = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testPeer  = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

type stubTransfer struct {
	calls int
	err   error
}

func (s *stubTransfer) Transfer(ctx context.Context, recipient common.Address, amount string) (*TxView, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &TxView{Hash: common.HexToHash("0xabc"), Status: "confirmed"}, nil
}

type stubDeposit struct {
	err error
}

func (s *stubDeposit) Deposit(ctx context.Context, amount string) (*TxView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &TxView{Hash: common.HexToHash("0xdef"), Status: "confirmed"}, nil
}

func TestTransferFormValidation(t *testing.T) {
	// one token with 6 decimals, holder owns 100
	bal, _ := types.ParseAmount("100", 6)
	f := NewTransferForm(testOwner, 6, bal)

	require.False(t, f.CanSubmit())
	require.ErrorIs(t, f.ValidateRecipient(), ErrBadRecipient)

	f.Recipient = "not-an-address"
	require.ErrorIs(t, f.ValidateRecipient(), ErrBadRecipient)

	f.Recipient = testOwner.Hex()
	require.ErrorIs(t, f.ValidateRecipient(), ErrSelfTransfer)

	f.Recipient = testPeer.Hex()
	require.NoError(t, f.ValidateRecipient())

	f.Amount = "0"
	require.ErrorIs(t, f.ValidateAmount(), types.ErrNotPositive)

	f.Amount = "100.0000001"
	require.ErrorIs(t, f.ValidateAmount(), types.ErrTooPrecise)

	f.Amount = "100.5"
	require.ErrorIs(t, f.ValidateAmount(), ErrOverBalance)

	f.Amount = "99.5"
	require.NoError(t, f.ValidateAmount())
	require.True(t, f.CanSubmit())
}

func TestTransferFormSubmit(t *testing.T) {
	bal, _ := types.ParseAmount("10", 18)
	f := NewTransferForm(testOwner, 18, bal)
	f.Recipient = testPeer.Hex()
	f.Amount = "2.5"

	s := &stubTransfer{}
	tv, err := f.Submit(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, StatusConfirmed, f.Status())
	require.Equal(t, 1, s.calls)

	got, gotErr := f.Result()
	require.NoError(t, gotErr)
	require.Equal(t, tv, got)

	// a second submission is allowed once the first one settled
	_, err = f.Submit(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, 2, s.calls)
}

func TestTransferFormSubmitRejectsInvalid(t *testing.T) {
	f := NewTransferForm(testOwner, 18, nil)
	f.Recipient = "bogus"
	f.Amount = "1"

	s := &stubTransfer{}
	_, err := f.Submit(context.Background(), s)
	require.ErrorIs(t, err, ErrBadRecipient)
	require.Equal(t, StatusIdle, f.Status())
	require.Zero(t, s.calls)
}

func TestTransferFormSubmitFailure(t *testing.T) {
	f := NewTransferForm(testOwner, 18, nil)
	f.Recipient = testPeer.Hex()
	f.Amount = "1"

	boom := xerrors.New("tx 0xabc mined but execution failed")
	s := &stubTransfer{err: boom}
	_, err := f.Submit(context.Background(), s)
	require.ErrorIs(t, err, boom)
	require.Equal(t, StatusFailed, f.Status())

	// failure does not lock the form
	require.True(t, f.CanSubmit())
}

func TestTransferFormBusy(t *testing.T) {
	bal, _ := types.ParseAmount("10", 18)
	f := NewTransferForm(testOwner, 18, bal)
	f.Recipient = testPeer.Hex()
	f.Amount = "1"

	// a submission in flight blocks another one
	f.status = StatusSubmitting
	require.False(t, f.CanSubmit())

	s := &stubTransfer{}
	_, err := f.Submit(context.Background(), s)
	require.ErrorIs(t, err, ErrBusy)
	require.Zero(t, s.calls)
}

func TestDepositFormBusy(t *testing.T) {
	bal, _ := types.ParseAmount("10", 18)
	f := NewDepositForm(18, bal)
	f.Amount = "1"

	f.status = StatusSubmitting
	require.False(t, f.CanSubmit())

	_, err := f.Submit(context.Background(), &stubDeposit{})
	require.ErrorIs(t, err, ErrBusy)
}

func TestDepositFormSubmit(t *testing.T) {
	bal, _ := types.ParseAmount("5", 18)
	f := NewDepositForm(18, bal)

	f.Amount = "6"
	require.ErrorIs(t, f.ValidateAmount(), ErrOverBalance)
	require.False(t, f.CanSubmit())

	f.Amount = "5"
	require.True(t, f.CanSubmit())

	tv, err := f.Submit(context.Background(), &stubDeposit{})
	require.NoError(t, err)
	require.Equal(t, StatusConfirmed, f.Status())
	require.Equal(t, common.HexToHash("0xdef"), tv.Hash)
}

func TestDepositFormSetBalance(t *testing.T) {
	f := NewDepositForm(18, big.NewInt(0))
	f.Amount = "1"
	require.ErrorIs(t, f.ValidateAmount(), ErrOverBalance)

	bal, _ := types.ParseAmount("2", 18)
	f.SetBalance(bal)
	require.NoError(t, f.ValidateAmount())
}
