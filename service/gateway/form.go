package gateway

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/enzhaowang/go-permit-bank/lib/types"
)

// Status tracks a form through one submission.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusConfirmed  Status = "confirmed"
	StatusFailed     Status = "failed"
)

var (
	ErrBadRecipient = xerrors.New("recipient is not a valid address")
	ErrSelfTransfer = xerrors.New("recipient is the sender itself")
	ErrOverBalance  = xerrors.New("amount exceeds balance")
	ErrBusy         = xerrors.New("a transaction is already in flight")
)

type transferSender interface {
	Transfer(ctx context.Context, recipient common.Address, amount string) (*TxView, error)
}

type depositSender interface {
	Deposit(ctx context.Context, amount string) (*TxView, error)
}

// TransferForm holds the recipient and amount fields of the transfer
// screen plus the submission state. The zero field values are invalid, so
// a fresh form cannot submit.
type TransferForm struct {
	mu sync.Mutex

	Recipient string
	Amount    string

	owner    common.Address
	decimals uint8
	balance  *big.Int

	status Status
	tx     *TxView
	err    error
}

func NewTransferForm(owner common.Address, decimals uint8, balance *big.Int) *TransferForm {
	return &TransferForm{
		owner:    owner,
		decimals: decimals,
		balance:  balance,
		status:   StatusIdle,
	}
}

// SetBalance refreshes the ceiling used by ValidateAmount.
func (f *TransferForm) SetBalance(bal *big.Int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balance = bal
}

func (f *TransferForm) ValidateRecipient() error {
	if !common.IsHexAddress(f.Recipient) {
		return ErrBadRecipient
	}
	if common.HexToAddress(f.Recipient) == f.owner {
		return ErrSelfTransfer
	}
	return nil
}

func (f *TransferForm) ValidateAmount() error {
	val, err := types.ParseAmount(f.Amount, f.decimals)
	if err != nil {
		return err
	}
	if f.balance != nil && val.Cmp(f.balance) > 0 {
		return ErrOverBalance
	}
	return nil
}

// CanSubmit reports whether both fields validate and no submission is in
// flight.
func (f *TransferForm) CanSubmit() bool {
	f.mu.Lock()
	busy := f.status == StatusSubmitting
	f.mu.Unlock()
	if busy {
		return false
	}
	return f.ValidateRecipient() == nil && f.ValidateAmount() == nil
}

func (f *TransferForm) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Result returns the final transaction view and error of the last
// submission.
func (f *TransferForm) Result() (*TxView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tx, f.err
}

// Submit validates the fields and sends the transfer. The sender blocks
// through receipt confirmation, so on return the form is either confirmed
// or failed.
func (f *TransferForm) Submit(ctx context.Context, s transferSender) (*TxView, error) {
	if err := f.ValidateRecipient(); err != nil {
		return nil, err
	}
	if err := f.ValidateAmount(); err != nil {
		return nil, err
	}
	if err := f.begin(); err != nil {
		return nil, err
	}

	tx, err := s.Transfer(ctx, common.HexToAddress(f.Recipient), f.Amount)
	f.finish(tx, err)
	return tx, err
}

func (f *TransferForm) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSubmitting {
		return ErrBusy
	}
	f.status = StatusSubmitting
	f.tx = nil
	f.err = nil
	return nil
}

func (f *TransferForm) finish(tx *TxView, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tx = tx
	f.err = err
	if err != nil {
		f.status = StatusFailed
		return
	}
	f.status = StatusConfirmed
}

// DepositForm is the single-field deposit screen. The recipient is fixed:
// funds always land in the caller's own bank account.
type DepositForm struct {
	mu sync.Mutex

	Amount string

	decimals uint8
	balance  *big.Int

	status Status
	tx     *TxView
	err    error
}

func NewDepositForm(decimals uint8, balance *big.Int) *DepositForm {
	return &DepositForm{
		decimals: decimals,
		balance:  balance,
		status:   StatusIdle,
	}
}

func (f *DepositForm) SetBalance(bal *big.Int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balance = bal
}

func (f *DepositForm) ValidateAmount() error {
	val, err := types.ParseAmount(f.Amount, f.decimals)
	if err != nil {
		return err
	}
	if f.balance != nil && val.Cmp(f.balance) > 0 {
		return ErrOverBalance
	}
	return nil
}

func (f *DepositForm) CanSubmit() bool {
	f.mu.Lock()
	busy := f.status == StatusSubmitting
	f.mu.Unlock()
	if busy {
		return false
	}
	return f.ValidateAmount() == nil
}

func (f *DepositForm) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *DepositForm) Result() (*TxView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tx, f.err
}

func (f *DepositForm) Submit(ctx context.Context, s depositSender) (*TxView, error) {
	if err := f.ValidateAmount(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	f.status = StatusSubmitting
	f.tx = nil
	f.err = nil
	f.mu.Unlock()

	tx, err := s.Deposit(ctx, f.Amount)

	f.mu.Lock()
	f.tx = tx
	f.err = err
	if err != nil {
		f.status = StatusFailed
	} else {
		f.status = StatusConfirmed
	}
	f.mu.Unlock()

	return tx, err
}
