package connect

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	"github.com/enzhaowang/go-permit-bank/lib/log"
)

var logger = log.Logger("connect")

const (
	readRetryCount     = 3
	readRetrySleepTime = 5 * time.Second

	DefaultGasLimit = uint64(300000)
)

// receipt polling cadence, in seconds; vars so chains with other block times
// can be accommodated
var (
	checkTxRetryCount = 10
	checkTxSleepTime  = 6 // wait a block time plus one before the first receipt query
	nextBlockTime     = 5 // block interval of the target chain
)

// MakeAuth builds transact options for the given key, with the gas price
// suggested by the endpoint.
func MakeAuth(ctx context.Context, client *ethclient.Client, chainID *big.Int, hexSk string) (*bind.TransactOpts, error) {
	sk, err := crypto.HexToECDSA(hexSk)
	if err != nil {
		return nil, err
	}

	auth, err := bind.NewKeyedTransactorWithChainID(sk, chainID)
	if err != nil {
		return nil, xerrors.Errorf("new keyed transactor failed %w", err)
	}

	auth.Value = big.NewInt(0)
	auth.GasLimit = DefaultGasLimit

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err == nil {
		auth.GasPrice = gasPrice
	}

	return auth, nil
}

// GetTransactionReceipt fetches the receipt for a transaction hash.
func GetTransactionReceipt(endPoint string, hash common.Hash) *types.Receipt {
	client, err := ethclient.Dial(endPoint)
	if err != nil {
		return nil
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	receipt, _ := client.TransactionReceipt(ctx, hash)
	return receipt
}

// CheckTx waits until the transaction is packaged and checks its receipt
// status. It reports "not packaged" and "mined but reverted" separately so
// the caller can show a useful message.
func CheckTx(endPoint string, th common.Hash, name string) error {
	var receipt *types.Receipt

	t := checkTxSleepTime
	for i := 0; i < checkTxRetryCount; i++ {
		if i != 0 {
			t = nextBlockTime * i
		}
		time.Sleep(time.Duration(t) * time.Second)
		receipt = GetTransactionReceipt(endPoint, th)
		if receipt != nil {
			break
		}
	}

	if receipt == nil {
		return xerrors.Errorf("%s %s cannot get tx receipt, not packaged", name, th)
	}

	// 0 means fail
	if receipt.Status == 0 {
		if receipt.GasUsed != receipt.CumulativeGasUsed {
			return xerrors.Errorf("%s %s transaction exceed gas limit", name, th)
		}
		return xerrors.Errorf("%s %s transaction mined but execution failed, please check your tx input", name, th)
	}

	logger.Debugf("%s %s confirmed in block %d", name, th, receipt.BlockNumber)
	return nil
}

// TxStatus does a single receipt lookup, for polling from the gateway.
func TxStatus(endPoint string, th common.Hash) (string, error) {
	receipt := GetTransactionReceipt(endPoint, th)
	if receipt == nil {
		return "pending", nil
	}
	if receipt.Status == 0 {
		return "failed", nil
	}
	return "confirmed", nil
}

// ChainID asks the endpoint for its chain id.
func ChainID(endPoint string) (uint64, error) {
	client, err := ethclient.Dial(endPoint)
	if err != nil {
		return 0, xerrors.Errorf("dial %s: %w", endPoint, err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	id, err := client.ChainID(ctx)
	if err != nil {
		return 0, err
	}
	return id.Uint64(), nil
}

func SkToAddr(hexSk string) (common.Address, error) {
	privateKey, err := crypto.HexToECDSA(hexSk)
	if err != nil {
		return common.Address{}, err
	}

	return crypto.PubkeyToAddress(privateKey.PublicKey), nil
}
