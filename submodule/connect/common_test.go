package connect

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// newChainStub serves eth_getTransactionReceipt with a fixed result.
func newChainStub(t *testing.T, receipt json.RawMessage) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
		}
		switch req.Method {
		case "eth_getTransactionReceipt":
			if receipt != nil {
				resp["result"] = receipt
			}
		default:
			http.Error(w, "unexpected method "+req.Method, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func receiptJSON(th common.Hash, status string, gasUsed, cumulative string) json.RawMessage {
	bloom := "0x" + strings.Repeat("0", 512)
	return json.RawMessage(fmt.Sprintf(`{
		"transactionHash": %q,
		"transactionIndex": "0x0",
		"blockHash": %q,
		"blockNumber": "0x64",
		"cumulativeGasUsed": %q,
		"gasUsed": %q,
		"contractAddress": null,
		"logs": [],
		"logsBloom": %q,
		"status": %q,
		"type": "0x0",
		"effectiveGasPrice": "0x3b9aca00"
	}`, th.Hex(), common.HexToHash("0x1").Hex(), cumulative, gasUsed, bloom, status))
}

// quickPolling shrinks the receipt poll cadence so the tests don't sit
// through block intervals.
func quickPolling(t *testing.T) {
	t.Helper()
	oldRetry, oldSleep, oldNext := checkTxRetryCount, checkTxSleepTime, nextBlockTime
	checkTxRetryCount, checkTxSleepTime, nextBlockTime = 2, 0, 0
	t.Cleanup(func() {
		checkTxRetryCount, checkTxSleepTime, nextBlockTime = oldRetry, oldSleep, oldNext
	})
}

func TestCheckTxNotPackaged(t *testing.T) {
	quickPolling(t)

	srv := newChainStub(t, nil)
	defer srv.Close()

	th := common.HexToHash("0xaa")
	err := CheckTx(srv.URL, th, "transfer")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not packaged")
}

func TestCheckTxMinedButReverted(t *testing.T) {
	quickPolling(t)

	th := common.HexToHash("0xbb")
	srv := newChainStub(t, receiptJSON(th, "0x0", "0x5208", "0x5208"))
	defer srv.Close()

	err := CheckTx(srv.URL, th, "depositWithPermit")
	require.Error(t, err)
	require.Contains(t, err.Error(), "mined but execution failed")
	require.NotContains(t, err.Error(), "not packaged")
}

func TestCheckTxOutOfGas(t *testing.T) {
	quickPolling(t)

	th := common.HexToHash("0xcc")
	srv := newChainStub(t, receiptJSON(th, "0x0", "0x5208", "0x6208"))
	defer srv.Close()

	err := CheckTx(srv.URL, th, "transfer")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exceed gas limit")
}

func TestCheckTxConfirmed(t *testing.T) {
	quickPolling(t)

	th := common.HexToHash("0xdd")
	srv := newChainStub(t, receiptJSON(th, "0x1", "0x5208", "0x5208"))
	defer srv.Close()

	require.NoError(t, CheckTx(srv.URL, th, "transfer"))
}

func TestTxStatus(t *testing.T) {
	th := common.HexToHash("0xee")

	pending := newChainStub(t, nil)
	defer pending.Close()
	st, err := TxStatus(pending.URL, th)
	require.NoError(t, err)
	require.Equal(t, "pending", st)

	failed := newChainStub(t, receiptJSON(th, "0x0", "0x5208", "0x5208"))
	defer failed.Close()
	st, err = TxStatus(failed.URL, th)
	require.NoError(t, err)
	require.Equal(t, "failed", st)

	confirmed := newChainStub(t, receiptJSON(th, "0x1", "0x5208", "0x5208"))
	defer confirmed.Close()
	st, err = TxStatus(confirmed.URL, th)
	require.NoError(t, err)
	require.Equal(t, "confirmed", st)
}
