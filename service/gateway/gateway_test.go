package gateway

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	inter "github.com/enzhaowang/go-permit-bank/submodule/connect/interface"
)

// fakeToken keeps balances and permit nonces in maps so the gateway can be
// driven without a chain.
type fakeToken struct {
	info     inter.TokenInfo
	balances map[common.Address]*big.Int
	nonces   map[common.Address]*big.Int

	transfers int
}

func newFakeToken(decimals uint8) *fakeToken {
	return &fakeToken{
		info: inter.TokenInfo{
			Name:     "Test Token",
			Symbol:   "TST",
			Decimals: decimals,
			Address:  common.HexToAddress("0x3333333333333333333333333333333333333333"),
		},
		balances: make(map[common.Address]*big.Int),
		nonces:   make(map[common.Address]*big.Int),
	}
}

func (f *fakeToken) TokenInfo(ctx context.Context) (*inter.TokenInfo, error) {
	ti := f.info
	return &ti, nil
}

func (f *fakeToken) Transfer(ctx context.Context, recipient common.Address, amount *big.Int) (common.Hash, error) {
	f.transfers++
	return common.HexToHash("0xf00d"), nil
}

func (f *fakeToken) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	if bal, ok := f.balances[account]; ok {
		return bal, nil
	}
	return big.NewInt(0), nil
}

func (f *fakeToken) NonceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	if n, ok := f.nonces[owner]; ok {
		return n, nil
	}
	return big.NewInt(0), nil
}

type fakeBank struct {
	deposits map[common.Address]*big.Int
}

func (f *fakeBank) Token(ctx context.Context) (common.Address, error) {
	return common.HexToAddress("0x3333333333333333333333333333333333333333"), nil
}

func (f *fakeBank) DepositOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	if dep, ok := f.deposits[owner]; ok {
		return dep, nil
	}
	return big.NewInt(0), nil
}

func (f *fakeBank) DepositWithPermit(ctx context.Context, amount *big.Int) (common.Hash, error) {
	return common.HexToHash("0xbeef"), nil
}

func (f *fakeBank) Withdraw(ctx context.Context, amount *big.Int) (common.Hash, error) {
	return common.HexToHash("0xcafe"), nil
}

func newTestGateway() (*Gateway, *fakeToken, *fakeBank) {
	tok := newFakeToken(6)
	bank := &fakeBank{deposits: make(map[common.Address]*big.Int)}
	g := New(tok, bank, "http://localhost:0", 11155111, testOwner)
	return g, tok, bank
}

func TestGatewayPermitNonce(t *testing.T) {
	g, tok, _ := newTestGateway()
	tok.nonces[testOwner] = big.NewInt(7)

	n, err := g.PermitNonce(context.Background(), testOwner)
	require.NoError(t, err)
	require.Equal(t, int64(7), n.Int64())

	// an address the token never saw starts at zero
	n, err = g.PermitNonce(context.Background(), testPeer)
	require.NoError(t, err)
	require.Zero(t, n.Int64())
}

func TestGatewayAccount(t *testing.T) {
	g, tok, bank := newTestGateway()
	tok.balances[testOwner] = big.NewInt(1500000) // 1.5 at 6 decimals
	bank.deposits[testOwner] = big.NewInt(250000) // 0.25

	av, err := g.Account(context.Background(), testOwner)
	require.NoError(t, err)
	require.Equal(t, testOwner, av.Address)
	require.Equal(t, "1.5", av.Balance)
	require.Equal(t, "0.25", av.Deposit)
	require.Equal(t, big.NewInt(1500000), av.Raw)
}

func TestGatewayTransfer(t *testing.T) {
	g, tok, _ := newTestGateway()
	tok.balances[testOwner] = big.NewInt(2000000) // 2 at 6 decimals

	_, err := g.Transfer(context.Background(), testPeer, "2.5")
	require.Error(t, err)
	require.Contains(t, err.Error(), "less than transfer amount")
	require.Zero(t, tok.transfers)

	tv, err := g.Transfer(context.Background(), testPeer, "1.5")
	require.NoError(t, err)
	require.Equal(t, 1, tok.transfers)
	require.Equal(t, common.HexToHash("0xf00d"), tv.Hash)
	require.Equal(t, "confirmed", tv.Status)
	require.Contains(t, tv.Explorer, tv.Hash.Hex())
}

func TestHandlerReadRoutes(t *testing.T) {
	g, tok, _ := newTestGateway()
	tok.balances[testOwner] = big.NewInt(1000000)
	tok.nonces[testOwner] = big.NewInt(3)

	r := mux.NewRouter()
	NewHandler(g).Register(r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	get := func(path string) (*http.Response, []byte) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, body
	}

	// the account view is served under three paths
	for _, path := range []string{
		"/gateway/account/" + testOwner.Hex(),
		"/gateway/balance/" + testOwner.Hex(),
		"/gateway/deposit/" + testOwner.Hex(),
	} {
		resp, body := get(path)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)

		var av AccountView
		require.NoError(t, json.Unmarshal(body, &av), path)
		require.Equal(t, "1", av.Balance, path)
	}

	resp, body := get("/gateway/nonce/" + testOwner.Hex())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var nr nonceResponse
	require.NoError(t, json.Unmarshal(body, &nr))
	require.Equal(t, testOwner.Hex(), nr.Address)
	require.Equal(t, "3", nr.Nonce)

	resp, _ = get("/gateway/nonce/not-an-address")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
