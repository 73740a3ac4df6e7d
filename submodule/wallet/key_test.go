package wallet

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

// low-cost scrypt params so the tests stay fast
const (
	testScryptN = 1 << 12
	testScryptP = 6
)

func TestEncryptDecryptKey(t *testing.T) {
	sk, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(sk.PublicKey)

	key, err := newKey(crypto.FromECDSA(sk), addr)
	require.NoError(t, err)

	keyjson, err := encryptKey(key, "pass", testScryptN, testScryptP)
	require.NoError(t, err)

	got, err := decryptKey(keyjson, "pass")
	require.NoError(t, err)
	require.Equal(t, key.Address, got.Address)
	require.Equal(t, key.PrivateKey, got.PrivateKey)

	_, err = decryptKey(keyjson, "wrong")
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestWalletRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, "memo")

	sk, err := crypto.GenerateKey()
	require.NoError(t, err)
	hexSk := hex.EncodeToString(crypto.FromECDSA(sk))

	addr, err := w.Import(hexSk)
	require.NoError(t, err)
	require.Equal(t, crypto.PubkeyToAddress(sk.PublicKey), addr)
	require.True(t, w.Has(addr))

	out, err := w.Export(addr)
	require.NoError(t, err)
	require.Equal(t, hexSk, out)

	addrs, err := w.List()
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	require.Equal(t, addr, addrs[0])

	require.NoError(t, w.Delete(addr))
	require.False(t, w.Has(addr))
}
