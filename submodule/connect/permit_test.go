package connect

import (
	"encoding/hex"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/assert"
)

func newTestSigner(t *testing.T) (*PermitSigner, string) {
	sk, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	hexSk := hex.EncodeToString(crypto.FromECDSA(sk))

	p, err := NewPermitSigner(big.NewInt(31337), "Permit Token",
		common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), hexSk, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	return p, hexSk
}

func TestSignPermit(t *testing.T) {
	assert := assert.New(t)

	p, _ := newTestSigner(t)
	spender := common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")

	permit, err := p.Sign(spender, big.NewInt(1500000), big.NewInt(0))
	assert.NoError(err)

	assert.Equal(p.Owner(), permit.Owner)
	assert.Equal(spender, permit.Spender)
	assert.Equal(int64(1500000), permit.Value.Int64())
	assert.True(permit.V == 27 || permit.V == 28)
	assert.True(permit.Deadline.Int64() > time.Now().Unix())
}

func TestPermitSignatureRecovers(t *testing.T) {
	assert := assert.New(t)

	p, _ := newTestSigner(t)
	spender := common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")

	permit, err := p.Sign(spender, big.NewInt(42), big.NewInt(7))
	assert.NoError(err)

	td := p.TypedData(spender, permit.Value, permit.Nonce, permit.Deadline)
	hash, _, err := apitypes.TypedDataAndHash(td)
	assert.NoError(err)

	sig := JoinSignature(permit.V, permit.R, permit.S)
	assert.NoError(VerifySignature(hash, sig, p.Owner()))

	// a different claimed owner must fail the check
	other := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	assert.Error(VerifySignature(hash, sig, other))
}

func TestSplitSignature(t *testing.T) {
	assert := assert.New(t)

	sig := make([]byte, 65)
	for i := range sig {
		sig[i] = byte(i)
	}
	sig[64] = 1

	v, r, s, err := SplitSignature(sig)
	assert.NoError(err)
	assert.Equal(uint8(28), v)
	assert.Equal(sig[:32], r[:])
	assert.Equal(sig[32:64], s[:])

	_, _, _, err = SplitSignature(sig[:64])
	assert.Error(err)
}

func TestTypedDataHashStable(t *testing.T) {
	assert := assert.New(t)

	p, _ := newTestSigner(t)
	spender := common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")

	td1 := p.TypedData(spender, big.NewInt(100), big.NewInt(3), big.NewInt(1900000000))
	td2 := p.TypedData(spender, big.NewInt(100), big.NewInt(3), big.NewInt(1900000000))

	h1, _, err := apitypes.TypedDataAndHash(td1)
	assert.NoError(err)
	h2, _, err := apitypes.TypedDataAndHash(td2)
	assert.NoError(err)
	assert.Equal(h1, h2)

	// any field change moves the hash
	td3 := p.TypedData(spender, big.NewInt(101), big.NewInt(3), big.NewInt(1900000000))
	h3, _, err := apitypes.TypedDataAndHash(td3)
	assert.NoError(err)
	assert.NotEqual(h1, h3)
}

func TestExplorerTxURL(t *testing.T) {
	assert := assert.New(t)

	th := common.HexToHash("0xabc0000000000000000000000000000000000000000000000000000000000001")

	assert.Equal("https://etherscan.io/tx/"+th.Hex(), ExplorerTxURL(1, th))
	assert.Equal("https://sepolia.etherscan.io/tx/"+th.Hex(), ExplorerTxURL(11155111, th))
	assert.Equal("https://blockscan.com/tx/"+th.Hex(), ExplorerTxURL(31337, th))
}
