package connect

import (
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"golang.org/x/xerrors"

	inter "github.com/enzhaowang/go-permit-bank/submodule/connect/interface"
)

// DefaultPermitTTL bounds how long a signed permit stays valid.
const DefaultPermitTTL = 30 * time.Minute

// PermitSigner produces EIP-2612 permits for one owner key against one
// token contract.
type PermitSigner struct {
	chainID   *big.Int
	tokenName string
	token     common.Address

	sk    *ecdsa.PrivateKey
	owner common.Address

	ttl time.Duration
}

func NewPermitSigner(chainID *big.Int, tokenName string, tokenAddr common.Address, hexSk string, ttl time.Duration) (*PermitSigner, error) {
	sk, err := crypto.HexToECDSA(hexSk)
	if err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = DefaultPermitTTL
	}

	return &PermitSigner{
		chainID:   chainID,
		tokenName: tokenName,
		token:     tokenAddr,
		sk:        sk,
		owner:     crypto.PubkeyToAddress(sk.PublicKey),
		ttl:       ttl,
	}, nil
}

func (p *PermitSigner) Owner() common.Address {
	return p.owner
}

// TypedData builds the EIP-712 message for a permit; domain version is
// fixed to "1" per the token contract.
func (p *PermitSigner) TypedData(spender common.Address, value, nonce, deadline *big.Int) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"Permit": {
				{Name: "owner", Type: "address"},
				{Name: "spender", Type: "address"},
				{Name: "value", Type: "uint256"},
				{Name: "nonce", Type: "uint256"},
				{Name: "deadline", Type: "uint256"},
			},
		},
		PrimaryType: "Permit",
		Domain: apitypes.TypedDataDomain{
			Name:              p.tokenName,
			Version:           "1",
			ChainId:           (*math.HexOrDecimal256)(p.chainID),
			VerifyingContract: p.token.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"owner":    p.owner.Hex(),
			"spender":  spender.Hex(),
			"value":    (*math.HexOrDecimal256)(value),
			"nonce":    (*math.HexOrDecimal256)(nonce),
			"deadline": (*math.HexOrDecimal256)(deadline),
		},
	}
}

// Sign hashes the typed data, signs it, and re-verifies that the signature
// recovers to the owner before handing it out. A permit that fails the
// local check would only waste gas on a doomed transaction.
func (p *PermitSigner) Sign(spender common.Address, value, nonce *big.Int) (*inter.Permit, error) {
	deadline := big.NewInt(time.Now().Add(p.ttl).Unix())

	td := p.TypedData(spender, value, nonce, deadline)
	hash, _, err := apitypes.TypedDataAndHash(td)
	if err != nil {
		return nil, xerrors.Errorf("hash permit: %w", err)
	}

	sig, err := crypto.Sign(hash, p.sk)
	if err != nil {
		return nil, xerrors.Errorf("sign permit: %w", err)
	}
	if sig[64] < 27 {
		sig[64] += 27
	}

	if err := VerifySignature(hash, sig, p.owner); err != nil {
		return nil, err
	}

	v, r, s, err := SplitSignature(sig)
	if err != nil {
		return nil, err
	}

	return &inter.Permit{
		Owner:    p.owner,
		Spender:  spender,
		Value:    value,
		Nonce:    nonce,
		Deadline: deadline,
		V:        v,
		R:        r,
		S:        s,
	}, nil
}

// VerifySignature recovers the signer of hash and compares it with owner.
func VerifySignature(hash, sig []byte, owner common.Address) error {
	if len(sig) != 65 {
		return xerrors.Errorf("signature length should be 65, got %d", len(sig))
	}

	c := make([]byte, 65)
	copy(c, sig)
	if c[64] >= 27 {
		c[64] -= 27
	}

	pub, err := crypto.SigToPub(hash, c)
	if err != nil {
		return xerrors.Errorf("recover signer: %w", err)
	}

	got := crypto.PubkeyToAddress(*pub)
	if got != owner {
		return xerrors.Errorf("signature recovers to %s, want %s", got, owner)
	}

	return nil
}

// SplitSignature decomposes a 65-byte signature into the v, r, s
// components the contract expects; v is normalized to 27/28.
func SplitSignature(sig []byte) (v uint8, r, s [32]byte, err error) {
	if len(sig) != 65 {
		return 0, r, s, xerrors.Errorf("signature length should be 65, got %d", len(sig))
	}

	copy(r[:], sig[:32])
	copy(s[:], sig[32:64])
	v = sig[64]
	if v < 27 {
		v += 27
	}

	return v, r, s, nil
}

// JoinSignature is the inverse of SplitSignature.
func JoinSignature(v uint8, r, s [32]byte) []byte {
	sig := make([]byte, 65)
	copy(sig[:32], r[:])
	copy(sig[32:64], s[:])
	sig[64] = v
	return sig
}
