package wallet

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/enzhaowang/go-permit-bank/lib/log"
)

var logger = log.Logger("wallet")

// LocalWallet manages encrypted keyfiles under a single directory.
type LocalWallet struct {
	dir      string
	password string
}

func New(dir, password string) *LocalWallet {
	return &LocalWallet{
		dir:      dir,
		password: password,
	}
}

// Import encrypts the given hex private key and stores it.
func (w *LocalWallet) Import(hexSk string) (common.Address, error) {
	addr, err := StorePrivateKey(w.dir, hexSk, w.password)
	if err != nil {
		return common.Address{}, xerrors.Errorf("import key: %w", err)
	}
	logger.Info("imported key for ", addr)
	return addr, nil
}

// Export decrypts the key for addr and returns the hex private key.
func (w *LocalWallet) Export(addr common.Address) (string, error) {
	key, err := w.Get(addr)
	if err != nil {
		return "", err
	}
	return key.SecretKey(), nil
}

// Get loads and decrypts the key for addr.
func (w *LocalWallet) Get(addr common.Address) (*Key, error) {
	p := joinPath(w.dir, keyFileName(addr))
	key, err := LoadPrivateKey(addr, w.password, p)
	if err != nil {
		return nil, xerrors.Errorf("load key of %s: %w", addr, err)
	}
	return key, nil
}

// Has reports whether a keyfile for addr exists.
func (w *LocalWallet) Has(addr common.Address) bool {
	_, err := os.Stat(joinPath(w.dir, keyFileName(addr)))
	return err == nil
}

// List returns the addresses of all stored keys.
func (w *LocalWallet) List() ([]common.Address, error) {
	ents, err := os.ReadDir(w.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []common.Address
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		b, err := hex.DecodeString(filepath.Base(ent.Name()))
		if err != nil || len(b) != common.AddressLength {
			continue
		}
		out = append(out, common.BytesToAddress(b))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Hex() < out[j].Hex()
	})
	return out, nil
}

// Delete removes the keyfile for addr.
func (w *LocalWallet) Delete(addr common.Address) error {
	p := joinPath(w.dir, keyFileName(addr))
	if err := os.Remove(p); err != nil {
		return xerrors.Errorf("delete key of %s: %w", addr, err)
	}
	return nil
}
