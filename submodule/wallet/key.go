package wallet

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	cr "crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
)

const (
	// StandardScryptN is the N parameter of Scrypt encryption algorithm
	StandardScryptN = 1 << 18
	// StandardScryptP is the P parameter of Scrypt encryption algorithm
	StandardScryptP = 1

	scryptR     = 8
	scryptDKLen = 32

	keyHeaderKDF  = "scrypt"
	latestVersion = 3
)

// ErrDecrypt is returned when the mac check fails, i.e. the passphrase is
// wrong.
var ErrDecrypt = errors.New("could not decrypt key with given passphrase")

// Key is the decrypted form of a stored secp256k1 key.
type Key struct {
	Id uuid.UUID

	// to simplify lookups we also store the address
	Address common.Address
	// we only store privkey as pubkey/address can be derived from it
	// privkey in this struct is always in plaintext
	PrivateKey []byte
}

// SecretKey returns the hex form expected by the chain connector.
func (k *Key) SecretKey() string {
	return hex.EncodeToString(k.PrivateKey)
}

type cipherparamsJSON struct {
	IV string `json:"iv"`
}

type CryptoJSON struct {
	Cipher       string                 `json:"cipher"`
	CipherText   string                 `json:"ciphertext"`
	CipherParams cipherparamsJSON       `json:"cipherparams"`
	KDF          string                 `json:"kdf"`
	KDFParams    map[string]interface{} `json:"kdfparams"`
	MAC          string                 `json:"mac"`
}

type encryptedKeyJSONV3 struct {
	Address string     `json:"address"`
	Crypto  CryptoJSON `json:"crypto"`
	Id      string     `json:"id"`
	Version int        `json:"version"`
}

func newKey(privatekey []byte, address common.Address) (*Key, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	return &Key{
		Id:         id,
		Address:    address,
		PrivateKey: privatekey,
	}, nil
}

// StorePrivateKey encrypts the private key by password and stores it in dir,
// named by its address.
func StorePrivateKey(dir, hexSk, password string) (common.Address, error) {
	sk, err := crypto.HexToECDSA(hexSk)
	if err != nil {
		return common.Address{}, err
	}
	addr := crypto.PubkeyToAddress(sk.PublicKey)

	key, err := newKey(crypto.FromECDSA(sk), addr)
	if err != nil {
		return common.Address{}, err
	}

	keyjson, err := encryptKey(key, password, StandardScryptN, StandardScryptP)
	if err != nil {
		return common.Address{}, err
	}

	path := joinPath(dir, keyFileName(addr))
	return addr, writeKeyFile(path, keyjson)
}

// LoadPrivateKey reads and decrypts the keyfile for address from the
// keystore file p.
func LoadPrivateKey(address common.Address, password, p string) (*Key, error) {
	keyjson, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}

	key, err := decryptKey(keyjson, password)
	if err != nil {
		return nil, err
	}

	// Make sure we're really operating on the requested key (no swap attacks)
	if key.Address != address {
		return nil, fmt.Errorf("key content mismatch: have %s, want %s", key.Address, address)
	}

	return key, nil
}

func joinPath(dir string, filename string) (path string) {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(dir, filename)
}

// encryptKey encrypts a key using the specified scrypt parameters into a json
// blob that can be decrypted later on.
func encryptKey(key *Key, password string, scryptN, scryptP int) ([]byte, error) {
	passwordArray := []byte(password)
	salt := getEntropyCSPRNG(32)
	derivedKey, err := scrypt.Key(passwordArray, salt, scryptN, scryptR, scryptP, scryptDKLen)
	if err != nil {
		return nil, err
	}
	encryptKey := derivedKey[:16]

	iv := getEntropyCSPRNG(aes.BlockSize)
	cipherText, err := aesCTRXOR(encryptKey, key.PrivateKey, iv)
	if err != nil {
		return nil, err
	}
	// the mac binds the ciphertext to the passphrase
	mac := crypto.Keccak256(derivedKey[16:32], cipherText)

	scryptParamsJSON := make(map[string]interface{}, 5)
	scryptParamsJSON["n"] = scryptN
	scryptParamsJSON["r"] = scryptR
	scryptParamsJSON["p"] = scryptP
	scryptParamsJSON["dklen"] = scryptDKLen
	scryptParamsJSON["salt"] = hex.EncodeToString(salt)

	cipherParamsJSON := cipherparamsJSON{
		IV: hex.EncodeToString(iv),
	}

	cryptoStruct := CryptoJSON{
		Cipher:       "aes-128-ctr",
		CipherText:   hex.EncodeToString(cipherText),
		CipherParams: cipherParamsJSON,
		KDF:          keyHeaderKDF,
		KDFParams:    scryptParamsJSON,
		MAC:          hex.EncodeToString(mac),
	}

	return json.Marshal(encryptedKeyJSONV3{
		Address: hex.EncodeToString(key.Address[:]),
		Crypto:  cryptoStruct,
		Id:      key.Id.String(),
		Version: latestVersion,
	})
}

// decryptKey decrypts a key from a json blob, returning the private key itself.
func decryptKey(keyjson []byte, password string) (*Key, error) {
	k := new(encryptedKeyJSONV3)
	if err := json.Unmarshal(keyjson, k); err != nil {
		return nil, err
	}

	if k.Version != latestVersion {
		return nil, fmt.Errorf("unsupported keyfile version %d", k.Version)
	}
	if k.Crypto.Cipher != "aes-128-ctr" {
		return nil, fmt.Errorf("cipher not supported: %v", k.Crypto.Cipher)
	}
	if k.Crypto.KDF != keyHeaderKDF {
		return nil, fmt.Errorf("kdf not supported: %v", k.Crypto.KDF)
	}

	mac, err := hex.DecodeString(k.Crypto.MAC)
	if err != nil {
		return nil, err
	}
	iv, err := hex.DecodeString(k.Crypto.CipherParams.IV)
	if err != nil {
		return nil, err
	}
	cipherText, err := hex.DecodeString(k.Crypto.CipherText)
	if err != nil {
		return nil, err
	}
	salt, err := hex.DecodeString(k.Crypto.KDFParams["salt"].(string))
	if err != nil {
		return nil, err
	}

	n := int(k.Crypto.KDFParams["n"].(float64))
	r := int(k.Crypto.KDFParams["r"].(float64))
	p := int(k.Crypto.KDFParams["p"].(float64))
	dkLen := int(k.Crypto.KDFParams["dklen"].(float64))

	derivedKey, err := scrypt.Key([]byte(password), salt, n, r, p, dkLen)
	if err != nil {
		return nil, err
	}

	calculatedMAC := crypto.Keccak256(derivedKey[16:32], cipherText)
	if !bytes.Equal(calculatedMAC, mac) {
		return nil, ErrDecrypt
	}

	keyBytes, err := aesCTRXOR(derivedKey[:16], cipherText, iv)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(k.Id)
	if err != nil {
		return nil, err
	}

	sk, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		return nil, err
	}

	return &Key{
		Id:         id,
		Address:    crypto.PubkeyToAddress(sk.PublicKey),
		PrivateKey: keyBytes,
	}, nil
}

func aesCTRXOR(key, inText, iv []byte) ([]byte, error) {
	aesBlock, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	stream := cipher.NewCTR(aesBlock, iv)
	outText := make([]byte, len(inText))
	stream.XORKeyStream(outText, inText)
	return outText, nil
}

func getEntropyCSPRNG(n int) []byte {
	mainBuff := make([]byte, n)
	_, err := io.ReadFull(cr.Reader, mainBuff)
	if err != nil {
		panic("reading from crypto/rand failed: " + err.Error())
	}
	return mainBuff
}

func writeTemporaryKeyFile(file string, content []byte) (string, error) {
	// Create the keystore directory with appropriate permissions
	// in case it is not present yet.
	const dirPerm = 0700
	if err := os.MkdirAll(filepath.Dir(file), dirPerm); err != nil {
		return "", err
	}
	// Atomic write: create a temporary hidden file first
	// then move it into place. TempFile assigns mode 0600.
	f, err := os.CreateTemp(filepath.Dir(file), "."+filepath.Base(file)+".tmp")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	f.Close()
	return f.Name(), nil
}

func writeKeyFile(file string, content []byte) error {
	name, err := writeTemporaryKeyFile(file, content)
	if err != nil {
		return err
	}
	return os.Rename(name, file)
}

// keyFileName implements the naming convention for keyfiles: the lowercase
// hex address.
func keyFileName(keyAddr common.Address) string {
	return hex.EncodeToString(keyAddr[:])
}
