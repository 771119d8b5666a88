package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidKey = errors.New("invalid private key")

type Wallet struct {
	privKey *ecdsa.PrivateKey
	address common.Address
}

// FromHex parses a hex secret key, with or without the 0x prefix.
// The error never contains the key itself.
func FromHex(key string) (*Wallet, error) {
	key = strings.TrimSpace(key)
	key = strings.TrimPrefix(strings.TrimPrefix(key, "0x"), "0X")

	priv, err := crypto.HexToECDSA(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return FromECDSA(priv), nil
}

func FromECDSA(priv *ecdsa.PrivateKey) *Wallet {
	pub := priv.Public()
	pubECDSA := pub.(*ecdsa.PublicKey)

	return &Wallet{
		privKey: priv,
		address: crypto.PubkeyToAddress(*pubECDSA),
	}
}

func (w *Wallet) Address() common.Address {
	return w.address
}

func (w *Wallet) PrivateKey() *ecdsa.PrivateKey {
	return w.privKey
}
