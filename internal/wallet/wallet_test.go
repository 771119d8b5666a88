package wallet

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

const (
	testKey     = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testAddress = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
)

func TestFromHex(t *testing.T) {
	t.Parallel()

	w, err := FromHex(testKey)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(testAddress), w.Address())
	require.Equal(t, testAddress, w.Address().Hex())

	again, err := FromHex(testKey)
	require.NoError(t, err)
	require.Equal(t, w.Address(), again.Address())
}

func TestFromHexPrefixed(t *testing.T) {
	t.Parallel()

	w, err := FromHex("0x" + testKey)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(testAddress), w.Address())
}

func TestFromHexInvalid(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "zz", testKey[:10], testKey + "00"} {
		_, err := FromHex(key)
		require.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestFromECDSA(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	require.NoError(t, err)

	w := FromECDSA(priv)
	require.Equal(t, crypto.PubkeyToAddress(priv.PublicKey), w.Address())
	require.Same(t, priv, w.PrivateKey())
}
