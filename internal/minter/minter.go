package minter

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"

	"ethMintBot/internal/chain"
	"ethMintBot/internal/logging"
	"ethMintBot/internal/wallet"
)

type Config struct {
	Contract common.Address
	Selector [4]byte
	GasLimit uint64
	GasPrice *big.Int
}

// Sender broadcasts a signed transaction. ethclient.Client is one, bundle.Sender is another.
type Sender interface {
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

type Minter struct {
	client chain.Client
	sender Sender
	config Config
	logger zerolog.Logger
}

// NewMinter creates a minter broadcasting through sender, or through client when sender is nil.
func NewMinter(client chain.Client, sender Sender, config Config, logger zerolog.Logger) *Minter {
	if sender == nil {
		sender = client
	}
	return &Minter{
		client: client,
		sender: sender,
		config: config,
		logger: logger,
	}
}

// Mint signs a mint(to, amount) call with the wallet's key and broadcasts it without waiting for a receipt.
//
// The nonce is read for to, not for the signer. Nonces belong to the sender, so this only works because
// the runner always mints to the wallet's own address.
func (m *Minter) Mint(
	ctx context.Context,
	w *wallet.Wallet,
	to common.Address,
	amount *big.Int,
	chainId *big.Int,
) (common.Hash, error) {
	nonce, err := m.client.NonceAt(ctx, to, nil)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce of %s: %w", to.Hex(), err)
	}

	tx, err := m.BuildTx(nonce, to, amount)
	if err != nil {
		return common.Hash{}, err
	}

	signTx, err := types.SignTx(tx, types.LatestSignerForChainID(chainId), w.PrivateKey())
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := m.sender.SendTransaction(ctx, signTx); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	m.logger.Debug().
		Stringer(logging.FieldAccountAddress, w.Address()).
		Uint64(logging.FieldAccountNonce, nonce).
		Stringer(logging.FieldTxHash, signTx.Hash()).
		Msg("Mint transaction sent")

	return signTx.Hash(), nil
}

// BuildTx assembles the unsigned legacy transaction: zero value, static gas, mint call data.
func (m *Minter) BuildTx(nonce uint64, to common.Address, amount *big.Int) (*types.Transaction, error) {
	data, err := EncodeMintCall(m.config.Selector, to, amount)
	if err != nil {
		return nil, err
	}

	contract := m.config.Contract
	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: new(big.Int).Set(m.config.GasPrice),
		Gas:      m.config.GasLimit,
		To:       &contract,
		Value:    big.NewInt(0),
		Data:     data,
	}), nil
}
