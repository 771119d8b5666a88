package account

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"ethMintBot/internal/chain"
	"ethMintBot/internal/logging"
	"ethMintBot/internal/wallet"
)

// native currency decimals (wei -> ether)
const etherDecimals = 18

type Info struct {
	Address    common.Address
	BalanceWei *big.Int
	Balance    decimal.Decimal
	ChainID    *big.Int
}

type Inspector struct {
	client chain.Client
	logger zerolog.Logger
}

func NewInspector(client chain.Client, logger zerolog.Logger) *Inspector {
	return &Inspector{
		client: client,
		logger: logger,
	}
}

// Inspect queries the latest balance and the chain id for the wallet's address.
func (i *Inspector) Inspect(ctx context.Context, w *wallet.Wallet) (*Info, error) {
	address := w.Address()

	balance, err := i.client.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance of %s: %w", address.Hex(), err)
	}

	chainId, err := i.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	i.logger.Debug().
		Stringer(logging.FieldAccountAddress, address).
		Stringer(logging.FieldChainId, chainId).
		Str("balanceWei", balance.String()).
		Msg("Account inspected")

	return &Info{
		Address:    address,
		BalanceWei: balance,
		Balance:    ToEther(balance),
		ChainID:    chainId,
	}, nil
}

func ToEther(wei *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(wei, -etherDecimals)
}
