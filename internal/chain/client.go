package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"

	"ethMintBot/internal/logging"
)

var ErrConnection = errors.New("failed to connect to rpc endpoint")

// Client is the part of ethclient.Client the bot talks to.
type Client interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
	NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

var _ Client = (*ethclient.Client)(nil)

const clientVersionMethod = "web3_clientVersion"

// Connect dials endpoint and probes it once with web3_clientVersion.
// There is no retry: any failure is reported as ErrConnection.
func Connect(ctx context.Context, endpoint string, logger zerolog.Logger) (*ethclient.Client, error) {
	rpcClient, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConnection, endpoint, err)
	}

	var version string
	if err := rpcClient.CallContext(ctx, &version, clientVersionMethod); err != nil {
		rpcClient.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrConnection, endpoint, err)
	}

	logger.Debug().
		Str(logging.FieldUrl, endpoint).
		Str("clientVersion", version).
		Msg("Connected to rpc endpoint")

	return ethclient.NewClient(rpcClient), nil
}
