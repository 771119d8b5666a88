package bundle

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/metachris/flashbotsrpc"
	"github.com/rs/zerolog"

	"ethMintBot/internal/logging"
)

var ErrSimulationFailed = errors.New("bundle simulation failed")

type BlockNumberReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// Sender submits every transaction as a single-transaction bundle for the next block
// instead of broadcasting it to the public mempool.
type Sender struct {
	rpc      *flashbotsrpc.FlashbotsRPC
	authKey  *ecdsa.PrivateKey
	blocks   BlockNumberReader
	simulate bool
	logger   zerolog.Logger
}

// NewSender creates a relay sender. Bundles are signed with authKey (X-Flashbots-Signature);
// a fresh key is generated when it is nil. A positive timeout bounds every relay request,
// otherwise the relay client's own 30s default applies.
func NewSender(
	endpoint string,
	authKey *ecdsa.PrivateKey,
	blocks BlockNumberReader,
	simulate bool,
	timeout time.Duration,
	logger zerolog.Logger,
) (*Sender, error) {
	if authKey == nil {
		var err error
		authKey, err = crypto.GenerateKey()
		if err != nil {
			return nil, fmt.Errorf("failed to generate relay auth key: %w", err)
		}
	}

	rpc := flashbotsrpc.New(endpoint)
	if timeout > 0 {
		rpc.Timeout = timeout
	}

	return &Sender{
		rpc:      rpc,
		authKey:  authKey,
		blocks:   blocks,
		simulate: simulate,
		logger:   logger,
	}, nil
}

func (s *Sender) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b, err := tx.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to encode transaction: %w", err)
	}
	bundle := []string{hexutil.Encode(b)}

	head, err := s.blocks.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to get block number: %w", err)
	}
	target := hexutil.EncodeUint64(head + 1)

	if s.simulate {
		res, err := s.rpc.FlashbotsCallBundle(s.authKey, flashbotsrpc.FlashbotsCallBundleParam{
			Txs:              bundle,
			BlockNumber:      target,
			StateBlockNumber: "latest",
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSimulationFailed, err)
		}
		s.logger.Debug().
			Str(logging.FieldBundleHash, res.BundleHash).
			Msg("Bundle simulated")
	}

	// relay requests take no context
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := s.rpc.FlashbotsSendBundle(s.authKey, flashbotsrpc.FlashbotsSendBundleRequest{
		Txs:         bundle,
		BlockNumber: target,
	})
	if err != nil {
		return fmt.Errorf("failed to send bundle: %w", err)
	}

	s.logger.Debug().
		Stringer(logging.FieldTxHash, tx.Hash()).
		Str(logging.FieldBundleHash, res.BundleHash).
		Str(logging.FieldBlockNumber, target).
		Msg("Bundle sent")
	return nil
}
