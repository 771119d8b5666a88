package runner

import (
	"bytes"
	"context"
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"ethMintBot/internal/account"
	"ethMintBot/internal/logging"
	"ethMintBot/internal/wallet"
)

type Inspector interface {
	Inspect(ctx context.Context, w *wallet.Wallet) (*account.Info, error)
}

type Minter interface {
	Mint(ctx context.Context, w *wallet.Wallet, to common.Address, amount *big.Int, chainId *big.Int) (common.Hash, error)
}

type BlockNumberReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

type Config struct {
	MintAmount *big.Int
	// Workers > 1 processes wallets concurrently; output stays grouped per wallet and in key order.
	Workers int
	// Timeout bounds a single wallet's inspect/mint/block sequence. Zero means no deadline.
	// A relay sender cannot be cancelled mid-request; it is built with the same value as its request timeout.
	Timeout time.Duration
}

type Runner struct {
	inspector Inspector
	minter    Minter
	blocks    BlockNumberReader
	config    Config
	out       io.Writer
	logger    zerolog.Logger
}

func NewRunner(
	inspector Inspector,
	minter Minter,
	blocks BlockNumberReader,
	config Config,
	out io.Writer,
	logger zerolog.Logger,
) *Runner {
	return &Runner{
		inspector: inspector,
		minter:    minter,
		blocks:    blocks,
		config:    config,
		out:       out,
		logger:    logger,
	}
}

// Run mints for every key in order. A failing wallet is reported and skipped; only cancellation of ctx
// stops the run early, in which case the wallets processed so far are returned with ctx.Err().
func (r *Runner) Run(ctx context.Context, keys []string) (*Summary, error) {
	var results []Result
	if r.config.Workers > 1 {
		results = r.runConcurrently(ctx, keys)
	} else {
		results = r.runSequentially(ctx, keys)
	}

	summary := newSummary(results)
	NewPrinter(r.out).Summary(summary)

	r.logger.Info().
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Msg("Run finished")

	return summary, ctx.Err()
}

func (r *Runner) runSequentially(ctx context.Context, keys []string) []Result {
	p := NewPrinter(r.out)
	results := make([]Result, 0, len(keys))
	for i, key := range keys {
		if ctx.Err() != nil {
			break
		}
		results = append(results, r.processWallet(ctx, i+1, key, p))
	}
	return results
}

func (r *Runner) runConcurrently(ctx context.Context, keys []string) []Result {
	results := make([]Result, len(keys))
	buffers := make([]bytes.Buffer, len(keys))
	done := make([]bool, len(keys))

	var mu sync.Mutex
	next := 0
	flush := func(i int) {
		mu.Lock()
		defer mu.Unlock()

		done[i] = true
		for next < len(keys) && done[next] {
			_, _ = r.out.Write(buffers[next].Bytes())
			next++
		}
	}

	var g errgroup.Group
	g.SetLimit(r.config.Workers)
	for i, key := range keys {
		g.Go(func() error {
			if ctx.Err() == nil {
				results[i] = r.processWallet(ctx, i+1, key, NewPrinter(&buffers[i]))
			}
			flush(i)
			return nil
		})
	}
	_ = g.Wait()

	processed := results[:0]
	for _, res := range results {
		if res.Index != 0 {
			processed = append(processed, res)
		}
	}
	return processed
}

func (r *Runner) processWallet(ctx context.Context, idx int, key string, p *Printer) (res Result) {
	res.Index = idx
	logger := r.logger.With().Int(logging.FieldWalletIndex, idx).Logger()

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	fail := func(stage Stage, err error) Result {
		res.Stage = stage
		res.Err = err
		p.Failed(idx, err)
		logger.Warn().Err(err).Stringer("stage", stage).Msg("Wallet failed")
		return res
	}

	p.Header(idx)

	w, err := wallet.FromHex(key)
	if err != nil {
		return fail(StageInspect, err)
	}

	info, err := r.inspector.Inspect(ctx, w)
	if err != nil {
		return fail(StageInspect, err)
	}
	res.Info = info
	p.Account(info)

	hash, err := r.minter.Mint(ctx, w, info.Address, r.config.MintAmount, info.ChainID)
	if err != nil {
		return fail(StageMint, err)
	}
	res.TxHash = hash
	p.Minted(hash)

	number, err := r.blocks.BlockNumber(ctx)
	if err != nil {
		return fail(StageBlock, err)
	}
	res.BlockNumber = number
	p.BlockNumber(number)

	logger.Debug().
		Stringer(logging.FieldTxHash, hash).
		Uint64(logging.FieldBlockNumber, number).
		Msg("Wallet done")
	return res
}
