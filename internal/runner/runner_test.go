package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"ethMintBot/internal/account"
	"ethMintBot/internal/chain"
	"ethMintBot/internal/config"
	"ethMintBot/internal/minter"
	"ethMintBot/internal/wallet"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	goleak.VerifyTestMain(m)
}

type blockNumberFunc func(ctx context.Context) (uint64, error)

func (f blockNumberFunc) BlockNumber(ctx context.Context) (uint64, error) {
	return f(ctx)
}

func testKey(i int) string {
	return fmt.Sprintf("%064x", i)
}

func testAddress(i int) common.Address {
	key, err := crypto.HexToECDSA(testKey(i))
	if err != nil {
		panic(err)
	}
	return crypto.PubkeyToAddress(key.PublicKey)
}

type RunnerTestSuite struct {
	suite.Suite

	cfg     *config.Config
	client  *chain.ClientMock
	blocks  blockNumberFunc
	out     *bytes.Buffer
	chainId *big.Int

	mu        sync.Mutex
	nonceErrs map[common.Address]error
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

func (s *RunnerTestSuite) SetupTest() {
	s.cfg = config.Default()
	s.out = new(bytes.Buffer)
	s.chainId = big.NewInt(84532)
	s.nonceErrs = make(map[common.Address]error)

	s.client = &chain.ClientMock{
		BalanceAtFunc: func(context.Context, common.Address, *big.Int) (*big.Int, error) {
			return new(big.Int).Mul(big.NewInt(3), big.NewInt(1e17)), nil
		},
		ChainIDFunc: func(context.Context) (*big.Int, error) {
			return s.chainId, nil
		},
		NonceAtFunc: func(_ context.Context, account common.Address, _ *big.Int) (uint64, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return 0, s.nonceErrs[account]
		},
		SendTransactionFunc: func(context.Context, *types.Transaction) error {
			return nil
		},
	}
	s.blocks = func(context.Context) (uint64, error) {
		return 436, nil
	}
}

func (s *RunnerTestSuite) newRunner(workers int, timeout time.Duration) *Runner {
	amount, err := s.cfg.MintAmountWei()
	s.Require().NoError(err)

	m := minter.NewMinter(s.client, nil, minter.Config{
		Contract: s.cfg.Contract,
		Selector: s.cfg.Selector(),
		GasLimit: s.cfg.GasLimit,
		GasPrice: s.cfg.GasPriceWei(),
	}, zerolog.Nop())

	return NewRunner(
		account.NewInspector(s.client, zerolog.Nop()),
		m,
		s.blocks,
		Config{MintAmount: amount, Workers: workers, Timeout: timeout},
		s.out,
		zerolog.Nop(),
	)
}

func (s *RunnerTestSuite) TestFailingWalletDoesNotStopTheRun() {
	s.nonceErrs[testAddress(1)] = errors.New("nonce too low")

	summary, err := s.newRunner(1, 0).Run(s.T().Context(), []string{testKey(1), testKey(2)})
	s.Require().NoError(err)

	s.Require().Len(summary.Results, 2)
	s.Equal(1, summary.Succeeded)
	s.Equal(1, summary.Failed)

	first, second := summary.Results[0], summary.Results[1]
	s.Equal(1, first.Index)
	s.Equal(StageMint, first.Stage)
	s.Require().Error(first.Err)
	s.Contains(first.Err.Error(), "nonce too low")

	s.Equal(2, second.Index)
	s.True(second.Ok())
	s.Equal(StageNone, second.Stage)
	s.Equal(testAddress(2), second.Info.Address)
	s.Equal(uint64(436), second.BlockNumber)

	sent := s.client.SendTransactionCalls()
	s.Require().Len(sent, 1)
	s.Equal(sent[0].Tx.Hash(), second.TxHash)

	output := s.out.String()
	s.Contains(output, "======= 🧾 Wallet #1 =======")
	s.Contains(output, "❌ [Wallet #1] Error: ")
	s.Contains(output, "nonce too low")
	s.Contains(output, "======= 🧾 Wallet #2 =======")
	s.Contains(output, "📍 Address: "+testAddress(2).Hex())
	s.Contains(output, "💰 Balance: 0.3 ETH")
	s.Contains(output, "🚀 [MINT] Tx Hash: "+second.TxHash.Hex())
	s.Contains(output, "📊 Block Number: 436")
	s.NotContains(output, "[Wallet #2] Error")

	s.Less(strings.Index(output, "Wallet #1"), strings.Index(output, "Wallet #2"))
	s.Contains(output, "Succeeded: 1")
	s.Contains(output, "Failed: 1")
}

func (s *RunnerTestSuite) TestMintAmountReachesEncoder() {
	_, err := s.newRunner(1, 0).Run(s.T().Context(), []string{testKey(1)})
	s.Require().NoError(err)

	sent := s.client.SendTransactionCalls()
	s.Require().Len(sent, 1)
	data := sent[0].Tx.Data()
	s.Require().Len(data, 68)

	expected, ok := new(big.Int).SetString("100000000000000000000000000", 10)
	s.Require().True(ok)
	s.Equal(0, expected.Cmp(new(big.Int).SetBytes(data[36:])))
	s.Equal(testAddress(1), common.BytesToAddress(data[4:36]))
	s.Equal([]byte{0x40, 0xc1, 0x0f, 0x19}, data[:4])
}

func (s *RunnerTestSuite) TestInvalidKeyFailsOnlyItsWallet() {
	summary, err := s.newRunner(1, 0).Run(s.T().Context(), []string{"not-a-key", testKey(3)})
	s.Require().NoError(err)

	s.Equal(StageInspect, summary.Results[0].Stage)
	s.Require().ErrorIs(summary.Results[0].Err, wallet.ErrInvalidKey)
	s.True(summary.Results[1].Ok())
	s.NotContains(s.out.String(), "not-a-key")
}

func (s *RunnerTestSuite) TestBlockFailureKeepsPartialOutput() {
	s.blocks = func(context.Context) (uint64, error) {
		return 0, chain.ErrUnexpectedStatusCode
	}

	summary, err := s.newRunner(1, 0).Run(s.T().Context(), []string{testKey(1)})
	s.Require().NoError(err)

	res := summary.Results[0]
	s.Equal(StageBlock, res.Stage)
	s.NotEqual(common.Hash{}, res.TxHash)

	output := s.out.String()
	s.Contains(output, "🚀 [MINT] Tx Hash: "+res.TxHash.Hex())
	s.Contains(output, "❌ [Wallet #1] Error: ")
	s.NotContains(output, "📊 Block Number")
}

func (s *RunnerTestSuite) TestConcurrentOutputIsOrdered() {
	const wallets = 8

	keys := make([]string, 0, wallets)
	for i := 1; i <= wallets; i++ {
		keys = append(keys, testKey(i))
	}
	s.nonceErrs[testAddress(5)] = errors.New("rejected")

	summary, err := s.newRunner(4, 0).Run(s.T().Context(), keys)
	s.Require().NoError(err)
	s.Require().Len(summary.Results, wallets)
	s.Equal(wallets-1, summary.Succeeded)
	s.Equal(1, summary.Failed)

	output := s.out.String()
	last := -1
	for i := 1; i <= wallets; i++ {
		s.Equal(i, summary.Results[i-1].Index)

		header := strings.Index(output, fmt.Sprintf("Wallet #%d =======", i))
		s.Require().Greater(header, last, "wallet %d out of order", i)
		last = header

		body := strings.Index(output, testAddress(i).Hex())
		s.Greater(body, header)
		if i < wallets {
			s.Less(body, strings.Index(output, fmt.Sprintf("Wallet #%d =======", i+1)))
		}
	}
}

func (s *RunnerTestSuite) TestTimeout() {
	inspector := inspectorFunc(func(ctx context.Context, _ *wallet.Wallet) (*account.Info, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	r := NewRunner(inspector, nil, s.blocks, Config{Workers: 1, Timeout: 20 * time.Millisecond}, s.out, zerolog.Nop())

	summary, err := r.Run(s.T().Context(), []string{testKey(1)})
	s.Require().NoError(err)
	s.Equal(StageInspect, summary.Results[0].Stage)
	s.Require().ErrorIs(summary.Results[0].Err, context.DeadlineExceeded)
}

func (s *RunnerTestSuite) TestCancelStopsTheRun() {
	ctx, cancel := context.WithCancel(s.T().Context())
	s.blocks = func(context.Context) (uint64, error) {
		cancel()
		return 1, nil
	}

	summary, err := s.newRunner(1, 0).Run(ctx, []string{testKey(1), testKey(2), testKey(3)})
	s.Require().ErrorIs(err, context.Canceled)
	s.Require().Len(summary.Results, 1)
	s.True(summary.Results[0].Ok())
	s.NotContains(s.out.String(), "Wallet #2")
}

type inspectorFunc func(ctx context.Context, w *wallet.Wallet) (*account.Info, error)

func (f inspectorFunc) Inspect(ctx context.Context, w *wallet.Wallet) (*account.Info, error) {
	return f(ctx, w)
}

func TestStageString(t *testing.T) {
	for stage, name := range map[Stage]string{
		StageNone:    "none",
		StageInspect: "inspect",
		StageMint:    "mint",
		StageBlock:   "block",
		Stage(42):    "unknown",
	} {
		if stage.String() != name {
			t.Errorf("%d: got %q, want %q", int(stage), stage.String(), name)
		}
	}
}
