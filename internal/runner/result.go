package runner

import (
	"github.com/ethereum/go-ethereum/common"

	"ethMintBot/internal/account"
)

// Stage is the step of a wallet's run that failed.
type Stage int

const (
	StageNone Stage = iota
	StageInspect
	StageMint
	StageBlock
)

func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageInspect:
		return "inspect"
	case StageMint:
		return "mint"
	case StageBlock:
		return "block"
	}
	return "unknown"
}

type Result struct {
	// Index is 1-based, in key file order.
	Index int

	Info        *account.Info
	TxHash      common.Hash
	BlockNumber uint64

	Stage Stage
	Err   error
}

func (r *Result) Ok() bool {
	return r.Err == nil
}

type Summary struct {
	Results   []Result
	Succeeded int
	Failed    int
}

func newSummary(results []Result) *Summary {
	s := &Summary{Results: results}
	for i := range results {
		if results[i].Ok() {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}
