package runner

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"

	"ethMintBot/internal/account"
)

var (
	cyan    = color.New(color.FgCyan).SprintFunc()
	yellow  = color.New(color.FgYellow).SprintFunc()
	green   = color.New(color.FgGreen).SprintFunc()
	red     = color.New(color.FgRed).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
)

// Printer writes the human readable progress of a run.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Header(idx int) {
	fmt.Fprintf(p.w, "\n%s\n", cyan(fmt.Sprintf("======= 🧾 Wallet #%d =======", idx)))
}

func (p *Printer) Account(info *account.Info) {
	fmt.Fprintf(p.w, "📍 Address: %s\n", info.Address.Hex())
	fmt.Fprintf(p.w, "💰 Balance: %s ETH\n", magenta(info.Balance.String()))
}

func (p *Printer) Minted(hash common.Hash) {
	fmt.Fprintf(p.w, "🚀 [MINT] Tx Hash: %s\n", yellow(hash.Hex()))
}

func (p *Printer) BlockNumber(number uint64) {
	fmt.Fprintf(p.w, "📊 Block Number: %d\n", number)
}

func (p *Printer) Failed(idx int, err error) {
	fmt.Fprintf(p.w, "%s\n", red(fmt.Sprintf("❌ [Wallet #%d] Error: %v", idx, err)))
}

func (p *Printer) Summary(s *Summary) {
	fmt.Fprintf(p.w, "\n%s\n", cyan("Mint Summary"))
	fmt.Fprintf(p.w, "%s: %d\n", green("Succeeded"), s.Succeeded)
	fmt.Fprintf(p.w, "%s: %d\n", red("Failed"), s.Failed)
}

func (p *Printer) Addresses(idx int, address common.Address) {
	fmt.Fprintf(p.w, "%s %s\n", cyan(fmt.Sprintf("Wallet #%d:", idx)), address.Hex())
}
