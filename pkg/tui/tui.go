// Package tui renders wallet-relayer CLI output.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Layr-Labs/wallet-relayer-go/pkg/config"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/modules"
	"github.com/Layr-Labs/wallet-relayer-go/pkg/persistence"
	"github.com/charmbracelet/lipgloss"
	"github.com/ethereum/go-ethereum/common"
)

// Printer writes styled output to out and reads confirmations from in
type Printer struct {
	out     io.Writer
	in      *bufio.Reader
	chainID config.ChainId
}

func NewPrinter(out io.Writer, in io.Reader, chainID config.ChainId) *Printer {
	return &Printer{out: out, in: bufio.NewReader(in), chainID: chainID}
}

func (p *Printer) Title(title string) {
	fmt.Fprintln(p.out, TitleStyle.Render(title))
}

func (p *Printer) KeyValue(key, value string) {
	fmt.Fprintln(p.out, lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(key), ValueStyle.Render(value)))
}

// List prints one item per line, or a muted placeholder when items is empty
func (p *Printer) List(title string, items []string) {
	p.Title(title)
	if len(items) == 0 {
		fmt.Fprintln(p.out, MutedStyle.Render("  (none)"))
		return
	}
	for i, item := range items {
		fmt.Fprintf(p.out, "  %s %s\n", MutedStyle.Render(fmt.Sprintf("%d.", i+1)), item)
	}
}

func (p *Printer) Modules(addrs []common.Address) {
	items := make([]string, 0, len(addrs))
	for _, a := range addrs {
		items = append(items, fmt.Sprintf("%s %s", a.Hex(), MutedStyle.Render(modules.Name(a))))
	}
	p.List("Modules", items)
}

func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, SuccessStyle.Render("✔ "+msg))
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.out, WarningStyle.Render("! "+msg))
}

func (p *Printer) Error(err error) {
	fmt.Fprintln(p.out, ErrorStyle.Render("✘ "+err.Error()))
}

// TxLink prints the transaction hash and, when the chain has a public explorer, a link to it
func (p *Printer) TxLink(txHash common.Hash) {
	p.KeyValue("tx", txHash.Hex())
	if url := config.GetExplorerTxURL(p.chainID, txHash); url != "" {
		p.KeyValue("explorer", LinkStyle.Render(url))
	}
}

// Relay prints a journaled relay in a box
func (p *Printer) Relay(rec *persistence.RelayRecord) {
	var b strings.Builder
	line := func(key, value string) {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(key), value))
		b.WriteString("\n")
	}
	line("id", rec.ID.String())
	line("operation", string(rec.Operation))
	line("module", fmt.Sprintf("%s %s", rec.Module.Hex(), MutedStyle.Render(modules.Name(rec.Module))))
	line("wallet", rec.Wallet.Hex())
	for k, v := range rec.Args {
		line(k, v)
	}
	if rec.Nonce != "" {
		line("nonce", rec.Nonce)
	}
	if rec.Digest != (common.Hash{}) {
		line("digest", rec.Digest.Hex())
	}
	if rec.TxHash != (common.Hash{}) {
		line("tx", rec.TxHash.Hex())
		if url := config.GetExplorerTxURL(p.chainID, rec.TxHash); url != "" {
			line("explorer", LinkStyle.Render(url))
		}
	}
	line("state", stateStyle(string(rec.State)).Render(string(rec.State)))
	if rec.Error != "" {
		line("error", ErrorStyle.Render(rec.Error))
	}
	fmt.Fprintln(p.out, BoxStyle.Render(strings.TrimSuffix(b.String(), "\n")))
}

// RelayTable prints one line per relay
func (p *Printer) RelayTable(records []*persistence.RelayRecord) {
	p.Title(fmt.Sprintf("Relays (%d)", len(records)))
	if len(records) == 0 {
		fmt.Fprintln(p.out, MutedStyle.Render("  (none)"))
		return
	}
	for _, rec := range records {
		fmt.Fprintf(p.out, "  %s  %-20s %s  %s\n",
			MutedStyle.Render(rec.CreatedAt.Format("2006-01-02 15:04:05")),
			rec.Operation,
			rec.Wallet.Hex(),
			stateStyle(string(rec.State)).Render(string(rec.State)),
		)
	}
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (p *Printer) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s %s ", WarningStyle.Render(question), MutedStyle.Render("[y/N]"))
	answer, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
