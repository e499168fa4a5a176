package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/stratify/pkg/domain"
)

// NewRenderer returns a function that renders markdown for terminal output using
// glamour. When stdout is not a terminal (pipes, CI) or the terminal reports no color
// support, it returns the markdown unchanged so output stays grep-able.
func NewRenderer() func(string) (string, error) {
	plain := func(markdown string) (string, error) { return markdown, nil }

	if !term.IsTerminal(int(os.Stdout.Fd())) || termenv.EnvColorProfile() == termenv.Ascii {
		return plain
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return plain
	}
	return r.Render
}

// StrategyTable renders strategies as a Markdown table, one row per strategy in the
// order given (callers pass them already sorted).
func StrategyTable(strategies []domain.Strategy) string {
	var sb strings.Builder
	sb.WriteString("| Conditions | Value |\n")
	sb.WriteString("|---|---|\n")
	for _, strategy := range strategies {
		labels := make([]string, len(strategy.Conditions))
		for i, condition := range strategy.Conditions {
			labels[i] = condition.String()
		}
		sb.WriteString("| ")
		sb.WriteString(strings.Join(labels, " & "))
		sb.WriteString(" | ")
		sb.WriteString(strategy.Value.String())
		sb.WriteString(" |\n")
	}
	return sb.String()
}
