package stratify

import (
	"log/slog"
	"sort"

	"github.com/aretw0/stratify/internal/adapters/file"
	"github.com/aretw0/stratify/internal/compiler"
	"github.com/aretw0/stratify/internal/enumerator"
	"github.com/aretw0/stratify/internal/logging"
	"github.com/aretw0/stratify/pkg/domain"
)

// Version is the release version. Overridable at build time via -ldflags.
var Version = "0.2.0"

// Converter is the high-level entry point for the stratify library.
// It wires the line parser, the boolean-tree normalizer and the path enumerator
// behind a single call.
type Converter struct {
	logger          *slog.Logger
	keepAlwaysFalse bool
}

// Option defines a functional option for configuring the Converter.
type Option func(*Converter)

// WithLogger sets a custom structured logger for the converter. Diagnostics (skipped
// blank lines, discarded always-false strategies) are reported at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithAlwaysFalseStrategies disables the contradiction filter, so strategies whose
// condition conjunction can never hold are emitted instead of discarded.
func WithAlwaysFalseStrategies() Option {
	return func(c *Converter) {
		c.keepAlwaysFalse = true
	}
}

// New initializes a new Converter. By default always-false strategies are discarded
// and diagnostics go to a no-op logger.
func New(opts ...Option) *Converter {
	c := &Converter{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert parses the raw tree text and returns every surviving strategy in traversal
// order. Use Render for the sorted, serialized form.
func (c *Converter) Convert(tree string) ([]domain.Strategy, error) {
	parsed, err := compiler.NewParser(c.logger).Parse(tree)
	if err != nil {
		return nil, err
	}

	branches, err := compiler.NewNormalizer().Normalize(parsed)
	if err != nil {
		return nil, err
	}

	return enumerator.New(c.logger, c.keepAlwaysFalse).Enumerate(branches), nil
}

// Render converts the tree text and returns one line per strategy,
// lexicographically sorted so identical inputs always produce identical output
// regardless of internal iteration order.
func (c *Converter) Render(tree string) ([]string, error) {
	strategies, err := c.Convert(tree)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(strategies))
	for i, strategy := range strategies {
		lines[i] = strategy.String()
	}
	sort.Strings(lines)
	return lines, nil
}

// ConvertFile reads the tree at inPath and writes the sorted strategy lines to
// outPath. The write is atomic: on conversion failure the output file is neither
// created nor overwritten.
func (c *Converter) ConvertFile(inPath, outPath string) error {
	store := file.New()

	text, err := store.ReadTree(inPath)
	if err != nil {
		return err
	}

	lines, err := c.Render(text)
	if err != nil {
		return err
	}

	return store.WriteStrategies(outPath, lines)
}
