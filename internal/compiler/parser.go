package compiler

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/stratify/internal/logging"
	"github.com/aretw0/stratify/pkg/domain"
)

// OrCombinator joins the two operands of an OR condition expression in the tree dump
// format. Exactly one occurrence per expression is supported.
const OrCombinator = "||or||"

// Parser converts the raw line-oriented tree text into a domain.Tree.
//
// One entity per non-blank line; leading/trailing whitespace per line is ignored.
// Blank lines are skipped and reported as debug diagnostics with their 0-based index.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a new parser instance.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Parser{logger: logger}
}

// Parse decodes the full tree text. The first declared entry becomes the tree root.
func (p *Parser) Parse(text string) (domain.Tree, error) {
	tree := domain.Tree{Entries: make(map[string]domain.Entry)}

	for index, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			p.logger.Debug("skipping empty line", "line", index)
			continue
		}

		id, rest, found := strings.Cut(line, ":")
		if !found || id == "" {
			return domain.Tree{}, fmt.Errorf("%w: %q", domain.ErrUnparsableLine, line)
		}
		if _, exists := tree.Entries[id]; exists {
			return domain.Tree{}, fmt.Errorf("%w: %q", domain.ErrDuplicateIdentifier, id)
		}

		entry, err := parseEntry(line, rest)
		if err != nil {
			return domain.Tree{}, err
		}

		if len(tree.Entries) == 0 {
			tree.RootID = id
		}
		tree.Entries[id] = entry
	}

	return tree, nil
}

// parseEntry dispatches on the line content: "leaf=<float>" declares a Leaf,
// "[<condition-expr>] yes=<id>,no=<id>" declares a Node.
func parseEntry(line, rest string) (domain.Entry, error) {
	if strings.HasPrefix(rest, "leaf=") {
		return parseLeaf(line, rest)
	}
	return parseNode(line, rest)
}

func parseLeaf(line, rest string) (domain.Leaf, error) {
	raw := strings.TrimPrefix(rest, "leaf=")
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return domain.Leaf{}, fmt.Errorf("%w: %q", domain.ErrUnparsableLine, line)
	}
	return domain.NewLeaf(value)
}

func parseNode(line, rest string) (domain.Node, error) {
	if !strings.HasPrefix(rest, "[") {
		return domain.Node{}, fmt.Errorf("%w: %q", domain.ErrUnparsableLine, line)
	}

	expr, branches, found := strings.Cut(rest[1:], "] ")
	if !found {
		return domain.Node{}, fmt.Errorf("%w: %q", domain.ErrUnparsableLine, line)
	}

	yesPart, noPart, found := strings.Cut(branches, ",")
	if !found {
		return domain.Node{}, fmt.Errorf("%w: %q", domain.ErrUnparsableLine, line)
	}
	yes, okYes := strings.CutPrefix(strings.TrimSpace(yesPart), "yes=")
	no, okNo := strings.CutPrefix(strings.TrimSpace(noPart), "no=")
	if !okYes || !okNo || yes == "" || no == "" {
		return domain.Node{}, fmt.Errorf("%w: %q", domain.ErrUnparsableLine, line)
	}

	operands := strings.Split(expr, OrCombinator)
	if len(operands) > 2 {
		return domain.Node{}, fmt.Errorf("%w: %d operands in %q, at most two are supported",
			domain.ErrUnsupportedCombinator, len(operands), expr)
	}

	conditions := make([]domain.Condition, 0, len(operands))
	for _, operand := range operands {
		condition, err := domain.ParseCondition(strings.TrimSpace(operand))
		if err != nil {
			return domain.Node{}, err
		}
		conditions = append(conditions, condition)
	}

	return domain.Node{EligibleConditions: conditions, Yes: yes, No: no}, nil
}
