package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/stratify/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from a parsed tree.
// It applies semantic styling:
// - Decision node: [Rectangle] labelled with the condition expression
// - Leaf: ((Circle)) labelled with the value
// Edges carry yes/no labels. Entries are emitted in sorted identifier order so the
// diagram is stable across runs.
func GenerateMermaid(tree domain.Tree) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	ids := make([]string, 0, len(tree.Entries))
	for id := range tree.Entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		safeID := sanitizeMermaidID(id)

		switch entry := tree.Entries[id].(type) {
		case domain.Leaf:
			sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", safeID, entry.String()))

		case domain.Node:
			labels := make([]string, len(entry.EligibleConditions))
			for i, condition := range entry.EligibleConditions {
				labels[i] = condition.String()
			}
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", safeID, strings.Join(labels, " OR ")))
			sb.WriteString(fmt.Sprintf("    %s -- \"yes\" --> %s\n", safeID, sanitizeMermaidID(entry.Yes)))
			sb.WriteString(fmt.Sprintf("    %s -- \"no\" --> %s\n", safeID, sanitizeMermaidID(entry.No)))
		}
	}

	return sb.String()
}

// sanitizeMermaidID makes an identifier safe for Mermaid syntax. Tree dumps commonly
// use bare numbers, which Mermaid treats ambiguously, so every id gets an "n" prefix
// and non-alphanumeric runes collapse to underscores.
func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	sb.WriteByte('n')
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
