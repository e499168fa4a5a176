package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stratify/internal/compiler"
	"github.com/aretw0/stratify/internal/presentation/graph"
)

func TestGenerateMermaid(t *testing.T) {
	tree, err := compiler.NewParser(nil).Parse(
		"0:[device_type=pc] yes=1,no=2\n1:leaf=0.1\n2:leaf=0.2")
	require.NoError(t, err)

	output := graph.GenerateMermaid(tree)

	assert.True(t, strings.HasPrefix(output, "graph TD\n"))
	assert.Contains(t, output, `n0["device_type=pc"]`)
	assert.Contains(t, output, `n0 -- "yes" --> n1`)
	assert.Contains(t, output, `n0 -- "no" --> n2`)
	assert.Contains(t, output, `n1(("0.1"))`)
	assert.Contains(t, output, `n2(("0.2"))`)
}

func TestGenerateMermaid_OrNodeLabel(t *testing.T) {
	tree, err := compiler.NewParser(nil).Parse(
		"0:[device_type=pc||or||support=mobile] yes=1,no=2\n1:leaf=0.1\n2:leaf=0.2")
	require.NoError(t, err)

	output := graph.GenerateMermaid(tree)

	assert.Contains(t, output, `n0["device_type=pc OR support=mobile"]`)
}

func TestGenerateMermaid_Deterministic(t *testing.T) {
	tree, err := compiler.NewParser(nil).Parse(
		"0:[device_type=pc] yes=1,no=2\n1:leaf=0.1\n2:leaf=0.2")
	require.NoError(t, err)

	assert.Equal(t, graph.GenerateMermaid(tree), graph.GenerateMermaid(tree))
}
