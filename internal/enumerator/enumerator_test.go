package enumerator_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stratify/internal/compiler"
	"github.com/aretw0/stratify/internal/enumerator"
	"github.com/aretw0/stratify/pkg/domain"
)

func convert(t *testing.T, text string, keepAlwaysFalse bool) []string {
	t.Helper()

	tree, err := compiler.NewParser(nil).Parse(text)
	require.NoError(t, err)
	branches, err := compiler.NewNormalizer().Normalize(tree)
	require.NoError(t, err)

	strategies := enumerator.New(nil, keepAlwaysFalse).Enumerate(branches)
	lines := make([]string, len(strategies))
	for i, strategy := range strategies {
		lines[i] = strategy.String()
	}
	sort.Strings(lines)
	return lines
}

func TestEnumerator_SingleConditionNode(t *testing.T) {
	lines := convert(t, "0:[device_type=pc] yes=1,no=2\n1:leaf=0.1\n2:leaf=0.2", false)

	assert.Equal(t, []string{
		"device_type!=pc : 0.2",
		"device_type=pc : 0.1",
	}, lines)
}

func TestEnumerator_NestedSingleCondition(t *testing.T) {
	lines := convert(t,
		"0:[device_type=pc] yes=1,no=2\n1:[country=argentina] yes=3,no=4\n2:leaf=0.2\n3:leaf=0.3\n4:leaf=0.4",
		false)

	assert.Equal(t, []string{
		"device_type!=pc : 0.2",
		"device_type=pc & country!=argentina : 0.4",
		"device_type=pc & country=argentina : 0.3",
	}, lines)
}

func TestEnumerator_OrExpansion(t *testing.T) {
	lines := convert(t, "0:[device_type=pc||or||support=mobile] yes=1,no=2\n1:leaf=0.1\n2:leaf=0.2", false)

	// Three strategies, not four: each operand reaches the yes-leaf on its own and the
	// overlapping (both true) path never materializes.
	assert.Equal(t, []string{
		"device_type!=pc & support!=mobile : 0.2",
		"device_type=pc : 0.1",
		"support=mobile : 0.1",
	}, lines)
}

func TestEnumerator_ContradictionFiltering(t *testing.T) {
	text := "0:[device_type=pc] yes=1,no=2\n" +
		"1:[device_type=mobile] yes=3,no=4\n" +
		"2:leaf=0.2\n3:leaf=0.3\n4:leaf=0.4"

	t.Run("Enabled Drops Always False", func(t *testing.T) {
		lines := convert(t, text, false)
		assert.Equal(t, []string{
			"device_type!=pc : 0.2",
			"device_type=pc & device_type!=mobile : 0.4",
		}, lines)
	})

	t.Run("Disabled Keeps Always False", func(t *testing.T) {
		lines := convert(t, text, true)
		assert.Equal(t, []string{
			"device_type!=pc : 0.2",
			"device_type=pc & device_type!=mobile : 0.4",
			"device_type=pc & device_type=mobile : 0.3",
		}, lines)
	})
}

func TestEnumerator_DistinctInequalitiesKept(t *testing.T) {
	lines := convert(t,
		"0:[device_type!=pc] yes=1,no=2\n1:[device_type!=gameboy] yes=3,no=4\n2:leaf=0.2\n3:leaf=0.3\n4:leaf=0.4",
		false)

	assert.Contains(t, lines, "device_type!=pc & device_type!=gameboy : 0.3")
}

func TestEnumerator_DeduplicatesStructurallyIdenticalStrategies(t *testing.T) {
	condition := domain.Condition{Feature: "device_type", Value: "pc", IsEqual: true}
	leaf := domain.Leaf{Value: 0.1}
	tree := compiler.SplitSet{
		{Condition: condition, True: compiler.Terminal{Leaf: leaf}, False: compiler.Sentinel{}},
		{Condition: condition, True: compiler.Terminal{Leaf: leaf}, False: compiler.Sentinel{}},
	}

	strategies := enumerator.New(nil, false).Enumerate(tree)
	require.Len(t, strategies, 1)
	assert.Equal(t, "device_type=pc : 0.1", strategies[0].String())
}

func TestEnumerator_SentinelEmitsNothing(t *testing.T) {
	strategies := enumerator.New(nil, false).Enumerate(compiler.Sentinel{})
	assert.Empty(t, strategies)
}
