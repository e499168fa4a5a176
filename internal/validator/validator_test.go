package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/stratify/internal/validator"
	"github.com/aretw0/stratify/pkg/domain"
)

func equal(feature, value string) domain.Condition {
	return domain.Condition{Feature: feature, Value: value, IsEqual: true}
}

func notEqual(feature, value string) domain.Condition {
	return domain.Condition{Feature: feature, Value: value, IsEqual: false}
}

func TestContradiction(t *testing.T) {
	t.Run("Equality On Different Values", func(t *testing.T) {
		conflict, contradictory := validator.Contradiction([]domain.Condition{
			equal("device_type", "pc"),
			equal("device_type", "mobile"),
		})
		assert.True(t, contradictory)
		assert.Equal(t, equal("device_type", "pc"), conflict.First)
		assert.Equal(t, equal("device_type", "mobile"), conflict.Second)
	})

	t.Run("Equality And Inequality On Same Value", func(t *testing.T) {
		_, contradictory := validator.Contradiction([]domain.Condition{
			equal("device_type", "pc"),
			notEqual("device_type", "pc"),
		})
		assert.True(t, contradictory)
	})

	t.Run("Distinct Inequalities Are Satisfiable", func(t *testing.T) {
		_, contradictory := validator.Contradiction([]domain.Condition{
			notEqual("device_type", "pc"),
			notEqual("device_type", "gameboy"),
		})
		assert.False(t, contradictory)
	})

	t.Run("Equality And Inequality On Different Values", func(t *testing.T) {
		// device_type=pc implies device_type!=mobile, so the pair is consistent.
		_, contradictory := validator.Contradiction([]domain.Condition{
			equal("device_type", "pc"),
			notEqual("device_type", "mobile"),
		})
		assert.False(t, contradictory)
	})

	t.Run("Different Features Never Conflict", func(t *testing.T) {
		_, contradictory := validator.Contradiction([]domain.Condition{
			equal("device_type", "pc"),
			equal("country", "argentina"),
			notEqual("os", "linux"),
		})
		assert.False(t, contradictory)
	})

	t.Run("Conflict Buried In A Larger Group", func(t *testing.T) {
		conflict, contradictory := validator.Contradiction([]domain.Condition{
			notEqual("country", "brazil"),
			equal("device_type", "pc"),
			equal("country", "argentina"),
			equal("country", "chile"),
		})
		assert.True(t, contradictory)
		assert.Equal(t, equal("country", "argentina"), conflict.First)
		assert.Equal(t, equal("country", "chile"), conflict.Second)
	})

	t.Run("Empty And Single", func(t *testing.T) {
		_, contradictory := validator.Contradiction(nil)
		assert.False(t, contradictory)

		_, contradictory = validator.Contradiction([]domain.Condition{equal("a", "x")})
		assert.False(t, contradictory)
	})
}
