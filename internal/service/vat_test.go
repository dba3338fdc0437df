package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVat(t *testing.T) {
	t.Run("standard rate", func(t *testing.T) {
		exVat, vat := ExtractVat(107, 7)
		assert.Equal(t, 100.0, exVat)
		assert.Equal(t, 7.0, vat)
	})

	t.Run("rounds to 2 decimals", func(t *testing.T) {
		exVat, vat := ExtractVat(100, 7)
		assert.Equal(t, 93.46, exVat)
		assert.Equal(t, 6.54, vat)
	})

	t.Run("zero rate passes through", func(t *testing.T) {
		exVat, vat := ExtractVat(250, 0)
		assert.Equal(t, 250.0, exVat)
		assert.Equal(t, 0.0, vat)
	})

	t.Run("parts sum to gross", func(t *testing.T) {
		exVat, vat := ExtractVat(123.45, 7)
		assert.InDelta(t, 123.45, exVat+vat, 0.001)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, -1.24, Round2(-1.235))
}
