package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderbridge/internal/models"
)

func TestDetectPlatform(t *testing.T) {
	t.Run("full shopify header row", func(t *testing.T) {
		result := DetectPlatform(shopifySchema.ExpectedHeaders())
		require.True(t, result.IsValid)
		assert.Equal(t, models.PlatformShopify, result.DetectedPlatform)
		assert.Equal(t, 100.0, result.MatchPercentage)
		assert.Empty(t, result.MissingHeaders)
		assert.Empty(t, result.ExtraHeaders)
	})

	t.Run("tiktok detected with extra columns", func(t *testing.T) {
		headers := append([]string{}, tiktokSchema.ExpectedHeaders()...)
		headers = append(headers, "Some Custom Column")
		result := DetectPlatform(headers)
		require.True(t, result.IsValid)
		assert.Equal(t, models.PlatformTiktok, result.DetectedPlatform)
		assert.Equal(t, []string{"Some Custom Column"}, result.ExtraHeaders)
	})

	t.Run("missing headers reported", func(t *testing.T) {
		headers := productMasterSchema.ExpectedHeaders()
		result := DetectPlatform(headers[:len(headers)-1])
		// 8 of 9 headers is 88.9%, under the threshold.
		assert.False(t, result.IsValid)
	})

	t.Run("duplicate header does not lift the match", func(t *testing.T) {
		full := productMasterSchema.ExpectedHeaders()
		headers := append([]string{}, full[:len(full)-1]...)
		headers = append(headers, full[0])
		result := DetectPlatform(headers)
		// Still 8 of 9 distinct headers, under the threshold.
		assert.False(t, result.IsValid)
	})

	t.Run("just above threshold", func(t *testing.T) {
		headers := shopifySchema.ExpectedHeaders()
		// Dropping 7 of 79 headers leaves 91.1%.
		result := DetectPlatform(headers[:len(headers)-7])
		require.True(t, result.IsValid)
		assert.Equal(t, models.PlatformShopify, result.DetectedPlatform)
		assert.Len(t, result.MissingHeaders, 7)
	})

	t.Run("unrecognized file", func(t *testing.T) {
		result := DetectPlatform([]string{"foo", "bar", "baz"})
		assert.False(t, result.IsValid)
		assert.Empty(t, result.DetectedPlatform)
		assert.Zero(t, result.MatchPercentage)
	})

	// Declaration order decides ties: the first schema over the
	// threshold wins even if a later one would score higher.
	t.Run("first match wins", func(t *testing.T) {
		headers := append([]string{}, shopifySchema.ExpectedHeaders()...)
		headers = append(headers, tiktokSchema.ExpectedHeaders()...)
		result := DetectPlatform(headers)
		require.True(t, result.IsValid)
		assert.Equal(t, models.PlatformShopify, result.DetectedPlatform)
	})
}
