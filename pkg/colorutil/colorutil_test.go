package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	for _, c := range Palette {
		parsed, err := ParseHex(ToHex(c))
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff4d4d")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 77, B: 77, A: 255}, c)

	c, err = ParseHex("#0102030f")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 15}, c)

	_, err = ParseHex("red")
	assert.Error(t, err)
	_, err = ParseHex("#ff")
	assert.Error(t, err)
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, uint8(128), WithAlpha(Red, 128).A)
	assert.Equal(t, Red.R, WithAlpha(Red, 128).R)
}
