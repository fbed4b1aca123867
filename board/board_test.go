package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid([]string{
		"#___#",
		"#_#_#",
		"#___#",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 5, g.Width())
	assert.True(t, g.Open(0, 1))
	assert.False(t, g.Open(1, 2))
	assert.False(t, g.Open(2, 0))
}

func TestParseGridShortRowsAreBlocked(t *testing.T) {
	g, err := ParseGrid([]string{
		"____",
		"__",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.True(t, g.Open(1, 1))
	assert.False(t, g.Open(1, 2))
	assert.False(t, g.Open(1, 3))
}

func TestParseGridEmpty(t *testing.T) {
	_, err := ParseGrid(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestNewGridNotRectangular(t *testing.T) {
	_, err := NewGrid([][]bool{
		{true, true, true},
		{true, true},
	})
	assert.Error(t, err)
}

func TestLoadGrid(t *testing.T) {
	g, err := LoadGrid("testdata/structure0.txt")
	require.NoError(t, err)
	assert.Equal(t, 6, g.Height())
	assert.Equal(t, 9, g.Width())
	assert.True(t, g.Open(0, 1))
	assert.False(t, g.Open(0, 0))
}
