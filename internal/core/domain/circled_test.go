package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCircledDigits(t *testing.T) {
	glyphs := DefaultCircledDigits().Glyphs()

	assert.Len(t, glyphs, 20)
	assert.Equal(t, '①', glyphs[0])
	assert.Equal(t, '⑩', glyphs[9])
	assert.Equal(t, '⑳', glyphs[19])
}

func TestCircledDigitTable_GlyphsIsCopy(t *testing.T) {
	table := DefaultCircledDigits()

	glyphs := table.Glyphs()
	glyphs[0] = 'x'

	assert.Equal(t, '①', table.Glyphs()[0])
}
