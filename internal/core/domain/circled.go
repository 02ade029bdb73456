package domain

// circledDigits are the circled numerals ① to ⑳ in value order.
const circledDigits = "①②③④⑤⑥⑦⑧⑨⑩⑪⑫⑬⑭⑮⑯⑰⑱⑲⑳"

// CircledDigitTable maps each circled numeral glyph to its integer value.
type CircledDigitTable struct {
	glyphs []rune
}

// DefaultCircledDigits returns the table for ① (1) through ⑳ (20).
func DefaultCircledDigits() CircledDigitTable {
	return CircledDigitTable{glyphs: []rune(circledDigits)}
}

// Glyphs returns the glyphs in value order. The returned slice is a copy.
func (t CircledDigitTable) Glyphs() []rune {
	return append([]rune(nil), t.glyphs...)
}
