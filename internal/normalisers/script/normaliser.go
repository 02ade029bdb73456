// Package script provides the optional script normalisation stage that runs
// before the fixed rules. It folds character widths (fullwidth latin to
// ASCII, halfwidth katakana to fullwidth), unifies hyphen-like and
// choon-like glyphs, and removes spaces adjacent to Japanese text.
package script

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
)

// Ensure both variants implement the interface.
var (
	_ driven.ScriptNormaliser = (*Normaliser)(nil)
	_ driven.ScriptNormaliser = absent{}
)

// Name is the name the stage reports.
const Name = "japanese-script"

var (
	// Width folding leaves halfwidth voiced marks as combining characters;
	// NFC recomposes them with the preceding kana.
	foldWidth = transform.Chain(width.Fold, norm.NFC)

	hyphenLike = strings.NewReplacer(
		"˗", "-", // modifier letter minus sign
		"֊", "-", // armenian hyphen
		"‐", "-", // hyphen
		"‑", "-", // non-breaking hyphen
		"‒", "-", // figure dash
		"–", "-", // en dash
		"⁃", "-", // hyphen bullet
		"⁻", "-", // superscript minus
		"₋", "-", // subscript minus
		"−", "-", // minus sign
	)

	choonLike = strings.NewReplacer(
		"﹣", "ー", // small hyphen-minus
		"ｰ", "ー", // halfwidth prolonged sound mark
		"—", "ー", // em dash
		"―", "ー", // horizontal bar
		"─", "ー", // box drawings light horizontal
		"━", "ー", // box drawings heavy horizontal
	)
)

// Normaliser is the available script normalisation stage.
type Normaliser struct{}

// New creates the script normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the stage implementation name.
func (n *Normaliser) Name() string {
	return Name
}

// Available returns true.
func (n *Normaliser) Available() bool {
	return true
}

// Normalise folds widths and glyph variants and tidies spacing.
func (n *Normaliser) Normalise(text string) string {
	if text == "" {
		return text
	}

	folded, _, err := transform.String(foldWidth, text)
	if err != nil {
		// Folding only fails on broken transformer state; keep the input.
		folded = text
	}

	folded = hyphenLike.Replace(folded)
	folded = choonLike.Replace(folded)
	folded = strings.Join(strings.Fields(folded), " ")
	folded = removeJapaneseSpaces(folded)

	// Last, since removing a space can join two runs of marks.
	return squeezeChoon(folded)
}

// squeezeChoon reduces every run of prolonged sound marks to one.
func squeezeChoon(s string) string {
	if !strings.Contains(s, "ーー") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	prev := rune(0)
	for _, r := range s {
		if r == 'ー' && prev == 'ー' {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// removeJapaneseSpaces drops a single space when either neighbour is
// Japanese text. Spaces between two latin words are kept.
func removeJapaneseSpaces(s string) string {
	if !strings.Contains(s, " ") {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if r == ' ' && i > 0 && i < len(runes)-1 &&
			(isJapanese(runes[i-1]) || isJapanese(runes[i+1])) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isJapanese(r rune) bool {
	switch {
	case unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han):
		return true
	case r == 'ー':
		return true
	case r >= 0x3000 && r <= 0x303F: // CJK symbols and punctuation
		return true
	case r >= 0xFF00 && r <= 0xFFEF: // halfwidth and fullwidth forms
		return true
	}
	return false
}

// absent is the variant used when no script normaliser is configured.
type absent struct{}

// Unavailable returns the absent script normaliser. It reports itself as
// unavailable and returns text unchanged.
func Unavailable() driven.ScriptNormaliser {
	return absent{}
}

func (absent) Name() string { return "none" }

func (absent) Available() bool { return false }

func (absent) Normalise(text string) string { return text }
