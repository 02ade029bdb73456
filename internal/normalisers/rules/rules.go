// Package rules implements the pure text rules of the cell pipeline.
// Every rule is total: it accepts any string, never fails, and returns the
// input unchanged where nothing matches.
package rules

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

// Rule is a pure text transformation.
type Rule func(text string) string

// ProlongedSoundMark is the katakana prolonged sound mark (choon).
const ProlongedSoundMark = "ー"

var (
	// A katakana letter, any prolonged sound marks after it, then an ASCII
	// hyphen. Marks not preceded by a katakana letter do not count.
	hyphenAfterKatakana = regexp.MustCompile(`([ァ-ヴ]ー*)-`)

	// A katakana letter followed by one or more prolonged sound marks.
	choonRun = regexp.MustCompile(`([ァ-ヴ])ー+`)

	dashReplacer = strings.NewReplacer(
		"−", "-", // U+2212 minus sign
		"－", "-", // U+FF0D fullwidth hyphen-minus
		"‐", "-", // U+2010 hyphen
		"–", "-", // U+2013 en dash
		"—", "-", // U+2014 em dash
		"―", "-", // U+2015 horizontal bar
	)

	bracketReplacer = strings.NewReplacer("（", "(", "）", ")")

	defaultCircled = NewCircledNumerals(domain.DefaultCircledDigits())
	defaultEras    = NewEraToYear(domain.DefaultEras())
)

// NewCircledNumerals returns a rule replacing each glyph in the table with
// its decimal value.
func NewCircledNumerals(table domain.CircledDigitTable) Rule {
	glyphs := table.Glyphs()
	pairs := make([]string, 0, 2*len(glyphs))
	for i, g := range glyphs {
		pairs = append(pairs, string(g), strconv.Itoa(i+1))
	}
	r := strings.NewReplacer(pairs...)
	return r.Replace
}

// CircledNumerals replaces ① to ⑳ with 1 to 20.
func CircledNumerals(text string) string {
	return defaultCircled(text)
}

// Canonicalise applies Unicode NFKC normalisation.
func Canonicalise(text string) string {
	return norm.NFKC.String(text)
}

// NewEraToYear returns a rule rewriting "<era><digits>年" as the Gregorian
// year for every era in the table. Digits may be from any script. A digit
// run that does not fit an int is left as written.
func NewEraToYear(table domain.EraTable) Rule {
	eras := table.Eras()
	if len(eras) == 0 {
		return func(text string) string { return text }
	}
	tokens := make([]string, len(eras))
	for i, e := range eras {
		tokens[i] = regexp.QuoteMeta(e.Token)
	}
	re := regexp.MustCompile(`(` + strings.Join(tokens, "|") + `)(\p{Nd}+)年`)

	return func(text string) string {
		return re.ReplaceAllStringFunc(text, func(match string) string {
			sub := re.FindStringSubmatch(match)
			base, ok := table.Base(sub[1])
			if !ok {
				return match
			}
			n, ok := parseDigits(sub[2])
			if !ok {
				return match
			}
			return strconv.Itoa(base+n) + "年"
		})
	}
}

// parseDigits converts a run of decimal digits of any script to an int.
func parseDigits(s string) (int, bool) {
	var b strings.Builder
	for _, r := range s {
		v, ok := digitValue(r)
		if !ok {
			return 0, false
		}
		b.WriteByte(byte('0' + v))
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// digitValue returns the value of a decimal digit. Decimal digits are
// encoded in contiguous runs of zero to nine, so the value is the offset
// from the start of the run modulo ten.
func digitValue(r rune) (int, bool) {
	if !unicode.IsDigit(r) {
		return 0, false
	}
	start := r
	for start > 0 && unicode.IsDigit(start-1) {
		start--
	}
	return int(r-start) % 10, true
}

// EraToYear converts 令和, 平成 and 昭和 years to Gregorian years.
func EraToYear(text string) string {
	return defaultEras(text)
}

// FullwidthBrackets maps （ and ） to ( and ). Other brackets are untouched.
func FullwidthBrackets(text string) string {
	return bracketReplacer.Replace(text)
}

// HyphenToChoon replaces an ASCII hyphen typed after katakana with the
// prolonged sound mark. Matches do not overlap, so in "アイ--" only the
// first hyphen is corrected.
func HyphenToChoon(text string) string {
	return hyphenAfterKatakana.ReplaceAllString(text, "${1}"+ProlongedSoundMark)
}

// UnifyDashes maps six dash and hyphen variants to the ASCII hyphen.
func UnifyDashes(text string) string {
	return dashReplacer.Replace(text)
}

// CollapseChoon reduces a run of prolonged sound marks after a katakana
// letter to a single mark.
func CollapseChoon(text string) string {
	return choonRun.ReplaceAllString(text, "${1}"+ProlongedSoundMark)
}

// CollapseWhitespace replaces every run of whitespace with one ASCII space
// and trims both ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.FieldsFunc(text, isSpace), " ")
}

// isSpace reports Unicode whitespace plus the information separators
// U+001C to U+001F, which CSV exports sometimes carry as field marks.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
