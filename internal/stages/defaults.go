package stages

import (
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
	"github.com/custodia-labs/csvnorm/internal/normalisers/rules"
)

// Stage names in pipeline order.
const (
	StageScript             = "script"
	StageCircledNumerals    = "circled-numerals"
	StageCanonicalise       = "canonicalise"
	StageEraToYear          = "era-to-year"
	StageFullwidthBrackets  = "fullwidth-brackets"
	StageHyphenToChoon      = "hyphen-to-choon"
	StageUnifyDashes        = "unify-dashes"
	StageCollapseChoon      = "collapse-choon"
	StageCollapseWhitespace = "collapse-whitespace"
)

// Ordered returns every stage in the order the pipeline must run them.
// The script stage is included only when sn is available.
//
// The order is fixed:
//
//  1. script runs first; it rewrites width and variant forms the later
//     rules key on.
//  2. circled-numerals.
//  3. canonicalise (NFKC) must precede hyphen-to-choon, because it folds
//     hyphen-like glyphs into the ASCII hyphen that rule matches.
//  4. era-to-year runs on canonical ASCII digits.
//  5. fullwidth-brackets.
//  6. hyphen-to-choon must precede unify-dashes, so corrected marks are not
//     swept into the dash rule, and must follow canonicalise.
//  7. unify-dashes.
//  8. collapse-choon squeezes marks created by hyphen-to-choon.
//  9. collapse-whitespace is last so nothing reintroduces irregular spacing.
func Ordered(sn driven.ScriptNormaliser) []Stage {
	out := make([]Stage, 0, 9)
	if sn != nil && sn.Available() {
		out = append(out, Stage{
			Name:        StageScript,
			Description: "Script-specific width and variant folding (" + sn.Name() + ")",
			Apply:       sn.Normalise,
		})
	}
	return append(out, fixedStages()...)
}

func fixedStages() []Stage {
	return []Stage{
		{
			Name:        StageCircledNumerals,
			Description: "Circled numerals ①-⑳ to 1-20",
			Apply:       rules.CircledNumerals,
		},
		{
			Name:        StageCanonicalise,
			Description: "Unicode NFKC normalisation",
			Apply:       rules.Canonicalise,
		},
		{
			Name:        StageEraToYear,
			Description: "Japanese era years (令和/平成/昭和) to Gregorian years",
			Apply:       rules.EraToYear,
		},
		{
			Name:        StageFullwidthBrackets,
			Description: "Fullwidth parentheses to ASCII",
			Apply:       rules.FullwidthBrackets,
		},
		{
			Name:        StageHyphenToChoon,
			Description: "Hyphen typed after katakana to the prolonged sound mark",
			Apply:       rules.HyphenToChoon,
		},
		{
			Name:        StageUnifyDashes,
			Description: "Dash and minus variants to the ASCII hyphen",
			Apply:       rules.UnifyDashes,
		},
		{
			Name:        StageCollapseChoon,
			Description: "Runs of prolonged sound marks after katakana to one",
			Apply:       rules.CollapseChoon,
		},
		{
			Name:        StageCollapseWhitespace,
			Description: "Whitespace runs to one space, trimmed",
			Apply:       rules.CollapseWhitespace,
		},
	}
}

// Default builds the cell pipeline. When sn is nil or unavailable the script
// stage is skipped and the pipeline reports itself as degraded.
func Default(sn driven.ScriptNormaliser) *Pipeline {
	p := NewPipeline(Ordered(sn)...)
	p.degraded = sn == nil || !sn.Available()
	return p
}

// RegisterDefaults registers every stage of Ordered with the registry.
func RegisterDefaults(r *Registry, sn driven.ScriptNormaliser) {
	for _, stage := range Ordered(sn) {
		r.Register(stage)
	}
}
