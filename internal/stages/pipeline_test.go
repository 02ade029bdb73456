package stages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/csvnorm/internal/normalisers/script"
)

func TestNewPipeline(t *testing.T) {
	p := NewPipeline()
	if p == nil {
		t.Fatal("expected non-nil pipeline")
	}
	if p.Len() != 0 {
		t.Errorf("expected 0 stages, got %d", p.Len())
	}
	if p.Degraded() {
		t.Error("expected explicit pipeline not to be degraded")
	}
}

func TestPipeline_RunsInOrder(t *testing.T) {
	var calls []string
	stage := func(name string) Stage {
		return Stage{Name: name, Apply: func(s string) string {
			calls = append(calls, name)
			return s + name
		}}
	}

	p := NewPipeline(stage("a"), stage("b"), stage("c"))

	assert.Equal(t, "xabc", p.Normalise("x"))
	assert.Equal(t, []string{"a", "b", "c"}, calls)
	assert.Equal(t, []string{"a", "b", "c"}, p.Stages())
}

func TestPipeline_EmptyTextSkipsStages(t *testing.T) {
	called := false
	p := NewPipeline(Stage{Name: "x", Apply: func(s string) string {
		called = true
		return "changed"
	}})

	assert.Equal(t, "", p.Normalise(""))
	assert.False(t, called)
}

func TestPipeline_DoesNotAliasInput(t *testing.T) {
	in := []Stage{{Name: "a", Apply: strings.ToUpper}}
	p := NewPipeline(in...)
	in[0] = Stage{Name: "b", Apply: strings.ToLower}

	assert.Equal(t, []string{"a"}, p.Stages())
}

func TestDefault_StageOrder(t *testing.T) {
	p := Default(script.New())

	assert.False(t, p.Degraded())
	assert.Equal(t, []string{
		StageScript,
		StageCircledNumerals,
		StageCanonicalise,
		StageEraToYear,
		StageFullwidthBrackets,
		StageHyphenToChoon,
		StageUnifyDashes,
		StageCollapseChoon,
		StageCollapseWhitespace,
	}, p.Stages())
}

func TestDefault_WithoutScript(t *testing.T) {
	for name, p := range map[string]*Pipeline{
		"unavailable": Default(script.Unavailable()),
		"nil":         Default(nil),
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, p.Degraded())
			assert.Equal(t, 8, p.Len())
			assert.NotContains(t, p.Stages(), StageScript)
			assert.Equal(t, StageCircledNumerals, p.Stages()[0])
		})
	}
}

func TestDefault_Normalise(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"令和5年", "2023年"},
		{"  foo   bar  ", "foo bar"},
		{"①商品（A）", "1商品(A)"},
		{"カレー-", "カレー"},
		{"ﾃﾞｰﾀ－ﾍﾞｰｽ", "データーベース"},
		{"平成３１年度", "2019年度"},
		{"昭和64年", "1989年"},
		{"2024年", "2024年"},
		{"A–B", "A-B"},
		{"らー-", "らー-"},
		{"令和٦年", "2024年"},
		{"a\x1cb", "a b"},
		{"", ""},
	}

	for _, sn := range []struct {
		name string
		p    *Pipeline
	}{
		{"with script", Default(script.New())},
		{"without script", Default(script.Unavailable())},
	} {
		for _, tt := range tests {
			t.Run(sn.name+"/"+tt.input, func(t *testing.T) {
				assert.Equal(t, tt.want, sn.p.Normalise(tt.input))
			})
		}
	}
}

func TestDefault_Idempotent(t *testing.T) {
	inputs := []string{
		"令和5年",
		"  foo   bar  ",
		"①商品（A）",
		"カレー-",
		"スーーーパー — マーケット",
		"ｱｲｳ　ｴｵ",
		"Ｈｅｌｌｏ　Ｗｏｒｌｄ",
	}

	for _, sn := range []struct {
		name string
		p    *Pipeline
	}{
		{"with script", Default(script.New())},
		{"without script", Default(script.Unavailable())},
	} {
		t.Run(sn.name, func(t *testing.T) {
			for _, in := range inputs {
				once := sn.p.Normalise(in)
				require.Equal(t, once, sn.p.Normalise(once), "input %q", in)
			}
		})
	}
}
