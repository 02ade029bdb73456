package stages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/normalisers/script"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("expected non-nil registry")
	}
	if len(r.Names()) != 0 {
		t.Errorf("expected empty registry, got %v", r.Names())
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(Stage{Name: "upper", Apply: func(s string) string { return s + "!" }})

	assert.True(t, r.Has("upper"))
	stage, err := r.Get("upper")
	require.NoError(t, err)
	assert.Equal(t, "a!", stage.Apply("a"))
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedType))
	assert.Contains(t, err.Error(), "missing")
}

func TestRegistry_ReRegisterKeepsPosition(t *testing.T) {
	r := NewRegistry()
	r.Register(Stage{Name: "a", Apply: func(s string) string { return s }})
	r.Register(Stage{Name: "b", Apply: func(s string) string { return s }})
	r.Register(Stage{Name: "a", Apply: func(s string) string { return "x" }})

	assert.Equal(t, []string{"a", "b"}, r.Names())
	got, err := r.Apply("a", "y")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, script.New())

	assert.Equal(t, Default(script.New()).Stages(), r.Names())
	for _, stage := range r.List() {
		assert.NotEmpty(t, stage.Description, stage.Name)
	}

	got, err := r.Apply(StageEraToYear, "令和5年")
	require.NoError(t, err)
	assert.Equal(t, "2023年", got)
}

func TestRegisterDefaults_WithoutScript(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, nil)

	assert.False(t, r.Has(StageScript))
	_, err := r.Apply(StageScript, "x")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}
