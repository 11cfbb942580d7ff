package synth

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgelab/repoforge/internal/domain"
)

func TestUnitCount(t *testing.T) {
	assert.Equal(t, 1, UnitCount(0))
	assert.Equal(t, 1, UnitCount(49))
	assert.Equal(t, 1, UnitCount(99))
	assert.Equal(t, 2, UnitCount(100))
	assert.Equal(t, 10, UnitCount(500))
}

func TestFunctionCount(t *testing.T) {
	assert.Equal(t, 1, FunctionCount(0))
	assert.Equal(t, 1, FunctionCount(59))
	assert.Equal(t, 2, FunctionCount(60))
	assert.Equal(t, 16, FunctionCount(500))
}

func TestSynthesize_PythonScalesWithLines(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(1)), 0)

	src := s.Synthesize("python", domain.RoleComponent, 500)

	assert.Equal(t, 10, strings.Count(src, "class Component"))
	assert.Equal(t, 16, strings.Count(src, "def function_"))
	assert.Contains(t, src, "logger = logging.getLogger(__name__)")
}

func TestSynthesize_NoFaultsAtZeroRate(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(2)), 0)

	for _, lang := range []string{"python", "javascript", "typescript", "java", "go", "rust"} {
		src := s.Synthesize(lang, domain.RoleModule, 1000)
		assert.NotContains(t, src, "BUG", "language %s", lang)
	}
}

func TestSynthesize_AllFaultsAtFullRate(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(3)), 1)

	for _, lang := range []string{"python", "javascript", "java", "go", "rust"} {
		src := s.Synthesize(lang, domain.RoleModule, 200)
		assert.Contains(t, src, "BUG", "language %s", lang)
	}
}

func TestSynthesize_TypeScriptIsTyped(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(4)), 0)

	typed := s.Synthesize("typescript", domain.RoleComponent, 100)
	plain := s.Synthesize("javascript", domain.RoleComponent, 100)

	assert.Contains(t, typed, ": ")
	assert.NotEqual(t, typed, plain)
}

func TestSynthesize_GenericFallback(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(5)), 0)

	src := s.Synthesize("ruby", domain.RoleModule, 40)

	assert.Equal(t, 40, strings.Count(src, "\n"))
	assert.True(t, strings.HasPrefix(src, "// Line 0\n"))
}

func TestSynthesize_Deterministic(t *testing.T) {
	a := NewSynthesizer(rand.New(rand.NewSource(9)), 0.5)
	b := NewSynthesizer(rand.New(rand.NewSource(9)), 0.5)

	for i := 0; i < 5; i++ {
		assert.Equal(t,
			a.Synthesize("python", domain.RoleComponent, 300),
			b.Synthesize("python", domain.RoleComponent, 300))
	}
}
