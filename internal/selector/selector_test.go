package selector

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelab/repoforge/internal/domain"
)

func newSelector(seed int64) *Selector {
	return New(rand.New(rand.NewSource(seed)), 5001)
}

func TestSelect_FirstCategory(t *testing.T) {
	s := newSelector(1)

	spec, ok := s.Select(5001)

	require.True(t, ok)
	assert.Equal(t, 5001, spec.ID)
	assert.Equal(t, "open_source_clones", spec.Category)
	assert.Equal(t, "react-clone", spec.Template)
	assert.Equal(t, "repo-05001-react-clone", spec.Name())
}

func TestSelect_TemplateRoundRobin(t *testing.T) {
	s := newSelector(1)

	for i := 0; i < 40; i++ {
		spec, ok := s.Select(5001 + i)
		require.True(t, ok)
		assert.Equal(t, "open_source_clones", spec.Category)
		assert.Equal(t, Categories[0].Templates[i%len(Categories[0].Templates)], spec.Template)
	}
}

func TestSelect_QuotaWalk(t *testing.T) {
	s := newSelector(1)

	// Offset 100 is the first repository past open_source_clones' quota.
	spec, ok := s.Select(5101)
	require.True(t, ok)
	assert.Equal(t, "enterprise_ecommerce", spec.Category)
	assert.Equal(t, "shopify-clone", spec.Template)
}

func TestSelect_CLIToolsScenario(t *testing.T) {
	s := newSelector(1)

	// cli_tools starts after the 900 repositories of the preceding
	// categories in declaration order.
	offset := 0
	for _, c := range Categories {
		if c.Name == "cli_tools" {
			break
		}
		offset += c.Quota
	}

	spec, ok := s.Select(5001 + offset)
	require.True(t, ok)
	assert.Equal(t, "cli_tools", spec.Category)
	assert.Equal(t, "build-tool", spec.Template)
}

func TestSelect_ScopedTableStartsAtStartID(t *testing.T) {
	// A run over a single-category table maps the start identity straight
	// onto that category's first template.
	var cliOnly []domain.Category
	for _, c := range Categories {
		if c.Name == "cli_tools" {
			cliOnly = append(cliOnly, c)
		}
	}
	s := NewWithTables(rand.New(rand.NewSource(1)), 5001, cliOnly, Languages, Contributors)

	spec, ok := s.Select(5001)
	require.True(t, ok)
	assert.Equal(t, "cli_tools", spec.Category)
	assert.Equal(t, "build-tool", spec.Template)
	assert.Equal(t, "repo-05001-build-tool", spec.Name())
}

func TestSelect_Exhaustion(t *testing.T) {
	s := newSelector(1)
	total := s.TotalQuota()

	_, ok := s.Select(5001 + total - 1)
	assert.True(t, ok)

	_, ok = s.Select(5001 + total)
	assert.False(t, ok)

	_, ok = s.Select(5000)
	assert.False(t, ok)
}

func TestSelect_Ranges(t *testing.T) {
	s := newSelector(7)

	for i := 0; i < 200; i++ {
		spec, ok := s.Select(5001 + i)
		require.True(t, ok)
		assert.GreaterOrEqual(t, spec.TargetLines, 1000)
		assert.LessOrEqual(t, spec.TargetLines, 50000)
		assert.GreaterOrEqual(t, spec.TargetCommits, 100)
		assert.LessOrEqual(t, spec.TargetCommits, 500)
		assert.GreaterOrEqual(t, spec.TestCoverage, 20)
		assert.LessOrEqual(t, spec.TestCoverage, 90)
		assert.GreaterOrEqual(t, len(spec.Contributors), 1)
		assert.LessOrEqual(t, len(spec.Contributors), 5)
	}
}

func TestSelect_ContributorsWithoutReplacement(t *testing.T) {
	s := newSelector(11)

	for i := 0; i < 100; i++ {
		spec, ok := s.Select(5001 + i)
		require.True(t, ok)

		seen := map[string]bool{}
		for _, c := range spec.Contributors {
			assert.False(t, seen[c.Email], "duplicate contributor %s", c.Email)
			seen[c.Email] = true
		}
	}
}

func TestSelect_Deterministic(t *testing.T) {
	a := newSelector(42)
	b := newSelector(42)

	for i := 0; i < 50; i++ {
		specA, okA := a.Select(5001 + i)
		specB, okB := b.Select(5001 + i)
		require.True(t, okA)
		require.True(t, okB)
		assert.Equal(t, specA, specB)
	}
}

func TestPickLanguage_DistributionConvergence(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	s := New(rng, 0)

	const draws = 10000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[s.pickLanguage().Name]++
	}

	for _, lang := range Languages {
		got := float64(counts[lang.Name]) / draws
		assert.LessOrEqual(t, math.Abs(got-lang.Weight), 0.02,
			"language %s: got %.3f, want %.3f ±0.02", lang.Name, got, lang.Weight)
	}
}

func TestPickLanguage_NormalizesWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	languages := []domain.LanguageProfile{
		{Name: "a", Weight: 2.0, Extensions: []string{".a"}},
		{Name: "b", Weight: 2.0, Extensions: []string{".b"}},
	}
	s := NewWithTables(rng, 0, Categories, languages, Contributors)

	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		counts[s.pickLanguage().Name]++
	}

	assert.InDelta(t, 1000, counts["a"], 150)
	assert.InDelta(t, 1000, counts["b"], 150)
}

func TestCategoryTable_TotalQuota(t *testing.T) {
	s := newSelector(1)
	assert.Equal(t, 1250, s.TotalQuota())
}
