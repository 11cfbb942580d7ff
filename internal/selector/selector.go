package selector

import (
	"math/rand"

	"github.com/forgelab/repoforge/internal/domain"
)

const (
	minLines   = 1000
	maxLines   = 50000
	minCommits = 100
	maxCommits = 500

	maxContributors = 5

	minCoverage = 20
	maxCoverage = 90
)

// Selector turns a global repository index into a concrete RepoSpec. All
// randomness flows through the explicit rng so a fixed seed reproduces the
// same corpus.
type Selector struct {
	rng        *rand.Rand
	categories []domain.Category
	languages  []domain.LanguageProfile
	pool       []domain.Contributor
	startID    int
}

// New creates a Selector over the default tables
func New(rng *rand.Rand, startID int) *Selector {
	return &Selector{
		rng:        rng,
		categories: Categories,
		languages:  Languages,
		pool:       Contributors,
		startID:    startID,
	}
}

// NewWithTables creates a Selector over caller-supplied tables
func NewWithTables(rng *rand.Rand, startID int, categories []domain.Category, languages []domain.LanguageProfile, pool []domain.Contributor) *Selector {
	return &Selector{
		rng:        rng,
		categories: categories,
		languages:  languages,
		pool:       pool,
		startID:    startID,
	}
}

// TotalQuota returns the number of repositories the category table can yield
func (s *Selector) TotalQuota() int {
	total := 0
	for _, c := range s.categories {
		total += c.Quota
	}
	return total
}

// Select maps a global index to a RepoSpec. The second return value is
// false once the category table is exhausted. Selection itself never fails.
func (s *Selector) Select(globalIndex int) (*domain.RepoSpec, bool) {
	offset := globalIndex - s.startID
	if offset < 0 {
		return nil, false
	}

	category, position, ok := s.categoryAt(offset)
	if !ok {
		return nil, false
	}

	language := s.pickLanguage()

	spec := &domain.RepoSpec{
		ID:            globalIndex,
		Category:      category.Name,
		Template:      category.Templates[position%len(category.Templates)],
		Language:      language.Name,
		Extension:     language.Extensions[0],
		TargetLines:   minLines + s.rng.Intn(maxLines-minLines+1),
		TargetCommits: minCommits + s.rng.Intn(maxCommits-minCommits+1),
		TestCoverage:  minCoverage + s.rng.Intn(maxCoverage-minCoverage+1),
		Contributors:  s.pickContributors(),
	}
	return spec, true
}

// categoryAt finds the category owning the given offset and the position
// of the repository within that category's quota
func (s *Selector) categoryAt(offset int) (domain.Category, int, bool) {
	for _, c := range s.categories {
		if offset < c.Quota {
			return c, offset, true
		}
		offset -= c.Quota
	}
	return domain.Category{}, 0, false
}

// pickLanguage performs one weighted draw over the language table. Weights
// are normalized in case the table does not sum to 1.
func (s *Selector) pickLanguage() domain.LanguageProfile {
	total := 0.0
	for _, l := range s.languages {
		total += l.Weight
	}

	draw := s.rng.Float64() * total
	for _, l := range s.languages {
		draw -= l.Weight
		if draw < 0 {
			return l
		}
	}
	// Floating point edge: the draw landed exactly on the upper bound.
	return s.languages[len(s.languages)-1]
}

// pickContributors samples a subset of the pool without replacement. The
// subset size is uniform over [1, min(5, pool size)].
func (s *Selector) pickContributors() []domain.Contributor {
	limit := maxContributors
	if len(s.pool) < limit {
		limit = len(s.pool)
	}
	n := 1 + s.rng.Intn(limit)

	picked := make([]domain.Contributor, 0, n)
	for _, i := range s.rng.Perm(len(s.pool))[:n] {
		picked = append(picked, s.pool[i])
	}
	return picked
}
