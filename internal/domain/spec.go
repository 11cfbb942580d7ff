package domain

import "fmt"

// Contributor is an identity used for synthetic commits
type Contributor struct {
	Name  string
	Email string
}

// Category describes one slot of the generation plan: how many repositories
// to produce and which templates they cycle through
type Category struct {
	Name      string
	Quota     int
	Templates []string
}

// LanguageProfile holds the sampling weight and file extensions for one
// target language
type LanguageProfile struct {
	Name       string
	Weight     float64
	Extensions []string
}

// RepoSpec is the immutable blueprint for one repository, fixed at
// selection time
type RepoSpec struct {
	ID            int
	Category      string
	Template      string
	Language      string
	Extension     string
	TargetLines   int
	TargetCommits int
	TestCoverage  int
	Contributors  []Contributor
}

// Name returns the deterministic directory name for the repository
func (s *RepoSpec) Name() string {
	return fmt.Sprintf("repo-%05d-%s", s.ID, s.Template)
}

// Primary returns the contributor that owns the bootstrap commit
func (s *RepoSpec) Primary() Contributor {
	return s.Contributors[0]
}
