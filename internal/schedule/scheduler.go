package schedule

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/forgelab/repoforge/internal/domain"
)

// BootstrapFiles are the baseline files covered by the first commit. The
// bootstrap commit anchors the earliest timestamp of the synthetic history.
var BootstrapFiles = []string{".gitignore", "README.md"}

// historySpan is how far before generation time the history starts
const historySpan = 365 * 24 * time.Hour

// commitTypes is the fixed table of message templates. A template with a
// %s slot is filled with the batch's component label.
var commitTypes = []struct {
	Type     string
	Template string
}{
	{"feat", "Add %s"},
	{"fix", "Fix bug in %s"},
	{"refactor", "Refactor %s"},
	{"docs", "Update documentation for %s"},
	{"test", "Add tests for %s"},
	{"chore", "Update dependencies"},
}

// Scheduler partitions a repository's files into a time-ordered commit
// sequence with rotating authorship
type Scheduler struct {
	rng *rand.Rand
}

// NewScheduler creates a scheduler backed by the given rng
func NewScheduler(rng *rand.Rand) *Scheduler {
	return &Scheduler{rng: rng}
}

// Schedule builds the commit sequence for the given files. Files must be in
// manifest order and must not include the bootstrap files; every file lands
// in exactly one commit. The sequence stops at file exhaustion or at the
// spec's target commit count, whichever happens first.
func (s *Scheduler) Schedule(spec *domain.RepoSpec, files []string, now time.Time) []domain.Commit {
	start := now.Add(-historySpan)

	commits := []domain.Commit{{
		Sequence:  0,
		Timestamp: start,
		Author:    spec.Primary(),
		Message:   "Initial commit",
		Files:     append([]string(nil), BootstrapFiles...),
	}}

	batch := 1
	if spec.TargetCommits > 10 {
		batch = len(files) / (spec.TargetCommits - 10)
		if batch < 1 {
			batch = 1
		}
	}

	current := start.Add(24 * time.Hour)
	for i := 0; i < len(files) && len(commits) < spec.TargetCommits; i += batch {
		end := i + batch
		if end > len(files) {
			end = len(files)
		}
		group := files[i:end]

		commits = append(commits, domain.Commit{
			Sequence:  len(commits),
			Timestamp: current,
			Author:    spec.Contributors[s.rng.Intn(len(spec.Contributors))],
			Message:   s.message(group[0]),
			Files:     append([]string(nil), group...),
		})

		current = current.Add(time.Duration(1+s.rng.Intn(48)) * time.Hour)
	}

	return commits
}

// message picks a commit type and formats its template against the
// component label of the batch's first file
func (s *Scheduler) message(firstFile string) string {
	ct := commitTypes[s.rng.Intn(len(commitTypes))]

	component := "core"
	if i := strings.IndexByte(firstFile, '/'); i > 0 {
		component = firstFile[:i]
	}

	if strings.Contains(ct.Template, "%s") {
		return fmt.Sprintf("%s: %s", ct.Type, fmt.Sprintf(ct.Template, component))
	}
	return fmt.Sprintf("%s: %s", ct.Type, ct.Template)
}
