// Package status is the read-only progress view over a generation corpus.
// It merges a directory scan of the output tree with the run ledger and
// never writes generation state.
package status

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/forgelab/repoforge/internal/domain"
	"github.com/forgelab/repoforge/internal/storage"
)

// latestCount is how many recent repositories the progress view lists
const latestCount = 5

// Reader computes corpus progress from the output directory and the ledger
type Reader struct {
	baseDir string
	store   storage.Storage
	target  int
}

// NewReader creates a progress reader. store may be nil when no ledger is
// available; the reader then reports from the directory scan alone.
func NewReader(baseDir string, store storage.Storage, target int) *Reader {
	return &Reader{baseDir: baseDir, store: store, target: target}
}

// Progress returns the current completion state of the corpus
func (r *Reader) Progress(ctx context.Context) (*domain.RunProgress, error) {
	generated, diskUsage, err := r.scan()
	if err != nil {
		return nil, err
	}

	progress := &domain.RunProgress{
		Target:        r.target,
		Generated:     generated,
		DiskUsageByte: diskUsage,
	}
	if r.target > 0 {
		progress.Percent = float64(generated) / float64(r.target) * 100
	}

	if r.store != nil {
		tallies, err := r.store.CountByOutcome(ctx)
		if err != nil {
			return nil, err
		}
		progress.Skipped = tallies[domain.OutcomeSkipped]
		progress.Failed = tallies[domain.OutcomeFailed]

		records, err := r.store.ListRepoRecords(ctx, 100)
		if err != nil {
			return nil, err
		}

		var total time.Duration
		counted := 0
		for _, record := range records {
			if record.Outcome == domain.OutcomeSuccess {
				total += record.Duration
				counted++
			}
		}
		if counted > 0 {
			progress.AvgPerRepo = total / time.Duration(counted)
			remaining := r.target - generated
			if remaining > 0 {
				progress.EstRemaining = progress.AvgPerRepo * time.Duration(remaining)
			}
		}

		latest := records
		if len(latest) > latestCount {
			latest = latest[:latestCount]
		}
		for _, record := range latest {
			progress.Latest = append(progress.Latest, *record)
		}
	}

	return progress, nil
}

// scan counts generated repository directories and sums their disk usage
func (r *Reader) scan() (int, int64, error) {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	count := 0
	var usage int64
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "repo-") {
			continue
		}
		count++

		err := filepath.WalkDir(filepath.Join(r.baseDir, entry.Name()), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // a repo being written can race the walk
			}
			if info, err := d.Info(); err == nil && !d.IsDir() {
				usage += info.Size()
			}
			return nil
		})
		if err != nil {
			return 0, 0, err
		}
	}
	return count, usage, nil
}
