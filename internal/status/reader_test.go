package status

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelab/repoforge/internal/domain"
)

type fakeStore struct {
	records []*domain.RepoRecord
}

func (f *fakeStore) SaveRun(ctx context.Context, run *domain.RunRecord) error   { return nil }
func (f *fakeStore) UpdateRun(ctx context.Context, run *domain.RunRecord) error { return nil }
func (f *fakeStore) GetLatestRun(ctx context.Context) (*domain.RunRecord, error) {
	return nil, nil
}
func (f *fakeStore) SaveRepoRecord(ctx context.Context, record *domain.RepoRecord) error {
	return nil
}
func (f *fakeStore) GetRepoRecord(ctx context.Context, name string) (*domain.RepoRecord, error) {
	return nil, nil
}
func (f *fakeStore) ListRepoRecords(ctx context.Context, limit int) ([]*domain.RepoRecord, error) {
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}
func (f *fakeStore) CountByOutcome(ctx context.Context) (map[domain.Outcome]int, error) {
	counts := map[domain.Outcome]int{}
	for _, r := range f.records {
		counts[r.Outcome]++
	}
	return counts, nil
}
func (f *fakeStore) Migrate(ctx context.Context) error { return nil }
func (f *fakeStore) Close() error                      { return nil }

func writeRepoDir(t *testing.T, base, name string, fileBytes int) {
	t.Helper()
	dir := filepath.Join(base, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), make([]byte, fileBytes), 0o644))
}

func TestProgress_ScansRepoDirectories(t *testing.T) {
	base := t.TempDir()
	writeRepoDir(t, base, "repo-05001-web-framework", 100)
	writeRepoDir(t, base, "repo-05002-cms", 150)
	// Non-repo entries are not counted.
	writeRepoDir(t, base, "scratch", 50)
	require.NoError(t, os.WriteFile(filepath.Join(base, "repo-notes.txt"), []byte("x"), 0o644))

	r := NewReader(base, nil, 10)
	progress, err := r.Progress(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, progress.Generated)
	assert.Equal(t, 10, progress.Target)
	assert.InDelta(t, 20.0, progress.Percent, 0.001)
	assert.Equal(t, int64(250), progress.DiskUsageByte)
}

func TestProgress_MissingBaseDir(t *testing.T) {
	r := NewReader(filepath.Join(t.TempDir(), "nope"), nil, 100)

	progress, err := r.Progress(context.Background())
	require.NoError(t, err)
	assert.Zero(t, progress.Generated)
	assert.Zero(t, progress.DiskUsageByte)
}

func TestProgress_LedgerEstimates(t *testing.T) {
	base := t.TempDir()
	writeRepoDir(t, base, "repo-05001-web-framework", 10)

	store := &fakeStore{}
	for i := 0; i < 4; i++ {
		store.records = append(store.records, &domain.RepoRecord{
			Name:     fmt.Sprintf("repo-%05d-web-framework", 5004-i),
			RepoID:   5004 - i,
			Outcome:  domain.OutcomeSuccess,
			Duration: 2 * time.Second,
		})
	}
	// Failures do not contribute to the average.
	store.records = append(store.records, &domain.RepoRecord{
		Name: "repo-05000-broken", RepoID: 5000, Outcome: domain.OutcomeFailed, Duration: time.Minute,
	})
	store.records = append(store.records, &domain.RepoRecord{
		Name: "repo-04999-seen", RepoID: 4999, Outcome: domain.OutcomeSkipped,
	})

	r := NewReader(base, store, 5)
	progress, err := r.Progress(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, progress.AvgPerRepo)
	assert.Equal(t, 8*time.Second, progress.EstRemaining)
	assert.Equal(t, 1, progress.Failed)
	assert.Equal(t, 1, progress.Skipped)
	require.Len(t, progress.Latest, 5)
	assert.Equal(t, 5004, progress.Latest[0].RepoID)
}

func TestProgress_LatestCapped(t *testing.T) {
	store := &fakeStore{}
	for i := 0; i < 20; i++ {
		store.records = append(store.records, &domain.RepoRecord{
			Name: fmt.Sprintf("repo-%05d-cms", 5100-i), RepoID: 5100 - i, Outcome: domain.OutcomeSuccess,
		})
	}

	r := NewReader(t.TempDir(), store, 100)
	progress, err := r.Progress(context.Background())
	require.NoError(t, err)

	assert.Len(t, progress.Latest, 5)
}
