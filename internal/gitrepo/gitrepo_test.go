package gitrepo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelab/repoforge/internal/domain"
	apperrors "github.com/forgelab/repoforge/internal/errors"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func initRepo(t *testing.T, b *Builder) string {
	t.Helper()
	dir := t.TempDir()
	ctx := context.Background()
	require.NoError(t, b.Init(ctx, dir))
	require.NoError(t, b.SetIdentity(ctx, dir, domain.Contributor{
		Name: "John Smith", Email: "john.smith@example.com",
	}))
	return dir
}

func TestBuilder_InitAndCommit(t *testing.T) {
	requireGit(t)
	b := NewBuilder()
	ctx := context.Background()
	dir := initRepo(t, b)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# demo\n"), 0o644))
	require.NoError(t, b.Stage(ctx, dir, "README.md"))

	when := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, b.Commit(ctx, dir, "feat: Add core", when))

	n, err := b.CommitCount(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBuilder_CommitDateOverride(t *testing.T) {
	requireGit(t)
	b := NewBuilder()
	ctx := context.Background()
	dir := initRepo(t, b)

	when := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, b.Commit(ctx, dir, "Initial commit", when))

	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--format=%aI %cI")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)

	fields := strings.Fields(string(out))
	require.Len(t, fields, 2)
	for _, f := range fields {
		got, err := time.Parse(time.RFC3339, f)
		require.NoError(t, err)
		assert.True(t, got.Equal(when), "got %s, want %s", got, when)
	}
}

func TestBuilder_StageSkipsMissingFiles(t *testing.T) {
	requireGit(t)
	b := NewBuilder()
	ctx := context.Background()
	dir := initRepo(t, b)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "present.txt"), []byte("ok\n"), 0o644))
	require.NoError(t, b.Stage(ctx, dir, "present.txt", "missing.txt"))

	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--name-only")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	assert.Equal(t, "present.txt", strings.TrimSpace(string(out)))
}

func TestBuilder_EmptyCommitKeepsSequence(t *testing.T) {
	requireGit(t)
	b := NewBuilder()
	ctx := context.Background()
	dir := initRepo(t, b)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, b.Commit(ctx, dir, "Initial commit", base))
	require.NoError(t, b.Commit(ctx, dir, "chore: Update dependencies", base.Add(24*time.Hour)))

	n, err := b.CommitCount(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestBuilder_ErrorsCarryGitOutput(t *testing.T) {
	requireGit(t)
	b := NewBuilder()
	dir := t.TempDir()

	// Commit outside a repository must fail with a surfaced git error.
	err := b.Commit(context.Background(), dir, "nope", time.Now())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeGitFailed, appErr.Code)
}

func TestBuilder_CommitCountMissingRepo(t *testing.T) {
	requireGit(t)
	b := NewBuilder()

	_, err := b.CommitCount(context.Background(), t.TempDir())
	assert.Error(t, err)
}
