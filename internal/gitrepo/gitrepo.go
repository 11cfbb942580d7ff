package gitrepo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/forgelab/repoforge/internal/domain"
	apperrors "github.com/forgelab/repoforge/internal/errors"
)

// Builder drives the git backend for one repository. Every operation takes
// the repository path explicitly; no working-directory state is shared, so
// repositories can be built in parallel.
type Builder struct{}

// NewBuilder creates a git repository builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Init initializes an empty repository at path
func (b *Builder) Init(ctx context.Context, path string) error {
	return b.run(ctx, path, nil, "init")
}

// SetIdentity sets the committing identity for subsequent operations
func (b *Builder) SetIdentity(ctx context.Context, path string, author domain.Contributor) error {
	if err := b.run(ctx, path, nil, "config", "user.name", author.Name); err != nil {
		return err
	}
	return b.run(ctx, path, nil, "config", "user.email", author.Email)
}

// Stage adds the given files to the index. Files missing on disk are
// skipped rather than failing the whole commit.
func (b *Builder) Stage(ctx context.Context, path string, files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(filepath.Join(path, f)); err != nil {
			continue
		}
		if err := b.run(ctx, path, nil, "add", "--", f); err != nil {
			return err
		}
	}
	return nil
}

// Commit records a commit with the given message, overriding both author
// and committer dates so the replayed history matches the schedule exactly.
// --allow-empty keeps the sequence intact when a batch staged nothing.
func (b *Builder) Commit(ctx context.Context, path, message string, when time.Time) error {
	env := []string{
		"GIT_AUTHOR_DATE=" + when.Format(time.RFC3339),
		"GIT_COMMITTER_DATE=" + when.Format(time.RFC3339),
	}
	return b.run(ctx, path, env, "commit", "--allow-empty", "-m", message)
}

// CommitCount returns the number of commits on HEAD, or zero for an empty
// or absent repository
func (b *Builder) CommitCount(ctx context.Context, path string) (int, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-list", "--count", "HEAD")
	cmd.Dir = path
	out, err := cmd.Output()
	if err != nil {
		return 0, apperrors.NewGitError(fmt.Sprintf("git rev-list in %s", path), err)
	}
	var n int
	if _, err := fmt.Sscanf(string(out), "%d", &n); err != nil {
		return 0, apperrors.NewGitError("parse rev-list output", err)
	}
	return n, nil
}

// run executes one git command in the repository directory, surfacing
// failures with git's combined output attached
func (b *Builder) run(ctx context.Context, path string, extraEnv []string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = path
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return apperrors.NewGitError(fmt.Sprintf("git %s: %s", args[0], string(out)), err)
	}
	return nil
}
