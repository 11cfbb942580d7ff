package storage

import (
	"context"

	"github.com/forgelab/repoforge/internal/domain"
)

// Storage is the abstract interface for the run ledger: one row per
// generation run and one per attempted repository. The ledger backs the
// status reader, the API, and the idempotent skip check.
type Storage interface {
	// Run operations
	SaveRun(ctx context.Context, run *domain.RunRecord) error
	UpdateRun(ctx context.Context, run *domain.RunRecord) error
	GetLatestRun(ctx context.Context) (*domain.RunRecord, error)

	// Repository record operations
	SaveRepoRecord(ctx context.Context, record *domain.RepoRecord) error
	GetRepoRecord(ctx context.Context, name string) (*domain.RepoRecord, error)
	ListRepoRecords(ctx context.Context, limit int) ([]*domain.RepoRecord, error)

	// Outcome tallies for progress reporting
	CountByOutcome(ctx context.Context) (map[domain.Outcome]int, error)

	// Migration
	Migrate(ctx context.Context) error

	// Connection management
	Close() error
}
