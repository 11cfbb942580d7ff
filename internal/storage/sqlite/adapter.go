package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/forgelab/repoforge/internal/domain"
	"github.com/forgelab/repoforge/internal/storage"
)

// sqliteStorage implements the Storage interface for SQLite
type sqliteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	s := &sqliteStorage{db: db}
	if err := s.Migrate(context.Background()); err != nil {
		return nil, err
	}

	return s, nil
}

// Migrate runs database migrations
func (s *sqliteStorage) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		target_repos INTEGER NOT NULL,
		generated INTEGER NOT NULL DEFAULT 0,
		skipped INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS repos (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		repo_id INTEGER NOT NULL,
		name TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL,
		template TEXT NOT NULL,
		language TEXT NOT NULL,
		file_count INTEGER NOT NULL,
		commit_count INTEGER NOT NULL,
		test_coverage INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		duration_ms INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_repos_run ON repos(run_id);
	CREATE INDEX IF NOT EXISTS idx_repos_outcome ON repos(outcome);
	CREATE INDEX IF NOT EXISTS idx_repos_repo_id ON repos(repo_id);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts a new run row
func (s *sqliteStorage) SaveRun(ctx context.Context, run *domain.RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, seed, target_repos, generated, skipped, failed, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Seed, run.TargetRepos, run.Generated, run.Skipped, run.Failed, run.StartedAt, run.FinishedAt)
	return err
}

// UpdateRun updates the counters and finish time of an existing run
func (s *sqliteStorage) UpdateRun(ctx context.Context, run *domain.RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE runs SET generated = ?, skipped = ?, failed = ?, finished_at = ?
		WHERE id = ?`,
		run.Generated, run.Skipped, run.Failed, run.FinishedAt, run.ID)
	return err
}

// GetLatestRun returns the most recently started run
func (s *sqliteStorage) GetLatestRun(ctx context.Context) (*domain.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seed, target_repos, generated, skipped, failed, started_at, finished_at
		FROM runs ORDER BY started_at DESC LIMIT 1`)

	var run domain.RunRecord
	var finished sql.NullTime
	if err := row.Scan(&run.ID, &run.Seed, &run.TargetRepos, &run.Generated, &run.Skipped, &run.Failed, &run.StartedAt, &finished); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if finished.Valid {
		run.FinishedAt = &finished.Time
	}
	return &run, nil
}

// SaveRepoRecord inserts or replaces the ledger row for one repository
func (s *sqliteStorage) SaveRepoRecord(ctx context.Context, record *domain.RepoRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO repos
		(id, run_id, repo_id, name, category, template, language, file_count, commit_count, test_coverage, outcome, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.RunID, record.RepoID, record.Name, record.Category, record.Template,
		record.Language, record.FileCount, record.CommitCount, record.TestCoverage,
		string(record.Outcome), record.Error, record.Duration.Milliseconds(), record.CreatedAt)
	return err
}

// GetRepoRecord returns the ledger row for the named repository
func (s *sqliteStorage) GetRepoRecord(ctx context.Context, name string) (*domain.RepoRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, run_id, repo_id, name, category, template, language, file_count, commit_count, test_coverage, outcome, error, duration_ms, created_at
		FROM repos WHERE name = ?`, name)

	record, err := scanRepo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return record, err
}

// ListRepoRecords returns the newest records first, up to limit
func (s *sqliteStorage) ListRepoRecords(ctx context.Context, limit int) ([]*domain.RepoRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, repo_id, name, category, template, language, file_count, commit_count, test_coverage, outcome, error, duration_ms, created_at
		FROM repos ORDER BY repo_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.RepoRecord
	for rows.Next() {
		record, err := scanRepo(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// CountByOutcome tallies ledger rows per outcome
func (s *sqliteStorage) CountByOutcome(ctx context.Context) (map[domain.Outcome]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT outcome, COUNT(*) FROM repos GROUP BY outcome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.Outcome]int)
	for rows.Next() {
		var outcome string
		var count int
		if err := rows.Scan(&outcome, &count); err != nil {
			return nil, err
		}
		counts[domain.Outcome(outcome)] = count
	}
	return counts, rows.Err()
}

// Close closes the database connection
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRepo(row scanner) (*domain.RepoRecord, error) {
	var record domain.RepoRecord
	var outcome string
	var durationMS int64
	if err := row.Scan(&record.ID, &record.RunID, &record.RepoID, &record.Name, &record.Category,
		&record.Template, &record.Language, &record.FileCount, &record.CommitCount,
		&record.TestCoverage, &outcome, &record.Error, &durationMS, &record.CreatedAt); err != nil {
		return nil, err
	}
	record.Outcome = domain.Outcome(outcome)
	record.Duration = time.Duration(durationMS) * time.Millisecond
	return &record, nil
}
