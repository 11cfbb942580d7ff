package domain

import "time"

// Outcome classifies how a single repository generation ended
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// RepoRecord is the run-ledger row for one generated repository
type RepoRecord struct {
	ID           string        `json:"id"`
	RunID        string        `json:"run_id"`
	RepoID       int           `json:"repo_id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	Template     string        `json:"template"`
	Language     string        `json:"language"`
	FileCount    int           `json:"file_count"`
	CommitCount  int           `json:"commit_count"`
	TestCoverage int           `json:"test_coverage"`
	Outcome      Outcome       `json:"outcome"`
	Error        string        `json:"error,omitempty"`
	Duration     time.Duration `json:"duration"`
	CreatedAt    time.Time     `json:"created_at"`
}

// RunRecord tracks one invocation of the orchestrator
type RunRecord struct {
	ID          string     `json:"id"`
	Seed        int64      `json:"seed"`
	TargetRepos int        `json:"target_repos"`
	Generated   int        `json:"generated"`
	Skipped     int        `json:"skipped"`
	Failed      int        `json:"failed"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// RunProgress is the read-only view served by the status reader and the API
type RunProgress struct {
	Target        int           `json:"target"`
	Generated     int           `json:"generated"`
	Skipped       int           `json:"skipped"`
	Failed        int           `json:"failed"`
	Percent       float64       `json:"percent"`
	DiskUsageByte int64         `json:"disk_usage_bytes"`
	AvgPerRepo    time.Duration `json:"avg_per_repo"`
	EstRemaining  time.Duration `json:"est_remaining"`
	Latest        []RepoRecord  `json:"latest,omitempty"`
}
