package orchestrator

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/forgelab/repoforge/internal/boiler"
	"github.com/forgelab/repoforge/internal/config"
	"github.com/forgelab/repoforge/internal/domain"
	apperrors "github.com/forgelab/repoforge/internal/errors"
	"github.com/forgelab/repoforge/internal/schedule"
	"github.com/forgelab/repoforge/internal/selector"
	"github.com/forgelab/repoforge/internal/storage"
	"github.com/forgelab/repoforge/internal/structure"
	"github.com/forgelab/repoforge/internal/synth"
)

// Builder is the contract the orchestrator needs from the VCS backend
type Builder interface {
	Init(ctx context.Context, path string) error
	SetIdentity(ctx context.Context, path string, author domain.Contributor) error
	Stage(ctx context.Context, path string, files ...string) error
	Commit(ctx context.Context, path, message string, when time.Time) error
}

// Orchestrator drives corpus generation end to end: selection, structure,
// content, boilerplate, scheduling, and history replay, one repository at a
// time. Per-repository failures are recorded and never abort the run.
type Orchestrator struct {
	cfg       *config.Config
	store     storage.Storage
	builder   Builder
	selector  *selector.Selector
	structure *structure.Generator
	synth     *synth.Synthesizer
	scheduler *schedule.Scheduler
	rng       *rand.Rand
	out       io.Writer
	now       func() time.Time
}

// New creates an orchestrator. A zero seed in the config picks a
// wall-clock seed; any other value reproduces the same corpus.
func New(cfg *config.Config, store storage.Storage, builder Builder) *Orchestrator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Orchestrator{
		cfg:       cfg,
		store:     store,
		builder:   builder,
		selector:  selector.New(rng, cfg.StartID),
		structure: structure.NewGenerator(rng),
		synth:     synth.NewSynthesizer(rng, cfg.FaultRate),
		scheduler: schedule.NewScheduler(rng),
		rng:       rng,
		out:       os.Stdout,
		now:       time.Now,
	}
}

// SetOutput redirects progress output, mainly for tests
func (o *Orchestrator) SetOutput(w io.Writer) {
	o.out = w
}

// Run generates repositories until the target count is reached or the
// category table is exhausted. The global index advances on every attempt
// so a failed identity is never reused.
func (o *Orchestrator) Run(ctx context.Context) (*domain.RunRecord, error) {
	if err := os.MkdirAll(o.cfg.OutputDir, 0o755); err != nil {
		return nil, apperrors.NewFSError("create output directory", err)
	}

	run := &domain.RunRecord{
		ID:          uuid.NewString(),
		Seed:        o.cfg.Seed,
		TargetRepos: o.cfg.TargetRepos,
		StartedAt:   o.now(),
	}
	if err := o.store.SaveRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to save run: %w", err)
	}

	index := o.cfg.StartID
	for run.Generated+run.Skipped < o.cfg.TargetRepos {
		spec, ok := o.selector.Select(index)
		if !ok {
			break
		}

		record := o.generateOne(ctx, run.ID, spec)
		switch record.Outcome {
		case domain.OutcomeSuccess:
			run.Generated++
			fmt.Fprintf(o.out, "[%d] ✓ Generated %s (%d commits)\n", spec.ID, spec.Name(), record.CommitCount)
		case domain.OutcomeSkipped:
			run.Skipped++
			fmt.Fprintf(o.out, "[%d] Skipping %s: already present\n", spec.ID, spec.Name())
		case domain.OutcomeFailed:
			run.Failed++
			fmt.Fprintf(o.out, "[%d] ERROR generating %s: %s\n", spec.ID, spec.Name(), record.Error)
		}

		if err := o.store.SaveRepoRecord(ctx, record); err != nil {
			fmt.Fprintf(o.out, "[%d] Warning: failed to save record: %v\n", spec.ID, err)
		}

		index++
	}

	finished := o.now()
	run.FinishedAt = &finished
	if err := o.store.UpdateRun(ctx, run); err != nil {
		return run, fmt.Errorf("failed to update run: %w", err)
	}

	fmt.Fprintf(o.out, "\nCOMPLETE: generated %d, skipped %d, failed %d (target %d)\n",
		run.Generated, run.Skipped, run.Failed, run.TargetRepos)
	return run, nil
}

// generateOne runs the whole pipeline for a single repository and turns
// any failure into a ledger record instead of an error
func (o *Orchestrator) generateOne(ctx context.Context, runID string, spec *domain.RepoSpec) *domain.RepoRecord {
	start := o.now()
	record := &domain.RepoRecord{
		ID:           uuid.NewString(),
		RunID:        runID,
		RepoID:       spec.ID,
		Name:         spec.Name(),
		Category:     spec.Category,
		Template:     spec.Template,
		Language:     spec.Language,
		TestCoverage: spec.TestCoverage,
		CreatedAt:    start,
	}

	repoPath := filepath.Join(o.cfg.OutputDir, spec.Name())
	if _, err := os.Stat(repoPath); err == nil {
		record.Outcome = domain.OutcomeSkipped
		record.Duration = o.now().Sub(start)
		return record
	}

	fmt.Fprintf(o.out, "[%d] Generating %s (%s)...\n", spec.ID, spec.Name(), spec.Language)

	fileCount, commitCount, err := o.build(ctx, repoPath, spec)
	record.FileCount = fileCount
	record.CommitCount = commitCount
	record.Duration = o.now().Sub(start)

	if err != nil {
		record.Outcome = domain.OutcomeFailed
		record.Error = err.Error()
		return record
	}
	record.Outcome = domain.OutcomeSuccess
	return record
}

// build materializes structure, content, and history for one repository
func (o *Orchestrator) build(ctx context.Context, repoPath string, spec *domain.RepoSpec) (int, int, error) {
	if err := os.MkdirAll(repoPath, 0o755); err != nil {
		return 0, 0, apperrors.NewFSError("create repository directory", err)
	}

	entries, err := o.structure.Generate(repoPath, spec)
	if err != nil {
		return 0, 0, err
	}

	for _, entry := range entries {
		content := o.synth.Synthesize(spec.Language, entry.Role, entry.Lines)
		full := filepath.Join(repoPath, entry.Path)
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return 0, 0, apperrors.NewFSError(fmt.Sprintf("write %s", entry.Path), err)
		}
	}

	static, err := boiler.WriteBaseline(repoPath, spec)
	if err != nil {
		return 0, 0, err
	}

	archetype := structure.Classify(spec)
	if archetype == domain.ArchetypeMicroservice {
		infra, err := boiler.WriteInfrastructure(repoPath, spec)
		if err != nil {
			return 0, 0, err
		}
		static = append(static, infra...)
	}
	if archetype == domain.ArchetypeEnterprise {
		migrations, err := boiler.WriteMigrations(repoPath, o.rng)
		if err != nil {
			return 0, 0, err
		}
		static = append(static, migrations...)
	}

	// Everything except the bootstrap pair gets batched into commits:
	// manifest files in manifest order, then the remaining static files.
	files := make([]string, 0, len(entries)+len(static))
	for _, entry := range entries {
		files = append(files, entry.Path)
	}
	for _, path := range static {
		if path == ".gitignore" || path == "README.md" {
			continue
		}
		files = append(files, path)
	}

	commits := o.scheduler.Schedule(spec, files, o.now())

	if err := o.builder.Init(ctx, repoPath); err != nil {
		return len(files) + len(schedule.BootstrapFiles), 0, err
	}
	for i, commit := range commits {
		if err := o.builder.SetIdentity(ctx, repoPath, commit.Author); err != nil {
			return len(files) + len(schedule.BootstrapFiles), i, err
		}
		if err := o.builder.Stage(ctx, repoPath, commit.Files...); err != nil {
			return len(files) + len(schedule.BootstrapFiles), i, err
		}
		if err := o.builder.Commit(ctx, repoPath, commit.Message, commit.Timestamp); err != nil {
			return len(files) + len(schedule.BootstrapFiles), i, err
		}
	}

	return len(files) + len(schedule.BootstrapFiles), len(commits), nil
}
