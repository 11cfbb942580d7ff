package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/forgelab/repoforge/internal/config"
	"github.com/forgelab/repoforge/internal/gitrepo"
	"github.com/forgelab/repoforge/internal/orchestrator"
	"github.com/forgelab/repoforge/internal/status"
	"github.com/forgelab/repoforge/internal/storage"
	"github.com/forgelab/repoforge/internal/storage/postgres"
	"github.com/forgelab/repoforge/internal/storage/sqlite"
)

var (
	cfgFile    string
	outputJSON bool
	flagCount  int
	flagSeed   int64
	flagOut    string
	flagFault  float64
	flagLimit  int
)

var rootCmd = &cobra.Command{
	Use:   "repoforge",
	Short: "Synthetic repository corpus generator",
	Long: `A CLI tool for generating large corpora of artificial software repositories.

Each repository gets a plausible directory tree, language-idiomatic synthetic
source files, and a fabricated one-year git history with rotating authorship
and exact timestamp overrides.`,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the repository corpus",
	Long:  `Run the generation pipeline until the target repository count is reached or the category table is exhausted. Repositories already present in the output directory are skipped.`,
	RunE:  runGenerate,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show corpus generation progress",
	Long:  `Display completion percentage, disk usage, estimated remaining time, and the latest generated repositories.`,
	RunE:  runStatus,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated repositories",
	Long:  `Display the run ledger rows for generated repositories, newest first.`,
	RunE:  runList,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")

	generateCmd.Flags().IntVar(&flagCount, "count", 0, "target repository count (overrides FORGE_TARGET_REPOS)")
	generateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed for a reproducible corpus (overrides FORGE_SEED)")
	generateCmd.Flags().StringVar(&flagOut, "out", "", "output directory (overrides FORGE_OUTPUT_DIR)")
	generateCmd.Flags().Float64Var(&flagFault, "fault-rate", -1, "fault injection probability (overrides FORGE_FAULT_RATE)")

	listCmd.Flags().IntVar(&flagLimit, "limit", 20, "maximum rows to list")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageType {
	case "postgres":
		return postgres.NewPostgresStorage(cfg.PostgresURL)
	default:
		return sqlite.NewSQLiteStorage(cfg.SQLitePath)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flagCount > 0 {
		cfg.TargetRepos = flagCount
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagOut != "" {
		cfg.OutputDir = flagOut
	}
	if flagFault >= 0 {
		cfg.FaultRate = flagFault
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := getStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	fmt.Printf("Generating up to %d repositories under %s\n", cfg.TargetRepos, cfg.OutputDir)
	if cfg.Seed != 0 {
		fmt.Printf("Seed: %d\n", cfg.Seed)
	}

	orch := orchestrator.New(cfg, store, gitrepo.NewBuilder())
	run, err := orch.Run(context.Background())
	if err != nil {
		return fmt.Errorf("generation run failed: %w", err)
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(run)
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := getStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	reader := status.NewReader(cfg.OutputDir, store, cfg.TargetRepos)
	progress, err := reader.Progress(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read progress: %w", err)
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(progress)
	}

	fmt.Printf("\nCorpus Progress: %s\n\n", cfg.OutputDir)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Generated", fmt.Sprintf("%d / %d", progress.Generated, progress.Target)})
	table.Append([]string{"Progress", fmt.Sprintf("%.1f%%", progress.Percent)})
	if progress.Skipped > 0 {
		table.Append([]string{"Skipped", fmt.Sprintf("%d", progress.Skipped)})
	}
	if progress.Failed > 0 {
		table.Append([]string{"Failed", fmt.Sprintf("%d", progress.Failed)})
	}
	table.Append([]string{"Disk Usage", formatBytes(progress.DiskUsageByte)})
	if progress.AvgPerRepo > 0 {
		table.Append([]string{"Avg / Repo", progress.AvgPerRepo.Round(time.Millisecond).String()})
	}
	if progress.EstRemaining > 0 {
		table.Append([]string{"Est. Remaining", progress.EstRemaining.Round(time.Second).String()})
	}
	table.Render()

	if len(progress.Latest) > 0 {
		fmt.Println("\nLatest Repositories:")
		latest := tablewriter.NewWriter(os.Stdout)
		latest.SetHeader([]string{"Name", "Language", "Files", "Commits", "Outcome"})
		for _, record := range progress.Latest {
			latest.Append([]string{
				record.Name,
				record.Language,
				fmt.Sprintf("%d", record.FileCount),
				fmt.Sprintf("%d", record.CommitCount),
				string(record.Outcome),
			})
		}
		latest.Render()
	}

	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := getStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	records, err := store.ListRepoRecords(context.Background(), flagLimit)
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(records)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Category", "Language", "Files", "Commits", "Outcome", "Duration"})
	for _, record := range records {
		table.Append([]string{
			fmt.Sprintf("%d", record.RepoID),
			record.Name,
			record.Category,
			record.Language,
			fmt.Sprintf("%d", record.FileCount),
			fmt.Sprintf("%d", record.CommitCount),
			string(record.Outcome),
			record.Duration.Round(time.Millisecond).String(),
		})
	}
	table.Render()

	return nil
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}
