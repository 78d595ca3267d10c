package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/vertextoedge/violent-cleanup/internal/adapter/sqlite"
	"github.com/vertextoedge/violent-cleanup/internal/config"
	"github.com/vertextoedge/violent-cleanup/internal/domain"
	"github.com/vertextoedge/violent-cleanup/internal/domain/vo"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent runs recorded in the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString(flagConfig)
			limit, _ := cmd.Flags().GetInt("limit")
			showFiles, _ := cmd.Flags().GetBool("files")
			output, _ := cmd.Flags().GetString("output")
			if output != outputTable && output != outputYAML {
				return fmt.Errorf("invalid output format %q: must be %s or %s", output, outputTable, outputYAML)
			}

			cfg, err := config.LoadJournal(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled() {
				return fmt.Errorf("no journal configured: pass --%s or set journal.path", flagJournal)
			}

			store, err := sqlite.Open(cfg.Journal.Path)
			if err != nil {
				return fmt.Errorf("failed to open journal: %w", err)
			}
			defer store.Close()

			runs, err := store.ListRuns(limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			out := cmd.OutOrStdout()
			if output == outputYAML {
				return writeRunsYAML(out, store, runs, showFiles)
			}
			if err := writeRuns(out, runs); err != nil {
				return err
			}
			if !showFiles {
				return nil
			}
			for _, run := range runs {
				removals, err := store.ListRemovals(run.ID)
				if err != nil {
					return fmt.Errorf("failed to list removals for run %d: %w", run.ID, err)
				}
				writeRemovals(out, run, removals)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Number of runs to show")
	cmd.Flags().Bool("files", false, "Also list the files each run reported")
	cmd.Flags().StringP("output", "o", outputTable, "Output format: table or yaml")

	return cmd
}

func writeRuns(w io.Writer, runs []*domain.Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tMODE\tSTATUS\tUSAGE\tTARGET\tSCANNED\tREMOVED\tRECLAIMED\tROOT")
	for _, run := range runs {
		mode := "dry-run"
		if run.Commit {
			mode = "commit"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d%% -> %d%%\t%d%%\t%d\t%d\t%s\t%s\n",
			run.ID,
			run.StartedAt.Local().Format(time.DateTime),
			mode,
			run.Status,
			run.InitialUsage, run.FinalUsage,
			run.TargetPercent,
			run.Scanned,
			run.Removed,
			vo.NewFileSize(run.ReclaimedBytes),
			run.Root,
		)
	}
	return tw.Flush()
}

func writeRemovals(w io.Writer, run *domain.Run, removals []domain.Candidate) {
	fmt.Fprintf(w, "\nrun %d:\n", run.ID)
	if run.Error != "" {
		fmt.Fprintf(w, "  error: %s\n", run.Error)
	}
	for _, c := range removals {
		fmt.Fprintf(w, "  %s  %s  %s\n", c.ModTime().Local().Format(time.DateTime), vo.NewFileSize(c.Size), c.Path)
	}
}

type runRecord struct {
	ID             int64           `yaml:"id"`
	Root           string          `yaml:"root"`
	Commit         bool            `yaml:"commit"`
	Status         string          `yaml:"status"`
	TargetPercent  int             `yaml:"target_percent"`
	InitialUsage   int             `yaml:"initial_usage"`
	FinalUsage     int             `yaml:"final_usage"`
	Scanned        int             `yaml:"scanned"`
	Removed        int             `yaml:"removed"`
	ReclaimedBytes int64           `yaml:"reclaimed_bytes"`
	Error          string          `yaml:"error,omitempty"`
	StartedAt      time.Time       `yaml:"started_at"`
	FinishedAt     *time.Time      `yaml:"finished_at,omitempty"`
	Files          []removalRecord `yaml:"files,omitempty"`
}

type removalRecord struct {
	Path       string    `yaml:"path"`
	ModifiedAt time.Time `yaml:"modified_at"`
	Size       int64     `yaml:"size"`
}

type removalLister interface {
	ListRemovals(runID int64) ([]domain.Candidate, error)
}

func writeRunsYAML(w io.Writer, store removalLister, runs []*domain.Run, withFiles bool) error {
	records := make([]runRecord, 0, len(runs))
	for _, run := range runs {
		rec := runRecord{
			ID:             run.ID,
			Root:           run.Root,
			Commit:         run.Commit,
			Status:         string(run.Status),
			TargetPercent:  run.TargetPercent,
			InitialUsage:   run.InitialUsage,
			FinalUsage:     run.FinalUsage,
			Scanned:        run.Scanned,
			Removed:        run.Removed,
			ReclaimedBytes: run.ReclaimedBytes,
			Error:          run.Error,
			StartedAt:      run.StartedAt,
			FinishedAt:     run.FinishedAt,
		}
		if withFiles {
			removals, err := store.ListRemovals(run.ID)
			if err != nil {
				return fmt.Errorf("failed to list removals for run %d: %w", run.ID, err)
			}
			for _, c := range removals {
				rec.Files = append(rec.Files, removalRecord{Path: c.Path, ModifiedAt: c.ModTime(), Size: c.Size})
			}
		}
		records = append(records, rec)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode runs: %w", err)
	}
	return enc.Close()
}
