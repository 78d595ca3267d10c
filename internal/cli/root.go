package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Persistent flag names
const (
	flagConfig    = "config"
	flagJournal   = "journal"
	flagLogFormat = "log-format"
)

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context, version string) int {
	cmd := NewRootCmd(version)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "violent-cleanup",
		Short:         "Reclaim disk space by deleting the oldest matching files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String(flagConfig, "", "Optional YAML configuration file")
	cmd.PersistentFlags().String(flagJournal, "", "SQLite file recording each run (disabled when empty)")
	cmd.PersistentFlags().String(flagLogFormat, "text", "Log format: text or json")

	cmd.AddCommand(
		newCleanupCmd(),
		newHistoryCmd(),
		newVersionCmd(version),
	)

	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printVersion(cmd.OutOrStdout(), version)
		},
	}
}

func printVersion(w io.Writer, version string) error {
	_, err := fmt.Fprintf(w, "violent-cleanup %s\n", version)
	return err
}
