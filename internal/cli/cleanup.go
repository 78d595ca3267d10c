package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vertextoedge/violent-cleanup/internal/adapter/filesystem"
	"github.com/vertextoedge/violent-cleanup/internal/adapter/sqlite"
	"github.com/vertextoedge/violent-cleanup/internal/config"
	"github.com/vertextoedge/violent-cleanup/internal/domain/event"
	"github.com/vertextoedge/violent-cleanup/internal/domain/vo"
	"github.com/vertextoedge/violent-cleanup/internal/logger"
	"github.com/vertextoedge/violent-cleanup/internal/port"
	"github.com/vertextoedge/violent-cleanup/internal/service/cleanup"
	"go.uber.org/zap"
)

func newCleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "violent-cleanup",
		Short: "Delete the oldest matching files until usage is below target",
		Long: `Checks how full the filesystem holding --directory is. If usage is at or
above --target-use-percentage, files under the directory whose extension
matches --filter-extensions are removed oldest first, re-checking usage
before each one, until usage drops below the target or no candidates remain.

Without --actually-rm nothing is deleted; candidates are only reported.`,
		Args: cobra.NoArgs,
		RunE: runCleanup,
	}

	cmd.Flags().StringP("directory", "d", "", "Root directory to clean (required)")
	cmd.Flags().StringSliceP("filter-extensions", "f", config.DefaultFilterExtensions, "Extensions to delete, case-sensitive, without dot")
	cmd.Flags().Uint8P("target-use-percentage", "t", 0, "Stop once filesystem usage is below this percentage (required)")
	cmd.Flags().Bool("actually-rm", false, "Delete files instead of only reporting them")

	return cmd
}

func runCleanup(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString(flagConfig)

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	zapLogger := logger.GetZapLogger()

	var journal port.RunJournal
	if cfg.Journal.Enabled() {
		store, err := sqlite.Open(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		defer store.Close()
		journal = store
	}

	dispatcher := event.NewInMemoryDispatcher()
	dispatcher.Subscribe(event.NewLoggingHandler(zapLogger))

	svc := cleanup.New(&cleanup.Config{
		Directory:     cfg.Cleanup.Directory,
		Extensions:    vo.NewExtensionSet(cfg.Cleanup.FilterExtensions...),
		TargetPercent: cfg.Cleanup.TargetUsePercentage,
		Commit:        cfg.Cleanup.ActuallyRm,
	}, filesystem.NewManager(zapLogger), journal, dispatcher, zapLogger)

	if _, err := svc.Run(cmd.Context()); err != nil {
		zapLogger.Debug("cleanup aborted", zap.Error(err))
		return err
	}
	return nil
}
