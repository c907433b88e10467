package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"epicview/internal/config"
	"epicview/internal/logging"
	"epicview/internal/tui"
	"epicview/internal/workqueue"
)

var viewCmd = &cobra.Command{
	Use:   "view [snapshot.json]",
	Short: "Open the interactive work queue dashboard",
	Long: `Load the snapshot file and render it as an interactive tree. Epics and
features expand and collapse independently; selecting a task shows its
detail in the status bar. The tree reloads automatically when the
snapshot file changes unless watching is disabled.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().Bool("no-watch", false, "do not reload when the snapshot file changes")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if len(args) > 0 {
		cfg.Data.SnapshotPath = args[0]
	}
	path := cfg.Data.ResolveSnapshotPath(cwd)
	if path == "" {
		return fmt.Errorf("no snapshot path: pass one, set --snapshot, data.snapshot_path, or EPICVIEW_DATA_SNAPSHOT_PATH")
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = logging.NewLoggerWithRotation(cfg.Logging.ResolveFile(), cfg.Logging.Level, logging.RotationConfig{
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		})
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
	}
	defer logger.Close()

	provider := workqueue.NewFileProvider(path)
	snap, err := provider.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	noWatch, _ := cmd.Flags().GetBool("no-watch")
	var watcher *workqueue.Watcher
	if cfg.Data.Watch && !noWatch {
		watcher, err = workqueue.NewWatcher(path, cfg.Data.Debounce())
		if err != nil {
			return fmt.Errorf("failed to watch snapshot: %w", err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go watcher.Run(ctx)
	}

	app := tui.NewApp(snap, tui.Options{
		Provider:         provider,
		Watcher:          watcher,
		Logger:           logger,
		ShowDescriptions: cfg.TUI.ShowDescriptions,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.TUI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
