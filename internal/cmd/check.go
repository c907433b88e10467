package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"epicview/internal/config"
	"epicview/internal/tui/view"
	"epicview/internal/workqueue"
)

var checkCmd = &cobra.Command{
	Use:   "check [snapshot.json]",
	Short: "Validate the snapshot file and print a progress summary",
	Long: `Load the snapshot file without starting the TUI, report any structural
problems (duplicate IDs, retry counters outside their budget), and print
per-epic progress. Exits non-zero if the snapshot fails to load or has
validation errors.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	snap, err := workqueue.Load(path)
	if err != nil {
		return err
	}

	epics, features, tasks := snap.Counts()
	fmt.Printf("Snapshot: %s\n", path)
	fmt.Printf("Epics: %d  Features: %d  Tasks: %d\n\n", epics, features, tasks)

	for _, e := range snap.Epics {
		fmt.Printf("%s [%s] %d%%\n", e.Name, e.Status, view.EpicPercent(e))
		for _, f := range e.Features {
			fmt.Printf("    %s [%s] P%d %d%%\n", f.Name, f.Status, f.Priority, view.FeaturePercent(f))
		}
	}

	if errs := snap.Validate(); len(errs) > 0 {
		fmt.Printf("\n%d validation problems:\n", len(errs))
		for _, verr := range errs {
			fmt.Printf("  - %v\n", verr)
		}
		return fmt.Errorf("snapshot has %d validation problems", len(errs))
	}

	fmt.Println("\nSnapshot is valid.")
	return nil
}
