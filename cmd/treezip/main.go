// treezip is a small CLI front-end for the tree and zipper packages.
// It loads rose trees from single-root YAML documents and offers
// read-only projections (paths, flatten, get), a structural merge,
// an interactive zipper-driven browser, and a file watcher.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "treezip",
	Short: "treezip - rose tree inspection and editing",
	Long: `treezip loads rose trees from single-root YAML documents and lets you
inspect, merge, and interactively edit them.

The interactive browser (treezip browse) is a zipper: a cursor that
navigates the tree without re-traversing from the root, reconstructing
the full tree from any point of focus.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(flattenCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
