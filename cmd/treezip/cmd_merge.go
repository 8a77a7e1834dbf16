package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"treezip/internal/treeio"
	"treezip/pkg/tree"
)

// mergeCmd merges two same-rooted trees
var mergeCmd = &cobra.Command{
	Use:   "merge FILE_A FILE_B",
	Short: "Merge two trees that share a root value",
	Long: `Loads two single-root YAML documents whose roots carry the same
value and merges them: same-valued children are merged recursively,
children only present in the second tree are appended after the
first tree's children. The result is printed as YAML.

Example:
  treezip merge base.yaml overlay.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	a, err := treeio.Load(args[0])
	if err != nil {
		return err
	}
	b, err := treeio.Load(args[1])
	if err != nil {
		return err
	}
	if a.Value != b.Value {
		return fmt.Errorf("root values differ: %q vs %q", a.Value, b.Value)
	}
	merged := a.Merge(b)
	logger.Debug("Merged trees",
		zap.String("root", merged.Value),
		zap.Int("nodes_a", a.Size()),
		zap.Int("nodes_b", b.Size()),
		zap.Int("nodes_merged", merged.Size()))

	return writeTreeYAML(cmd, merged)
}

func writeTreeYAML(cmd *cobra.Command, t tree.Tree[string]) error {
	out, err := treeio.Marshal(t)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
