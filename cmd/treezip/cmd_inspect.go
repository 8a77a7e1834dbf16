package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"treezip/cmd/treezip/ui"
	"treezip/internal/treeio"
)

// pathsCmd prints every root-to-leaf path of a tree
var pathsCmd = &cobra.Command{
	Use:   "paths FILE",
	Short: "Print every root-to-leaf path of a tree",
	Long: `Loads a single-root YAML document and prints each root-to-leaf
path on its own line, children in document order.

Example:
  treezip paths infra.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPaths,
}

// flattenCmd prints all values in pre-order
var flattenCmd = &cobra.Command{
	Use:   "flatten FILE",
	Short: "Print all values of a tree in pre-order",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlatten,
}

// getCmd resolves an index path to a node value
var getCmd = &cobra.Command{
	Use:   "get FILE [INDEX...]",
	Short: "Print the value at an index path from the root",
	Long: `Walks the given child indices from the root and prints the value
of the node it lands on. With no indices, prints the root value.

Example:
  treezip get infra.yaml 1 0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

// showCmd renders the whole tree
var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Render a tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runPaths(cmd *cobra.Command, args []string) error {
	t, err := treeio.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("Loaded tree", zap.String("file", args[0]), zap.Int("nodes", t.Size()))

	for _, path := range t.Paths() {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(path, " / "))
	}
	return nil
}

func runFlatten(cmd *cobra.Command, args []string) error {
	t, err := treeio.Load(args[0])
	if err != nil {
		return err
	}
	for _, v := range t.Flatten() {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	t, err := treeio.Load(args[0])
	if err != nil {
		return err
	}
	path := make([]int, 0, len(args)-1)
	for _, raw := range args[1:] {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("index %q is not a number", raw)
		}
		path = append(path, idx)
	}
	val, err := t.ElemAt(path...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	t, err := treeio.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.RenderTree(t, ui.DefaultStyles()))
	return nil
}
