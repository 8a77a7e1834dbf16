package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"treezip/cmd/treezip/ui"
	"treezip/internal/treeio"
	"treezip/pkg/tree"
)

var browseWrite bool

// browseCmd opens the interactive zipper browser
var browseCmd = &cobra.Command{
	Use:   "browse FILE",
	Short: "Browse and edit a tree interactively",
	Long: `Opens an interactive browser over the tree. The cursor is a zipper:
arrow keys move between siblings and levels, 'e' edits the focused
value, 'd' prunes the focused subtree, 'o'/'O'/'a' insert nodes.

On exit the fully reconstructed tree is printed as YAML; with
--write it is written back to the file instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVarP(&browseWrite, "write", "w", false, "write the edited tree back to FILE")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	t, err := treeio.Load(args[0])
	if err != nil {
		return err
	}

	program := tea.NewProgram(ui.NewBrowser(t), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}

	model, ok := final.(ui.BrowserModel)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}
	edited := model.Result()

	if !browseWrite {
		return writeTreeYAML(cmd, edited)
	}
	if tree.Equal(edited, t) {
		logger.Debug("Tree unchanged, not writing", zap.String("file", args[0]))
		return nil
	}
	if err := saveTreeYAML(args[0], edited); err != nil {
		return err
	}
	logger.Info("Wrote edited tree", zap.String("file", args[0]), zap.Int("nodes", edited.Size()))
	return nil
}
