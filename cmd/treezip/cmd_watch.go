package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"treezip/cmd/treezip/ui"
	"treezip/internal/treeio"
	"treezip/pkg/tree"
)

// watchCmd re-renders a tree whenever its file changes
var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-render a tree whenever its file changes",
	Long: `Watches FILE and re-renders the tree on every write. A parse error
keeps the last good rendering and reports the error instead of
exiting. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that write via
	// rename would otherwise drop the watch on the first save.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	renderOnce(cmd, path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	target := filepath.Clean(path)
	for {
		select {
		case <-sig:
			logger.Info("Stopping watch", zap.String("file", path))
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("File changed", zap.String("op", event.Op.String()))
			renderOnce(cmd, path)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", zap.Error(werr))
		}
	}
}

func renderOnce(cmd *cobra.Command, path string) {
	t, err := treeio.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "-- %v\n", err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "-- %s (%d nodes)\n", path, t.Size())
	fmt.Fprint(cmd.OutOrStdout(), ui.RenderTree(t, ui.DefaultStyles()))
}

func saveTreeYAML(path string, t tree.Tree[string]) error {
	out, err := treeio.Marshal(t)
	if err != nil {
		return fmt.Errorf("encoding tree: %w", err)
	}
	return os.WriteFile(path, out, 0644)
}
