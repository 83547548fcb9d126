package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docflow-cli/internal/logger"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Upload documents from a drop folder",
	Long: `Upload every file in a directory for processing.

With --watch, keep running and upload new files as they appear,
turning the directory into a drop folder.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

// ingestWatch keeps the command running and watching the directory.
var ingestWatch bool

func init() {
	ingestCmd.Flags().BoolVarP(&ingestWatch, "watch", "w", false, "Keep watching for new files")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	ctx := context.Background()

	uploaded, err := ingestExisting(ctx, cmd, dir)
	if err != nil {
		return err
	}
	cmd.Printf("Uploaded %d files from %s.\n", uploaded, dir)

	if !ingestWatch {
		return nil
	}

	return watchDirectory(ctx, cmd, dir)
}

// ingestExisting uploads every regular file currently in the directory.
func ingestExisting(ctx context.Context, cmd *cobra.Command, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory: %w", err)
	}

	uploaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := uploadFile(ctx, cmd, filepath.Join(dir, entry.Name())); err != nil {
			cmd.Printf("  skipped %s: %v\n", entry.Name(), err)
			continue
		}
		uploaded++
	}
	return uploaded, nil
}

// watchDirectory uploads files as they are created until interrupted.
func watchDirectory(ctx context.Context, cmd *cobra.Command, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	cmd.Printf("Watching %s for new files (Ctrl+C to stop)...\n", dir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-sigCh:
			cmd.Println("\nStopped watching.")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Create covers new files; Rename covers moves into the dir.
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			info, err := os.Stat(event.Name)
			if err != nil || info.IsDir() {
				continue
			}
			if err := uploadFile(ctx, cmd, event.Name); err != nil {
				cmd.Printf("  failed %s: %v\n", filepath.Base(event.Name), err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

func uploadFile(ctx context.Context, cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := documentService.Upload(ctx, filepath.Base(path), f)
	if err != nil {
		return err
	}

	cmd.Printf("  uploaded %s as %s\n", doc.Filename, doc.ID)
	return nil
}
