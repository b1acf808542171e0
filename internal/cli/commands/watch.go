package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const watchDebounce = 200 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var asQTree bool

	cmd := &cobra.Command{
		Use:   "watch <file>...",
		Short: "Recompile input files whenever they change",
		Long: `Watch the named files and retranslate them on every write.

Each file is compiled once on startup and again after each change.
Errors are reported without stopping the watch. Press Ctrl+C to stop.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, asQTree)
		},
	}

	cmd.Flags().BoolVar(&asQTree, "qtree", false, "Emit LaTeX qtree markup instead of SQL")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string, asQTree bool) error {
	ctx := cmd.Context()
	logger := GetLogger(ctx)
	renderer := GetRenderer(ctx)

	eng, err := newEngine(ctx)
	if err != nil {
		return err
	}

	translate := eng.ToSQL
	key := "sql"
	if asQTree {
		translate = eng.ToQTree
		key = "qtree"
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the containing directories: editors often replace files on
	// save, which drops a watch registered on the file itself.
	watched := map[string]bool{}
	dirs := map[string]bool{}
	for _, path := range args {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	compile := func(path string) {
		data, err := os.ReadFile(path)
		if err != nil {
			renderer.Errorf("%s: %v", path, err)
			return
		}
		cfg := GetConfig(ctx)
		s, err := loadSchema(cfg)
		if err != nil {
			renderer.Errorf("%s: %v", path, err)
			return
		}
		stmts, err := translate(string(data), s)
		if err != nil {
			renderer.Errorf("%s: %v", path, err)
			return
		}
		if err := renderer.Statements(path, key, stmts); err != nil {
			renderer.Errorf("%s: %v", path, err)
		}
	}

	for _, path := range args {
		abs, _ := filepath.Abs(path)
		compile(abs)
	}
	renderer.Successf("Watching %d files, press Ctrl+C to stop", len(args))

	return watchLoop(ctx, watcher, watched, logger, compile)
}

// watchLoop dispatches file events to the compile function, debouncing
// the write bursts editors produce on save.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, watched map[string]bool, logger *slog.Logger, compile func(string)) error {
	timers := map[string]*time.Timer{}
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("file changed", "path", abs, "op", event.Op.String())
			if t, ok := timers[abs]; ok {
				t.Stop()
			}
			timers[abs] = time.AfterFunc(watchDebounce, func() { compile(abs) })

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Debug("watch error", "error", err)
		}
	}
}
