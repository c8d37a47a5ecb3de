package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dgallion1/outliner/internal/reader"
)

const settlePollInterval = 200 * time.Millisecond

// Watcher processes documents as they appear in the input directory. New
// files are extracted once their size stops changing, so partially copied
// documents are not read mid-write.
type Watcher struct {
	runner *BatchRunner
	log    *slog.Logger
}

func NewWatcher(runner *BatchRunner, log *slog.Logger) *Watcher {
	return &Watcher{runner: runner, log: log}
}

// Watch blocks until ctx is cancelled, extracting each supported file
// created in inputDir.
func (w *Watcher) Watch(ctx context.Context, inputDir, outputDir string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(inputDir); err != nil {
		return fmt.Errorf("watching %s: %w", inputDir, err)
	}
	w.log.Info("watching for documents", "input_dir", inputDir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(event.Name)
			if !reader.IsSupportedExtension(name) {
				continue
			}
			if err := waitForSettle(ctx, event.Name); err != nil {
				w.log.Warn("file never settled", "filename", name, "error", err)
				continue
			}
			w.runner.ProcessFile(inputDir, outputDir, name)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", "error", err)
		}
	}
}

// waitForSettle returns once two consecutive size checks agree, meaning the
// writer has finished copying the file in.
func waitForSettle(ctx context.Context, path string) error {
	var last int64 = -1
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(settlePollInterval):
		}
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.Size() == last {
			return nil
		}
		last = info.Size()
	}
}
