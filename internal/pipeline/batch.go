package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/reader"
)

// BatchRunner walks an input directory and writes one outline JSON file per
// supported document into the output directory.
type BatchRunner struct {
	extractor *outline.Extractor
	log       *slog.Logger
	workers   int
}

func NewBatchRunner(log *slog.Logger, maxPages, workers int) *BatchRunner {
	if workers <= 0 {
		workers = 4
	}
	return &BatchRunner{
		extractor: outline.NewExtractor(log, maxPages),
		log:       log,
		workers:   workers,
	}
}

// Run processes every supported file in inputDir. Each document is
// independent: a failure is logged and still produces an empty outline file,
// so the output directory always has one JSON per input.
func (b *BatchRunner) Run(ctx context.Context, inputDir, outputDir string) error {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("reading input dir: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !reader.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		b.log.Info("no supported documents found", "input_dir", inputDir)
		return nil
	}

	b.log.Info("batch extraction starting", "documents", len(files), "workers", b.workers)
	start := time.Now()

	sem := make(chan struct{}, b.workers)
	var wg sync.WaitGroup
	for _, name := range files {
		if ctx.Err() != nil {
			break
		}
		name := name
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			b.processFile(inputDir, outputDir, name)
		}()
	}
	wg.Wait()

	b.log.Info("batch extraction finished", "documents", len(files), "elapsed", time.Since(start))
	return ctx.Err()
}

// ProcessFile extracts a single document and writes its outline JSON. Used
// by both the batch walk and the directory watcher.
func (b *BatchRunner) ProcessFile(inputDir, outputDir, name string) {
	b.processFile(inputDir, outputDir, name)
}

func (b *BatchRunner) processFile(inputDir, outputDir, name string) {
	log := b.log.With("filename", name)
	start := time.Now()

	res := outline.EmptyResult()
	doc, err := reader.Open(filepath.Join(inputDir, name))
	if err != nil {
		log.Warn("reader failure, emitting empty result", "error", err)
	} else {
		res = b.extractor.Extract(doc)
	}

	outPath := filepath.Join(outputDir, outputName(name))
	if err := writeResult(outPath, res); err != nil {
		log.Error("writing outline", "error", err, "path", outPath)
		return
	}
	log.Info("document processed", "headings", len(res.Outline), "elapsed", time.Since(start))
}

// outputName maps document.pdf to document.json.
func outputName(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return stem + ".json"
}

func writeResult(path string, res outline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(res)
}
