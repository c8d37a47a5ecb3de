package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/pipeline"
)

var (
	extractInput    string
	extractOutput   string
	extractWorkers  int
	extractMaxPages int
	extractWatch    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract outlines for every document in a directory",
	Long: `Extract processes every supported document in the input directory and
writes one <name>.json outline per document into the output directory.

With --watch, the command keeps running and extracts new documents as they
appear in the input directory.

Examples:
  outliner extract --input ./docs --output ./outlines
  outliner extract --watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		cfg := config.Load()

		inputDir := extractInput
		if inputDir == "" {
			inputDir = cfg.InputDir
		}
		outputDir := extractOutput
		if outputDir == "" {
			outputDir = cfg.OutputDir
		}
		workers := extractWorkers
		if workers <= 0 {
			workers = cfg.WorkerCount
		}
		maxPages := extractMaxPages
		if maxPages <= 0 {
			maxPages = cfg.MaxPages
		}

		runner := pipeline.NewBatchRunner(log, maxPages, workers)
		if err := runner.Run(ctx, inputDir, outputDir); err != nil {
			return err
		}
		if !extractWatch {
			return nil
		}

		err := pipeline.NewWatcher(runner, log).Watch(ctx, inputDir, outputDir)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractInput, "input", "", "input directory (default: $INPUT_DIR)")
	extractCmd.Flags().StringVar(&extractOutput, "output", "", "output directory (default: $OUTPUT_DIR)")
	extractCmd.Flags().IntVar(&extractWorkers, "workers", 0, "concurrent extractions (default: $WORKER_COUNT)")
	extractCmd.Flags().IntVar(&extractMaxPages, "max-pages", 0, "pages to scan per document (default: $MAX_PAGES)")
	extractCmd.Flags().BoolVar(&extractWatch, "watch", false, "keep running and extract new documents as they appear")

	rootCmd.AddCommand(extractCmd)
}
