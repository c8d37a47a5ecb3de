package pipeline

import (
	"context"
	"log/slog"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/reader"
)

// Worker processes a single extraction job.
type Worker struct {
	extractor *outline.Extractor
	log       *slog.Logger
}

func NewWorker(log *slog.Logger, maxPages int) *Worker {
	return &Worker{
		extractor: outline.NewExtractor(log, maxPages),
		log:       log,
	}
}

// Process runs the extraction pipeline for a job. A document that cannot
// be read still completes with an empty, schema-valid result; the error is
// recorded on the job but never aborts anything beyond this document.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if ctx.Err() != nil {
		job.SetError(ctx.Err().Error())
		job.SetStatus(StatusFailed)
		return
	}

	job.SetStatus(StatusReading)
	doc, err := reader.FromBytes(job.FileData(), job.Filename)
	if err != nil {
		log.Warn("reader failure, emitting empty result", "error", err)
		job.SetError(err.Error())
		job.SetResult(outline.EmptyResult())
		job.SetStatus(StatusCompleted)
		return
	}

	job.SetStatus(StatusExtracting)
	res := w.extractor.Extract(doc)
	job.SetResult(res)
	job.SetStatus(StatusCompleted)
	log.Info("extraction complete", "headings", len(res.Outline), "has_title", res.Title != "")
}
