package outline

import (
	"log/slog"
	"strings"
)

// DefaultMaxPages is the hard per-document page cap. Pages beyond it are
// never collected, regardless of how long the document claims to be.
const DefaultMaxPages = 50

// Extractor derives a structured outline from a document's styled text
// fragments. It holds no per-document state, so one Extractor can serve
// any number of documents concurrently.
type Extractor struct {
	log      *slog.Logger
	maxPages int
}

// NewExtractor creates an extractor with the given logger and page cap.
// A non-positive cap falls back to DefaultMaxPages.
func NewExtractor(log *slog.Logger, maxPages int) *Extractor {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Extractor{log: log, maxPages: maxPages}
}

// Extract runs the full pipeline for one document: collect fragments,
// profile fonts, detect the title, classify headings, assemble the outline.
// Failures stay confined to the document: an unreadable page is skipped and
// a textless document yields an empty, schema-valid result.
func (e *Extractor) Extract(doc Document) Result {
	title := strings.TrimSpace(doc.MetadataTitle())

	pages := doc.PageCount()
	if pages > e.maxPages {
		pages = e.maxPages
	}

	var frags []Fragment
	for p := 1; p <= pages; p++ {
		pf, err := doc.PageFragments(p)
		if err != nil {
			e.log.Warn("page extraction failed", "page", p, "error", err)
			continue
		}
		for _, f := range pf {
			if f.Valid() {
				frags = append(frags, f)
			}
		}
	}

	if len(frags) == 0 {
		e.log.Info("no extractable text", "metadata_title", title != "")
		res := EmptyResult()
		res.Title = title
		return res
	}

	prof := Profile(frags)
	e.log.Debug("font profile", "fragments", len(frags), "avg_size", prof.AvgSize, "max_size", prof.MaxSize)

	if title == "" {
		title = TitleFromFragments(frags, doc.PageHeight(1))
	}

	var candidates []Entry
	for _, f := range frags {
		level, ok := Classify(f, prof)
		if !ok {
			continue
		}
		candidates = append(candidates, Entry{Level: level, Text: f.Text, Page: f.Page})
	}

	outline := Assemble(candidates)
	e.log.Debug("outline assembled", "headings", len(outline))
	return Result{Title: title, Outline: outline}
}
