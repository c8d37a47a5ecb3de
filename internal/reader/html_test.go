package reader

import (
	"testing"

	"github.com/dgallion1/outliner/internal/outline"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head><title>Deployment Runbook</title><style>body { color: red }</style></head>
<body>
<nav>Home | Docs | About</nav>
<h1>Deployment Runbook</h1>
<p>A body paragraph that is comfortably long enough to be recognized as
ordinary prose rather than any sort of heading by the classifier.</p>
<h2>Rolling Back A Release</h2>
<p>Another long stretch of explanatory prose that pads this section out to
well past the length where short-line bonuses could apply to it.</p>
<h3>Verifying The Rollback</h3>
</body>
</html>`

func TestHTMLDocument_MetadataTitle(t *testing.T) {
	doc, err := newHTMLDocument([]byte(sampleHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.MetadataTitle() != "Deployment Runbook" {
		t.Errorf("expected title tag content, got %q", doc.MetadataTitle())
	}
}

func TestHTMLDocument_SkipsNonContent(t *testing.T) {
	doc, err := newHTMLDocument([]byte(sampleHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	frags, err := doc.PageFragments(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, f := range frags {
		if f.Text == "Home | Docs | About" {
			t.Error("nav content should be skipped")
		}
	}
	if len(frags) != 5 {
		t.Errorf("expected 5 fragments (3 headings + 2 paragraphs), got %d", len(frags))
	}
}

func TestHTMLDocument_EndToEndOutline(t *testing.T) {
	doc, err := newHTMLDocument([]byte(sampleHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := outline.NewExtractor(testLogger(), 0).Extract(doc)

	if res.Title != "Deployment Runbook" {
		t.Errorf("expected metadata title, got %q", res.Title)
	}
	want := map[string]outline.Level{
		"Deployment Runbook":     outline.H1,
		"Rolling Back A Release": outline.H2,
		"Verifying The Rollback": outline.H3,
	}
	got := make(map[string]outline.Level)
	for _, e := range res.Outline {
		got[e.Text] = e.Level
	}
	for text, level := range want {
		if got[text] != level {
			t.Errorf("%q: expected %s, got %s", text, level, got[text])
		}
	}
}
