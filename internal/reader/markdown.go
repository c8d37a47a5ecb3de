package reader

import (
	"bytes"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// newMarkdownDocument maps ATX heading levels onto synthetic typography so
// the same heuristic core serves Markdown input. Markdown carries no
// metadata title; detection falls through to the content heuristic.
func newMarkdownDocument(src []byte) outline.Document {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	pg := newPager()
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			pg.heading(h.Level, string(h.Text(src)))
			continue
		}
		pg.body(blockText(n, src))
	}
	return &synthDocument{pager: pg}
}

// blockText gets the text content of a goldmark block node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(blockText(c, src))
			buf.WriteByte('\n')
		}
	}
	return strings.TrimSpace(buf.String())
}
