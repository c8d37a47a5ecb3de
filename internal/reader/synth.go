package reader

import (
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// Synthetic page geometry for formats that declare heading levels rather
// than typography (DOCX styles, Markdown ATX levels, HTML h-tags). The
// heading sizes sit inside the classifier's relative-size bands so the
// declared hierarchy survives the round trip through the heuristics.
const (
	synthPageHeight = 792.0
	synthPageBottom = 720.0
	synthMargin     = 72.0
	synthLeading    = 1.4
	synthBodySize   = 11.0
)

var synthHeadingSizes = map[int]float64{1: 24, 2: 20, 3: 15, 4: 13, 5: 12.5, 6: 12}

// pager lays synthetic fragments onto letter-sized pages, top to bottom.
type pager struct {
	page  int
	y     float64
	frags map[int][]outline.Fragment
}

func newPager() *pager {
	return &pager{page: 1, y: synthMargin, frags: make(map[int][]outline.Fragment)}
}

func (p *pager) add(text, font string, size float64, flags uint32) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if p.y > synthPageBottom {
		p.page++
		p.y = synthMargin
	}
	width := float64(len(text)) * size * 0.5
	p.frags[p.page] = append(p.frags[p.page], outline.Fragment{
		Text:  text,
		Font:  font,
		Size:  size,
		Flags: flags,
		X0:    synthMargin,
		Y0:    p.y,
		X1:    synthMargin + width,
		Y1:    p.y + size,
		Page:  p.page,
	})
	p.y += size * synthLeading
}

func (p *pager) heading(level int, text string) {
	size, ok := synthHeadingSizes[level]
	if !ok {
		size = synthBodySize
	}
	p.add(text, "Synthetic-Bold", size, outline.FlagBold)
}

func (p *pager) body(text string) {
	p.add(text, "Synthetic", synthBodySize, 0)
}

// synthDocument is a fully materialized Document built by a pager.
type synthDocument struct {
	title string
	pager *pager
}

func (d *synthDocument) MetadataTitle() string { return d.title }
func (d *synthDocument) PageCount() int { return d.pager.page }
func (d *synthDocument) PageHeight(int) float64 { return synthPageHeight }
func (d *synthDocument) PageFragments(page int) ([]outline.Fragment, error) {
	return d.pager.frags[page], nil
}
