package reader

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
	pdflib "github.com/ledongthuc/pdf"
)

// Fragment merging tolerances. Gap thresholds are multiples of the font
// size; the row tolerance is in points of baseline drift.
const (
	pdfRowTolerance      = 2.0
	pdfWordGapMin        = 0.3
	pdfRunGapMax         = 2.5
	pdfDefaultPageHeight = 792.0
)

// pdfDocument adapts a parsed PDF to the outline.Document contract on top
// of the ledongthuc/pdf content model.
type pdfDocument struct {
	r     *pdflib.Reader
	title string
}

// newPDFDocument opens the document. The pdf library panics on some
// malformed cross-reference tables; those surface as an open error.
func newPDFDocument(data []byte) (doc outline.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("open pdf: %v", r)
		}
	}()
	r, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &pdfDocument{r: r, title: pdfInfoTitle(r)}, nil
}

// pdfInfoTitle reads the document title from the /Info dictionary. The pdf
// library panics on some malformed trailers; treat that as "no title".
func pdfInfoTitle(r *pdflib.Reader) (title string) {
	defer func() { _ = recover() }()
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	return strings.TrimSpace(info.Key("Title").Text())
}

func (d *pdfDocument) MetadataTitle() string { return d.title }

func (d *pdfDocument) PageCount() int { return d.r.NumPage() }

func (d *pdfDocument) PageHeight(page int) float64 {
	p := d.r.Page(page)
	if p.V.IsNull() {
		return 0
	}
	box := inheritedMediaBox(p.V)
	if box.IsNull() || box.Len() < 4 {
		return 0
	}
	return box.Index(3).Float64() - box.Index(1).Float64()
}

// inheritedMediaBox resolves /MediaBox, walking up the page tree when the
// page node itself does not carry one. The walk is bounded in case of a
// cyclic Parent chain.
func inheritedMediaBox(v pdflib.Value) pdflib.Value {
	for i := 0; i < 32 && !v.IsNull(); i++ {
		if box := v.Key("MediaBox"); !box.IsNull() {
			return box
		}
		v = v.Key("Parent")
	}
	return pdflib.Value{}
}

// PageFragments merges the page's character runs into uniformly-styled
// fragments. The pdf library panics on some malformed content streams;
// those surface as a page error instead of taking the document down.
func (d *pdfDocument) PageFragments(page int) (frags []outline.Fragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			frags = nil
			err = fmt.Errorf("pdf page %d: %v", page, r)
		}
	}()

	p := d.r.Page(page)
	if p.V.IsNull() {
		return nil, nil
	}
	height := d.PageHeight(page)
	if height <= 0 {
		height = pdfDefaultPageHeight
	}
	return mergeTexts(p.Content().Text, height, page), nil
}

// mergeTexts groups successive text elements sharing font, size and
// baseline into fragments, inserting spaces across word-sized gaps. PDF
// coordinates grow upward; emitted bounding boxes grow downward.
func mergeTexts(texts []pdflib.Text, pageHeight float64, page int) []outline.Fragment {
	var frags []outline.Fragment

	var (
		sb           strings.Builder
		font         string
		size         float64
		x0, x1, base float64
		open         bool
	)

	flush := func() {
		if !open {
			return
		}
		open = false
		text := sb.String()
		sb.Reset()
		if strings.TrimSpace(text) == "" {
			return
		}
		frags = append(frags, outline.Fragment{
			Text: text,
			Font: font,
			Size: size,
			X0:   x0,
			Y0:   pageHeight - base - size,
			X1:   x1,
			Y1:   pageHeight - base,
			Page: page,
		})
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		if open {
			gap := t.X - x1
			sameRow := math.Abs(t.Y-base) <= pdfRowTolerance
			sameStyle := t.Font == font && math.Abs(t.FontSize-size) < 0.05
			if sameRow && sameStyle && gap >= -1 && gap <= pdfRunGapMax*size {
				if gap > pdfWordGapMin*size && !strings.HasSuffix(sb.String(), " ") {
					sb.WriteByte(' ')
				}
				sb.WriteString(t.S)
				x1 = t.X + t.W
				continue
			}
			flush()
		}
		open = true
		font = t.Font
		size = t.FontSize
		base = t.Y
		x0 = t.X
		x1 = t.X + t.W
		sb.WriteString(t.S)
	}
	flush()
	return frags
}
