package outline

import "strings"

// Style flag bits carried by a Fragment. Readers set FlagBold when the
// source format declares boldness directly; PDF content rarely does, so
// the classifier also inspects the font name.
const (
	FlagItalic uint32 = 1 << 1
	FlagBold   uint32 = 1 << 4
)

// Fragment is one contiguous run of uniformly-styled text on a page.
// Fragments live only for the duration of a single extraction.
type Fragment struct {
	Text  string  // raw text content
	Font  string  // font identifier, e.g. "Helvetica-Bold"
	Size  float64 // nominal point size
	Flags uint32  // style flag bits

	// Bounding box in page coordinates, y increasing downward.
	X0, Y0, X1, Y1 float64

	Page int // 1-based page index
}

// Valid reports whether the fragment carries usable text and font metadata.
// Malformed fragments are skipped everywhere, never fatal.
func (f Fragment) Valid() bool {
	return strings.TrimSpace(f.Text) != "" && f.Size > 0 && f.Page >= 1
}

// Level is a heading level in the extracted outline.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
)

// Entry is one detected heading.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the outline extracted from one document. The zero value is not
// schema-valid; use EmptyResult for the no-content case so the outline
// marshals as [] rather than null.
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// EmptyResult returns a schema-valid result with no title and no headings.
// A document that cannot be read still produces this, never a missing output.
func EmptyResult() Result {
	return Result{Outline: []Entry{}}
}

// Document is the reader collaborator the core consumes. Implementations
// live in internal/reader; the core treats them as black boxes.
type Document interface {
	// MetadataTitle returns the document's declared title, or "" when the
	// format carries none.
	MetadataTitle() string
	// PageCount returns the number of pages the document reports.
	PageCount() int
	// PageHeight returns the height of the given 1-based page in page
	// coordinates, or 0 when unknown.
	PageHeight(page int) float64
	// PageFragments returns the styled text fragments of the given 1-based
	// page in reading order.
	PageFragments(page int) ([]Fragment, error)
}
