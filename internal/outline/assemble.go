package outline

import (
	"sort"
	"strings"
)

type headingKey struct {
	text string
	page int
}

// Assemble cleans, deduplicates and orders classified heading entries.
// Duplicates share a (lowercased cleaned text, page) key; the first
// occurrence in document order wins. The final ordering is by page, then
// lexicographically by text — a deliberate carry-over, not a layout sort.
func Assemble(entries []Entry) []Entry {
	seen := make(map[headingKey]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		text := Clean(e.Text)
		if text == "" {
			continue
		}
		key := headingKey{text: strings.ToLower(text), page: e.Page}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Entry{Level: e.Level, Text: text, Page: e.Page})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Page != out[j].Page {
			return out[i].Page < out[j].Page
		}
		return out[i].Text < out[j].Text
	})
	return out
}
