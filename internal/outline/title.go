package outline

import "unicode/utf8"

// Title detection bounds: candidates come from the top third of page 1,
// with a cleaned length a plausible title would have.
const (
	titleMinLen        = 5
	titleMaxLen        = 100
	titleMaxCandidates = 20
	titleTopBonusLimit = 30.0
)

// TitleFromFragments scores first-page fragments and returns the most
// title-like cleaned text, or "" when nothing qualifies. Ties break toward
// the earliest fragment in document order. This is stage B of title
// detection; callers short-circuit it when the document metadata already
// carries a title.
func TitleFromFragments(frags []Fragment, pageHeight float64) string {
	topThird := pageHeight / 3

	best := ""
	bestScore := 0.0
	candidates := 0
	for _, f := range frags {
		if !f.Valid() || f.Page != 1 {
			continue
		}
		if pageHeight > 0 && f.Y0 > topThird {
			continue
		}
		text := Clean(f.Text)
		length := utf8.RuneCountInString(text)
		if length < titleMinLen || length > titleMaxLen {
			continue
		}
		candidates++
		if candidates > titleMaxCandidates {
			break
		}

		score := 2 * f.Size
		if Bold(f) {
			score += 50
		}
		if f.Y0 < titleTopBonusLimit {
			score += titleTopBonusLimit - f.Y0
		}
		if best == "" || score > bestScore {
			best = text
			bestScore = score
		}
	}
	return best
}
