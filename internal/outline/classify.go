package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	spaceRun = regexp.MustCompile(`\s+`)
	// leadingNoise matches the digit/punctuation run headings often start
	// with ("2.1 Overview", "• Scope"). Stripped from emitted text only.
	leadingNoise = regexp.MustCompile(`^[\s\d\p{P}\p{S}]+`)
	// numberedPrefix matches dotted/parenthesized numbering followed by a
	// letter: "1. Introduction", "2.1) Overview", "1.2.3: Detail".
	numberedPrefix = regexp.MustCompile(`^(\d+[.):]+(?:\d+[.):]*)*)\s*[A-Za-z]`)
)

// Classification score terms. Empirical policy carried over unchanged;
// the cutoffs are not derived from anything measurable.
const (
	scoreSizeLarge  = 30 // size ratio >= 1.5
	scoreSizeMedium = 20 // size ratio >= 1.2
	scoreSizeSmall  = 10 // size ratio >= 1.1
	scoreBold       = 25
	scoreNumbered   = 20
	scoreLeftMargin = 10 // x0 < 100
	scoreVeryShort  = 25 // < 20 chars
	scoreShort      = 15 // < 50 chars
	scoreCasing     = 10

	thresholdTop = 50 // level from numbering or absolute size
	thresholdH2  = 35
	thresholdH3  = 25
)

var boldMarkers = []string{"bold", "heavy", "black", "semibold", "demibold"}

// Bold reports whether a fragment is visually bold, either via its style
// flags or via bold markers in the font name.
func Bold(f Fragment) bool {
	if f.Flags&FlagBold != 0 {
		return true
	}
	name := strings.ToLower(f.Font)
	for _, m := range boldMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// Clean normalizes heading text for output: whitespace runs collapse to a
// single space, the leading digit/punctuation run and surrounding whitespace
// are stripped. Idempotent.
func Clean(text string) string {
	text = spaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
	text = leadingNoise.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// normalize collapses whitespace without stripping the numbering prefix,
// which the classifier still needs to see.
func normalize(text string) string {
	return spaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
}

// numbering reports whether text starts with a numbered-heading prefix and
// how many dots the matched numbering contains.
func numbering(text string) (ok bool, dots int) {
	m := numberedPrefix.FindStringSubmatch(text)
	if m == nil {
		return false, 0
	}
	return true, strings.Count(m[1], ".")
}

// Classify scores one fragment against the document-wide font profile and
// returns its heading level. It is a pure function: fragments are classified
// independently, so order never affects an individual outcome.
func Classify(f Fragment, prof FontProfile) (Level, bool) {
	text := normalize(f.Text)
	length := utf8.RuneCountInString(text)
	if length < 3 || length > 200 {
		return "", false
	}

	bold := Bold(f)
	// Long unemphasized lines are body text, whatever else they score.
	if length > 100 && !bold {
		return "", false
	}

	numbered, dots := numbering(text)

	ratio := 1.0
	if prof.AvgSize > 0 {
		ratio = f.Size / prof.AvgSize
	}

	score := 0
	switch {
	case ratio >= 1.5:
		score += scoreSizeLarge
	case ratio >= 1.2:
		score += scoreSizeMedium
	case ratio >= 1.1:
		score += scoreSizeSmall
	}
	if bold {
		score += scoreBold
	}
	if numbered {
		score += scoreNumbered
	}
	if f.X0 < 100 {
		score += scoreLeftMargin
	}
	switch {
	case length < 20:
		score += scoreVeryShort
	case length < 50:
		score += scoreShort
	}
	if isUpperText(text) || isTitleText(text) {
		score += scoreCasing
	}

	switch {
	case score >= thresholdTop:
		if numbered {
			switch dots {
			case 1:
				return H1, true
			case 2:
				return H2, true
			default:
				return H3, true
			}
		}
		switch {
		case f.Size >= 0.9*prof.MaxSize:
			return H1, true
		case f.Size >= 0.8*prof.MaxSize:
			return H2, true
		default:
			return H3, true
		}
	case score >= thresholdH2:
		return H2, true
	case score >= thresholdH3:
		return H3, true
	}
	return "", false
}

// isUpperText reports whether every letter is uppercase (and there is at
// least one letter).
func isUpperText(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isTitleText reports whether every word starts with an uppercase letter
// with no further uppercase letters inside it.
func isTitleText(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		runes := []rune(w)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}
