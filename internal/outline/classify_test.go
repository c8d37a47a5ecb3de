package outline

import "testing"

func TestClassify_NumberedBoldH1(t *testing.T) {
	// 30 (size ratio 1.5) + 25 (bold) + 20 (numbered) + 10 (margin) + 25 (brevity) = 110.
	f := Fragment{Text: "1. Introduction", Font: "Helvetica", Size: 18, Flags: FlagBold, X0: 50, Page: 1}
	prof := FontProfile{AvgSize: 12, MaxSize: 18}

	level, ok := Classify(f, prof)
	if !ok {
		t.Fatal("expected a heading, got none")
	}
	if level != H1 {
		t.Errorf("expected H1, got %s", level)
	}
}

func TestClassify_DotCountLevels(t *testing.T) {
	prof := FontProfile{AvgSize: 12, MaxSize: 18}
	cases := []struct {
		text string
		want Level
	}{
		{"1. Introduction", H1},
		{"2.1. Scope of Work", H2},
		{"1.2.3. Detail Section", H3},
		{"1) Overview Section", H3}, // no dots in the numbering
	}
	for _, c := range cases {
		f := Fragment{Text: c.text, Font: "Arial-Bold", Size: 18, X0: 40, Page: 1}
		level, ok := Classify(f, prof)
		if !ok {
			t.Errorf("%q: expected a heading, got none", c.text)
			continue
		}
		if level != c.want {
			t.Errorf("%q: expected %s, got %s", c.text, c.want, level)
		}
	}
}

func TestClassify_LongUnboldDiscarded(t *testing.T) {
	long := "Some Body Paragraph Text That Goes On And On About Nothing In Particular Until It Finally Exceeds The Cutoff"
	if len(long) <= 100 {
		t.Fatalf("test string must exceed 100 chars, has %d", len(long))
	}
	f := Fragment{Text: long, Font: "Times", Size: 24, X0: 10, Page: 3}
	if _, ok := Classify(f, FontProfile{AvgSize: 12, MaxSize: 24}); ok {
		t.Error("long non-bold fragment should be discarded regardless of score")
	}
}

func TestClassify_LongBoldSurvives(t *testing.T) {
	long := "Some Emphasized Heading Text That Goes On And On About Everything Until It Finally Exceeds The Char Cutoff"
	f := Fragment{Text: long, Font: "Times-Bold", Size: 24, X0: 10, Page: 3}
	if _, ok := Classify(f, FontProfile{AvgSize: 12, MaxSize: 24}); !ok {
		t.Error("long bold fragment should still be classifiable")
	}
}

func TestClassify_TooShortDiscarded(t *testing.T) {
	f := Fragment{Text: "Hi", Font: "Arial-Bold", Size: 30, X0: 10, Page: 1}
	if _, ok := Classify(f, FontProfile{AvgSize: 12, MaxSize: 30}); ok {
		t.Error("fragments under 3 chars are never headings")
	}
}

func TestClassify_BodyTextNotHeading(t *testing.T) {
	// Average-sized, unemphasized, right of the margin, moderately long: 15 points at most.
	f := Fragment{Text: "the quick brown fox jumps over the lazy dog again", Font: "Times", Size: 12, X0: 150, Page: 2}
	if _, ok := Classify(f, FontProfile{AvgSize: 12, MaxSize: 18}); ok {
		t.Error("plain body text should not classify as a heading")
	}
}

func TestClassify_MidScoreLevels(t *testing.T) {
	prof := FontProfile{AvgSize: 12, MaxSize: 30}

	// 25 (bold) + 10 (margin) = 35 -> H2. Lowercase, over 50 chars, no size bonus.
	f := Fragment{Text: "some middling subsection heading about miscellaneous things", Font: "Arial", Size: 12, Flags: FlagBold, X0: 50, Page: 2}
	level, ok := Classify(f, prof)
	if !ok || level != H2 {
		t.Errorf("expected H2, got %s (ok=%v)", level, ok)
	}

	// 10 (size ratio 1.125) + 15 (brevity) = 25 -> H3.
	f = Fragment{Text: "a quieter subsection heading over here", Font: "Arial", Size: 13.5, X0: 150, Page: 2}
	level, ok = Classify(f, prof)
	if !ok || level != H3 {
		t.Errorf("expected H3, got %s (ok=%v)", level, ok)
	}
}

func TestClassify_SizeBasedLevelsUnnumbered(t *testing.T) {
	prof := FontProfile{AvgSize: 12, MaxSize: 20}
	cases := []struct {
		size float64
		want Level
	}{
		{20, H1},   // >= 0.9 * max
		{16.5, H2}, // >= 0.8 * max
		{14.5, H3}, // above threshold but small
	}
	for _, c := range cases {
		f := Fragment{Text: "Chapter Heading Words", Font: "Georgia-Bold", Size: c.size, X0: 40, Page: 1}
		level, ok := Classify(f, prof)
		if !ok {
			t.Errorf("size %.1f: expected a heading", c.size)
			continue
		}
		if level != c.want {
			t.Errorf("size %.1f: expected %s, got %s", c.size, c.want, level)
		}
	}
}

func TestBold_FontNameMarkers(t *testing.T) {
	cases := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"ARIALBLACK", true},
		{"Roboto-SemiBold", true},
		{"Charter-Heavy", true},
		{"Gotham-DemiBold", true},
		{"Times-Roman", false},
		{"", false},
	}
	for _, c := range cases {
		got := Bold(Fragment{Text: "x", Font: c.font, Size: 12, Page: 1})
		if got != c.want {
			t.Errorf("font %q: expected bold=%v, got %v", c.font, c.want, got)
		}
	}
}

func TestBold_FlagWins(t *testing.T) {
	f := Fragment{Text: "x", Font: "Times-Roman", Size: 12, Flags: FlagBold, Page: 1}
	if !Bold(f) {
		t.Error("bold flag should mark the fragment bold regardless of font name")
	}
}

func TestClean_Basics(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  1.2   Overview  ", "Overview"},
		{"3)\tScope\nand\nLimits", "Scope and Limits"},
		{"Introduction", "Introduction"},
		{"...", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Clean(c.in); got != c.want {
			t.Errorf("Clean(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{"  1.2   Overview  ", "HEADING ONE", "2.1) Mixed  Case  Text", "¶ Symbols First"}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNumbering(t *testing.T) {
	cases := []struct {
		text string
		ok   bool
		dots int
	}{
		{"1. Introduction", true, 1},
		{"2.1) Overview", true, 1},
		{"1.2.3. Deep Section", true, 3},
		{"10: Results", true, 0},
		{"Introduction", false, 0},
		{"1.2.3", false, 0}, // no trailing letter
		{"3rd quarter", false, 0},
	}
	for _, c := range cases {
		ok, dots := numbering(c.text)
		if ok != c.ok || dots != c.dots {
			t.Errorf("numbering(%q): expected (%v,%d), got (%v,%d)", c.text, c.ok, c.dots, ok, dots)
		}
	}
}
