package outline

// defaultFontSize is the fallback baseline when a document yields no usable
// fragments, so downstream ratios never divide by zero.
const defaultFontSize = 12.0

// FontProfile holds per-document font statistics used to normalize heading
// scores. Computed once per document, never shared across documents.
type FontProfile struct {
	AvgSize float64
	MaxSize float64
}

// Profile computes the average and maximum font size across fragments.
// Malformed fragments are excluded from the statistics.
func Profile(frags []Fragment) FontProfile {
	var sum, max float64
	n := 0
	for _, f := range frags {
		if !f.Valid() {
			continue
		}
		sum += f.Size
		n++
		if f.Size > max {
			max = f.Size
		}
	}
	if n == 0 {
		return FontProfile{AvgSize: defaultFontSize, MaxSize: defaultFontSize}
	}
	return FontProfile{AvgSize: sum / float64(n), MaxSize: max}
}
