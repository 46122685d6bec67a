package allocator

// Magnitudes below this were entered in "thousands" shorthand
const normalizeThreshold = 100000

const normalizeFactor = 1000

// NormalizeMagnitude corrects a march or rally value entered in abbreviated
// form ("264" meaning 264000). Any value strictly between 0 and 100000 is
// scaled by 1000; everything else passes through untouched. The boolean
// reports whether the value was rewritten so callers can disclose it.
func NormalizeMagnitude(raw int) (int, bool) {
	if raw > 0 && raw < normalizeThreshold {
		return raw * normalizeFactor, true
	}
	return raw, false
}
