package domain

// Ratio returns passed/total as a percentage. ok is false when no comparisons were made.
func Ratio(passed, total int) (pct float64, ok bool) {
	if total <= 0 {
		return 0, false
	}
	return float64(passed) * 100 / float64(total), true
}
