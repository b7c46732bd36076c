package entry

// QuicksortDescending - Returns a new slice with the entries ordered by descending score.
// The first element is used as pivot; entries with a strictly greater score go to the left and entries with a lower or
// equal score go to the right. Already sorted input degrades to O(n²).
// Slices with 0 (zero) or 1 element are returned unchanged.
func QuicksortDescending(entries []*Entry) []*Entry {
	if len(entries) <= 1 {
		return entries
	}

	pivot := entries[0]
	var greater, lessOrEqual []*Entry
	for _, e := range entries[1:] {
		if e.Greater(pivot) {
			greater = append(greater, e)
		} else {
			lessOrEqual = append(lessOrEqual, e)
		}
	}

	sorted := make([]*Entry, 0, len(entries))
	sorted = append(sorted, QuicksortDescending(greater)...)
	sorted = append(sorted, pivot)
	sorted = append(sorted, QuicksortDescending(lessOrEqual)...)

	return sorted
}
