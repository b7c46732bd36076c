package utils

// SumOfCodes - Returns the sum of the character codes (Unicode code points) in s.
// It is the fingerprint used both by entries and by the internal bucket selection.
func SumOfCodes(s string) (sum int64) {
	for _, r := range s {
		sum += int64(r)
	}

	return
}
