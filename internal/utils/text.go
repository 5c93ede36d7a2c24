package utils

// Preview shortens s to at most n runes, appending "..." when it was cut.
func Preview(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
