package search

// FirstWord returns s up to the first ASCII space byte, or all of s when there is none
func FirstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return s[:i]
		}
	}
	return s
}
