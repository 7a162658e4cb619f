// Package search provides small pure search routines over byte strings and int sequences
// Not found is reported in band: results equal to the input length are always out of range
package search

import "unicode/utf8"

// FindSubstring returns the lowest byte offset where pattern occurs in text
// it returns len(text) when pattern does not occur or is longer than text
// an empty pattern matches at offset 0
func FindSubstring(text, pattern string) int {
	n, m := len(text), len(pattern)
	if m > n {
		return n
	}
	for i := 0; i <= n-m; i++ {
		if text[i:i+m] == pattern {
			return i
		}
	}
	return n
}

// LocateSubstring is FindSubstring with an explicit found flag
// use it when text may be empty and the sentinel would collide with offset 0
func LocateSubstring(text, pattern string) (int, bool) {
	if pattern == "" {
		return 0, true
	}
	pos := FindSubstring(text, pattern)
	return pos, pos < len(text)
}

// RuneOffset converts a byte offset in text into a code point offset
// offsets past the end clamp to the rune count of text
func RuneOffset(text string, byteOff int) int {
	if byteOff <= 0 {
		return 0
	}
	if byteOff > len(text) {
		byteOff = len(text)
	}
	return utf8.RuneCountInString(text[:byteOff])
}
