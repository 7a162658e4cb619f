package search

import "testing"

const sunny = "Today is a very warm and sunny day."

func TestFindSubstring(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		text, pattern string
		want          int
	}{
		{"mid word", sunny, "very", 11},
		{"missing returns len", sunny, "dew", len(sunny)},
		{"prefix", sunny, "Today", 0},
		{"suffix", sunny, "day.", 31},
		{"first of repeats", "abcabcabc", "cab", 2},
		{"whole text", "abc", "abc", 0},
		{"pattern longer than text", "ab", "abc", 2},
		{"empty pattern", "abc", "", 0},
		{"empty text", "", "a", 0},
		{"empty both", "", "", 0},
		{"case sensitive", "Hello", "hello", 5},
		{"overlapping candidates", "aaab", "aab", 1},
		{"multibyte bytes", "héllo wörld", "wö", 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			if got := FindSubstring(c.text, c.pattern); got != c.want {
				t.Fatalf("FindSubstring(%q,%q)=%d want %d", c.text, c.pattern, got, c.want)
			}
		})
	}
}

func TestFindSubstring_SentinelIsLength(t *testing.T) {
	t.Parallel()

	// the sentinel is exactly len(text) so callers can compare against it
	if got := FindSubstring(sunny, "dew"); got != 35 || got != len(sunny) {
		t.Fatalf("sentinel %d want %d", got, len(sunny))
	}
}

func TestFindSubstring_AgreesWithFirstOccurrence(t *testing.T) {
	t.Parallel()

	texts := []string{"", "a", "abab", "mississippi", sunny}
	pats := []string{"a", "b", "ss", "issi", "ppi", "x", "sunny", "ab"}
	for _, tx := range texts {
		for _, p := range pats {
			got := FindSubstring(tx, p)
			want := len(tx)
			for i := 0; i+len(p) <= len(tx); i++ {
				if tx[i:i+len(p)] == p {
					want = i
					break
				}
			}
			if got != want {
				t.Errorf("FindSubstring(%q,%q)=%d want %d", tx, p, got, want)
			}
			if got < len(tx) && tx[got:got+len(p)] != p {
				t.Errorf("offset %d does not hold %q in %q", got, p, tx)
			}
		}
	}
}

func TestLocateSubstring(t *testing.T) {
	t.Parallel()

	if pos, ok := LocateSubstring(sunny, "warm"); !ok || pos != 16 {
		t.Fatalf("warm: got (%d,%v)", pos, ok)
	}
	if pos, ok := LocateSubstring(sunny, "cold"); ok || pos != len(sunny) {
		t.Fatalf("cold: got (%d,%v)", pos, ok)
	}
	// empty pattern is found even in empty text, unlike the sentinel form
	if pos, ok := LocateSubstring("", ""); !ok || pos != 0 {
		t.Fatalf("empty: got (%d,%v)", pos, ok)
	}
	if _, ok := LocateSubstring("", "a"); ok {
		t.Fatal("empty text should not contain a")
	}
}

func TestRuneOffset(t *testing.T) {
	t.Parallel()

	s := "héllo wörld"
	cases := []struct{ in, want int }{
		{-1, 0},
		{0, 0},
		{1, 1},
		{3, 2}, // after the two byte é
		{7, 6},
		{len(s), 11},
		{100, 11},
	}
	for _, c := range cases {
		if got := RuneOffset(s, c.in); got != c.want {
			t.Errorf("RuneOffset(%d)=%d want %d", c.in, got, c.want)
		}
	}
}
