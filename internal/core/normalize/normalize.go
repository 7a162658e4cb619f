// Package normalize prepares text before a byte wise search
// Forms
// none  leave input untouched, invalid UTF-8 included
// nfc   canonical composition
// nfkc  compatibility composition, fullwidth and ligatures collapse
// fold  nfkc followed by Unicode case folding
// every form other than none drops invalid UTF-8 first
package normalize

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Form names a normalization pipeline
type Form uint8

const (
	// None applies no changes
	None Form = iota
	// NFC is Unicode canonical composition
	NFC
	// NFKC is Unicode compatibility composition
	NFKC
	// Fold is NFKC plus case folding
	Fold
)

// String implements fmt.Stringer
func (f Form) String() string {
	switch f {
	case NFC:
		return "nfc"
	case NFKC:
		return "nfkc"
	case Fold:
		return "fold"
	default:
		return "none"
	}
}

// ParseForm maps a form name to a Form, empty means None
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "nfc":
		return NFC, nil
	case "nfkc":
		return NFKC, nil
	case "fold":
		return Fold, nil
	default:
		return None, fmt.Errorf("normalize: unknown form %q", s)
	}
}

// pool of fold chains, transform.Chain is stateful so each call needs its own
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFKC, cases.Fold())
	},
}

// Apply returns s prepared according to f
func Apply(f Form, s string) string {
	if f == None || s == "" {
		return s
	}
	s = strings.ToValidUTF8(s, "")

	switch f {
	case NFC:
		return norm.NFC.String(s)
	case NFKC:
		return norm.NFKC.String(s)
	case Fold:
		tr := foldPool.Get().(transform.Transformer)
		out, _, err := transform.String(tr, s)
		tr.Reset()
		foldPool.Put(tr)
		if err != nil {
			return norm.NFKC.String(s)
		}
		return out
	default:
		return s
	}
}
