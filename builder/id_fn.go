package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its ID. It must be pure: the same
// index always yields the same ID, and distinct indices distinct IDs.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn returns spreadsheet-column letters, e.g. 0→"A", 25→"Z", 26→"AA".
// Letter IDs sort in index order only below 26 vertices.
// Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: LetterIDFn(%d)", idx))
	}

	// Bijective base 26: emit least significant letter first, then reverse.
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// PrefixedIDFn returns an IDFn producing prefix + decimal index, e.g. "v0", "v1".
// Panics (when called) if idx < 0.
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: PrefixedIDFn(%q)(%d)", prefix, idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithLetterIDs names vertices "A", "B", … via LetterIDFn.
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}

// WithPrefixedIDs names vertices prefix+index via PrefixedIDFn.
func WithPrefixedIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixedIDFn(prefix))
}
