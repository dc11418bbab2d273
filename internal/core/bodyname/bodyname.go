// Package bodyname provides a deterministic normalizer for celestial body
// names arriving from external position providers.
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Case folding
// 4 Remove zero-width and combining marks
// 5 Width fold fullwidth to ASCII
// 6 Fold separators (underscores, dashes, whitespace runs) to single spaces and trim
package bodyname

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// pool of title casers; a cases.Caser carries internal transform buffers and
// is not safe for concurrent use
var titlePool = sync.Pool{
	New: func() any {
		c := cases.Title(language.English)
		return &c
	},
}

// Normalize returns the folded lookup key for a provider body name,
// e.g. "Mean_Node", "mean-node" and "MEAN NODE" all become "mean node"
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return foldSeparators(ns)
}

// Display returns the canonical display form of a provider body name,
// title-cased per English conventions ("mean node" -> "Mean Node")
func Display(s string) string {
	n := Normalize(s)
	if n == "" {
		return ""
	}

	c := titlePool.Get().(*cases.Caser)
	out := c.String(n)
	titlePool.Put(c)

	return out
}

// foldSeparators converts underscore/dash/whitespace runs to a single ASCII
// space and trims the edges
func foldSeparators(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inSep := false
	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			inSep = true
			continue
		}
		if inSep && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSep = false
		b.WriteRune(r)
	}
	return b.String()
}
