// Package normalize folds typed or pasted numerals into the plain ASCII the radix
// core accepts. Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Remove zero-width and other format characters
// 4 Width fold fullwidth to ASCII
// 5 Typographic minus and dashes to '-'
//
// Anything still outside 0-9, A-F, a-f is left for the core to reject
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF and friends
			width.Fold,
		)
	},
}

// minus maps sign lookalikes to ASCII hyphen-minus
var minus = strings.NewReplacer(
	"\u2212", "-", // minus sign
	"\u2010", "-", // hyphen
	"\u2011", "-", // non-breaking hyphen
	"\u2012", "-", // figure dash
	"\u2013", "-", // en dash
	"\ufe63", "-", // small hyphen-minus
)

// Numeral returns s with the pipeline above applied
func Numeral(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return minus.Replace(ns)
}
