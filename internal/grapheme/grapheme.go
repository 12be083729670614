// Package grapheme addresses block text by grapheme cluster.
//
// All document offsets are grapheme offsets, so "one character" means one
// user-perceived character regardless of how many runes or bytes it spans.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// At returns the cluster at index i, or "" when i is outside [0, Count(text)).
// Negative indexes never wrap around.
func At(text string, i int) string {
	if i < 0 || text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == i {
			return g.Str()
		}
		idx++
	}
	return ""
}

// Window returns the clusters in [start, end) and reports whether the window
// lies entirely inside text. A negative start or an end past the last
// cluster yields ("", false); the window is never clamped.
func Window(text string, start, end int) (string, bool) {
	if start < 0 || end < start {
		return "", false
	}
	clusters := Split(text)
	if end > len(clusters) {
		return "", false
	}
	return Join(clusters[start:end]), true
}

// Slice returns the clusters in [start, end), clamping both bounds into text.
func Slice(text string, start, end int) string {
	clusters := Split(text)
	start = clamp(start, 0, len(clusters))
	end = clamp(end, start, len(clusters))
	return Join(clusters[start:end])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
