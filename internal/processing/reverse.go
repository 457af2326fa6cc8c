package processing

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Reverse returns content with its grapheme clusters in reverse order, so combining
// marks and multi-rune emoji stay attached to their base character.
func Reverse(content string) string {
	if content == "" {
		return ""
	}
	var clusters []string
	graphemes := uniseg.NewGraphemes(content)
	for graphemes.Next() {
		clusters = append(clusters, graphemes.Str())
	}
	var builder strings.Builder
	builder.Grow(len(content))
	for index := len(clusters) - 1; index >= 0; index-- {
		builder.WriteString(clusters[index])
	}
	return builder.String()
}
