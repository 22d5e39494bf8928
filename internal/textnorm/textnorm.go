// Package textnorm cleans definition strings scraped from dictionary pages.
package textnorm

import (
	"regexp"
	"strings"
)

var spaceRunPattern = regexp.MustCompile(` {2,}`)

var controlReplacer = strings.NewReplacer(
	"\n", " ",
	"\t", " ",
	"\u00a0", " ",
)

// Normalize replaces newlines, tabs and non-breaking spaces with a plain space
// and then replaces doubled spaces once.
// The double-space replacement is a single non-overlapping pass, so a run of
// three or more spaces can survive as two. Use CollapseSpaces for a full collapse.
func Normalize(text string) string {
	return strings.ReplaceAll(controlReplacer.Replace(text), "  ", " ")
}

// CollapseSpaces reduces every run of plain spaces to a single space.
func CollapseSpaces(text string) string {
	return spaceRunPattern.ReplaceAllString(text, " ")
}
