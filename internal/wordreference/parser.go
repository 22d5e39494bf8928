package wordreference

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/at-ishikawa/wordharvest/internal/textnorm"
)

var (
	// Spanish monolingual definitions block of a /definicion/ page.
	definitionBlockSelector = cascadia.MustCompile("#otherDicts .trans.esp")
	definitionItemSelector  = cascadia.MustCompile("li")
)

// ParseDefinitions returns the normalized text of every list item inside the
// definition blocks of a page, in document order.
// A page without definition blocks yields an empty slice.
func ParseDefinitions(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("html.Parse > %w", err)
	}

	definitions := make([]string, 0)
	for _, block := range definitionBlockSelector.MatchAll(doc) {
		for _, item := range definitionItemSelector.MatchAll(block) {
			if item == block {
				continue
			}
			definitions = append(definitions, textnorm.Normalize(nodeText(item)))
		}
	}
	return definitions, nil
}

// nodeText joins the trimmed, non-empty text nodes under n with single spaces.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
