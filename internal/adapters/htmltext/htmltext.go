// Package htmltext extracts plain text from HTML fragments. The hymn index
// uses it to strip markup from lyrics before embedding; the readings scraper
// uses it to linearize scraped passages.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags are elements whose end acts as a line break, in addition to <br>.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "blockquote": true, "tr": true,
}

// skipTags are elements whose content never contributes text.
var skipTags = map[string]bool{"script": true, "style": true, "head": true}

// Lines parses an HTML fragment and returns its visible text as trimmed,
// non-empty lines. <br> and block-element boundaries break lines; runs of
// whitespace inside a line collapse to single spaces.
func Lines(fragment string) []string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		// html.Parse recovers from malformed input; an actual error only
		// happens on reader failure, which a strings.Reader never produces.
		return nil
	}

	var sb strings.Builder
	walk(doc, &sb)

	var lines []string
	for _, raw := range strings.Split(sb.String(), "\n") {
		line := strings.Join(strings.Fields(raw), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Flatten returns the fragment's visible text as a single newline-joined
// string, or "" for markup with no text.
func Flatten(fragment string) string {
	return strings.Join(Lines(fragment), "\n")
}

func walk(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if skipTags[n.Data] {
			return
		}
		if n.Data == "br" {
			sb.WriteByte('\n')
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, sb)
	}
	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteByte('\n')
	}
}
