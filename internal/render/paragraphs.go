// Package render turns assistant text into the HTML fragments the site
// inserts into chat bubbles and insight tabs.
package render

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips every tag and escapes the remaining text. Policies are safe
// for concurrent use once built.
var strict = bluemonday.StrictPolicy()

// Paragraphs renders each blank-line-delimited block of text as a <p>
// element. Blank blocks are dropped.
func Paragraphs(text string) string {
	return renderBlocks(text, func(block string) string {
		return strict.Sanitize(block)
	})
}

// Bubble renders chat message text: blocks become <p> elements and single
// line breaks inside a block become <br>.
func Bubble(text string) string {
	return renderBlocks(text, func(block string) string {
		lines := strings.Split(block, "\n")
		for i, line := range lines {
			lines[i] = strict.Sanitize(line)
		}
		return strings.Join(lines, "<br>")
	})
}

func renderBlocks(text string, inner func(string) string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var b strings.Builder
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.Trim(block, "\n")
		if strings.TrimSpace(block) == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(inner(block))
		b.WriteString("</p>")
	}
	return b.String()
}
