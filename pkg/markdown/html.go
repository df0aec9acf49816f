package markdown

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// ToHTML converts a Markdown text to HTML.
// Raw HTML (ex: quiz markers) is passed through.
func ToHTML(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	result := markdown.ToHTML([]byte(md), p, renderer)
	return strings.TrimSpace(string(result))
}
