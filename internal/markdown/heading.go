package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is a markdown heading.
type Heading struct {
	Title string
	Level int
}

// ExtractHeadings returns the headings of src in document order.
func ExtractHeadings(src []byte) []Heading {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			headings = append(headings, Heading{
				Title: strings.TrimSpace(inlineText(h, src)),
				Level: h.Level,
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return headings
}

// FirstTitle returns the text of the first level-1 heading, or "".
func FirstTitle(src []byte) string {
	for _, h := range ExtractHeadings(src) {
		if h.Level == 1 && h.Title != "" {
			return h.Title
		}
	}
	return ""
}

// inlineText collects the text of the inline children of n.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(inlineText(c, src))
		}
	}
	return b.String()
}
