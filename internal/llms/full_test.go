package llms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPage(t *testing.T) {
	doc := Document{Title: "Intro", Path: "guide/intro.md", Description: "Start here", Body: "\n# Intro\n\nHello.\n\n"}
	got := RenderPage(doc, LinkOptions{Domain: "https://docs.dev"})
	want := "---\nurl: https://docs.dev/guide/intro.md\ndescription: Start here\n---\n# Intro\n\nHello.\n"
	assert.Equal(t, want, got)
}

func TestRenderFullText(t *testing.T) {
	docs := []Document{
		{Title: "A", Path: "a.md", Body: "# A\n"},
		{Title: "B", Path: "b/index.md", Body: "# B"},
	}
	got := RenderFullText(docs, LinkOptions{CleanURLs: true})
	want := "---\nurl: /a\n---\n# A\n\n---\n\n---\nurl: /b/index\n---\n# B\n"
	assert.Equal(t, want, got)
}

func TestRenderFullText_Empty(t *testing.T) {
	assert.Equal(t, "", RenderFullText(nil, LinkOptions{}))
}
