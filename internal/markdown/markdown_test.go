package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatter(t *testing.T) {
	src := "---\ntitle: Getting Started\ndescription: First steps\nhero:\n  name: Acme\n---\n# Body\n"
	fm, body, err := ParseFrontMatter(src)
	require.NoError(t, err)
	assert.Equal(t, "Getting Started", fm["title"])
	assert.Equal(t, "# Body\n", body)

	hero, ok := fm["hero"].(map[string]any)
	require.True(t, ok, "hero should decode as a map, got %T", fm["hero"])
	assert.Equal(t, "Acme", hero["name"])
}

func TestParseFrontMatter_None(t *testing.T) {
	src := "# Title\n\n---\nnot: front matter\n---\n"
	fm, body, err := ParseFrontMatter(src)
	require.NoError(t, err)
	assert.Nil(t, fm)
	assert.Equal(t, src, body)
}

func TestParseFrontMatter_Empty(t *testing.T) {
	fm, body, err := ParseFrontMatter("---\n---\ntext")
	require.NoError(t, err)
	assert.Empty(t, fm)
	assert.Equal(t, "text", body)
}

func TestParseFrontMatter_Invalid(t *testing.T) {
	_, _, err := ParseFrontMatter("---\ntitle: [unclosed\n---\nbody")
	assert.Error(t, err)
}

func TestFilterForLLM(t *testing.T) {
	src := "Intro\n<llm-exclude>\nHuman only\n</llm-exclude>\n<llm-only>\nFor models\n</llm-only>\nOutro"
	assert.Equal(t, "Intro\nFor models\nOutro", FilterForLLM(src))
}

func TestFilterForLLM_Inline(t *testing.T) {
	src := "Read <llm-only>the API docs</llm-only> here<llm-exclude> or watch the video</llm-exclude>."
	assert.Equal(t, "Read the API docs here.", FilterForLLM(src))
}

func TestFilterForLLM_TagsInCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"exclude tag documented in a fence",
			"Wrap text:\n\n```html\n<llm-exclude>hidden</llm-exclude>\n```\n",
			"Wrap text:\n\n```html\n<llm-exclude>hidden</llm-exclude>\n```\n",
		},
		{
			"only tag documented in a fence",
			"~~~\n<llm-only>\nfor models\n</llm-only>\n~~~\nafter",
			"~~~\n<llm-only>\nfor models\n</llm-only>\n~~~\nafter",
		},
		{
			"excluded region spanning a fence",
			"A\n<llm-exclude>\n```\ncode\n```\n</llm-exclude>\nB",
			"A\nB",
		},
		{
			"unclosed exclude in a fence does not leak",
			"```\n<llm-exclude>\n```\nvisible",
			"```\n<llm-exclude>\n```\nvisible",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterForLLM(tt.input))
		})
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "no tags here", "no tags here"},
		{"inline tags", "Click <Badge type=\"tip\">new</Badge> <b>now</b>", "Click new now"},
		{"self closing", "Line<br/>break", "Linebreak"},
		{"script dropped", "a<script>alert(1)</script>b", "ab"},
		{"comment dropped", "a<!-- note -->b", "ab"},
		{"autolink kept", "See <https://example.com>.", "See <https://example.com>."},
		{"inline code kept", "Use `<div>` tags", "Use `<div>` tags"},
		{"entities kept", "a &amp; b <i>c</i>", "a &amp; b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.expected {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripHTML_KeepsCodeFences(t *testing.T) {
	src := "<div class=\"tip\">\n\nText\n\n</div>\n\n```html\n<div>kept</div>\n```\n<span>after</span>"
	got := StripHTML(src)
	assert.Contains(t, got, "```html\n<div>kept</div>\n```")
	assert.Contains(t, got, "Text")
	assert.Contains(t, got, "after")
	assert.NotContains(t, got, "<span>")
	assert.NotContains(t, got, "\n\n\n")
}

func TestExtractHeadings(t *testing.T) {
	src := []byte("# Title *with* `code`\n\nText\n\n## Section\n\n```\n# not a heading\n```\n")
	headings := ExtractHeadings(src)
	require.Len(t, headings, 2)
	assert.Equal(t, Heading{Title: "Title with code", Level: 1}, headings[0])
	assert.Equal(t, Heading{Title: "Section", Level: 2}, headings[1])
}

func TestFirstTitle(t *testing.T) {
	assert.Equal(t, "", FirstTitle([]byte("## Only h2")))
	assert.Equal(t, "Setext", FirstTitle([]byte("Setext\n======\n")))
}

func TestPrepare(t *testing.T) {
	src := "---\ndescription: Install the tool\n---\n# Installation\n\n<llm-exclude>Video</llm-exclude>\n<span>Run</span> it.\n"
	doc, err := Prepare("guide/install.md", []byte(src), PrepareOptions{StripHTML: true, SourcePath: "/docs/guide/install.md"})
	require.NoError(t, err)
	assert.Equal(t, "Installation", doc.Title)
	assert.Equal(t, "guide/install.md", doc.Path)
	assert.Equal(t, "/docs/guide/install.md", doc.SourcePath)
	assert.Equal(t, "Install the tool", doc.Description)
	assert.Equal(t, "# Installation\n\nRun it.", doc.Body)
}

func TestPrepare_TitlePrecedence(t *testing.T) {
	doc, err := Prepare("a.md", []byte("---\ntitle: From FM\n---\n# From Heading\n"), PrepareOptions{})
	require.NoError(t, err)
	assert.Equal(t, "From FM", doc.Title)

	doc, err = Prepare("b.md", []byte("no heading"), PrepareOptions{})
	require.NoError(t, err)
	assert.Equal(t, UntitledTitle, doc.Title)
}

func TestPrepare_SetextHeading(t *testing.T) {
	doc, err := Prepare("index.md", []byte("My Site\n=======\n\nWelcome.\n"), PrepareOptions{})
	require.NoError(t, err)
	assert.Equal(t, "My Site", doc.Title)
	assert.Equal(t, "My Site", doc.Heading)

	doc, err = Prepare("code.md", []byte("```sh\n# not a heading\n```\n\n# Real\n"), PrepareOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Real", doc.Heading)
}

func TestPrepare_InvalidFrontMatter(t *testing.T) {
	_, err := Prepare("bad.md", []byte("---\ntitle: [unclosed\n---\n"), PrepareOptions{})
	assert.Error(t, err)
}

func TestLogicalPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"index.md", "index.md"},
		{"guide/index.md", "guide.md"},
		{"guide/advanced/index.md", "guide/advanced.md"},
		{"guide/intro.md", "guide/intro.md"},
		{`guide\index.md`, "guide.md"},
	}
	for _, tt := range tests {
		if got := LogicalPath(tt.input); got != tt.expected {
			t.Errorf("LogicalPath(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCountTokens(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		minExpected int
		maxExpected int
	}{
		{"empty string", "", 0, 0},
		{"single word", "hello", 1, 3},
		{"longer text", "The quick brown fox jumps over the lazy dog.", 10, 20},
		{"large", strings.Repeat("word ", 1000), 1200, 1400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CountTokens(tt.input)
			if result < tt.minExpected || result > tt.maxExpected {
				t.Errorf("CountTokens() = %d, want between %d and %d", result, tt.minExpected, tt.maxExpected)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1.5 KB", FormatSize(1536))
	assert.Equal(t, "2.0 MB", FormatSize(2*1024*1024))
}

func TestFormatTokens(t *testing.T) {
	assert.Equal(t, "999", FormatTokens(999))
	assert.Equal(t, "12.3K", FormatTokens(12345))
	assert.Equal(t, "1.5M", FormatTokens(1500000))
}
