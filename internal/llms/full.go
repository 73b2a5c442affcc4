package llms

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const fullTextSeparator = "\n\n---\n\n"

// pageHeader is the front matter emitted above each page in LLM outputs.
type pageHeader struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description,omitempty"`
}

// RenderPage renders the LLM-friendly copy of a single page: a small front
// matter block with the page URL followed by its body.
func RenderPage(doc Document, opts LinkOptions) string {
	header := pageHeader{
		URL:         GenerateLink(doc.Path, opts),
		Description: doc.Description,
	}
	// Marshalling a struct of strings cannot fail.
	b, _ := yaml.Marshal(header)
	return "---\n" + string(b) + "---\n" + strings.TrimSpace(doc.Body) + "\n"
}

// RenderFullText concatenates every page, in order, into the llms-full.txt
// format.
func RenderFullText(docs []Document, opts LinkOptions) string {
	pages := make([]string, 0, len(docs))
	for _, doc := range docs {
		pages = append(pages, strings.TrimSpace(RenderPage(doc, opts)))
	}
	if len(pages) == 0 {
		return ""
	}
	return strings.Join(pages, fullTextSeparator) + "\n"
}
