package markdown

import (
	"path"
	"strings"

	"github.com/itsmostafa/llmstxt/internal/llms"
)

// UntitledTitle is used when a page has neither a title nor a heading.
const UntitledTitle = "Untitled"

// PrepareOptions controls how a source file becomes a Document.
type PrepareOptions struct {
	// SourcePath is recorded on the document for chunking.
	SourcePath string

	// StripHTML removes HTML tags outside code.
	StripHTML bool
}

// Prepare turns the raw content of the file at rel (a slash path relative to
// the docs root) into a Document ready for rendering.
func Prepare(rel string, src []byte, opts PrepareOptions) (llms.Document, error) {
	fm, body, err := ParseFrontMatter(string(src))
	if err != nil {
		return llms.Document{}, err
	}

	body = FilterForLLM(body)
	if opts.StripHTML {
		body = StripHTML(body)
	}

	heading := FirstTitle([]byte(body))
	title := StringField(fm, "title")
	if title == "" {
		title = heading
	}
	if title == "" {
		title = UntitledTitle
	}

	return llms.Document{
		Title:       title,
		Heading:     heading,
		Path:        LogicalPath(rel),
		SourcePath:  opts.SourcePath,
		Description: StringField(fm, "description"),
		FrontMatter: fm,
		Body:        strings.TrimSpace(body),
	}, nil
}

// LogicalPath maps a source path to the path the page is served at.
// "dir/index.md" becomes "dir.md"; the root index.md is kept as is.
func LogicalPath(rel string) string {
	rel = strings.TrimPrefix(llms.NormalizePath(rel, ""), "./")
	dir, file := path.Split(rel)
	if file != "index.md" || dir == "" {
		return rel
	}
	return strings.TrimSuffix(dir, "/") + ".md"
}
