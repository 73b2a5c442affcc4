package llms

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// DefaultRootTemplate is used for the root llms.txt.
const DefaultRootTemplate = `# {title}

{description}

{details}

## Documentation

{toc}
`

// DefaultChunkTemplate is used for directory llms.txt files.
const DefaultChunkTemplate = `# {title}

{description}

{details}

{navigation}

## Documentation

{toc}
`

// FallbackTitle is the root title of last resort.
const FallbackTitle = "LLMs Documentation"

var blankRunPattern = regexp.MustCompile(`\n{3,}`)

// RenderChunk renders the llms.txt content of one chunk.
func RenderChunk(chunk DirectoryChunk, opts RenderOptions) string {
	if chunk.IsRoot() {
		return renderRoot(chunk, opts)
	}
	return renderDirectory(chunk, opts)
}

func renderRoot(chunk DirectoryChunk, opts RenderOptions) string {
	title, description, details := resolveRootMeta(opts)

	vars := map[string]string{
		"title":       title,
		"description": blockquote(description),
		"details":     details,
		"toc":         BuildTOC(chunk.Files, TOCOptions{LinkOptions: opts.LinkOptions, Sidebar: opts.Sidebar}),
	}
	return expand(opts.CustomTemplate, DefaultRootTemplate, vars, opts.CustomVariables)
}

func renderDirectory(chunk DirectoryChunk, opts RenderOptions) string {
	name := path.Base(chunk.DirPath)

	navigation := ""
	if opts.IncludeNavigation {
		if nav := chunk.Navigation(opts.Domain); nav != "" {
			navigation = navigationHeading + "\n\n" + nav
		}
	}

	vars := map[string]string{
		"title":       DirectoryTitle(chunk.DirPath) + " Documentation",
		"description": blockquote(fmt.Sprintf("Documentation for the %s section", name)),
		"details":     fmt.Sprintf("This file contains links to all documentation files in the %s directory and its subdirectories.", name),
		"navigation":  navigation,
		"toc":         BuildTOC(chunk.Files, TOCOptions{LinkOptions: opts.LinkOptions, Sidebar: opts.Sidebar}),
	}
	return expand(opts.CustomTemplate, DefaultChunkTemplate, vars, opts.CustomVariables)
}

// resolveRootMeta derives the root title, description and details.
// Precedence: explicit option > hero fields > plain front matter > site
// config > first heading (title only) > literal fallback.
func resolveRootMeta(opts RenderOptions) (title, description, details string) {
	var fm map[string]any
	var heading string
	if opts.RootDocument != nil {
		fm = opts.RootDocument.FrontMatter
		heading = opts.RootDocument.Heading
	}
	hero, _ := fm["hero"].(map[string]any)

	title = firstNonEmpty(
		opts.Title,
		stringField(hero, "name"),
		stringField(fm, "title"),
		opts.SiteTitle,
		heading,
		FallbackTitle,
	)
	description = firstNonEmpty(
		opts.Description,
		stringField(hero, "text"),
		stringField(fm, "description"),
		opts.SiteDescription,
	)
	details = firstNonEmpty(
		opts.Details,
		stringField(hero, "tagline"),
		stringField(fm, "details"),
	)
	return title, description, details
}

// expand fills the custom template verbatim when one is set. The built-in
// templates additionally get blank runs left by empty variables collapsed.
func expand(custom, builtin string, vars, overrides map[string]string) string {
	for k, v := range overrides {
		vars[k] = v
	}
	if custom != "" {
		return ExpandTemplate(custom, vars)
	}
	out := ExpandTemplate(builtin, vars)
	out = blankRunPattern.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out) + "\n"
}

func blockquote(s string) string {
	if s == "" {
		return ""
	}
	return "> " + s
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
