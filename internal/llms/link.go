package llms

import (
	"path"
	"strings"
)

const defaultLinkExtension = ".md"

// GenerateLink builds the href for a page at logical path p.
//
//	GenerateLink("guide/intro.md", LinkOptions{Domain: "https://x.dev"})
//	// https://x.dev/guide/intro.md
func GenerateLink(p string, opts LinkOptions) string {
	p = strings.TrimPrefix(NormalizePath(p, ""), "/")
	base := strings.TrimSuffix(p, path.Ext(p))

	ext := ""
	if !opts.CleanURLs {
		ext = opts.Extension
		if ext == "" {
			ext = defaultLinkExtension
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
	}
	return opts.Domain + "/" + base + ext
}

// pageKey reduces a page path or a sidebar link to a comparable key:
// no leading slash, no extension, no hash or query, and "dir/index" or
// "dir/" folded into "dir".
func pageKey(link string) string {
	if i := strings.IndexAny(link, "#?"); i >= 0 {
		link = link[:i]
	}
	link = strings.Trim(NormalizePath(link, ""), "/")
	switch ext := path.Ext(link); ext {
	case ".md", ".html":
		link = strings.TrimSuffix(link, ext)
	}
	if link == "index" {
		return ""
	}
	return strings.TrimSuffix(link, "/index")
}
