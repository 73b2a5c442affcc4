package llms

import (
	"fmt"
	"sort"
	"strings"
)

const unmatchedSectionTitle = "Other"

// TOCOptions controls table-of-contents rendering.
type TOCOptions struct {
	LinkOptions

	// Sidebar orders and groups the documents when present.
	Sidebar []SidebarNode
}

// BuildTOC renders docs as a Markdown link list.
//
// Without a sidebar the list is flat and sorted by path. With a sidebar, each
// top-level section becomes a "###" heading, nested sections become indented
// bullets and documents are emitted in sidebar order. Documents the sidebar
// does not mention are listed afterwards, sorted by path, under "### Other".
// Each document is emitted at most once.
func BuildTOC(docs []Document, opts TOCOptions) string {
	if len(docs) == 0 {
		return ""
	}

	byKey := make(map[string]int, len(docs))
	for i, doc := range docs {
		key := pageKey(doc.Path)
		if _, ok := byKey[key]; !ok {
			byKey[key] = i
		}
	}

	w := &tocWriter{docs: docs, byKey: byKey, used: make(map[int]bool), opts: opts.LinkOptions}

	var sections []string
	var loose []string
	flushLoose := func() {
		if len(loose) > 0 {
			sections = append(sections, strings.Join(loose, "\n"))
			loose = nil
		}
	}

	for _, node := range opts.Sidebar {
		if len(node.Items) == 0 {
			if line, ok := w.link(node, 0); ok {
				loose = append(loose, line)
			}
			continue
		}
		lines := w.section(node)
		if len(lines) == 0 {
			continue
		}
		flushLoose()
		if node.Text != "" {
			sections = append(sections, "### "+node.Text+"\n\n"+strings.Join(lines, "\n"))
		} else {
			sections = append(sections, strings.Join(lines, "\n"))
		}
	}
	flushLoose()

	var rest []Document
	for i, doc := range docs {
		if !w.used[i] {
			rest = append(rest, doc)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Path < rest[j].Path })

	if len(rest) > 0 {
		lines := make([]string, 0, len(rest))
		for _, doc := range rest {
			lines = append(lines, tocLine(doc, 0, opts.LinkOptions))
		}
		if len(sections) > 0 {
			sections = append(sections, "### "+unmatchedSectionTitle+"\n\n"+strings.Join(lines, "\n"))
		} else {
			sections = append(sections, strings.Join(lines, "\n"))
		}
	}

	return strings.Join(sections, "\n\n")
}

// tocWriter walks a sidebar without retaining references into it.
type tocWriter struct {
	docs  []Document
	byKey map[string]int
	used  map[int]bool
	opts  LinkOptions
}

// section renders the items of a top-level sidebar section.
func (w *tocWriter) section(node SidebarNode) []string {
	var lines []string
	if line, ok := w.link(node, 0); ok {
		lines = append(lines, line)
	}
	for _, item := range node.Items {
		lines = append(lines, w.item(item, 0)...)
	}
	return lines
}

// item renders one nested sidebar node at the given indent.
func (w *tocWriter) item(node SidebarNode, indent int) []string {
	if len(node.Items) == 0 {
		if line, ok := w.link(node, indent); ok {
			return []string{line}
		}
		return nil
	}

	var children []string
	for _, child := range node.Items {
		children = append(children, w.item(child, indent+1)...)
	}

	head, ok := w.link(node, indent)
	if !ok {
		if len(children) == 0 {
			return nil
		}
		if node.Text == "" {
			return children
		}
		head = strings.Repeat("  ", indent) + "- " + node.Text
	}
	return append([]string{head}, children...)
}

// link renders the document a sidebar node points to, if it belongs to this
// TOC and has not been emitted yet.
func (w *tocWriter) link(node SidebarNode, indent int) (string, bool) {
	if node.Link == "" {
		return "", false
	}
	i, ok := w.byKey[pageKey(node.Link)]
	if !ok || w.used[i] {
		return "", false
	}
	w.used[i] = true
	return tocLine(w.docs[i], indent, w.opts), true
}

func tocLine(doc Document, indent int, opts LinkOptions) string {
	line := fmt.Sprintf("%s- [%s](%s)", strings.Repeat("  ", indent), doc.Title, GenerateLink(doc.Path, opts))
	if doc.Description != "" {
		line += ": " + doc.Description
	}
	return line
}
