package llms

import (
	"fmt"
	"strings"
)

const (
	rootNavigationTitle     = "Documentation Overview"
	parentLinkDescription   = "Parent documentation section"
	indexFileName           = "llms.txt"
	navigationHeading       = "## Navigation"
	directoryLinkDescFormat = "%s documentation"
)

// IndexLink returns the href of the llms.txt file for dirPath.
func IndexLink(dirPath, domain string) string {
	if dirPath == "" {
		return domain + "/" + indexFileName
	}
	return domain + "/" + dirPath + "/" + indexFileName
}

// RenderNavigation renders the parent, sibling and child links of a chunk as
// a Markdown bullet list. It returns "" when there is nothing to link to.
func RenderNavigation(dirPath, parentPath string, siblings, children []string, domain string) string {
	var lines []string

	if dirPath != "" && parentPath != dirPath {
		title := rootNavigationTitle
		if parentPath != "" {
			title = DirectoryTitle(parentPath)
		}
		lines = append(lines, navLine(title, IndexLink(parentPath, domain), parentLinkDescription))
	}

	for _, sibling := range siblings {
		title := DirectoryTitle(sibling)
		lines = append(lines, navLine(title, IndexLink(sibling, domain), fmt.Sprintf(directoryLinkDescFormat, title)))
	}

	for _, child := range children {
		title := DirectoryTitle(child)
		lines = append(lines, navLine(title, IndexLink(child, domain), fmt.Sprintf(directoryLinkDescFormat, title)))
	}

	return strings.Join(lines, "\n")
}

// Navigation renders the navigation block for c.
func (c DirectoryChunk) Navigation(domain string) string {
	return RenderNavigation(c.DirPath, c.ParentPath, c.SiblingPaths, c.ChildPaths, domain)
}

func navLine(title, href, description string) string {
	return fmt.Sprintf("- [%s](%s): %s", title, href, description)
}
