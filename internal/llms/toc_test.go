package llms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTOC_Flat(t *testing.T) {
	docs := []Document{
		{Title: "Zeta", Path: "zeta.md"},
		{Title: "Alpha", Path: "guide/alpha.md", Description: "Start here"},
		{Title: "Beta", Path: "beta.md"},
	}
	want := "- [Beta](/beta.md)\n" +
		"- [Alpha](/guide/alpha.md): Start here\n" +
		"- [Zeta](/zeta.md)"
	assert.Equal(t, want, BuildTOC(docs, TOCOptions{}))
}

func TestBuildTOC_Empty(t *testing.T) {
	assert.Equal(t, "", BuildTOC(nil, TOCOptions{Sidebar: []SidebarNode{{Text: "x", Link: "/x"}}}))
}

func TestBuildTOC_Sidebar(t *testing.T) {
	docs := []Document{
		{Title: "Intro", Path: "guide/intro.md"},
		{Title: "Setup", Path: "guide/setup.md"},
		{Title: "Hooks", Path: "guide/advanced/hooks.md"},
		{Title: "Guide", Path: "guide.md"},
		{Title: "Changelog", Path: "changelog.md"},
		{Title: "API", Path: "api/index.md"},
	}
	sidebar := []SidebarNode{
		{
			Text: "Guide",
			Link: "/guide/",
			Items: []SidebarNode{
				{Text: "Setup", Link: "/guide/setup"},
				{Text: "Intro", Link: "/guide/intro.md"},
				{Text: "Advanced", Items: []SidebarNode{
					{Text: "Hooks", Link: "/guide/advanced/hooks"},
					{Text: "Missing", Link: "/guide/advanced/missing"},
				}},
				{Text: "Empty group", Items: []SidebarNode{{Text: "Nope", Link: "/nope"}}},
			},
		},
		{Text: "External", Items: []SidebarNode{{Text: "GitHub", Link: "https://github.com"}}},
		{Text: "Reference", Items: []SidebarNode{{Text: "Intro again", Link: "/guide/intro"}}},
	}

	want := "### Guide\n\n" +
		"- [Guide](/guide.md)\n" +
		"- [Setup](/guide/setup.md)\n" +
		"- [Intro](/guide/intro.md)\n" +
		"- Advanced\n" +
		"  - [Hooks](/guide/advanced/hooks.md)\n\n" +
		"### Other\n\n" +
		"- [API](/api/index.md)\n" +
		"- [Changelog](/changelog.md)"
	assert.Equal(t, want, BuildTOC(docs, TOCOptions{Sidebar: sidebar}))
}

func TestBuildTOC_SidebarTopLevelLinks(t *testing.T) {
	docs := []Document{
		{Title: "Home", Path: "home.md"},
		{Title: "About", Path: "about.md"},
	}
	sidebar := []SidebarNode{
		{Text: "About", Link: "/about"},
		{Text: "Home", Link: "/home"},
	}
	want := "- [About](/about.md)\n- [Home](/home.md)"
	assert.Equal(t, want, BuildTOC(docs, TOCOptions{Sidebar: sidebar}))
}

func TestBuildTOC_SidebarIsNotModified(t *testing.T) {
	sidebar := []SidebarNode{{Text: "Guide", Items: []SidebarNode{{Text: "A", Link: "/a"}}}}
	docs := []Document{{Title: "A", Path: "a.md"}}

	first := BuildTOC(docs, TOCOptions{Sidebar: sidebar})
	second := BuildTOC(docs, TOCOptions{Sidebar: sidebar})
	assert.Equal(t, first, second)
	assert.Equal(t, []SidebarNode{{Text: "Guide", Items: []SidebarNode{{Text: "A", Link: "/a"}}}}, sidebar)
}
