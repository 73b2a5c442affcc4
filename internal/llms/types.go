package llms

import (
	"encoding/json"
)

// Document is one processed documentation page.
type Document struct {
	// Title is the display title. Never empty once prepared.
	Title string `json:"title"`

	// Heading is the text of the first level-1 heading of the body, if any.
	Heading string `json:"heading,omitempty"`

	// Path is the logical, slash-separated path the page is served at,
	// relative to the docs root (e.g. "guide/intro.md").
	Path string `json:"path"`

	// SourcePath is the file the page was read from. When set, chunking uses
	// it instead of Path to place the page in the directory hierarchy.
	SourcePath string `json:"source_path,omitempty"`

	// Description is an optional one-line summary shown next to TOC links.
	Description string `json:"description,omitempty"`

	// FrontMatter holds the parsed front matter of the page, if any.
	FrontMatter map[string]any `json:"front_matter,omitempty"`

	// Body is the page content with front matter removed.
	Body string `json:"-"`
}

// chunkPath is the path used to place a document in the directory hierarchy.
func (d Document) chunkPath() string {
	if d.SourcePath != "" {
		return d.SourcePath
	}
	return d.Path
}

// DirectoryChunk groups the documents found under one directory prefix.
type DirectoryChunk struct {
	// DirPath is "" for the root, otherwise a slash-joined relative path
	// without a trailing slash.
	DirPath string `json:"dir_path"`

	// Files are the documents of this directory and all its descendants,
	// truncated at the configured depth.
	Files []Document `json:"files"`

	// DepthLevel is 1 for the root, otherwise segment count + 1.
	DepthLevel int `json:"depth_level"`

	ParentPath   string   `json:"parent_path"`
	SiblingPaths []string `json:"sibling_paths,omitempty"`
	ChildPaths   []string `json:"child_paths,omitempty"`
}

// IsRoot reports whether c is the root chunk.
func (c DirectoryChunk) IsRoot() bool {
	return c.DirPath == ""
}

// String returns a JSON representation of the chunk for debugging.
func (c DirectoryChunk) String() string {
	type summary struct {
		DirPath      string   `json:"dir_path"`
		Files        []string `json:"files"`
		DepthLevel   int      `json:"depth_level"`
		ParentPath   string   `json:"parent_path"`
		SiblingPaths []string `json:"sibling_paths,omitempty"`
		ChildPaths   []string `json:"child_paths,omitempty"`
	}
	s := summary{
		DirPath:      c.DirPath,
		DepthLevel:   c.DepthLevel,
		ParentPath:   c.ParentPath,
		SiblingPaths: c.SiblingPaths,
		ChildPaths:   c.ChildPaths,
	}
	for _, f := range c.Files {
		s.Files = append(s.Files, f.Path)
	}
	b, _ := json.MarshalIndent(s, "", "  ")
	return string(b)
}

// SidebarNode is one entry of an externally supplied sidebar tree.
type SidebarNode struct {
	Text  string        `json:"text" yaml:"text"`
	Link  string        `json:"link,omitempty" yaml:"link,omitempty"`
	Items []SidebarNode `json:"items,omitempty" yaml:"items,omitempty"`
}

// LinkOptions controls how links to pages and index files are generated.
type LinkOptions struct {
	// Domain is prepended to every link. No trailing slash.
	Domain string

	// Extension replaces the page extension in links (default ".md").
	Extension string

	// CleanURLs drops the extension entirely.
	CleanURLs bool
}

// ChunkConfig controls directory chunking.
type ChunkConfig struct {
	// Depth is the number of directory levels that get their own chunk.
	// Values below 1 behave as 1.
	Depth int

	// MinFilesPerChunk is the minimum file count for a non-root chunk.
	// Values below 1 fall back to the default of 2.
	MinFilesPerChunk int
}

// DefaultChunkConfig returns the default chunking configuration.
func DefaultChunkConfig() ChunkConfig {
	return ChunkConfig{
		Depth:            1,
		MinFilesPerChunk: 2,
	}
}

// RenderOptions holds the global settings used to render index files.
type RenderOptions struct {
	LinkOptions

	// Explicit root overrides. Empty means "derive".
	Title       string
	Description string
	Details     string

	// Site-level fallbacks for the root title and description.
	SiteTitle       string
	SiteDescription string

	// RootDocument is the designated root page (usually index.md) whose
	// front matter feeds the root title chain. May be nil.
	RootDocument *Document

	// CustomTemplate replaces the built-in templates when non-empty.
	CustomTemplate string

	// CustomVariables always win over computed template variables.
	CustomVariables map[string]string

	IncludeNavigation bool

	Sidebar []SidebarNode
}
