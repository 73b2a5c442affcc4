package llms

import (
	"path/filepath"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"absolute under root", filepath.Join(root, "guide", "intro.md"), "guide/intro.md"},
		{"already relative", "guide/intro.md", "guide/intro.md"},
		{"backslashes", `guide\advanced\x.md`, "guide/advanced/x.md"},
		{"outside root", filepath.Join(filepath.Dir(root), "other.md"), "../other.md"},
		{"root file", filepath.Join(root, "index.md"), "index.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizePath(tt.input, root)
			if result != tt.expected {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
			if again := NormalizePath(result, root); again != result {
				t.Errorf("NormalizePath is not idempotent: %q -> %q", result, again)
			}
		})
	}
}

func TestDirectoryTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"guide", "Guide"},
		{"guide/advanced", "Advanced"},
		{"api-reference", "Api-reference"},
		{"élan", "Élan"},
		{"2024", "2024"},
	}
	for _, tt := range tests {
		if got := DirectoryTitle(tt.input); got != tt.expected {
			t.Errorf("DirectoryTitle(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestChunkOutputPath(t *testing.T) {
	if got := ChunkOutputPath(""); got != "llms.txt" {
		t.Errorf("root output = %q", got)
	}
	if got := ChunkOutputPath("guide/advanced"); got != "guide/advanced/llms.txt" {
		t.Errorf("nested output = %q", got)
	}
}

func TestGenerateLink(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		opts     LinkOptions
		expected string
	}{
		{"default extension", "guide/intro.md", LinkOptions{}, "/guide/intro.md"},
		{"domain", "guide/intro.md", LinkOptions{Domain: "https://docs.dev"}, "https://docs.dev/guide/intro.md"},
		{"custom extension", "guide/intro.md", LinkOptions{Extension: ".html"}, "/guide/intro.html"},
		{"extension without dot", "guide/intro.md", LinkOptions{Extension: "txt"}, "/guide/intro.txt"},
		{"clean urls", "guide/intro.md", LinkOptions{CleanURLs: true, Extension: ".html"}, "/guide/intro"},
		{"leading slash", "/index.md", LinkOptions{}, "/index.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateLink(tt.path, tt.opts); got != tt.expected {
				t.Errorf("GenerateLink(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestPageKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/guide/intro", "guide/intro"},
		{"/guide/intro.md", "guide/intro"},
		{"guide/intro.html#setup", "guide/intro"},
		{"/guide/", "guide"},
		{"/guide/index", "guide"},
		{"guide.md", "guide"},
		{"/", ""},
		{"index.md", ""},
	}
	for _, tt := range tests {
		if got := pageKey(tt.input); got != tt.expected {
			t.Errorf("pageKey(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
