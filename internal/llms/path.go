package llms

import (
	"path"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizePath returns p relative to root with every separator rewritten
// to "/". Relative paths are taken to be relative to root already, which
// makes the function idempotent. Paths outside root come back "../"-prefixed.
func NormalizePath(p, root string) string {
	if filepath.IsAbs(p) && root != "" {
		absRoot := root
		if !filepath.IsAbs(absRoot) {
			if abs, err := filepath.Abs(absRoot); err == nil {
				absRoot = abs
			}
		}
		if rel, err := filepath.Rel(absRoot, p); err == nil {
			p = rel
		}
	}
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}

// splitDir returns the directory segments of a normalized file path.
// "guide/advanced/x.md" yields ["guide", "advanced"]; "x.md" yields nil.
func splitDir(p string) []string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" || dir == "" {
		return nil
	}
	return strings.Split(strings.Trim(dir, "/"), "/")
}

// parentDir returns the parent of a chunk dirPath, or "" at the top.
func parentDir(dirPath string) string {
	if dirPath == "" {
		return ""
	}
	parent := path.Dir(dirPath)
	if parent == "." || parent == "/" {
		return ""
	}
	return parent
}

// depthLevel returns 1 for the root and segment count + 1 otherwise.
func depthLevel(dirPath string) int {
	if dirPath == "" {
		return 1
	}
	return len(strings.Split(dirPath, "/")) + 1
}

// DirectoryTitle returns the last segment of dirPath with its first
// character upper-cased, e.g. "guide/advanced" -> "Advanced".
func DirectoryTitle(dirPath string) string {
	return capitalize(path.Base(dirPath))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ChunkOutputPath returns the slash path of the index file for a chunk:
// "llms.txt" for the root, "{dirPath}/llms.txt" otherwise.
func ChunkOutputPath(dirPath string) string {
	if dirPath == "" {
		return "llms.txt"
	}
	return dirPath + "/llms.txt"
}
