package builder

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	blogPattern = "blog/**"
	teamPattern = "team.md"
)

// ignorePatterns returns the doublestar globs excluded from discovery.
func (b *Builder) ignorePatterns() ([]string, error) {
	patterns := append([]string(nil), b.cfg.IgnoreFiles...)
	if b.cfg.ExcludeBlog {
		patterns = append(patterns, blogPattern)
	}
	if b.cfg.ExcludeTeam {
		patterns = append(patterns, teamPattern)
	}

	for i, p := range patterns {
		p = strings.TrimPrefix(filepath.ToSlash(p), "./")
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
		patterns[i] = p
	}
	return patterns, nil
}

// discover returns the slash paths, relative to docsDir, of every markdown
// file that is not ignored. node_modules, dot directories and outDir are
// never entered.
func discover(docsDir, outDir string, patterns []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(docsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if p == docsDir {
				return nil
			}
			name := d.Name()
			if name == "node_modules" || strings.HasPrefix(name, ".") || p == outDir {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}

		rel, err := filepath.Rel(docsDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		for _, pattern := range patterns {
			// Patterns were validated up front.
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return nil
			}
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", docsDir, err)
	}

	sort.Strings(files)
	return files, nil
}
