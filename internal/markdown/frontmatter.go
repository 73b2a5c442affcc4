// Package markdown prepares raw documentation sources for the llms renderer:
// front matter, LLM tag regions, HTML stripping, titles and token estimates.
package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontMatterPattern = regexp.MustCompile(`(?s)\A\x{FEFF}?---[ \t]*\r?\n(.*?\r?\n)?---[ \t]*(?:\r?\n|\z)`)

// ParseFrontMatter splits a leading YAML front matter block from src.
// It returns a nil map and the untouched source when there is none.
func ParseFrontMatter(src string) (map[string]any, string, error) {
	loc := frontMatterPattern.FindStringSubmatchIndex(src)
	if loc == nil {
		return nil, src, nil
	}

	body := src[loc[1]:]
	if loc[2] < 0 {
		return map[string]any{}, body, nil
	}

	fm := make(map[string]any)
	if err := yaml.Unmarshal([]byte(src[loc[2]:loc[3]]), &fm); err != nil {
		return nil, src, fmt.Errorf("failed to parse front matter: %w", err)
	}
	return fm, body, nil
}

// StringField returns a trimmed string value from front matter, or "".
func StringField(fm map[string]any, key string) string {
	if s, ok := fm[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
