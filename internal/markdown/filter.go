package markdown

import (
	"regexp"
	"strings"
)

var llmTagPattern = regexp.MustCompile(`</?llm-(?:exclude|only)>\n?`)

// FilterForLLM prepares content for LLM outputs: <llm-exclude> regions are
// removed and <llm-only> tags are unwrapped, keeping their content. Tags
// written inside fenced code are content and stay as they are; a fence that
// sits inside an excluded region is dropped with it. An unclosed
// <llm-exclude> runs to the end of the page.
func FilterForLLM(src string) string {
	var b strings.Builder
	excluding := false
	for _, seg := range splitFences(src) {
		if seg.code {
			if !excluding {
				b.WriteString(seg.text)
			}
			continue
		}

		last := 0
		for _, loc := range llmTagPattern.FindAllStringIndex(seg.text, -1) {
			if !excluding {
				b.WriteString(seg.text[last:loc[0]])
			}
			last = loc[1]
			switch strings.TrimSuffix(seg.text[loc[0]:loc[1]], "\n") {
			case "<llm-exclude>":
				excluding = true
			case "</llm-exclude>":
				excluding = false
			}
		}
		if !excluding {
			b.WriteString(seg.text[last:])
		}
	}
	return b.String()
}
