package markdown

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	codeFencePattern  = regexp.MustCompile("^\\s*(```|~~~)")
	inlineCodePattern = regexp.MustCompile("`[^`\n]+`")
	autolinkPattern   = regexp.MustCompile(`^<(?:https?://|mailto:)[^>\s]*>$`)
	blankRunPattern   = regexp.MustCompile(`\n{3,}`)
)

// StripHTML removes HTML tags from markdown while keeping their text.
// Fenced code blocks, inline code spans and autolinks are left as written;
// the contents of <script> and <style> elements are dropped. Runs of blank
// lines left behind in prose are collapsed.
func StripHTML(src string) string {
	var b strings.Builder
	for _, seg := range splitFences(src) {
		if seg.code {
			b.WriteString(seg.text)
		} else {
			b.WriteString(blankRunPattern.ReplaceAllString(stripProse(seg.text), "\n\n"))
		}
	}
	return b.String()
}

// segment is a run of lines that is either fenced code, fences included, or
// prose.
type segment struct {
	text string
	code bool
}

// splitFences cuts src into prose and fenced code segments. Concatenating
// the segments gives back src.
func splitFences(src string) []segment {
	var segs []segment
	var cur strings.Builder
	flush := func(code bool) {
		if cur.Len() > 0 {
			segs = append(segs, segment{text: cur.String(), code: code})
			cur.Reset()
		}
	}

	inCode := false
	for _, line := range strings.SplitAfter(src, "\n") {
		if !codeFencePattern.MatchString(line) {
			cur.WriteString(line)
			continue
		}
		if !inCode {
			flush(false)
			cur.WriteString(line)
			inCode = true
			continue
		}
		cur.WriteString(line)
		flush(true)
		inCode = false
	}
	flush(inCode)
	return segs
}

// stripProse strips tags from text outside code fences, skipping inline code.
func stripProse(s string) string {
	var b strings.Builder
	last := 0
	for _, loc := range inlineCodePattern.FindAllStringIndex(s, -1) {
		b.WriteString(stripTags(s[last:loc[0]]))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(stripTags(s[last:]))
	return b.String()
}

func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Raw())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			if raw := z.Raw(); autolinkPattern.Match(raw) {
				b.Write(raw)
				continue
			}
			name, _ := z.TagName()
			if tt == html.StartTagToken && isRawTextElement(string(name)) {
				skip++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if isRawTextElement(string(name)) && skip > 0 {
				skip--
			}
		}
	}
}

func isRawTextElement(name string) bool {
	return name == "script" || name == "style"
}
