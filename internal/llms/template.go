package llms

import (
	"regexp"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}\s]+)\}`)

// ExpandTemplate replaces every {name} in tmpl with vars[name]. A name is any
// run of characters other than braces and whitespace, so {api-version} is a
// placeholder. Names missing from vars expand to "". Braces that do not form
// a placeholder are left untouched.
func ExpandTemplate(tmpl string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		return vars[m[1:len(m)-1]]
	})
}

// TemplatePlaceholders returns the distinct placeholder names used in tmpl in
// order of first appearance.
func TemplatePlaceholders(tmpl string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
