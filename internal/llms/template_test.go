package llms

import (
	"strings"
	"testing"
)

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     string
		vars     map[string]string
		expected string
	}{
		{"missing placeholder blanks", "# {title}\n\n{missing}", map[string]string{"title": "Foo"}, "# Foo\n\n"},
		{"repeated placeholder", "{a}-{a}", map[string]string{"a": "x"}, "x-x"},
		{"nil map", "[{title}]", nil, "[]"},
		{"literal braces kept", "func() { return {x} }", map[string]string{"x": "1"}, "func() { return 1 }"},
		{"non word placeholder kept", "{not a placeholder}", map[string]string{}, "{not a placeholder}"},
		{"dashed and dotted names", "{api-version}/{site.name}", map[string]string{"api-version": "v2", "site.name": "Acme"}, "v2/Acme"},
		{"empty braces kept", "{}", map[string]string{"": "x"}, "{}"},
		{"no placeholders", "plain text", map[string]string{"a": "b"}, "plain text"},
		{"value containing braces is not re-expanded", "{a}", map[string]string{"a": "{b}", "b": "nope"}, "{b}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandTemplate(tt.tmpl, tt.vars)
			if result != tt.expected {
				t.Errorf("ExpandTemplate(%q) = %q, want %q", tt.tmpl, result, tt.expected)
			}
		})
	}
}

func TestExpandTemplate_AllPlaceholdersFilled(t *testing.T) {
	for _, tmpl := range []string{DefaultRootTemplate, DefaultChunkTemplate} {
		vars := make(map[string]string)
		for _, name := range TemplatePlaceholders(tmpl) {
			vars[name] = "value-of-" + name
		}
		out := ExpandTemplate(tmpl, vars)
		for name := range vars {
			if strings.Contains(out, "{"+name+"}") {
				t.Errorf("placeholder {%s} left in output:\n%s", name, out)
			}
		}
	}
}

func TestExpandTemplate_EmptyMapKeepsLiteralText(t *testing.T) {
	out := ExpandTemplate(DefaultChunkTemplate, nil)
	want := placeholderPattern.ReplaceAllString(DefaultChunkTemplate, "")
	if out != want {
		t.Errorf("ExpandTemplate with empty map = %q, want %q", out, want)
	}
	if !strings.Contains(out, "## Documentation") {
		t.Errorf("literal heading lost: %q", out)
	}
}

func TestTemplatePlaceholders(t *testing.T) {
	got := TemplatePlaceholders("{title} {toc} {title} {x y}")
	if len(got) != 2 || got[0] != "title" || got[1] != "toc" {
		t.Errorf("TemplatePlaceholders = %v, want [title toc]", got)
	}
}
