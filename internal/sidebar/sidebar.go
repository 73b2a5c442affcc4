// Package sidebar loads the sidebar tree used to group table of contents
// entries. A sidebar comes either from configuration, as a list of nodes or a
// map of section prefix to list, or from a JavaScript function evaluated with
// goja.
package sidebar

import (
	"fmt"
	"sort"

	"github.com/itsmostafa/llmstxt/internal/llms"
	"gopkg.in/yaml.v3"
)

// Sidebar is a configured sidebar. Exactly one of Items and Sections is set
// for a non-empty sidebar.
type Sidebar struct {
	Items    []llms.SidebarNode
	Sections map[string][]llms.SidebarNode
}

// UnmarshalYAML accepts a sequence of nodes or a mapping of section keys to
// sequences of nodes.
func (s *Sidebar) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []llms.SidebarNode
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("failed to decode sidebar list: %w", err)
		}
		*s = Sidebar{Items: items}
	case yaml.MappingNode:
		var sections map[string][]llms.SidebarNode
		if err := value.Decode(&sections); err != nil {
			return fmt.Errorf("failed to decode sidebar sections: %w", err)
		}
		*s = Sidebar{Sections: sections}
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*s = Sidebar{}
			return nil
		}
		return fmt.Errorf("line %d: sidebar must be a list or a map, got %q", value.Line, value.Value)
	default:
		return fmt.Errorf("line %d: sidebar must be a list or a map", value.Line)
	}
	return nil
}

// Decode parses a YAML or JSON sidebar document.
func Decode(data []byte) (Sidebar, error) {
	var s Sidebar
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Sidebar{}, err
	}
	return s, nil
}

// IsZero reports whether the sidebar has no entries.
func (s Sidebar) IsZero() bool {
	return len(s.Items) == 0 && len(s.Sections) == 0
}

// Nodes returns the sidebar as a single list. Sections are concatenated in
// key order.
func (s Sidebar) Nodes() []llms.SidebarNode {
	if len(s.Sections) == 0 {
		return s.Items
	}

	keys := make([]string, 0, len(s.Sections))
	for k := range s.Sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var nodes []llms.SidebarNode
	for _, k := range keys {
		nodes = append(nodes, s.Sections[k]...)
	}
	return nodes
}

// shape returns the sidebar in the form it was configured.
func (s Sidebar) shape() any {
	if len(s.Sections) > 0 {
		return s.Sections
	}
	return s.Items
}
