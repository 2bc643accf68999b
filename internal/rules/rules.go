// Package rules models the category rule table and the extension index
// derived from it.
//
// A Table is an ordered list of categories, each owning a set of file
// extensions and an optional list of filename prefixes. Order matters twice:
// prefix rules are tried in table order during classification, and when two
// categories claim the same extension the later entry wins the index slot.
// Shadowed claims are reported as Ambiguities so callers can surface them
// instead of silently dropping them.
package rules

import "strings"

// Category is one rule-table entry. Extensions are lowercase with no leading
// dot; Prefixes match against file stems.
type Category struct {
	Name       string
	Extensions []string
	Prefixes   []string
}

// Table is the ordered rule set plus the fallback category used when no rule
// applies.
type Table struct {
	Categories []Category
	Default    string
}

// Index maps a lowercase extension to the category that owns it.
type Index map[string]string

// Ambiguity records an extension claimed by more than one category. Kept is
// the category that won the index slot.
type Ambiguity struct {
	Extension string
	Kept      string
	Shadowed  string
}

// BuildIndex inverts the table into an extension lookup. When categories
// collide on an extension the last one processed wins.
func (t Table) BuildIndex() Index {
	idx := make(Index)
	for _, cat := range t.Categories {
		for _, ext := range cat.Extensions {
			idx[ext] = cat.Name
		}
	}
	return idx
}

// Ambiguities reports every extension that appears under more than one
// category, in table order of the shadowed entry.
func (t Table) Ambiguities() []Ambiguity {
	owner := make(map[string]string)
	var out []Ambiguity
	for _, cat := range t.Categories {
		for _, ext := range cat.Extensions {
			if prev, ok := owner[ext]; ok && prev != cat.Name {
				out = append(out, Ambiguity{Extension: ext, Kept: cat.Name, Shadowed: prev})
			}
			owner[ext] = cat.Name
		}
	}
	return out
}

// Names returns every category name in table order, with the default category
// appended when it is not already present.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.Categories)+1)
	seen := make(map[string]struct{}, len(t.Categories)+1)
	for _, cat := range t.Categories {
		if _, ok := seen[cat.Name]; ok {
			continue
		}
		seen[cat.Name] = struct{}{}
		names = append(names, cat.Name)
	}
	if def := strings.TrimSpace(t.Default); def != "" {
		if _, ok := seen[def]; !ok {
			names = append(names, def)
		}
	}
	return names
}

// IsCategory reports whether name is a category directory name, including the
// default category.
func (t Table) IsCategory(name string) bool {
	if name == t.Default && strings.TrimSpace(name) != "" {
		return true
	}
	for _, cat := range t.Categories {
		if cat.Name == name {
			return true
		}
	}
	return false
}
