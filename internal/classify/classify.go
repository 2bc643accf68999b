package classify

import (
	"strings"

	"tidy/internal/rules"
	"tidy/internal/scan"
)

// File returns the category for a single file. Prefix rules are checked in
// table order against the file stem; the first category with a matching
// prefix wins regardless of extension. Otherwise the extension index decides,
// and unmapped extensions land in the table default.
func File(f scan.File, table rules.Table, idx rules.Index) string {
	for _, cat := range table.Categories {
		for _, prefix := range cat.Prefixes {
			if prefix != "" && strings.HasPrefix(f.Stem, prefix) {
				return cat.Name
			}
		}
	}
	if cat, ok := idx[f.Ext]; ok {
		return cat
	}
	return table.Default
}

// Folder returns the category for a folder based on its direct child files.
// A category must hold a strict majority of all children, counting files
// with unmapped extensions toward the total but toward no category. Empty
// folders and ties resolve to the table default.
func Folder(folder scan.Folder, table rules.Table, idx rules.Index) string {
	total := len(folder.Files)
	if total == 0 {
		return table.Default
	}

	counts := make(map[string]int)
	for _, f := range folder.Files {
		if cat, ok := idx[f.Ext]; ok {
			counts[cat]++
		}
	}

	// Iterate in table order so equal counts resolve deterministically.
	best := ""
	bestCount := 0
	for _, cat := range table.Categories {
		if n := counts[cat.Name]; n > bestCount {
			best = cat.Name
			bestCount = n
		}
	}

	if bestCount*2 > total {
		return best
	}
	return table.Default
}
