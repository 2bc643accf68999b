package rules_test

import (
	"testing"

	"tidy/internal/rules"
)

func sampleTable() rules.Table {
	return rules.Table{
		Categories: []rules.Category{
			{Name: "Audio", Extensions: []string{"mp3", "wav"}},
			{Name: "Documents", Extensions: []string{"pdf", "txt"}},
			{Name: "Photos", Prefixes: []string{"IMG_"}},
		},
		Default: "Others",
	}
}

func TestBuildIndexInvertsTable(t *testing.T) {
	idx := sampleTable().BuildIndex()

	want := map[string]string{
		"mp3": "Audio",
		"wav": "Audio",
		"pdf": "Documents",
		"txt": "Documents",
	}
	if len(idx) != len(want) {
		t.Fatalf("index size: got %d, want %d", len(idx), len(want))
	}
	for ext, cat := range want {
		if got := idx[ext]; got != cat {
			t.Errorf("idx[%q] = %q, want %q", ext, got, cat)
		}
	}
}

func TestBuildIndexLastWriteWins(t *testing.T) {
	table := rules.Table{
		Categories: []rules.Category{
			{Name: "Data", Extensions: []string{"csv", "xml"}},
			{Name: "Documents", Extensions: []string{"csv"}},
		},
		Default: "Others",
	}

	idx := table.BuildIndex()
	if got := idx["csv"]; got != "Documents" {
		t.Fatalf("idx[csv] = %q, want Documents (later entry wins)", got)
	}

	ambs := table.Ambiguities()
	if len(ambs) != 1 {
		t.Fatalf("ambiguities: got %d, want 1", len(ambs))
	}
	amb := ambs[0]
	if amb.Extension != "csv" || amb.Kept != "Documents" || amb.Shadowed != "Data" {
		t.Fatalf("unexpected ambiguity: %+v", amb)
	}
}

func TestAmbiguitiesEmptyForCleanTable(t *testing.T) {
	if ambs := sampleTable().Ambiguities(); len(ambs) != 0 {
		t.Fatalf("expected no ambiguities, got %v", ambs)
	}
}

func TestNamesIncludeDefault(t *testing.T) {
	names := sampleTable().Names()
	want := []string{"Audio", "Documents", "Photos", "Others"}
	if len(names) != len(want) {
		t.Fatalf("names: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestNamesDoesNotDuplicateDefault(t *testing.T) {
	table := rules.Table{
		Categories: []rules.Category{
			{Name: "Others", Extensions: nil},
			{Name: "Audio", Extensions: []string{"mp3"}},
		},
		Default: "Others",
	}
	names := table.Names()
	if len(names) != 2 {
		t.Fatalf("names: got %v, want [Others Audio]", names)
	}
}

func TestIsCategory(t *testing.T) {
	table := sampleTable()
	for _, name := range []string{"Audio", "Documents", "Photos", "Others"} {
		if !table.IsCategory(name) {
			t.Errorf("IsCategory(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"audio", "Downloads", ""} {
		if table.IsCategory(name) {
			t.Errorf("IsCategory(%q) = true, want false", name)
		}
	}
}
