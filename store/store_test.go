package store

import (
	"testing"
	"time"

	"synthmenu/menu"
)

func testMenu() *menu.Menu {
	return menu.NewMenu("Synth", []menu.Item{
		menu.NewNumber("Level", menu.NumberConfig{Default: 0.5}),
	})
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	m := testMenu()
	m.Find("Level").SetValue(0.25)

	filename, err := SaveTo(dir, m, "warm pad")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if want := "_warm-pad.json"; len(filename) < 19 || filename[19:] != want {
		t.Errorf("expected sanitized name suffix %q, got %q", want, filename)
	}

	m2 := testMenu()
	if err := LoadFrom(dir, m2, filename); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := m2.Find("Level").Value().(float64); got != 0.25 {
		t.Errorf("expected level restored to 0.25, got %f", got)
	}
}

func TestLoadNewestByDefault(t *testing.T) {
	dir := t.TempDir()
	m := testMenu()

	m.Find("Level").SetValue(0.1)
	if _, err := SaveTo(dir, m, "old"); err != nil {
		t.Fatal(err)
	}
	// Distinct timestamps: filenames have second resolution.
	time.Sleep(1100 * time.Millisecond)
	m.Find("Level").SetValue(0.9)
	if _, err := SaveTo(dir, m, "new"); err != nil {
		t.Fatal(err)
	}

	patches, err := ListDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(patches) != 2 || patches[0].Name != "new" {
		t.Fatalf("expected the newest patch first, got %+v", patches)
	}

	m2 := testMenu()
	if err := LoadFrom(dir, m2, ""); err != nil {
		t.Fatal(err)
	}
	if got := m2.Find("Level").Value().(float64); got != 0.9 {
		t.Errorf("expected the newest patch loaded, got %f", got)
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	patches, err := ListDir(dir)
	if err != nil || len(patches) != 0 {
		t.Fatalf("expected an empty listing, got %v %v", patches, err)
	}

	if err := LoadFrom(dir, testMenu(), ""); err == nil {
		t.Error("expected an error loading from an empty directory")
	}
}

func TestParseFilename(t *testing.T) {
	tests := []struct {
		filename string
		ok       bool
		name     string
	}{
		{"2026-08-30_12-00-00.json", true, ""},
		{"2026-08-30_12-00-00_lead.json", true, "lead"},
		{"notes.txt", false, ""},
		{"readme.json", false, ""},
	}
	for _, tt := range tests {
		info, ok := parseFilename(tt.filename)
		if ok != tt.ok {
			t.Errorf("%s: expected ok=%v", tt.filename, tt.ok)
			continue
		}
		if ok && info.Name != tt.name {
			t.Errorf("%s: expected name %q, got %q", tt.filename, tt.name, info.Name)
		}
	}
}
