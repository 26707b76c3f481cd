// Package store manages saved patch files on top of the menu persistence
// format: a flat directory of timestamped .json documents under the user
// config dir.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"synthmenu/menu"
)

// PatchInfo represents a saved patch file (for listing)
type PatchInfo struct {
	Filename  string
	Name      string // parsed from filename (empty if unnamed)
	Timestamp time.Time
}

// Dir returns the patches directory path
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "synthmenu", "patches"), nil
}

// List returns saved patches in the default directory, newest first
func List() ([]PatchInfo, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return ListDir(dir)
}

// ListDir returns saved patches in dir, newest first
func ListDir(dir string) ([]PatchInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []PatchInfo{}, nil
		}
		return nil, err
	}

	var patches []PatchInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, ok := parseFilename(entry.Name())
		if !ok {
			continue
		}
		patches = append(patches, info)
	}

	// Sort by timestamp, newest first
	sort.Slice(patches, func(i, j int) bool {
		return patches[i].Timestamp.After(patches[j].Timestamp)
	})

	return patches, nil
}

// parseFilename reads "2006-01-02_15-04-05.json" or
// "2006-01-02_15-04-05_name.json"
func parseFilename(filename string) (PatchInfo, bool) {
	if !strings.HasSuffix(filename, ".json") {
		return PatchInfo{}, false
	}
	base := strings.TrimSuffix(filename, ".json")
	if len(base) < 19 {
		return PatchInfo{}, false
	}

	ts, err := time.Parse("2006-01-02_15-04-05", base[:19])
	if err != nil {
		// Not a timestamped file, skip
		return PatchInfo{}, false
	}

	name := ""
	if len(base) > 20 && base[19] == '_' {
		name = base[20:]
	}
	return PatchInfo{Filename: filename, Name: name, Timestamp: ts}, true
}

// Save writes the menu's document to the default directory
func Save(m *menu.Menu, name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return SaveTo(dir, m, name)
}

// SaveTo writes the menu's document to dir with a timestamped filename,
// optionally tagged with a sanitized patch name
func SaveTo(dir string, m *menu.Menu, name string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := time.Now().Format("2006-01-02_15-04-05")
	if safe := sanitizeFilename(name); safe != "" {
		filename += "_" + safe
	}
	filename += ".json"

	if !m.WriteFile(filepath.Join(dir, filename)) {
		return "", fmt.Errorf("write patch %s failed", filename)
	}
	return filename, nil
}

// Load reads a patch from the default directory (most recent if filename
// is empty)
func Load(m *menu.Menu, filename string) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return LoadFrom(dir, m, filename)
}

// LoadFrom reads a patch from dir into the menu
func LoadFrom(dir string, m *menu.Menu, filename string) error {
	if filename == "" {
		patches, err := ListDir(dir)
		if err != nil || len(patches) == 0 {
			return fmt.Errorf("no patches found in %s", dir)
		}
		filename = patches[0].Filename // newest first
	}

	if !m.ReadFile(filepath.Join(dir, filename)) {
		return fmt.Errorf("read patch %s failed", filename)
	}
	return nil
}

// Delete removes a patch file from the default directory
func Delete(filename string) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(dir, filename))
}

// Rename changes the name part of a patch filename, keeping its timestamp
func Rename(dir, oldFilename, newName string) error {
	base := strings.TrimSuffix(oldFilename, ".json")
	if len(base) < 19 {
		return fmt.Errorf("invalid patch filename")
	}

	newFilename := base[:19]
	if safe := sanitizeFilename(newName); safe != "" {
		newFilename += "_" + safe
	}
	newFilename += ".json"

	return os.Rename(filepath.Join(dir, oldFilename), filepath.Join(dir, newFilename))
}

// sanitizeFilename removes/replaces characters that are problematic in
// filenames
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	name = strings.ReplaceAll(name, ":", "-")
	for _, c := range []string{"*", "?", "\"", "<", ">", "|"} {
		name = strings.ReplaceAll(name, c, "")
	}
	return name
}
