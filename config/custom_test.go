package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomMissingFile(t *testing.T) {
	c := LoadCustom(filepath.Join(t.TempDir(), "custom-commands.json"))
	if c.Footer == "" {
		t.Error("defaults should apply when file is missing")
	}
	if !c.Support.Enabled {
		t.Error("support should be enabled by default")
	}
}

func TestLoadCustomPartialMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom-commands.json")
	data := `{"footer": "My Stream | Soli Deo Gloria", "testimony": {"enabled": true, "title": "How He Found Me"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c := LoadCustom(path)
	if c.Footer != "My Stream | Soli Deo Gloria" {
		t.Errorf("Footer = %q", c.Footer)
	}
	if !c.Testimony.Enabled || c.Testimony.Title != "How He Found Me" {
		t.Errorf("testimony not merged: %+v", c.Testimony)
	}
	// Sections the file doesn't touch keep their defaults.
	if c.Prayer.PublicChannel != "#prayer-requests" {
		t.Errorf("Prayer.PublicChannel = %q, want default", c.Prayer.PublicChannel)
	}
}

func TestLoadCustomMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom-commands.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c := LoadCustom(path)
	if c == nil || c.Footer == "" {
		t.Error("malformed file should fall back to defaults")
	}
}
