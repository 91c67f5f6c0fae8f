package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileIsEmpty(t *testing.T) {
	got, err := LoadConfig(filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got != (ConvertDefaults{}) {
		t.Errorf("missing file should yield zero defaults, got %+v", got)
	}
}

func TestLoadConfigConvertSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `
[convert]
dir = "src"
prefix = "build/"
multi = "both"
suppress = true
compact = true
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := ConvertDefaults{
		Dir:      "src",
		Prefix:   "build/",
		Multi:    "both",
		Suppress: true,
		Compact:  true,
		Format:   "json",
	}
	if got != want {
		t.Errorf("LoadConfig = %+v, want %+v", got, want)
	}
}

func TestLoadConfigWithoutConvertSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("[other]\nx = 1\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got != (ConvertDefaults{}) {
		t.Errorf("missing section should yield zero defaults, got %+v", got)
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("[convert\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted invalid TOML")
	}
}
