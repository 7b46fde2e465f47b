package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pakhi-lang/pakhi/pkg/driver"
)

func TestLoadManifestMissingIsNotAnError(t *testing.T) {
	m, err := driver.LoadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m != nil {
		t.Fatalf("expected nil manifest, got %#v", m)
	}
}

func TestLoadManifestParsesEntryLibraryPathsAndPlatform(t *testing.T) {
	dir := t.TempDir()
	yaml := "entry: main.pakhi\nlibrary_paths:\n  - libs\nplatform: windows\n"
	if err := os.WriteFile(filepath.Join(dir, "pakhi.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := driver.LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m == nil {
		t.Fatal("expected a manifest, got nil")
	}
	if m.Platform != "windows" {
		t.Fatalf("Platform = %q, want %q", m.Platform, "windows")
	}
	entry, err := m.ResolveEntry()
	if err != nil {
		t.Fatalf("ResolveEntry: %v", err)
	}
	if entry != filepath.Join(dir, "main.pakhi") {
		t.Fatalf("entry = %q", entry)
	}
}
