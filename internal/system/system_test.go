package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	for i := 0; i < 2; i++ {
		if err := EnsureDir(dir); err != nil {
			t.Fatalf("EnsureDir call %d failed: %v", i+1, err)
		}
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory", dir)
	}
}

func TestEnsureDirOverFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := EnsureDir(file); err == nil {
		t.Error("Expected error when a file occupies the directory path")
	}
}

func TestIsSceneFile(t *testing.T) {
	tests := map[string]bool{
		"scene.json":  true,
		"scene.JSON":  true,
		"scene.yaml":  true,
		"scene.yml":   true,
		"scene.txt":   false,
		"scene.json~": false,
		"README.md":   false,
	}

	for name, want := range tests {
		if got := IsSceneFile(name); got != want {
			t.Errorf("IsSceneFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestFindLatestScene(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		filepath.Join(dir, "kazakh_scene.json"),
		filepath.Join(dir, "harbor.yaml"),
		filepath.Join(dir, "notes.txt"),
		filepath.Join(dir, "sunset.yml"),
	}

	base := time.Now().Add(-24 * time.Hour)
	for i, f := range files {
		if err := os.WriteFile(f, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		modTime := base.Add(time.Duration(i) * time.Hour)
		if err := os.Chtimes(f, modTime, modTime); err != nil {
			t.Fatal(err)
		}
	}

	// Текстовый файл новее всех, но не является сценой
	newest := base.Add(10 * time.Hour)
	if err := os.Chtimes(files[2], newest, newest); err != nil {
		t.Fatal(err)
	}

	latest, err := FindLatestScene(dir)
	if err != nil {
		t.Fatalf("FindLatestScene failed: %v", err)
	}

	if latest != files[3] {
		t.Errorf("Expected latest to be %s, got %s", files[3], latest)
	}
}

func TestFindLatestSceneEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := FindLatestScene(dir); err == nil {
		t.Error("Expected error for directory without scene files")
	}
}
