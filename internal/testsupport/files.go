package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes text to path, creating parent directories.
func WriteFile(t testing.TB, path, text string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteCorpus writes one <period>.txt file per entry of docs into dir.
func WriteCorpus(t testing.TB, dir string, docs map[string]string) {
	t.Helper()
	for key, text := range docs {
		WriteFile(t, filepath.Join(dir, key+".txt"), text)
	}
}

func ensureDir(t testing.TB, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}
