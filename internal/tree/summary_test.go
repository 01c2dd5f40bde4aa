package tree_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/dirtree/internal/tree"
)

// makeFileWithSize creates a file holding byteCount bytes.
func makeFileWithSize(t *testing.T, directoryPath string, fileName string, byteCount int) {
	t.Helper()
	if writeError := os.WriteFile(filepath.Join(directoryPath, fileName), make([]byte, byteCount), 0o644); writeError != nil {
		t.Fatalf("writing %s: %v", fileName, writeError)
	}
}

// TestSubtreeSize verifies that the summary walk sums every file, including
// files the display filters would hide.
func TestSubtreeSize(t *testing.T) {
	rootPath := t.TempDir()
	dependenciesPath := makeDirectory(t, rootPath, "node_modules")

	makeFileWithSize(t, rootPath, "kept.ts", 100)
	makeFileWithSize(t, rootPath, "noisy.log", 50)
	makeFileWithSize(t, dependenciesPath, "module.js", 25)

	totalBytes := tree.SubtreeSize(rootPath)
	if totalBytes != 175 {
		t.Fatalf("expected 175 bytes, got %d", totalBytes)
	}
}

// TestSubtreeSizeMissingRoot verifies that an unvisitable root contributes
// zero bytes.
func TestSubtreeSizeMissingRoot(t *testing.T) {
	missingPath := filepath.Join(t.TempDir(), "does-not-exist")
	if totalBytes := tree.SubtreeSize(missingPath); totalBytes != 0 {
		t.Fatalf("expected 0 bytes, got %d", totalBytes)
	}
}
