package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/dirtree/internal/output"
)

func TestReportJoinsLines(t *testing.T) {
	report := output.Report([]string{"root/", "├── a.ts", "└── b.ts"})
	expected := "root/\n├── a.ts\n└── b.ts"
	if report != expected {
		t.Fatalf("expected %q, got %q", expected, report)
	}
}

// TestWriteReportFileRoundTrip verifies that the file sink stores exactly the
// bytes the stdout sink would have printed.
func TestWriteReportFileRoundTrip(t *testing.T) {
	report := output.Report([]string{"root/", "└── only.ts"})

	var standardOutput bytes.Buffer
	if writeError := output.WriteReport(&standardOutput, report); writeError != nil {
		t.Fatalf("writing to buffer: %v", writeError)
	}

	outputFilePath := filepath.Join(t.TempDir(), "tree.txt")
	var confirmation bytes.Buffer
	if writeError := output.WriteReportFile(outputFilePath, report, &confirmation); writeError != nil {
		t.Fatalf("writing file: %v", writeError)
	}

	storedBytes, readError := os.ReadFile(outputFilePath)
	if readError != nil {
		t.Fatalf("reading report file: %v", readError)
	}
	if !bytes.Equal(storedBytes, standardOutput.Bytes()) {
		t.Fatalf("file content %q differs from stdout content %q", storedBytes, standardOutput.Bytes())
	}
	if !strings.Contains(confirmation.String(), "Wrote tree to "+outputFilePath) {
		t.Fatalf("missing confirmation line, got %q", confirmation.String())
	}
}

func TestWriteReportFileFailure(t *testing.T) {
	missingDirectoryPath := filepath.Join(t.TempDir(), "missing", "tree.txt")
	var confirmation bytes.Buffer
	if writeError := output.WriteReportFile(missingDirectoryPath, "root/", &confirmation); writeError == nil {
		t.Fatalf("expected an error for an unwritable path")
	}
	if confirmation.Len() != 0 {
		t.Fatalf("expected no confirmation on failure, got %q", confirmation.String())
	}
}
