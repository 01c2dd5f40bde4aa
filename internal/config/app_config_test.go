package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/dirtree/internal/utils"
)

// writeConfigFile stores yaml content at path, creating parent directories.
func writeConfigFile(t *testing.T, path string, content string) {
	t.Helper()
	if mkdirError := os.MkdirAll(filepath.Dir(path), 0o755); mkdirError != nil {
		t.Fatalf("creating configuration directory: %v", mkdirError)
	}
	if writeError := os.WriteFile(path, []byte(content), 0o644); writeError != nil {
		t.Fatalf("writing configuration: %v", writeError)
	}
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	homeDirectory := t.TempDir()
	workingDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)

	globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
	writeConfigFile(t, globalPath, "tree:\n  max_depth: 3\n  ascii: true\n  exclude:\n    dirs:\n      - vendor\n")

	localPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	writeConfigFile(t, localPath, "tree:\n  max_depth: 5\n  only:\n    - .ts\n")

	configuration, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		t.Fatalf("loading configuration: %v", loadError)
	}

	if configuration.Tree.MaxDepth == nil || *configuration.Tree.MaxDepth != 5 {
		t.Fatalf("expected local max_depth 5, got %v", configuration.Tree.MaxDepth)
	}
	if configuration.Tree.ASCII == nil || !*configuration.Tree.ASCII {
		t.Fatalf("expected global ascii true to survive, got %v", configuration.Tree.ASCII)
	}
	if len(configuration.Tree.Only) != 1 || configuration.Tree.Only[0] != ".ts" {
		t.Fatalf("expected only list [.ts], got %v", configuration.Tree.Only)
	}
	if len(configuration.Tree.Exclude.Directories) != 1 || configuration.Tree.Exclude.Directories[0] != "vendor" {
		t.Fatalf("expected exclude dirs [vendor], got %v", configuration.Tree.Exclude.Directories)
	}
}

func TestLoadApplicationConfigurationWithoutFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	configuration, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: t.TempDir()})
	if loadError != nil {
		t.Fatalf("loading configuration: %v", loadError)
	}
	if configuration.Tree.MaxDepth != nil {
		t.Fatalf("expected unset max_depth, got %v", configuration.Tree.MaxDepth)
	}
	if configuration.Tree.Output != "" {
		t.Fatalf("expected empty output, got %q", configuration.Tree.Output)
	}
}

func TestLoadConfigurationFromInvalidFile(t *testing.T) {
	workingDirectory := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	localPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	writeConfigFile(t, localPath, "tree: [\n")

	if _, loadError := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory}); loadError == nil {
		t.Fatalf("expected an error for malformed configuration")
	}
}

func TestMergeKeepsReceiverWhenOverrideUnset(t *testing.T) {
	depth := 4
	asciiEnabled := true
	base := ApplicationConfiguration{
		Tree: TreeConfiguration{
			MaxDepth: &depth,
			ASCII:    &asciiEnabled,
			Output:   "tree.txt",
		},
	}

	merged := base.Merge(ApplicationConfiguration{})
	if merged.Tree.MaxDepth == nil || *merged.Tree.MaxDepth != depth {
		t.Fatalf("expected max_depth %d, got %v", depth, merged.Tree.MaxDepth)
	}
	if merged.Tree.ASCII == nil || !*merged.Tree.ASCII {
		t.Fatalf("expected ascii true, got %v", merged.Tree.ASCII)
	}
	if merged.Tree.Output != "tree.txt" {
		t.Fatalf("expected output tree.txt, got %q", merged.Tree.Output)
	}
}
