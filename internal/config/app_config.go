// Package config loads optional application configuration files that supply
// defaults for the command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/dirtree/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	// WorkingDirectory anchors the local configuration file lookup.
	// When empty, the process working directory is used.
	WorkingDirectory string
}

// ApplicationConfiguration holds configuration file defaults.
type ApplicationConfiguration struct {
	Tree TreeConfiguration `mapstructure:"tree"`
}

// TreeConfiguration mirrors the tree command flags. Pointer fields
// distinguish "unset" from explicit zero values during merging.
type TreeConfiguration struct {
	MaxDepth  *int                   `mapstructure:"max_depth"`
	MaxFiles  *int                   `mapstructure:"max_files"`
	ASCII     *bool                  `mapstructure:"ascii"`
	ShowSizes *bool                  `mapstructure:"show_sizes"`
	Clipboard *bool                  `mapstructure:"clipboard"`
	Only      []string               `mapstructure:"only"`
	Output    string                 `mapstructure:"output"`
	Exclude   ExclusionConfiguration `mapstructure:"exclude"`
}

// ExclusionConfiguration lists additions to the built-in exclusion sets.
type ExclusionConfiguration struct {
	Directories []string `mapstructure:"dirs"`
	Extensions  []string `mapstructure:"exts"`
	Files       []string `mapstructure:"files"`
}

// LoadApplicationConfiguration loads configuration from the global and local
// files, the local file overriding the global one. Missing files yield the
// zero configuration.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	localConfiguration, loadError := loadConfigurationFromPath(localPath)
	if loadError != nil {
		return ApplicationConfiguration{}, loadError
	}
	merged = merged.Merge(localConfiguration)

	return merged, nil
}

// loadConfigurationFromPath reads one configuration file through viper.
// A missing file is not an error.
func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	fileInfo, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if fileInfo.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	result.Tree = result.Tree.merge(override.Tree)
	return result
}

func (configuration TreeConfiguration) merge(override TreeConfiguration) TreeConfiguration {
	result := configuration
	if override.MaxDepth != nil {
		result.MaxDepth = cloneInt(override.MaxDepth)
	}
	if override.MaxFiles != nil {
		result.MaxFiles = cloneInt(override.MaxFiles)
	}
	if override.ASCII != nil {
		result.ASCII = cloneBool(override.ASCII)
	}
	if override.ShowSizes != nil {
		result.ShowSizes = cloneBool(override.ShowSizes)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	if len(override.Only) > 0 {
		result.Only = append([]string{}, override.Only...)
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	result.Exclude = result.Exclude.merge(override.Exclude)
	return result
}

func (configuration ExclusionConfiguration) merge(override ExclusionConfiguration) ExclusionConfiguration {
	result := configuration
	if len(override.Directories) > 0 {
		result.Directories = append([]string{}, override.Directories...)
	}
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string{}, override.Extensions...)
	}
	if len(override.Files) > 0 {
		result.Files = append([]string{}, override.Files...)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
