// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/output"
	"github.com/temirov/dirtree/internal/services/clipboard"
	"github.com/temirov/dirtree/internal/tree"
	"github.com/temirov/dirtree/internal/utils"
)

const (
	rootUse              = "dirtree [path]"
	rootShortDescription = "render a filtered directory tree"
	rootLongDescription  = `dirtree prints a visually connected directory tree of a path.
Dependency, build, and cache folders common to front-end toolchains are
skipped by default, alongside OS metadata files and source maps.`
	// rootUsageExample demonstrates command usage.
	rootUsageExample = `  # Render the current directory
  dirtree

  # Limit depth and keep TypeScript sources only
  dirtree --max-depth 3 --only .ts,.tsx ./src

  # Store the report in a file using ASCII connectors
  dirtree --ascii --output frontend_tree.txt`

	maxDepthFlagName     = "max-depth"
	onlyFlagName         = "only"
	excludeDirsFlagName  = "exclude-dirs"
	excludeExtsFlagName  = "exclude-exts"
	excludeFilesFlagName = "exclude-files"
	maxFilesFlagName     = "max-files"
	showSizesFlagName    = "show-sizes"
	outputFlagName       = "output"
	asciiFlagName        = "ascii"
	copyFlagName         = "copy"
	versionFlagName      = "version"

	maxDepthFlagDescription     = "maximum depth to descend"
	onlyFlagDescription         = "comma-separated extensions to include; others are hidden"
	excludeDirsFlagDescription  = "comma-separated extra directory names to exclude"
	excludeExtsFlagDescription  = "comma-separated extra file extensions to exclude"
	excludeFilesFlagDescription = "comma-separated extra file names to exclude"
	maxFilesFlagDescription     = "maximum files shown per directory, 0 for unlimited"
	showSizesFlagDescription    = "append a summary line with totals and approximate size"
	outputFlagDescription       = "write the tree to this file instead of standard output"
	asciiFlagDescription        = "use ASCII connectors instead of Unicode"
	copyFlagDescription         = "copy the tree to the system clipboard"
	versionFlagDescription      = "display application version"

	defaultPath     = "."
	minimumMaxDepth = 1
	minimumMaxFiles = 1

	versionTemplate   = "dirtree version: %s\n"
	summaryLineFormat = "Summary: %d dirs, %d files, approx %s total."

	// errorPathNotDirectoryFormat reports an unusable root path.
	errorPathNotDirectoryFormat = "path not found or not a directory: %s"
	// errorLoadConfigurationFormat reports a configuration file failure.
	errorLoadConfigurationFormat = "loading configuration: %w"
	// warningClipboardCopyFormat reports a clipboard failure without aborting.
	warningClipboardCopyFormat = "Warning: failed to copy tree to clipboard: %v\n"
)

// treeFlagValues stores raw flag values prior to resolution against the
// configuration file.
type treeFlagValues struct {
	maxDepth           int
	onlyExtensions     string
	excludeDirectories string
	excludeExtensions  string
	excludeFiles       string
	maxFiles           int
	showSizes          bool
	outputFilePath     string
	asciiGlyphs        bool
	copyToClipboard    bool
	showVersion        bool
}

// Execute runs the dirtree application.
func Execute() error {
	rootCommand := createRootCommand(clipboard.NewService())
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command with the provided copier.
func createRootCommand(copier clipboard.Copier) *cobra.Command {
	var flagValues treeFlagValues

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if flagValues.showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			return runTree(command, arguments, flagValues, copier)
		},
	}

	rootCommand.Flags().IntVar(&flagValues.maxDepth, maxDepthFlagName, tree.DefaultMaxDepth, maxDepthFlagDescription)
	rootCommand.Flags().StringVar(&flagValues.onlyExtensions, onlyFlagName, "", onlyFlagDescription)
	rootCommand.Flags().StringVar(&flagValues.excludeDirectories, excludeDirsFlagName, "", excludeDirsFlagDescription)
	rootCommand.Flags().StringVar(&flagValues.excludeExtensions, excludeExtsFlagName, "", excludeExtsFlagDescription)
	rootCommand.Flags().StringVar(&flagValues.excludeFiles, excludeFilesFlagName, "", excludeFilesFlagDescription)
	rootCommand.Flags().IntVar(&flagValues.maxFiles, maxFilesFlagName, tree.DefaultMaxFilesPerDirectory, maxFilesFlagDescription)
	rootCommand.Flags().BoolVar(&flagValues.showSizes, showSizesFlagName, false, showSizesFlagDescription)
	rootCommand.Flags().StringVar(&flagValues.outputFilePath, outputFlagName, "", outputFlagDescription)
	rootCommand.Flags().BoolVar(&flagValues.asciiGlyphs, asciiFlagName, false, asciiFlagDescription)
	rootCommand.Flags().BoolVar(&flagValues.copyToClipboard, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().BoolVar(&flagValues.showVersion, versionFlagName, false, versionFlagDescription)

	return rootCommand
}

// runTree resolves the effective options, renders the tree, and delivers the
// report to the selected sink.
func runTree(command *cobra.Command, arguments []string, flagValues treeFlagValues, copier clipboard.Copier) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
	if configurationError != nil {
		return fmt.Errorf(errorLoadConfigurationFormat, configurationError)
	}
	resolved := resolveTreeSettings(command, flagValues, applicationConfiguration.Tree)

	rootArgument := defaultPath
	if len(arguments) > 0 {
		rootArgument = arguments[0]
	}
	absoluteRootPath, validationError := validateRootDirectory(rootArgument)
	if validationError != nil {
		return validationError
	}

	renderer := tree.NewRenderer(resolved.renderOptions)
	result, renderError := renderer.Render(absoluteRootPath)
	if renderError != nil {
		return renderError
	}

	if resolved.showSizes {
		totalBytes := tree.SubtreeSize(absoluteRootPath)
		result.Lines = append(result.Lines, "", fmt.Sprintf(summaryLineFormat, result.DirectoryCount, result.FileCount, utils.HumanizeBytes(totalBytes)))
	}

	report := output.Report(result.Lines)

	if resolved.copyToClipboard {
		if copyError := copier.Copy(report); copyError != nil {
			fmt.Fprintf(command.ErrOrStderr(), warningClipboardCopyFormat, copyError)
		}
	}

	if resolved.outputFilePath != "" {
		return output.WriteReportFile(resolved.outputFilePath, report, command.OutOrStdout())
	}
	return output.WriteReport(command.OutOrStdout(), report)
}

// treeSettings is the fully resolved run configuration.
type treeSettings struct {
	renderOptions   tree.Options
	showSizes       bool
	outputFilePath  string
	copyToClipboard bool
}

// resolveTreeSettings combines built-in defaults, configuration file values,
// and explicitly set flags. A flag the user changed always wins over the
// configuration file; exclusion additions from both sources accumulate.
func resolveTreeSettings(command *cobra.Command, flagValues treeFlagValues, treeConfiguration config.TreeConfiguration) treeSettings {
	renderOptions := tree.NewDefaultOptions()

	maxDepth := flagValues.maxDepth
	if !command.Flags().Changed(maxDepthFlagName) && treeConfiguration.MaxDepth != nil {
		maxDepth = *treeConfiguration.MaxDepth
	}
	if maxDepth < minimumMaxDepth {
		maxDepth = minimumMaxDepth
	}
	renderOptions.MaxDepth = maxDepth

	maxFiles := flagValues.maxFiles
	if !command.Flags().Changed(maxFilesFlagName) && treeConfiguration.MaxFiles != nil {
		maxFiles = *treeConfiguration.MaxFiles
	}
	if maxFiles != 0 && maxFiles < minimumMaxFiles {
		maxFiles = minimumMaxFiles
	}
	renderOptions.MaxFilesPerDirectory = maxFiles

	asciiGlyphs := flagValues.asciiGlyphs
	if !command.Flags().Changed(asciiFlagName) && treeConfiguration.ASCII != nil {
		asciiGlyphs = *treeConfiguration.ASCII
	}
	if asciiGlyphs {
		renderOptions.Glyphs = tree.ASCIIGlyphs
	}

	onlyValues := utils.SplitCommaSeparated(flagValues.onlyExtensions)
	if !command.Flags().Changed(onlyFlagName) && len(treeConfiguration.Only) > 0 {
		onlyValues = treeConfiguration.Only
	}
	utils.AddExtensionsToSet(renderOptions.OnlyExtensions, onlyValues)

	utils.AddNamesToSet(renderOptions.ExcludedDirectories, treeConfiguration.Exclude.Directories)
	utils.AddNamesToSet(renderOptions.ExcludedDirectories, utils.SplitCommaSeparated(flagValues.excludeDirectories))
	utils.AddExtensionsToSet(renderOptions.ExcludedExtensions, treeConfiguration.Exclude.Extensions)
	utils.AddExtensionsToSet(renderOptions.ExcludedExtensions, utils.SplitCommaSeparated(flagValues.excludeExtensions))
	utils.AddNamesToSet(renderOptions.ExcludedFiles, treeConfiguration.Exclude.Files)
	utils.AddNamesToSet(renderOptions.ExcludedFiles, utils.SplitCommaSeparated(flagValues.excludeFiles))

	showSizes := flagValues.showSizes
	if !command.Flags().Changed(showSizesFlagName) && treeConfiguration.ShowSizes != nil {
		showSizes = *treeConfiguration.ShowSizes
	}

	outputFilePath := flagValues.outputFilePath
	if !command.Flags().Changed(outputFlagName) && treeConfiguration.Output != "" {
		outputFilePath = treeConfiguration.Output
	}

	copyToClipboard := flagValues.copyToClipboard
	if !command.Flags().Changed(copyFlagName) && treeConfiguration.Clipboard != nil {
		copyToClipboard = *treeConfiguration.Clipboard
	}

	return treeSettings{
		renderOptions:   renderOptions,
		showSizes:       showSizes,
		outputFilePath:  outputFilePath,
		copyToClipboard: copyToClipboard,
	}
}

// validateRootDirectory resolves the root argument and confirms it names an
// existing directory.
func validateRootDirectory(rootArgument string) (string, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootArgument)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorPathNotDirectoryFormat, rootArgument)
	}
	rootInfo, statError := os.Stat(absoluteRootPath)
	if statError != nil || !rootInfo.IsDir() {
		return "", fmt.Errorf(errorPathNotDirectoryFormat, absoluteRootPath)
	}
	return absoluteRootPath, nil
}
