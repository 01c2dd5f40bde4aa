package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// directoryLineSuffix terminates every rendered directory line.
	directoryLineSuffix = "/"
	// truncationNoteFormat reports how many files a directory hid.
	truncationNoteFormat = "... (%d more files hidden)"
	// errorAbsolutePathFormat is used when the root path cannot be resolved.
	errorAbsolutePathFormat = "resolving absolute path for %s: %w"
)

// Result carries the rendered lines and the aggregate traversal counts.
type Result struct {
	// Lines is the ordered tree output, starting with the root line.
	Lines []string
	// FileCount is the number of files kept after filtering, counted
	// before truncation hides any of them.
	FileCount int
	// DirectoryCount is the number of directories kept after filtering,
	// including directories whose contents were not expanded.
	DirectoryCount int
}

// Renderer performs one bounded depth-first traversal per Render call.
type Renderer struct {
	Options Options
}

// NewRenderer constructs a renderer for the provided options.
func NewRenderer(options Options) *Renderer {
	return &Renderer{Options: options}
}

// Render walks the directory rooted at rootDirectoryPath and produces the
// connected tree lines plus file and directory totals. Directories that
// cannot be read contribute an empty subtree instead of an error; only a
// failure to resolve the root path itself is returned.
func (renderer *Renderer) Render(rootDirectoryPath string) (Result, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return Result{}, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}

	lines := []string{absoluteRootPath + string(os.PathSeparator)}
	fileCount, directoryCount := renderer.renderDirectory(absoluteRootPath, nil, 1, &lines)

	return Result{
		Lines:          lines,
		FileCount:      fileCount,
		DirectoryCount: directoryCount,
	}, nil
}

// renderDirectory lists one directory, appends its rendered children to
// lines, and returns the file and directory counts contributed by the
// subtree. ancestorLastFlags records, per ancestor level, whether that
// ancestor was the last child among its own siblings.
func (renderer *Renderer) renderDirectory(directoryPath string, ancestorLastFlags []bool, depth int, lines *[]string) (int, int) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		// Unreadable directories render as empty subtrees.
		return 0, 0
	}

	var subdirectories []os.DirEntry
	var files []os.DirEntry
	for _, directoryEntry := range directoryEntries {
		if directoryEntry.IsDir() {
			if _, excluded := renderer.Options.ExcludedDirectories[directoryEntry.Name()]; !excluded {
				subdirectories = append(subdirectories, directoryEntry)
			}
			continue
		}
		if renderer.shouldKeepFile(directoryEntry.Name()) {
			files = append(files, directoryEntry)
		}
	}

	sortEntriesCaseInsensitively(subdirectories)
	sortEntriesCaseInsensitively(files)

	visibleFiles := files
	truncationNote := ""
	fileCap := renderer.Options.MaxFilesPerDirectory
	if fileCap > 0 && len(files) > fileCap {
		headCount := fileCap / 2
		tailCount := fileCap - headCount
		visibleFiles = append(append([]os.DirEntry{}, files[:headCount]...), files[len(files)-tailCount:]...)
		truncationNote = fmt.Sprintf(truncationNoteFormat, len(files)-len(visibleFiles))
	}

	totalChildren := len(subdirectories) + len(visibleFiles)
	if truncationNote != "" {
		totalChildren++
	}

	childIndex := 0
	fileCount := 0
	directoryCount := 0

	for _, subdirectory := range subdirectories {
		childIndex++
		isLastChild := childIndex == totalChildren
		*lines = append(*lines, renderer.buildLinePrefix(ancestorLastFlags, isLastChild)+subdirectory.Name()+directoryLineSuffix)

		childFileCount := 0
		childDirectoryCount := 0
		if depth < renderer.Options.MaxDepth {
			childFlags := append(append([]bool{}, ancestorLastFlags...), isLastChild)
			childFileCount, childDirectoryCount = renderer.renderDirectory(filepath.Join(directoryPath, subdirectory.Name()), childFlags, depth+1, lines)
		}
		fileCount += childFileCount
		directoryCount += childDirectoryCount + 1
	}

	if truncationNote != "" {
		childIndex++
		isLastChild := childIndex == totalChildren
		*lines = append(*lines, renderer.buildLinePrefix(ancestorLastFlags, isLastChild)+truncationNote)
	}

	for _, visibleFile := range visibleFiles {
		childIndex++
		isLastChild := childIndex == totalChildren
		*lines = append(*lines, renderer.buildLinePrefix(ancestorLastFlags, isLastChild)+visibleFile.Name())
	}
	fileCount += len(files)

	return fileCount, directoryCount
}

// buildLinePrefix assembles the leading glyphs for one rendered entry. Every
// ancestor level above the immediate parent contributes a continuation bar or
// blank padding; the entry itself contributes a branch or corner connector.
// Entries directly below the root carry no connector.
func (renderer *Renderer) buildLinePrefix(ancestorLastFlags []bool, isLastChild bool) string {
	glyphs := renderer.Options.Glyphs
	var prefixBuilder strings.Builder
	for flagIndex := 0; flagIndex < len(ancestorLastFlags)-1; flagIndex++ {
		if ancestorLastFlags[flagIndex] {
			prefixBuilder.WriteString(glyphs.Blank)
		} else {
			prefixBuilder.WriteString(glyphs.Bar)
		}
	}
	if len(ancestorLastFlags) > 0 {
		if isLastChild {
			prefixBuilder.WriteString(glyphs.Corner)
		} else {
			prefixBuilder.WriteString(glyphs.Branch)
		}
	}
	return prefixBuilder.String()
}

// shouldKeepFile applies the file name, extension deny, and extension allow
// rules to a candidate file name.
func (renderer *Renderer) shouldKeepFile(fileName string) bool {
	if _, excluded := renderer.Options.ExcludedFiles[fileName]; excluded {
		return false
	}
	extension := fileExtension(fileName)
	if _, excluded := renderer.Options.ExcludedExtensions[extension]; excluded {
		return false
	}
	if len(renderer.Options.OnlyExtensions) > 0 {
		if _, allowed := renderer.Options.OnlyExtensions[extension]; !allowed {
			return false
		}
	}
	return true
}

// fileExtension returns the lowercase extension including the leading dot.
// Names that only start with a dot, or end with one, have no extension.
func fileExtension(fileName string) string {
	extensionIndex := strings.LastIndex(fileName, ".")
	if extensionIndex <= 0 || extensionIndex == len(fileName)-1 {
		return ""
	}
	return strings.ToLower(fileName[extensionIndex:])
}

// sortEntriesCaseInsensitively orders entries by folded name. The sort is
// stable so names equal under folding keep the directory listing order.
func sortEntriesCaseInsensitively(entries []os.DirEntry) {
	sort.SliceStable(entries, func(firstIndex, secondIndex int) bool {
		return strings.ToLower(entries[firstIndex].Name()) < strings.ToLower(entries[secondIndex].Name())
	})
}
