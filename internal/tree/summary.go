package tree

import (
	"io/fs"
	"path/filepath"
)

// SubtreeSize walks every file beneath rootDirectoryPath and returns the
// total byte size. The walk is independent of the display filters, so the
// total covers excluded directories and files as well. Entries that cannot
// be visited or measured contribute zero bytes.
func SubtreeSize(rootDirectoryPath string) int64 {
	var totalBytes int64
	walkFunction := func(currentPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return nil
		}
		if !directoryEntry.Type().IsRegular() {
			return nil
		}
		entryInfo, infoError := directoryEntry.Info()
		if infoError != nil {
			return nil
		}
		totalBytes += entryInfo.Size()
		return nil
	}
	// The walk error is ignored deliberately: the summary is approximate.
	_ = filepath.WalkDir(rootDirectoryPath, walkFunction)
	return totalBytes
}
