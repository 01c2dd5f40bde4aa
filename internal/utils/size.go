package utils

import "fmt"

// humanSizeUnits lists the units walked by HumanizeBytes before petabytes.
var humanSizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// HumanizeBytes converts a byte count into a compact unit string using
// integer division per step, so 1536 bytes reports as 1KB.
func HumanizeBytes(byteCount int64) string {
	remaining := byteCount
	for _, unit := range humanSizeUnits {
		if remaining < 1024 {
			return fmt.Sprintf("%d%s", remaining, unit)
		}
		remaining /= 1024
	}
	return fmt.Sprintf("%dPB", remaining)
}
