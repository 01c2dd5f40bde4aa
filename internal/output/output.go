// Package output delivers a rendered report to standard output or a file.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// lineSeparator joins rendered lines into the final report.
	lineSeparator = "\n"
	// trailingNewline terminates the report on every sink.
	trailingNewline = "\n"
	// wroteFileConfirmationFormat acknowledges a successful file write.
	wroteFileConfirmationFormat = "Wrote tree to %s\n"
	// errorWriteFileFormat is used when the report file cannot be written.
	errorWriteFileFormat = "writing tree to %s: %w"
	// reportFilePermissions is the mode for newly written report files.
	reportFilePermissions = 0o644
)

// Report joins rendered lines into the report text without a trailing newline.
func Report(lines []string) string {
	return strings.Join(lines, lineSeparator)
}

// WriteReport prints the report to the provided writer.
func WriteReport(writer io.Writer, report string) error {
	_, writeError := io.WriteString(writer, report+trailingNewline)
	return writeError
}

// WriteReportFile stores the report in outputFilePath and prints a one-line
// confirmation to the provided writer. The stored bytes match what
// WriteReport would have produced.
func WriteReportFile(outputFilePath string, report string, confirmationWriter io.Writer) error {
	if writeError := os.WriteFile(outputFilePath, []byte(report+trailingNewline), reportFilePermissions); writeError != nil {
		return fmt.Errorf(errorWriteFileFormat, outputFilePath, writeError)
	}
	_, confirmationError := fmt.Fprintf(confirmationWriter, wroteFileConfirmationFormat, outputFilePath)
	return confirmationError
}
