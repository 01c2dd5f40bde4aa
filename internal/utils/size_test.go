package utils_test

import (
	"testing"

	"github.com/temirov/dirtree/internal/utils"
)

func TestHumanizeBytes(t *testing.T) {
	testCases := []struct {
		name      string
		byteCount int64
		expected  string
	}{
		{name: "zero", byteCount: 0, expected: "0B"},
		{name: "bytes", byteCount: 512, expected: "512B"},
		{name: "one kilobyte", byteCount: 1024, expected: "1KB"},
		{name: "fractional kilobyte floors", byteCount: 1536, expected: "1KB"},
		{name: "one megabyte", byteCount: 1024 * 1024, expected: "1MB"},
		{name: "ten gigabytes", byteCount: 10 * 1024 * 1024 * 1024, expected: "10GB"},
		{name: "one petabyte", byteCount: 1 << 50, expected: "1PB"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.HumanizeBytes(testCase.byteCount)
			if result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}
