// Package utils contains helper functions shared across the dirtree tool.
package utils

import "strings"

const (
	commaSeparator  = ","
	extensionPrefix = "."
)

// SplitCommaSeparated breaks a comma-separated flag value into trimmed,
// non-empty entries.
func SplitCommaSeparated(rawValue string) []string {
	var values []string
	for _, rawEntry := range strings.Split(rawValue, commaSeparator) {
		trimmedEntry := strings.TrimSpace(rawEntry)
		if trimmedEntry == "" {
			continue
		}
		values = append(values, trimmedEntry)
	}
	return values
}

// NormalizeExtension lowercases an extension and guarantees a leading dot,
// so "TS" and ".ts" both normalize to ".ts".
func NormalizeExtension(rawExtension string) string {
	normalized := strings.ToLower(strings.TrimSpace(rawExtension))
	if normalized == "" {
		return normalized
	}
	if !strings.HasPrefix(normalized, extensionPrefix) {
		normalized = extensionPrefix + normalized
	}
	return normalized
}

// AddNamesToSet inserts every non-empty trimmed name into the set.
func AddNamesToSet(nameSet map[string]struct{}, names []string) {
	for _, name := range names {
		trimmedName := strings.TrimSpace(name)
		if trimmedName == "" {
			continue
		}
		nameSet[trimmedName] = struct{}{}
	}
}

// AddExtensionsToSet inserts every normalized non-empty extension into the set.
func AddExtensionsToSet(extensionSet map[string]struct{}, extensions []string) {
	for _, extension := range extensions {
		normalizedExtension := NormalizeExtension(extension)
		if normalizedExtension == "" {
			continue
		}
		extensionSet[normalizedExtension] = struct{}{}
	}
}
