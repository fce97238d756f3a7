package macho

import (
	"strings"

	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
)

const compatibilityMarker = " (compatibility"

// ParseDependencyReport extracts the dependency entries from `otool -L` output.
//
// The first line names the inspected file and is skipped. Each remaining line is an
// indented `<path> (compatibility version X, current version Y)`; the path is whatever
// precedes the compatibility marker. Lines without the marker are kept whole so that the
// caller's filters decide what to do with them. Architecture headers of universal
// binaries (lines ending in ':') are not dependencies and are dropped.
func ParseDependencyReport(output string) []entities.DependencyEntry {
	lines := strings.Split(output, "\n")
	if len(lines) <= 1 {
		return nil
	}

	entries := make([]entities.DependencyEntry, 0, len(lines)-1)
	for _, raw := range lines[1:] {
		line := strings.TrimRight(strings.TrimLeft(raw, " \t"), "\r")
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}

		path, annotation, found := strings.Cut(line, compatibilityMarker)
		entry := entities.DependencyEntry{Path: path}
		if found {
			entry.Compatibility = "compatibility" + strings.TrimSuffix(annotation, ")")
		}
		entries = append(entries, entry)
	}

	return entries
}
