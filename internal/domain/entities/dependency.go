package entities

import "path/filepath"

// DependencyEntry is one library referenced by a Mach-O file, as reported by the listing tool.
type DependencyEntry struct {
	Path          string // Referenced install name (absolute or relocatable)
	Compatibility string // Raw annotation that followed the path, without parentheses
}

// IsAbsolute reports whether the referenced path is absolute.
func (d DependencyEntry) IsAbsolute() bool {
	return filepath.IsAbs(d.Path)
}

// BaseName returns the file name of the referenced library.
func (d DependencyEntry) BaseName() string {
	return filepath.Base(d.Path)
}

// ReferenceRewrite records a single reference rewritten inside a target file.
type ReferenceRewrite struct {
	Target  string // File that was edited (the copy in copy mode)
	OldPath string
	NewPath string
}
