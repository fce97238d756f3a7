//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const (
	defaultPath          = "/build/out/libdep.dylib"
	defaultCompatibility = "compatibility version 1.0.0, current version 1.0.0"
)

// DependencyEntryBuilder helps create test dependency entries with a fluent interface.
type DependencyEntryBuilder struct {
	*testkit.BaseBuilder
	path          string
	compatibility string
}

// NewDependencyEntryBuilder creates a new builder with sensible defaults.
func NewDependencyEntryBuilder() *DependencyEntryBuilder {
	return &DependencyEntryBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		path:          defaultPath,
		compatibility: defaultCompatibility,
	}
}

// WithPath sets the referenced path.
func (b *DependencyEntryBuilder) WithPath(path string) *DependencyEntryBuilder {
	b.path = path
	return b
}

// WithCompatibility sets the compatibility annotation.
func (b *DependencyEntryBuilder) WithCompatibility(compatibility string) *DependencyEntryBuilder {
	b.compatibility = compatibility
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *DependencyEntryBuilder) Build() interface{} {
	return b.BuildEntry()
}

// BuildEntry creates the entry with a concrete return type.
func (b *DependencyEntryBuilder) BuildEntry() entities.DependencyEntry {
	return entities.DependencyEntry{
		Path:          b.path,
		Compatibility: b.compatibility,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = defaultPath
	b.compatibility = defaultCompatibility
	return b
}

// Clone creates a deep copy of the DependencyEntryBuilder.
func (b *DependencyEntryBuilder) Clone() testkit.Builder {
	return &DependencyEntryBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:          b.path,
		compatibility: b.compatibility,
	}
}

// Entries builds one entry per path with the default annotation.
func Entries(paths ...string) []entities.DependencyEntry {
	entries := make([]entities.DependencyEntry, 0, len(paths))
	for _, path := range paths {
		entries = append(entries, NewDependencyEntryBuilder().WithPath(path).BuildEntry())
	}
	return entries
}
