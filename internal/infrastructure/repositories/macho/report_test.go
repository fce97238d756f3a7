//go:build unit

package macho_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
	"github.com/rios0rios0/dylibpatch/internal/infrastructure/repositories/macho"
)

func TestParseDependencyReport(t *testing.T) {
	t.Parallel()

	t.Run("should skip the header and strip the compatibility annotation", func(t *testing.T) {
		t.Parallel()

		// given
		output := "/build/out/libfoo.dylib:\n" +
			"\t/build/out/libbar.dylib (compatibility version 1.0.0, current version 1.2.0)\n" +
			"\t/usr/lib/libSystem.B.dylib (compatibility version 1.0.0, current version 1311.0.0)\n"

		// when
		entries := macho.ParseDependencyReport(output)

		// then
		assert.Equal(t, []entities.DependencyEntry{
			{
				Path:          "/build/out/libbar.dylib",
				Compatibility: "compatibility version 1.0.0, current version 1.2.0",
			},
			{
				Path:          "/usr/lib/libSystem.B.dylib",
				Compatibility: "compatibility version 1.0.0, current version 1311.0.0",
			},
		}, entries)
	})

	t.Run("should keep paths containing spaces intact", func(t *testing.T) {
		t.Parallel()

		// given
		output := "header:\n\t/build/my out/libbar.dylib (compatibility version 1.0.0, current version 1.0.0)\n"

		// when
		entries := macho.ParseDependencyReport(output)

		// then
		assert.Len(t, entries, 1)
		assert.Equal(t, "/build/my out/libbar.dylib", entries[0].Path)
	})

	t.Run("should keep lines without annotation whole", func(t *testing.T) {
		t.Parallel()

		// given
		output := "header:\n    @rpath/libweak.dylib\n"

		// when
		entries := macho.ParseDependencyReport(output)

		// then
		assert.Equal(t, []entities.DependencyEntry{{Path: "@rpath/libweak.dylib"}}, entries)
	})

	t.Run("should drop architecture headers of universal binaries", func(t *testing.T) {
		t.Parallel()

		// given
		output := "/build/out/libfoo.dylib (architecture x86_64):\n" +
			"\t/build/out/libbar.dylib (compatibility version 1.0.0, current version 1.0.0)\n" +
			"/build/out/libfoo.dylib (architecture arm64):\n" +
			"\t/build/out/libbar.dylib (compatibility version 1.0.0, current version 1.0.0)\n"

		// when
		entries := macho.ParseDependencyReport(output)

		// then
		assert.Len(t, entries, 2)
		for _, entry := range entries {
			assert.Equal(t, "/build/out/libbar.dylib", entry.Path)
		}
	})

	t.Run("should return nothing for empty or header-only output", func(t *testing.T) {
		t.Parallel()

		// given
		outputs := []string{"", "/build/out/libfoo.dylib:", "/build/out/libfoo.dylib:\n\n"}

		for _, output := range outputs {
			// when
			entries := macho.ParseDependencyReport(output)

			// then
			assert.Empty(t, entries)
		}
	})

	t.Run("should tolerate CRLF line endings", func(t *testing.T) {
		t.Parallel()

		// given
		output := "header:\r\n\t/build/out/libbar.dylib\r\n"

		// when
		entries := macho.ParseDependencyReport(output)

		// then
		assert.Equal(t, "/build/out/libbar.dylib", entries[0].Path)
	})
}
