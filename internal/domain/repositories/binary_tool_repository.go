package repositories

import (
	"context"

	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
)

// BinaryToolRepository abstracts the OS tools that inspect and edit Mach-O load commands.
// The production implementation shells out to otool and install_name_tool; tests use fixtures.
type BinaryToolRepository interface {
	// ListDependencies returns the libraries referenced by the file at path, in report order.
	// It returns an error wrapping entities.ErrListTimeout when the tool does not finish in time.
	ListDependencies(ctx context.Context, path string) ([]entities.DependencyEntry, error)

	// SetID rewrites the identification (install name) of target.
	SetID(ctx context.Context, target, id string) error

	// ChangeReference replaces the referenced path oldPath with newPath inside target.
	ChangeReference(ctx context.Context, target, oldPath, newPath string) error
}
