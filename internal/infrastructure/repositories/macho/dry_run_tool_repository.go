package macho

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
	"github.com/rios0rios0/dylibpatch/internal/domain/repositories"
)

// DryRunToolRepository lists dependencies through the wrapped repository and only logs edits.
type DryRunToolRepository struct {
	lister repositories.BinaryToolRepository
}

var _ repositories.BinaryToolRepository = (*DryRunToolRepository)(nil)

// NewDryRunToolRepository wraps lister so that no file is ever modified.
func NewDryRunToolRepository(lister repositories.BinaryToolRepository) *DryRunToolRepository {
	return &DryRunToolRepository{lister: lister}
}

// ListDependencies delegates to the wrapped repository.
func (it *DryRunToolRepository) ListDependencies(
	ctx context.Context,
	path string,
) ([]entities.DependencyEntry, error) {
	return it.lister.ListDependencies(ctx, path)
}

// SetID logs the identification change that would be made.
func (it *DryRunToolRepository) SetID(_ context.Context, target, id string) error {
	logger.Infof("[dry-run] install_name_tool -id %s %s", id, target)
	return nil
}

// ChangeReference logs the reference change that would be made.
func (it *DryRunToolRepository) ChangeReference(_ context.Context, target, oldPath, newPath string) error {
	logger.Infof("[dry-run] install_name_tool -change %s %s %s", oldPath, newPath, target)
	return nil
}
