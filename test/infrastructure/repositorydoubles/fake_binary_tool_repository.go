//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
	"github.com/rios0rios0/dylibpatch/internal/domain/repositories"
)

// FakeBinaryToolRepository implements repositories.BinaryToolRepository from fixture reports.
// Configure Reports with the dependency list of each library path, then inspect the
// recorded calls to verify behavior.
type FakeBinaryToolRepository struct {
	// --- ListDependencies ---
	Reports   map[string][]entities.DependencyEntry // path -> report
	ListErrs  map[string]error                      // path -> error
	ListCalls []string

	// --- SetID ---
	SetIDErr   error
	SetIDCalls []SetIDCall

	// --- ChangeReference ---
	ChangeErr   error
	ChangeCalls []ChangeCall
}

// SetIDCall records a single invocation of SetID.
type SetIDCall struct {
	Target string
	ID     string
}

// ChangeCall records a single invocation of ChangeReference.
type ChangeCall struct {
	Target  string
	OldPath string
	NewPath string
}

var _ repositories.BinaryToolRepository = (*FakeBinaryToolRepository)(nil)

// NewFakeBinaryToolRepository creates a fake with the given reports.
func NewFakeBinaryToolRepository(
	reports map[string][]entities.DependencyEntry,
) *FakeBinaryToolRepository {
	return &FakeBinaryToolRepository{Reports: reports}
}

func (f *FakeBinaryToolRepository) ListDependencies(
	_ context.Context, path string,
) ([]entities.DependencyEntry, error) {
	f.ListCalls = append(f.ListCalls, path)
	if err, ok := f.ListErrs[path]; ok {
		return nil, err
	}
	return f.Reports[path], nil
}

func (f *FakeBinaryToolRepository) SetID(_ context.Context, target, id string) error {
	f.SetIDCalls = append(f.SetIDCalls, SetIDCall{Target: target, ID: id})
	return f.SetIDErr
}

func (f *FakeBinaryToolRepository) ChangeReference(
	_ context.Context, target, oldPath, newPath string,
) error {
	f.ChangeCalls = append(f.ChangeCalls, ChangeCall{Target: target, OldPath: oldPath, NewPath: newPath})
	return f.ChangeErr
}

// TotalCalls returns the number of tool invocations of any kind.
func (f *FakeBinaryToolRepository) TotalCalls() int {
	return len(f.ListCalls) + len(f.SetIDCalls) + len(f.ChangeCalls)
}
