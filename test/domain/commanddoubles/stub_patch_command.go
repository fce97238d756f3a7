//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/dylibpatch/internal/domain/commands"
	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
)

// StubPatchCommand is a stub implementation of commands.Patch.
type StubPatchCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *entities.PatchResult
	LastSettings     *entities.Settings
	LastOpts         commands.PatchOptions
}

var _ commands.Patch = (*StubPatchCommand)(nil)

func (s *StubPatchCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.PatchOptions,
) (*entities.PatchResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
