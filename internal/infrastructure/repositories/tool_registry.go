package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
	domainRepos "github.com/rios0rios0/dylibpatch/internal/domain/repositories"
)

const (
	// ToolchainCCTools shells out to otool and install_name_tool.
	ToolchainCCTools = "cctools"
	// ToolchainDryRun lists dependencies for real but only logs edits.
	ToolchainDryRun = "dry-run"
)

// ToolFactory is a constructor function that creates a BinaryToolRepository from tool settings.
type ToolFactory func(tools entities.ToolsSettings) domainRepos.BinaryToolRepository

// ToolRegistry manages all registered binary tool implementations.
type ToolRegistry struct {
	tools map[string]ToolFactory
}

// NewToolRegistry creates an empty tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]ToolFactory),
	}
}

// Register adds a tool factory under the given name (e.g. "cctools").
func (r *ToolRegistry) Register(name string, factory ToolFactory) {
	r.tools[name] = factory
}

// Get returns a configured tool repository for the given name and settings.
func (r *ToolRegistry) Get(name string, tools entities.ToolsSettings) (domainRepos.BinaryToolRepository, error) {
	factory, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown toolchain: %q", name)
	}
	return factory(tools), nil
}

// Names returns the sorted list of registered toolchain names.
func (r *ToolRegistry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
