package macho

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
	"github.com/rios0rios0/dylibpatch/internal/domain/repositories"
)

// waitDelay bounds how long a killed tool may keep its output pipes open.
const waitDelay = 100 * time.Millisecond

// ToolRepository runs otool and install_name_tool as child processes.
type ToolRepository struct {
	otool           string
	installNameTool string
	listTimeout     time.Duration
}

var _ repositories.BinaryToolRepository = (*ToolRepository)(nil)

// NewToolRepository creates a ToolRepository using the configured tool locations.
func NewToolRepository(tools entities.ToolsSettings) *ToolRepository {
	return &ToolRepository{
		otool:           tools.Otool,
		installNameTool: tools.InstallNameTool,
		listTimeout:     tools.ListTimeout,
	}
}

// ListDependencies runs `otool -L <path>` bounded by the list timeout.
// A non-zero exit is only warned about: whatever the tool printed is still parsed.
func (it *ToolRepository) ListDependencies(
	ctx context.Context,
	path string,
) ([]entities.DependencyEntry, error) {
	listCtx, cancel := context.WithTimeout(ctx, it.listTimeout)
	defer cancel()

	cmd := exec.CommandContext(listCtx, it.otool, "-L", path)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if runErr := cmd.Run(); runErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(listCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%v after %s: %w", cmd.Args, it.listTimeout, entities.ErrListTimeout)
		}
		logger.Warnf("%v: %v %s", cmd.Args, runErr, strings.TrimSpace(stderr.String()))
	}

	return ParseDependencyReport(stdout.String()), nil
}

// SetID runs `install_name_tool -id <id> <target>`.
func (it *ToolRepository) SetID(ctx context.Context, target, id string) error {
	return it.installName(ctx, "-id", id, target)
}

// ChangeReference runs `install_name_tool -change <old> <new> <target>`.
func (it *ToolRepository) ChangeReference(ctx context.Context, target, oldPath, newPath string) error {
	return it.installName(ctx, "-change", oldPath, newPath, target)
}

func (it *ToolRepository) installName(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, it.installNameTool, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%v: %w: %s", cmd.Args, err, msg)
		}
		return fmt.Errorf("%v: %w", cmd.Args, err)
	}
	return nil
}
