package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/dylibpatch/internal/domain/entities"
	"github.com/rios0rios0/dylibpatch/internal/domain/repositories"
)

// PatchLibrary walks the dependency closure of target.RootPath breadth-first and rewrites
// every internal reference to the load-path-relative form <token>/<basename>.
//
// Each visited library gets its own identification rewritten, then every dependency
// whose raw path starts with one of the internal prefixes is rewritten in the file that
// references it. A dependency is rewritten once per referencing file but queued for its
// own traversal only the first time it is seen. Dependencies are always listed from the
// original file, never the copy, so the report is the one written by the linker.
//
// Failed edits are counted as warnings and the traversal continues. A listing timeout,
// context cancellation or a failed copy aborts the run.
func PatchLibrary(
	ctx context.Context,
	tools repositories.BinaryToolRepository,
	files repositories.FileRepository,
	target entities.PatchTarget,
) (*entities.PatchResult, error) {
	extension := target.Extension
	if extension == "" {
		extension = entities.DefaultExtension
	}
	token := target.RPathToken
	if token == "" {
		token = entities.DefaultRPathToken
	}

	if libraryExtension(target.RootPath) != extension {
		return nil, fmt.Errorf("%s: %w", target.RootPath, entities.ErrNotDynamicLibrary)
	}

	root, err := filepath.Abs(target.RootPath)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	if target.CopyMode() && !target.DryRun {
		if dirErr := files.EnsureDir(target.OutputDir); dirErr != nil {
			return nil, dirErr
		}
	}

	result := entities.NewPatchResult()
	result.Processed[target.RootPath] = struct{}{}
	result.Processed[root] = struct{}{}
	queue := []string{root}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if !filepath.IsAbs(item) {
			logger.Warnf("%s is not an absolute path, skipping", item)
			result.Warnings++
			continue
		}

		logger.Infof("> processing: %s", item)

		editTarget, copyErr := resolveEditTarget(files, target, item)
		if copyErr != nil {
			return result, copyErr
		}

		if idErr := tools.SetID(ctx, editTarget, relocated(token, filepath.Base(item))); idErr != nil {
			logger.Warnf("Failed to set id of %s: %v", editTarget, idErr)
			result.Warnings++
		}

		deps, listErr := tools.ListDependencies(ctx, item)
		if listErr != nil {
			return result, fmt.Errorf("failed to list dependencies of %s: %w", item, listErr)
		}

		for _, dep := range deps {
			if !dep.IsAbsolute() || !hasInternalPrefix(dep.Path, target.InternalPrefixes) {
				logger.Debugf("  leaving %s untouched", dep.Path)
				continue
			}

			newPath := relocated(token, dep.BaseName())
			if changeErr := tools.ChangeReference(ctx, editTarget, dep.Path, newPath); changeErr != nil {
				logger.Warnf("Failed to change %s in %s: %v", dep.Path, editTarget, changeErr)
				result.Warnings++
			} else {
				logger.Debugf("  %s -> %s", dep.Path, newPath)
			}
			result.Rewrites = append(result.Rewrites, entities.ReferenceRewrite{
				Target:  editTarget,
				OldPath: dep.Path,
				NewPath: newPath,
			})

			if _, seen := result.Processed[dep.Path]; !seen {
				queue = append(queue, dep.Path)
			}
			result.Processed[dep.Path] = struct{}{}
		}

		result.Visited = append(result.Visited, item)
		logger.Infof("< done: %s", item)
	}

	return result, nil
}

// resolveEditTarget returns the file the edits for item go to: item itself in place,
// or its copy in the output directory.
func resolveEditTarget(
	files repositories.FileRepository,
	target entities.PatchTarget,
	item string,
) (string, error) {
	if !target.CopyMode() {
		return item, nil
	}
	if target.DryRun {
		return filepath.Join(target.OutputDir, filepath.Base(item)), nil
	}

	dest, err := files.CopyInto(item, target.OutputDir)
	if err != nil {
		return "", err
	}
	logger.Debugf("  copied to %s", dest)
	return dest, nil
}

// hasInternalPrefix matches raw string prefixes; paths are deliberately not normalized.
func hasInternalPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func relocated(token, baseName string) string {
	return token + "/" + baseName
}

// libraryExtension is filepath.Ext except that leading dots of the base name do not
// start an extension, so a file named ".dylib" has none.
func libraryExtension(path string) string {
	base := filepath.Base(path)
	if !strings.Contains(strings.TrimLeft(base, "."), ".") {
		return ""
	}
	return filepath.Ext(base)
}
