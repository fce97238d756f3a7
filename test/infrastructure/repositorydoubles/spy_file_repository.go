//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"

	"github.com/rios0rios0/dylibpatch/internal/domain/repositories"
)

// SpyFileRepository implements repositories.FileRepository without touching the disk.
type SpyFileRepository struct {
	// --- EnsureDir ---
	EnsureDirErr error
	EnsuredDirs  []string

	// --- CopyInto ---
	CopyErr error
	Copies  []CopyCall
}

// CopyCall records a single invocation of CopyInto.
type CopyCall struct {
	Src string
	Dir string
}

var _ repositories.FileRepository = (*SpyFileRepository)(nil)

func (s *SpyFileRepository) EnsureDir(dir string) error {
	s.EnsuredDirs = append(s.EnsuredDirs, dir)
	return s.EnsureDirErr
}

func (s *SpyFileRepository) CopyInto(src, dir string) (string, error) {
	s.Copies = append(s.Copies, CopyCall{Src: src, Dir: dir})
	if s.CopyErr != nil {
		return "", s.CopyErr
	}
	return filepath.Join(dir, filepath.Base(src)), nil
}
