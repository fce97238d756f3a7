package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio"

	"github.com/rios0rios0/dylibpatch/internal/domain/repositories"
)

const (
	dirPerm = 0o755
	// ownerWrite keeps copies editable by install_name_tool even when the source is read-only.
	ownerWrite = 0o200
)

// FileRepository implements the copy-mode file operations on the local disk.
type FileRepository struct{}

var _ repositories.FileRepository = (*FileRepository)(nil)

// NewFileRepository creates a new FileRepository.
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// EnsureDir creates dir and any missing parents.
func (it *FileRepository) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}
	return nil
}

// CopyInto copies src to dir/<base name of src>. The destination is replaced atomically,
// so a copy left behind by an earlier run is never observed half-written.
func (it *FileRepository) CopyInto(src, dir string) (string, error) {
	dest := filepath.Join(dir, filepath.Base(src))

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open %q: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %q: %w", src, err)
	}

	out, err := renameio.TempFile(dir, dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %q: %w", dest, err)
	}
	defer out.Cleanup()

	if _, err := io.Copy(out, in); err != nil {
		return "", fmt.Errorf("failed to copy %q to %q: %w", src, dest, err)
	}
	if err := out.Chmod(info.Mode().Perm() | ownerWrite); err != nil {
		return "", fmt.Errorf("failed to set mode of %q: %w", dest, err)
	}
	if err := out.CloseAtomicallyReplace(); err != nil {
		return "", fmt.Errorf("failed to replace %q: %w", dest, err)
	}

	return dest, nil
}
