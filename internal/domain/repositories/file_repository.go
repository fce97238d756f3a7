package repositories

// FileRepository covers the file operations of copy mode.
type FileRepository interface {
	// EnsureDir creates dir and any missing parents.
	EnsureDir(dir string) error

	// CopyInto copies src into dir under its base name and returns the destination path.
	CopyInto(src, dir string) (string, error)
}
