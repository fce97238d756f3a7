package entities

// PatchTarget holds everything a single patch run needs. Nothing here is global:
// the command receives the prefixes, token, and output directory explicitly.
type PatchTarget struct {
	RootPath         string   // Library the traversal starts from
	OutputDir        string   // When set, libraries are copied here and the copies are patched
	InternalPrefixes []string // Raw string prefixes of paths considered part of the build
	RPathToken       string   // e.g. "@rpath"
	Extension        string   // Required extension of RootPath, e.g. ".dylib"
	DryRun           bool
}

// CopyMode reports whether libraries are patched as copies in OutputDir.
func (t PatchTarget) CopyMode() bool {
	return t.OutputDir != ""
}

// PatchResult summarizes a finished traversal.
type PatchResult struct {
	Visited   []string           // Libraries traversed, in queue order
	Rewrites  []ReferenceRewrite // Every -change issued, in order
	Processed map[string]struct{}
	Warnings  int
}

// NewPatchResult creates an empty result.
func NewPatchResult() *PatchResult {
	return &PatchResult{
		Processed: make(map[string]struct{}),
	}
}
