package classify

import "time"

// FileEntry describes a regular file observed during a walk. Entries are
// transient: the filesystem owns the bytes, the classifier only reads.
type FileEntry struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// HashGroups maps a hex-encoded digest to the paths sharing it.
type HashGroups map[string][]string

// SizeGroups maps a byte size to the paths sharing it.
type SizeGroups map[int64][]string

// ExtGroups maps a lowercased extension key (no leading dot, or
// "no_extension") to the filenames sharing it.
type ExtGroups map[string][]string

// NoExtension is the bucket key for files without an extension.
const NoExtension = "no_extension"

// MoveResult records the outcome of a single file move. Err is nil on
// success; Skipped is set when a collision policy left the file in place.
type MoveResult struct {
	Source  string
	Dest    string
	Skipped bool
	Err     error
}

// MoveReport is the per-file outcome of an organize operation. A failed
// move never aborts the batch; callers inspect Failed afterwards.
type MoveReport struct {
	Moved   []MoveResult
	Skipped []MoveResult
	Failed  []MoveResult
}

// RenameOp is one planned or executed rename.
type RenameOp struct {
	Old     string
	New     string
	OldPath string
	NewPath string
	Err     error
}

// ScanReport collects per-file problems encountered during a recursive
// grouping pass. The grouping itself is best-effort: entries that could
// not be read are listed here instead of aborting the scan.
type ScanReport struct {
	FilesSeen int
	Skipped   []*ClassifyError
}

// DuplicateSet is one group of byte-identical files confirmed by the
// staged duplicate pipeline.
type DuplicateSet struct {
	Digest string
	Size   int64
	Paths  []string
}
