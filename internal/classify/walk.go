package classify

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Files returns a lazy sequence of the regular files under root,
// depth-first. Directories and symlinks are excluded. Per-entry failures
// are yielded as a non-nil *ClassifyError with a zero entry so the
// consumer can record and continue; an error on root itself ends the
// sequence after being yielded. The sequence is restartable and the
// caller may stop early by breaking out of the range loop.
func (c *Classifier) Files(root string) iter.Seq2[FileEntry, *ClassifyError] {
	return func(yield func(FileEntry, *ClassifyError) bool) {
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield(FileEntry{}, Categorize(path, err)) {
					return filepath.SkipAll
				}
				if path == root {
					return filepath.SkipAll
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if c.shouldSkip(d.Name()) {
				return nil
			}
			info, ierr := d.Info()
			if ierr != nil {
				if !yield(FileEntry{}, Categorize(path, ierr)) {
					return filepath.SkipAll
				}
				return nil
			}
			entry := FileEntry{
				Path:    path,
				Name:    d.Name(),
				Size:    info.Size(),
				ModTime: info.ModTime(),
			}
			if !yield(entry, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// walkFiles drives Files for the grouping operations: per-entry errors
// are collected into the report and the walk continues, while a failure
// on root aborts with a categorized error.
func (c *Classifier) walkFiles(root string, report *ScanReport, fn func(FileEntry)) error {
	for entry, werr := range c.Files(root) {
		if werr != nil {
			if werr.Path == root {
				return werr
			}
			report.Skipped = append(report.Skipped, werr)
			continue
		}
		if entry.Size < c.cfg.MinFileSize {
			continue
		}
		report.FilesSeen++
		fn(entry)
	}
	return nil
}
