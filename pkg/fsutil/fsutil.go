// Package fsutil holds small filesystem helpers shared by the CLI and
// usable on their own: file metadata, directory sizing, glob search,
// and human-readable size formatting.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Info is a point-in-time description of a file or directory.
type Info struct {
	Name      string
	Path      string
	Extension string
	Size      int64
	SizeHuman string
	ModTime   time.Time
	IsDir     bool
}

// Stat returns detailed information about a path
func Stat(path string) (*Info, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return &Info{
		Name:      info.Name(),
		Path:      abs,
		Extension: filepath.Ext(info.Name()),
		Size:      info.Size(),
		SizeHuman: HumanSize(info.Size()),
		ModTime:   info.ModTime(),
		IsDir:     info.IsDir(),
	}, nil
}

// FindFiles returns the regular files under dir whose base name matches
// the glob pattern. "*" matches everything.
func FindFiles(dir, pattern string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	var matches []string
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			matches = append(matches, path)
		}
		return nil
	})
	return matches, nil
}

// DirStats summarizes a directory tree.
type DirStats struct {
	TotalBytes int64
	TotalHuman string
	FileCount  int
}

// DirSize totals the sizes of all regular files under dir. Entries that
// cannot be statted are skipped.
func DirSize(dir string) (*DirStats, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	stats := &DirStats{}
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, ierr := d.Info()
		if ierr != nil {
			return nil
		}
		stats.TotalBytes += info.Size()
		stats.FileCount++
		return nil
	})

	stats.TotalHuman = HumanSize(stats.TotalBytes)
	return stats, nil
}

// LargeFiles returns up to topN regular files under dir of at least
// minBytes, largest first. Unreadable entries are skipped rather than
// failing the search.
func LargeFiles(dir string, minBytes int64, topN int) ([]*Info, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	var found []*Info
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, ierr := d.Info()
		if ierr != nil {
			return nil
		}
		if info.Size() < minBytes {
			return nil
		}
		found = append(found, &Info{
			Name:      d.Name(),
			Path:      path,
			Extension: filepath.Ext(d.Name()),
			Size:      info.Size(),
			SizeHuman: HumanSize(info.Size()),
			ModTime:   info.ModTime(),
		})
		return nil
	})

	sort.Slice(found, func(i, j int) bool { return found[i].Size > found[j].Size })
	if topN > 0 && len(found) > topN {
		found = found[:topN]
	}
	return found, nil
}

// Exists reports whether a path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether a path is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether a path is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates a directory (and parents) if it does not exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
