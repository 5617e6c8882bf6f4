// Package classify buckets the regular files of a directory tree by a
// classification key: content digest, byte size, or filename extension.
// Every grouping is computed fresh per call and returned as an in-memory
// snapshot; nothing is cached between invocations.
package classify

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/filekit-dev/filekit/internal/config"
)

// Classifier groups files under an explicit root directory. It carries no
// state between calls beyond its configuration.
type Classifier struct {
	cfg *config.Config
	now func() time.Time
}

// New creates a new Classifier
func New(cfg *config.Config) *Classifier {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Classifier{
		cfg: cfg,
		now: time.Now,
	}
}

// GroupByHash recursively groups the regular files under root by their
// content digest and returns only groups with two or more members, i.e.
// likely duplicates. Files that cannot be opened or read are skipped and
// listed in the report; a missing or unreadable root fails the whole call.
func (c *Classifier) GroupByHash(root string) (HashGroups, *ScanReport, error) {
	report := &ScanReport{}
	all := make(HashGroups)

	err := c.walkFiles(root, report, func(entry FileEntry) {
		digest, herr := c.hashFile(entry.Path)
		if herr != nil {
			report.Skipped = append(report.Skipped, Categorize(entry.Path, herr))
			return
		}
		all[digest] = append(all[digest], entry.Path)
	})
	if err != nil {
		return nil, nil, err
	}

	groups := make(HashGroups)
	for digest, paths := range all {
		if len(paths) > 1 {
			groups[digest] = paths
		}
	}
	return groups, report, nil
}

// GroupBySize recursively groups the regular files under root by byte
// size, returning only sizes shared by two or more files. A cheap
// pre-filter alternative to GroupByHash: equal size is necessary but not
// sufficient for equal content.
func (c *Classifier) GroupBySize(root string) (SizeGroups, *ScanReport, error) {
	report := &ScanReport{}
	all := make(SizeGroups)

	err := c.walkFiles(root, report, func(entry FileEntry) {
		all[entry.Size] = append(all[entry.Size], entry.Path)
	})
	if err != nil {
		return nil, nil, err
	}

	groups := make(SizeGroups)
	for size, paths := range all {
		if len(paths) > 1 {
			groups[size] = paths
		}
	}
	return groups, report, nil
}

// GroupByExtension buckets the immediate children of root by lowercased
// extension. Unlike the hash and size groupings this does not recurse;
// the asymmetry is inherited behavior and kept on purpose. Keys carry no
// leading dot, files without one land under the "no_extension" bucket,
// and filenames keep their original case.
func (c *Classifier) GroupByExtension(root string) (ExtGroups, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, Categorize(root, err)
	}

	groups := make(ExtGroups)
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if c.shouldSkip(entry.Name()) {
			continue
		}
		key := ExtensionKey(entry.Name())
		groups[key] = append(groups[key], entry.Name())
	}
	return groups, nil
}

// ExtensionKey returns the classification key for a filename: the
// lowercased text after the final dot, or NoExtension when there is none.
func ExtensionKey(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		// Dotfile like ".gitignore": the whole name is the stem.
		return NoExtension
	}
	key := strings.ToLower(strings.TrimPrefix(ext, "."))
	if key == "" {
		return NoExtension
	}
	return key
}

// shouldSkip reports whether a filename matches a configured exclude
// pattern.
func (c *Classifier) shouldSkip(name string) bool {
	for _, pattern := range c.cfg.ExcludePatterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
