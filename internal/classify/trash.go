package classify

import (
	"os"
	"path/filepath"
	"strings"
)

// trashTimeLayout produces the timestamp suffix embedded in trashed
// filenames. The resulting layout is a compatibility contract: external
// tooling inspects `.trash/<stem>_<timestamp><ext>` entries by name.
const trashTimeLayout = "20060102_150405"

// TrashResult records the outcome of a single soft delete.
type TrashResult struct {
	Path      string
	TrashPath string
	Err       error
}

// Trash soft-deletes a file by renaming it into a trash subdirectory
// next to it, with a timestamp spliced between stem and extension so
// repeated deletes of the same name never collide. Returns the path the
// file now lives at.
func (c *Classifier) Trash(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return "", Categorize(path, err)
	}
	if info.IsDir() {
		return "", invalidArg("cannot trash a directory: %s", path)
	}

	dir := filepath.Dir(path)
	trashDir := filepath.Join(dir, c.cfg.TrashDir)
	if err := os.MkdirAll(trashDir, 0755); err != nil {
		return "", Categorize(trashDir, err)
	}

	name := filepath.Base(path)
	ext := filepath.Ext(name)
	if ext == name {
		// Dotfile like ".env": the whole name is the stem.
		ext = ""
	}
	stem := strings.TrimSuffix(name, ext)
	trashPath := filepath.Join(trashDir, stem+"_"+c.now().Format(trashTimeLayout)+ext)

	if err := os.Rename(path, trashPath); err != nil {
		return "", Categorize(path, err)
	}
	return trashPath, nil
}

// TrashBatch soft-deletes each path, continuing past per-file failures
// and reporting every outcome.
func (c *Classifier) TrashBatch(paths []string) []TrashResult {
	results := make([]TrashResult, 0, len(paths))
	for _, path := range paths {
		trashPath, err := c.Trash(path)
		results = append(results, TrashResult{
			Path:      path,
			TrashPath: trashPath,
			Err:       err,
		})
	}
	return results
}

// Remove permanently deletes a file, bypassing the trash.
func (c *Classifier) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return Categorize(path, err)
	}
	return nil
}
