package classify

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// RenameBatch computes a rename for every immediate child of root whose
// name contains match, replacing every occurrence with replacement.
// With dryRun set (the default posture) nothing touches the filesystem
// and the planned operations are returned as-is.
//
// Collisions are detected before anything is renamed: a destination that
// already exists in root, or that two sources map to, marks the
// operation failed instead of silently clobbering a file. The remaining
// renames still run.
func (c *Classifier) RenameBatch(root, match, replacement string, dryRun bool) ([]RenameOp, error) {
	if match == "" {
		return nil, invalidArg("empty match pattern")
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, Categorize(root, err)
	}

	existing := make(map[string]bool, len(entries))
	for _, entry := range entries {
		existing[entry.Name()] = true
	}

	var ops []RenameOp
	planned := make(map[string]int) // new name -> op index
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.Contains(entry.Name(), match) {
			continue
		}

		newName := strings.ReplaceAll(entry.Name(), match, replacement)
		op := RenameOp{
			Old:     entry.Name(),
			New:     newName,
			OldPath: filepath.Join(root, entry.Name()),
			NewPath: filepath.Join(root, newName),
		}

		if newName != entry.Name() {
			if existing[newName] {
				op.Err = invalidArg("destination exists: %s", newName)
			} else if prev, ok := planned[newName]; ok {
				op.Err = invalidArg("collides with rename of %s", ops[prev].Old)
			}
		}
		if op.Err == nil {
			planned[newName] = len(ops)
		}
		ops = append(ops, op)
	}

	sort.Slice(ops, func(i, j int) bool { return ops[i].Old < ops[j].Old })

	if dryRun {
		return ops, nil
	}

	for i := range ops {
		if ops[i].Err != nil || ops[i].Old == ops[i].New {
			continue
		}
		if rerr := os.Rename(ops[i].OldPath, ops[i].NewPath); rerr != nil {
			ops[i].Err = Categorize(ops[i].OldPath, rerr)
		}
	}
	return ops, nil
}
