package classify

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/filekit-dev/filekit/internal/config"
)

// OrganizeByExtension moves the immediate children of root into one
// subdirectory per extension bucket under target (root itself when
// target is empty). The grouping mirrors GroupByExtension. Moves use
// rename semantics and never truncate data mid-copy; a same-named file
// at the destination is handled per the collision policy, with
// PolicyOverwrite replacing it silently. A failed move is recorded and
// processing continues with the remaining files.
func (c *Classifier) OrganizeByExtension(root, target string, policy config.CollisionPolicy) (ExtGroups, *MoveReport, error) {
	if target == "" {
		target = root
	}
	if err := policy.Validate(); err != nil {
		return nil, nil, invalidArg("collision policy: %v", err)
	}

	groups, err := c.GroupByExtension(root)
	if err != nil {
		return nil, nil, err
	}

	report := &MoveReport{}
	for key, names := range groups {
		bucketDir := filepath.Join(target, key)
		if err := os.MkdirAll(bucketDir, 0755); err != nil {
			for _, name := range names {
				report.Failed = append(report.Failed, MoveResult{
					Source: filepath.Join(root, name),
					Dest:   filepath.Join(bucketDir, name),
					Err:    Categorize(bucketDir, err),
				})
			}
			continue
		}

		for _, name := range names {
			res := MoveResult{
				Source: filepath.Join(root, name),
				Dest:   filepath.Join(bucketDir, name),
			}

			if policy != config.PolicyOverwrite {
				if _, serr := os.Lstat(res.Dest); serr == nil {
					if policy == config.PolicySkip {
						res.Skipped = true
						report.Skipped = append(report.Skipped, res)
						continue
					}
					res.Err = fmt.Errorf("destination exists: %s", res.Dest)
					report.Failed = append(report.Failed, res)
					continue
				}
			}

			if merr := moveFile(res.Source, res.Dest); merr != nil {
				res.Err = Categorize(res.Source, merr)
				report.Failed = append(report.Failed, res)
				continue
			}
			report.Moved = append(report.Moved, res)
		}
	}

	return groups, report, nil
}

// moveFile renames src to dest, falling back to copy-then-remove when
// the rename crosses a filesystem boundary.
func moveFile(src, dest string) error {
	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}

	if cerr := copyFile(src, dest); cerr != nil {
		return cerr
	}
	return os.Remove(src)
}

// copyFile copies src over dest, preserving the source mode. The write
// goes to the final name directly; dest is on a different filesystem so
// an atomic rename is not available there anyway.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}
	return nil
}
