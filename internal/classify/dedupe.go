package classify

import (
	"sort"
)

// FindDuplicates runs the staged duplicate pipeline over the tree under
// root: bucket by size, discard singletons, narrow with a quick hash of
// the head chunk, then confirm survivors with a full digest. Only the
// files that make it past each stage are read further, so most of the
// tree is never opened. Unreadable files are skipped and reported.
//
// Sets are returned largest size first; paths within a set are sorted.
func (c *Classifier) FindDuplicates(root string) ([]DuplicateSet, *ScanReport, error) {
	report := &ScanReport{}

	sizes := make(map[int64][]string)
	err := c.walkFiles(root, report, func(entry FileEntry) {
		sizes[entry.Size] = append(sizes[entry.Size], entry.Path)
	})
	if err != nil {
		return nil, nil, err
	}

	// Stage 2: quick hash within each size bucket. Files below the
	// configured threshold skip the prefilter; the full digest in stage 3
	// costs about the same for them.
	type candidateKey struct {
		size  int64
		quick uint64
	}
	candidates := make(map[candidateKey][]string)
	for size, paths := range sizes {
		if len(paths) < 2 {
			continue
		}
		for _, path := range paths {
			key := candidateKey{size: size}
			if size >= c.cfg.QuickHashMin() {
				quick, qerr := c.quickHash(path)
				if qerr != nil {
					report.Skipped = append(report.Skipped, Categorize(path, qerr))
					continue
				}
				key.quick = quick
			}
			candidates[key] = append(candidates[key], path)
		}
	}

	// Stage 3: full digest confirmation.
	type confirmKey struct {
		size   int64
		digest string
	}
	confirmed := make(map[confirmKey][]string)
	for key, paths := range candidates {
		if len(paths) < 2 {
			continue
		}
		for _, path := range paths {
			digest, herr := c.hashFile(path)
			if herr != nil {
				report.Skipped = append(report.Skipped, Categorize(path, herr))
				continue
			}
			ck := confirmKey{size: key.size, digest: digest}
			confirmed[ck] = append(confirmed[ck], path)
		}
	}

	var sets []DuplicateSet
	for key, paths := range confirmed {
		if len(paths) < 2 {
			continue
		}
		sort.Strings(paths)
		sets = append(sets, DuplicateSet{
			Digest: key.digest,
			Size:   key.size,
			Paths:  paths,
		})
	}

	sort.Slice(sets, func(i, j int) bool {
		if sets[i].Size != sets[j].Size {
			return sets[i].Size > sets[j].Size
		}
		return sets[i].Digest < sets[j].Digest
	})

	return sets, report, nil
}

// WastedBytes returns the space reclaimable from a set of duplicate
// groups if all but one copy of each were removed.
func WastedBytes(sets []DuplicateSet) int64 {
	var total int64
	for _, set := range sets {
		total += set.Size * int64(len(set.Paths)-1)
	}
	return total
}
