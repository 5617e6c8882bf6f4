package classify

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"

	"github.com/filekit-dev/filekit/internal/config"
)

// hashFile streams the file through the configured digest in fixed-size
// chunks and returns the hex-encoded result. The whole file is never
// held in memory. The digest is an equality proxy for duplicate
// detection, not a security property.
func (c *Classifier) hashFile(path string) (string, error) {
	h, err := newDigest(c.cfg.HashAlgorithm)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, c.cfg.ChunkSize())
	for {
		n, rerr := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return "", rerr
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// quickHash computes a 64-bit hash of the first chunk of a file. Cheap
// pre-filter only: files that disagree here cannot be identical, files
// that agree still need a full digest.
func (c *Classifier) quickHash(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	buf := make([]byte, c.cfg.ChunkSize())
	n, rerr := f.Read(buf)
	if rerr != nil && rerr != io.EOF {
		return 0, rerr
	}

	return xxhash.Sum64(buf[:n]), nil
}

// newDigest returns a fresh hash for the given algorithm
func newDigest(algo string) (hash.Hash, error) {
	switch algo {
	case config.AlgoMD5, "":
		return md5.New(), nil
	case config.AlgoBlake3:
		return blake3trunc{blake3.New()}, nil
	default:
		return nil, invalidArg("unknown hash algorithm: %q", algo)
	}
}

// blake3trunc truncates BLAKE3 output to 128 bits so digests stay the
// same width as the default algorithm.
type blake3trunc struct {
	*blake3.Hasher
}

func (h blake3trunc) Size() int { return 16 }

func (h blake3trunc) Sum(b []byte) []byte {
	out := make([]byte, 16)
	if _, err := h.Digest().Read(out); err != nil {
		panic(fmt.Sprintf("blake3 digest read: %v", err))
	}
	return append(b, out...)
}
