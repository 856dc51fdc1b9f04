// Package fingerprint derives the content-based lookup keys used by the
// remote catalogs: a streaming SHA-1 digest for Modrinth and the
// whitespace-filtered MurmurHash2 fingerprint CurseForge computes over
// uploaded files.
package fingerprint

import (
	"crypto/sha1" //nolint:gosec // catalog lookup key, not a security control
	"encoding/hex"
	"io"

	"github.com/spf13/afero"

	"github.com/EricDasha/mc-mod-compat-check/internal/log"
)

const readChunkSize = 64 * 1024

// Digests holds the lookup keys for one artifact. Zero values are the
// "no fingerprint" sentinels: an empty SHA1 or a zero CurseForge value
// means the file could not be read and the artifact simply has no key for
// that catalog.
type Digests struct {
	SHA1       string `json:"sha1"`
	CurseForge uint32 `json:"curseforge"`
}

// For computes both digests for a file. I/O failures degrade to the
// sentinel values rather than erroring so that one unreadable file never
// aborts a batch.
func For(fs afero.Fs, path string) Digests {
	return Digests{
		SHA1:       SHA1(fs, path),
		CurseForge: CurseForge(fs, path),
	}
}

// SHA1 streams the file through a SHA-1 digest in bounded reads, keeping
// memory use independent of artifact size. Returns "" on any I/O failure.
func SHA1(fs afero.Fs, path string) string {
	f, err := fs.Open(path)
	if err != nil {
		log.Debugf("unable to open %q for sha1: %v", path, err)
		return ""
	}
	defer f.Close()

	digest := sha1.New() //nolint:gosec
	buffer := make([]byte, readChunkSize)
	if _, err := io.CopyBuffer(digest, f, buffer); err != nil {
		log.Debugf("unable to digest %q: %v", path, err)
		return ""
	}
	return hex.EncodeToString(digest.Sum(nil))
}

// CurseForge computes the CurseForge fingerprint: MurmurHash2 (seed 1) over
// the file content with every tab, line-feed, carriage-return, and space
// byte removed. The value must be bit-exact with the catalog's own
// computation; any deviation silently turns every lookup into a miss.
// Returns 0 on any I/O failure.
func CurseForge(fs afero.Fs, path string) uint32 {
	f, err := fs.Open(path)
	if err != nil {
		log.Debugf("unable to open %q for fingerprint: %v", path, err)
		return 0
	}
	defer f.Close()

	filtered, err := readFiltered(f)
	if err != nil {
		log.Debugf("unable to read %q for fingerprint: %v", path, err)
		return 0
	}
	return murmur2(filtered, 1)
}

// readFiltered buffers the content with the four whitespace bytes removed.
// The filtered length seeds the hash, so the whole filtered stream is
// needed before mixing can start.
func readFiltered(r io.Reader) ([]byte, error) {
	var filtered []byte
	chunk := make([]byte, readChunkSize)
	for {
		n, err := r.Read(chunk)
		for _, b := range chunk[:n] {
			if isWhitespace(b) {
				continue
			}
			filtered = append(filtered, b)
		}
		if err == io.EOF {
			return filtered, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func isWhitespace(b byte) bool {
	// exactly these four; no other byte is ever filtered
	return b == 0x09 || b == 0x0a || b == 0x0d || b == 0x20
}

// murmur2 is the classic 32-bit MurmurHash2: multiply-xor-shift over
// little-endian 4-byte words with the 1-3 byte tail folded into the
// accumulator before final mixing.
func murmur2(data []byte, seed uint32) uint32 {
	const m = 0x5bd1e995
	const r = 24

	h := seed ^ uint32(len(data))

	i := 0
	for ; len(data)-i >= 4; i += 4 {
		k := uint32(data[i]) |
			uint32(data[i+1])<<8 |
			uint32(data[i+2])<<16 |
			uint32(data[i+3])<<24

		k *= m
		k ^= k >> r
		k *= m

		h *= m
		h ^= k
	}

	switch len(data) - i {
	case 3:
		h ^= uint32(data[i+2]) << 16
		fallthrough
	case 2:
		h ^= uint32(data[i+1]) << 8
		fallthrough
	case 1:
		h ^= uint32(data[i])
		h *= m
	}

	h ^= h >> 13
	h *= m
	h ^= h >> 15

	return h
}
