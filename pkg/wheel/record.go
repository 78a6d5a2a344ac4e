package wheel

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/wheelhouse-build/wheelhouse/pkg/errors"
	"github.com/wheelhouse-build/wheelhouse/pkg/logging"
)

// hashChunkSize bounds memory use while hashing regardless of file size
const hashChunkSize = 8 * 1024

// RecordEntry is one line of the RECORD manifest: the archive-relative
// path of a file, its encoded content hash and its size in bytes. The
// manifest's own entry carries empty hash and size fields.
type RecordEntry struct {
	Path string
	Hash string
	Size string
}

// String renders the entry as its manifest line
func (e RecordEntry) String() string {
	return fmt.Sprintf("%s,%s,%s", e.Path, e.Hash, e.Size)
}

// BuildRecord walks every regular file under root and emits the RECORD
// manifest text, one "path,sha256=<digest>,<size>" line per file plus the
// self-referential terminator line for recordPath, whose hash and size
// fields stay empty because the manifest cannot hash itself.
//
// It must run after all other metadata members have been written so the
// manifest captures the complete final tree. Per-file hashing fans out
// across a bounded worker pool; emission order is the deterministic
// lexical walk order regardless of hashing order.
func BuildRecord(root, recordPath string) (string, error) {
	logger := logging.GetLogger("wheel.record")

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "cannot walk staging tree").
			WithDetail("root", root)
	}

	entries := make([]RecordEntry, len(paths))
	errs := make([]error, len(paths))

	workers := runtime.NumCPU()
	if workers > len(paths) {
		workers = len(paths)
	}

	var wg sync.WaitGroup
	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				entries[i], errs[i] = hashEntry(root, paths[i])
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return "", err
		}
	}

	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(entry.String())
		b.WriteString("\n")
	}

	// The manifest lists itself, but with the hash and size fields empty
	b.WriteString(RecordEntry{Path: filepath.ToSlash(recordPath)}.String())
	b.WriteString("\n")

	logger.Debug().Int("entries", len(entries)+1).Str("root", root).Msg("Built RECORD manifest")
	return b.String(), nil
}

// hashEntry computes the manifest entry for a single file
func hashEntry(root, path string) (RecordEntry, error) {
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		return RecordEntry{}, errors.Wrap(err, errors.ErrFileAccess, "cannot relativize staged path").
			WithDetail("path", path)
	}

	hash, size, err := hashFile(path)
	if err != nil {
		return RecordEntry{}, err
	}

	return RecordEntry{
		Path: filepath.ToSlash(relPath),
		Hash: "sha256=" + hash,
		Size: fmt.Sprintf("%d", size),
	}, nil
}

// hashFile streams the file through SHA-256 in fixed-size chunks and
// returns the digest base64-url-encoded with "=" padding stripped, plus
// the file's size in bytes
func hashFile(path string) (string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", 0, errors.Wrap(err, errors.ErrFileAccess, "cannot open file for hashing").
			WithDetail("path", path)
	}
	defer func() { _ = file.Close() }()

	digest := sha256.New()
	var size int64
	buf := make([]byte, hashChunkSize)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			digest.Write(buf[:n])
			size += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, errors.Wrap(err, errors.ErrFileAccess, "cannot read file for hashing").
				WithDetail("path", path)
		}
	}

	return base64.RawURLEncoding.EncodeToString(digest.Sum(nil)), size, nil
}
