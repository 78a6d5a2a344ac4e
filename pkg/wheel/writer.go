package wheel

import (
	"archive/zip"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/wheelhouse-build/wheelhouse/pkg/errors"
	"github.com/wheelhouse-build/wheelhouse/pkg/logging"
	"github.com/wheelhouse-build/wheelhouse/pkg/metadata"
)

// Writer assembles the dist-info metadata directory inside a staged tree
// and packs the whole tree into the final wheel archive.
type Writer struct {
	Identity Identity
	Record   *metadata.Record
}

// NewWriter creates a writer for the given record, deriving the archive
// identity from its name and version
func NewWriter(record *metadata.Record) *Writer {
	return &Writer{
		Identity: NewIdentity(record.Name, record.Version),
		Record:   record,
	}
}

// Write finalizes the staged tree rooted at root and produces the archive
// in destDir, returning its path.
//
// It refuses to overwrite: if the computed file name already exists at
// destDir it fails with ALREADY_EXISTS before touching the staging tree.
// The write itself is not transactional; an interruption between the
// existence check and archive completion can leave a partial file behind.
func (w *Writer) Write(root, destDir string) (string, error) {
	logger := logging.GetLogger("wheel.writer")

	destPath := filepath.Join(destDir, w.Identity.Filename())
	if _, err := os.Stat(destPath); err == nil {
		return "", errors.New(errors.ErrAlreadyExists, "wheel file already exists").
			WithDetail("path", destPath)
	}

	if err := w.writeDistInfo(root); err != nil {
		return "", err
	}

	if err := w.writeArchive(root, destPath); err != nil {
		return "", err
	}

	logger.Info().Str("path", destPath).Msg("Wheel archive written")
	return destPath, nil
}

// writeDistInfo writes the three metadata members in their required
// order: WHEEL, METADATA, then RECORD last so the manifest captures the
// other two.
func (w *Writer) writeDistInfo(root string) error {
	distInfo := w.Identity.DistInfoDir()
	tree := &StagingTree{root: root}

	if err := tree.WriteFile(filepath.Join(distInfo, "WHEEL"), BuildDescriptor(w.Identity)); err != nil {
		return err
	}

	if err := tree.WriteFile(filepath.Join(distInfo, "METADATA"), w.Record.Encode()); err != nil {
		return err
	}

	recordPath := filepath.Join(distInfo, "RECORD")
	recordText, err := BuildRecord(root, recordPath)
	if err != nil {
		return err
	}
	return tree.WriteFile(recordPath, recordText)
}

// archiveEpoch is the fixed modification time stamped on every archive
// member. Zip timestamps bottom out at the DOS epoch; pinning them there
// keeps the archive bytes a pure function of the staged content, so two
// builds of identical input are byte-identical.
var archiveEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// writeArchive packs every regular file under root into a zip container
// at its slash-separated path relative to root, compressing each entry
// with deflate
func (w *Writer) writeArchive(root, destPath string) error {
	archive, err := os.Create(destPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrArchiveWrite, "cannot create wheel file").
			WithDetail("path", destPath)
	}
	defer func() { _ = archive.Close() }()

	zipWriter := zip.NewWriter(archive)
	defer func() { _ = zipWriter.Close() }()

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		header := &zip.FileHeader{
			Name:     filepath.ToSlash(relPath),
			Method:   zip.Deflate,
			Modified: archiveEpoch,
		}

		entry, err := zipWriter.CreateHeader(header)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		_, err = entry.Write(data)
		return err
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrArchiveWrite, "cannot write wheel archive").
			WithDetail("path", destPath)
	}

	if err := zipWriter.Close(); err != nil {
		return errors.Wrap(err, errors.ErrArchiveWrite, "cannot finalize wheel archive").
			WithDetail("path", destPath)
	}
	return nil
}
