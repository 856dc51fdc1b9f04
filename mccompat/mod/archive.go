package mod

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/afero"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Archive is a read-only view over a mod jar (a zip file).
type Archive struct {
	reader *zip.Reader
	closer io.Closer
}

func OpenArchive(fs afero.Fs, path string) (*Archive, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open archive %q: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to stat archive %q: %w", path, err)
	}

	reader, err := zip.NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to read archive %q: %w", path, err)
	}

	return &Archive{reader: reader, closer: f}, nil
}

func (a *Archive) Close() error {
	return a.closer.Close()
}

func (a *Archive) ListEntries() []string {
	names := make([]string, 0, len(a.reader.File))
	for _, f := range a.reader.File {
		names = append(names, f.Name)
	}
	return names
}

// ReadEntryText reads a named entry as UTF-8 text, stripping a UTF-8 BOM
// when present. The second return is false when the entry is missing,
// unreadable, or not valid UTF-8 — all equally "no descriptor here".
func (a *Archive) ReadEntryText(name string) (string, bool) {
	f, err := a.reader.Open(name)
	if err != nil {
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", false
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}
