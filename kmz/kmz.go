// Package kmz reads and writes the zip container that carries a mission
// template.
package kmz

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// TemplatePath is the location of the mission template inside the archive.
const TemplatePath = "wpmz/template.kml"

// ErrNoTemplate is returned when an archive lacks TemplatePath.
var ErrNoTemplate = errors.New("kmz: archive has no " + TemplatePath)

// File is an additional archive member, such as resources next to the
// template.
type File struct {
	Name string
	Data []byte
}

// Write stores template and extra files in a deflated zip written to w.
func Write(w io.Writer, template []byte, extra ...File) error {
	zw := zip.NewWriter(w)
	files := append([]File{{Name: TemplatePath, Data: template}}, extra...)
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		name, err := clean(f.Name)
		if err != nil {
			return err
		}
		if seen[name] {
			return fmt.Errorf("kmz: duplicate entry %s", name)
		}
		seen[name] = true
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("kmz: create %s: %w", name, err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return fmt.Errorf("kmz: write %s: %w", name, err)
		}
	}
	return zw.Close()
}

// Read returns the template stored in the archive held by r.
func Read(r io.ReaderAt, size int64) ([]byte, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("kmz: open archive: %w", err)
	}
	f, err := zr.Open(TemplatePath)
	if err != nil {
		return nil, ErrNoTemplate
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("kmz: read %s: %w", TemplatePath, err)
	}
	return data, nil
}

// ReadBytes is Read for an archive held in memory.
func ReadBytes(data []byte) ([]byte, error) {
	return Read(bytes.NewReader(data), int64(len(data)))
}

// WriteFile creates the archive at filename.
func WriteFile(filename string, template []byte, extra ...File) (err error) {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(out, template, extra...)
}

// ReadFile returns the template of the archive at filename.
func ReadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return Read(f, st.Size())
}

// clean rejects member names that would escape the archive root.
func clean(name string) (string, error) {
	c := path.Clean(name)
	if c == "." || c == ".." || path.IsAbs(c) || strings.HasPrefix(c, "../") {
		return "", fmt.Errorf("kmz: invalid entry name %q", name)
	}
	return c, nil
}
