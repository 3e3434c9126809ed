package kmz_test

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/wpml/kmz"
)

func TestWriteRead(t *testing.T) {
	var buf bytes.Buffer
	tpl := []byte("<kml/>")
	require.NoError(t, kmz.Write(&buf, tpl, kmz.File{Name: "wpmz/res/readme.txt", Data: []byte("hi")}))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, kmz.TemplatePath, zr.File[0].Name)
	assert.Equal(t, zip.Deflate, zr.File[0].Method)

	got, err := kmz.ReadBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, tpl, got)
}

func TestWriteRejectsBadNames(t *testing.T) {
	for _, name := range []string{"../evil", "/abs", ".", kmz.TemplatePath} {
		err := kmz.Write(&bytes.Buffer{}, nil, kmz.File{Name: name})
		assert.Error(t, err, name)
	}
}

func TestReadMissingTemplate(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("other.txt")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = kmz.ReadBytes(buf.Bytes())
	assert.ErrorIs(t, err, kmz.ErrNoTemplate)

	_, err = kmz.ReadBytes([]byte("not a zip"))
	assert.Error(t, err)
}

func TestFileRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "mission.kmz")
	require.NoError(t, kmz.WriteFile(name, []byte("<x/>")))
	got, err := kmz.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, []byte("<x/>"), got)

	_, err = kmz.ReadFile(filepath.Join(t.TempDir(), "missing.kmz"))
	assert.Error(t, err)
}
