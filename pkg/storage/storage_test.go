package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/stlkit/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(n int) *stl.Document {
	doc := stl.New("stored", nil)
	for i := 0; i < n; i++ {
		x := float32(i)
		doc.AppendFacets(stl.Facet{
			Normal:             stl.Normal{X: 0, Y: 0, Z: 1},
			Vertices:           [3]stl.Vertex{{X: x, Y: 0, Z: 0}, {X: x + 1, Y: 0, Z: 0}, {X: x, Y: 1, Z: 0}},
			AttributeByteCount: uint16(i),
		})
	}
	return doc
}

func TestCompressionFromPath(t *testing.T) {
	tests := map[string]Compression{
		"model.stl":        CompressionNone,
		"model.stl.gz":     CompressionGzip,
		"MODEL.STL.GZ":     CompressionGzip,
		"dir.zst/model":    CompressionNone,
		"model.stl.zst":    CompressionZstd,
		"a/b/model.lz4":    CompressionLZ4,
		"model.stl.tar.gz": CompressionGzip,
	}
	for path, want := range tests {
		assert.Equal(t, want, CompressionFromPath(path), path)
	}

	assert.Equal(t, "model.stl", TrimExtension("model.stl.zst"))
	assert.Equal(t, "model.stl", TrimExtension("model.stl"))
	assert.Equal(t, ".lz4", CompressionLZ4.Extension())
	assert.Equal(t, "", CompressionNone.Extension())
	assert.Equal(t, "zstd", CompressionZstd.String())
}

func TestRoundTrip(t *testing.T) {
	doc := testDocument(20)

	for _, c := range []Compression{CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4} {
		for _, format := range []stl.Format{stl.FormatText, stl.FormatBinary} {
			t.Run(c.String()+"/"+format.String(), func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, Write(&buf, doc, c, Options{Format: format}))

				got, detected, err := Read(bytes.NewReader(buf.Bytes()), c)
				require.NoError(t, err)
				assert.Equal(t, format, detected)
				if format == stl.FormatBinary {
					got.Name = doc.Name
				}
				assert.True(t, doc.Equal(got))
			})
		}
	}
}

func TestCompressionShrinksOutput(t *testing.T) {
	doc := testDocument(500)

	var plain bytes.Buffer
	require.NoError(t, Write(&plain, doc, CompressionNone, Options{Format: stl.FormatText}))

	for _, c := range []Compression{CompressionGzip, CompressionZstd, CompressionLZ4} {
		var compressed bytes.Buffer
		require.NoError(t, Write(&compressed, doc, c, Options{Format: stl.FormatText}))
		assert.Less(t, compressed.Len(), plain.Len(), c.String())
	}
}

func TestSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	doc := testDocument(8)

	for _, name := range []string{"plain.stl", "model.stl.gz", "model.stl.zst", "model.stl.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Save(path, doc, Options{Format: stl.FormatBinary, BinaryHeader: "custom"}))

			got, format, err := Open(path)
			require.NoError(t, err)
			assert.Equal(t, stl.FormatBinary, format)
			assert.Equal(t, doc.Facets, got.Facets)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4, "temporary files must not be left behind")
}

func TestSaveKeepsBinaryHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.stl")
	require.NoError(t, Save(path, testDocument(1), Options{Format: stl.FormatBinary, BinaryHeader: "custom"}))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	_, info, err := stl.ReadBinaryInfo(file)
	require.NoError(t, err)
	assert.Equal(t, "custom", info.HeaderText())
	assert.Equal(t, uint32(1), info.DeclaredCount)
}

func TestSaveFailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.stl")
	require.NoError(t, Save(path, testDocument(2), Options{Format: stl.FormatText}))

	err := Save(path, testDocument(3), Options{Format: stl.FormatBinary, BinaryHeader: "solid header"})
	require.ErrorIs(t, err, stl.ErrAmbiguousHeader)

	got, format, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, stl.FormatText, format)
	assert.Equal(t, 2, got.Len())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Open(filepath.Join(dir, "missing.stl"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	corrupt := filepath.Join(dir, "corrupt.stl.gz")
	require.NoError(t, os.WriteFile(corrupt, []byte("solid not gzip\n"), 0600))
	_, _, err = Open(corrupt)
	assert.Error(t, err)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testDocument(1), CompressionGzip, Options{})
	assert.Error(t, err)
}
