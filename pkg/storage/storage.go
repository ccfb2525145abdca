// Package storage reads and writes STL documents on disk, optionally
// wrapped in gzip, zstd or lz4 compression chosen by file extension.
package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/philipparndt/stlkit/pkg/stl"
)

// Options control how a document is written.
type Options struct {
	Format stl.Format
	// BinaryHeader replaces stl.DefaultBinaryHeader when not empty.
	BinaryHeader string
}

// Open reads the document at path. Compressed files are detected by their
// extension and decompressed while reading.
func Open(path string) (*stl.Document, stl.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, stl.FormatUnknown, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	compression := CompressionFromPath(path)
	if compression == CompressionNone {
		format, err := stl.DetectFormat(file)
		if err != nil {
			return nil, stl.FormatUnknown, err
		}
		doc, err := stl.Read(file)
		return doc, format, err
	}
	return Read(file, compression)
}

// Read decompresses r and decodes the document it contains.
func Read(r io.Reader, c Compression) (*stl.Document, stl.Format, error) {
	zr, err := NewReader(r, c)
	if err != nil {
		return nil, stl.FormatUnknown, err
	}
	defer zr.Close()

	return stl.Decode(zr)
}

// Write encodes doc into w, compressing it with c.
func Write(w io.Writer, doc *stl.Document, c Compression, opts Options) error {
	zw, err := NewWriter(w, c)
	if err != nil {
		return err
	}

	switch opts.Format {
	case stl.FormatText:
		err = doc.WriteText(zw)
	case stl.FormatBinary:
		header := opts.BinaryHeader
		if header == "" {
			header = stl.DefaultBinaryHeader
		}
		err = doc.WriteBinaryHeader(zw, header)
	default:
		err = fmt.Errorf("unsupported STL format: %v", opts.Format)
	}
	if err != nil {
		_ = zw.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish %v stream: %w", c, err)
	}
	return nil
}

// Save writes doc to path. The file is written under a temporary name and
// renamed into place, so readers never observe a partial document.
func Save(path string, doc *stl.Document, opts Options) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	_ = tmp.Chmod(0644)

	buf := bufio.NewWriter(tmp)
	if err := Write(buf, doc, CompressionFromPath(path), opts); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	tmpName = ""
	return nil
}
