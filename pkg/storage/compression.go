package storage

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the stream compression applied around a document.
type Compression uint8

const (
	// CompressionNone stores the document as is.
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionLZ4
)

var extensions = map[Compression]string{
	CompressionGzip: ".gz",
	CompressionZstd: ".zst",
	CompressionLZ4:  ".lz4",
}

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// Extension returns the file extension including the dot, or "" for none.
func (c Compression) Extension() string {
	return extensions[c]
}

// CompressionFromPath picks the compression from the last extension of path.
// Matching is case-insensitive.
func CompressionFromPath(path string) Compression {
	ext := strings.ToLower(filepath.Ext(path))
	for c, e := range extensions {
		if e == ext {
			return c
		}
	}
	return CompressionNone
}

// TrimExtension removes the compression extension from path, if any.
func TrimExtension(path string) string {
	if CompressionFromPath(path) == CompressionNone {
		return path
	}
	return path[:len(path)-len(filepath.Ext(path))]
}

// NewReader wraps r so that reads return decompressed data.
// The returned reader must be closed; closing it does not close r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return zr, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %v", c)
	}
}

// NewWriter wraps w so that writes are compressed.
// Close flushes the compressed stream; it does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		return enc, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %v", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
