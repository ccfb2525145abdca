package stl

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Open reads an STL file and returns a Document.
// It automatically detects whether the file is text or binary.
func Open(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// SaveAsText writes the document to path in text form, replacing any
// existing file.
func (d *Document) SaveAsText(path string) error {
	return d.save(path, d.WriteText)
}

// SaveAsBinary writes the document to path in binary form, replacing any
// existing file.
func (d *Document) SaveAsBinary(path string) error {
	return d.save(path, d.WriteBinary)
}

func (d *Document) save(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return write(file)
}

// CopyAsText reads a document of either format from src and writes it to
// dst as text. Neither stream is closed.
func CopyAsText(src io.ReadSeeker, dst io.Writer) (*Document, error) {
	return copyAs(src, dst, FormatText)
}

// CopyAsBinary reads a document of either format from src and writes it to
// dst as binary. Neither stream is closed.
func CopyAsBinary(src io.ReadSeeker, dst io.Writer) (*Document, error) {
	return copyAs(src, dst, FormatBinary)
}

func copyAs(src io.ReadSeeker, dst io.Writer, format Format) (*Document, error) {
	doc, err := Read(src)
	if err != nil {
		return nil, err
	}
	if err := doc.Write(dst, format); err != nil {
		return nil, err
	}
	return doc, nil
}

// ReadString reads a text document held in s. An empty s yields a nil
// document and a nil error.
func ReadString(s string) (*Document, error) {
	if s == "" {
		return nil, nil
	}
	return ReadText(strings.NewReader(s))
}
