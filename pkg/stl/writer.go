package stl

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// DefaultBinaryHeader is written into the 80 byte header of binary files.
const DefaultBinaryHeader = "Binary STL written by stlkit"

// Write writes the document in the given format.
func (d *Document) Write(w io.Writer, format Format) error {
	switch format {
	case FormatText:
		return d.WriteText(w)
	case FormatBinary:
		return d.WriteBinary(w)
	default:
		return fmt.Errorf("unsupported STL format: %v", format)
	}
}

// WriteText writes "solid <name>", every facet and a closing
// "endsolid <name>" line. No newline follows the closing line.
func (d *Document) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := io.WriteString(bw, d.String()+"\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, f := range d.Facets {
		if err := f.WriteText(bw); err != nil {
			return fmt.Errorf("failed to write facet %d: %w", i, err)
		}
	}
	if _, err := io.WriteString(bw, "end"+d.String()); err != nil {
		return fmt.Errorf("failed to write footer: %w", err)
	}
	return bw.Flush()
}

// WriteBinary writes the document with DefaultBinaryHeader.
func (d *Document) WriteBinary(w io.Writer) error {
	return d.WriteBinaryHeader(w, DefaultBinaryHeader)
}

// WriteBinaryHeader writes the document in binary form using header as the
// 80 byte comment. Longer headers are cut, shorter ones padded with NUL.
// The document name is not stored.
func (d *Document) WriteBinaryHeader(w io.Writer, header string) error {
	if formatOf([]byte(header)) == FormatText {
		return ErrAmbiguousHeader
	}
	if int64(len(d.Facets)) > math.MaxUint32 {
		return fmt.Errorf("too many facets for binary STL: %d", len(d.Facets))
	}

	bw := bufio.NewWriter(w)

	var head [headerSize + countSize]byte
	copy(head[:headerSize], header)
	le.PutUint32(head[headerSize:], uint32(len(d.Facets)))
	if _, err := bw.Write(head[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	var buf [facetSize]byte
	for i, f := range d.Facets {
		f.encode(buf[:])
		if _, err := bw.Write(buf[:]); err != nil {
			return fmt.Errorf("failed to write facet %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// Text returns the text form of the document.
func (d *Document) Text() string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = d.WriteText(&sb)
	return sb.String()
}
