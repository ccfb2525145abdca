package stl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Format identifies one of the two STL encodings.
type Format int

const (
	FormatUnknown Format = iota
	FormatText
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ParseFormat parses "text" (or "ascii") and "binary".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "ascii":
		return FormatText, nil
	case "binary", "bin":
		return FormatBinary, nil
	default:
		return FormatUnknown, fmt.Errorf("unknown STL format %q (expected text or binary)", s)
	}
}

const textMagic = "solid"

// formatOf classifies a content prefix. Only the 5 byte "solid" prefix marks
// text, so a binary file whose free-form header starts with "solid" is
// detected as text. The format itself cannot tell the two apart.
func formatOf(prefix []byte) Format {
	if len(prefix) >= len(textMagic) && strings.EqualFold(string(prefix[:len(textMagic)]), textMagic) {
		return FormatText
	}
	return FormatBinary
}

// DetectFormat reads the first 5 bytes of r and rewinds it to the start.
func DetectFormat(r io.ReadSeeker) (Format, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return FormatUnknown, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	var prefix [len(textMagic)]byte
	n, err := io.ReadFull(r, prefix[:])
	if err != nil && err != io.EOF && !errors.Is(err, io.ErrUnexpectedEOF) {
		return FormatUnknown, fmt.Errorf("failed to read file header: %w", err)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return FormatUnknown, fmt.Errorf("failed to reset file pointer: %w", err)
	}
	return formatOf(prefix[:n]), nil
}

// Read detects the format of r and reads the document it contains.
// r is not closed.
func Read(r io.ReadSeeker) (*Document, error) {
	format, err := DetectFormat(r)
	if err != nil {
		return nil, err
	}
	if format == FormatText {
		return ReadText(r)
	}
	return ReadBinary(r)
}

// Decode reads a document from a stream that cannot seek. The format is
// detected by peeking at the first bytes instead of rewinding.
func Decode(r io.Reader) (*Document, Format, error) {
	br := asBufioReader(r)
	prefix, err := br.Peek(len(textMagic))
	if err != nil && err != io.EOF {
		return nil, FormatUnknown, fmt.Errorf("failed to read file header: %w", err)
	}

	format := formatOf(prefix)
	var doc *Document
	if format == FormatText {
		doc, err = readText(br)
	} else {
		doc, _, err = readBinary(br)
	}
	if err != nil {
		return nil, format, err
	}
	return doc, format, nil
}

// ReadText reads a text document. The first line must be "solid [name]";
// facets are then read until "endsolid" or the end of r. Any malformed facet
// fails the whole read.
func ReadText(r io.Reader) (*Document, error) {
	return readText(asBufioReader(r))
}

func readText(r *bufio.Reader) (*Document, error) {
	header, err := readLine(r)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	name, ok := parseHeader(header)
	if !ok {
		return nil, &HeaderFormatError{Line: header}
	}

	doc := New(name, nil)
	for i := 0; ; i++ {
		facet, err := ReadFacetText(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("facet %d: %w", i, err)
		}
		doc.Facets = append(doc.Facets, facet)
	}
	return doc, nil
}

// parseHeader matches "solid" optionally followed by whitespace and a name.
func parseHeader(line string) (string, bool) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if len(line) < len(textMagic) || !strings.EqualFold(line[:len(textMagic)], textMagic) {
		return "", false
	}

	rest := line[len(textMagic):]
	if rest == "" {
		return "", true
	}
	if !unicode.IsSpace(rune(rest[0])) {
		return "", false
	}
	return strings.TrimLeftFunc(rest, unicode.IsSpace), true
}

// BinaryInfo holds the parts of a binary file that are not kept in a Document.
type BinaryInfo struct {
	Header [headerSize]byte

	// DeclaredCount is the facet count stored after the header. Readers do
	// not trust it; facets are read until the data runs out.
	DeclaredCount uint32
}

// HeaderText returns the header with trailing NUL bytes and spaces removed.
func (i BinaryInfo) HeaderText() string {
	return strings.TrimRight(string(i.Header[:]), "\x00 ")
}

// ReadBinary reads a binary document. The 80 byte header is discarded and
// the declared facet count is ignored.
func ReadBinary(r io.Reader) (*Document, error) {
	doc, _, err := readBinary(asBufioReader(r))
	return doc, err
}

// ReadBinaryInfo is like ReadBinary but also returns the header and the
// declared facet count.
func ReadBinaryInfo(r io.Reader) (*Document, BinaryInfo, error) {
	return readBinary(asBufioReader(r))
}

// maxPrealloc caps how far a declared facet count is trusted for allocation.
const maxPrealloc = 1 << 16

func readBinary(r *bufio.Reader) (*Document, BinaryInfo, error) {
	var info BinaryInfo

	var head [headerSize + countSize]byte
	if err := readRecord(r, head[:]); err != nil {
		if err == io.EOF {
			err = &TruncatedError{Expected: len(head), Actual: 0}
		}
		return nil, info, fmt.Errorf("failed to read header: %w", err)
	}
	copy(info.Header[:], head[:headerSize])
	info.DeclaredCount = le.Uint32(head[headerSize:])

	doc := &Document{Facets: make([]Facet, 0, min(int(info.DeclaredCount), maxPrealloc))}
	for i := 0; ; i++ {
		// Some encoders leave no clean end-of-stream after the last record,
		// so stop as soon as the data is exactly used up.
		if _, err := r.Peek(1); err == io.EOF {
			break
		}

		facet, err := ReadFacetBinary(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, info, fmt.Errorf("facet %d: %w", i, err)
		}
		doc.Facets = append(doc.Facets, facet)
	}
	return doc, info, nil
}
