package stl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Facet is one triangle of a solid: a normal plus exactly three vertices.
type Facet struct {
	Normal   Normal
	Vertices [3]Vertex

	// AttributeByteCount only exists in binary STL, where tools commonly use
	// it for color. Text reading leaves it at 0 and text writing drops it.
	AttributeByteCount uint16
}

// NewFacet creates a new facet with a zero attribute byte count
func NewFacet(normal Normal, v1, v2, v3 Vertex) Facet {
	return Facet{
		Normal:   normal,
		Vertices: [3]Vertex{v1, v2, v3},
	}
}

// ReadFacetText reads the next facet from a text document.
//
// It returns io.EOF when no facet follows: r is exhausted or the next line is
// "endsolid". The "outer loop", "endloop" and "endfacet" lines are skipped
// without checking their text.
func ReadFacetText(r *bufio.Reader) (Facet, error) {
	line, err := nextNonBlankLine(r)
	if err != nil {
		return Facet{}, err
	}
	if isEndSolid(line) {
		return Facet{}, io.EOF
	}

	var f Facet
	keyword, x, y, z, err := scanTriple(line)
	if err != nil {
		return Facet{}, err
	}
	if keyword != keywordNormal {
		return Facet{}, &MissingNormalError{Line: line}
	}
	f.Normal = Normal{X: x, Y: y, Z: z}

	// outer loop
	if err := skipLine(r); err != nil {
		return Facet{}, err
	}

	for i := range f.Vertices {
		line, err := readLine(r)
		if err != nil {
			return Facet{}, unexpectedEnd(err)
		}
		keyword, x, y, z, err := scanTriple(line)
		if err != nil {
			return Facet{}, fmt.Errorf("vertex %d: %w", i, err)
		}
		if keyword != keywordVertex {
			return Facet{}, fmt.Errorf("vertex %d: %w", i, &VertexFormatError{Line: line})
		}
		f.Vertices[i] = Vertex{X: x, Y: y, Z: z}
	}

	// endloop, endfacet
	for n := 0; n < 2; n++ {
		if err := skipLine(r); err != nil {
			return Facet{}, err
		}
	}
	return f, nil
}

// ReadFacetBinary reads one 50 byte facet record. It returns io.EOF when r
// is exhausted at a record boundary and a *TruncatedError for a partial
// record.
func ReadFacetBinary(r io.Reader) (Facet, error) {
	var buf [facetSize]byte
	if err := readRecord(r, buf[:]); err != nil {
		return Facet{}, err
	}
	return decodeFacet(buf[:]), nil
}

func decodeFacet(b []byte) Facet {
	_ = b[facetSize-1] // early bounds check
	var f Facet
	f.Normal.X, f.Normal.Y, f.Normal.Z = getTriple(b)
	for i := range f.Vertices {
		off := vertexSize * (i + 1)
		f.Vertices[i].X, f.Vertices[i].Y, f.Vertices[i].Z = getTriple(b[off:])
	}
	f.AttributeByteCount = le.Uint16(b[facetSize-2:])
	return f
}

func (f Facet) encode(b []byte) {
	_ = b[facetSize-1] // early bounds check
	putTriple(b, f.Normal.X, f.Normal.Y, f.Normal.Z)
	for i, v := range f.Vertices {
		putTriple(b[vertexSize*(i+1):], v.X, v.Y, v.Z)
	}
	le.PutUint16(b[facetSize-2:], f.AttributeByteCount)
}

// WriteText writes the facet with its "outer loop" framing.
func (f Facet) WriteText(w io.Writer) error {
	if err := f.Normal.WriteText(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\t\touter loop\n"); err != nil {
		return err
	}
	for _, v := range f.Vertices {
		if err := v.WriteText(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\t\tendloop\n\tendfacet\n")
	return err
}

// WriteBinary writes the facet as a 50 byte record.
func (f Facet) WriteBinary(w io.Writer) error {
	var buf [facetSize]byte
	f.encode(buf[:])
	_, err := w.Write(buf[:])
	return err
}

// Equal compares normals and then vertices pairwise by index. Vertex order
// matters even though it does not change the geometry. The attribute byte
// count is not compared.
func (f Facet) Equal(other Facet) bool {
	if !f.Normal.Equal(other.Normal) {
		return false
	}
	for i := range f.Vertices {
		if !f.Vertices[i].Equal(other.Vertices[i]) {
			return false
		}
	}
	return true
}

// Shift moves all three vertices by delta.
func (f *Facet) Shift(delta Vertex) {
	for i := range f.Vertices {
		f.Vertices[i].Shift(delta)
	}
}

// Invert flips the normal. Vertex positions are left alone.
func (f *Facet) Invert() {
	f.Normal.Invert()
}

func (f Facet) String() string {
	return formatTriple(keywordNormal, f.Normal.X, f.Normal.Y, f.Normal.Z)
}

func nextNonBlankLine(r *bufio.Reader) (string, error) {
	for {
		line, err := readLine(r)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}

func isEndSolid(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && strings.HasPrefix(strings.ToLower(fields[0]), "endsolid")
}

// skipLine discards a framing line. Running out of input here is tolerated;
// a missing vertex is reported by the caller instead.
func skipLine(r *bufio.Reader) error {
	if _, err := readLine(r); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func unexpectedEnd(err error) error {
	if err == io.EOF {
		return fmt.Errorf("facet ended early: %w", io.ErrUnexpectedEOF)
	}
	return err
}
