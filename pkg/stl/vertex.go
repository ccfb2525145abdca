package stl

import (
	"bufio"
	"io"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a point in 3D space.
type Vertex struct {
	X, Y, Z float32
}

// NewVertex creates a new vertex
func NewVertex(x, y, z float32) Vertex {
	return Vertex{X: x, Y: y, Z: z}
}

// VertexFromVec3 converts an mgl32 vector to a vertex
func VertexFromVec3(v mgl32.Vec3) Vertex {
	return Vertex{X: v[0], Y: v[1], Z: v[2]}
}

// Vec3 returns the vertex as an mgl32 vector
func (v Vertex) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// ParseVertex parses a "vertex x y z" line. A "facet normal x y z" line is
// accepted as well since both share one grammar.
func ParseVertex(line string) (Vertex, error) {
	_, x, y, z, err := scanTriple(line)
	if err != nil {
		return Vertex{}, err
	}
	return Vertex{X: x, Y: y, Z: z}, nil
}

// ReadVertexText reads the next line of r as a vertex. It returns io.EOF
// when r has no more lines.
func ReadVertexText(r *bufio.Reader) (Vertex, error) {
	line, err := readLine(r)
	if err != nil {
		return Vertex{}, err
	}
	return ParseVertex(line)
}

// ReadVertexBinary reads three little endian float32 values. It returns
// io.EOF when r is already exhausted and a *TruncatedError when fewer than
// 12 bytes are left.
func ReadVertexBinary(r io.Reader) (Vertex, error) {
	var buf [vertexSize]byte
	if err := readRecord(r, buf[:]); err != nil {
		return Vertex{}, err
	}
	x, y, z := getTriple(buf[:])
	return Vertex{X: x, Y: y, Z: z}, nil
}

// WriteText writes the vertex as a single indented "vertex x y z" line.
func (v Vertex) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, "\t\t\t"+v.String()+"\n")
	return err
}

// WriteBinary writes the vertex as 12 bytes, the inverse of ReadVertexBinary.
func (v Vertex) WriteBinary(w io.Writer) error {
	var buf [vertexSize]byte
	putTriple(buf[:], v.X, v.Y, v.Z)
	_, err := w.Write(buf[:])
	return err
}

// Shift adds delta to the vertex in place.
func (v *Vertex) Shift(delta Vertex) {
	v.X += delta.X
	v.Y += delta.Y
	v.Z += delta.Z
}

// Equal reports whether all three components are equal. There is no
// tolerance, so a NaN component is never equal.
func (v Vertex) Equal(other Vertex) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

func (v Vertex) String() string {
	return formatTriple(keywordVertex, v.X, v.Y, v.Z)
}

// Normal gives the direction a facet faces. It has the same layout and
// codec as Vertex.
type Normal Vertex

// NewNormal creates a new normal
func NewNormal(x, y, z float32) Normal {
	return Normal{X: x, Y: y, Z: z}
}

// NormalFromVertex copies the coordinates of v into a new normal.
func NormalFromVertex(v Vertex) Normal {
	return Normal(v)
}

// ParseNormal parses a "facet normal x y z" line.
func ParseNormal(line string) (Normal, error) {
	v, err := ParseVertex(line)
	if err != nil {
		return Normal{}, err
	}
	return NormalFromVertex(v), nil
}

// ReadNormalText reads the next line of r as a normal. It returns io.EOF
// when r has no more lines.
func ReadNormalText(r *bufio.Reader) (Normal, error) {
	v, err := ReadVertexText(r)
	if err != nil {
		return Normal{}, err
	}
	return NormalFromVertex(v), nil
}

// ReadNormalBinary reads a normal with the same layout as ReadVertexBinary.
func ReadNormalBinary(r io.Reader) (Normal, error) {
	v, err := ReadVertexBinary(r)
	if err != nil {
		return Normal{}, err
	}
	return NormalFromVertex(v), nil
}

// WriteText writes the normal as a "facet normal x y z" line.
func (n Normal) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, "\t"+formatTriple(keywordNormal, n.X, n.Y, n.Z)+"\n")
	return err
}

// WriteBinary writes the normal as 12 bytes.
func (n Normal) WriteBinary(w io.Writer) error {
	return Vertex(n).WriteBinary(w)
}

// Invert flips the normal so it faces the opposite direction.
func (n *Normal) Invert() {
	n.X = -n.X
	n.Y = -n.Y
	n.Z = -n.Z
}

// Equal reports whether both normals have identical components.
func (n Normal) Equal(other Normal) bool {
	return Vertex(n).Equal(Vertex(other))
}

// Vec3 returns the normal as an mgl32 vector
func (n Normal) Vec3() mgl32.Vec3 {
	return Vertex(n).Vec3()
}

func (n Normal) String() string {
	return formatTriple("normal", n.X, n.Y, n.Z)
}
