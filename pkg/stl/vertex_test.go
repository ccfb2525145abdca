package stl

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVertex(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Vertex
	}{
		{"plain", "vertex 1 2 3", Vertex{1, 2, 3}},
		{"indented", "\t\t\tvertex -10 -10 0", Vertex{-10, -10, 0}},
		{"uppercase", "  VERTEX 1.5 -2.25 0  ", Vertex{1.5, -2.25, 0}},
		{"exponent", "vertex 1e3 -2.5E-1 +4", Vertex{1000, -0.25, 4}},
		{"leading dot", "vertex .5 -.5 0.", Vertex{0.5, -0.5, 0}},
		{"normal keyword", "facet normal 0 0 1", Vertex{0, 0, 1}},
		{"extra tokens", "vertex 1 2 3 4", Vertex{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVertex(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVertexFormatError(t *testing.T) {
	for _, line := range []string{"", "vertex 1 2", "vortex 1 2 3", "facet 0 0 1", "outer loop", "1 2 3"} {
		t.Run(line, func(t *testing.T) {
			_, err := ParseVertex(line)
			require.ErrorIs(t, err, ErrVertexFormat)

			var vfe *VertexFormatError
			require.ErrorAs(t, err, &vfe)
			assert.Equal(t, line, vfe.Line)
			assert.Contains(t, err.Error(), "vertex is not formatted correctly")
		})
	}
}

func TestParseVertexCoordinateError(t *testing.T) {
	tests := []struct {
		line  string
		axis  string
		value string
	}{
		{"vertex abc 0 0", "X", "abc"},
		{"vertex 0 1,5 0", "Y", "1,5"},
		{"vertex 0 0 1e", "Z", "1e"},
		{"vertex 0x1p-2 0 0", "X", "0x1p-2"},
		{"vertex 0 1_000 0", "Y", "1_000"},
		{"vertex 0 0 1e39", "Z", "1e39"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseVertex(tt.line)
			require.ErrorIs(t, err, ErrCoordinateParse)

			var cpe *CoordinateParseError
			require.ErrorAs(t, err, &cpe)
			assert.Equal(t, tt.axis, cpe.Axis)
			assert.Equal(t, tt.value, cpe.Value)
			assert.Contains(t, err.Error(), tt.axis+" coordinate")
		})
	}
}

func TestReadVertexText(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("vertex 1 2 3\r\nvertex 4 5 6"))

	v, err := ReadVertexText(r)
	require.NoError(t, err)
	assert.Equal(t, Vertex{1, 2, 3}, v)

	v, err = ReadVertexText(r)
	require.NoError(t, err)
	assert.Equal(t, Vertex{4, 5, 6}, v)

	_, err = ReadVertexText(r)
	assert.Equal(t, io.EOF, err)
}

func TestVertexBinary(t *testing.T) {
	v := Vertex{1.5, -2, 1e-7}

	var buf bytes.Buffer
	require.NoError(t, v.WriteBinary(&buf))
	require.Equal(t, 12, buf.Len())
	assert.Equal(t, []byte{0, 0, 0xc0, 0x3f}, buf.Bytes()[:4])

	got, err := ReadVertexBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	_, err = ReadVertexBinary(&buf)
	assert.Equal(t, io.EOF, err)
}

func TestReadVertexBinaryTruncated(t *testing.T) {
	for _, n := range []int{1, 5, 11} {
		_, err := ReadVertexBinary(bytes.NewReader(make([]byte, n)))
		require.ErrorIs(t, err, ErrTruncated)

		var te *TruncatedError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, 12, te.Expected)
		assert.Equal(t, n, te.Actual)
	}
}

func TestVertexWriteText(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Vertex{-10.123, 0.23, 0}.WriteText(&sb))
	assert.Equal(t, "\t\t\tvertex -10.123 0.23 0\n", sb.String())
}

func TestFormatCoordinate(t *testing.T) {
	tests := map[float32]string{
		0:       "0",
		1:       "1",
		-10:     "-10",
		0.23:    "0.23",
		1e-5:    "0.00001",
		1234567: "1234567",
		-1.5e-3: "-0.0015",
	}
	for in, want := range tests {
		got := formatCoordinate(in)
		assert.Equal(t, want, got)

		back, err := parseCoordinate("X", got)
		require.NoError(t, err)
		assert.Equal(t, in, back, "formatted %q must read back exactly", got)
	}
}

func TestVertexShift(t *testing.T) {
	v := Vertex{1, 2, 3}
	v.Shift(Vertex{10, -20, 0.5})
	assert.Equal(t, Vertex{11, -18, 3.5}, v)

	v.Shift(Vertex{-10, 20, -0.5})
	assert.Equal(t, Vertex{1, 2, 3}, v)
}

func TestVertexEqual(t *testing.T) {
	assert.True(t, Vertex{1, 2, 3}.Equal(Vertex{1, 2, 3}))
	assert.False(t, Vertex{1, 2, 3}.Equal(Vertex{1, 2, 3.0001}))
	assert.False(t, Vertex{3, 2, 1}.Equal(Vertex{1, 2, 3}))

	nan := float32(math.NaN())
	assert.False(t, Vertex{nan, 0, 0}.Equal(Vertex{nan, 0, 0}))
}

func TestVertexVec3(t *testing.T) {
	v := Vertex{1, 2, 3}
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, v.Vec3())
	assert.Equal(t, v, VertexFromVec3(v.Vec3()))
}

func TestNormal(t *testing.T) {
	n := NormalFromVertex(Vertex{0.5, -1, 0})
	assert.Equal(t, NewNormal(0.5, -1, 0), n)
	assert.Equal(t, "normal 0.5 -1 0", n.String())

	n.Invert()
	assert.Equal(t, Normal{-0.5, 1, 0}, n)
	n.Invert()
	assert.True(t, n.Equal(Normal{0.5, -1, 0}))

	parsed, err := ParseNormal("facet normal 0 0 -1")
	require.NoError(t, err)
	assert.Equal(t, Normal{0, 0, -1}, parsed)

	var sb strings.Builder
	require.NoError(t, parsed.WriteText(&sb))
	assert.Equal(t, "\tfacet normal 0 0 -1\n", sb.String())
}

func TestNormalBinary(t *testing.T) {
	n := Normal{0, 0, 1}

	var buf bytes.Buffer
	require.NoError(t, n.WriteBinary(&buf))

	var vbuf bytes.Buffer
	require.NoError(t, Vertex(n).WriteBinary(&vbuf))
	assert.Equal(t, vbuf.Bytes(), buf.Bytes())

	got, err := ReadNormalBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestReadNormalText(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("facet normal 1 0 0\n"))
	n, err := ReadNormalText(r)
	require.NoError(t, err)
	assert.Equal(t, Normal{1, 0, 0}, n)

	_, err = ReadNormalText(r)
	assert.True(t, errors.Is(err, io.EOF))
}
