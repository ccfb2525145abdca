package stl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	headerSize = 80
	countSize  = 4
	vertexSize = 3 * 4
	facetSize  = vertexSize + 3*vertexSize + 2
)

const (
	keywordNormal = "facet normal"
	keywordVertex = "vertex"
)

// short name, for convenience
var le = binary.LittleEndian

// putTriple writes x, y, z as little endian float32 values into b[:12].
func putTriple(b []byte, x, y, z float32) {
	_ = b[11] // early bounds check
	le.PutUint32(b, math.Float32bits(x))
	le.PutUint32(b[4:], math.Float32bits(y))
	le.PutUint32(b[8:], math.Float32bits(z))
}

func getTriple(b []byte) (x, y, z float32) {
	_ = b[11] // early bounds check
	x = math.Float32frombits(le.Uint32(b))
	y = math.Float32frombits(le.Uint32(b[4:]))
	z = math.Float32frombits(le.Uint32(b[8:]))
	return x, y, z
}

// formatCoordinate renders f in plain decimal notation with the fewest
// digits that still read back as the same float32.
func formatCoordinate(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func formatTriple(keyword string, x, y, z float32) string {
	var sb strings.Builder
	sb.WriteString(keyword)
	for _, c := range [3]float32{x, y, z} {
		sb.WriteByte(' ')
		sb.WriteString(formatCoordinate(c))
	}
	return sb.String()
}

// scanTriple splits a "facet normal x y z" or "vertex x y z" line. Keywords
// are matched case-insensitively and tokens after z are ignored.
func scanTriple(line string) (keyword string, x, y, z float32, err error) {
	fields := strings.Fields(line)

	var coords []string
	switch {
	case len(fields) >= 1 && strings.EqualFold(fields[0], keywordVertex):
		keyword, coords = keywordVertex, fields[1:]
	case len(fields) >= 2 && strings.EqualFold(fields[0], "facet") && strings.EqualFold(fields[1], "normal"):
		keyword, coords = keywordNormal, fields[2:]
	}
	if keyword == "" || len(coords) < 3 {
		return "", 0, 0, 0, &VertexFormatError{Line: line}
	}

	if x, err = parseCoordinate("X", coords[0]); err != nil {
		return "", 0, 0, 0, err
	}
	if y, err = parseCoordinate("Y", coords[1]); err != nil {
		return "", 0, 0, 0, err
	}
	if z, err = parseCoordinate("Z", coords[2]); err != nil {
		return "", 0, 0, 0, err
	}
	return keyword, x, y, z, nil
}

// parseCoordinate accepts signed decimal and exponential literals. Hex floats
// and digit separators are rejected even though strconv understands them.
func parseCoordinate(axis, value string) (float32, error) {
	if strings.ContainsAny(value, "xXpP_") {
		return 0, &CoordinateParseError{Axis: axis, Value: value}
	}
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, &CoordinateParseError{Axis: axis, Value: value, Err: err}
	}
	return float32(f), nil
}

// readLine returns the next line without its line terminator. A final line
// without a terminator is returned as a normal line; io.EOF is only returned
// when nothing is left.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// readRecord fills buf. Zero bytes available is reported as io.EOF, a
// partial record as a *TruncatedError.
func readRecord(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		return &TruncatedError{Expected: len(buf), Actual: n}
	case err == io.EOF:
		return io.EOF
	default:
		return err
	}
}

func asBufioReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}
