package stl

import (
	"errors"
	"fmt"
)

var (
	// ErrHeaderFormat is matched by errors.Is for every *HeaderFormatError.
	ErrHeaderFormat = errors.New("invalid STL header")
	// ErrVertexFormat is matched by errors.Is for every *VertexFormatError.
	ErrVertexFormat = errors.New("invalid vertex line")
	// ErrCoordinateParse is matched by errors.Is for every *CoordinateParseError.
	ErrCoordinateParse = errors.New("invalid coordinate")
	// ErrTruncated is matched by errors.Is for every *TruncatedError.
	ErrTruncated = errors.New("truncated binary data")
	// ErrMissingNormal is matched by errors.Is for every *MissingNormalError.
	ErrMissingNormal = errors.New("facet has no normal")
	// ErrAmbiguousHeader is returned when a binary header would be detected as text.
	ErrAmbiguousHeader = errors.New(`binary header must not start with "solid"`)
)

// HeaderFormatError reports a text document whose first line is not "solid [name]".
type HeaderFormatError struct {
	Line string
}

func (e *HeaderFormatError) Error() string {
	return fmt.Sprintf("invalid STL header, expected \"solid [name]\" but found %q", e.Line)
}

func (e *HeaderFormatError) Is(target error) bool { return target == ErrHeaderFormat }

// VertexFormatError reports a normal or vertex line that does not match
// "facet normal x y z" or "vertex x y z".
type VertexFormatError struct {
	Line string
}

func (e *VertexFormatError) Error() string {
	return fmt.Sprintf("vertex is not formatted correctly: %q", e.Line)
}

func (e *VertexFormatError) Is(target error) bool { return target == ErrVertexFormat }

// CoordinateParseError reports a coordinate token that is not a float.
//
// Axis is "X", "Y" or "Z". Err holds the strconv error, if any.
type CoordinateParseError struct {
	Axis  string
	Value string
	Err   error
}

func (e *CoordinateParseError) Error() string {
	return fmt.Sprintf("could not parse %s coordinate from value %q", e.Axis, e.Value)
}

func (e *CoordinateParseError) Unwrap() error { return e.Err }

func (e *CoordinateParseError) Is(target error) bool { return target == ErrCoordinateParse }

// TruncatedError reports a binary record that ended early.
type TruncatedError struct {
	Expected int
	Actual   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated binary data: expected %d bytes but found %d", e.Expected, e.Actual)
}

func (e *TruncatedError) Is(target error) bool { return target == ErrTruncated }

// MissingNormalError reports a text facet whose first line is not a "facet normal" line.
type MissingNormalError struct {
	Line string
}

func (e *MissingNormalError) Error() string {
	return fmt.Sprintf("facet has no normal, found %q", e.Line)
}

func (e *MissingNormalError) Is(target error) bool { return target == ErrMissingNormal }
