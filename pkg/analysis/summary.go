package analysis

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/stlkit/pkg/geometry"
	"github.com/philipparndt/stlkit/pkg/stl"
)

// normalTolerance is how far a stored normal's length may be from 1.
const normalTolerance = 1e-3

// Summary contains read-only measurements of a document
type Summary struct {
	Name           string
	FacetCount     int
	BoundingBox    geometry.BoundingBox
	Dimensions     mgl64.Vec3
	SurfaceArea    float64
	MinEdgeLength  float64
	MaxEdgeLength  float64
	AvgEdgeLength  float64
	NonUnitNormals int
	// DegenerateFacets counts facets with (almost) zero area.
	DegenerateFacets int
}

// Summarize measures every facet of doc. The document is not modified.
func Summarize(doc *stl.Document) *Summary {
	result := &Summary{
		Name:        doc.Name,
		FacetCount:  doc.Len(),
		BoundingBox: geometry.NewBoundingBox(),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, facet := range doc.Facets {
		tri := geometry.FromFacet(facet)
		for _, v := range []mgl64.Vec3{tri.V1, tri.V2, tri.V3} {
			result.BoundingBox.Extend(v)
		}

		result.SurfaceArea += tri.Area()
		if tri.IsDegenerate() {
			result.DegenerateFacets++
		}
		if math.Abs(tri.Normal.Len()-1) > normalTolerance {
			result.NonUnitNormals++
		}

		for _, length := range tri.EdgeLengths() {
			totalLength += length
			minLength = min(minLength, length)
			maxLength = max(maxLength, length)
		}
	}

	result.Dimensions = result.BoundingBox.Size()
	if result.FacetCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(3*result.FacetCount)
	}
	return result
}

// FacetInfo contains measurements of a single facet
type FacetInfo struct {
	Index     int
	Area      float64
	Perimeter float64
	Triangle  geometry.Triangle
}

// Order selects how ListFacets sorts its result.
type Order int

const (
	// OrderIndex keeps document order.
	OrderIndex Order = iota
	OrderLargest
	OrderSmallest
)

// ListFacets measures the facets of doc and returns at most count of them
// in the requested order. A negative count returns all facets.
func ListFacets(doc *stl.Document, order Order, count int) []FacetInfo {
	facets := make([]FacetInfo, 0, doc.Len())
	for i, f := range doc.Facets {
		tri := geometry.FromFacet(f)
		facets = append(facets, FacetInfo{
			Index:     i,
			Area:      tri.Area(),
			Perimeter: tri.Perimeter(),
			Triangle:  tri,
		})
	}

	switch order {
	case OrderLargest:
		slices.SortStableFunc(facets, func(a, b FacetInfo) int { return compareFloat(b.Area, a.Area) })
	case OrderSmallest:
		slices.SortStableFunc(facets, func(a, b FacetInfo) int { return compareFloat(a.Area, b.Area) })
	}

	if count >= 0 && count < len(facets) {
		facets = facets[:count]
	}
	return facets
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X(), v.Y(), v.Z())
}
