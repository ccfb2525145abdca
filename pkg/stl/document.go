package stl

import (
	"slices"
)

// Document represents a complete STL solid
type Document struct {
	// Name is only persisted by the text format.
	Name   string
	Facets []Facet
}

// New creates a new document. The facets are copied, so the caller keeps
// ownership of the slice it passed in.
func New(name string, facets []Facet) *Document {
	d := &Document{
		Name:   name,
		Facets: make([]Facet, 0, len(facets)),
	}
	d.Facets = append(d.Facets, facets...)
	return d
}

// AppendFacets adds facets to the end of the document in order.
func (d *Document) AppendFacets(facets ...Facet) {
	d.Facets = append(d.Facets, facets...)
}

// Append adds copies of all facets of other to the end of the document.
func (d *Document) Append(other *Document) {
	if other == nil {
		return
	}
	d.AppendFacets(other.Facets...)
}

// Len returns the number of facets in the document
func (d *Document) Len() int {
	return len(d.Facets)
}

// Clone returns a deep copy of the document
func (d *Document) Clone() *Document {
	return &Document{
		Name:   d.Name,
		Facets: slices.Clone(d.Facets),
	}
}

// ShiftAll moves every vertex of every facet by delta.
func (d *Document) ShiftAll(delta Vertex) {
	for i := range d.Facets {
		d.Facets[i].Shift(delta)
	}
}

// Shift moves every vertex by x, y and z.
func (d *Document) Shift(x, y, z float32) {
	d.ShiftAll(Vertex{X: x, Y: y, Z: z})
}

// InvertAll flips the normal of every facet.
func (d *Document) InvertAll() {
	for i := range d.Facets {
		d.Facets[i].Invert()
	}
}

// Equal reports whether both documents have the same name and the same
// facets in the same order. Facet i is only ever compared with facet i.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Name == other.Name && slices.EqualFunc(d.Facets, other.Facets, Facet.Equal)
}

// String returns the header line of the text form.
func (d *Document) String() string {
	return "solid " + d.Name
}
