// Package geom - primitive value types.
//
// This file declares Point, BBox, Curve, Polygon, and the enumerations
// (JoinType, BooleanOp, IntersectionKind) shared across subsystems.
package geom

import "math"

// Eps is the structural tolerance used where no caller-supplied tolerance
// applies (parallel-segment guards, signed-area degeneracy checks).
// It is independent from the detector options, which govern defect checks.
const Eps = 1e-12

// Point is a 2D coordinate carrying its own local quality annotations.
//
// Tolerance is the positional tolerance the point was produced under,
// Accuracy the producer's accuracy estimate, Validated whether the point
// has passed a validation pass. The annotations travel with the point but
// never influence the numeric helpers in this package.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	Tolerance float64 `json:"tolerance,omitempty"`
	Accuracy  float64 `json:"accuracy,omitempty"`
	Validated bool    `json:"validated,omitempty"`
}

// Pt is a convenience constructor for a bare coordinate.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// JoinType selects the corner style used when offsetting a baseline.
type JoinType int

const (
	// MiterJoin extends the offset segments to their intersection.
	MiterJoin JoinType = iota
	// BevelJoin connects the offset segments with a straight chamfer.
	BevelJoin
	// RoundJoin connects the offset segments with a circular arc.
	RoundJoin
)

// String returns the lowercase name of the join type.
func (j JoinType) String() string {
	switch j {
	case MiterJoin:
		return "miter"
	case BevelJoin:
		return "bevel"
	case RoundJoin:
		return "round"
	default:
		return "unknown"
	}
}

// BooleanOp identifies a polygon boolean operation.
type BooleanOp int

const (
	// Union merges all inputs into one region.
	Union BooleanOp = iota
	// Difference subtracts later inputs from the first.
	Difference
	// IntersectOp keeps only the common region.
	IntersectOp
)

// String returns the lowercase name of the boolean operation.
func (b BooleanOp) String() string {
	switch b {
	case Union:
		return "union"
	case Difference:
		return "difference"
	case IntersectOp:
		return "intersection"
	default:
		return "unknown"
	}
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX-MinX.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Expand grows the box by d on every side (shrinks for negative d).
func (b BBox) Expand(d float64) BBox {
	return BBox{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}

// ToPolygon converts the box to a clockwise rectangle.
func (b BBox) ToPolygon() Polygon {
	return Polygon{Vertices: []Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MinX, Y: b.MaxY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MaxX, Y: b.MinY},
	}}
}

// Curve is an ordered sequence of points, open or closed.
//
// Length and bounding box are computed lazily and cached; Points must not
// be mutated after the first derived-data call. Build replacement curves
// with NewCurve (or the repair helpers) instead of editing in place.
type Curve struct {
	// Points is the ordered vertex sequence.
	Points []Point

	// Closed marks the curve as a ring: an implicit segment connects the
	// last point back to the first.
	Closed bool

	length    float64
	hasLength bool
	bbox      BBox
	hasBBox   bool
}

// NewCurve builds a curve over a defensive copy of points.
func NewCurve(points []Point, closed bool) *Curve {
	cp := make([]Point, len(points))
	copy(cp, points)
	return &Curve{Points: cp, Closed: closed}
}

// Clone returns a deep copy with cold caches.
func (c *Curve) Clone() *Curve {
	if c == nil {
		return nil
	}
	return NewCurve(c.Points, c.Closed)
}

// SegmentCount returns the number of segments, including the closing
// segment of a closed curve with at least three points.
func (c *Curve) SegmentCount() int {
	n := len(c.Points)
	if n < 2 {
		return 0
	}
	if c.Closed && n > 2 {
		return n
	}
	return n - 1
}

// Segment returns the endpoints of segment i (0-based). The closing
// segment of a closed curve is the last index.
func (c *Curve) Segment(i int) (Point, Point) {
	n := len(c.Points)
	if i == n-1 && c.Closed {
		return c.Points[i], c.Points[0]
	}
	return c.Points[i], c.Points[i+1]
}

// Length returns the total polyline length, caching the result.
func (c *Curve) Length() float64 {
	if c.hasLength {
		return c.length
	}
	var sum float64
	for i := 0; i < c.SegmentCount(); i++ {
		a, b := c.Segment(i)
		sum += Dist(a, b)
	}
	c.length = sum
	c.hasLength = true
	return sum
}

// BoundingBox returns the axis-aligned bounds, caching the result.
// An empty curve yields the zero box.
func (c *Curve) BoundingBox() BBox {
	if c.hasBBox {
		return c.bbox
	}
	var b BBox
	if len(c.Points) > 0 {
		b = BBox{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
		for _, p := range c.Points {
			b.MinX = math.Min(b.MinX, p.X)
			b.MinY = math.Min(b.MinY, p.Y)
			b.MaxX = math.Max(b.MaxX, p.X)
			b.MaxY = math.Max(b.MaxY, p.Y)
		}
	}
	c.bbox = b
	c.hasBBox = true
	return b
}

// Baseline lets a bare curve act as a validation Entity: the curve is its
// own baseline.
func (c *Curve) Baseline() *Curve { return c }

// WithBaseline returns the replacement curve itself.
func (c *Curve) WithBaseline(nc *Curve) Entity { return nc }

// Polygon is a simple ring of vertices. The closing edge from the last
// vertex back to the first is implicit.
type Polygon struct {
	Vertices []Point `json:"vertices"`
}

// SignedArea returns the shoelace area: negative for clockwise rings.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// IsClockwise reports whether the ring winds clockwise.
// Degenerate rings (|area| < Eps) report false.
func (p Polygon) IsClockwise() bool {
	a := p.SignedArea()
	return a < -Eps
}

// Reversed returns the ring with opposite winding.
func (p Polygon) Reversed() Polygon {
	n := len(p.Vertices)
	out := make([]Point, n)
	for i, v := range p.Vertices {
		out[n-1-i] = v
	}
	return Polygon{Vertices: out}
}

// Clone returns a deep copy of the polygon.
func (p Polygon) Clone() Polygon {
	out := make([]Point, len(p.Vertices))
	copy(out, p.Vertices)
	return Polygon{Vertices: out}
}

// IntersectionKind labels the junction topology between wall segments.
type IntersectionKind string

const (
	// LJunction is a corner where two walls meet end to end.
	LJunction IntersectionKind = "L"
	// TJunction is a wall ending on the side of another.
	TJunction IntersectionKind = "T"
	// XJunction is a full crossing of two walls.
	XJunction IntersectionKind = "X"
)

// Intersection records a junction discovered between wall segments.
type Intersection struct {
	// Kind is the junction topology.
	Kind IntersectionKind `json:"kind"`
	// At is the junction location.
	At Point `json:"at"`
	// SegmentA and SegmentB index the participating baseline segments.
	SegmentA int `json:"segment_a"`
	SegmentB int `json:"segment_b"`
	// Resolved marks the junction as already healed into the polygons.
	Resolved bool `json:"resolved"`
}
