// Package geom - the WallSolid entity.
//
// WallSolid uses unexported fields with accessors and functional With*
// updates: the integrity layer receives a solid by reference and returns
// either the same instance unmodified or a new instance with visible
// differences, never a silently mutated one.
package geom

import "time"

// HealingRecord documents one repair operation applied to a wall solid.
type HealingRecord struct {
	// Operation names the repair (strategy or stage identifier).
	Operation string `json:"operation"`
	// QualityImpact is the fractional fidelity loss of the repair.
	QualityImpact float64 `json:"quality_impact"`
	// Notes carries human-readable detail.
	Notes string `json:"notes,omitempty"`
	// Timestamp is when the repair was applied.
	Timestamp time.Time `json:"timestamp"`
}

// WallSolid is the geometric result of offsetting/joining/intersecting a
// wall baseline into fillable polygons, plus quality metadata.
type WallSolid struct {
	baseline      *Curve
	thickness     float64
	leftOffset    *Curve
	rightOffset   *Curve
	polygons      []Polygon
	intersections []Intersection
	healing       []HealingRecord
	metrics       QualityMetrics
}

// WallOption configures a WallSolid at construction.
type WallOption func(*WallSolid)

// WithLeftOffset attaches the left offset curve.
func WithLeftOffset(c *Curve) WallOption {
	return func(w *WallSolid) { w.leftOffset = c }
}

// WithRightOffset attaches the right offset curve.
func WithRightOffset(c *Curve) WallOption {
	return func(w *WallSolid) { w.rightOffset = c }
}

// WithOutputPolygons attaches the produced fill polygons.
func WithOutputPolygons(polys []Polygon) WallOption {
	return func(w *WallSolid) { w.polygons = append([]Polygon(nil), polys...) }
}

// WithIntersectionData attaches junction metadata.
func WithIntersectionData(xs []Intersection) WallOption {
	return func(w *WallSolid) { w.intersections = append([]Intersection(nil), xs...) }
}

// WithQualityMetrics sets the initial quality snapshot.
func WithQualityMetrics(m QualityMetrics) WallOption {
	return func(w *WallSolid) { w.metrics = m }
}

// NewWallSolid builds a wall solid. The constructor is permissive — the
// validation pipeline, not the constructor, enforces the thickness>0 and
// baseline invariants, since it must be able to receive broken solids.
func NewWallSolid(baseline *Curve, thickness float64, opts ...WallOption) *WallSolid {
	w := &WallSolid{
		baseline:  baseline,
		thickness: thickness,
		metrics:   PerfectMetrics(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// clone returns a shallow copy sharing curves and slices with the
// receiver; With* methods copy-on-write the field they replace.
func (w *WallSolid) clone() *WallSolid {
	cp := *w
	return &cp
}

// Baseline returns the centerline curve.
func (w *WallSolid) Baseline() *Curve { return w.baseline }

// WithBaseline returns a copy carrying the replacement baseline.
func (w *WallSolid) WithBaseline(c *Curve) Entity {
	cp := w.clone()
	cp.baseline = c
	return cp
}

// Thickness returns the wall thickness.
func (w *WallSolid) Thickness() float64 { return w.thickness }

// WithThickness returns a copy carrying the replacement thickness.
func (w *WallSolid) WithThickness(t float64) Entity {
	cp := w.clone()
	cp.thickness = t
	return cp
}

// LeftOffset returns the left offset curve, or nil.
func (w *WallSolid) LeftOffset() *Curve { return w.leftOffset }

// RightOffset returns the right offset curve, or nil.
func (w *WallSolid) RightOffset() *Curve { return w.rightOffset }

// WithOffsets returns a copy carrying replacement offset curves.
func (w *WallSolid) WithOffsets(left, right *Curve) *WallSolid {
	cp := w.clone()
	cp.leftOffset = left
	cp.rightOffset = right
	return cp
}

// OutputPolygons returns a copy of the produced fill polygons.
func (w *WallSolid) OutputPolygons() []Polygon {
	return append([]Polygon(nil), w.polygons...)
}

// WithPolygons returns a copy carrying the replacement polygons.
func (w *WallSolid) WithPolygons(polys []Polygon) Entity {
	cp := w.clone()
	cp.polygons = append([]Polygon(nil), polys...)
	return cp
}

// Intersections returns a copy of the junction metadata.
func (w *WallSolid) Intersections() []Intersection {
	return append([]Intersection(nil), w.intersections...)
}

// WithIntersections returns a copy carrying replacement junction metadata.
func (w *WallSolid) WithIntersections(xs []Intersection) *WallSolid {
	cp := w.clone()
	cp.intersections = append([]Intersection(nil), xs...)
	return cp
}

// HealingHistory returns a copy of the applied-repair records.
func (w *WallSolid) HealingHistory() []HealingRecord {
	return append([]HealingRecord(nil), w.healing...)
}

// WithHealing returns a copy with rec appended to the healing history.
func (w *WallSolid) WithHealing(rec HealingRecord) Entity {
	cp := w.clone()
	cp.healing = append(append([]HealingRecord(nil), w.healing...), rec)
	return cp
}

// Metrics returns the quality snapshot.
func (w *WallSolid) Metrics() QualityMetrics { return w.metrics }

// WithMetrics returns a copy carrying the replacement snapshot.
func (w *WallSolid) WithMetrics(m QualityMetrics) *WallSolid {
	cp := w.clone()
	cp.metrics = m
	return cp
}

// VertexCount totals baseline and polygon vertices, the complexity
// measure used by the performance stage.
func (w *WallSolid) VertexCount() int {
	n := 0
	if w.baseline != nil {
		n += len(w.baseline.Points)
	}
	for _, p := range w.polygons {
		n += len(p.Vertices)
	}
	return n
}
