package geom

// Entity is the minimal shape contract the validation pipeline and the
// recovery system operate on: anything carrying a baseline curve. Updates
// are functional — With* methods return a new entity, never mutate the
// receiver — so a caller can always diff a repaired entity against the
// original.
//
// *Curve and *WallSolid both satisfy Entity. Stages needing more than the
// baseline assert the optional capability interfaces below instead of
// switching on concrete types.
type Entity interface {
	// Baseline returns the centerline curve of the entity.
	Baseline() *Curve
	// WithBaseline returns a new entity carrying the replacement baseline.
	WithBaseline(*Curve) Entity
}

// ThicknessCarrier is an entity with a wall thickness.
type ThicknessCarrier interface {
	Entity
	Thickness() float64
	WithThickness(float64) Entity
}

// PolygonCarrier is an entity exposing produced fill polygons.
type PolygonCarrier interface {
	Entity
	OutputPolygons() []Polygon
	WithPolygons([]Polygon) Entity
}

// MetricsCarrier is an entity carrying a quality snapshot.
type MetricsCarrier interface {
	Entity
	Metrics() QualityMetrics
}

// Healable is an entity that records repair operations applied to it.
type Healable interface {
	Entity
	WithHealing(HealingRecord) Entity
}
