// Package geomerr - taxonomy types.
//
// This file declares Kind, Severity, the GeometricError value and its
// kind-specific payloads, plus ordering helpers used by the recovery
// orchestrators.
package geomerr

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/goodwillp/wallmend/geom"
)

// ErrUnknownSeverity indicates an unrecognized severity spelling during
// deserialization.
var ErrUnknownSeverity = errors.New("geomerr: unknown severity")

// Kind discriminates the geometric error taxonomy.
type Kind string

const (
	// DegenerateGeometry - too few points, coincident geometry, zero length.
	DegenerateGeometry Kind = "degenerate_geometry"
	// SelfIntersection - a curve or ring crosses itself.
	SelfIntersection Kind = "self_intersection"
	// NumericalInstability - values too small/large for stable arithmetic.
	NumericalInstability Kind = "numerical_instability"
	// TopologyError - inconsistent connectivity or winding.
	TopologyError Kind = "topology_error"
	// DuplicateVertices - repeated vertices within tolerance.
	DuplicateVertices Kind = "duplicate_vertices"
	// BooleanFailure - a polygon boolean operation failed.
	BooleanFailure Kind = "boolean_failure"
	// OffsetFailure - a baseline offset operation failed.
	OffsetFailure Kind = "offset_failure"
	// IntersectionFailure - junction resolution between walls failed.
	IntersectionFailure Kind = "intersection_failure"
	// ToleranceExceeded - a result violates its required tolerance.
	ToleranceExceeded Kind = "tolerance_exceeded"
	// ComplexityExceeded - geometry too large for the configured budgets.
	ComplexityExceeded Kind = "complexity_exceeded"
	// InvalidParameter - a caller-supplied parameter is out of range.
	InvalidParameter Kind = "invalid_parameter"
	// ValidationFailure - a validation stage itself failed to run.
	ValidationFailure Kind = "validation_failure"
	// AccuracyViolation - geometric accuracy below the domain threshold.
	AccuracyViolation Kind = "accuracy_violation"
	// ComplianceViolation - output violates a wall-modeling domain rule.
	ComplianceViolation Kind = "compliance_violation"
	// HealingFailure - a healing/repair pass could not complete.
	HealingFailure Kind = "healing_failure"
)

// Severity is the single ordered severity scale: Warning < Error < Critical.
type Severity int

const (
	// SeverityWarning - advisory; never fails validation on its own.
	SeverityWarning Severity = iota
	// SeverityError - fails validation; eligible for automatic recovery.
	SeverityError
	// SeverityCritical - fails validation; never auto-recovered.
	SeverityCritical
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	case "critical":
		*s = SeverityCritical
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSeverity, string(b))
	}
	return nil
}

// OffsetPayload carries the context of a failed offset operation.
type OffsetPayload struct {
	Distance float64       `json:"distance"`
	Join     geom.JoinType `json:"join"`
}

// TolerancePayload carries the context of a tolerance violation.
type TolerancePayload struct {
	Current  float64 `json:"current"`
	Required float64 `json:"required"`
	Detail   string  `json:"detail,omitempty"`
}

// BooleanPayload carries the context of a failed boolean operation.
type BooleanPayload struct {
	Op         geom.BooleanOp `json:"op"`
	InputCount int            `json:"input_count"`
}

// IntersectionPayload carries the locations and segment indices of
// detected self-intersections.
type IntersectionPayload struct {
	Points   []geom.Point `json:"points"`
	Segments [][2]int     `json:"segments"`
}

// GeometricError is an immutable classified defect or failure.
//
// Exactly one payload pointer may be set, matching Kind; all are nil for
// kinds without operation-specific context. Severity == SeverityCritical
// implies the recovery orchestrators never attempt automatic recovery.
type GeometricError struct {
	Kind         Kind      `json:"kind"`
	Severity     Severity  `json:"severity"`
	Message      string    `json:"message"`
	Operation    string    `json:"operation,omitempty"`
	Recoverable  bool      `json:"recoverable"`
	SuggestedFix string    `json:"suggested_fix,omitempty"`
	Timestamp    time.Time `json:"timestamp"`

	Offset        *OffsetPayload       `json:"offset,omitempty"`
	Tolerance     *TolerancePayload    `json:"tolerance,omitempty"`
	Boolean       *BooleanPayload      `json:"boolean,omitempty"`
	Intersections *IntersectionPayload `json:"intersections,omitempty"`
}

// Error implements the error interface.
func (e *GeometricError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("geomerr: %s [%s] %s (op=%s)", e.Kind, e.Severity, e.Message, e.Operation)
	}
	return fmt.Sprintf("geomerr: %s [%s] %s", e.Kind, e.Severity, e.Message)
}

// Option adjusts a GeometricError at construction.
type Option func(*GeometricError)

// WithSeverity overrides the default SeverityError.
func WithSeverity(s Severity) Option {
	return func(e *GeometricError) { e.Severity = s }
}

// WithOperation attaches free-text operation context.
func WithOperation(op string) Option {
	return func(e *GeometricError) { e.Operation = op }
}

// WithFix overrides the suggested remediation text.
func WithFix(fix string) Option {
	return func(e *GeometricError) { e.SuggestedFix = fix }
}

// NotRecoverable marks the error as excluded from automatic recovery.
func NotRecoverable() Option {
	return func(e *GeometricError) { e.Recoverable = false }
}

// New constructs a GeometricError. Severity defaults to SeverityError and
// Recoverable to true; critical errors are forced non-recoverable after
// options apply.
func New(kind Kind, message string, opts ...Option) *GeometricError {
	e := &GeometricError{
		Kind:        kind,
		Severity:    SeverityError,
		Message:     message,
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.Severity == SeverityCritical {
		e.Recoverable = false
	}
	return e
}

// SortBySeverity orders errs critical-first, stably.
func SortBySeverity(errs []*GeometricError) {
	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].Severity > errs[j].Severity
	})
}
