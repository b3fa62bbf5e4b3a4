// Package config loads the per-subsystem option structs from a single
// YAML document. Every field is optional: absent fields keep the
// subsystem's production defaults, so a minimal file tunes exactly the
// knobs it names.
//
// ⚙️ Layout:
//
//	detector:
//	  min_segment_length: 0.002
//	  check_self_intersection: true
//	pipeline:
//	  fail_fast: true
//	  max_recovery_attempts: 2
//	recovery:
//	  quality_threshold: 0.5
//	fallback:
//	  max_fallback_attempts: 2
//
// The notification callback cannot be expressed in YAML; it stays a
// code-level option on fallback.Options.
package config
