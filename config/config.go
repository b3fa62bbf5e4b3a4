package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goodwillp/wallmend/edgecase"
	"github.com/goodwillp/wallmend/fallback"
	"github.com/goodwillp/wallmend/geomerr"
	"github.com/goodwillp/wallmend/pipeline"
	"github.com/goodwillp/wallmend/recovery"
)

// Config is the resolved per-subsystem configuration.
type Config struct {
	Detector edgecase.Options
	Pipeline pipeline.Options
	Recovery recovery.Options
	Fallback fallback.Options
}

// Defaults returns every subsystem at its production defaults.
func Defaults() Config {
	return Config{
		Detector: edgecase.DefaultOptions(),
		Pipeline: pipeline.DefaultOptions(),
		Recovery: recovery.DefaultOptions(),
		Fallback: fallback.DefaultOptions(),
	}
}

// fileConfig mirrors the YAML document. Pointer fields distinguish
// "absent" from zero values.
type fileConfig struct {
	Detector *detectorConfig `yaml:"detector"`
	Pipeline *pipelineConfig `yaml:"pipeline"`
	Recovery *recoveryConfig `yaml:"recovery"`
	Fallback *fallbackConfig `yaml:"fallback"`
}

type detectorConfig struct {
	MinSegmentLength          *float64 `yaml:"min_segment_length"`
	MinAngleTolerance         *float64 `yaml:"min_angle_tolerance"`
	MaxAngleTolerance         *float64 `yaml:"max_angle_tolerance"`
	NumericalPrecision        *float64 `yaml:"numerical_precision"`
	SelfIntersectionTolerance *float64 `yaml:"self_intersection_tolerance"`
	CoincidentPointTolerance  *float64 `yaml:"coincident_point_tolerance"`

	CheckZeroLength       *bool `yaml:"check_zero_length"`
	CheckDegenerate       *bool `yaml:"check_degenerate"`
	CheckSelfIntersection *bool `yaml:"check_self_intersection"`
	CheckExtremeAngle     *bool `yaml:"check_extreme_angle"`
	CheckCoincident       *bool `yaml:"check_coincident"`
	CheckMicroSegment     *bool `yaml:"check_micro_segment"`
}

type pipelineConfig struct {
	EnablePreValidation  *bool    `yaml:"enable_pre_validation"`
	EnablePostValidation *bool    `yaml:"enable_post_validation"`
	EnableAutoRecovery   *bool    `yaml:"enable_auto_recovery"`
	MaxRecoveryAttempts  *int     `yaml:"max_recovery_attempts"`
	FailFast             *bool    `yaml:"fail_fast"`
	ReportingLevel       *string  `yaml:"reporting_level"`
	DefaultThickness     *float64 `yaml:"default_thickness"`
}

type recoveryConfig struct {
	MaxRecoveryAttempts      *int     `yaml:"max_recovery_attempts"`
	QualityThreshold         *float64 `yaml:"quality_threshold"`
	PreserveOriginalData     *bool    `yaml:"preserve_original_data"`
	RequireUserConfirmation  *bool    `yaml:"require_user_confirmation"`
	FallbackToSimplification *bool    `yaml:"fallback_to_simplification"`
	EnableAutoRecovery       *bool    `yaml:"enable_auto_recovery"`
}

type fallbackConfig struct {
	MaxFallbackAttempts *int     `yaml:"max_fallback_attempts"`
	QualityThreshold    *float64 `yaml:"quality_threshold"`
}

// Load reads and parses a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults. Unknown keys are
// rejected so typos surface immediately.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	cfg := Defaults()
	if err := fc.apply(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) error {
	if d := fc.Detector; d != nil {
		setF(&cfg.Detector.MinSegmentLength, d.MinSegmentLength)
		setF(&cfg.Detector.MinAngleTolerance, d.MinAngleTolerance)
		setF(&cfg.Detector.MaxAngleTolerance, d.MaxAngleTolerance)
		setF(&cfg.Detector.NumericalPrecision, d.NumericalPrecision)
		setF(&cfg.Detector.SelfIntersectionTolerance, d.SelfIntersectionTolerance)
		setF(&cfg.Detector.CoincidentPointTolerance, d.CoincidentPointTolerance)
		setB(&cfg.Detector.CheckZeroLength, d.CheckZeroLength)
		setB(&cfg.Detector.CheckDegenerate, d.CheckDegenerate)
		setB(&cfg.Detector.CheckSelfIntersection, d.CheckSelfIntersection)
		setB(&cfg.Detector.CheckExtremeAngle, d.CheckExtremeAngle)
		setB(&cfg.Detector.CheckCoincident, d.CheckCoincident)
		setB(&cfg.Detector.CheckMicroSegment, d.CheckMicroSegment)
	}
	if p := fc.Pipeline; p != nil {
		setB(&cfg.Pipeline.EnablePreValidation, p.EnablePreValidation)
		setB(&cfg.Pipeline.EnablePostValidation, p.EnablePostValidation)
		setB(&cfg.Pipeline.EnableAutoRecovery, p.EnableAutoRecovery)
		setI(&cfg.Pipeline.MaxRecoveryAttempts, p.MaxRecoveryAttempts)
		setB(&cfg.Pipeline.FailFast, p.FailFast)
		setF(&cfg.Pipeline.DefaultThickness, p.DefaultThickness)
		if p.ReportingLevel != nil {
			var sev geomerr.Severity
			if err := sev.UnmarshalText([]byte(*p.ReportingLevel)); err != nil {
				return err
			}
			cfg.Pipeline.ReportingLevel = sev
		}
	}
	if r := fc.Recovery; r != nil {
		setI(&cfg.Recovery.MaxRecoveryAttempts, r.MaxRecoveryAttempts)
		setF(&cfg.Recovery.QualityThreshold, r.QualityThreshold)
		setB(&cfg.Recovery.PreserveOriginalData, r.PreserveOriginalData)
		setB(&cfg.Recovery.RequireUserConfirmation, r.RequireUserConfirmation)
		setB(&cfg.Recovery.FallbackToSimplification, r.FallbackToSimplification)
		setB(&cfg.Recovery.EnableAutoRecovery, r.EnableAutoRecovery)
	}
	if f := fc.Fallback; f != nil {
		setI(&cfg.Fallback.MaxFallbackAttempts, f.MaxFallbackAttempts)
		setF(&cfg.Fallback.QualityThreshold, f.QualityThreshold)
	}
	// the pipeline shares detector tolerances
	cfg.Pipeline.Detector = cfg.Detector
	return nil
}

func setF(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setB(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setI(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
