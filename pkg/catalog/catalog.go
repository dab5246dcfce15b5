// Package catalog is the immutable registry of exercise profiles and
// detection patterns the analysis engine evaluates against.
//
// The catalog is configuration, not runtime state: it is built and
// validated once at startup and only read afterwards, so a single instance
// is safe to share across any number of concurrent callers.
package catalog

import (
	"fmt"
	"sort"

	ferrors "github.com/formsight/formsight-server/pkg/errors"
)

// AngleName identifies a canonical joint angle in an AngleSet.
type AngleName string

// Canonical joint angles the engine can compute or reference.
const (
	AngleKnee      AngleName = "knee_angle"
	AngleHip       AngleName = "hip_angle"
	AngleBack      AngleName = "back_angle"
	AngleElbow     AngleName = "elbow_angle"
	AngleShoulder  AngleName = "shoulder_angle"
	AngleWrist     AngleName = "wrist_angle"
	AngleAnkle     AngleName = "ankle_angle"
	AngleFrontKnee AngleName = "front_knee_angle"
	AngleBackKnee  AngleName = "back_knee_angle"
)

// Threshold is the acceptable range and sweet spot for one key angle.
type Threshold struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Optimal float64 `json:"optimal"`
}

// Profile is the fixed form configuration for one exercise. KeyAngles and
// AlignmentChecks are ordered; the form checker walks them in declared
// order so feedback output is reproducible.
type Profile struct {
	Key             string
	KeyAngles       []AngleName
	Thresholds      map[AngleName]Threshold
	AlignmentChecks []CheckID
	MovementPattern string
	PrimaryMuscles  []string
}

// IndicatorID names one detection indicator.
type IndicatorID string

// Indicator is a boolean test over a single canonical angle. Indicators
// without an Angle are informational only: they describe cues (tempo,
// symmetry over time) that a single 2D snapshot cannot evaluate, and they
// never appear as primary indicators.
type Indicator struct {
	Angle       AngleName // empty for informational indicators
	Below       bool      // pass when value < Cutoff; otherwise value > Cutoff
	Cutoff      float64
	Description string
}

// Evaluable reports whether the indicator carries a predicate.
func (in Indicator) Evaluable() bool { return in.Angle != "" }

// Pass applies the predicate to an angle value.
func (in Indicator) Pass(value float64) bool {
	if in.Below {
		return value < in.Cutoff
	}
	return value > in.Cutoff
}

// Pattern pairs an exercise with its detection indicators. Primary
// indicators are scored by the classifier; secondary indicators are
// informational and surfaced through instructions only.
type Pattern struct {
	Primary   []IndicatorID
	Secondary []IndicatorID
}

// CheckID names one alignment check.
type CheckID string

// Gate is the firing condition of a gated alignment check: the check emits
// its feedback when the gating angle is present and the condition holds.
type Gate struct {
	Angle  AngleName
	Below  bool
	Cutoff float64
}

// Holds applies the gate to an angle value.
func (g Gate) Holds(value float64) bool {
	if g.Below {
		return value < g.Cutoff
	}
	return value > g.Cutoff
}

// AlignmentCheck is a qualitative form rule. Checks with a nil Gate are
// advisory: their guidance cannot be derived from 2D angles, so they are
// emitted only alongside other corrections and always listed in the
// exercise instructions.
type AlignmentCheck struct {
	Feedback string
	Gate     *Gate
}

// Instructions is the read-model served by the catalog API for one
// exercise: the exact configuration the form checker enforces.
type Instructions struct {
	Exercise        string                  `json:"exercise"`
	KeyAngles       []AngleName             `json:"key_angles"`
	Thresholds      map[AngleName]Threshold `json:"thresholds"`
	AlignmentChecks []string                `json:"alignment_checks"`
	Guidance        []string                `json:"guidance"`
	MovementPattern string                  `json:"movement_pattern"`
	PrimaryMuscles  []string                `json:"primary_muscles"`
}

// Catalog is the validated, read-only exercise registry.
type Catalog struct {
	profiles   map[string]Profile
	patterns   map[string]Pattern
	indicators map[IndicatorID]Indicator
	checks     map[CheckID]AlignmentCheck
	keys       []string
}

// New builds the catalog from the built-in tables and validates it.
// A validation failure is a fatal configuration error; callers must refuse
// to start rather than serve requests against a broken catalog.
func New() (*Catalog, error) {
	return load(profileTable, patternTable, indicatorTable, checkTable)
}

func load(profiles []Profile, patterns map[string]Pattern, indicators map[IndicatorID]Indicator, checks map[CheckID]AlignmentCheck) (*Catalog, error) {
	c := &Catalog{
		profiles:   make(map[string]Profile, len(profiles)),
		patterns:   patterns,
		indicators: indicators,
		checks:     checks,
	}

	for _, p := range profiles {
		if _, dup := c.profiles[p.Key]; dup {
			return nil, invalid("duplicate profile %q", p.Key)
		}
		c.profiles[p.Key] = p
		c.keys = append(c.keys, p.Key)
	}
	sort.Strings(c.keys)

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func invalid(format string, args ...interface{}) error {
	return ferrors.ErrCatalogInvalid.WithMessage(fmt.Sprintf(format, args...))
}

// validate enforces the catalog invariants: profiles and patterns share one
// key universe, every referenced indicator and alignment check exists,
// primary indicators are evaluable, and thresholds are ordered.
func (c *Catalog) validate() error {
	for key, p := range c.profiles {
		if _, ok := c.patterns[key]; !ok {
			return invalid("profile %q has no detection pattern", key)
		}
		for _, angle := range p.KeyAngles {
			th, ok := p.Thresholds[angle]
			if !ok {
				return invalid("profile %q key angle %q has no threshold", key, angle)
			}
			if th.Min > th.Optimal || th.Optimal > th.Max {
				return invalid("profile %q angle %q threshold not ordered: %+v", key, angle, th)
			}
		}
		for _, id := range p.AlignmentChecks {
			if _, ok := c.checks[id]; !ok {
				return invalid("profile %q references undefined alignment check %q", key, id)
			}
		}
	}

	for key, pat := range c.patterns {
		if _, ok := c.profiles[key]; !ok {
			return invalid("detection pattern %q has no profile", key)
		}
		for _, id := range pat.Primary {
			in, ok := c.indicators[id]
			if !ok {
				return invalid("pattern %q references undefined indicator %q", key, id)
			}
			if !in.Evaluable() {
				return invalid("pattern %q primary indicator %q has no predicate", key, id)
			}
		}
		for _, id := range pat.Secondary {
			if _, ok := c.indicators[id]; !ok {
				return invalid("pattern %q references undefined secondary indicator %q", key, id)
			}
		}
	}
	return nil
}

// Keys returns the supported exercise keys in lexicographic order.
// The returned slice is a copy.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Profile looks up one exercise profile.
func (c *Catalog) Profile(key string) (Profile, bool) {
	p, ok := c.profiles[key]
	return p, ok
}

// Pattern looks up one detection pattern.
func (c *Catalog) Pattern(key string) (Pattern, bool) {
	p, ok := c.patterns[key]
	return p, ok
}

// Indicator looks up one indicator definition.
func (c *Catalog) Indicator(id IndicatorID) (Indicator, bool) {
	in, ok := c.indicators[id]
	return in, ok
}

// Check looks up one alignment check definition.
func (c *Catalog) Check(id CheckID) (AlignmentCheck, bool) {
	ch, ok := c.checks[id]
	return ch, ok
}

// Instructions assembles the instruction read-model for one exercise.
// The thresholds it reports are the same values the form checker enforces.
func (c *Catalog) Instructions(key string) (Instructions, bool) {
	p, ok := c.profiles[key]
	if !ok {
		return Instructions{}, false
	}

	ins := Instructions{
		Exercise:        p.Key,
		KeyAngles:       append([]AngleName(nil), p.KeyAngles...),
		Thresholds:      make(map[AngleName]Threshold, len(p.Thresholds)),
		MovementPattern: p.MovementPattern,
		PrimaryMuscles:  append([]string(nil), p.PrimaryMuscles...),
	}
	for angle, th := range p.Thresholds {
		ins.Thresholds[angle] = th
	}
	for _, id := range p.AlignmentChecks {
		ins.AlignmentChecks = append(ins.AlignmentChecks, string(id))
		ins.Guidance = append(ins.Guidance, c.checks[id].Feedback)
	}
	if pat, ok := c.patterns[key]; ok {
		for _, id := range pat.Secondary {
			if in := c.indicators[id]; in.Description != "" {
				ins.Guidance = append(ins.Guidance, in.Description)
			}
		}
	}
	return ins, true
}
