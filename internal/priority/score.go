// Package priority implements the composite priority scoring core:
// three independent sub-scores (urgency, importance, effort) blended
// by a weighted sum, and a stable descending rank over a batch.
//
// Every function here is pure and side-effect free. Batches may be
// scored in any order or concurrently without coordination.
package priority

import (
	"math"
	"time"

	"smart-task-assistant/internal/model"
)

const secondsPerDay = 86400.0

// Weights control the blend of the three sub-scores. They do not need
// to sum to 1: Score normalizes by the actual sum.
type Weights struct {
	Urgency    float64
	Importance float64
	Effort     float64
}

// DefaultWeights returns the standard blend: urgency-dominant.
func DefaultWeights() Weights {
	return Weights{Urgency: 0.6, Importance: 0.3, Effort: 0.1}
}

// DaysUntil returns the real-valued number of days from ref until due,
// negative when overdue. Nil due yields nil ("no known deadline").
// This is a plain seconds/86400 quotient, not a calendar-day count, so
// fractional days are preserved for the sub-day urgency band.
func DaysUntil(due *time.Time, ref time.Time) *float64 {
	if due == nil {
		return nil
	}
	d := due.Sub(ref).Seconds() / secondsPerDay
	return &d
}

// UrgencyScore maps days-until-due onto [0,1] via a fixed piecewise
// step function. Bands are half-open [lo, hi); the no-deadline case
// takes precedence over every numeric comparison.
//
//	nil (no due date) -> 0.0
//	days <= 0         -> 1.0  (due now or overdue)
//	days < 1          -> 0.95
//	days < 3          -> 0.80
//	days < 7          -> 0.60
//	days < 30         -> 0.30
//	days >= 30        -> 0.05
func UrgencyScore(days *float64) float64 {
	if days == nil {
		return 0.0
	}
	d := *days
	switch {
	case d <= 0:
		return 1.0
	case d < 1:
		return 0.95
	case d < 3:
		return 0.80
	case d < 7:
		return 0.60
	case d < 30:
		return 0.30
	default:
		return 0.05
	}
}

// ImportanceScore maps a priority tier onto [0,1]. The mapping keys
// off tier identity; an unspecified or unrecognized tier is neutral.
func ImportanceScore(imp model.Importance) float64 {
	switch imp {
	case model.ImportanceHigh:
		return 1.0
	case model.ImportanceMedium:
		return 0.5
	case model.ImportanceLow:
		return 0.1
	default:
		return 0.5
	}
}

// EffortScore maps an effort estimate onto [0,1], favoring short
// tasks. Unknown (nil) or unusable estimates degrade to neutral.
func EffortScore(estMinutes *float64) float64 {
	if estMinutes == nil {
		return 0.5
	}
	m := *estMinutes
	if math.IsNaN(m) || m < 0 {
		return 0.5
	}
	switch {
	case m <= 15:
		return 1.0
	case m <= 60:
		return 0.8
	case m <= 180:
		return 0.5
	default:
		return 0.2
	}
}

// Score computes the composite priority of a task at the reference
// instant: the weighted sum of the three sub-scores, normalized by the
// sum of the supplied weights and clamped to [0,1]. An all-zero weight
// vector normalizes by 1.0 instead of dividing by zero.
//
// A nil task scores exactly 0.0. Missing input is lowest priority,
// not an error.
func Score(t *model.Task, ref time.Time, w Weights) float64 {
	if t == nil {
		return 0.0
	}

	u := UrgencyScore(DaysUntil(t.Due, ref))
	imp := ImportanceScore(t.Importance)
	eff := EffortScore(t.EstMinutes)

	raw := u*w.Urgency + imp*w.Importance + eff*w.Effort

	denom := w.Urgency + w.Importance + w.Effort
	if denom == 0 {
		denom = 1.0
	}

	return clamp01(raw / denom)
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
