package model

import (
	"strings"
	"time"
)

// Importance is the closed set of priority tiers a task can carry.
// It is deliberately decoupled from any numeric wire encoding: the
// scoring tables key off tier identity, never off a numeric code.
type Importance int

const (
	ImportanceUnspecified Importance = iota
	ImportanceHigh
	ImportanceMedium
	ImportanceLow
)

// String returns the canonical lowercase tier name.
func (i Importance) String() string {
	switch i {
	case ImportanceHigh:
		return "high"
	case ImportanceMedium:
		return "medium"
	case ImportanceLow:
		return "low"
	default:
		return "unspecified"
	}
}

// ParseImportance maps a tier name to an Importance. Unrecognized
// values map to ImportanceUnspecified rather than erroring.
func ParseImportance(s string) Importance {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return ImportanceHigh
	case "medium":
		return ImportanceMedium
	case "low":
		return ImportanceLow
	default:
		return ImportanceUnspecified
	}
}

// ImportanceFromCode maps the legacy numeric encoding (0=high,
// 1=medium, -1=low) to an Importance. Any other code is unspecified.
func ImportanceFromCode(code int) Importance {
	switch code {
	case 0:
		return ImportanceHigh
	case 1:
		return ImportanceMedium
	case -1:
		return ImportanceLow
	default:
		return ImportanceUnspecified
	}
}

// Task is a parsed task record as produced by the extractor.
// Optional attributes are pointers: nil means "unknown", which is a
// different thing from a zero value (zero minutes is a real estimate).
//
// Invariant: Raw is never empty or whitespace-only. The extractor
// returns no record at all for blank input instead of a hollow Task.
type Task struct {
	Raw        string     // Original input text
	Title      string     // Short human-readable label (may equal Raw)
	Due        *time.Time // Deadline, nil when none is known
	EstMinutes *float64   // Estimated effort in minutes, nil when unknown
	Importance Importance // Priority tier, ImportanceUnspecified when absent
}

// ScoredTask pairs a task with its composite priority score in [0,1].
// Computed on demand, never persisted.
type ScoredTask struct {
	Score float64
	Task  *Task
}
