package priority

import (
	"math"
	"testing"
	"time"

	"smart-task-assistant/internal/model"
)

func fptr(v float64) *float64 { return &v }

func tptr(t time.Time) *time.Time { return &t }

func TestDaysUntil(t *testing.T) {
	ref := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if got := DaysUntil(nil, ref); got != nil {
		t.Errorf("expected nil for nil due, got %v", *got)
	}

	due := ref.Add(36 * time.Hour)
	got := DaysUntil(&due, ref)
	if got == nil {
		t.Fatal("expected non-nil days")
	}
	if *got != 1.5 {
		t.Errorf("expected 1.5 days, got %v", *got)
	}

	overdue := ref.Add(-12 * time.Hour)
	got = DaysUntil(&overdue, ref)
	if got == nil || *got != -0.5 {
		t.Errorf("expected -0.5 days for overdue, got %v", got)
	}
}

func TestUrgencyScore(t *testing.T) {
	tests := []struct {
		name string
		days *float64
		want float64
	}{
		{"no due date", nil, 0.0},
		{"overdue", fptr(-5), 1.0},
		{"due exactly now", fptr(0), 1.0},
		{"half a day", fptr(0.5), 0.95},
		{"just under one day", fptr(0.999), 0.95},
		{"exactly one day", fptr(1), 0.80},
		{"two days", fptr(2), 0.80},
		{"exactly three days", fptr(3), 0.60},
		{"six days", fptr(6.9), 0.60},
		{"exactly seven days", fptr(7), 0.30},
		{"three weeks", fptr(21), 0.30},
		{"exactly thirty days", fptr(30), 0.05},
		{"far future", fptr(365), 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UrgencyScore(tt.days); got != tt.want {
				t.Errorf("UrgencyScore(%v) = %v, want %v", tt.days, got, tt.want)
			}
		})
	}
}

func TestUrgencyScoreMonotonic(t *testing.T) {
	// Urgency must never increase as the deadline moves further away.
	prev := 1.0
	for d := -2.0; d <= 40; d += 0.25 {
		got := UrgencyScore(&d)
		if got > prev {
			t.Fatalf("urgency increased at days=%v: %v > %v", d, got, prev)
		}
		prev = got
	}
}

func TestImportanceScore(t *testing.T) {
	tests := []struct {
		imp  model.Importance
		want float64
	}{
		{model.ImportanceHigh, 1.0},
		{model.ImportanceMedium, 0.5},
		{model.ImportanceLow, 0.1},
		{model.ImportanceUnspecified, 0.5},
		{model.Importance(99), 0.5}, // out-of-range tier degrades to neutral
	}
	for _, tt := range tests {
		if got := ImportanceScore(tt.imp); got != tt.want {
			t.Errorf("ImportanceScore(%v) = %v, want %v", tt.imp, got, tt.want)
		}
	}
}

func TestEffortScore(t *testing.T) {
	tests := []struct {
		name string
		est  *float64
		want float64
	}{
		{"unknown", nil, 0.5},
		{"zero minutes", fptr(0), 1.0},
		{"fifteen", fptr(15), 1.0},
		{"sixteen", fptr(16), 0.8},
		{"sixty", fptr(60), 0.8},
		{"three hours", fptr(180), 0.5},
		{"just over three hours", fptr(181), 0.2},
		{"all day", fptr(480), 0.2},
		{"negative noise", fptr(-10), 0.5},
		{"nan noise", fptr(math.NaN()), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffortScore(tt.est); got != tt.want {
				t.Errorf("EffortScore(%v) = %v, want %v", tt.est, got, tt.want)
			}
		})
	}
}

func TestScoreNilTask(t *testing.T) {
	if got := Score(nil, time.Now(), DefaultWeights()); got != 0.0 {
		t.Errorf("nil task must score 0.0, got %v", got)
	}
}

func TestScoreNeutralBlend(t *testing.T) {
	// A task with no optional fields: urgency 0.0, importance 0.5,
	// effort 0.5 blended with default weights is exactly 0.2.
	task := &model.Task{Raw: "do the thing", Title: "do the thing"}
	got := Score(task, time.Now(), DefaultWeights())
	if math.Abs(got-0.2) > 1e-9 {
		t.Errorf("neutral blend = %v, want 0.2", got)
	}
}

func TestScoreRange(t *testing.T) {
	ref := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	dues := []*time.Time{nil, tptr(ref.Add(-48 * time.Hour)), tptr(ref.Add(2 * time.Hour)), tptr(ref.AddDate(0, 2, 0))}
	ests := []*float64{nil, fptr(5), fptr(90), fptr(600)}
	imps := []model.Importance{model.ImportanceUnspecified, model.ImportanceHigh, model.ImportanceMedium, model.ImportanceLow}
	weights := []Weights{DefaultWeights(), {1, 1, 1}, {0.2, 0.7, 0.1}, {5, 3, 2}}

	for _, due := range dues {
		for _, est := range ests {
			for _, imp := range imps {
				for _, w := range weights {
					task := &model.Task{Raw: "x", Title: "x", Due: due, EstMinutes: est, Importance: imp}
					got := Score(task, ref, w)
					if got < 0.0 || got > 1.0 {
						t.Fatalf("score out of range: %v (due=%v est=%v imp=%v w=%+v)", got, due, est, imp, w)
					}
				}
			}
		}
	}
}

func TestScoreZeroWeights(t *testing.T) {
	// Degenerate all-zero weights fall back to dividing by 1.0.
	task := &model.Task{Raw: "x", Title: "x", Importance: model.ImportanceHigh}
	if got := Score(task, time.Now(), Weights{}); got != 0.0 {
		t.Errorf("all-zero weights should yield 0.0, got %v", got)
	}
}

func TestScoreUnnormalizedWeights(t *testing.T) {
	// Weights not summing to 1 are normalized by their actual sum, so
	// scaling all weights by a constant leaves the score unchanged.
	ref := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	due := ref.Add(24 * time.Hour)
	task := &model.Task{Raw: "x", Title: "x", Due: &due, EstMinutes: fptr(120), Importance: model.ImportanceHigh}

	base := Score(task, ref, DefaultWeights())
	scaled := Score(task, ref, Weights{Urgency: 6, Importance: 3, Effort: 1})
	if math.Abs(base-scaled) > 1e-9 {
		t.Errorf("scaled weights changed score: %v vs %v", base, scaled)
	}
}
