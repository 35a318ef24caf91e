package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/priority"
	"smart-task-assistant/internal/task"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockExtractor derives simple records straight from the line text so
// tests control attributes without real NLP.
type mockExtractor struct{}

func (m *mockExtractor) Extract(text string, ref time.Time) *model.Task {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	t := &model.Task{Raw: text, Title: text}
	if strings.Contains(text, "urgent") {
		due := ref.Add(-time.Hour)
		t.Due = &due
		t.Importance = model.ImportanceHigh
	}
	if strings.Contains(text, "someday") {
		t.Importance = model.ImportanceLow
	}
	return t
}

func fptr(v float64) *float64 { return &v }

func TestRankText(t *testing.T) {
	uc := New(&mockLogger{}, &mockExtractor{}, priority.DefaultWeights(), true)
	ref := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("orders by priority", func(t *testing.T) {
		out, err := uc.RankText(context.Background(), task.RankTextInput{
			RawText:   "read that article someday\nurgent: submit the tax form\nwater the plants",
			Reference: ref,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TaskCount != 3 {
			t.Fatalf("expected 3 tasks, got %d", out.TaskCount)
		}
		if !strings.Contains(out.Tasks[0].Raw, "urgent") {
			t.Errorf("expected urgent task first, got %q", out.Tasks[0].Raw)
		}
		for i := 1; i < len(out.Tasks); i++ {
			if out.Tasks[i].Score > out.Tasks[i-1].Score {
				t.Errorf("scores not descending at %d", i)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := uc.RankText(context.Background(), task.RankTextInput{RawText: "   \n  "})
		if err != task.ErrEmptyInput {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("blank lines skipped", func(t *testing.T) {
		out, err := uc.RankText(context.Background(), task.RankTextInput{
			RawText:   "\nbuy groceries\n\n\ncall john\n",
			Reference: ref,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TaskCount != 2 {
			t.Errorf("expected 2 tasks, got %d", out.TaskCount)
		}
	})
}

func TestRankRecords(t *testing.T) {
	ref := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	due := ref.Add(2 * time.Hour)

	records := []*model.Task{
		nil,
		{Raw: "quick email", Title: "email", EstMinutes: fptr(10)},
		{Raw: "ship release", Title: "release", Due: &due, Importance: model.ImportanceHigh},
	}

	t.Run("includes unscored by default policy", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockExtractor{}, priority.DefaultWeights(), true)
		out, err := uc.RankRecords(context.Background(), task.RankRecordsInput{Records: records, Reference: ref})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TaskCount != 3 {
			t.Fatalf("expected 3 entries, got %d", out.TaskCount)
		}
		last := out.Tasks[len(out.Tasks)-1]
		if last.Score != 0.0 || last.Raw != "" {
			t.Errorf("nil record should rank last at 0.0, got %+v", last)
		}
	})

	t.Run("filters unscored when configured", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockExtractor{}, priority.DefaultWeights(), false)
		out, err := uc.RankRecords(context.Background(), task.RankRecordsInput{Records: records, Reference: ref})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TaskCount != 2 {
			t.Errorf("expected nil record filtered, got %d entries", out.TaskCount)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockExtractor{}, priority.DefaultWeights(), true)
		_, err := uc.RankRecords(context.Background(), task.RankRecordsInput{})
		if err != task.ErrNoRecords {
			t.Errorf("expected ErrNoRecords, got %v", err)
		}
	})

	t.Run("request weights override defaults", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockExtractor{}, priority.DefaultWeights(), false)
		// Effort-only weights: the 10-minute task must win over the
		// urgent one.
		w := priority.Weights{Effort: 1}
		out, err := uc.RankRecords(context.Background(), task.RankRecordsInput{
			Records:   records,
			Reference: ref,
			Weights:   &w,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tasks[0].Raw != "quick email" {
			t.Errorf("expected effort-weighted winner, got %q", out.Tasks[0].Raw)
		}
	})
}
