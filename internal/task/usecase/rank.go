package usecase

import (
	"context"
	"strings"
	"time"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/priority"
	"smart-task-assistant/internal/task"
)

// RankText splits the raw text into lines, extracts one record per
// non-blank line, and ranks the batch.
func (uc *implUseCase) RankText(ctx context.Context, input task.RankTextInput) (task.RankOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.RankOutput{}, task.ErrEmptyInput
	}

	ref := uc.reference(input.Reference)

	var records []*model.Task
	for _, line := range strings.Split(input.RawText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, uc.extractor.Extract(line, ref))
	}
	if len(records) == 0 {
		return task.RankOutput{}, task.ErrNoRecords
	}

	uc.l.Infof(ctx, "task usecase: extracted %d record(s)", len(records))

	return uc.rank(records, ref, input.Weights), nil
}

// RankRecords ranks pre-parsed records without touching the extractor.
func (uc *implUseCase) RankRecords(ctx context.Context, input task.RankRecordsInput) (task.RankOutput, error) {
	if len(input.Records) == 0 {
		return task.RankOutput{}, task.ErrNoRecords
	}
	return uc.rank(input.Records, uc.reference(input.Reference), input.Weights), nil
}

// rank applies the include-unscored policy, scores, and orders.
func (uc *implUseCase) rank(records []*model.Task, ref time.Time, w *priority.Weights) task.RankOutput {
	if !uc.includeUnscored {
		kept := make([]*model.Task, 0, len(records))
		for _, r := range records {
			if r != nil {
				kept = append(kept, r)
			}
		}
		records = kept
	}

	weights := uc.defaultWeights
	if w != nil {
		weights = *w
	}

	ranked := priority.Rank(records, ref, weights)

	out := task.RankOutput{
		Tasks:     make([]task.RankedTask, 0, len(ranked)),
		TaskCount: len(ranked),
		Reference: ref,
	}
	for _, s := range ranked {
		entry := task.RankedTask{Score: s.Score}
		if s.Task != nil {
			entry.Title = s.Task.Title
			entry.Raw = s.Task.Raw
			entry.Due = s.Task.Due
			entry.EstMinutes = s.Task.EstMinutes
			entry.Importance = s.Task.Importance
		}
		out.Tasks = append(out.Tasks, entry)
	}
	return out
}

func (uc *implUseCase) reference(ref time.Time) time.Time {
	if ref.IsZero() {
		return time.Now()
	}
	return ref
}
