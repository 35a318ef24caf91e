package task

import (
	"time"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/priority"
)

// RankTextInput is the input for ranking free-form text.
type RankTextInput struct {
	RawText   string            // One task per line
	Reference time.Time         // Reference instant; zero means now
	Weights   *priority.Weights // nil means default weights
}

// RankRecordsInput is the input for ranking pre-parsed records.
type RankRecordsInput struct {
	Records   []*model.Task
	Reference time.Time
	Weights   *priority.Weights
}

// RankedTask is one entry of the ranking output.
type RankedTask struct {
	Score      float64
	Title      string
	Raw        string
	Due        *time.Time
	EstMinutes *float64
	Importance model.Importance
}

// RankOutput is the ordered result of a ranking operation, highest
// priority first.
type RankOutput struct {
	Tasks     []RankedTask
	TaskCount int
	Reference time.Time
}
