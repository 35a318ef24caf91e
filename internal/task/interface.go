package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// RankText splits raw text into task lines, extracts a record per
	// line, and returns the batch ordered by descending priority.
	RankText(ctx context.Context, input RankTextInput) (RankOutput, error)

	// RankRecords ranks pre-parsed task records. This is the core
	// surface: pure, deterministic, no side effects.
	RankRecords(ctx context.Context, input RankRecordsInput) (RankOutput, error)
}
