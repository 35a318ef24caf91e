package usecase

import (
	"time"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/priority"
	pkgLog "smart-task-assistant/pkg/log"
)

// Extractor is the upstream collaborator contract: free text plus a
// reference instant in, an optional task record out. Blank input
// yields no record (nil).
type Extractor interface {
	Extract(text string, ref time.Time) *model.Task
}

type implUseCase struct {
	l               pkgLog.Logger
	extractor       Extractor
	defaultWeights  priority.Weights
	includeUnscored bool
}

// New creates a new task UseCase instance. defaultWeights apply when a
// request does not carry its own; includeUnscored controls whether
// records that score 0.0 for lack of any input stay in the output.
func New(l pkgLog.Logger, extractor Extractor, defaultWeights priority.Weights, includeUnscored bool) *implUseCase {
	return &implUseCase{
		l:               l,
		extractor:       extractor,
		defaultWeights:  defaultWeights,
		includeUnscored: includeUnscored,
	}
}
