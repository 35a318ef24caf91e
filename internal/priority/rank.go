package priority

import (
	"sort"
	"time"

	"smart-task-assistant/internal/model"
)

// Rank scores every task at the reference instant and returns the
// batch ordered by descending score. The sort is stable: tasks with
// equal scores keep their input order, so the ordering is fully
// deterministic for a given (tasks, ref, w).
//
// Nil entries are kept and score 0.0; callers that want them excluded
// filter before ranking. An empty or nil input yields an empty slice.
func Rank(tasks []*model.Task, ref time.Time, w Weights) []model.ScoredTask {
	scored := make([]model.ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		scored = append(scored, model.ScoredTask{
			Score: Score(t, ref, w),
			Task:  t,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
