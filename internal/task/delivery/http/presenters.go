package http

import (
	"time"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/priority"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/pkg/response"
)

// --- Request DTOs ---

type rankTextReq struct {
	Text      string      `json:"text"`  // Multi-line free text, one task per line
	Lines     []string    `json:"lines"` // Alternative to Text
	Reference *time.Time  `json:"reference"`
	Weights   *weightsReq `json:"weights"`
}

func (r rankTextReq) validate() error {
	if r.Text == "" && len(r.Lines) == 0 {
		return errMissingInput
	}
	return nil
}

func (r rankTextReq) toInput() task.RankTextInput {
	text := r.Text
	if text == "" {
		for i, line := range r.Lines {
			if i > 0 {
				text += "\n"
			}
			text += line
		}
	}
	in := task.RankTextInput{RawText: text, Weights: r.Weights.toWeights()}
	if r.Reference != nil {
		in.Reference = *r.Reference
	}
	return in
}

// ---

type weightsReq struct {
	Urgency    float64 `json:"urgency"    binding:"gte=0"`
	Importance float64 `json:"importance" binding:"gte=0"`
	Effort     float64 `json:"effort"     binding:"gte=0"`
}

func (r *weightsReq) toWeights() *priority.Weights {
	if r == nil {
		return nil
	}
	return &priority.Weights{Urgency: r.Urgency, Importance: r.Importance, Effort: r.Effort}
}

// ---

type recordReq struct {
	Raw            string     `json:"raw" binding:"required"`
	Title          string     `json:"title"`
	Due            *time.Time `json:"due"`
	EstMinutes     *float64   `json:"est_minutes"`
	Importance     string     `json:"importance"`      // high | medium | low
	ImportanceCode *int       `json:"importance_code"` // legacy numeric encoding: 0=high, 1=medium, -1=low
}

func (r recordReq) toRecord() *model.Task {
	imp := model.ParseImportance(r.Importance)
	if r.Importance == "" && r.ImportanceCode != nil {
		imp = model.ImportanceFromCode(*r.ImportanceCode)
	}
	title := r.Title
	if title == "" {
		title = r.Raw
	}
	return &model.Task{
		Raw:        r.Raw,
		Title:      title,
		Due:        r.Due,
		EstMinutes: r.EstMinutes,
		Importance: imp,
	}
}

type rankRecordsReq struct {
	Records   []recordReq `json:"records" binding:"required"`
	Reference *time.Time  `json:"reference"`
	Weights   *weightsReq `json:"weights"`
}

func (r rankRecordsReq) validate() error {
	if len(r.Records) == 0 {
		return errMissingInput
	}
	return nil
}

func (r rankRecordsReq) toInput() task.RankRecordsInput {
	records := make([]*model.Task, 0, len(r.Records))
	for _, rec := range r.Records {
		records = append(records, rec.toRecord())
	}
	in := task.RankRecordsInput{Records: records, Weights: r.Weights.toWeights()}
	if r.Reference != nil {
		in.Reference = *r.Reference
	}
	return in
}

// --- Response DTOs ---

type rankedTaskResp struct {
	Score      float64            `json:"score"`
	Title      string             `json:"title"`
	Raw        string             `json:"raw"`
	Due        *response.DateTime `json:"due,omitempty"`
	EstMinutes *float64           `json:"est_minutes,omitempty"`
	Importance string             `json:"importance"`
}

type rankResp struct {
	Tasks     []rankedTaskResp `json:"tasks"`
	TaskCount int              `json:"task_count"`
	Reference time.Time        `json:"reference"`
}

func (h *handler) newRankResp(out task.RankOutput) rankResp {
	tasks := make([]rankedTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = rankedTaskResp{
			Score:      t.Score,
			Title:      t.Title,
			Raw:        t.Raw,
			EstMinutes: t.EstMinutes,
			Importance: t.Importance.String(),
		}
		if t.Due != nil {
			due := response.DateTime(*t.Due)
			tasks[i].Due = &due
		}
	}
	return rankResp{
		Tasks:     tasks,
		TaskCount: out.TaskCount,
		Reference: out.Reference,
	}
}
