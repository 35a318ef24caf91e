package http

import (
	"encoding/csv"
	"strings"

	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/task"
)

// processRankTextReq binds and validates the rank-text request body.
func (h *handler) processRankTextReq(c *gin.Context) (rankTextReq, error) {
	var req rankTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRankRecordsReq binds and validates the rank-records request body.
func (h *handler) processRankRecordsReq(c *gin.Context) (rankRecordsReq, error) {
	var req rankRecordsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRankCSVReq reads the uploaded CSV and pulls task lines from
// the "task" column.
func (h *handler) processRankCSVReq(c *gin.Context) (task.RankTextInput, error) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		return task.RankTextInput{}, errMissingFile
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return task.RankTextInput{}, errBadCSV
	}
	if len(rows) == 0 {
		return task.RankTextInput{}, errMissingTaskColumn
	}

	taskCol := -1
	for i, name := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(name), "task") {
			taskCol = i
			break
		}
	}
	if taskCol == -1 {
		return task.RankTextInput{}, errMissingTaskColumn
	}

	var lines []string
	for _, row := range rows[1:] {
		if taskCol < len(row) && strings.TrimSpace(row[taskCol]) != "" {
			lines = append(lines, strings.TrimSpace(row[taskCol]))
		}
	}
	if len(lines) == 0 {
		return task.RankTextInput{}, errMissingInput
	}

	return task.RankTextInput{RawText: strings.Join(lines, "\n")}, nil
}
