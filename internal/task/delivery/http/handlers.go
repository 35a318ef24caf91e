package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-assistant/pkg/response"
)

// RankText godoc
// @Summary     Rank free-form task text
// @Description Splits the text into task lines, extracts structured records, and returns them ordered by composite priority score.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body rankTextReq true "Task text, optional reference instant and weights"
// @Success     200 {object} rankResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/rank [POST]
func (h *handler) RankText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRankTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RankText(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RankText: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newRankResp(output))
}

// RankRecords godoc
// @Summary     Rank pre-parsed task records
// @Description Ranks already-extracted task records without running the extractor. This is the pure core surface.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body rankRecordsReq true "Task records, optional reference instant and weights"
// @Success     200 {object} rankResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/rank/records [POST]
func (h *handler) RankRecords(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRankRecordsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RankRecords(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RankRecords: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newRankResp(output))
}

// RankCSV godoc
// @Summary     Rank tasks from a CSV upload
// @Description Accepts a multipart CSV file with a "task" column, one task per row.
// @Tags        Tasks
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "CSV file with a 'task' column"
// @Success     200 {object} rankResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/rank/csv [POST]
func (h *handler) RankCSV(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processRankCSVReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RankText(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.RankText (csv): %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newRankResp(output))
}
