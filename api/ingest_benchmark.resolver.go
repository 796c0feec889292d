package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type ingestBenchmarkRequest struct {
	Date string `json:"date"`
}

type ingestBenchmarkResponse struct {
	ForDate   string `json:"forDate"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

// ingestBenchmark manually re-runs benchmark ingestion for an explicit
// date, to recover a missed scheduled run. Per-symbol failures are
// reflected in the tally, not hidden behind a 500.
func (m ApiHandler) ingestBenchmark(c *gin.Context) {
	var requestBody ingestBenchmarkRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	date, err := parseDate(requestBody.Date)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	summary, runErr := m.IngestionService.RunFetchForDate(c.Request.Context(), date)
	if summary == nil {
		returnErrorJson(runErr, c)
		return
	}

	c.JSON(200, ingestBenchmarkResponse{
		ForDate:   summary.ForDate.Format("2006-01-02"),
		Succeeded: summary.Succeeded,
		Failed:    summary.Failed,
	})
}
