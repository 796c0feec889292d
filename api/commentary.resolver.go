package api

import (
	"encoding/json"
	"fmt"

	"perfhistory/internal/calculator"
	"perfhistory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type commentaryRequest struct {
	PortfolioID     string `json:"portfolioId"`
	BenchmarkSymbol string `json:"benchmarkSymbol"`
	Start           string `json:"start"`
	End             string `json:"end"`
}

type commentarySummary struct {
	Start            string   `json:"start"`
	End              string   `json:"end"`
	CumulativeReturn float64  `json:"cumulativeReturnPct"`
	BenchmarkSymbol  string   `json:"benchmarkSymbol,omitempty"`
	BenchmarkReturn  *float64 `json:"benchmarkReturnPct,omitempty"`
	AnnualizedStdev  *float64 `json:"annualizedStdev,omitempty"`
	SharpeRatio      *float64 `json:"sharpeRatio,omitempty"`
	MaxDrawdown      *float64 `json:"maxDrawdown,omitempty"`
}

func (m ApiHandler) commentary(c *gin.Context) {
	var requestBody commentaryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	portfolioID, err := uuid.Parse(requestBody.PortfolioID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid portfolioId: %w", err), c, 400)
		return
	}
	start, err := parseDate(requestBody.Start)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	end, err := parseDate(requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	snapshots, err := m.SnapshotRepository.List(portfolioID, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if len(snapshots) == 0 {
		returnErrorJsonCode(fmt.Errorf("no snapshots for portfolio %s between %s and %s", portfolioID, requestBody.Start, requestBody.End), c, 404)
		return
	}

	domainSnapshots := service.SnapshotsToDomain(snapshots)

	cumulative := 1.0
	for _, s := range domainSnapshots {
		cumulative *= 1 + s.DailyReturnPct.InexactFloat64()
	}

	summary := commentarySummary{
		Start:            requestBody.Start,
		End:              requestBody.End,
		CumulativeReturn: (cumulative - 1) * 100,
	}

	metrics, err := calculator.CalculateMetrics(domainSnapshots)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if metrics != nil {
		summary.AnnualizedStdev = &metrics.AnnualizedStdev
		summary.SharpeRatio = &metrics.SharpeRatio
		summary.MaxDrawdown = &metrics.MaxDrawdown
	}

	if requestBody.BenchmarkSymbol != "" {
		benchmarkReturn, err := m.BenchmarkDataService.CalculateBenchmarkReturn(c.Request.Context(), requestBody.BenchmarkSymbol, start, end)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		if benchmarkReturn != nil {
			pct := benchmarkReturn.InexactFloat64() * 100
			summary.BenchmarkSymbol = requestBody.BenchmarkSymbol
			summary.BenchmarkReturn = &pct
		}
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	text, err := m.GptRepository.GeneratePerformanceCommentary(c.Request.Context(), string(summaryJson))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"commentary": text})
}
