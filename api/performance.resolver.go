package api

import (
	"fmt"

	"perfhistory/internal/calculator"
	"perfhistory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type performanceRequest struct {
	PortfolioID string `json:"portfolioId"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

type snapshotDTO struct {
	Date           string  `json:"date"`
	TotalEquity    float64 `json:"totalEquity"`
	CashBalance    float64 `json:"cashBalance"`
	NetCashFlow    float64 `json:"netCashFlow"`
	DailyReturnPct float64 `json:"dailyReturnPct"`
}

type performanceResponse struct {
	Snapshots []snapshotDTO                      `json:"snapshots"`
	Metrics   *calculator.CalculateMetricsResult `json:"metrics"`
}

func (m ApiHandler) performance(c *gin.Context) {
	var requestBody performanceRequest
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

	domainSnapshots := service.SnapshotsToDomain(snapshots)
	metrics, err := calculator.CalculateMetrics(domainSnapshots)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := performanceResponse{
		Snapshots: []snapshotDTO{},
		Metrics:   metrics,
	}
	for _, s := range domainSnapshots {
		out.Snapshots = append(out.Snapshots, snapshotDTO{
			Date:           s.Date.Format("2006-01-02"),
			TotalEquity:    s.TotalEquity.InexactFloat64(),
			CashBalance:    s.CashBalance.InexactFloat64(),
			NetCashFlow:    s.NetCashFlow.InexactFloat64(),
			DailyReturnPct: s.DailyReturnPct.InexactFloat64(),
		})
	}

	c.JSON(200, out)
}
