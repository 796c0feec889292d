package api

import (
	"fmt"

	"perfhistory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

type snapshotCsvRow struct {
	Date           string  `csv:"date"`
	TotalEquity    float64 `csv:"total_equity"`
	CashBalance    float64 `csv:"cash_balance"`
	NetCashFlow    float64 `csv:"net_cash_flow"`
	DailyReturnPct float64 `csv:"daily_return_pct"`
}

func (m ApiHandler) exportPerformance(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Query("portfolioId"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid portfolioId: %w", err), c, 400)
		return
	}
	start, err := parseDate(c.Query("start"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	snapshots, err := m.SnapshotRepository.List(portfolioID, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	rows := []snapshotCsvRow{}
	for _, s := range service.SnapshotsToDomain(snapshots) {
		rows = append(rows, snapshotCsvRow{
			Date:           s.Date.Format("2006-01-02"),
			TotalEquity:    s.TotalEquity.InexactFloat64(),
			CashBalance:    s.CashBalance.InexactFloat64(),
			NetCashFlow:    s.NetCashFlow.InexactFloat64(),
			DailyReturnPct: s.DailyReturnPct.InexactFloat64(),
		})
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=performance-%s.csv", portfolioID))
	c.Status(200)
	if err := gocsv.Marshal(rows, c.Writer); err != nil {
		returnErrorJson(err, c)
	}
}
