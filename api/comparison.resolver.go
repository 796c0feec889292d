package api

import (
	"errors"
	"fmt"

	"perfhistory/internal/domain"
	"perfhistory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type comparisonRequest struct {
	PortfolioID     string `json:"portfolioId"`
	BenchmarkSymbol string `json:"benchmarkSymbol"`
	Start           string `json:"start"`
	End             string `json:"end"`
	ExcludeCash     bool   `json:"excludeCash"`
}

type comparisonPointDTO struct {
	Date           string  `json:"date"`
	PortfolioValue float64 `json:"portfolioValue"`
	BenchmarkValue float64 `json:"benchmarkValue"`
}

type comparisonResponse struct {
	Series          []comparisonPointDTO `json:"series"`
	BenchmarkReturn *float64             `json:"benchmarkReturn"`
}

func (m ApiHandler) comparison(c *gin.Context) {
	var requestBody comparisonRequest
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

	snapshotModels, err := m.SnapshotRepository.List(portfolioID, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	snapshots := service.SnapshotsToDomain(snapshotModels)

	out := comparisonResponse{Series: []comparisonPointDTO{}}
	if len(snapshots) == 0 {
		c.JSON(200, out)
		return
	}

	ctx := c.Request.Context()
	benchmarkPrices, err := m.BenchmarkDataService.GetPricesForRangeWithAutoBackfill(
		ctx, requestBody.BenchmarkSymbol, start, end)
	if err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			returnErrorJsonCode(err, c, 503)
			return
		}
		returnErrorJson(err, c)
		return
	}

	series := service.BuildNormalizedSeries(snapshots, benchmarkPrices)
	if requestBody.ExcludeCash {
		series = service.RescaleToFinalValue(series, excludeCashTarget(snapshots))
	}

	benchmarkReturn, err := m.BenchmarkDataService.CalculateBenchmarkReturn(
		ctx, requestBody.BenchmarkSymbol, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if benchmarkReturn != nil {
		v := benchmarkReturn.InexactFloat64()
		out.BenchmarkReturn = &v
	}

	for _, p := range series {
		out.Series = append(out.Series, comparisonPointDTO{
			Date:           p.Date.Format("2006-01-02"),
			PortfolioValue: p.PortfolioValue.InexactFloat64(),
			BenchmarkValue: p.BenchmarkValue.InexactFloat64(),
		})
	}

	c.JSON(200, out)
}

// excludeCashTarget pins the exclude-cash curve's final point to the growth
// of invested value only (equity minus cash, start vs end). The rest of the
// curve is rescaled proportionally - see RescaleToFinalValue for why this
// is an approximation rather than an exact recomputation.
func excludeCashTarget(snapshots []domain.DailySnapshot) decimal.Decimal {
	first := snapshots[0]
	last := snapshots[len(snapshots)-1]

	firstInvested := first.TotalEquity.Sub(first.CashBalance)
	lastInvested := last.TotalEquity.Sub(last.CashBalance)
	if firstInvested.IsZero() {
		return decimal.NewFromInt(100)
	}
	return lastInvested.Div(firstInvested).Mul(decimal.NewFromInt(100))
}
