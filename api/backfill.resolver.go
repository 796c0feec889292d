package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type backfillRequest struct {
	PortfolioID   string `json:"portfolioId"`
	EffectiveDate string `json:"effectiveDate"`
}

// backfill is the administrative recovery path: rebuild a portfolio's
// snapshot history from the given date, synchronously, so the operator sees
// the outcome.
func (m ApiHandler) backfill(c *gin.Context) {
	var requestBody backfillRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	portfolioID, err := uuid.Parse(requestBody.PortfolioID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid portfolioId: %w", err), c, 400)
		return
	}
	effectiveDate, err := parseDate(requestBody.EffectiveDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	err = m.ReplayService.ReplayFrom(c.Request.Context(), portfolioID, effectiveDate)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
