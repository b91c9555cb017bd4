package api

import (
	"fmt"

	"portfoliotracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type rebalanceActionResponse struct {
	Category       string          `json:"category"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	CurrentPercent decimal.Decimal `json:"currentPercent"`
	TargetPercent  decimal.Decimal `json:"targetPercent"`
	TargetValue    decimal.Decimal `json:"targetValue"`
	Adjustment     decimal.Decimal `json:"adjustment"`
	Action         string          `json:"action"`
}

type rebalanceResponse struct {
	TotalValue  decimal.Decimal           `json:"totalValue"`
	Actions     []rebalanceActionResponse `json:"actions"`
	Suggestions []string                  `json:"suggestions"`
}

// rebalance compares the latest snapshot's category values against the
// configured targets. Values come from the cached dashboard, so the
// endpoint is read-only and cheap.
func (m ApiHandler) rebalance(ctx *gin.Context) {
	dashboard := m.DashboardHandler.Current()
	if dashboard == nil {
		returnErrorJsonCode(fmt.Errorf("dashboard not loaded yet"), ctx, 503)
		return
	}

	categories, err := m.CategoryRepository.List()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to load categories: %w", err), ctx)
		return
	}

	valueByCategory := map[uuid.UUID]decimal.Decimal{}
	for _, slice := range dashboard.Allocation {
		if slice.CategoryID != nil {
			valueByCategory[*slice.CategoryID] = slice.Value
		}
	}

	categoryValues := []service.CategoryValue{}
	for _, c := range categories {
		categoryValues = append(categoryValues, service.CategoryValue{
			Name:          c.Name,
			CurrentValue:  valueByCategory[c.CategoryID],
			TargetPercent: c.TargetPercent,
		})
	}

	actions := service.CalculateAdjustments(categoryValues, dashboard.TotalValue)
	moves := service.SummarizeMoves(actions)

	out := rebalanceResponse{
		TotalValue:  dashboard.TotalValue,
		Actions:     []rebalanceActionResponse{},
		Suggestions: []string{},
	}
	for _, a := range actions {
		out.Actions = append(out.Actions, rebalanceActionResponse{
			Category:       a.CategoryName,
			CurrentValue:   a.CurrentValue,
			CurrentPercent: a.CurrentPercent,
			TargetPercent:  a.TargetPercent,
			TargetValue:    a.TargetValue,
			Adjustment:     a.Adjustment,
			Action:         string(a.Action),
		})
	}
	for _, move := range moves {
		out.Suggestions = append(out.Suggestions, service.FormatMove(move, dashboard.DisplayCurrency))
	}

	ctx.JSON(200, out)
}
