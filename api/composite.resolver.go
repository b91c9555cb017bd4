package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type compositeValueResponse struct {
	Asset          string          `json:"asset"`
	Platform       string          `json:"platform"`
	Currency       string          `json:"currency"`
	Value          decimal.Decimal `json:"value"`
	CarriedForward bool            `json:"carriedForward"`
	SourceDate     *string         `json:"sourceDate"`
}

func (m ApiHandler) compositeSnapshot(ctx *gin.Context) {
	snapshotID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid snapshot id: %w", err), ctx, 400)
		return
	}

	composite, err := m.DashboardService.CompositeSnapshot(snapshotID)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to resolve composite snapshot: %w", err), ctx)
		return
	}

	out := []compositeValueResponse{}
	for _, v := range composite {
		row := compositeValueResponse{
			Asset:          v.Asset.Name,
			Platform:       v.Asset.Platform,
			Currency:       v.Asset.Currency,
			Value:          v.Value,
			CarriedForward: v.CarriedForward,
		}
		if v.SourceDate != nil {
			date := v.SourceDate.Format(apiDateLayout)
			row.SourceDate = &date
		}
		out = append(out, row)
	}

	ctx.JSON(200, out)
}

func (m ApiHandler) exportComposite(ctx *gin.Context) {
	snapshotID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid snapshot id: %w", err), ctx, 400)
		return
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=composite-%s.csv", snapshotID))
	if err := m.ExportService.ExportComposite(ctx.Writer, snapshotID); err != nil {
		returnErrorJson(fmt.Errorf("failed to export composite snapshot: %w", err), ctx)
		return
	}
}
