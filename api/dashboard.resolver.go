package api

import (
	"fmt"
	"time"

	"portfoliotracker/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const apiDateLayout = "2006-01-02"

type periodMetricsResponse struct {
	Period        string           `json:"period"`
	BeginDate     string           `json:"beginDate"`
	EndDate       string           `json:"endDate"`
	GrowthRate    *decimal.Decimal `json:"growthRate"`
	ModifiedDietz *decimal.Decimal `json:"modifiedDietz"`
}

type historyEntryResponse struct {
	Date          string           `json:"date"`
	TotalValue    decimal.Decimal  `json:"totalValue"`
	NetCashFlow   decimal.Decimal  `json:"netCashFlow"`
	PeriodReturn  *decimal.Decimal `json:"periodReturn"`
	CumulativeTWR decimal.Decimal  `json:"cumulativeTwr"`
}

type categorySliceResponse struct {
	Name              string          `json:"name"`
	Value             decimal.Decimal `json:"value"`
	AllocationPercent decimal.Decimal `json:"allocationPercent"`
}

type riskMetricsResponse struct {
	AnnualizedStdev  float64 `json:"annualizedStdev"`
	AnnualizedReturn float64 `json:"annualizedReturn"`
	SharpeRatio      float64 `json:"sharpeRatio"`
}

type dashboardResponse struct {
	DisplayCurrency string                  `json:"displayCurrency"`
	LatestDate      string                  `json:"latestDate"`
	TotalValue      decimal.Decimal         `json:"totalValue"`
	Cagr            *decimal.Decimal        `json:"cagr"`
	Periods         []periodMetricsResponse `json:"periods"`
	History         []historyEntryResponse  `json:"history"`
	Allocation      []categorySliceResponse `json:"allocation"`
	Platforms       []string                `json:"platforms"`
	Risk            *riskMetricsResponse    `json:"risk"`
	GeneratedAt     time.Time               `json:"generatedAt"`
}

func dashboardToResponse(d *domain.Dashboard) dashboardResponse {
	out := dashboardResponse{
		DisplayCurrency: d.DisplayCurrency,
		LatestDate:      d.LatestDate.Format(apiDateLayout),
		TotalValue:      d.TotalValue,
		Cagr:            d.CAGR,
		Periods:         []periodMetricsResponse{},
		History:         []historyEntryResponse{},
		Allocation:      []categorySliceResponse{},
		Platforms:       d.Platforms,
		GeneratedAt:     d.GeneratedAt,
	}
	for _, p := range d.Periods {
		out.Periods = append(out.Periods, periodMetricsResponse{
			Period:        string(p.Period),
			BeginDate:     p.BeginDate.Format(apiDateLayout),
			EndDate:       p.EndDate.Format(apiDateLayout),
			GrowthRate:    p.GrowthRate,
			ModifiedDietz: p.ModifiedDietz,
		})
	}
	for _, e := range d.History {
		out.History = append(out.History, historyEntryResponse{
			Date:          e.Date.Format(apiDateLayout),
			TotalValue:    e.TotalValue,
			NetCashFlow:   e.NetCashFlow,
			PeriodReturn:  e.PeriodReturn,
			CumulativeTWR: e.CumulativeTWR,
		})
	}
	for _, s := range d.Allocation {
		out.Allocation = append(out.Allocation, categorySliceResponse{
			Name:              s.Name,
			Value:             s.Value,
			AllocationPercent: s.AllocationPercent,
		})
	}
	if d.Risk != nil {
		out.Risk = &riskMetricsResponse{
			AnnualizedStdev:  d.Risk.AnnualizedStdev,
			AnnualizedReturn: d.Risk.AnnualizedReturn,
			SharpeRatio:      d.Risk.SharpeRatio,
		}
	}
	return out
}

func (m ApiHandler) dashboard(ctx *gin.Context) {
	dashboard := m.DashboardHandler.Current()
	if dashboard == nil {
		returnErrorJsonCode(fmt.Errorf("dashboard not loaded yet"), ctx, 503)
		return
	}
	ctx.JSON(200, dashboardToResponse(dashboard))
}

func (m ApiHandler) reloadDashboard(ctx *gin.Context) {
	m.DashboardHandler.MarkDirty()
	ctx.JSON(200, map[string]string{"success": "true"})
}
