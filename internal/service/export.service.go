package service

import (
	"fmt"
	"io"
	"sort"

	"portfoliotracker/internal/repository"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

const exportDateLayout = "2006-01-02"

// ExportService writes the carry-forward-resolved valuation of a
// snapshot as CSV. Values are exported in the asset's own currency -
// export is a data dump, not a converted report.
type ExportService interface {
	ExportComposite(w io.Writer, snapshotID uuid.UUID) error
}

func NewExportService(
	snapshotRepository repository.SnapshotRepository,
	dashboardService DashboardService,
) ExportService {
	return exportServiceHandler{
		SnapshotRepository: snapshotRepository,
		DashboardService:   dashboardService,
	}
}

type exportServiceHandler struct {
	SnapshotRepository repository.SnapshotRepository
	DashboardService   DashboardService
}

type compositeCsvRow struct {
	Date        string `csv:"date"`
	Asset       string `csv:"asset"`
	Platform    string `csv:"platform"`
	Currency    string `csv:"currency"`
	Value       string `csv:"value"`
	CarriedFrom string `csv:"carried_from"`
}

func (h exportServiceHandler) ExportComposite(w io.Writer, snapshotID uuid.UUID) error {
	snapshot, err := h.SnapshotRepository.Get(snapshotID)
	if err != nil {
		return fmt.Errorf("failed to load snapshot for export: %w", err)
	}

	composite, err := h.DashboardService.CompositeSnapshot(snapshotID)
	if err != nil {
		return fmt.Errorf("failed to resolve composite values for export: %w", err)
	}

	rows := []compositeCsvRow{}
	for _, v := range composite {
		row := compositeCsvRow{
			Date:     snapshot.Date.Format(exportDateLayout),
			Asset:    v.Asset.Name,
			Platform: v.Asset.Platform,
			Currency: v.Asset.Currency,
			Value:    v.Value.String(),
		}
		if v.SourceDate != nil {
			row.CarriedFrom = v.SourceDate.Format(exportDateLayout)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Platform != rows[j].Platform {
			return rows[i].Platform < rows[j].Platform
		}
		return rows[i].Asset < rows[j].Asset
	})

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write composite csv: %w", err)
	}
	return nil
}
