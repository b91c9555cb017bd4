package cmd

import (
	"database/sql"
	"fmt"

	"portfoliotracker/api"
	"portfoliotracker/internal/app"
	"portfoliotracker/internal/repository"
	"portfoliotracker/internal/service"
	"portfoliotracker/internal/util"
	"portfoliotracker/pkg/exchangerates"

	_ "github.com/lib/pq"
)

// Dependencies is the fully wired object graph shared by every
// subcommand.
type Dependencies struct {
	Db                 *sql.DB
	ApiHandler         *api.ApiHandler
	DashboardHandler   *app.DashboardHandler
	DashboardService   service.DashboardService
	ExportService      service.ExportService
	RatesService       service.RatesService
	SnapshotRepository repository.SnapshotRepository
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	snapshotRepository := repository.NewSnapshotRepository(dbConn)
	assetRepository := repository.NewAssetRepository(dbConn)
	snapshotValueRepository := repository.NewSnapshotValueRepository(dbConn)
	cashFlowRepository := repository.NewCashFlowRepository(dbConn)
	exchangeRateRepository := repository.NewExchangeRateRepository(dbConn)
	categoryRepository := repository.NewCategoryRepository(dbConn)
	settingsRepository := repository.NewSettingsRepository(dbConn)

	dashboardService := service.NewDashboardService(
		snapshotRepository,
		assetRepository,
		snapshotValueRepository,
		cashFlowRepository,
		exchangeRateRepository,
		categoryRepository,
		settingsRepository,
	)
	exportService := service.NewExportService(snapshotRepository, dashboardService)
	ratesService := service.NewRatesService(
		snapshotRepository,
		exchangeRateRepository,
		settingsRepository,
		exchangerates.NewClient(secrets.RatesApiUrl),
	)

	dashboardHandler := app.NewDashboardHandler(dashboardService)

	apiHandler := &api.ApiHandler{
		DashboardHandler:   dashboardHandler,
		DashboardService:   dashboardService,
		ExportService:      exportService,
		CategoryRepository: categoryRepository,
	}

	return &Dependencies{
		Db:                 dbConn,
		ApiHandler:         apiHandler,
		DashboardHandler:   dashboardHandler,
		DashboardService:   dashboardService,
		ExportService:      exportService,
		RatesService:       ratesService,
		SnapshotRepository: snapshotRepository,
	}, nil
}

func (d *Dependencies) Close() error {
	return d.Db.Close()
}
