package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"portfoliotracker/internal/db/models/postgres/public/model"
	. "portfoliotracker/internal/db/models/postgres/public/table"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

const displayCurrencyKey = "display_currency"
const defaultDisplayCurrency = "USD"

type SettingsRepository interface {
	GetDisplayCurrency() (string, error)
}

func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return settingsRepositoryHandler{Db: db}
}

type settingsRepositoryHandler struct {
	Db *sql.DB
}

func (h settingsRepositoryHandler) GetDisplayCurrency() (string, error) {
	query := AppSetting.
		SELECT(AppSetting.AllColumns).
		WHERE(AppSetting.Key.EQ(String(displayCurrencyKey)))

	result := model.AppSetting{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return defaultDisplayCurrency, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get display currency: %w", err)
	}

	currency := strings.ToUpper(strings.TrimSpace(result.Value))
	if currency == "" {
		return defaultDisplayCurrency, nil
	}
	return currency, nil
}
