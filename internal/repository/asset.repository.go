package repository

import (
	"database/sql"
	"fmt"

	"portfoliotracker/internal/db/models/postgres/public/model"
	. "portfoliotracker/internal/db/models/postgres/public/table"
	"portfoliotracker/internal/domain"
)

type AssetRepository interface {
	List() ([]domain.Asset, error)
}

func NewAssetRepository(db *sql.DB) AssetRepository {
	return assetRepositoryHandler{Db: db}
}

type assetRepositoryHandler struct {
	Db *sql.DB
}

func (h assetRepositoryHandler) List() ([]domain.Asset, error) {
	query := Asset.
		SELECT(Asset.AllColumns).
		ORDER_BY(Asset.Platform.ASC(), Asset.Name.ASC())

	result := []model.Asset{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	out := []domain.Asset{}
	for _, a := range result {
		out = append(out, domain.Asset{
			AssetID:    a.AssetID,
			Name:       a.Name,
			Platform:   a.Platform,
			Currency:   a.Currency,
			CategoryID: a.CategoryID,
		})
	}

	return out, nil
}
