package repository

import (
	"database/sql"
	"fmt"

	"portfoliotracker/internal/db/models/postgres/public/model"
	. "portfoliotracker/internal/db/models/postgres/public/table"
	"portfoliotracker/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type SnapshotValueRepository interface {
	List() ([]domain.SnapshotAssetValue, error)
	ListBySnapshot(snapshotID uuid.UUID) ([]domain.SnapshotAssetValue, error)
}

func NewSnapshotValueRepository(db *sql.DB) SnapshotValueRepository {
	return snapshotValueRepositoryHandler{Db: db}
}

type snapshotValueRepositoryHandler struct {
	Db *sql.DB
}

func (h snapshotValueRepositoryHandler) List() ([]domain.SnapshotAssetValue, error) {
	query := SnapshotAssetValue.
		SELECT(SnapshotAssetValue.AllColumns)

	result := []model.SnapshotAssetValue{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot asset values: %w", err)
	}

	return snapshotValuesFromModels(result), nil
}

func (h snapshotValueRepositoryHandler) ListBySnapshot(snapshotID uuid.UUID) ([]domain.SnapshotAssetValue, error) {
	query := SnapshotAssetValue.
		SELECT(SnapshotAssetValue.AllColumns).
		WHERE(SnapshotAssetValue.SnapshotID.EQ(String(snapshotID.String())))

	result := []model.SnapshotAssetValue{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list values for snapshot %s: %w", snapshotID, err)
	}

	return snapshotValuesFromModels(result), nil
}

func snapshotValuesFromModels(in []model.SnapshotAssetValue) []domain.SnapshotAssetValue {
	out := []domain.SnapshotAssetValue{}
	for _, v := range in {
		out = append(out, domain.SnapshotAssetValue{
			SnapshotAssetValueID: v.SnapshotAssetValueID,
			SnapshotID:           v.SnapshotID,
			AssetID:              v.AssetID,
			Value:                v.Value,
		})
	}
	return out
}
