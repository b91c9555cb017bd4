package repository

import (
	"database/sql"
	"fmt"

	"portfoliotracker/internal/db/models/postgres/public/model"
	. "portfoliotracker/internal/db/models/postgres/public/table"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type SnapshotRepository interface {
	Get(id uuid.UUID) (*domain.Snapshot, error)
	// List returns all snapshots sorted ascending by date. The date
	// column has a unique constraint, so the order is total.
	List() ([]domain.Snapshot, error)
}

func NewSnapshotRepository(db *sql.DB) SnapshotRepository {
	return snapshotRepositoryHandler{Db: db}
}

type snapshotRepositoryHandler struct {
	Db *sql.DB
}

func (h snapshotRepositoryHandler) Get(id uuid.UUID) (*domain.Snapshot, error) {
	query := Snapshot.
		SELECT(Snapshot.AllColumns).
		WHERE(Snapshot.SnapshotID.EQ(String(id.String())))

	result := model.Snapshot{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot %s: %w", id, err)
	}

	out := snapshotFromModel(result)
	return &out, nil
}

func (h snapshotRepositoryHandler) List() ([]domain.Snapshot, error) {
	query := Snapshot.
		SELECT(Snapshot.AllColumns).
		ORDER_BY(Snapshot.Date.ASC())

	result := []model.Snapshot{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	out := []domain.Snapshot{}
	for _, s := range result {
		out = append(out, snapshotFromModel(s))
	}

	return out, nil
}

func snapshotFromModel(s model.Snapshot) domain.Snapshot {
	return domain.Snapshot{
		SnapshotID: s.SnapshotID,
		Date:       util.StripTime(s.Date),
		CreatedAt:  s.CreatedAt,
	}
}
