package repository

import (
	"database/sql"
	"fmt"

	"portfoliotracker/internal/db/models/postgres/public/model"
	. "portfoliotracker/internal/db/models/postgres/public/table"
	"portfoliotracker/internal/domain"
)

type CashFlowRepository interface {
	List() ([]domain.CashFlowOperation, error)
}

func NewCashFlowRepository(db *sql.DB) CashFlowRepository {
	return cashFlowRepositoryHandler{Db: db}
}

type cashFlowRepositoryHandler struct {
	Db *sql.DB
}

func (h cashFlowRepositoryHandler) List() ([]domain.CashFlowOperation, error) {
	query := CashFlowOperation.
		SELECT(CashFlowOperation.AllColumns)

	result := []model.CashFlowOperation{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash flow operations: %w", err)
	}

	out := []domain.CashFlowOperation{}
	for _, op := range result {
		out = append(out, domain.CashFlowOperation{
			CashFlowOperationID: op.CashFlowOperationID,
			SnapshotID:          op.SnapshotID,
			Description:         op.Description,
			Amount:              op.Amount,
			Currency:            op.Currency,
		})
	}

	return out, nil
}
