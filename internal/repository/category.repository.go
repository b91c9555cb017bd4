package repository

import (
	"database/sql"
	"fmt"

	"portfoliotracker/internal/db/models/postgres/public/model"
	. "portfoliotracker/internal/db/models/postgres/public/table"
	"portfoliotracker/internal/domain"
)

type CategoryRepository interface {
	// List returns categories in configured display order.
	List() ([]domain.Category, error)
}

func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return categoryRepositoryHandler{Db: db}
}

type categoryRepositoryHandler struct {
	Db *sql.DB
}

func (h categoryRepositoryHandler) List() ([]domain.Category, error) {
	query := Category.
		SELECT(Category.AllColumns).
		ORDER_BY(Category.DisplayOrder.ASC(), Category.Name.ASC())

	result := []model.Category{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	out := []domain.Category{}
	for _, c := range result {
		out = append(out, domain.Category{
			CategoryID:    c.CategoryID,
			Name:          c.Name,
			TargetPercent: c.TargetPercent,
			DisplayOrder:  int(c.DisplayOrder),
		})
	}

	return out, nil
}
