package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"portfoliotracker/internal/app"
	"portfoliotracker/internal/domain"
	mock_repository "portfoliotracker/internal/repository/mocks"
	"portfoliotracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticDashboardService struct {
	dashboard *domain.Dashboard
}

func (s staticDashboardService) BuildDashboard() (*domain.Dashboard, error) {
	return s.dashboard, nil
}

func (s staticDashboardService) CompositeSnapshot(snapshotID uuid.UUID) ([]domain.CompositeAssetValue, error) {
	return nil, nil
}

func Test_rebalance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("proposes moves from overweight to underweight categories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		category1 := domain.Category{CategoryID: uuid.New(), Name: "category1", TargetPercent: util.DecimalPointer(decimal.NewFromInt(60))}
		category2 := domain.Category{CategoryID: uuid.New(), Name: "category2", TargetPercent: util.DecimalPointer(decimal.NewFromInt(40))}

		categoryRepository := mock_repository.NewMockCategoryRepository(ctrl)
		categoryRepository.EXPECT().List().Return([]domain.Category{category1, category2}, nil)

		dashboardHandler := app.NewDashboardHandler(staticDashboardService{&domain.Dashboard{
			DisplayCurrency: "USD",
			TotalValue:      decimal.NewFromInt(1000),
			Allocation: []domain.CategorySlice{
				{CategoryID: &category1.CategoryID, Name: "category1", Value: decimal.NewFromInt(800)},
				{CategoryID: &category2.CategoryID, Name: "category2", Value: decimal.NewFromInt(200)},
			},
		}})
		require.NoError(t, dashboardHandler.Reload(context.Background()))

		handler := ApiHandler{
			DashboardHandler:   dashboardHandler,
			CategoryRepository: categoryRepository,
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/rebalance", nil)

		handler.rebalance(c)
		require.Equal(t, 200, w.Code)

		resp := rebalanceResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		require.Len(t, resp.Actions, 2)
		require.Equal(t, "category1", resp.Actions[0].Category)
		require.Equal(t, "sell", resp.Actions[0].Action)
		require.True(t, resp.Actions[0].Adjustment.Equal(decimal.NewFromInt(-200)))
		require.Equal(t, "category2", resp.Actions[1].Category)
		require.Equal(t, "buy", resp.Actions[1].Action)

		diff := cmp.Diff([]string{"Move $200.00 from category1 to category2"}, resp.Suggestions)
		require.Empty(t, diff)
	})

	t.Run("503 before the first reload completes", func(t *testing.T) {
		handler := ApiHandler{
			DashboardHandler: app.NewDashboardHandler(staticDashboardService{nil}),
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/rebalance", nil)

		handler.rebalance(c)
		require.Equal(t, 503, w.Code)
	})
}
