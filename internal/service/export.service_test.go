package service

import (
	"bytes"
	"strings"
	"testing"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_ExportComposite(t *testing.T) {
	t.Run("exports carried-forward and direct rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, dashboardService := newDashboardMocks(ctrl)

		assetX := domain.Asset{AssetID: uuid.New(), Name: "AssetX", Platform: "PlatformA", Currency: "USD"}
		assetY := domain.Asset{AssetID: uuid.New(), Name: "AssetY", Platform: "PlatformB", Currency: "EUR"}
		s1 := domain.Snapshot{SnapshotID: uuid.New(), Date: util.NewDate(2025, 1, 1)}
		s2 := domain.Snapshot{SnapshotID: uuid.New(), Date: util.NewDate(2025, 2, 1)}

		m.snapshots.EXPECT().Get(s2.SnapshotID).Return(&s2, nil)
		m.expectHistory(
			[]domain.Snapshot{s1, s2},
			[]domain.Asset{assetX, assetY},
			[]domain.SnapshotAssetValue{
				{SnapshotAssetValueID: uuid.New(), SnapshotID: s1.SnapshotID, AssetID: assetX.AssetID, Value: decimal.NewFromFloat(100.50)},
				{SnapshotAssetValueID: uuid.New(), SnapshotID: s2.SnapshotID, AssetID: assetY.AssetID, Value: decimal.NewFromInt(50)},
			},
			nil, nil, nil,
			"USD",
		)

		exportService := NewExportService(m.snapshots, dashboardService)

		var buf bytes.Buffer
		err := exportService.ExportComposite(&buf, s2.SnapshotID)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		require.Equal(t, "date,asset,platform,currency,value,carried_from", lines[0])
		require.Equal(t, "2025-02-01,AssetX,PlatformA,USD,100.5,2025-01-01", lines[1])
		require.Equal(t, "2025-02-01,AssetY,PlatformB,EUR,50,", lines[2])
	})
}
