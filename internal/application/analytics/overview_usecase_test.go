package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sectorflow-api/internal/application/analytics"
	"github.com/jhoicas/sectorflow-api/internal/domain/entity"
	"github.com/jhoicas/sectorflow-api/internal/infrastructure/sample"
)

var fixedNow = func() time.Time { return time.Date(2024, time.March, 4, 15, 0, 0, 0, time.UTC) }

func newUseCase() *analytics.OverviewUseCase {
	c := sample.NewCatalog()
	return analytics.NewOverviewUseCase(c, c, fixedNow)
}

func TestGetOverview_Retail(t *testing.T) {
	out, err := newUseCase().GetOverview(context.Background(), entity.SectorRetail)
	require.NoError(t, err)

	assert.True(t, out.Available)
	assert.Equal(t, "Retail Dashboard", out.Title)
	assert.Equal(t, "Monday, March 4, 2024", out.DateLabel)
	assert.Equal(t, "#2ecc71", out.Accent)

	stats := make(map[string]string, len(out.Stats))
	for _, s := range out.Stats {
		stats[s.Label] = s.Value
	}
	assert.Equal(t, map[string]string{
		"Total Products":  "1,245",
		"Today's Sales":   "RWF 456,000",
		"Customers":       "89",
		"Low Stock Items": "12",
	}, stats)

	assert.Len(t, out.TopSellers, 5)
	assert.Equal(t, "Smartphone X", out.TopSellers[0].Name)
	require.NotNil(t, out.Sales)
	assert.Equal(t, analytics.RangeWeek, out.Sales.Range)
	assert.Len(t, out.Sales.Values, 7)
	assert.NotEmpty(t, out.CategoryShare)
	assert.NotEmpty(t, out.InventoryStatus)
	assert.Len(t, out.Activities, 4)
	assert.Empty(t, out.Projects)
}

func TestGetOverview_Construction(t *testing.T) {
	out, err := newUseCase().GetOverview(context.Background(), entity.SectorConstruction)
	require.NoError(t, err)

	assert.True(t, out.Available)
	assert.Equal(t, "Construction Dashboard", out.Title)
	require.Len(t, out.Stats, 4)
	assert.Equal(t, "Active Projects", out.Stats[0].Label)
	assert.Equal(t, "4", out.Stats[0].Value)
	assert.Equal(t, "RWF 12,500,000", out.Stats[1].Value)

	assert.Len(t, out.Projects, 4)
	assert.Equal(t, "2023-03-15", out.Projects[0].StartDate)
	require.Len(t, out.Materials, 5)
	assert.Equal(t, "Out of Stock", out.Materials[4].StatusLabel)
	assert.Nil(t, out.Sales)
}

func TestGetOverview_SectorSinDashboard(t *testing.T) {
	for _, s := range []entity.Sector{entity.SectorRestaurant, entity.SectorPharmacy, entity.SectorHotel, entity.SectorAgribusiness} {
		out, err := newUseCase().GetOverview(context.Background(), s)
		require.NoError(t, err)
		assert.False(t, out.Available, s)
		assert.Equal(t, s.ShortName()+" Dashboard", out.Title)
		assert.Empty(t, out.Stats)
	}
}

func TestGetOverview_SectorInvalido(t *testing.T) {
	_, err := newUseCase().GetOverview(context.Background(), entity.SectorNone)
	assert.Error(t, err)
}

func TestSalesSeries_Rangos(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	cases := map[string]int{"week": 7, "month": 30, "year": 12, "decade": 7, "": 7}
	for r, n := range cases {
		s, err := uc.SalesSeries(ctx, entity.SectorRetail, r)
		require.NoError(t, err)
		assert.Len(t, s.Values, n, "rango %q", r)
		assert.Len(t, s.Labels, n)
	}

	a, _ := uc.SalesSeries(ctx, entity.SectorRetail, "month")
	b, _ := uc.SalesSeries(ctx, entity.SectorRetail, "month")
	assert.Equal(t, a, b, "la serie mensual es determinista")
}

func TestGetOverview_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newUseCase().GetOverview(ctx, entity.SectorRetail)
	assert.True(t, errors.Is(err, context.Canceled))
}
