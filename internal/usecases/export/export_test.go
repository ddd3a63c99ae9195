package export

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

func sampleViews() *domain.DashboardViews {
	jan := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2019, 2, 1, 0, 0, 0, 0, time.UTC)

	return &domain.DashboardViews{
		Period: domain.Period{From: jan, To: feb},
		Map: domain.MapLayer{
			Areas: []domain.MapArea{
				{AreaID: "100", Lat: 25.77, Lon: -80.19, Elevation: 53, Color: domain.RGB{R: 255, G: 10, B: 110}},
			},
			MaxValue: 53,
		},
		TimeSeries: domain.TimeSeries{
			Flows:   []domain.FlowPoint{{Date: jan, Inflow: 10, Outflow: 2}, {Date: feb, Inflow: 3, Outflow: 1}},
			NetFlow: []domain.NetFlowPoint{{Date: jan, TotalNetFlow: 25}, {Date: feb, TotalNetFlow: 5}},
		},
	}
}

func TestMapGeoJSON(t *testing.T) {
	raw, err := MapGeoJSON(sampleViews())
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	feature := fc.Features[0]
	assert.True(t, feature.Geometry.IsPoint())
	assert.Equal(t, []float64{-80.19, 25.77}, feature.Geometry.Point)
	assert.Equal(t, "100", feature.PropertyMustString("area_id"))
	assert.Equal(t, 53.0, feature.PropertyMustFloat64("income_diff"))
}

func TestMapGeoJSON_EmptyLayer(t *testing.T) {
	views := sampleViews()
	views.Map = domain.MapLayer{Areas: []domain.MapArea{}, Empty: true}

	fc := MapFeatureCollection(views)
	assert.Empty(t, fc.Features)
}

func TestCharts(t *testing.T) {
	tests := []struct {
		name   string
		views  func() *domain.DashboardViews
		render func(buf *bytes.Buffer, views *domain.DashboardViews) error
	}{
		{
			name:   "Entrada e saída",
			views:  sampleViews,
			render: func(buf *bytes.Buffer, views *domain.DashboardViews) error { return FlowsChart(buf, views) },
		},
		{
			name:   "Fluxo líquido",
			views:  sampleViews,
			render: func(buf *bytes.Buffer, views *domain.DashboardViews) error { return NetFlowChart(buf, views) },
		},
		{
			name: "Série com um único ponto",
			views: func() *domain.DashboardViews {
				views := sampleViews()
				views.TimeSeries.NetFlow = views.TimeSeries.NetFlow[:1]
				return views
			},
			render: func(buf *bytes.Buffer, views *domain.DashboardViews) error { return NetFlowChart(buf, views) },
		},
		{
			name: "Série vazia",
			views: func() *domain.DashboardViews {
				views := sampleViews()
				views.TimeSeries = domain.TimeSeries{}
				return views
			},
			render: func(buf *bytes.Buffer, views *domain.DashboardViews) error { return FlowsChart(buf, views) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.render(&buf, tt.views()))

			img, err := png.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, chartWidth, img.Bounds().Dx())
			assert.Equal(t, chartHeight, img.Bounds().Dy())
		})
	}
}
