// Package export converte as visualizações em formatos consumidos por ferramentas externas
package export

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

// MapFeatureCollection converte a camada do mapa em pontos GeoJSON (coordenadas lon, lat)
func MapFeatureCollection(views *domain.DashboardViews) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, area := range views.Map.Areas {
		feature := geojson.NewPointFeature([]float64{area.Lon, area.Lat})
		feature.ID = area.AreaID
		feature.SetProperty("area_id", area.AreaID)
		feature.SetProperty("income_diff", area.Elevation)
		feature.SetProperty("color", []float64{area.Color.R, area.Color.G, area.Color.B})
		fc.AddFeature(feature)
	}

	return fc
}

// MapGeoJSON serializa a camada do mapa
func MapGeoJSON(views *domain.DashboardViews) ([]byte, error) {
	return MapFeatureCollection(views).MarshalJSON()
}
