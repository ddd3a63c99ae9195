package flows

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

// Parâmetros fixos da camada de colunas
const (
	ColumnRadius      = 1000.0
	ElevationScale    = 0.0003
	ElevationRangeMin = 0.0
	ElevationRangeMax = 1000.0
)

// BuildViewState monta o estado da câmera. O estilo de camada não altera nenhum valor
// numérico, só é repassado ao renderizador
func BuildViewState(layer domain.MapLayer, style domain.LayerStyle, opts domain.RenderOptions) domain.MapViewState {
	center := opts.MapCenter
	if opts.AutoCenter {
		if centroid, ok := Centroid(layer.Areas); ok {
			center = centroid
		}
	}

	return domain.MapViewState{
		Center:         center,
		Zoom:           opts.MapZoom,
		Pitch:          opts.MapPitch,
		LayerStyle:     style,
		Radius:         ColumnRadius,
		ElevationScale: ElevationScale,
		ElevationRange: [2]float64{ElevationRangeMin, ElevationRangeMax},
		Extruded:       true,
	}
}

// Centroid calcula o centro das áreas na esfera: soma os vetores unitários e normaliza
func Centroid(areas []domain.MapArea) (domain.LatLon, bool) {
	if len(areas) == 0 {
		return domain.LatLon{}, false
	}

	var sum r3.Vector
	for _, area := range areas {
		p := s2.PointFromLatLng(s2.LatLngFromDegrees(area.Lat, area.Lon))
		sum = sum.Add(p.Vector)
	}

	// Pontos antipodais se anulam
	if sum.Norm() == 0 {
		return domain.LatLon{}, false
	}

	center := s2.LatLngFromPoint(s2.Point{Vector: sum.Normalize()})
	return domain.LatLon{Lat: center.Lat.Degrees(), Lon: center.Lng.Degrees()}, true
}
