package flows

import "github.com/vfg2006/emerging-areas-api/internal/domain"

// Máximos de cada canal de cor
const (
	RedMax   = 255.0
	GreenMax = 10.0
	BlueMax  = 110.0
)

// ApplySignPolicy escolhe qual lado do espectro vai para o mapa. Com showNegative os
// valores são invertidos antes do filtro, então as áreas negativas passam a aparecer.
// Em ambos os casos só ficam valores estritamente positivos
func ApplySignPolicy(aggregates []domain.AreaAggregate, showNegative bool) []domain.AreaAggregate {
	visible := make([]domain.AreaAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		if showNegative {
			agg.IncomeDiff = -agg.IncomeDiff
		}
		if agg.IncomeDiff > 0 {
			visible = append(visible, agg)
		}
	}
	return visible
}

// EncodeColors escala cada canal linearmente contra o maior income_diff do lote.
// Lote vazio ou sem valor positivo resulta em camada vazia, sem divisão
func EncodeColors(aggregates []domain.AreaAggregate) domain.MapLayer {
	batchMax := 0.0
	for _, agg := range aggregates {
		if agg.IncomeDiff > batchMax {
			batchMax = agg.IncomeDiff
		}
	}

	if batchMax <= 0 {
		return domain.MapLayer{Areas: []domain.MapArea{}, Empty: true}
	}

	areas := make([]domain.MapArea, 0, len(aggregates))
	for _, agg := range aggregates {
		if agg.IncomeDiff <= 0 {
			continue
		}

		areas = append(areas, domain.MapArea{
			AreaID:    agg.AreaID,
			Lat:       agg.Lat,
			Lon:       agg.Lon,
			Elevation: agg.IncomeDiff,
			Color: domain.RGB{
				R: RedMax / batchMax * agg.IncomeDiff,
				G: GreenMax / batchMax * agg.IncomeDiff,
				B: BlueMax / batchMax * agg.IncomeDiff,
			},
		})
	}

	return domain.MapLayer{Areas: areas, MaxValue: batchMax}
}

// BuildMapLayer aplica a política de sinal e codifica as cores
func BuildMapLayer(aggregates []domain.AreaAggregate, showNegative bool) domain.MapLayer {
	return EncodeColors(ApplySignPolicy(aggregates, showNegative))
}
