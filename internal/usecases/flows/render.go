package flows

import (
	"fmt"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

// NormalizeParams preenche o estilo de camada padrão e valida os controles
func NormalizeParams(params domain.RenderParams) (domain.RenderParams, error) {
	if params.LayerStyle == "" {
		params.LayerStyle = domain.LayerStyleColumn
	}

	if err := ValidateMonth(params.Month); err != nil {
		return params, err
	}

	if !params.LayerStyle.Valid() {
		return params, fmt.Errorf("%w: %q", ErrInvalidLayerStyle, params.LayerStyle)
	}

	return params, nil
}

// Render executa o pipeline completo sobre os registros já derivados. É uma função pura:
// os registros de entrada não são alterados e tudo é recalculado a cada chamada
func Render(records []domain.Record, params domain.RenderParams, opts domain.RenderOptions) (*domain.DashboardViews, error) {
	params, err := NormalizeParams(params)
	if err != nil {
		return nil, err
	}

	from, to := MonthBounds(opts.Year, params.Month)

	// Mapa: política configurável
	mapRecords, err := FilterByMonth(records, opts.Year, params.Month, opts.MapFilterMode)
	if err != nil {
		return nil, err
	}
	layer := BuildMapLayer(AggregateByArea(mapRecords), params.ShowNegative)

	// Ranking e séries: sempre acumulado até o mês seguinte
	cumulative, err := FilterByMonth(records, opts.Year, params.Month, domain.FilterModeCumulative)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardViews{
		Params:      params,
		Period:      domain.Period{From: from, To: to},
		Map:         layer,
		View:        BuildViewState(layer, params.LayerStyle, opts),
		Leaderboard: Rank(AggregateByArea(cumulative), opts.TopN),
		TimeSeries:  BuildTimeSeries(cumulative),
	}, nil
}
