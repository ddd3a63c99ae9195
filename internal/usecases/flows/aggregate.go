package flows

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

const DefaultTopN = 10

type areaAccumulator struct {
	aggregate    domain.AreaAggregate
	incomeDiff   decimal.Decimal
	totalNetFlow decimal.Decimal
	inflow       decimal.Decimal
	outflow      decimal.Decimal
}

// AggregateByArea agrupa os registros por área, na ordem em que cada área aparece.
// Latitude e longitude vêm do primeiro registro do grupo. As somas são decimais, o que
// torna o resultado independente da ordem das linhas
func AggregateByArea(records []domain.Record) []domain.AreaAggregate {
	order := make([]string, 0)
	groups := make(map[string]*areaAccumulator)

	for _, record := range records {
		acc, exists := groups[record.AreaID]
		if !exists {
			acc = &areaAccumulator{
				aggregate: domain.AreaAggregate{
					AreaID: record.AreaID,
					Lat:    record.Lat,
					Lon:    record.Lon,
				},
			}
			groups[record.AreaID] = acc
			order = append(order, record.AreaID)
		}

		acc.incomeDiff = acc.incomeDiff.Add(decimal.NewFromFloat(record.IncomeDiff))
		acc.totalNetFlow = acc.totalNetFlow.Add(decimal.NewFromFloat(record.TotalNetFlow))
		acc.inflow = acc.inflow.Add(decimal.NewFromFloat(record.Inflow))
		acc.outflow = acc.outflow.Add(decimal.NewFromFloat(record.Outflow))
	}

	aggregates := make([]domain.AreaAggregate, 0, len(order))
	for _, areaID := range order {
		acc := groups[areaID]
		agg := acc.aggregate
		agg.IncomeDiff = acc.incomeDiff.InexactFloat64()
		agg.TotalNetFlow = acc.totalNetFlow.InexactFloat64()
		agg.Inflow = acc.inflow.InexactFloat64()
		agg.Outflow = acc.outflow.InexactFloat64()
		aggregates = append(aggregates, agg)
	}

	return aggregates
}

// SortByIncomeDiff ordena uma cópia das áreas de forma decrescente por income_diff.
// Empates mantêm a ordem de entrada
func SortByIncomeDiff(aggregates []domain.AreaAggregate) []domain.AreaAggregate {
	sorted := make([]domain.AreaAggregate, len(aggregates))
	copy(sorted, aggregates)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].IncomeDiff > sorted[j].IncomeDiff
	})
	return sorted
}

// Rank monta as listas das n melhores e n piores áreas. Com menos de n áreas as
// listas trazem tudo o que existe e podem se sobrepor
func Rank(aggregates []domain.AreaAggregate, n int) domain.Leaderboard {
	if n <= 0 {
		n = DefaultTopN
	}

	sorted := SortByIncomeDiff(aggregates)

	ranked := make([]domain.RankedArea, len(sorted))
	for i, agg := range sorted {
		ranked[i] = domain.RankedArea{
			Position:          i + 1,
			AreaID:            agg.AreaID,
			IncomeDiff:        agg.IncomeDiff,
			IncomeDiffDisplay: DisplayInt32(agg.IncomeDiff),
			TotalNetFlow:      agg.TotalNetFlow,
		}
	}

	size := min(n, len(ranked))

	return domain.Leaderboard{
		Top:        ranked[:size],
		Bottom:     ranked[len(ranked)-size:],
		TotalAreas: len(ranked),
	}
}

// DisplayInt32 converte a soma já calculada para exibição: trunca em direção a zero e
// limita à faixa de int32
func DisplayInt32(value float64) int32 {
	switch {
	case math.IsNaN(value):
		return 0
	case value >= math.MaxInt32:
		return math.MaxInt32
	case value <= math.MinInt32:
		return math.MinInt32
	}
	return int32(math.Trunc(value))
}
