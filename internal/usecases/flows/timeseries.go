package flows

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

type bucketAccumulator struct {
	date         time.Time
	inflow       decimal.Decimal
	outflow      decimal.Decimal
	totalNetFlow decimal.Decimal
}

// BucketByDate soma os fluxos de todas as áreas por data, da mais recente para a mais antiga
func BucketByDate(records []domain.Record) []domain.DateBucket {
	groups := make(map[int64]*bucketAccumulator)
	for _, record := range records {
		key := record.ObservationDate.Unix()
		acc, exists := groups[key]
		if !exists {
			acc = &bucketAccumulator{date: record.ObservationDate}
			groups[key] = acc
		}
		acc.inflow = acc.inflow.Add(decimal.NewFromFloat(record.Inflow))
		acc.outflow = acc.outflow.Add(decimal.NewFromFloat(record.Outflow))
		acc.totalNetFlow = acc.totalNetFlow.Add(decimal.NewFromFloat(record.TotalNetFlow))
	}

	buckets := make([]domain.DateBucket, 0, len(groups))
	for _, acc := range groups {
		buckets = append(buckets, domain.DateBucket{
			Date:         acc.date,
			Inflow:       acc.inflow.InexactFloat64(),
			Outflow:      acc.outflow.InexactFloat64(),
			TotalNetFlow: acc.totalNetFlow.InexactFloat64(),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.After(buckets[j].Date)
	})
	return buckets
}

// FlowSeries devolve entrada e saída por data em ordem cronológica.
// buckets deve estar em ordem decrescente, como sai de BucketByDate
func FlowSeries(buckets []domain.DateBucket) []domain.FlowPoint {
	points := make([]domain.FlowPoint, len(buckets))
	for i, bucket := range buckets {
		points[len(buckets)-1-i] = domain.FlowPoint{
			Date:    bucket.Date,
			Inflow:  bucket.Inflow,
			Outflow: bucket.Outflow,
		}
	}
	return points
}

// CumulativeNetFlow acumula total_net_flow percorrendo as datas da mais recente para a
// mais antiga. O valor em cada data d é a soma de todas as datas >= d (soma de sufixo).
// O resultado é devolvido em ordem cronológica
func CumulativeNetFlow(buckets []domain.DateBucket) []domain.NetFlowPoint {
	points := make([]domain.NetFlowPoint, len(buckets))

	running := decimal.Zero
	for i, bucket := range buckets {
		running = running.Add(decimal.NewFromFloat(bucket.TotalNetFlow))
		points[len(buckets)-1-i] = domain.NetFlowPoint{
			Date:         bucket.Date,
			TotalNetFlow: running.InexactFloat64(),
		}
	}
	return points
}

// BuildTimeSeries monta as duas séries a partir dos registros já filtrados
func BuildTimeSeries(records []domain.Record) domain.TimeSeries {
	buckets := BucketByDate(records)
	return domain.TimeSeries{
		Flows:   FlowSeries(buckets),
		NetFlow: CumulativeNetFlow(buckets),
	}
}
