package flows

import "github.com/vfg2006/emerging-areas-api/internal/domain"

// IncomeDiff calcula o diferencial de renda de um registro:
// income_inflow * inflow - income_outflow * outflow
func IncomeDiff(r domain.Record) float64 {
	return r.IncomeInflow*r.Inflow - r.IncomeOutflow*r.Outflow
}

// Derive devolve uma cópia dos registros com IncomeDiff preenchido. Registros cujo valor
// veio pronto da fonte são mantidos como estão
func Derive(records []domain.Record) []domain.Record {
	derived := make([]domain.Record, len(records))
	for i, record := range records {
		if !record.HasIncomeDiff {
			record.IncomeDiff = IncomeDiff(record)
		}
		derived[i] = record
	}
	return derived
}
