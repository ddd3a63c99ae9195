// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Record representa uma linha do dataset de fluxos populacionais
type Record struct {
	ObservationDate time.Time `json:"observation_date"`
	AreaID          string    `json:"area_id"`
	Lat             float64   `json:"lat"`
	Lon             float64   `json:"lon"`
	Inflow          float64   `json:"inflow"`
	Outflow         float64   `json:"outflow"`
	IncomeInflow    float64   `json:"income_inflow"`
	IncomeOutflow   float64   `json:"income_outflow"`
	TotalNetFlow    float64   `json:"total_net_flow"`

	// IncomeDiff é preenchido pelo derivador logo após o carregamento
	IncomeDiff float64 `json:"income_diff"`
	// HasIncomeDiff indica que o valor veio de uma coluna já presente na fonte
	HasIncomeDiff bool `json:"-"`
}

// Snapshot é o dataset carregado, compartilhado em modo somente leitura entre as requisições
type Snapshot struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	LoadedAt  time.Time `json:"loaded_at"`
	Records   []Record  `json:"-"`
	RowCount  int       `json:"row_count"`
	AreaCount int       `json:"area_count"`
	FirstDate time.Time `json:"first_date"`
	LastDate  time.Time `json:"last_date"`
}

// NewSnapshot calcula os metadados do snapshot a partir dos registros
func NewSnapshot(id, source string, loadedAt time.Time, records []Record) *Snapshot {
	snapshot := &Snapshot{
		ID:       id,
		Source:   source,
		LoadedAt: loadedAt,
		Records:  records,
		RowCount: len(records),
	}

	areas := make(map[string]struct{})
	for i, record := range records {
		areas[record.AreaID] = struct{}{}
		if i == 0 || record.ObservationDate.Before(snapshot.FirstDate) {
			snapshot.FirstDate = record.ObservationDate
		}
		if i == 0 || record.ObservationDate.After(snapshot.LastDate) {
			snapshot.LastDate = record.ObservationDate
		}
	}
	snapshot.AreaCount = len(areas)

	return snapshot
}
