// Package dataset carrega o dataset de fluxos populacionais a partir de arquivos ou do banco
package dataset

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
	"github.com/vfg2006/emerging-areas-api/pkg/utils"
)

var (
	ErrMissingColumn = errors.New("coluna obrigatória ausente")
	ErrMalformedRow  = errors.New("linha malformada")
	ErrEmptyHeader   = errors.New("fonte sem cabeçalho")
)

const (
	colLat           = "lat"
	colLon           = "lon"
	colAreaID        = "area_id"
	colInflow        = "inflow"
	colOutflow       = "outflow"
	colIncomeInflow  = "income_inflow"
	colIncomeOutflow = "income_outflow"
	colTotalNetFlow  = "total_net_flow"
	colIncomeDiff    = "income_diff"
)

// ParseOptions controla a interpretação das linhas brutas
type ParseOptions struct {
	DateColumn string
	MaxRows    int
	// UseIncomeDiffColumn aproveita a coluna income_diff quando ela existe na fonte
	UseIncomeDiffColumn bool
}

// table é a forma intermediária comum a todas as fontes
type table struct {
	header []string
	rows   [][]any
}

// NormalizeColumn deixa o nome da coluna em minúsculas, sem espaços nas bordas
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		normalized := NormalizeColumn(name)
		if _, exists := idx[normalized]; !exists {
			idx[normalized] = i
		}
	}
	return idx
}

func (c columnIndex) has(name string) bool {
	_, ok := c[name]
	return ok
}

// parseTable converte a tabela bruta em registros tipados. A primeira linha inválida
// interrompe o carregamento inteiro
func parseTable(t table, opts ParseOptions) ([]domain.Record, error) {
	if len(t.header) == 0 {
		return nil, ErrEmptyHeader
	}

	dateColumn := NormalizeColumn(opts.DateColumn)
	idx := indexColumns(t.header)

	useDiffColumn := opts.UseIncomeDiffColumn && idx.has(colIncomeDiff)

	required := []string{dateColumn, colLat, colLon, colAreaID, colInflow, colOutflow, colTotalNetFlow}
	if !useDiffColumn {
		required = append(required, colIncomeInflow, colIncomeOutflow)
	}
	for _, name := range required {
		if !idx.has(name) {
			return nil, errors.Wrapf(ErrMissingColumn, "%q", name)
		}
	}

	rows := t.rows
	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		rows = rows[:opts.MaxRows]
	}

	records := make([]domain.Record, 0, len(rows))
	for i, row := range rows {
		// +2: linhas começam em 1 e a primeira é o cabeçalho
		rowNumber := i + 2
		p := rowParser{row: row, idx: idx, rowNumber: rowNumber}

		record := domain.Record{
			ObservationDate: p.date(dateColumn),
			AreaID:          p.text(colAreaID),
			Lat:             p.number(colLat),
			Lon:             p.number(colLon),
			Inflow:          p.number(colInflow),
			Outflow:         p.number(colOutflow),
			TotalNetFlow:    p.number(colTotalNetFlow),
		}

		if idx.has(colIncomeInflow) && idx.has(colIncomeOutflow) {
			record.IncomeInflow = p.number(colIncomeInflow)
			record.IncomeOutflow = p.number(colIncomeOutflow)
		}

		if useDiffColumn {
			record.IncomeDiff = p.number(colIncomeDiff)
			record.HasIncomeDiff = true
		}

		if p.err != nil {
			return nil, p.err
		}

		records = append(records, record)
	}

	return records, nil
}

// rowParser acumula o primeiro erro encontrado em uma linha
type rowParser struct {
	row       []any
	idx       columnIndex
	rowNumber int
	err       error
}

func (p *rowParser) cell(column string) any {
	i := p.idx[column]
	if i >= len(p.row) {
		return nil
	}
	return p.row[i]
}

func (p *rowParser) fail(column string, cause error) {
	if p.err != nil {
		return
	}
	p.err = errors.Wrapf(ErrMalformedRow, "linha %d, coluna %q: %v", p.rowNumber, column, cause)
}

func (p *rowParser) text(column string) string {
	value := p.cell(column)
	if b, ok := value.([]byte); ok {
		value = string(b)
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		p.fail(column, err)
		return ""
	}

	s = strings.TrimSpace(s)
	if s == "" || s == "NaN" {
		p.fail(column, errors.New("valor vazio"))
		return ""
	}
	return s
}

func (p *rowParser) number(column string) float64 {
	value := p.cell(column)
	switch v := value.(type) {
	case nil:
		p.fail(column, errors.New("valor vazio"))
		return 0
	case []byte:
		value = strings.TrimSpace(string(v))
	case string:
		value = strings.TrimSpace(v)
	}

	f, err := cast.ToFloat64E(value)
	if err != nil {
		p.fail(column, err)
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		p.fail(column, errors.Errorf("valor não numérico: %v", value))
		return 0
	}
	return f
}

func (p *rowParser) date(column string) time.Time {
	switch v := p.cell(column).(type) {
	case time.Time:
		return utils.TruncateDay(v)
	case []byte:
		return p.parseDate(column, string(v))
	case string:
		return p.parseDate(column, v)
	case nil:
		p.fail(column, errors.New("data vazia"))
	default:
		p.fail(column, errors.Errorf("tipo de data não suportado: %T", v))
	}
	return time.Time{}
}

func (p *rowParser) parseDate(column, value string) time.Time {
	parsed, err := utils.ParseDay(value)
	if err != nil {
		p.fail(column, err)
		return time.Time{}
	}
	return parsed
}
