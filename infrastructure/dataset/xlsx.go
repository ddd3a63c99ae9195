package dataset

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

// XLSXLoader lê o dataset de uma planilha Excel
type XLSXLoader struct {
	path  string
	sheet string
	opts  ParseOptions
}

func NewXLSXLoader(path, sheet string, opts ParseOptions) *XLSXLoader {
	return &XLSXLoader{path: path, sheet: sheet, opts: opts}
}

func (l *XLSXLoader) Source() string {
	return "xlsx:" + l.path
}

func (l *XLSXLoader) Load(ctx context.Context) ([]domain.Record, error) {
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir planilha %s", l.path)
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Errorf("planilha %s não possui abas", l.path)
		}
		sheet = sheets[0]
	}

	// Valores crus: datas chegam como número de série do Excel em vez do texto formatado
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler aba %q de %s", sheet, l.path)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, ErrEmptyHeader
	}

	header := raw[0]
	dateIdx, dateKnown := indexColumns(header)[NormalizeColumn(l.opts.DateColumn)]

	t := table{header: header, rows: make([][]any, 0, len(raw)-1)}
	for _, line := range raw[1:] {
		if isBlankRow(line) {
			continue
		}

		// GetRows corta as células vazias do fim da linha
		row := make([]any, len(header))
		for i := range row {
			if i < len(line) {
				row[i] = line[i]
			}
		}

		if dateKnown && dateIdx < len(line) {
			if serial, err := cast.ToFloat64E(line[dateIdx]); err == nil {
				if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
					row[dateIdx] = parsed
				}
			}
		}

		t.rows = append(t.rows, row)
	}

	records, err := parseTable(t, l.opts)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar planilha %s", l.path)
	}
	return records, nil
}

func isBlankRow(line []string) bool {
	for _, cell := range line {
		if cell != "" {
			return false
		}
	}
	return true
}
