package dataset

import (
	"context"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

// CSVLoader lê o dataset de um arquivo CSV
type CSVLoader struct {
	path string
	opts ParseOptions
}

func NewCSVLoader(path string, opts ParseOptions) *CSVLoader {
	return &CSVLoader{path: path, opts: opts}
}

func (l *CSVLoader) Source() string {
	return "csv:" + l.path
}

func (l *CSVLoader) Load(ctx context.Context) ([]domain.Record, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir arquivo %s", l.path)
	}
	defer f.Close()

	// Todas as colunas como texto: a conversão de tipos é feita por parseTable. O
	// cabeçalho é lido como linha comum para que um arquivo só com cabeçalho carregue
	// zero registros, como uma planilha ou tabela vazia
	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, errors.Wrapf(df.Err, "erro ao ler CSV %s", l.path)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Records devolve os nomes gerados (X0, X1...) na primeira linha
	raw := df.Records()
	if len(raw) < 2 {
		return nil, ErrEmptyHeader
	}
	raw = raw[1:]

	t := table{header: raw[0], rows: make([][]any, 0, len(raw)-1)}
	for _, line := range raw[1:] {
		row := make([]any, len(line))
		for i, v := range line {
			row[i] = v
		}
		t.rows = append(t.rows, row)
	}

	records, err := parseTable(t, l.opts)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar CSV %s", l.path)
	}
	return records, nil
}
