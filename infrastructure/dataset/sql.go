package dataset

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/vfg2006/emerging-areas-api/infrastructure/database"
	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

// SQLLoader lê o dataset de uma tabela. Apenas leitura: o serviço nunca escreve no banco
type SQLLoader struct {
	conn   database.Queryer
	driver string
	table  string
	opts   ParseOptions
}

func NewSQLLoader(conn database.Queryer, driver, table string, opts ParseOptions) *SQLLoader {
	return &SQLLoader{conn: conn, driver: driver, table: table, opts: opts}
}

func (l *SQLLoader) Source() string {
	return l.driver + ":" + l.table
}

// placeholderFor devolve o formato de parâmetros do driver: $1 no postgres, ? no sqlite
func placeholderFor(driver string) squirrel.PlaceholderFormat {
	if driver == database.DriverSQLite {
		return squirrel.Question
	}
	return squirrel.Dollar
}

func (l *SQLLoader) query() (string, []any, error) {
	if !database.ValidIdentifier(l.table) {
		return "", nil, errors.Errorf("nome de tabela inválido: %q", l.table)
	}
	if !database.ValidIdentifier(NormalizeColumn(l.opts.DateColumn)) {
		return "", nil, errors.Errorf("nome de coluna inválido: %q", l.opts.DateColumn)
	}

	builder := squirrel.
		Select("*").
		From(l.table).
		OrderBy(NormalizeColumn(l.opts.DateColumn)).
		PlaceholderFormat(placeholderFor(l.driver))

	if l.opts.MaxRows > 0 {
		builder = builder.Limit(uint64(l.opts.MaxRows))
	}

	return builder.ToSql()
}

func (l *SQLLoader) Load(ctx context.Context) ([]domain.Record, error) {
	sqlQuery, args, err := l.query()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := l.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao executar a query na tabela %s", l.table)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao obter colunas")
	}

	t := table{header: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear linha")
		}
		t.rows = append(t.rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	records, err := parseTable(t, l.opts)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar tabela %s", l.table)
	}
	return records, nil
}
