// Package migration prepara a tabela usada pela fonte database e a popula a partir de um arquivo
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/emerging-areas-api/infrastructure/database"
	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

const progressEvery = 1000

// Seeder cria a tabela do dataset e insere os registros em uma única transação
type Seeder struct {
	db         *sql.DB
	driver     string
	table      string
	dateColumn string
}

func NewSeeder(db *sql.DB, driver, table, dateColumn string) (*Seeder, error) {
	if !database.ValidIdentifier(table) {
		return nil, errors.Errorf("nome de tabela inválido: %q", table)
	}
	if !database.ValidIdentifier(dateColumn) {
		return nil, errors.Errorf("nome de coluna inválido: %q", dateColumn)
	}
	return &Seeder{db: db, driver: driver, table: table, dateColumn: dateColumn}, nil
}

func (s *Seeder) placeholder() squirrel.PlaceholderFormat {
	if s.driver == database.DriverSQLite {
		return squirrel.Question
	}
	return squirrel.Dollar
}

// CreateTable cria a tabela se ela ainda não existir
func (s *Seeder) CreateTable(ctx context.Context) error {
	dateType := "DATE"
	if s.driver == database.DriverSQLite {
		dateType = "TEXT"
	}

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		%s %s NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		area_id TEXT NOT NULL,
		inflow DOUBLE PRECISION NOT NULL,
		outflow DOUBLE PRECISION NOT NULL,
		income_inflow DOUBLE PRECISION NOT NULL,
		income_outflow DOUBLE PRECISION NOT NULL,
		total_net_flow DOUBLE PRECISION NOT NULL
	)`, s.table, s.dateColumn, dateType)

	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return errors.Wrapf(err, "erro ao criar tabela %s", s.table)
	}

	logrus.WithField("table", s.table).Info("Tabela do dataset verificada")
	return nil
}

// Truncate remove todas as linhas da tabela
func (s *Seeder) Truncate(ctx context.Context) error {
	query, args, err := squirrel.Delete(s.table).PlaceholderFormat(s.placeholder()).ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao limpar tabela %s", s.table)
	}
	return nil
}

// Insert grava os registros. Qualquer falha desfaz a transação inteira
func (s *Seeder) Insert(ctx context.Context, records []domain.Record) (err error) {
	logrus.WithField("rows", len(records)).Info("Iniciando inserção do dataset")
	startTime := time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao iniciar transação")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	insert := squirrel.
		Insert(s.table).
		Columns(s.dateColumn, "lat", "lon", "area_id", "inflow", "outflow", "income_inflow", "income_outflow", "total_net_flow").
		PlaceholderFormat(s.placeholder())

	for i, r := range records {
		query, args, err := insert.
			Values(r.ObservationDate.Format(time.DateOnly), r.Lat, r.Lon, r.AreaID, r.Inflow, r.Outflow, r.IncomeInflow, r.IncomeOutflow, r.TotalNetFlow).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query")
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "erro ao inserir registro %d (área %s)", i+1, r.AreaID)
		}

		if i > 0 && i%progressEvery == 0 {
			logrus.Debugf("Progresso: %d/%d registros inseridos", i, len(records))
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "erro ao confirmar transação")
	}

	logrus.WithFields(logrus.Fields{
		"rows":     len(records),
		"duration": time.Since(startTime).String(),
	}).Info("Inserção do dataset concluída")

	return nil
}
