package dataset

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/emerging-areas-api/infrastructure/database"
	"github.com/vfg2006/emerging-areas-api/internal/config"
	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

var ErrUnsupportedSource = errors.New("fonte de dataset não suportada")

// Loader lê a fonte inteira para a memória
type Loader interface {
	Load(ctx context.Context) ([]domain.Record, error)
	Source() string
}

// OptionsFromConfig traduz a configuração do dataset para as opções de interpretação
func OptionsFromConfig(cfg config.Dataset) ParseOptions {
	return ParseOptions{
		DateColumn:          cfg.DateColumn,
		MaxRows:             cfg.MaxRows,
		UseIncomeDiffColumn: cfg.IncomeDiffPolicy != config.IncomeDiffPolicyDerive,
	}
}

// NewFileLoader escolhe o leitor pela extensão do arquivo
func NewFileLoader(path, sheet string, opts ParseOptions) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return NewCSVLoader(path, opts), nil
	case ".xlsx", ".xlsm":
		return NewXLSXLoader(path, sheet, opts), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedSource, "extensão %q", filepath.Ext(path))
	}
}

// NewLoader monta o leitor configurado. conn só é usado pela fonte database
func NewLoader(cfg *config.Config, conn *database.Connection) (Loader, error) {
	opts := OptionsFromConfig(cfg.Dataset)

	switch cfg.Dataset.Source {
	case config.DatasetSourceFile:
		return NewFileLoader(cfg.Dataset.Path, cfg.Dataset.Sheet, opts)
	case config.DatasetSourceDatabase:
		if conn == nil {
			return nil, errors.Wrap(ErrUnsupportedSource, "fonte database sem conexão")
		}
		return NewSQLLoader(conn, conn.Driver, cfg.Dataset.Table, opts), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedSource, "%q", cfg.Dataset.Source)
	}
}
