// Command seed carrega um arquivo do dataset na tabela lida pela fonte database
package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfg2006/emerging-areas-api/infrastructure/database"
	"github.com/vfg2006/emerging-areas-api/infrastructure/dataset"
	"github.com/vfg2006/emerging-areas-api/infrastructure/migration"
	"github.com/vfg2006/emerging-areas-api/internal/config"
)

func newRootCmd() *cobra.Command {
	var (
		file     string
		sheet    string
		truncate bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Popula a tabela do dataset a partir de um arquivo CSV ou XLSX",
		Long: `Lê o arquivo informado e grava os registros na tabela configurada em DATASET_TABLE,
usando a conexão de DATABASE_DRIVER e DATABASE_URL.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			return runSeed(cmd.Context(), cfg, file, sheet, truncate)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "arquivo do dataset (.csv, .xlsx)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "planilha do arquivo xlsx")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "apaga as linhas existentes antes de inserir")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runSeed(ctx context.Context, cfg *config.Config, file, sheet string, truncate bool) error {
	// O arquivo de origem sempre tem income_inflow e income_outflow, que são as colunas gravadas
	loader, err := dataset.NewFileLoader(file, sheet, dataset.ParseOptions{DateColumn: cfg.Dataset.DateColumn})
	if err != nil {
		return err
	}

	records, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	seeder, err := migration.NewSeeder(conn.DB, conn.Driver, cfg.Dataset.Table, dataset.NormalizeColumn(cfg.Dataset.DateColumn))
	if err != nil {
		return err
	}

	if err := seeder.CreateTable(ctx); err != nil {
		return err
	}

	if truncate {
		if err := seeder.Truncate(ctx); err != nil {
			return err
		}
	}

	return seeder.Insert(ctx, records)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})

	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("seed: falha")
		os.Exit(1)
	}
}
