package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/emerging-areas-api/infrastructure/database"
	"github.com/vfg2006/emerging-areas-api/infrastructure/dataset"
	"github.com/vfg2006/emerging-areas-api/internal/api"
	"github.com/vfg2006/emerging-areas-api/internal/config"
	"github.com/vfg2006/emerging-areas-api/internal/scheduler"
	"github.com/vfg2006/emerging-areas-api/internal/usecases/flows"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var closers []func() error

	var conn *database.Connection
	if cfg.Dataset.Source == config.DatasetSourceDatabase {
		conn = dbconn(ctx, cfg.Database)
		closers = append(closers, conn.Close)
	}

	loader, err := dataset.NewLoader(cfg, conn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a fonte do dataset")
	}

	// Sem dataset o painel não tem o que mostrar: a falha no carregamento inicial é fatal
	store := dataset.NewStore(loader)
	if _, err := store.Reload(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset")
	}

	dashboardService := flows.NewService(store, cfg)

	datasetReloadService := scheduler.NewDatasetReloadService(store, cfg)
	if err := datasetReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, datasetReloadService, closers...)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dbconn cria a conexão com o banco usado como fonte do dataset
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com o banco de dados")
	}

	logrus.WithField("driver", conn.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
