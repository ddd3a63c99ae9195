package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/emerging-areas-api/internal/api/handler"
	"github.com/vfg2006/emerging-areas-api/internal/api/handler/router"
	"github.com/vfg2006/emerging-areas-api/internal/config"
	"github.com/vfg2006/emerging-areas-api/internal/scheduler"
	"github.com/vfg2006/emerging-areas-api/internal/usecases/flows"
	"github.com/vfg2006/emerging-areas-api/pkg/middleware"
)

const defaultShutdownTimeout = 15 * time.Second

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	closers         []func() error
}

func New(
	config *config.Config,
	dashboardService flows.DashboardRenderer,
	datasetReloadService *scheduler.DatasetReloadService,
	closers ...func() error,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		DatasetReloadService: datasetReloadService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(dashboardService)...),
		router.WithRoutes(handler.Dataset(dashboardService)...),
		router.WithRoutes(handler.Dashboard(dashboardService)...),
		router.WithRoutes(handler.Charts(dashboardService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: config.Server.ReadHeaderTimeout,
		},
		shutdownTimeout: config.Server.ShutdownTimeout,
		closers:         closers,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run atende até receber SIGINT/SIGTERM ou até o contexto ser cancelado, e então
// desliga o servidor. Uma falha ao abrir a porta é devolvida ao chamador
func (s Server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case err := <-listenErr:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	case sig := <-signals:
		logrus.WithField("signal", sig.String()).Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logrus.WithField("timeout", timeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown encerra o servidor HTTP e depois libera os recursos registrados em New
func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			logrus.WithError(err).Warn("Erro ao liberar recurso no desligamento")
		}
	}

	return nil
}
