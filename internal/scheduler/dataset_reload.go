// Package scheduler contém os serviços de agendamento do serviço
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/emerging-areas-api/internal/config"
	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

// Reloader recarrega o dataset e publica um novo snapshot
type Reloader interface {
	Reload(ctx context.Context) (*domain.Snapshot, error)
}

type DatasetReloadConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type DatasetReloadService struct {
	scheduler *gocron.Scheduler
	reloader  Reloader
	config    DatasetReloadConfig
	stopped   chan struct{}

	// runCtx é o contexto recebido em Start; recargas manuais também param com ele
	runCtx context.Context

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastError           string
}

func NewDatasetReloadService(reloader Reloader, cfg *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: cfg.DatasetReload.CronSchedule, // Default: a cada hora
		SyncEnabled:  cfg.DatasetReload.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"enabled":       reloadConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		reloader:  reloader,
		config:    reloadConfig,
		stopped:   make(chan struct{}),
	}
}

func (s *DatasetReloadService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.runCtx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		close(s.stopped)
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reload(ctx)
	})
	if err != nil {
		close(s.stopped)
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		defer close(s.stopped)
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// Stopped é fechado quando o agendador termina
func (s *DatasetReloadService) Stopped() <-chan struct{} {
	return s.stopped
}

// ReloadNow recarrega o dataset de forma síncrona. Retorna false se já havia uma recarga em andamento
func (s *DatasetReloadService) ReloadNow(ctx context.Context) (*domain.Snapshot, bool, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return nil, false, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	snapshot, err := s.reloader.Reload(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		return nil, true, err
	}

	s.lastError = ""
	s.lastSnapshotID = snapshot.ID
	return snapshot, true, nil
}

func (s *DatasetReloadService) reload(ctx context.Context) {
	startTime := time.Now()

	snapshot, ran, err := s.ReloadNow(ctx)
	if err != nil {
		// O snapshot anterior continua sendo servido
		logrus.WithError(err).Error("Erro na recarga do dataset")
		return
	}
	if !ran {
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"snapshot_id": snapshot.ID,
		"rows":        snapshot.RowCount,
	}).Info("Recarga do dataset concluída")
}

// TriggerManualSync inicia manualmente uma recarga em segundo plano
func (s *DatasetReloadService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}
	ctx := s.runCtx
	s.syncMutex.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}

	logrus.Info("Iniciando recarga manual do dataset")
	go s.reload(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_error":             s.lastError,
	}
}
