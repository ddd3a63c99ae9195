package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/vfg2006/emerging-areas-api/internal/config"
	"github.com/vfg2006/emerging-areas-api/internal/domain"
)

type reloaderStub struct {
	mu      sync.Mutex
	calls   int
	err     error
	block   chan struct{}
	started chan struct{}
	lastCtx context.Context
}

func (r *reloaderStub) Reload(ctx context.Context) (*domain.Snapshot, error) {
	r.mu.Lock()
	r.calls++
	call := r.calls
	r.lastCtx = ctx
	r.mu.Unlock()

	if r.started != nil {
		r.started <- struct{}{}
	}
	if r.block != nil {
		<-r.block
	}
	if r.err != nil {
		return nil, r.err
	}
	return &domain.Snapshot{ID: "snap" + string(rune('0'+call)), RowCount: 3}, nil
}

func (r *reloaderStub) LastContext() context.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastCtx
}

func (r *reloaderStub) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func newTestService(reloader Reloader, enabled bool, cron string) *DatasetReloadService {
	return NewDatasetReloadService(reloader, &config.Config{
		DatasetReload: config.DatasetReload{CronSchedule: cron, Enabled: enabled},
	})
}

func TestDatasetReloadService_ReloadNow(t *testing.T) {
	tests := []struct {
		name     string
		reloader *reloaderStub
		validate func(t *testing.T, s *DatasetReloadService, snapshot *domain.Snapshot, ran bool, err error)
	}{
		{
			name:     "Recarga com sucesso atualiza o status",
			reloader: &reloaderStub{},
			validate: func(t *testing.T, s *DatasetReloadService, snapshot *domain.Snapshot, ran bool, err error) {
				require.NoError(t, err)
				assert.True(t, ran)
				assert.Equal(t, "snap1", snapshot.ID)

				status := s.GetStatus()
				assert.Equal(t, "snap1", status["last_snapshot_id"])
				assert.Equal(t, "", status["last_error"])
				assert.Equal(t, false, status["sync_running"])
			},
		},
		{
			name:     "Falha na recarga registra o erro",
			reloader: &reloaderStub{err: errors.New("arquivo corrompido")},
			validate: func(t *testing.T, s *DatasetReloadService, snapshot *domain.Snapshot, ran bool, err error) {
				assert.Error(t, err)
				assert.True(t, ran)
				assert.Nil(t, snapshot)
				assert.Equal(t, "arquivo corrompido", s.GetStatus()["last_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(tt.reloader, false, "0 * * * *")
			snapshot, ran, err := s.ReloadNow(context.Background())
			tt.validate(t, s, snapshot, ran, err)
		})
	}
}

func TestDatasetReloadService_IgnoresConcurrentReload(t *testing.T) {
	reloader := &reloaderStub{block: make(chan struct{}), started: make(chan struct{}, 1)}
	s := newTestService(reloader, false, "0 * * * *")

	s.TriggerManualSync()
	<-reloader.started

	_, ran, err := s.ReloadNow(context.Background())
	assert.NoError(t, err)
	assert.False(t, ran)
	assert.Equal(t, true, s.GetStatus()["sync_running"])

	close(reloader.block)
	assert.Eventually(t, func() bool {
		return s.GetStatus()["sync_running"] == false
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, reloader.Calls())
}

func TestDatasetReloadService_TriggerManualSyncUsesStartContext(t *testing.T) {
	reloader := &reloaderStub{started: make(chan struct{}, 1)}
	s := newTestService(reloader, false, "0 * * * *")

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))

	s.TriggerManualSync()
	<-reloader.started

	assert.Eventually(t, func() bool {
		return s.GetStatus()["sync_running"] == false
	}, time.Second, 10*time.Millisecond)

	reloadCtx := reloader.LastContext()
	require.NotNil(t, reloadCtx)
	assert.NoError(t, reloadCtx.Err())

	cancel()
	assert.ErrorIs(t, reloadCtx.Err(), context.Canceled)
}

func TestDatasetReloadService_Start(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		s := newTestService(&reloaderStub{}, false, "0 * * * *")
		require.NoError(t, s.Start(context.Background()))
		<-s.Stopped()
		assert.Equal(t, false, s.GetStatus()["sync_enabled"])
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		s := newTestService(&reloaderStub{}, true, "não é cron")
		assert.Error(t, s.Start(context.Background()))
	})

	t.Run("Para quando o contexto é cancelado", func(t *testing.T) {
		reloader := &reloaderStub{}
		s := newTestService(reloader, true, "0 0 1 1 *")

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, s.Start(ctx))
		cancel()

		select {
		case <-s.Stopped():
		case <-time.After(2 * time.Second):
			t.Fatal("agendador não parou após o cancelamento")
		}
		assert.Zero(t, reloader.Calls())
	})
}
