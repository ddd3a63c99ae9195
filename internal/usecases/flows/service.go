package flows

import (
	"context"
	"errors"

	"github.com/vfg2006/emerging-areas-api/internal/config"
	"github.com/vfg2006/emerging-areas-api/internal/domain"
	"github.com/vfg2006/emerging-areas-api/pkg/apiErrors"
	"github.com/vfg2006/emerging-areas-api/pkg/log"
)

// SnapshotProvider entrega o dataset carregado, somente leitura
type SnapshotProvider interface {
	Current() (*domain.Snapshot, error)
}

// DashboardRenderer é a interface consumida pela camada HTTP e pela CLI
type DashboardRenderer interface {
	// Render executa o pipeline para os controles informados
	Render(ctx context.Context, params domain.RenderParams) (*domain.DashboardViews, error)

	// Snapshot retorna os metadados do dataset carregado
	Snapshot() (*domain.Snapshot, error)

	// DefaultParams retorna os controles iniciais do painel
	DefaultParams() domain.RenderParams
}

type Service struct {
	provider SnapshotProvider
	options  domain.RenderOptions
	defaults domain.RenderParams
}

func NewService(provider SnapshotProvider, cfg *config.Config) DashboardRenderer {
	return &Service{
		provider: provider,
		options:  cfg.RenderOptions(),
		defaults: cfg.DefaultParams(),
	}
}

func (s *Service) DefaultParams() domain.RenderParams {
	return s.defaults
}

func (s *Service) Snapshot() (*domain.Snapshot, error) {
	snapshot, err := s.provider.Current()
	if err != nil {
		if errors.Is(err, ErrDatasetNotLoaded) {
			return nil, NewPipelineError(err, apiErrors.ErrDatasetNotLoaded, "")
		}
		return nil, NewPipelineError(ErrDatasetUnavailable, apiErrors.ErrDatasetLoad, err.Error())
	}
	return snapshot, nil
}

func (s *Service) Render(ctx context.Context, params domain.RenderParams) (*domain.DashboardViews, error) {
	logger := log.ForContext(ctx)

	snapshot, err := s.Snapshot()
	if err != nil {
		logger.WithError(err).Error("flows: dataset indisponível para renderização")
		return nil, err
	}

	views, err := Render(snapshot.Records, params, s.options)
	if err != nil {
		logger.WithError(err).WithField("month", params.Month).Warn("flows: controles inválidos")
		return nil, err
	}
	views.SnapshotID = snapshot.ID

	logger.WithFields(log.Fields{
		"month":       views.Params.Month,
		"snapshot_id": snapshot.ID,
		"map_areas":   len(views.Map.Areas),
		"total_areas": views.Leaderboard.TotalAreas,
		"dates":       len(views.TimeSeries.Flows),
	}).Debug("flows: visualizações renderizadas")

	return views, nil
}
