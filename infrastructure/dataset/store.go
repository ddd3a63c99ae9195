package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
	"github.com/vfg2006/emerging-areas-api/internal/usecases/flows"
	"github.com/vfg2006/emerging-areas-api/pkg/utils"
)

// Store guarda o snapshot atual do dataset. O snapshot nunca é alterado depois de
// publicado; uma recarga cria outro e troca o ponteiro
type Store struct {
	loader Loader
	now    func() time.Time
	newID  func() (string, error)

	mu       sync.RWMutex
	snapshot *domain.Snapshot
}

func NewStore(loader Loader) *Store {
	return &Store{
		loader: loader,
		now:    time.Now,
		newID:  utils.GenerateID,
	}
}

// Current retorna o snapshot publicado ou flows.ErrDatasetNotLoaded
func (s *Store) Current() (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, flows.ErrDatasetNotLoaded
	}
	return s.snapshot, nil
}

// Reload carrega a fonte, deriva income_diff e publica o novo snapshot.
// Em caso de erro o snapshot anterior continua valendo
func (s *Store) Reload(ctx context.Context) (*domain.Snapshot, error) {
	startedAt := s.now()

	records, err := s.loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao carregar dataset de %s", s.loader.Source())
	}

	id, err := s.newID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do snapshot")
	}

	snapshot := domain.NewSnapshot(id, s.loader.Source(), s.now(), flows.Derive(records))

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"source":      snapshot.Source,
		"rows":        snapshot.RowCount,
		"areas":       snapshot.AreaCount,
		"duration":    s.now().Sub(startedAt).String(),
	}).Info("Dataset carregado com sucesso")

	return snapshot, nil
}
