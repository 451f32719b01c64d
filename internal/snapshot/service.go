package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/event"
	"github.com/binderapp/binder/internal/logger"
	"github.com/binderapp/binder/internal/storage"
)

// Service records and lists the daily collection value history
type Service interface {
	// Record stores snap under its date, replacing any earlier snapshot of
	// the same day
	Record(ctx context.Context, snap domain.ValueSnapshot) error
	// List returns all snapshots in date order
	List(ctx context.Context) ([]domain.ValueSnapshot, error)
}

type service struct {
	store storage.KV
	bus   event.Bus
	mu    sync.Mutex
}

// NewService creates a snapshot history service over store
func NewService(store storage.KV, bus event.Bus) Service {
	return &service{store: store, bus: bus}
}

func (s *service) Record(ctx context.Context, snap domain.ValueSnapshot) error {
	if snap.Date == "" {
		return fmt.Errorf("snapshot date is required")
	}

	s.mu.Lock()
	snaps, err := s.load(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	replaced := false
	for i := range snaps {
		if snaps[i].Date == snap.Date {
			snaps[i] = snap
			replaced = true
			break
		}
	}
	if !replaced {
		snaps = append(snaps, snap)
		// Dates are YYYY-MM-DD, so lexicographic order is chronological
		sort.Slice(snaps, func(i, j int) bool { return snaps[i].Date < snaps[j].Date })
	}

	if err := s.persist(ctx, snaps); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgRecorded, "date", snap.Date, "value", snap.CollectionValue, "replaced", replaced)
	s.publishRecorded(ctx, snap)
	return nil
}

func (s *service) List(ctx context.Context) ([]domain.ValueSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *service) load(ctx context.Context) ([]domain.ValueSnapshot, error) {
	data, err := s.store.Get(ctx, KeySnapshots)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}

	var snaps []domain.ValueSnapshot
	if err := json.Unmarshal(data, &snaps); err != nil {
		// Same posture as the collection ledger: a corrupt slot logs and
		// starts empty instead of refusing to record
		logger.FromContext(ctx).Error(LogMsgLoadCorrupt, "error", err)
		return nil, nil
	}
	return snaps, nil
}

func (s *service) persist(ctx context.Context, snaps []domain.ValueSnapshot) error {
	data, err := json.Marshal(snaps)
	if err != nil {
		return fmt.Errorf("failed to encode snapshots: %w", err)
	}
	if err := s.store.Set(ctx, KeySnapshots, data); err != nil {
		return fmt.Errorf("failed to persist snapshots: %w", err)
	}
	return nil
}

func (s *service) publishRecorded(ctx context.Context, snap domain.ValueSnapshot) {
	if s.bus == nil {
		return
	}
	evt := event.NewSnapshotRecordedEvent(snap.Date, snap.TotalCards, snap.OwnedCards, snap.CollectionValue)
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish snapshot event", "error", err)
	}
}
