package snapshot

import (
	"context"
	"time"

	"github.com/binderapp/binder/internal/catalog"
	"github.com/binderapp/binder/internal/collection"
	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/logger"
	"github.com/binderapp/binder/internal/prefs"
	"github.com/binderapp/binder/internal/stats"
)

// Job computes and records the value snapshot for the configured set
type Job struct {
	snapshots  Service
	collection collection.Service
	catalog    catalog.Service
	prefs      prefs.Service
	setCode    string
}

// NewJob creates a snapshot job for setCode
func NewJob(snapshots Service, coll collection.Service, cat catalog.Service, preferences prefs.Service, setCode string) *Job {
	return &Job{
		snapshots:  snapshots,
		collection: coll,
		catalog:    cat,
		prefs:      preferences,
		setCode:    setCode,
	}
}

// Process computes today's snapshot and records it. A missing set
// configuration is a quiet no-op so the scheduler can run unconditionally.
func (j *Job) Process(ctx context.Context) error {
	if j.setCode == "" {
		logger.FromContext(ctx).Debug(LogMsgJobNoSet)
		return nil
	}

	_, err := j.Run(ctx)
	return err
}

// Run computes today's snapshot, records it replacing an earlier run from the
// same day, and returns the recorded snapshot
func (j *Job) Run(ctx context.Context) (domain.ValueSnapshot, error) {
	log := logger.FromContext(ctx)

	if j.setCode == "" {
		return domain.ValueSnapshot{}, domain.ErrSetRequired
	}

	log.Info(LogMsgJobStarting, "set", j.setCode)
	start := time.Now()

	preferences, err := j.prefs.Get(ctx)
	if err != nil {
		log.Error(LogMsgJobFailed, "error", err)
		return domain.ValueSnapshot{}, err
	}

	cards, err := j.catalog.Cards(ctx, j.setCode, preferences.CatalogVariant)
	if err != nil {
		log.Error(LogMsgJobFailed, "error", err)
		return domain.ValueSnapshot{}, err
	}

	lookup := func(cardID string) (domain.CollectionEntry, bool) {
		return j.collection.Get(ctx, cardID)
	}
	snap := stats.Snapshot(cards, lookup, time.Now().UTC())

	if err := j.snapshots.Record(ctx, snap); err != nil {
		log.Error(LogMsgJobFailed, "error", err)
		return domain.ValueSnapshot{}, err
	}

	log.Info(LogMsgJobCompleted, "date", snap.Date, "value", snap.CollectionValue, "duration", time.Since(start))
	return snap, nil
}
