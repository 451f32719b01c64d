package collection

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

// ImportResult reports what a collection import kept and dropped
type ImportResult struct {
	Kept    int `json:"kept"`
	Dropped int `json:"dropped"`
}

// Service owns the ownership ledger. All reads come from an in-memory copy,
// all writes go through to storage before the copy is updated, so memory and
// the durable slot never disagree after a successful call.
type Service interface {
	// Load reads the persisted ledger into memory. Call once at startup.
	Load(ctx context.Context) error

	// GetAll returns every entry, sorted by card ID
	GetAll(ctx context.Context) []domain.CollectionEntry

	// Get returns the entry for cardID when one exists
	Get(ctx context.Context, cardID string) (domain.CollectionEntry, bool)

	// Status returns the derived ownership classification for cardID.
	// Cards without an entry get the zero status.
	Status(ctx context.Context, cardID string) domain.OwnershipStatus

	// SetQuantities sets the owned copy counts for cardID. Negative values
	// clamp to zero. The returned entry is the resulting state; when the
	// update empties the entry it is pruned and the result is Empty.
	SetQuantities(ctx context.Context, cardID string, normal, foil int) (domain.CollectionEntry, error)

	// ToggleWanted flips the wishlist flag for cardID, creating the entry
	// when missing and pruning it when the flip empties it
	ToggleWanted(ctx context.Context, cardID string) (domain.CollectionEntry, error)

	// Import replaces the whole ledger with the entries in payload, a JSON
	// array in the interchange format. Malformed elements are dropped, a
	// non-array payload fails with domain.ErrImportInvalid and changes
	// nothing.
	Import(ctx context.Context, payload []byte) (ImportResult, error)

	// Export renders the ledger as pretty-printed interchange JSON
	Export(ctx context.Context) ([]byte, error)
}

type service struct {
	store storage.KV
	bus   event.Bus

	mu      sync.RWMutex
	entries map[string]domain.CollectionEntry
}

// NewService creates a collection service persisting through store
func NewService(store storage.KV, bus event.Bus) Service {
	return &service{
		store:   store,
		bus:     bus,
		entries: make(map[string]domain.CollectionEntry),
	}
}

// Load reads the persisted ledger. A missing slot is an empty collection; a
// corrupt slot is logged and treated as empty rather than blocking startup.
func (s *service) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	data, err := s.store.Get(ctx, KeyCollection)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}

	var stored []domain.CollectionEntry
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Error(LogMsgLoadCorrupt, "error", err, "bytes", len(data))
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]domain.CollectionEntry, len(stored))
	for _, entry := range stored {
		if entry.CardID == "" || entry.Empty() {
			continue
		}
		s.entries[entry.CardID] = entry
	}

	log.Info(LogMsgLoaded, "entries", len(s.entries))
	return nil
}

// GetAll returns every entry, sorted by card ID
func (s *service) GetAll(_ context.Context) []domain.CollectionEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// snapshotLocked copies the ledger into a sorted slice. Callers must hold at
// least the read lock.
func (s *service) snapshotLocked() []domain.CollectionEntry {
	out := make([]domain.CollectionEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CardID < out[j].CardID })
	return out
}

// Get returns the entry for cardID when one exists
func (s *service) Get(_ context.Context, cardID string) (domain.CollectionEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[cardID]
	return entry, ok
}

// Status returns the derived ownership classification for cardID
func (s *service) Status(_ context.Context, cardID string) domain.OwnershipStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entries[cardID].Status()
}

// SetQuantities sets the owned copy counts for cardID
func (s *service) SetQuantities(ctx context.Context, cardID string, normal, foil int) (domain.CollectionEntry, error) {
	log := logger.FromContext(ctx)

	if cardID == "" {
		return domain.CollectionEntry{}, domain.ErrInvalidInput
	}

	entry, changed, err := s.applyQuantities(ctx, cardID, normal, foil)
	if err != nil {
		return domain.CollectionEntry{}, err
	}
	if !changed {
		return entry, nil
	}

	log.Debug(LogMsgQuantitiesSet,
		"card_id", cardID,
		"normal_qty", entry.NormalQty,
		"foil_qty", entry.FoilQty,
		"pruned", entry.Empty())

	s.publishUpdated(ctx, entry)
	return entry, nil
}

// applyQuantities performs the locked portion of SetQuantities. The changed
// result is false for the no-op case of zeroing a card that has no entry.
func (s *service) applyQuantities(ctx context.Context, cardID string, normal, foil int) (domain.CollectionEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[cardID]
	entry.CardID = cardID
	entry.NormalQty = domain.ClampQuantity(normal)
	entry.FoilQty = domain.ClampQuantity(foil)

	if !exists && entry.Empty() {
		// nothing to record and nothing to prune
		return entry, false, nil
	}

	if err := s.commitLocked(ctx, cardID, entry); err != nil {
		return domain.CollectionEntry{}, false, err
	}
	return entry, true, nil
}

// ToggleWanted flips the wishlist flag for cardID
func (s *service) ToggleWanted(ctx context.Context, cardID string) (domain.CollectionEntry, error) {
	log := logger.FromContext(ctx)

	if cardID == "" {
		return domain.CollectionEntry{}, domain.ErrInvalidInput
	}

	entry, err := s.applyToggle(ctx, cardID)
	if err != nil {
		return domain.CollectionEntry{}, err
	}

	log.Debug(LogMsgWantedToggled, "card_id", cardID, "wanted", entry.Wanted, "pruned", entry.Empty())

	s.publishUpdated(ctx, entry)
	return entry, nil
}

// applyToggle performs the locked portion of ToggleWanted
func (s *service) applyToggle(ctx context.Context, cardID string) (domain.CollectionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entries[cardID]
	entry.CardID = cardID
	entry.Wanted = !entry.Wanted

	if err := s.commitLocked(ctx, cardID, entry); err != nil {
		return domain.CollectionEntry{}, err
	}
	return entry, nil
}

// commitLocked applies entry to a copy of the ledger, persists the copy and
// swaps it in. Empty entries are pruned instead of stored. On persistence
// failure the in-memory ledger keeps its previous state.
func (s *service) commitLocked(ctx context.Context, cardID string, entry domain.CollectionEntry) error {
	next := make(map[string]domain.CollectionEntry, len(s.entries)+1)
	for id, e := range s.entries {
		next[id] = e
	}
	if entry.Empty() {
		delete(next, cardID)
	} else {
		next[cardID] = entry
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.entries = next
	return nil
}

// persist writes the ledger map to the storage slot as a sorted JSON array
func (s *service) persist(ctx context.Context, entries map[string]domain.CollectionEntry) error {
	out := make([]domain.CollectionEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CardID < out[j].CardID })

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgPersistFailed, err)
	}
	if err := s.store.Set(ctx, KeyCollection, data); err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistFailed, "error", err)
		return fmt.Errorf("%s: %w", ErrMsgPersistFailed, err)
	}
	return nil
}

// Import replaces the whole ledger with the sanitized entries of payload
func (s *service) Import(ctx context.Context, payload []byte) (ImportResult, error) {
	log := logger.FromContext(ctx)

	var elements []json.RawMessage
	if err := json.Unmarshal(payload, &elements); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", domain.ErrImportInvalid, err)
	}
	// Unmarshal accepts the literal null for a slice; the interchange
	// format requires a real array.
	if elements == nil {
		return ImportResult{}, fmt.Errorf("%w: payload is null", domain.ErrImportInvalid)
	}

	next := make(map[string]domain.CollectionEntry, len(elements))
	dropped := 0
	for _, raw := range elements {
		entry, ok := sanitizeEntry(raw)
		if !ok {
			dropped++
			log.Debug(LogMsgImportDropped, "entry", string(raw))
			continue
		}
		if entry.Empty() {
			// sanitized to nothing, prune instead of storing
			dropped++
			continue
		}
		// duplicate card IDs: last occurrence wins
		if _, seen := next[entry.CardID]; seen {
			dropped++
		}
		next[entry.CardID] = entry
	}

	if err := s.replace(ctx, next); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Kept: len(next), Dropped: dropped}
	log.Info(LogMsgImportCompleted, "kept", result.Kept, "dropped", result.Dropped)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewCollectionImportedEvent(result.Kept, result.Dropped)); err != nil {
			log.Warn("Failed to publish import event", "error", err)
		}
	}
	return result, nil
}

// replace persists entries as the new ledger and swaps it in
func (s *service) replace(ctx context.Context, entries map[string]domain.CollectionEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, entries); err != nil {
		return err
	}
	s.entries = entries
	return nil
}

// Export renders the ledger as pretty-printed interchange JSON
func (s *service) Export(ctx context.Context) ([]byte, error) {
	entries := s.GetAll(ctx)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgExportFailed, err)
	}
	return data, nil
}

// publishUpdated emits a collection.updated event. The memory bus runs
// handlers synchronously, so this must be called outside the service lock.
func (s *service) publishUpdated(ctx context.Context, entry domain.CollectionEntry) {
	if s.bus == nil {
		return
	}
	status := entry.Status()
	evt := event.NewCollectionUpdatedEvent(entry.CardID, entry.NormalQty, entry.FoilQty, entry.Wanted, status.Owned)
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish collection update", "error", err)
	}
}
