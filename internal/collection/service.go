package collection

import (
	"log/slog"
	"sync"

	"github.com/mmcdole/marquee/internal/domain"
)

// Service exposes the collections as live state to the presentation layer.
// All mutations go through the Store, and the affected collection is
// re-read right after every write so the mirror never drifts from disk.
type Service struct {
	store  *Store
	share  *Sharer
	logger *slog.Logger

	mu        sync.RWMutex
	mirror    map[domain.CollectionName][]domain.StoredItem
	observers []domain.CollectionObserver
}

// NewService creates the view-model and loads both collections.
// share may be nil, in which case ShareItem always reports failure.
func NewService(store *Store, share *Sharer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		store:  store,
		share:  share,
		logger: logger,
		mirror: make(map[domain.CollectionName][]domain.StoredItem, len(domain.Collections)),
	}
	s.RefreshData()
	return s
}

// Observe registers fn to be called after every mirror refresh
func (s *Service) Observe(fn domain.CollectionObserver) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// RefreshData re-reads both collections from the store
func (s *Service) RefreshData() {
	for _, name := range domain.Collections {
		s.refresh(name)
	}
}

func (s *Service) refresh(name domain.CollectionName) {
	items, err := s.store.Items(name)
	if err != nil {
		// Malformed or unreadable: the collection acts as empty
		s.logger.Error("failed to load collection", "collection", name, "error", err)
	}

	s.mu.Lock()
	s.mirror[name] = items
	observers := append([]domain.CollectionObserver(nil), s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(name, copyItems(items))
	}
}

func copyItems(items []domain.StoredItem) []domain.StoredItem {
	out := make([]domain.StoredItem, len(items))
	copy(out, items)
	return out
}
