package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

// Store persists the named collections as one JSON array per key.
// Every mutation is a full read-modify-write of the affected collection,
// serialized per collection so concurrent callers never lose an update.
type Store struct {
	kv  domain.KeyValueStore
	now func() time.Time

	locks map[domain.CollectionName]*sync.Mutex
}

// NewStore creates a collection store over the given key-value backend
func NewStore(kv domain.KeyValueStore) *Store {
	locks := make(map[domain.CollectionName]*sync.Mutex, len(domain.Collections))
	for _, name := range domain.Collections {
		locks[name] = &sync.Mutex{}
	}
	return &Store{kv: kv, now: time.Now, locks: locks}
}

// WithClock overrides the insertion timestamp source (tests)
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) lock(name domain.CollectionName) (func(), error) {
	mu, ok := s.locks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, name)
	}
	mu.Lock()
	return mu.Unlock, nil
}

// Items returns the collection in insertion order.
// A missing key is an empty collection. Unparseable text yields an empty
// collection together with domain.ErrMalformedCollection.
func (s *Store) Items(name domain.CollectionName) ([]domain.StoredItem, error) {
	unlock, err := s.lock(name)
	if err != nil {
		return []domain.StoredItem{}, err
	}
	defer unlock()
	return s.read(name)
}

// Add appends the item unless an entry with the same id exists.
// Returns false (and writes nothing) for a duplicate id, whatever its kind.
func (s *Store) Add(name domain.CollectionName, item domain.CatalogItem) (bool, error) {
	unlock, err := s.lock(name)
	if err != nil {
		return false, err
	}
	defer unlock()

	items, err := s.read(name)
	if err != nil && !errors.Is(err, domain.ErrMalformedCollection) {
		return false, err
	}
	// Malformed text is replaced, matching how a read treats it as empty

	if indexOf(items, item.GetID()) >= 0 {
		return false, nil
	}

	items = append(items, domain.NewStoredItem(item, s.now()))
	if err := s.write(name, items); err != nil {
		return false, err
	}
	return true, nil
}

// Remove drops the entry with the given id.
// Returns true only if an entry was removed; nothing is written otherwise.
func (s *Store) Remove(name domain.CollectionName, id int) (bool, error) {
	unlock, err := s.lock(name)
	if err != nil {
		return false, err
	}
	defer unlock()

	items, err := s.read(name)
	if err != nil {
		return false, err
	}

	idx := indexOf(items, id)
	if idx < 0 {
		return false, nil
	}

	filtered := make([]domain.StoredItem, 0, len(items)-1)
	filtered = append(filtered, items[:idx]...)
	filtered = append(filtered, items[idx+1:]...)
	if err := s.write(name, filtered); err != nil {
		return false, err
	}
	return true, nil
}

// Contains reports whether any entry has the given id
func (s *Store) Contains(name domain.CollectionName, id int) (bool, error) {
	items, err := s.Items(name)
	if err != nil {
		return false, err
	}
	return indexOf(items, id) >= 0, nil
}

// Clear removes every collection. Irreversible.
func (s *Store) Clear() error {
	for _, name := range domain.Collections {
		unlock, err := s.lock(name)
		if err != nil {
			return err
		}
		err = s.kv.Remove(string(name))
		unlock()
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) read(name domain.CollectionName) ([]domain.StoredItem, error) {
	data, ok, err := s.kv.Get(string(name))
	if err != nil {
		return []domain.StoredItem{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if !ok {
		return []domain.StoredItem{}, nil
	}

	var items []domain.StoredItem
	if err := json.Unmarshal(data, &items); err != nil {
		return []domain.StoredItem{}, fmt.Errorf("%w: %s: %v", domain.ErrMalformedCollection, name, err)
	}
	if items == nil {
		// "null" decodes without error
		items = []domain.StoredItem{}
	}
	return items, nil
}

func (s *Store) write(name domain.CollectionName, items []domain.StoredItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.kv.Set(string(name), data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func indexOf(items []domain.StoredItem, id int) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
