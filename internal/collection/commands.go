package collection

import (
	"github.com/mmcdole/marquee/internal/domain"
)

// Add stores item in the named collection.
// Returns false for a duplicate id or on any failure (logged).
func (s *Service) Add(name domain.CollectionName, item domain.CatalogItem) bool {
	added, err := s.store.Add(name, item)
	if err != nil {
		s.logger.Error("failed to add to collection", "collection", name, "id", item.GetID(), "error", err)
		return false
	}
	if added {
		s.refresh(name)
		s.logger.Debug("added to collection", "collection", name, "id", item.GetID(), "kind", item.Kind())
	}
	return added
}

// Remove deletes the entry with id from the named collection.
// Returns true only if something was removed.
func (s *Service) Remove(name domain.CollectionName, id int) bool {
	removed, err := s.store.Remove(name, id)
	if err != nil {
		s.logger.Error("failed to remove from collection", "collection", name, "id", id, "error", err)
		return false
	}
	if removed {
		s.refresh(name)
		s.logger.Debug("removed from collection", "collection", name, "id", id)
	}
	return removed
}

// Toggle checks membership in the mirror, then adds or removes.
// Not atomic: two racing toggles may both take the same branch.
func (s *Service) Toggle(name domain.CollectionName, item domain.CatalogItem) bool {
	if s.Contains(name, item.GetID()) {
		return s.Remove(name, item.GetID())
	}
	return s.Add(name, item)
}

func (s *Service) AddToFavorites(item domain.CatalogItem) bool {
	return s.Add(domain.Favorites, item)
}

func (s *Service) RemoveFromFavorites(id int) bool {
	return s.Remove(domain.Favorites, id)
}

func (s *Service) ToggleFavorite(item domain.CatalogItem) bool {
	return s.Toggle(domain.Favorites, item)
}

func (s *Service) AddToSaved(item domain.CatalogItem) bool {
	return s.Add(domain.Saved, item)
}

func (s *Service) RemoveFromSaved(id int) bool {
	return s.Remove(domain.Saved, id)
}

func (s *Service) ToggleSaved(item domain.CatalogItem) bool {
	return s.Toggle(domain.Saved, item)
}

// ClearAll wipes every collection and refreshes the mirror
func (s *Service) ClearAll() bool {
	if err := s.store.Clear(); err != nil {
		s.logger.Error("failed to clear collections", "error", err)
		s.RefreshData()
		return false
	}
	s.RefreshData()
	s.logger.Info("cleared all collections")
	return true
}
