package collection

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/marquee/internal/domain"
)

// Items returns a copy of the mirrored collection. Never blocks on storage.
func (s *Service) Items(name domain.CollectionName) []domain.StoredItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.mirror[name])
}

func (s *Service) Count(name domain.CollectionName) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mirror[name])
}

func (s *Service) Contains(name domain.CollectionName, id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.mirror[name], id) >= 0
}

func (s *Service) Favorites() []domain.StoredItem { return s.Items(domain.Favorites) }
func (s *Service) Saved() []domain.StoredItem     { return s.Items(domain.Saved) }
func (s *Service) FavoritesCount() int            { return s.Count(domain.Favorites) }
func (s *Service) SavedCount() int                { return s.Count(domain.Saved) }
func (s *Service) IsFavorite(id int) bool         { return s.Contains(domain.Favorites, id) }
func (s *Service) IsSaved(id int) bool            { return s.Contains(domain.Saved, id) }

// Filter fuzzy-matches titles in the named collection.
// An empty query returns the whole collection in insertion order;
// otherwise results are ranked by edit distance (closest first).
func (s *Service) Filter(name domain.CollectionName, query string) []domain.StoredItem {
	items := s.Items(name)
	if query == "" {
		return items
	}

	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Stable(ranks)

	out := make([]domain.StoredItem, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, items[r.OriginalIndex])
	}
	return out
}
