package domain

import (
	"fmt"
	"time"
)

// CollectionName identifies one of the locally persisted collections.
// The value doubles as the key-value storage key.
type CollectionName string

const (
	Favorites CollectionName = "favorites"
	Saved     CollectionName = "saved"
)

// Collections lists every known collection in display order
var Collections = []CollectionName{Favorites, Saved}

// ParseCollectionName validates a collection name
func ParseCollectionName(s string) (CollectionName, error) {
	switch CollectionName(s) {
	case Favorites, Saved:
		return CollectionName(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, s)
	}
}

// AddedAtLayout is the persisted addedAt format (ISO-8601, millisecond precision, UTC)
const AddedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// StoredItem is the persisted summary of a catalog item.
// Field names are part of the on-disk format.
type StoredItem struct {
	ID           int       `json:"id"`
	Type         MediaKind `json:"type"`
	Title        string    `json:"title"`
	PosterPath   *string   `json:"poster_path"`
	ReleaseDate  string    `json:"release_date,omitempty"`
	FirstAirDate string    `json:"first_air_date,omitempty"`
	VoteAverage  float64   `json:"vote_average"`
	AddedAt      string    `json:"addedAt"`
}

// NewStoredItem maps a catalog item into its persisted form, stamped with now.
func NewStoredItem(item CatalogItem, now time.Time) StoredItem {
	stored := StoredItem{
		ID:          item.GetID(),
		Type:        item.Kind(),
		Title:       item.GetTitle(),
		VoteAverage: item.GetVoteAverage(),
		AddedAt:     now.UTC().Format(AddedAtLayout),
	}
	if p := item.GetPosterPath(); p != "" {
		stored.PosterPath = &p
	}
	switch item.Kind() {
	case KindMovie:
		stored.ReleaseDate = item.GetDate()
	case KindTV:
		stored.FirstAirDate = item.GetDate()
	}
	return stored
}

// Poster returns the poster path, or "" when null
func (s StoredItem) Poster() string {
	if s.PosterPath == nil {
		return ""
	}
	return *s.PosterPath
}

// Date returns whichever date field applies to the item's kind
func (s StoredItem) Date() string {
	if s.Type == KindTV {
		return s.FirstAirDate
	}
	return s.ReleaseDate
}

// AddedTime parses AddedAt; zero time if unparseable
func (s StoredItem) AddedTime() time.Time {
	t, err := time.Parse(time.RFC3339Nano, s.AddedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CatalogItem rebuilds a minimal catalog item from the stored summary,
// so stored entries can be toggled or shared without a network round-trip.
func (s StoredItem) CatalogItem() CatalogItem {
	if s.Type == KindTV {
		return &Show{
			ID:           s.ID,
			Name:         s.Title,
			PosterPath:   s.Poster(),
			FirstAirDate: s.FirstAirDate,
			VoteAverage:  s.VoteAverage,
		}
	}
	return &Movie{
		ID:          s.ID,
		Title:       s.Title,
		PosterPath:  s.Poster(),
		ReleaseDate: s.ReleaseDate,
		VoteAverage: s.VoteAverage,
	}
}

// SharePayload is what gets handed to a share target
type SharePayload struct {
	Title string
	Text  string
	URL   string
}

// ClipboardText is the fallback text written when no share command exists
func (p SharePayload) ClipboardText() string {
	return p.Text + "\n" + p.URL
}
