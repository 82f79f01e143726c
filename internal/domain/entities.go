package domain

import (
	"fmt"
	"strings"
)

// MediaKind distinguishes catalog content types
type MediaKind string

const (
	KindMovie MediaKind = "movie"
	KindTV    MediaKind = "tv"
)

// ParseMediaKind accepts "movie" or "tv" (plus a few common aliases)
func ParseMediaKind(s string) (MediaKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies", "film":
		return KindMovie, nil
	case "tv", "show", "shows", "series":
		return KindTV, nil
	default:
		return "", fmt.Errorf("unknown media kind %q (want movie or tv)", s)
	}
}

// String returns a human-readable label
func (k MediaKind) String() string {
	switch k {
	case KindMovie:
		return "Movie"
	case KindTV:
		return "TV Show"
	default:
		return "Unknown"
	}
}

// CatalogItem is the tagged union of Movie and Show.
// The kind is fixed when the item is built at the API boundary.
type CatalogItem interface {
	GetID() int
	Kind() MediaKind
	GetTitle() string
	GetPosterPath() string
	GetBackdropPath() string
	GetOverview() string

	// GetDate returns release_date for movies, first_air_date for shows
	GetDate() string

	GetVoteAverage() float64
}

// Genre is a TMDB genre
type Genre struct {
	ID   int
	Name string
}

// Movie represents a movie from the catalog
type Movie struct {
	ID               int
	Title            string
	OriginalTitle    string
	Overview         string
	PosterPath       string // Empty when the catalog has no poster
	BackdropPath     string
	ReleaseDate      string // YYYY-MM-DD
	OriginalLanguage string
	VoteAverage      float64 // 0-10
	VoteCount        int
	Popularity       float64
	Adult            bool
	Video            bool
	GenreIDs         []int

	// Detail-only fields (zero in list results)
	Genres  []Genre
	Runtime int // Minutes
	Tagline string
	Status  string
}

func (m *Movie) GetID() int              { return m.ID }
func (m *Movie) Kind() MediaKind         { return KindMovie }
func (m *Movie) GetTitle() string        { return m.Title }
func (m *Movie) GetPosterPath() string   { return m.PosterPath }
func (m *Movie) GetBackdropPath() string { return m.BackdropPath }
func (m *Movie) GetOverview() string     { return m.Overview }
func (m *Movie) GetDate() string         { return m.ReleaseDate }
func (m *Movie) GetVoteAverage() float64 { return m.VoteAverage }

// FormattedRuntime returns the runtime in a human-readable format
func (m Movie) FormattedRuntime() string {
	if m.Runtime <= 0 {
		return ""
	}
	h := m.Runtime / 60
	mins := m.Runtime % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// Show represents a TV series from the catalog
type Show struct {
	ID               int
	Name             string
	OriginalName     string
	Overview         string
	PosterPath       string
	BackdropPath     string
	FirstAirDate     string // YYYY-MM-DD
	OriginalLanguage string
	VoteAverage      float64
	VoteCount        int
	Popularity       float64
	Adult            bool
	GenreIDs         []int
	OriginCountry    []string

	// Detail-only fields
	Genres           []Genre
	NumberOfSeasons  int
	NumberOfEpisodes int
	Status           string
}

func (s *Show) GetID() int              { return s.ID }
func (s *Show) Kind() MediaKind         { return KindTV }
func (s *Show) GetTitle() string        { return s.Name }
func (s *Show) GetPosterPath() string   { return s.PosterPath }
func (s *Show) GetBackdropPath() string { return s.BackdropPath }
func (s *Show) GetOverview() string     { return s.Overview }
func (s *Show) GetDate() string         { return s.FirstAirDate }
func (s *Show) GetVoteAverage() float64 { return s.VoteAverage }

// SeasonSummary returns "1 Season" / "N Seasons", or "" when unknown
func (s Show) SeasonSummary() string {
	switch {
	case s.NumberOfSeasons <= 0:
		return ""
	case s.NumberOfSeasons == 1:
		return "1 Season"
	default:
		return fmt.Sprintf("%d Seasons", s.NumberOfSeasons)
	}
}

// Year extracts the year from a YYYY-MM-DD date, or "" if absent
func Year(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return ""
}

// Page is a paginated catalog response
type Page[T any] struct {
	Page         int
	Results      []T
	TotalPages   int
	TotalResults int
}

// HasMore reports whether another page exists after this one
func (p Page[T]) HasMore() bool {
	return p.Page < p.TotalPages
}

// TimeWindow selects the trending period
type TimeWindow string

const (
	WindowDay  TimeWindow = "day"
	WindowWeek TimeWindow = "week"
)

// ParseTimeWindow parses "day" or "week"; empty defaults to day
func ParseTimeWindow(s string) (TimeWindow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "day":
		return WindowDay, nil
	case "week":
		return WindowWeek, nil
	default:
		return "", fmt.Errorf("unknown time window %q (want day or week)", s)
	}
}
