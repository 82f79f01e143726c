package domain

import "context"

// MovieCatalog provides movie browsing (implemented by the TMDB client)
type MovieCatalog interface {
	GetPopularMovies(ctx context.Context, page int) (Page[*Movie], error)
	GetNowPlayingMovies(ctx context.Context, page int) (Page[*Movie], error)
	GetUpcomingMovies(ctx context.Context, page int) (Page[*Movie], error)
	GetTopRatedMovies(ctx context.Context, page int) (Page[*Movie], error)
	GetTrendingMovies(ctx context.Context, window TimeWindow, page int) (Page[*Movie], error)
	SearchMovies(ctx context.Context, query string, page int) (Page[*Movie], error)
	GetMovieDetails(ctx context.Context, id int) (*Movie, error)
	GetMovieGenres(ctx context.Context) ([]Genre, error)
}

// ShowCatalog provides TV show browsing
type ShowCatalog interface {
	GetPopularTVShows(ctx context.Context, page int) (Page[*Show], error)
	GetAiringTodayTVShows(ctx context.Context, page int) (Page[*Show], error)
	GetOnTheAirTVShows(ctx context.Context, page int) (Page[*Show], error)
	GetTopRatedTVShows(ctx context.Context, page int) (Page[*Show], error)
	GetTrendingTVShows(ctx context.Context, window TimeWindow, page int) (Page[*Show], error)
	SearchTVShows(ctx context.Context, query string, page int) (Page[*Show], error)
	GetTVShowDetails(ctx context.Context, id int) (*Show, error)
	GetTVGenres(ctx context.Context) ([]Genre, error)
}

// CatalogClient combines everything the remote media catalog offers
type CatalogClient interface {
	MovieCatalog
	ShowCatalog
}

// KeyValueStore is the synchronous backing store for collections.
// Get reports ok=false when the key is absent.
type KeyValueStore interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
	Close() error
}

// Sharer hands a payload to a native share capability
type Sharer interface {
	Available() bool
	Share(ctx context.Context, payload SharePayload) error
}

// Clipboard writes text to the system clipboard
type Clipboard interface {
	Available() bool
	WriteText(text string) error
}

// CollectionObserver is notified after a collection mirror refresh
type CollectionObserver func(name CollectionName, items []StoredItem)
