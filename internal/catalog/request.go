package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
)

// List names a remote catalog listing
type List string

const (
	ListPopular     List = "popular"
	ListNowPlaying  List = "now-playing"
	ListUpcoming    List = "upcoming"
	ListTopRated    List = "top-rated"
	ListAiringToday List = "airing-today"
	ListOnTheAir    List = "on-the-air"
	ListTrending    List = "trending"
	ListSearch      List = "search"
)

// MovieLists are the movie listings in display order
var MovieLists = []List{ListPopular, ListNowPlaying, ListUpcoming, ListTopRated}

// ShowLists are the TV listings in display order
var ShowLists = []List{ListPopular, ListAiringToday, ListOnTheAir, ListTopRated}

// ParseList parses a listing name, accepting underscores for dashes
func ParseList(s string) (List, error) {
	l := List(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	switch l {
	case ListPopular, ListNowPlaying, ListUpcoming, ListTopRated,
		ListAiringToday, ListOnTheAir, ListTrending, ListSearch:
		return l, nil
	}
	return "", fmt.Errorf("unknown list %q", s)
}

// Request identifies the list a fetch came from, so the next page can be
// requested from the same source.
type Request struct {
	Kind   domain.MediaKind
	List   List
	Query  string            // ListSearch only
	Window domain.TimeWindow // ListTrending only
}

// Label is a short human-readable description used in messages
func (r Request) Label() string {
	noun := "movies"
	if r.Kind == domain.KindTV {
		noun = "TV shows"
	}
	switch r.List {
	case ListSearch:
		return fmt.Sprintf("%s matching %q", noun, r.Query)
	case ListTrending:
		return fmt.Sprintf("trending %s (%s)", noun, r.Window)
	default:
		return fmt.Sprintf("%s %s", strings.ReplaceAll(string(r.List), "-", " "), noun)
	}
}

type pageFunc[T any] func(ctx context.Context, page int) (domain.Page[T], error)

func movieSource(c domain.MovieCatalog, r Request) (pageFunc[*domain.Movie], error) {
	switch r.List {
	case ListPopular:
		return c.GetPopularMovies, nil
	case ListNowPlaying:
		return c.GetNowPlayingMovies, nil
	case ListUpcoming:
		return c.GetUpcomingMovies, nil
	case ListTopRated:
		return c.GetTopRatedMovies, nil
	case ListTrending:
		return func(ctx context.Context, page int) (domain.Page[*domain.Movie], error) {
			return c.GetTrendingMovies(ctx, r.Window, page)
		}, nil
	case ListSearch:
		return func(ctx context.Context, page int) (domain.Page[*domain.Movie], error) {
			return c.SearchMovies(ctx, r.Query, page)
		}, nil
	}
	return nil, fmt.Errorf("list %q is not available for movies", r.List)
}

func showSource(c domain.ShowCatalog, r Request) (pageFunc[*domain.Show], error) {
	switch r.List {
	case ListPopular:
		return c.GetPopularTVShows, nil
	case ListAiringToday:
		return c.GetAiringTodayTVShows, nil
	case ListOnTheAir:
		return c.GetOnTheAirTVShows, nil
	case ListTopRated:
		return c.GetTopRatedTVShows, nil
	case ListTrending:
		return func(ctx context.Context, page int) (domain.Page[*domain.Show], error) {
			return c.GetTrendingTVShows(ctx, r.Window, page)
		}, nil
	case ListSearch:
		return func(ctx context.Context, page int) (domain.Page[*domain.Show], error) {
			return c.SearchTVShows(ctx, r.Query, page)
		}, nil
	}
	return nil, fmt.Errorf("list %q is not available for TV shows", r.List)
}
