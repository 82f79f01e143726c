package catalog

import (
	"context"
	"fmt"

	"github.com/mmcdole/marquee/internal/domain"
)

// FetchMovies replaces the movie list with the requested page of req.
// Errors are recorded in State.Err and also returned.
func (s *Service) FetchMovies(ctx context.Context, req Request, page int) error {
	req.Kind = domain.KindMovie
	return s.loadMovies(ctx, req, page, false)
}

// FetchShows replaces the TV list with the requested page of req
func (s *Service) FetchShows(ctx context.Context, req Request, page int) error {
	req.Kind = domain.KindTV
	return s.loadShows(ctx, req, page, false)
}

// Fetch dispatches on req.Kind
func (s *Service) Fetch(ctx context.Context, req Request, page int) error {
	if req.Kind == domain.KindTV {
		return s.FetchShows(ctx, req, page)
	}
	return s.FetchMovies(ctx, req, page)
}

func (s *Service) FetchPopularMovies(ctx context.Context, page int) error {
	return s.FetchMovies(ctx, Request{List: ListPopular}, page)
}

func (s *Service) FetchNowPlayingMovies(ctx context.Context, page int) error {
	return s.FetchMovies(ctx, Request{List: ListNowPlaying}, page)
}

func (s *Service) FetchUpcomingMovies(ctx context.Context, page int) error {
	return s.FetchMovies(ctx, Request{List: ListUpcoming}, page)
}

func (s *Service) FetchTopRatedMovies(ctx context.Context, page int) error {
	return s.FetchMovies(ctx, Request{List: ListTopRated}, page)
}

func (s *Service) FetchTrendingMovies(ctx context.Context, window domain.TimeWindow, page int) error {
	return s.FetchMovies(ctx, Request{List: ListTrending, Window: window}, page)
}

func (s *Service) SearchMovies(ctx context.Context, query string, page int) error {
	return s.FetchMovies(ctx, Request{List: ListSearch, Query: query}, page)
}

func (s *Service) FetchPopularTVShows(ctx context.Context, page int) error {
	return s.FetchShows(ctx, Request{List: ListPopular}, page)
}

func (s *Service) FetchAiringTodayTVShows(ctx context.Context, page int) error {
	return s.FetchShows(ctx, Request{List: ListAiringToday}, page)
}

func (s *Service) FetchOnTheAirTVShows(ctx context.Context, page int) error {
	return s.FetchShows(ctx, Request{List: ListOnTheAir}, page)
}

func (s *Service) FetchTopRatedTVShows(ctx context.Context, page int) error {
	return s.FetchShows(ctx, Request{List: ListTopRated}, page)
}

func (s *Service) FetchTrendingTVShows(ctx context.Context, window domain.TimeWindow, page int) error {
	return s.FetchShows(ctx, Request{List: ListTrending, Window: window}, page)
}

func (s *Service) SearchTVShows(ctx context.Context, query string, page int) error {
	return s.FetchShows(ctx, Request{List: ListSearch, Query: query}, page)
}

// LoadMoreMovies appends the next page of the last requested movie list.
// No-op when the cursor is already on the last page.
func (s *Service) LoadMoreMovies(ctx context.Context) error {
	s.mu.Lock()
	if s.state.CurrentPage >= s.state.TotalPages {
		s.mu.Unlock()
		return nil
	}
	next := s.state.CurrentPage + 1
	req := s.lastMovie
	s.mu.Unlock()

	return s.loadMovies(ctx, req, next, true)
}

// LoadMoreTVShows appends the next page of the last requested TV list
func (s *Service) LoadMoreTVShows(ctx context.Context) error {
	s.mu.Lock()
	if s.state.CurrentPage >= s.state.TotalPages {
		s.mu.Unlock()
		return nil
	}
	next := s.state.CurrentPage + 1
	req := s.lastShow
	s.mu.Unlock()

	return s.loadShows(ctx, req, next, true)
}

func (s *Service) loadMovies(ctx context.Context, req Request, page int, appendResults bool) error {
	fetch, err := movieSource(s.client, req)
	if err != nil {
		return err
	}

	s.begin()
	defer s.finish()

	s.mu.Lock()
	s.lastMovie = req
	s.mu.Unlock()

	result, err := fetch(ctx, page)
	if err != nil {
		s.fail(fmt.Sprintf("Could not load %s", req.Label()), err, "page", page)
		return err
	}

	s.mu.Lock()
	if appendResults {
		s.state.Movies = append(s.state.Movies, result.Results...)
	} else {
		s.state.Movies = result.Results
	}
	s.state.CurrentPage = result.Page
	s.state.TotalPages = result.TotalPages
	s.mu.Unlock()

	s.logger.Debug("fetched movies", "list", req.List, "page", result.Page, "totalPages", result.TotalPages, "count", len(result.Results))
	return nil
}

func (s *Service) loadShows(ctx context.Context, req Request, page int, appendResults bool) error {
	fetch, err := showSource(s.client, req)
	if err != nil {
		return err
	}

	s.begin()
	defer s.finish()

	s.mu.Lock()
	s.lastShow = req
	s.mu.Unlock()

	result, err := fetch(ctx, page)
	if err != nil {
		s.fail(fmt.Sprintf("Could not load %s", req.Label()), err, "page", page)
		return err
	}

	s.mu.Lock()
	if appendResults {
		s.state.Shows = append(s.state.Shows, result.Results...)
	} else {
		s.state.Shows = result.Results
	}
	s.state.CurrentPage = result.Page
	s.state.TotalPages = result.TotalPages
	s.mu.Unlock()

	s.logger.Debug("fetched shows", "list", req.List, "page", result.Page, "totalPages", result.TotalPages, "count", len(result.Results))
	return nil
}
