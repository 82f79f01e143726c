package catalog

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/mmcdole/marquee/internal/domain"
)

// HomeFeed holds the rows of the landing screen
type HomeFeed struct {
	TrendingMovies []*domain.Movie
	TrendingShows  []*domain.Show
	PopularMovies  []*domain.Movie
	PopularShows   []*domain.Show
}

// MovieDetails fetches the full record for one movie
func (s *Service) MovieDetails(ctx context.Context, id int) (*domain.Movie, error) {
	s.begin()
	defer s.finish()

	m, err := s.client.GetMovieDetails(ctx, id)
	if err != nil {
		s.fail("Could not load movie details", err, "id", id)
		return nil, err
	}
	return m, nil
}

// TVShowDetails fetches the full record for one series
func (s *Service) TVShowDetails(ctx context.Context, id int) (*domain.Show, error) {
	s.begin()
	defer s.finish()

	show, err := s.client.GetTVShowDetails(ctx, id)
	if err != nil {
		s.fail("Could not load TV show details", err, "id", id)
		return nil, err
	}
	return show, nil
}

// Details fetches the record for id of the given kind
func (s *Service) Details(ctx context.Context, kind domain.MediaKind, id int) (domain.CatalogItem, error) {
	switch kind {
	case domain.KindMovie:
		m, err := s.MovieDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		return m, nil
	case domain.KindTV:
		show, err := s.TVShowDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		return show, nil
	}
	return nil, fmt.Errorf("unknown media kind %q", string(kind))
}

// Genres returns the genre list for kind. Fetched once, then memoized.
func (s *Service) Genres(ctx context.Context, kind domain.MediaKind) ([]domain.Genre, error) {
	s.genreMu.Lock()
	defer s.genreMu.Unlock()

	if g, ok := s.genres[kind]; ok {
		return g, nil
	}

	var (
		genres []domain.Genre
		err    error
	)
	switch kind {
	case domain.KindMovie:
		genres, err = s.client.GetMovieGenres(ctx)
	case domain.KindTV:
		genres, err = s.client.GetTVGenres(ctx)
	default:
		return nil, fmt.Errorf("unknown media kind %q", string(kind))
	}
	if err != nil {
		s.logger.Error("failed to fetch genres", "kind", kind, "error", err)
		return nil, err
	}

	s.genres[kind] = genres
	return genres, nil
}

// GenreNames resolves genre ids to names, skipping unknown ids
func (s *Service) GenreNames(ctx context.Context, kind domain.MediaKind, ids []int) []string {
	genres, err := s.Genres(ctx, kind)
	if err != nil {
		return nil
	}
	byID := make(map[int]string, len(genres))
	for _, g := range genres {
		byID[g.ID] = g.Name
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Home fetches the landing rows concurrently. It does not touch the list
// state; the first error is recorded and returned.
func (s *Service) Home(ctx context.Context) (HomeFeed, error) {
	s.begin()
	defer s.finish()

	var feed HomeFeed
	p := pool.New().WithContext(ctx).WithFirstError()

	p.Go(func(ctx context.Context) error {
		page, err := s.client.GetTrendingMovies(ctx, domain.WindowDay, 1)
		feed.TrendingMovies = page.Results
		return err
	})
	p.Go(func(ctx context.Context) error {
		page, err := s.client.GetTrendingTVShows(ctx, domain.WindowDay, 1)
		feed.TrendingShows = page.Results
		return err
	})
	p.Go(func(ctx context.Context) error {
		page, err := s.client.GetPopularMovies(ctx, 1)
		feed.PopularMovies = page.Results
		return err
	})
	p.Go(func(ctx context.Context) error {
		page, err := s.client.GetPopularTVShows(ctx, 1)
		feed.PopularShows = page.Results
		return err
	})

	if err := p.Wait(); err != nil {
		s.fail("Could not load home feed", err)
		return feed, err
	}
	return feed, nil
}
