package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/marquee/internal/domain"
)

// MockCatalog implements domain.CatalogClient. Every list endpoint
// delegates to MoviesFunc or ShowsFunc with the endpoint name.
type MockCatalog struct {
	MoviesFunc func(endpoint string, arg string, page int) (domain.Page[*domain.Movie], error)
	ShowsFunc  func(endpoint string, arg string, page int) (domain.Page[*domain.Show], error)
	MovieFunc  func(id int) (*domain.Movie, error)
	ShowFunc   func(id int) (*domain.Show, error)
	GenresFunc func(kind domain.MediaKind) ([]domain.Genre, error)
	GenreCalls atomic.Int32

	mu         sync.Mutex
	MovieCalls []string
}

func (m *MockCatalog) movies(endpoint, arg string, page int) (domain.Page[*domain.Movie], error) {
	m.mu.Lock()
	m.MovieCalls = append(m.MovieCalls, endpoint)
	m.mu.Unlock()
	if m.MoviesFunc == nil {
		return domain.Page[*domain.Movie]{Page: page, TotalPages: 1}, nil
	}
	return m.MoviesFunc(endpoint, arg, page)
}

func (m *MockCatalog) shows(endpoint, arg string, page int) (domain.Page[*domain.Show], error) {
	if m.ShowsFunc == nil {
		return domain.Page[*domain.Show]{Page: page, TotalPages: 1}, nil
	}
	return m.ShowsFunc(endpoint, arg, page)
}

func (m *MockCatalog) GetPopularMovies(_ context.Context, page int) (domain.Page[*domain.Movie], error) {
	return m.movies("popular", "", page)
}
func (m *MockCatalog) GetNowPlayingMovies(_ context.Context, page int) (domain.Page[*domain.Movie], error) {
	return m.movies("now_playing", "", page)
}
func (m *MockCatalog) GetUpcomingMovies(_ context.Context, page int) (domain.Page[*domain.Movie], error) {
	return m.movies("upcoming", "", page)
}
func (m *MockCatalog) GetTopRatedMovies(_ context.Context, page int) (domain.Page[*domain.Movie], error) {
	return m.movies("top_rated", "", page)
}
func (m *MockCatalog) GetTrendingMovies(_ context.Context, w domain.TimeWindow, page int) (domain.Page[*domain.Movie], error) {
	return m.movies("trending", string(w), page)
}
func (m *MockCatalog) SearchMovies(_ context.Context, q string, page int) (domain.Page[*domain.Movie], error) {
	return m.movies("search", q, page)
}
func (m *MockCatalog) GetMovieDetails(_ context.Context, id int) (*domain.Movie, error) {
	if m.MovieFunc == nil {
		return &domain.Movie{ID: id}, nil
	}
	return m.MovieFunc(id)
}
func (m *MockCatalog) GetMovieGenres(_ context.Context) ([]domain.Genre, error) {
	m.GenreCalls.Add(1)
	if m.GenresFunc == nil {
		return nil, nil
	}
	return m.GenresFunc(domain.KindMovie)
}
func (m *MockCatalog) GetPopularTVShows(_ context.Context, page int) (domain.Page[*domain.Show], error) {
	return m.shows("popular", "", page)
}
func (m *MockCatalog) GetAiringTodayTVShows(_ context.Context, page int) (domain.Page[*domain.Show], error) {
	return m.shows("airing_today", "", page)
}
func (m *MockCatalog) GetOnTheAirTVShows(_ context.Context, page int) (domain.Page[*domain.Show], error) {
	return m.shows("on_the_air", "", page)
}
func (m *MockCatalog) GetTopRatedTVShows(_ context.Context, page int) (domain.Page[*domain.Show], error) {
	return m.shows("top_rated", "", page)
}
func (m *MockCatalog) GetTrendingTVShows(_ context.Context, w domain.TimeWindow, page int) (domain.Page[*domain.Show], error) {
	return m.shows("trending", string(w), page)
}
func (m *MockCatalog) SearchTVShows(_ context.Context, q string, page int) (domain.Page[*domain.Show], error) {
	return m.shows("search", q, page)
}
func (m *MockCatalog) GetTVShowDetails(_ context.Context, id int) (*domain.Show, error) {
	if m.ShowFunc == nil {
		return &domain.Show{ID: id}, nil
	}
	return m.ShowFunc(id)
}
func (m *MockCatalog) GetTVGenres(_ context.Context) ([]domain.Genre, error) {
	m.GenreCalls.Add(1)
	if m.GenresFunc == nil {
		return nil, nil
	}
	return m.GenresFunc(domain.KindTV)
}

func moviePage(page, total int, ids ...int) domain.Page[*domain.Movie] {
	results := make([]*domain.Movie, len(ids))
	for i, id := range ids {
		results[i] = &domain.Movie{ID: id}
	}
	return domain.Page[*domain.Movie]{Page: page, TotalPages: total, Results: results}
}

func showPage(page, total int, ids ...int) domain.Page[*domain.Show] {
	results := make([]*domain.Show, len(ids))
	for i, id := range ids {
		results[i] = &domain.Show{ID: id}
	}
	return domain.Page[*domain.Show]{Page: page, TotalPages: total, Results: results}
}

func movieIDs(ms []*domain.Movie) []int {
	ids := make([]int, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	return ids
}

func TestService_InitialState(t *testing.T) {
	svc := NewService(&MockCatalog{}, nil)
	st := svc.Snapshot()

	assert.Empty(t, st.Movies)
	assert.Empty(t, st.Shows)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Err)
	assert.Equal(t, 1, st.CurrentPage)
	assert.Equal(t, 0, st.TotalPages)
}

func TestService_FetchReplacesListAndCursor(t *testing.T) {
	mock := &MockCatalog{
		MoviesFunc: func(endpoint, _ string, page int) (domain.Page[*domain.Movie], error) {
			if endpoint == "popular" {
				return moviePage(page, 10, 1, 2, 3), nil
			}
			return moviePage(page, 4, 7), nil
		},
	}
	svc := NewService(mock, nil)
	ctx := context.Background()

	require.NoError(t, svc.FetchPopularMovies(ctx, 1))
	st := svc.Snapshot()
	assert.Equal(t, []int{1, 2, 3}, movieIDs(st.Movies))
	assert.Equal(t, 1, st.CurrentPage)
	assert.Equal(t, 10, st.TotalPages)

	require.NoError(t, svc.FetchUpcomingMovies(ctx, 2))
	st = svc.Snapshot()
	assert.Equal(t, []int{7}, movieIDs(st.Movies))
	assert.Equal(t, 2, st.CurrentPage)
	assert.Equal(t, 4, st.TotalPages)
	assert.False(t, st.Loading)
}

func TestService_FetchFailureSetsMessage(t *testing.T) {
	mock := &MockCatalog{
		MoviesFunc: func(string, string, int) (domain.Page[*domain.Movie], error) {
			return domain.Page[*domain.Movie]{}, domain.ErrServerOffline
		},
	}
	svc := NewService(mock, nil)

	err := svc.FetchTopRatedMovies(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrServerOffline)
	st := svc.Snapshot()
	assert.Equal(t, "Could not load top rated movies", st.Err)
	assert.False(t, st.Loading)
}

func TestService_SuccessClearsPreviousError(t *testing.T) {
	fail := true
	mock := &MockCatalog{
		ShowsFunc: func(_ string, _ string, page int) (domain.Page[*domain.Show], error) {
			if fail {
				return domain.Page[*domain.Show]{}, errors.New("boom")
			}
			return showPage(page, 1, 5), nil
		},
	}
	svc := NewService(mock, nil)
	ctx := context.Background()

	_ = svc.FetchPopularTVShows(ctx, 1)
	assert.NotEmpty(t, svc.Snapshot().Err)

	fail = false
	require.NoError(t, svc.FetchPopularTVShows(ctx, 1))
	assert.Empty(t, svc.Snapshot().Err)
}

func TestService_LoadingIsSetDuringFetch(t *testing.T) {
	var svc *Service
	var sawLoading bool
	mock := &MockCatalog{
		MoviesFunc: func(_ string, _ string, page int) (domain.Page[*domain.Movie], error) {
			sawLoading = svc.Snapshot().Loading
			return moviePage(page, 1), nil
		},
	}
	svc = NewService(mock, nil)

	require.NoError(t, svc.FetchNowPlayingMovies(context.Background(), 1))
	assert.True(t, sawLoading)
	assert.False(t, svc.Snapshot().Loading)
}

func TestService_SearchAndTrendingPassArguments(t *testing.T) {
	var gotMovie, gotShow string
	mock := &MockCatalog{
		MoviesFunc: func(endpoint, arg string, page int) (domain.Page[*domain.Movie], error) {
			gotMovie = endpoint + ":" + arg
			return moviePage(page, 1), nil
		},
		ShowsFunc: func(endpoint, arg string, page int) (domain.Page[*domain.Show], error) {
			gotShow = endpoint + ":" + arg
			return showPage(page, 1), nil
		},
	}
	svc := NewService(mock, nil)
	ctx := context.Background()

	require.NoError(t, svc.SearchMovies(ctx, "alien", 1))
	assert.Equal(t, "search:alien", gotMovie)

	require.NoError(t, svc.FetchTrendingTVShows(ctx, domain.WindowWeek, 1))
	assert.Equal(t, "trending:week", gotShow)

	require.NoError(t, svc.SearchTVShows(ctx, "office", 1))
	assert.Equal(t, "search:office", gotShow)
}

func TestService_LoadMoreAppendsNextPage(t *testing.T) {
	mock := &MockCatalog{
		MoviesFunc: func(_ string, _ string, page int) (domain.Page[*domain.Movie], error) {
			return moviePage(page, 3, page*10, page*10+1), nil
		},
	}
	svc := NewService(mock, nil)
	ctx := context.Background()

	require.NoError(t, svc.FetchPopularMovies(ctx, 1))
	require.NoError(t, svc.LoadMoreMovies(ctx))

	st := svc.Snapshot()
	assert.Equal(t, []int{10, 11, 20, 21}, movieIDs(st.Movies))
	assert.Equal(t, 2, st.CurrentPage)
}

func TestService_LoadMoreAtLastPageIsNoOp(t *testing.T) {
	var calls atomic.Int32
	mock := &MockCatalog{
		MoviesFunc: func(_ string, _ string, page int) (domain.Page[*domain.Movie], error) {
			calls.Add(1)
			return moviePage(page, 2, page), nil
		},
	}
	svc := NewService(mock, nil)
	ctx := context.Background()

	require.NoError(t, svc.FetchPopularMovies(ctx, 2))
	before := svc.Snapshot()

	require.NoError(t, svc.LoadMoreMovies(ctx))
	require.NoError(t, svc.LoadMoreTVShows(ctx))

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, before, svc.Snapshot())
}

func TestService_LoadMoreUsesLastRequestedList(t *testing.T) {
	mock := &MockCatalog{
		MoviesFunc: func(endpoint, arg string, page int) (domain.Page[*domain.Movie], error) {
			return moviePage(page, 5, page), nil
		},
	}
	svc := NewService(mock, nil)
	ctx := context.Background()

	require.NoError(t, svc.SearchMovies(ctx, "matrix", 1))
	require.NoError(t, svc.LoadMoreMovies(ctx))

	assert.Equal(t, []string{"search", "search"}, mock.MovieCalls)
	assert.Equal(t, Request{Kind: domain.KindMovie, List: ListSearch, Query: "matrix"}, svc.LastRequest(domain.KindMovie))
}

func TestService_LoadMoreDefaultsToPopular(t *testing.T) {
	var endpoints []string
	mock := &MockCatalog{
		ShowsFunc: func(endpoint, _ string, page int) (domain.Page[*domain.Show], error) {
			endpoints = append(endpoints, endpoint)
			return showPage(page, 3, page), nil
		},
		MoviesFunc: func(_ string, _ string, page int) (domain.Page[*domain.Movie], error) {
			return moviePage(page, 3), nil
		},
	}
	svc := NewService(mock, nil)
	ctx := context.Background()

	// The cursor is shared, so a movie fetch opens up a TV load-more
	require.NoError(t, svc.FetchPopularMovies(ctx, 1))
	require.NoError(t, svc.LoadMoreTVShows(ctx))

	assert.Equal(t, []string{"popular"}, endpoints)
	st := svc.Snapshot()
	require.Len(t, st.Shows, 1)
	assert.Equal(t, 2, st.Shows[0].ID)
}

func TestService_UnknownListForKind(t *testing.T) {
	svc := NewService(&MockCatalog{}, nil)

	err := svc.FetchMovies(context.Background(), Request{List: ListAiringToday}, 1)
	assert.Error(t, err)

	err = svc.FetchShows(context.Background(), Request{List: ListUpcoming}, 1)
	assert.Error(t, err)
}

func TestService_SnapshotIsCopy(t *testing.T) {
	mock := &MockCatalog{
		MoviesFunc: func(_ string, _ string, page int) (domain.Page[*domain.Movie], error) {
			return moviePage(page, 1, 1, 2), nil
		},
	}
	svc := NewService(mock, nil)
	require.NoError(t, svc.FetchPopularMovies(context.Background(), 1))

	st := svc.Snapshot()
	st.Movies[0] = nil

	assert.NotNil(t, svc.Snapshot().Movies[0])
}

func TestService_Details(t *testing.T) {
	mock := &MockCatalog{
		MovieFunc: func(id int) (*domain.Movie, error) {
			return &domain.Movie{ID: id, Title: "The Matrix"}, nil
		},
		ShowFunc: func(id int) (*domain.Show, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(mock, nil)
	ctx := context.Background()

	m, err := svc.MovieDetails(ctx, 603)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", m.Title)

	item, err := svc.Details(ctx, domain.KindMovie, 603)
	require.NoError(t, err)
	assert.Equal(t, domain.KindMovie, item.Kind())

	_, err = svc.TVShowDetails(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Could not load TV show details", svc.Snapshot().Err)

	item, err = svc.Details(ctx, domain.KindTV, 1)
	assert.Error(t, err)
	assert.Nil(t, item)
}

func TestService_GenresMemoized(t *testing.T) {
	mock := &MockCatalog{
		GenresFunc: func(kind domain.MediaKind) ([]domain.Genre, error) {
			if kind == domain.KindMovie {
				return []domain.Genre{{ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}}, nil
			}
			return []domain.Genre{{ID: 35, Name: "Comedy"}}, nil
		},
	}
	svc := NewService(mock, nil)
	ctx := context.Background()

	g, err := svc.Genres(ctx, domain.KindMovie)
	require.NoError(t, err)
	assert.Len(t, g, 2)

	_, err = svc.Genres(ctx, domain.KindMovie)
	require.NoError(t, err)
	assert.Equal(t, int32(1), mock.GenreCalls.Load())

	assert.Equal(t, []string{"Drama", "Action"}, svc.GenreNames(ctx, domain.KindMovie, []int{18, 99, 28}))
	assert.Equal(t, []string{"Comedy"}, svc.GenreNames(ctx, domain.KindTV, []int{35}))
	assert.Equal(t, int32(2), mock.GenreCalls.Load())
}

func TestService_GenresErrorNotMemoized(t *testing.T) {
	fail := true
	mock := &MockCatalog{
		GenresFunc: func(domain.MediaKind) ([]domain.Genre, error) {
			if fail {
				return nil, domain.ErrRateLimited
			}
			return []domain.Genre{{ID: 1, Name: "X"}}, nil
		},
	}
	svc := NewService(mock, nil)
	ctx := context.Background()

	_, err := svc.Genres(ctx, domain.KindTV)
	assert.ErrorIs(t, err, domain.ErrRateLimited)

	fail = false
	g, err := svc.Genres(ctx, domain.KindTV)
	require.NoError(t, err)
	assert.Len(t, g, 1)
}

func TestService_Home(t *testing.T) {
	mock := &MockCatalog{
		MoviesFunc: func(endpoint, _ string, page int) (domain.Page[*domain.Movie], error) {
			if endpoint == "trending" {
				return moviePage(1, 1, 1), nil
			}
			return moviePage(1, 1, 2, 3), nil
		},
		ShowsFunc: func(endpoint, _ string, page int) (domain.Page[*domain.Show], error) {
			if endpoint == "trending" {
				return showPage(1, 1, 4), nil
			}
			return showPage(1, 1, 5, 6, 7), nil
		},
	}
	svc := NewService(mock, nil)

	feed, err := svc.Home(context.Background())
	require.NoError(t, err)

	assert.Len(t, feed.TrendingMovies, 1)
	assert.Len(t, feed.PopularMovies, 2)
	assert.Len(t, feed.TrendingShows, 1)
	assert.Len(t, feed.PopularShows, 3)

	st := svc.Snapshot()
	assert.Empty(t, st.Movies, "home does not replace the list state")
	assert.False(t, st.Loading)
}

func TestService_HomeReturnsError(t *testing.T) {
	mock := &MockCatalog{
		ShowsFunc: func(endpoint, _ string, page int) (domain.Page[*domain.Show], error) {
			return domain.Page[*domain.Show]{}, domain.ErrAuthFailed
		},
	}
	svc := NewService(mock, nil)

	_, err := svc.Home(context.Background())

	assert.ErrorIs(t, err, domain.ErrAuthFailed)
	assert.Equal(t, "Could not load home feed", svc.Snapshot().Err)
}

func TestParseList(t *testing.T) {
	l, err := ParseList("now_playing")
	require.NoError(t, err)
	assert.Equal(t, ListNowPlaying, l)

	l, err = ParseList("Top-Rated")
	require.NoError(t, err)
	assert.Equal(t, ListTopRated, l)

	_, err = ParseList("latest")
	assert.Error(t, err)
}

func TestRequest_Label(t *testing.T) {
	assert.Equal(t, "popular movies", Request{Kind: domain.KindMovie, List: ListPopular}.Label())
	assert.Equal(t, "airing today TV shows", Request{Kind: domain.KindTV, List: ListAiringToday}.Label())
	assert.Equal(t, `TV shows matching "office"`, Request{Kind: domain.KindTV, List: ListSearch, Query: "office"}.Label())
	assert.Equal(t, "trending movies (week)", Request{Kind: domain.KindMovie, List: ListTrending, Window: domain.WindowWeek}.Label())
}
