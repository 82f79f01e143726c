package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/mmcdole/marquee/internal/domain"
)

const (
	// DefaultBaseURL is the TMDB v3 API root
	DefaultBaseURL = "https://api.themoviedb.org/3"

	defaultTimeout = 30 * time.Second
	defaultBurst   = 4
)

// Options configures a Client
type Options struct {
	BaseURL           string
	AccessToken       string
	Language          string  // Optional, e.g. "en-US"
	RequestsPerSecond float64 // <= 0 disables pacing
	HTTPClient        *http.Client
}

// Client implements domain.CatalogClient against the TMDB v3 API
type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

var _ domain.CatalogClient = (*Client)(nil)

// NewClient creates a new TMDB API client.
// The access token is sent as a bearer token on every request.
func NewClient(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	base := http.DefaultTransport
	timeout := defaultTimeout
	if opts.HTTPClient != nil {
		if opts.HTTPClient.Transport != nil {
			base = opts.HTTPClient.Transport
		}
		if opts.HTTPClient.Timeout > 0 {
			timeout = opts.HTTPClient.Timeout
		}
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: opts.Language,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.AccessToken}),
				Base:   base,
			},
		},
		limiter: rate.NewLimiter(limit, defaultBurst),
		logger:  logger,
	}
}

// doRequest performs an authenticated GET against the TMDB API and decodes
// the JSON body into out. Failures are never retried.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	if c.language != "" {
		query.Set("language", c.language)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("tmdb request", "path", path, "query", query.Encode())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Error("tmdb request failed", "path", path, "error", err)
		return domain.ErrServerOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return domain.ErrAuthFailed
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	case http.StatusTooManyRequests:
		c.logger.Warn("tmdb rate limit hit", "path", path)
		return domain.ErrRateLimited
	default:
		c.logger.Error("tmdb request error", "status", resp.StatusCode, "path", path, "body", string(body))
		return statusError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func statusError(code int, body []byte) error {
	var apiErr ErrorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.StatusMessage != "" {
		return fmt.Errorf("unexpected status code: %d: %s", code, apiErr.StatusMessage)
	}
	return fmt.Errorf("unexpected status code: %d", code)
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	return q
}

func searchQuery(query string, page int) url.Values {
	q := pageQuery(page)
	q.Set("query", query)
	return q
}

func (c *Client) moviePage(ctx context.Context, path string, query url.Values) (domain.Page[*domain.Movie], error) {
	var resp ListResponse[MovieResult]
	if err := c.doRequest(ctx, path, query, &resp); err != nil {
		return domain.Page[*domain.Movie]{}, err
	}
	return mapMoviePage(resp), nil
}

func (c *Client) showPage(ctx context.Context, path string, query url.Values) (domain.Page[*domain.Show], error) {
	var resp ListResponse[ShowResult]
	if err := c.doRequest(ctx, path, query, &resp); err != nil {
		return domain.Page[*domain.Show]{}, err
	}
	return mapShowPage(resp), nil
}

func (c *Client) genres(ctx context.Context, path string) ([]domain.Genre, error) {
	var resp GenreListResponse
	if err := c.doRequest(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	genres := MapGenres(resp.Genres)
	if genres == nil {
		genres = []domain.Genre{}
	}
	return genres, nil
}

// Movies

func (c *Client) GetPopularMovies(ctx context.Context, page int) (domain.Page[*domain.Movie], error) {
	return c.moviePage(ctx, "/movie/popular", pageQuery(page))
}

func (c *Client) GetNowPlayingMovies(ctx context.Context, page int) (domain.Page[*domain.Movie], error) {
	return c.moviePage(ctx, "/movie/now_playing", pageQuery(page))
}

func (c *Client) GetUpcomingMovies(ctx context.Context, page int) (domain.Page[*domain.Movie], error) {
	return c.moviePage(ctx, "/movie/upcoming", pageQuery(page))
}

func (c *Client) GetTopRatedMovies(ctx context.Context, page int) (domain.Page[*domain.Movie], error) {
	return c.moviePage(ctx, "/movie/top_rated", pageQuery(page))
}

// GetTrendingMovies returns movies trending over the given window
func (c *Client) GetTrendingMovies(ctx context.Context, window domain.TimeWindow, page int) (domain.Page[*domain.Movie], error) {
	return c.moviePage(ctx, "/trending/movie/"+string(windowOrDefault(window)), pageQuery(page))
}

// SearchMovies runs a title search; the query is URL-encoded
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (domain.Page[*domain.Movie], error) {
	return c.moviePage(ctx, "/search/movie", searchQuery(query, page))
}

// GetMovieDetails returns the full record for one movie
func (c *Client) GetMovieDetails(ctx context.Context, id int) (*domain.Movie, error) {
	var resp MovieResult
	if err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return MapMovie(resp), nil
}

func (c *Client) GetMovieGenres(ctx context.Context) ([]domain.Genre, error) {
	return c.genres(ctx, "/genre/movie/list")
}

// TV

func (c *Client) GetPopularTVShows(ctx context.Context, page int) (domain.Page[*domain.Show], error) {
	return c.showPage(ctx, "/tv/popular", pageQuery(page))
}

func (c *Client) GetAiringTodayTVShows(ctx context.Context, page int) (domain.Page[*domain.Show], error) {
	return c.showPage(ctx, "/tv/airing_today", pageQuery(page))
}

func (c *Client) GetOnTheAirTVShows(ctx context.Context, page int) (domain.Page[*domain.Show], error) {
	return c.showPage(ctx, "/tv/on_the_air", pageQuery(page))
}

func (c *Client) GetTopRatedTVShows(ctx context.Context, page int) (domain.Page[*domain.Show], error) {
	return c.showPage(ctx, "/tv/top_rated", pageQuery(page))
}

func (c *Client) GetTrendingTVShows(ctx context.Context, window domain.TimeWindow, page int) (domain.Page[*domain.Show], error) {
	return c.showPage(ctx, "/trending/tv/"+string(windowOrDefault(window)), pageQuery(page))
}

func (c *Client) SearchTVShows(ctx context.Context, query string, page int) (domain.Page[*domain.Show], error) {
	return c.showPage(ctx, "/search/tv", searchQuery(query, page))
}

// GetTVShowDetails returns the full record for one series
func (c *Client) GetTVShowDetails(ctx context.Context, id int) (*domain.Show, error) {
	var resp ShowResult
	if err := c.doRequest(ctx, fmt.Sprintf("/tv/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return MapShow(resp), nil
}

func (c *Client) GetTVGenres(ctx context.Context) ([]domain.Genre, error) {
	return c.genres(ctx, "/genre/tv/list")
}

// Details fetches the record for id of the given kind
func (c *Client) Details(ctx context.Context, kind domain.MediaKind, id int) (domain.CatalogItem, error) {
	switch kind {
	case domain.KindMovie:
		m, err := c.GetMovieDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		return m, nil
	case domain.KindTV:
		s, err := c.GetTVShowDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown media kind %q", string(kind))
	}
}

// Authenticate verifies the access token. Returns domain.ErrAuthFailed
// when TMDB rejects it.
func (c *Client) Authenticate(ctx context.Context) error {
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.doRequest(ctx, "/authentication", nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return domain.ErrAuthFailed
	}
	return nil
}

func windowOrDefault(w domain.TimeWindow) domain.TimeWindow {
	if w == "" {
		return domain.WindowDay
	}
	return w
}
