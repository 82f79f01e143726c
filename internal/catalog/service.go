package catalog

import (
	"log/slog"
	"sync"

	"github.com/mmcdole/marquee/internal/domain"
)

// State is the observable catalog view state.
// Movies and Shows share one pagination cursor: it always describes the
// most recent fetch of either kind.
type State struct {
	Movies      []*domain.Movie
	Shows       []*domain.Show
	Loading     bool
	Err         string // Empty when the last operation succeeded
	CurrentPage int
	TotalPages  int
}

// Service is the catalog view-model. It wraps the remote client and keeps
// the most recently fetched lists. Overlapping fetches are not cancelled;
// the last one to finish wins.
type Service struct {
	client domain.CatalogClient
	logger *slog.Logger

	mu        sync.Mutex
	state     State
	lastMovie Request
	lastShow  Request

	genreMu sync.Mutex
	genres  map[domain.MediaKind][]domain.Genre
}

// NewService creates a new catalog view-model.
func NewService(client domain.CatalogClient, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client:    client,
		logger:    logger,
		state:     State{CurrentPage: 1},
		lastMovie: Request{Kind: domain.KindMovie, List: ListPopular},
		lastShow:  Request{Kind: domain.KindTV, List: ListPopular},
		genres:    make(map[domain.MediaKind][]domain.Genre, 2),
	}
}

// Snapshot returns a copy of the current state
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Movies = append([]*domain.Movie(nil), s.state.Movies...)
	st.Shows = append([]*domain.Show(nil), s.state.Shows...)
	return st
}

// HasMore reports whether the shared cursor has another page
func (s *Service) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentPage < s.state.TotalPages
}

// LastRequest returns the list the next LoadMore call for kind will page through
func (s *Service) LastRequest(kind domain.MediaKind) Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kind == domain.KindTV {
		return s.lastShow
	}
	return s.lastMovie
}

func (s *Service) begin() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
}

func (s *Service) finish() {
	s.mu.Lock()
	s.state.Loading = false
	s.mu.Unlock()
}

func (s *Service) fail(msg string, err error, args ...any) {
	s.mu.Lock()
	s.state.Err = msg
	s.mu.Unlock()
	s.logger.Error(msg, append(args, "error", err)...)
}
