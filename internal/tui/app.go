package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/adapter/source/tmdb"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/collection"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/router"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// URLOpener opens a page in the system browser
type URLOpener interface {
	OpenURL(ctx context.Context, url string) error
}

// Options configures the TUI
type Options struct {
	Images      tmdb.Images
	Opener      URLOpener // Optional
	DefaultView string    // Route path opened at startup
}

// Model is the root bubbletea model
type Model struct {
	catalog     *catalog.Service
	collections *collection.Service
	images      tmdb.Images
	opener      URLOpener
	keys        KeyMap

	history *router.History
	list    itemList
	detail  domain.CatalogItem

	// Index into catalog.MovieLists / catalog.ShowLists
	movieList int
	showList  int

	searchInput textinput.Model
	searchKind  domain.MediaKind
	searching   bool
	searchRows  []row

	filterInput textinput.Model
	filtering   bool

	spinner spinner.Model
	loading bool
	status  string
	err     string

	width  int
	height int
}

// NewModel creates the root model
func NewModel(cat *catalog.Service, coll *collection.Service, opts Options) Model {
	si := textinput.New()
	si.Placeholder = "Search titles..."
	si.Prompt = "Search: "
	si.PromptStyle = styles.FilterPromptStyle
	si.CharLimit = 100

	fi := textinput.New()
	fi.Prompt = "/"
	fi.PromptStyle = styles.FilterPromptStyle
	fi.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	start := opts.DefaultView
	if start == "" {
		start = "/"
	}

	m := Model{
		catalog:     cat,
		collections: coll,
		images:      opts.Images,
		opener:      opts.Opener,
		keys:        DefaultKeyMap(),
		history:     router.NewHistory(start),
		searchInput: si,
		searchKind:  domain.KindMovie,
		filterInput: fi,
		spinner:     sp,
		width:       80,
		height:      24,
	}
	m, _ = m.enter(m.history.Current())
	return m
}

// Init starts the loads for the start screen
func (m Model) Init() tea.Cmd {
	_, cmd := m.enter(m.history.Current())
	return tea.Batch(m.spinner.Tick, cmd)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case HomeLoadedMsg:
		m.loading = false
		if m.route() == router.Home {
			var rows []row
			rows = append(rows, moviesToRows("Trending movies", msg.Feed.TrendingMovies)...)
			rows = append(rows, showsToRows("Trending TV", msg.Feed.TrendingShows)...)
			rows = append(rows, moviesToRows("Popular movies", msg.Feed.PopularMovies)...)
			rows = append(rows, showsToRows("Popular TV", msg.Feed.PopularShows)...)
			m.list.SetRows(rows)
		}
		return m, nil

	case ListLoadedMsg:
		m.loading = false
		m.applyListState(msg.Kind, msg.State)
		return m, nil

	case DetailsLoadedMsg:
		m.loading = false
		m.detail = msg.Item
		return m, nil

	case CollectionChangedMsg:
		m.status = collectionStatus(msg)
		m.refreshCollectionScreen()
		return m, nil

	case SharedMsg:
		if msg.OK {
			m.status = fmt.Sprintf("Shared %q", msg.Title)
		} else {
			m.status = fmt.Sprintf("Could not share %q", msg.Title)
		}
		return m, nil

	case ErrMsg:
		m.loading = false
		m.err = msg.Error()
		return m, nil
	}

	return m, nil
}

func (m Model) route() router.Name {
	return m.history.Current().Name
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Home):
		return m.navigate(router.PathFor(router.Home), true)
	case key.Matches(msg, m.keys.Movies):
		return m.navigate(router.PathFor(router.Movies), true)
	case key.Matches(msg, m.keys.TVShows):
		return m.navigate(router.PathFor(router.TVShows), true)
	case key.Matches(msg, m.keys.Search):
		return m.navigate(router.PathFor(router.Search), true)
	case key.Matches(msg, m.keys.Favorites):
		return m.navigate(router.PathFor(router.Favorites), true)
	case key.Matches(msg, m.keys.Saved):
		return m.navigate(router.PathFor(router.Saved), true)

	case key.Matches(msg, m.keys.Up):
		m.list.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.list.Move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.list.Move(-m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.list.Move(m.listHeight())

	case key.Matches(msg, m.keys.Enter):
		if m.isDetail() {
			return m, nil
		}
		if item, ok := m.list.Selected(); ok {
			return m.navigate(router.DetailPath(item.Kind(), item.GetID()), false)
		}

	case key.Matches(msg, m.keys.Back):
		if m.list.Query() != "" && !m.isDetail() {
			m.list.SetFilter("")
			return m, nil
		}
		if match, ok := m.history.Back(); ok {
			return m.enter(match)
		}

	case key.Matches(msg, m.keys.Filter):
		if !m.isDetail() {
			m.filtering = true
			m.filterInput.SetValue(m.list.Query())
			return m, m.filterInput.Focus()
		}

	case key.Matches(msg, m.keys.NextList):
		return m.nextList()

	case key.Matches(msg, m.keys.LoadMore):
		return m.loadMore()

	case key.Matches(msg, m.keys.Refresh):
		return m.enter(m.history.Current())

	case key.Matches(msg, m.keys.ToggleFavorite):
		if item, ok := m.target(); ok {
			return m, ToggleCmd(m.collections, domain.Favorites, item)
		}
	case key.Matches(msg, m.keys.ToggleSaved):
		if item, ok := m.target(); ok {
			return m, ToggleCmd(m.collections, domain.Saved, item)
		}
	case key.Matches(msg, m.keys.Share):
		if item, ok := m.target(); ok {
			return m, ShareCmd(m.collections, item)
		}
	case key.Matches(msg, m.keys.Open):
		if item, ok := m.target(); ok && m.opener != nil {
			if url := m.collections.PageURL(item); url != "" {
				return m, OpenURLCmd(m.opener, url)
			}
		}
	}

	// Keep the scroll offset in step with the cursor
	m.list.window(m.listHeight())
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case tea.KeyTab:
		m.searchKind = otherKind(m.searchKind)
		return m, nil
	case tea.KeyEnter:
		query := m.searchInput.Value()
		m.searching = false
		m.searchInput.Blur()
		if query == "" {
			return m, nil
		}
		m.loading = true
		m.err = ""
		req := catalog.Request{Kind: m.searchKind, List: catalog.ListSearch, Query: query}
		return m, FetchListCmd(m.catalog, req)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filterInput.Blur()
		m.list.SetFilter("")
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.list.SetFilter(m.filterInput.Value())
	return m, cmd
}

// navigate moves to path. Top-level screens replace the current entry;
// details push onto the back stack.
func (m Model) navigate(path string, topLevel bool) (tea.Model, tea.Cmd) {
	var match router.Match
	if topLevel {
		match = m.history.Replace(path)
	} else {
		match = m.history.Push(path)
	}
	return m.enter(match)
}

// enter prepares the screen for match and starts its loads
func (m Model) enter(match router.Match) (Model, tea.Cmd) {
	m.err = ""
	m.status = ""
	m.filtering = false
	m.list = itemList{}

	switch match.Name {
	case router.Home:
		m.loading = true
		return m, LoadHomeCmd(m.catalog)

	case router.Movies:
		m.loading = true
		return m, FetchListCmd(m.catalog, m.movieRequest())

	case router.TVShows:
		m.loading = true
		return m, FetchListCmd(m.catalog, m.showRequest())

	case router.Search:
		m.list.SetRows(m.searchRows)
		m.searching = true
		return m, m.searchInput.Focus()

	case router.Favorites, router.Saved:
		m.refreshCollectionScreen()
		return m, nil

	case router.MovieDetails, router.TVShowDetails:
		id, ok := match.ID()
		if !ok {
			m.err = "Invalid id in " + match.Path
			return m, nil
		}
		kind := domain.KindMovie
		if match.Name == router.TVShowDetails {
			kind = domain.KindTV
		}
		m.detail = nil
		m.loading = true
		return m, LoadDetailsCmd(m.catalog, kind, id)

	default:
		m.err = "Page not found: " + match.Path
		return m, nil
	}
}

func (m Model) movieRequest() catalog.Request {
	return catalog.Request{Kind: domain.KindMovie, List: catalog.MovieLists[m.movieList]}
}

func (m Model) showRequest() catalog.Request {
	return catalog.Request{Kind: domain.KindTV, List: catalog.ShowLists[m.showList]}
}

func (m Model) nextList() (tea.Model, tea.Cmd) {
	switch m.route() {
	case router.Movies:
		m.movieList = (m.movieList + 1) % len(catalog.MovieLists)
		m.loading = true
		return m, FetchListCmd(m.catalog, m.movieRequest())
	case router.TVShows:
		m.showList = (m.showList + 1) % len(catalog.ShowLists)
		m.loading = true
		return m, FetchListCmd(m.catalog, m.showRequest())
	case router.Search:
		m.searchKind = otherKind(m.searchKind)
		m.searching = true
		return m, m.searchInput.Focus()
	}
	return m, nil
}

func (m Model) loadMore() (tea.Model, tea.Cmd) {
	kind, ok := m.listKind()
	if !ok || !m.catalog.HasMore() {
		return m, nil
	}
	m.loading = true
	return m, LoadMoreCmd(m.catalog, kind)
}

// listKind is the media kind of the paged list on screen
func (m Model) listKind() (domain.MediaKind, bool) {
	switch m.route() {
	case router.Movies:
		return domain.KindMovie, true
	case router.TVShows:
		return domain.KindTV, true
	case router.Search:
		return m.searchKind, true
	}
	return "", false
}

func (m *Model) applyListState(kind domain.MediaKind, st catalog.State) {
	var rows []row
	if kind == domain.KindTV {
		rows = showsToRows("", st.Shows)
	} else {
		rows = moviesToRows("", st.Movies)
	}

	if m.route() == router.Search {
		m.searchRows = rows
	}
	if current, ok := m.listKind(); ok && current == kind {
		m.list.SetRows(rows)
	}
}

func (m *Model) refreshCollectionScreen() {
	switch m.route() {
	case router.Favorites:
		m.list.SetRows(storedToRows(m.collections.Favorites()))
	case router.Saved:
		m.list.SetRows(storedToRows(m.collections.Saved()))
	}
}

func (m Model) isDetail() bool {
	r := m.route()
	return r == router.MovieDetails || r == router.TVShowDetails
}

// target is the item an action applies to: the open details or the selection
func (m Model) target() (domain.CatalogItem, bool) {
	if m.isDetail() {
		return m.detail, m.detail != nil
	}
	return m.list.Selected()
}

func (m Model) listHeight() int {
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	return h
}

func otherKind(k domain.MediaKind) domain.MediaKind {
	if k == domain.KindTV {
		return domain.KindMovie
	}
	return domain.KindTV
}

func collectionStatus(msg CollectionChangedMsg) string {
	if !msg.OK {
		return fmt.Sprintf("Could not update %s", msg.Name)
	}
	if msg.Added {
		return fmt.Sprintf("Added %q to %s", msg.Title, msg.Name)
	}
	return fmt.Sprintf("Removed %q from %s", msg.Title, msg.Name)
}
