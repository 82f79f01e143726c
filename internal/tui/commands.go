package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/collection"
	"github.com/mmcdole/marquee/internal/domain"
)

const requestTimeout = 30 * time.Second

// Command factories for async operations

// LoadHomeCmd fetches the landing rows
func LoadHomeCmd(svc *catalog.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		feed, err := svc.Home(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading home"}
		}
		return HomeLoadedMsg{Feed: feed}
	}
}

// FetchListCmd replaces the list for req.Kind with page 1 of req
func FetchListCmd(svc *catalog.Service, req catalog.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := svc.Fetch(ctx, req, 1); err != nil {
			return ErrMsg{Err: err, Context: "loading " + req.Label()}
		}
		return ListLoadedMsg{Kind: req.Kind, State: svc.Snapshot()}
	}
}

// LoadMoreCmd appends the next page of the last list of kind
func LoadMoreCmd(svc *catalog.Service, kind domain.MediaKind) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		if kind == domain.KindTV {
			err = svc.LoadMoreTVShows(ctx)
		} else {
			err = svc.LoadMoreMovies(ctx)
		}
		if err != nil {
			return ErrMsg{Err: err, Context: "loading more"}
		}
		return ListLoadedMsg{Kind: kind, State: svc.Snapshot()}
	}
}

// LoadDetailsCmd fetches the full record for one item
func LoadDetailsCmd(svc *catalog.Service, kind domain.MediaKind, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		item, err := svc.Details(ctx, kind, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading details"}
		}
		return DetailsLoadedMsg{Item: item}
	}
}

// ToggleCmd flips membership of item in the named collection
func ToggleCmd(svc *collection.Service, name domain.CollectionName, item domain.CatalogItem) tea.Cmd {
	return func() tea.Msg {
		wasMember := svc.Contains(name, item.GetID())
		ok := svc.Toggle(name, item)
		return CollectionChangedMsg{
			Name:  name,
			Title: item.GetTitle(),
			Added: !wasMember,
			OK:    ok,
		}
	}
}

// ShareCmd shares item via the configured target
func ShareCmd(svc *collection.Service, item domain.CatalogItem) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return SharedMsg{Title: item.GetTitle(), OK: svc.ShareItem(ctx, item)}
	}
}

// OpenURLCmd opens url in the system browser
func OpenURLCmd(opener URLOpener, url string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := opener.OpenURL(ctx, url); err != nil {
			return ErrMsg{Err: err, Context: "opening browser"}
		}
		return nil
	}
}
