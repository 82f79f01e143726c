package tui

import (
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// ListLoadedMsg signals that a catalog list fetch finished
type ListLoadedMsg struct {
	Kind  domain.MediaKind
	State catalog.State
}

// HomeLoadedMsg signals that the home feed is ready
type HomeLoadedMsg struct {
	Feed catalog.HomeFeed
}

// DetailsLoadedMsg signals that a details fetch finished
type DetailsLoadedMsg struct {
	Item domain.CatalogItem
}

// CollectionChangedMsg signals that a toggle finished
type CollectionChangedMsg struct {
	Name  domain.CollectionName
	Title string
	Added bool
	OK    bool
}

// SharedMsg signals that a share attempt finished
type SharedMsg struct {
	Title string
	OK    bool
}
