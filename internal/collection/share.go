package collection

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
)

const defaultShareBaseURL = "https://www.themoviedb.org"

// Sharer builds share payloads and dispatches them to the native share
// target, falling back to the clipboard when no target is available.
type Sharer struct {
	native    domain.Sharer
	clipboard domain.Clipboard
	baseURL   string
}

// NewSharer wires the share targets. Either target may be nil.
func NewSharer(native domain.Sharer, clipboard domain.Clipboard, baseURL string) *Sharer {
	if baseURL == "" {
		baseURL = defaultShareBaseURL
	}
	return &Sharer{
		native:    native,
		clipboard: clipboard,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Payload builds the share payload for item
func (s *Sharer) Payload(item domain.CatalogItem) domain.SharePayload {
	title := item.GetTitle()
	return domain.SharePayload{
		Title: title,
		Text:  fmt.Sprintf("Check out %q on marquee", title),
		URL:   fmt.Sprintf("%s/%s/%d", s.baseURL, string(item.Kind()), item.GetID()),
	}
}

// Share sends the payload through the native target or the clipboard
func (s *Sharer) Share(ctx context.Context, item domain.CatalogItem) error {
	payload := s.Payload(item)

	if s.native != nil && s.native.Available() {
		return s.native.Share(ctx, payload)
	}
	if s.clipboard != nil && s.clipboard.Available() {
		return s.clipboard.WriteText(payload.ClipboardText())
	}
	return domain.ErrShareUnavailable
}

// ShareItem shares item; failures are logged and reported as false
func (s *Service) ShareItem(ctx context.Context, item domain.CatalogItem) bool {
	if s.share == nil {
		s.logger.Warn("share requested but no sharer configured", "id", item.GetID())
		return false
	}
	if err := s.share.Share(ctx, item); err != nil {
		s.logger.Error("failed to share item", "id", item.GetID(), "kind", item.Kind(), "error", err)
		return false
	}
	s.logger.Info("shared item", "id", item.GetID(), "kind", item.Kind())
	return true
}

// PageURL returns the public page for item, or "" without a sharer
func (s *Service) PageURL(item domain.CatalogItem) string {
	if s.share == nil {
		return ""
	}
	return s.share.Payload(item).URL
}
