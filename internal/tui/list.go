package tui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/marquee/internal/domain"
)

// row is one list entry; section groups rows under a heading
type row struct {
	section string
	item    domain.CatalogItem
}

// itemList is a scrollable list of catalog items with an optional fuzzy filter
type itemList struct {
	rows     []row
	filtered []int // Indexes into rows; nil when no filter is active
	query    string
	cursor   int
	offset   int
}

// SetRows replaces the contents, keeping the cursor when possible
func (l *itemList) SetRows(rows []row) {
	l.rows = rows
	l.applyFilter()
	l.clamp()
}

// SetFilter applies a fuzzy title filter and resets the cursor
func (l *itemList) SetFilter(query string) {
	l.query = query
	l.applyFilter()
	l.cursor = 0
	l.offset = 0
}

func (l *itemList) Query() string { return l.query }

func (l *itemList) applyFilter() {
	if l.query == "" {
		l.filtered = nil
		return
	}

	lowerTitles := make([]string, len(l.rows))
	for i, r := range l.rows {
		lowerTitles[i] = strings.ToLower(r.item.GetTitle())
	}

	matches := fuzzy.Find(strings.ToLower(l.query), lowerTitles)

	l.filtered = make([]int, len(matches))
	for i, match := range matches {
		l.filtered[i] = match.Index
	}
}

// Len is the number of visible rows
func (l *itemList) Len() int {
	if l.filtered != nil {
		return len(l.filtered)
	}
	return len(l.rows)
}

func (l *itemList) at(i int) row {
	if l.filtered != nil {
		return l.rows[l.filtered[i]]
	}
	return l.rows[i]
}

// Selected returns the item under the cursor
func (l *itemList) Selected() (domain.CatalogItem, bool) {
	if l.Len() == 0 {
		return nil, false
	}
	return l.at(l.cursor).item, true
}

// Move shifts the cursor by delta, clamped to the list
func (l *itemList) Move(delta int) {
	l.cursor += delta
	l.clamp()
}

func (l *itemList) clamp() {
	if l.cursor >= l.Len() {
		l.cursor = l.Len() - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// window returns the [start, end) range that keeps the cursor in view
func (l *itemList) window(height int) (int, int) {
	if height <= 0 {
		height = 1
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+height {
		l.offset = l.cursor - height + 1
	}
	end := l.offset + height
	if end > l.Len() {
		end = l.Len()
	}
	return l.offset, end
}

func moviesToRows(section string, movies []*domain.Movie) []row {
	rows := make([]row, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, row{section: section, item: m})
	}
	return rows
}

func showsToRows(section string, shows []*domain.Show) []row {
	rows := make([]row, 0, len(shows))
	for _, s := range shows {
		rows = append(rows, row{section: section, item: s})
	}
	return rows
}

func storedToRows(items []domain.StoredItem) []row {
	rows := make([]row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{item: it.CatalogItem()})
	}
	return rows
}
