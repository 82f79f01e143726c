package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/router"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

type tab struct {
	name  router.Name
	label string
}

var tabs = []tab{
	{router.Home, "1 Home"},
	{router.Movies, "2 Movies"},
	{router.TVShows, "3 TV"},
	{router.Search, "4 Search"},
	{router.Favorites, "5 Favorites"},
	{router.Saved, "6 Saved"},
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.isDetail() {
		b.WriteString(m.renderDetail())
	} else {
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTabs() string {
	current := m.route()
	if m.isDetail() {
		current = ""
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.name == current {
			parts = append(parts, styles.ActiveTabStyle.Render(t.label))
		} else {
			parts = append(parts, styles.TabStyle.Render(t.label))
		}
	}
	title := styles.TitleStyle.Render("marquee")
	return lipgloss.JoinHorizontal(lipgloss.Top, append([]string{title, " "}, parts...)...)
}

// renderHeader shows the screen subtitle, or the search/filter prompt
func (m Model) renderHeader() string {
	switch {
	case m.searching:
		return m.searchInput.View() + "  " + styles.DimStyle.Render("in "+kindLabel(m.searchKind)+" (tab to switch)")
	case m.filtering:
		return m.filterInput.View()
	}

	var header string
	switch m.route() {
	case router.Home:
		header = "Trending and popular"
	case router.Movies:
		header = titleCase(m.movieRequest().Label())
	case router.TVShows:
		header = titleCase(m.showRequest().Label())
	case router.Search:
		if req := m.catalog.LastRequest(m.searchKind); req.List == catalog.ListSearch {
			header = titleCase(req.Label())
		} else {
			header = "Search " + kindLabel(m.searchKind)
		}
	case router.Favorites:
		header = fmt.Sprintf("Favorites (%d)", m.collections.FavoritesCount())
	case router.Saved:
		header = fmt.Sprintf("Saved (%d)", m.collections.SavedCount())
	case router.MovieDetails, router.TVShowDetails:
		header = "Details"
	default:
		header = "Not found"
	}

	if q := m.list.Query(); q != "" && !m.isDetail() {
		header += styles.DimStyle.Render(fmt.Sprintf("  filter: %s (%d)", q, m.list.Len()))
	}
	return styles.SubtitleStyle.Render(header)
}

func (m Model) renderList() string {
	if m.err != "" {
		return styles.ErrorStyle.Render(m.err)
	}
	if m.loading && m.list.Len() == 0 {
		return m.spinner.View() + " Loading..."
	}
	if m.list.Len() == 0 {
		return styles.DimStyle.Render(m.emptyMessage())
	}

	width := m.width - 4
	start, end := m.list.window(m.listHeight())

	var lines []string
	lastSection := ""
	if start > 0 {
		lastSection = m.list.at(start - 1).section
	}
	for i := start; i < end; i++ {
		r := m.list.at(i)
		if r.section != "" && r.section != lastSection && m.list.Query() == "" {
			lines = append(lines, styles.SectionStyle.Render(r.section))
		}
		lastSection = r.section
		lines = append(lines, m.renderRow(r.item, i == m.list.cursor, width))
	}

	if kind, ok := m.listKind(); ok && m.catalog.HasMore() {
		st := m.catalog.Snapshot()
		more := fmt.Sprintf("page %d of %d, m for more %s", st.CurrentPage, st.TotalPages, kindLabel(kind))
		if m.loading {
			more = m.spinner.View() + " " + more
		}
		lines = append(lines, styles.DimStyle.Render(more))
	}
	return strings.Join(lines, "\n")
}

func (m Model) emptyMessage() string {
	switch m.route() {
	case router.Favorites:
		return "No favorites yet. Press f on any title."
	case router.Saved:
		return "Nothing saved yet. Press s on any title."
	case router.Search:
		return "Type a title and press enter."
	}
	if m.list.Query() != "" {
		return "No matches."
	}
	return "Nothing to show."
}

// renderRow renders one title with its membership marks and rating
func (m Model) renderRow(item domain.CatalogItem, selected bool, width int) string {
	style := styles.NormalItemStyle
	if selected {
		style = styles.SelectedItemStyle
	}

	marks := m.marks(item.GetID())

	title := item.GetTitle()
	if year := domain.Year(item.GetDate()); year != "" {
		title = fmt.Sprintf("%s (%s)", title, year)
	}
	if m.route() == router.Home || m.route() == router.Favorites || m.route() == router.Saved {
		title = fmt.Sprintf("%s %s", title, styles.DimStyle.Render("["+kindLabel(item.Kind())+"]"))
	}

	rating := styles.Rating(item.GetVoteAverage())
	titleWidth := width - lipgloss.Width(rating) - 6
	return style.Width(width).Render(
		fmt.Sprintf("%s %s %s", marks, styles.Pad(styles.Truncate(title, titleWidth), titleWidth), rating),
	)
}

func (m Model) marks(id int) string {
	fav, saved := " ", " "
	if m.collections.IsFavorite(id) {
		fav = styles.FavoriteMark
	}
	if m.collections.IsSaved(id) {
		saved = styles.SavedMark
	}
	return fav + saved
}

func (m Model) renderDetail() string {
	if m.err != "" {
		return styles.ErrorStyle.Render(m.err)
	}
	if m.detail == nil {
		return m.spinner.View() + " Loading..."
	}

	item := m.detail
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(item.GetTitle()))
	b.WriteString(" " + m.marks(item.GetID()))
	b.WriteString("\n")

	var facts []string
	if year := domain.Year(item.GetDate()); year != "" {
		facts = append(facts, year)
	}
	var genres []domain.Genre
	var tagline, status string
	switch v := item.(type) {
	case *domain.Movie:
		if rt := v.FormattedRuntime(); rt != "" {
			facts = append(facts, rt)
		}
		genres, tagline, status = v.Genres, v.Tagline, v.Status
	case *domain.Show:
		if seasons := v.SeasonSummary(); seasons != "" {
			facts = append(facts, seasons)
		}
		if v.NumberOfEpisodes > 0 {
			facts = append(facts, fmt.Sprintf("%d episodes", v.NumberOfEpisodes))
		}
		genres, status = v.Genres, v.Status
	}
	facts = append(facts, styles.Rating(item.GetVoteAverage()))
	b.WriteString(strings.Join(facts, styles.DimStyle.Render(" · ")))
	b.WriteString("\n")

	if len(genres) > 0 {
		names := make([]string, len(genres))
		for i, g := range genres {
			names[i] = g.Name
		}
		b.WriteString(styles.AccentStyle.Render(strings.Join(names, ", ")))
		b.WriteString("\n")
	}
	if status != "" {
		b.WriteString(styles.DimStyle.Render("Status: " + status))
		b.WriteString("\n")
	}
	if tagline != "" {
		b.WriteString("\n" + styles.SubtitleStyle.Render(tagline) + "\n")
	}

	overview := item.GetOverview()
	if overview == "" {
		overview = "No overview available."
	}
	b.WriteString("\n")
	b.WriteString(styles.BodyStyle.Width(m.width - 4).Render(overview))
	b.WriteString("\n\n")

	b.WriteString(styles.DimStyle.Render("Poster:   " + m.images.ImageURL(item.GetPosterPath(), "")))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("Backdrop: " + m.images.BackdropURL(item.GetBackdropPath(), "")))
	if url := m.collections.PageURL(item); url != "" {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("Page:     " + url))
	}

	return styles.DetailStyle.Render(b.String())
}

func (m Model) renderFooter() string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	footer := strings.Join(parts, "  ")

	if m.status != "" {
		footer = styles.SuccessStyle.Render(m.status) + "\n" + footer
	}
	return footer
}

func kindLabel(k domain.MediaKind) string {
	if k == domain.KindTV {
		return "TV shows"
	}
	return "movies"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
