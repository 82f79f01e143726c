package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/marquee/internal/domain"
)

// itemView is the printable summary of a catalog item
type itemView struct {
	ID       int              `json:"id"`
	Type     domain.MediaKind `json:"type"`
	Title    string           `json:"title"`
	Date     string           `json:"date,omitempty"`
	Rating   float64          `json:"vote_average"`
	Overview string           `json:"overview,omitempty"`
	Poster   string           `json:"poster_url,omitempty"`
}

func newItemView(item domain.CatalogItem) itemView {
	v := itemView{
		ID:       item.GetID(),
		Type:     item.Kind(),
		Title:    item.GetTitle(),
		Date:     item.GetDate(),
		Rating:   item.GetVoteAverage(),
		Overview: item.GetOverview(),
	}
	if app != nil && item.GetPosterPath() != "" {
		v.Poster = app.Images.ImageURL(item.GetPosterPath(), "")
	}
	return v
}

// pageView is the printable form of one list page
type pageView struct {
	Label      string     `json:"label"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Results    []itemView `json:"results"`
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputPage(cmd *cobra.Command, page pageView) error {
	if jsonOutput {
		return outputJSON(cmd, page)
	}

	if len(page.Results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("%s (page %d of %d)\n\n", capitalize(page.Label), page.Page, page.TotalPages)
	for _, item := range page.Results {
		cmd.Printf("  %s\n", itemLine(item.ID, item.Title, item.Date, item.Rating))
	}
	if page.Page < page.TotalPages {
		cmd.Printf("\nMore: --page %d\n", page.Page+1)
	}
	return nil
}

func outputDetails(cmd *cobra.Command, item domain.CatalogItem, genres []string) error {
	if jsonOutput {
		return outputJSON(cmd, struct {
			itemView
			Genres []string `json:"genres,omitempty"`
		}{newItemView(item), genres})
	}

	cmd.Println(itemLine(item.GetID(), item.GetTitle(), item.GetDate(), item.GetVoteAverage()))
	switch v := item.(type) {
	case *domain.Movie:
		if v.Tagline != "" {
			cmd.Printf("  %s\n", v.Tagline)
		}
		if rt := v.FormattedRuntime(); rt != "" {
			cmd.Printf("  Runtime: %s\n", rt)
		}
	case *domain.Show:
		if s := v.SeasonSummary(); s != "" {
			cmd.Printf("  %s, %d episodes\n", s, v.NumberOfEpisodes)
		}
	}
	if len(genres) > 0 {
		cmd.Printf("  Genres: %s\n", strings.Join(genres, ", "))
	}
	if overview := item.GetOverview(); overview != "" {
		cmd.Printf("\n%s\n", overview)
	}
	if app != nil && app.Collections != nil {
		if url := app.Collections.PageURL(item); url != "" {
			cmd.Printf("\n%s\n", url)
		}
	}
	return nil
}

func outputStored(cmd *cobra.Command, name domain.CollectionName, items []domain.StoredItem) error {
	if jsonOutput {
		if items == nil {
			items = []domain.StoredItem{}
		}
		return outputJSON(cmd, items)
	}

	if len(items) == 0 {
		cmd.Printf("No %s yet.\n", name)
		return nil
	}
	for _, it := range items {
		cmd.Printf("  %s [%s]\n", itemLine(it.ID, it.Title, it.Date(), it.VoteAverage), it.Type)
	}
	return nil
}

// itemLine formats "[id] Title (year) ★ 7.5"
func itemLine(id int, title, date string, rating float64) string {
	line := fmt.Sprintf("[%d] %s", id, title)
	if year := domain.Year(date); year != "" {
		line += " (" + year + ")"
	}
	if rating > 0 {
		line += fmt.Sprintf(" ★ %.1f", rating)
	}
	return line
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
