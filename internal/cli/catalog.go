package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
)

var (
	listPage       int
	trendingWindow string
)

var moviesCmd = &cobra.Command{
	Use:   "movies [popular|now-playing|upcoming|top-rated]",
	Short: "List movies",
	Long: `List a page of movies from one of the catalog lists.
Defaults to popular.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, domain.KindMovie, args)
	},
}

var tvCmd = &cobra.Command{
	Use:   "tv [popular|airing-today|on-the-air|top-rated]",
	Short: "List TV shows",
	Long: `List a page of TV shows from one of the catalog lists.
Defaults to popular.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, domain.KindTV, args)
	},
}

var trendingCmd = &cobra.Command{
	Use:   "trending <movie|tv>",
	Short: "List trending titles",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrending,
}

var searchCmd = &cobra.Command{
	Use:   "search <movie|tv> <query>",
	Short: "Search the catalog by title",
	Args:  cobra.ExactArgs(2),
	RunE:  runSearch,
}

var showCmd = &cobra.Command{
	Use:   "show <movie|tv> <id>",
	Short: "Show details for one title",
	Args:  cobra.ExactArgs(2),
	RunE:  runShow,
}

var genresCmd = &cobra.Command{
	Use:   "genres <movie|tv>",
	Short: "List the catalog genres",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenres,
}

func init() {
	for _, c := range []*cobra.Command{moviesCmd, tvCmd, trendingCmd, searchCmd} {
		c.Flags().IntVarP(&listPage, "page", "p", 1, "page number")
	}
	trendingCmd.Flags().StringVarP(&trendingWindow, "window", "w", string(domain.WindowDay), "time window (day or week)")

	rootCmd.AddCommand(moviesCmd, tvCmd, trendingCmd, searchCmd, showCmd, genresCmd)
}

func runList(cmd *cobra.Command, kind domain.MediaKind, args []string) error {
	list := catalog.ListPopular
	if len(args) == 1 {
		parsed, err := catalog.ParseList(args[0])
		if err != nil {
			return err
		}
		list = parsed
	}
	return fetchAndPrint(cmd, catalog.Request{Kind: kind, List: list})
}

func runTrending(cmd *cobra.Command, args []string) error {
	kind, err := domain.ParseMediaKind(args[0])
	if err != nil {
		return err
	}
	window, err := domain.ParseTimeWindow(trendingWindow)
	if err != nil {
		return err
	}
	return fetchAndPrint(cmd, catalog.Request{Kind: kind, List: catalog.ListTrending, Window: window})
}

func runSearch(cmd *cobra.Command, args []string) error {
	kind, err := domain.ParseMediaKind(args[0])
	if err != nil {
		return err
	}
	return fetchAndPrint(cmd, catalog.Request{Kind: kind, List: catalog.ListSearch, Query: args[1]})
}

func fetchAndPrint(cmd *cobra.Command, req catalog.Request) error {
	svc, err := requireCatalog()
	if err != nil {
		return err
	}
	if listPage < 1 {
		return fmt.Errorf("invalid page %d", listPage)
	}

	if err := svc.Fetch(cmd.Context(), req, listPage); err != nil {
		return fmt.Errorf("failed to load %s: %w", req.Label(), err)
	}

	st := svc.Snapshot()
	page := pageView{Label: req.Label(), Page: st.CurrentPage, TotalPages: st.TotalPages, Results: []itemView{}}
	if req.Kind == domain.KindTV {
		for _, s := range st.Shows {
			page.Results = append(page.Results, newItemView(s))
		}
	} else {
		for _, m := range st.Movies {
			page.Results = append(page.Results, newItemView(m))
		}
	}
	return outputPage(cmd, page)
}

func runShow(cmd *cobra.Command, args []string) error {
	svc, err := requireCatalog()
	if err != nil {
		return err
	}
	kind, id, err := parseKindID(args[0], args[1])
	if err != nil {
		return err
	}

	item, err := svc.Details(cmd.Context(), kind, id)
	if err != nil {
		return fmt.Errorf("failed to load %s %d: %w", kind, id, err)
	}
	return outputDetails(cmd, item, genreNames(item))
}

func runGenres(cmd *cobra.Command, args []string) error {
	svc, err := requireCatalog()
	if err != nil {
		return err
	}
	kind, err := domain.ParseMediaKind(args[0])
	if err != nil {
		return err
	}

	genres, err := svc.Genres(cmd.Context(), kind)
	if err != nil {
		return fmt.Errorf("failed to load genres: %w", err)
	}

	if jsonOutput {
		if genres == nil {
			genres = []domain.Genre{}
		}
		return outputJSON(cmd, genres)
	}
	for _, g := range genres {
		cmd.Printf("  %5d  %s\n", g.ID, g.Name)
	}
	return nil
}

func parseKindID(rawKind, rawID string) (domain.MediaKind, int, error) {
	kind, err := domain.ParseMediaKind(rawKind)
	if err != nil {
		return "", 0, err
	}
	id, err := parseID(rawID)
	if err != nil {
		return "", 0, err
	}
	return kind, id, nil
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func genreNames(item domain.CatalogItem) []string {
	var genres []domain.Genre
	switch v := item.(type) {
	case *domain.Movie:
		genres = v.Genres
	case *domain.Show:
		genres = v.Genres
	}
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}
