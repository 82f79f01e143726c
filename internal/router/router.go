// Package router maps screen paths to named routes.
package router

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
)

// Name identifies a screen
type Name string

const (
	Home          Name = "Home"
	Movies        Name = "Movies"
	TVShows       Name = "TVShows"
	Search        Name = "Search"
	Favorites     Name = "Favorites"
	Saved         Name = "Saved"
	MovieDetails  Name = "MovieDetails"
	TVShowDetails Name = "TVShowDetails"
	NotFound      Name = "NotFound"
)

// Route is one entry of the route table
type Route struct {
	Path string // Segments starting with ':' capture a parameter
	Name Name
}

// Routes is the static route table, matched in order
var Routes = []Route{
	{Path: "/", Name: Home},
	{Path: "/movies", Name: Movies},
	{Path: "/tv-shows", Name: TVShows},
	{Path: "/search", Name: Search},
	{Path: "/favorites", Name: Favorites},
	{Path: "/saved", Name: Saved},
	{Path: "/movie/:id", Name: MovieDetails},
	{Path: "/tv/:id", Name: TVShowDetails},
}

// Match is the result of resolving a path
type Match struct {
	Name   Name
	Path   string
	Params map[string]string
}

// ID returns the numeric :id parameter
func (m Match) ID() (int, bool) {
	raw, ok := m.Params["id"]
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Resolve matches path against the route table. Anything unmatched
// resolves to NotFound with the remaining path in the "pathMatch" param.
func Resolve(path string) Match {
	clean := normalize(path)
	segs := split(clean)

	for _, r := range Routes {
		if params, ok := match(split(r.Path), segs); ok {
			return Match{Name: r.Name, Path: clean, Params: params}
		}
	}
	return Match{
		Name:   NotFound,
		Path:   clean,
		Params: map[string]string{"pathMatch": strings.TrimPrefix(clean, "/")},
	}
}

// PathFor returns the path of a parameterless route
func PathFor(name Name) string {
	for _, r := range Routes {
		if r.Name == name && !strings.Contains(r.Path, ":") {
			return r.Path
		}
	}
	return "/"
}

// DetailPath returns the details path for an item of kind
func DetailPath(kind domain.MediaKind, id int) string {
	if kind == domain.KindTV {
		return fmt.Sprintf("/tv/%d", id)
	}
	return fmt.Sprintf("/movie/%d", id)
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = "/" + strings.Trim(path, "/")
	return path
}

func split(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func match(pattern, segs []string) (map[string]string, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	params := map[string]string{}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return nil, false
			}
			params[p[1:]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}
