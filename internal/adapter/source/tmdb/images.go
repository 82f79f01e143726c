package tmdb

import "strings"

// DefaultImageBaseURL is the TMDB image CDN root
const DefaultImageBaseURL = "https://image.tmdb.org/t/p"

// Placeholders returned when an item has no artwork
const (
	PosterPlaceholder   = "/placeholder-movie.jpg"
	BackdropPlaceholder = "/placeholder-backdrop.jpg"
)

// PosterSize is a TMDB poster rendition width
type PosterSize string

const (
	PosterW92      PosterSize = "w92"
	PosterW154     PosterSize = "w154"
	PosterW185     PosterSize = "w185"
	PosterW342     PosterSize = "w342"
	PosterW500     PosterSize = "w500"
	PosterW780     PosterSize = "w780"
	PosterOriginal PosterSize = "original"
)

// BackdropSize is a TMDB backdrop rendition width
type BackdropSize string

const (
	BackdropW300     BackdropSize = "w300"
	BackdropW780     BackdropSize = "w780"
	BackdropW1280    BackdropSize = "w1280"
	BackdropOriginal BackdropSize = "original"
)

// Images builds artwork URLs against a configured CDN root
type Images struct {
	baseURL string
}

// NewImages returns a URL builder; an empty base uses the TMDB CDN
func NewImages(baseURL string) Images {
	if baseURL == "" {
		baseURL = DefaultImageBaseURL
	}
	return Images{baseURL: strings.TrimRight(baseURL, "/")}
}

// ImageURL returns the poster URL for path at size (w500 when empty).
// An empty path yields the movie placeholder.
func (i Images) ImageURL(path string, size PosterSize) string {
	if path == "" {
		return PosterPlaceholder
	}
	if size == "" {
		size = PosterW500
	}
	return i.baseURL + "/" + string(size) + path
}

// BackdropURL returns the backdrop URL for path at size (w1280 when empty)
func (i Images) BackdropURL(path string, size BackdropSize) string {
	if path == "" {
		return BackdropPlaceholder
	}
	if size == "" {
		size = BackdropW1280
	}
	return i.baseURL + "/" + string(size) + path
}
