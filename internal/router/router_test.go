package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/marquee/internal/domain"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want Name
		id   string
	}{
		{"/", Home, ""},
		{"", Home, ""},
		{"/movies", Movies, ""},
		{"/movies/", Movies, ""},
		{"/tv-shows", TVShows, ""},
		{"/search?q=alien", Search, ""},
		{"/favorites", Favorites, ""},
		{"/saved", Saved, ""},
		{"/movie/603", MovieDetails, "603"},
		{"/tv/1399", TVShowDetails, "1399"},
		{"/movie", NotFound, ""},
		{"/movie/603/cast", NotFound, ""},
		{"/does/not/exist", NotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m := Resolve(tt.path)
			assert.Equal(t, tt.want, m.Name)
			if tt.id != "" {
				assert.Equal(t, tt.id, m.Params["id"])
			}
		})
	}
}

func TestResolve_NotFoundCapturesPath(t *testing.T) {
	m := Resolve("/does/not/exist")
	assert.Equal(t, "does/not/exist", m.Params["pathMatch"])
}

func TestMatch_ID(t *testing.T) {
	id, ok := Resolve("/tv/42").ID()
	require.True(t, ok)
	assert.Equal(t, 42, id)

	_, ok = Resolve("/movie/abc").ID()
	assert.False(t, ok)

	_, ok = Resolve("/movies").ID()
	assert.False(t, ok)
}

func TestDetailPath(t *testing.T) {
	assert.Equal(t, "/movie/5", DetailPath(domain.KindMovie, 5))
	assert.Equal(t, "/tv/9", DetailPath(domain.KindTV, 9))
	assert.Equal(t, TVShowDetails, Resolve(DetailPath(domain.KindTV, 9)).Name)
}

func TestPathFor(t *testing.T) {
	assert.Equal(t, "/tv-shows", PathFor(TVShows))
	assert.Equal(t, "/saved", PathFor(Saved))
	assert.Equal(t, "/", PathFor(MovieDetails))
}

func TestHistory(t *testing.T) {
	h := NewHistory("/")
	assert.Equal(t, Home, h.Current().Name)

	h.Push("/movies")
	h.Push("/movies")
	assert.Equal(t, 2, h.Depth())

	h.Push("/movie/1")
	assert.Equal(t, MovieDetails, h.Current().Name)

	m, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, Movies, m.Name)

	h.Replace("/saved")
	assert.Equal(t, Saved, h.Current().Name)

	_, ok = h.Back()
	assert.True(t, ok)
	_, ok = h.Back()
	assert.False(t, ok)
	assert.Equal(t, Home, h.Current().Name)
}
