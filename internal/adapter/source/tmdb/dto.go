package tmdb

// ListResponse is the paginated envelope every TMDB list endpoint returns
type ListResponse[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// MovieResult is a movie as returned by list, search and detail endpoints.
// Detail-only fields stay zero in list results.
type MovieResult struct {
	ID               int        `json:"id"`
	Title            string     `json:"title"`
	OriginalTitle    string     `json:"original_title"`
	Overview         string     `json:"overview"`
	PosterPath       *string    `json:"poster_path"`
	BackdropPath     *string    `json:"backdrop_path"`
	ReleaseDate      string     `json:"release_date"`
	OriginalLanguage string     `json:"original_language"`
	VoteAverage      float64    `json:"vote_average"`
	VoteCount        int        `json:"vote_count"`
	Popularity       float64    `json:"popularity"`
	Adult            bool       `json:"adult"`
	Video            bool       `json:"video"`
	GenreIDs         []int      `json:"genre_ids,omitempty"`
	Genres           []GenreDTO `json:"genres,omitempty"`
	Runtime          int        `json:"runtime,omitempty"`
	Tagline          string     `json:"tagline,omitempty"`
	Status           string     `json:"status,omitempty"`
}

// ShowResult is a TV series as returned by list, search and detail endpoints
type ShowResult struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	OriginalName     string     `json:"original_name"`
	Overview         string     `json:"overview"`
	PosterPath       *string    `json:"poster_path"`
	BackdropPath     *string    `json:"backdrop_path"`
	FirstAirDate     string     `json:"first_air_date"`
	OriginalLanguage string     `json:"original_language"`
	VoteAverage      float64    `json:"vote_average"`
	VoteCount        int        `json:"vote_count"`
	Popularity       float64    `json:"popularity"`
	Adult            bool       `json:"adult"`
	GenreIDs         []int      `json:"genre_ids,omitempty"`
	OriginCountry    []string   `json:"origin_country,omitempty"`
	Genres           []GenreDTO `json:"genres,omitempty"`
	NumberOfSeasons  int        `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes int        `json:"number_of_episodes,omitempty"`
	Status           string     `json:"status,omitempty"`
}

// GenreDTO is a single genre entry
type GenreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreListResponse wraps /genre/{movie,tv}/list
type GenreListResponse struct {
	Genres []GenreDTO `json:"genres"`
}

// ErrorResponse is the body TMDB sends alongside non-2xx statuses
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
