package tmdb

import (
	"github.com/mmcdole/marquee/internal/domain"
)

// MapMovies converts TMDB movie results to domain movies
func MapMovies(results []MovieResult) []*domain.Movie {
	movies := make([]*domain.Movie, 0, len(results))
	for _, r := range results {
		movies = append(movies, MapMovie(r))
	}
	return movies
}

// MapMovie converts a single movie result
func MapMovie(r MovieResult) *domain.Movie {
	return &domain.Movie{
		ID:               r.ID,
		Title:            r.Title,
		OriginalTitle:    r.OriginalTitle,
		Overview:         r.Overview,
		PosterPath:       deref(r.PosterPath),
		BackdropPath:     deref(r.BackdropPath),
		ReleaseDate:      r.ReleaseDate,
		OriginalLanguage: r.OriginalLanguage,
		VoteAverage:      r.VoteAverage,
		VoteCount:        r.VoteCount,
		Popularity:       r.Popularity,
		Adult:            r.Adult,
		Video:            r.Video,
		GenreIDs:         r.GenreIDs,
		Genres:           MapGenres(r.Genres),
		Runtime:          r.Runtime,
		Tagline:          r.Tagline,
		Status:           r.Status,
	}
}

// MapShows converts TMDB TV results to domain shows
func MapShows(results []ShowResult) []*domain.Show {
	shows := make([]*domain.Show, 0, len(results))
	for _, r := range results {
		shows = append(shows, MapShow(r))
	}
	return shows
}

// MapShow converts a single TV result
func MapShow(r ShowResult) *domain.Show {
	return &domain.Show{
		ID:               r.ID,
		Name:             r.Name,
		OriginalName:     r.OriginalName,
		Overview:         r.Overview,
		PosterPath:       deref(r.PosterPath),
		BackdropPath:     deref(r.BackdropPath),
		FirstAirDate:     r.FirstAirDate,
		OriginalLanguage: r.OriginalLanguage,
		VoteAverage:      r.VoteAverage,
		VoteCount:        r.VoteCount,
		Popularity:       r.Popularity,
		Adult:            r.Adult,
		GenreIDs:         r.GenreIDs,
		OriginCountry:    r.OriginCountry,
		Genres:           MapGenres(r.Genres),
		NumberOfSeasons:  r.NumberOfSeasons,
		NumberOfEpisodes: r.NumberOfEpisodes,
		Status:           r.Status,
	}
}

// MapGenres converts genre entries; nil in, nil out
func MapGenres(dtos []GenreDTO) []domain.Genre {
	if dtos == nil {
		return nil
	}
	genres := make([]domain.Genre, 0, len(dtos))
	for _, g := range dtos {
		genres = append(genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return genres
}

func mapMoviePage(resp ListResponse[MovieResult]) domain.Page[*domain.Movie] {
	return domain.Page[*domain.Movie]{
		Page:         resp.Page,
		Results:      MapMovies(resp.Results),
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	}
}

func mapShowPage(resp ListResponse[ShowResult]) domain.Page[*domain.Show] {
	return domain.Page[*domain.Show]{
		Page:         resp.Page,
		Results:      MapShows(resp.Results),
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
