package domain

import (
	"encoding/json"
	"errors"
)

// ErrMissingMovieID is returned when a movie payload carries no id.
var ErrMissingMovieID = errors.New("movie: id is required")

// Movie mirrors one row of the movies table. Every field except ID is optional
// and serializes as null when unset.
type Movie struct {
	ID                      int64    `json:"id"`
	Color                   *string  `json:"color"`
	DirectorName            *string  `json:"directorName"`
	NumCriticForReviews     *string  `json:"numCriticForReviews"`
	Duration                *int     `json:"duration"`
	DirectorFacebookLikes   *int     `json:"directorFacebookLikes"`
	ActorThreeFacebookLikes *int     `json:"actorThreeFacebookLikes"`
	ActorTwoName            *string  `json:"actorTwoName"`
	ActorOneFacebookLikes   *int     `json:"actorOneFacebookLikes"`
	Gross                   *int64   `json:"gross"`
	Genres                  *string  `json:"genres"`
	ActorOneName            *string  `json:"actorOneName"`
	MovieTitle              *string  `json:"movieTitle"`
	NumVotedUsers           *int     `json:"numVotedUsers"`
	CastTotalFacebookLikes  *int     `json:"castTotalFacebookLikes"`
	ActorThreeName          *string  `json:"actorThreeName"`
	FacenumberInPoster      *int     `json:"facenumberInPoster"`
	PlotKeywords            *string  `json:"plotKeywords"`
	MovieImdbLink           *string  `json:"movieImdbLink"`
	NumUserForReviews       *int     `json:"numUserForReviews"`
	Language                *string  `json:"language"`
	Country                 *string  `json:"country"`
	ContentRating           *string  `json:"contentRating"`
	Budget                  *int64   `json:"budget"`
	TitleYear               *int     `json:"titleYear"`
	ActorTwoFacebookLikes   *int     `json:"actorTwoFacebookLikes"`
	ImdbScore               *float64 `json:"imdbScore"`
	AspectRatio             *string  `json:"aspectRatio"`
	MovieFacebookLikes      *int     `json:"movieFacebookLikes"`
}

// UnmarshalJSON rejects payloads without an id so a partially decoded record
// never reaches the navigator.
func (m *Movie) UnmarshalJSON(data []byte) error {
	type plain Movie
	var raw struct {
		plain
		ID *int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID == nil {
		return ErrMissingMovieID
	}
	*m = Movie(raw.plain)
	m.ID = *raw.ID
	return nil
}

// Title returns the movie title or an empty string.
func (m Movie) Title() string {
	if m.MovieTitle == nil {
		return ""
	}
	return *m.MovieTitle
}
