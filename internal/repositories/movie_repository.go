package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intconfig "moviebrowser/internal/config"
	"moviebrowser/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "movies_store_query_duration_seconds",
		Help:    "Duration of movies store queries by query name",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"query"})

	queryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movies_store_query_errors_total",
		Help: "Movies store query failures by query name",
	}, []string{"query"})
)

const movieColumns = `id, color, director_name, num_critic_for_reviews, duration,
	director_facebook_likes, actor_three_facebook_likes, actor_two_name,
	actor_one_facebook_likes, gross, genres, actor_one_name, movie_title,
	num_voted_users, cast_total_facebook_likes, actor_three_name,
	facenumber_in_poster, plot_keywords, movie_imdb_link, num_user_for_reviews,
	language, country, content_rating, budget, title_year,
	actor_two_facebook_likes, imdb_score, aspect_ratio, movie_facebook_likes`

const (
	countMoviesQuery = `SELECT COUNT(*) FROM movies`

	// id breaks ties between equal (or NULL) titles so page boundaries are stable.
	pageMoviesQuery = `SELECT ` + movieColumns + ` FROM movies ORDER BY movie_title ASC, id ASC LIMIT ? OFFSET ?`
)

type MovieRepository struct {
	DB *sql.DB
}

func (r MovieRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Page returns the total number of movies and the title-ordered slice
// [offset, offset+limit). Both reads share one read-only snapshot. The slice
// query is skipped when offset is already past the end.
func (r MovieRepository) Page(ctx context.Context, offset int64, limit int) (int64, []domain.Movie, error) {
	db := r.db()
	if db == nil {
		return 0, nil, domain.UnavailableError{Dependency: "database"}
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return 0, nil, fmt.Errorf("begin read tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	total, err := countMovies(ctx, tx)
	if err != nil {
		return 0, nil, err
	}

	movies := []domain.Movie{}
	if offset < total {
		movies, err = listMovies(ctx, tx, offset, limit)
		if err != nil {
			return 0, nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("commit read tx: %w", err)
	}
	return total, movies, nil
}

func countMovies(ctx context.Context, tx *sql.Tx) (int64, error) {
	start := time.Now()
	defer func() { queryDuration.WithLabelValues("count").Observe(time.Since(start).Seconds()) }()

	var total int64
	if err := tx.QueryRowContext(ctx, countMoviesQuery).Scan(&total); err != nil {
		queryErrors.WithLabelValues("count").Inc()
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return total, nil
}

func listMovies(ctx context.Context, tx *sql.Tx, offset int64, limit int) ([]domain.Movie, error) {
	start := time.Now()
	defer func() { queryDuration.WithLabelValues("page").Observe(time.Since(start).Seconds()) }()

	rows, err := tx.QueryContext(ctx, pageMoviesQuery, limit, offset)
	if err != nil {
		queryErrors.WithLabelValues("page").Inc()
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Movie, 0, limit)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			queryErrors.WithLabelValues("page").Inc()
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		queryErrors.WithLabelValues("page").Inc()
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return out, nil
}

func scanMovie(rows *sql.Rows) (domain.Movie, error) {
	var (
		m domain.Movie

		color, directorName, numCritic, actorTwoName, genres, actorOneName,
		title, actorThreeName, plotKeywords, imdbLink, language, country,
		contentRating, aspectRatio sql.Null[string]

		duration, directorLikes, actorThreeLikes, actorOneLikes, numVoted,
		castLikes, faces, numUserReviews, titleYear, actorTwoLikes,
		movieLikes sql.Null[int]

		gross, budget sql.Null[int64]
		score         sql.Null[float64]
	)

	if err := rows.Scan(
		&m.ID,
		&color,
		&directorName,
		&numCritic,
		&duration,
		&directorLikes,
		&actorThreeLikes,
		&actorTwoName,
		&actorOneLikes,
		&gross,
		&genres,
		&actorOneName,
		&title,
		&numVoted,
		&castLikes,
		&actorThreeName,
		&faces,
		&plotKeywords,
		&imdbLink,
		&numUserReviews,
		&language,
		&country,
		&contentRating,
		&budget,
		&titleYear,
		&actorTwoLikes,
		&score,
		&aspectRatio,
		&movieLikes,
	); err != nil {
		return m, err
	}

	m.Color = nullable(color)
	m.DirectorName = nullable(directorName)
	m.NumCriticForReviews = nullable(numCritic)
	m.Duration = nullable(duration)
	m.DirectorFacebookLikes = nullable(directorLikes)
	m.ActorThreeFacebookLikes = nullable(actorThreeLikes)
	m.ActorTwoName = nullable(actorTwoName)
	m.ActorOneFacebookLikes = nullable(actorOneLikes)
	m.Gross = nullable(gross)
	m.Genres = nullable(genres)
	m.ActorOneName = nullable(actorOneName)
	m.MovieTitle = nullable(title)
	m.NumVotedUsers = nullable(numVoted)
	m.CastTotalFacebookLikes = nullable(castLikes)
	m.ActorThreeName = nullable(actorThreeName)
	m.FacenumberInPoster = nullable(faces)
	m.PlotKeywords = nullable(plotKeywords)
	m.MovieImdbLink = nullable(imdbLink)
	m.NumUserForReviews = nullable(numUserReviews)
	m.Language = nullable(language)
	m.Country = nullable(country)
	m.ContentRating = nullable(contentRating)
	m.Budget = nullable(budget)
	m.TitleYear = nullable(titleYear)
	m.ActorTwoFacebookLikes = nullable(actorTwoLikes)
	m.ImdbScore = nullable(score)
	m.AspectRatio = nullable(aspectRatio)
	m.MovieFacebookLikes = nullable(movieLikes)
	return m, nil
}

func nullable[T any](n sql.Null[T]) *T {
	if !n.Valid {
		return nil
	}
	v := n.V
	return &v
}
