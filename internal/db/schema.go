package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// MoviesTable is the only table the application reads.
const MoviesTable = "movies"

const createMoviesTable = `
CREATE TABLE IF NOT EXISTS movies (
	id BIGINT NOT NULL PRIMARY KEY,
	color VARCHAR(32) NULL,
	director_name VARCHAR(255) NULL,
	num_critic_for_reviews VARCHAR(32) NULL,
	duration INT NULL,
	director_facebook_likes INT NULL,
	actor_three_facebook_likes INT NULL,
	actor_two_name VARCHAR(255) NULL,
	actor_one_facebook_likes INT NULL,
	gross BIGINT NULL,
	genres VARCHAR(255) NULL,
	actor_one_name VARCHAR(255) NULL,
	movie_title VARCHAR(255) NULL,
	num_voted_users INT NULL,
	cast_total_facebook_likes INT NULL,
	actor_three_name VARCHAR(255) NULL,
	facenumber_in_poster INT NULL,
	plot_keywords VARCHAR(512) NULL,
	movie_imdb_link VARCHAR(512) NULL,
	num_user_for_reviews INT NULL,
	language VARCHAR(64) NULL,
	country VARCHAR(64) NULL,
	content_rating VARCHAR(32) NULL,
	budget BIGINT NULL,
	title_year INT NULL,
	actor_two_facebook_likes INT NULL,
	imdb_score DECIMAL(3,1) NULL,
	aspect_ratio VARCHAR(16) NULL,
	movie_facebook_likes INT NULL,
	KEY idx_movies_title_id (movie_title, id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// EnsureMoviesSchema creates the movies table when it does not exist yet.
// It reports whether the table had to be created.
func EnsureMoviesSchema(ctx context.Context, db interface {
	QueryRower
	Execer
}) (bool, error) {
	exists, err := HasTable(ctx, db, MoviesTable)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if _, err := db.ExecContext(ctx, createMoviesTable); err != nil {
		return false, fmt.Errorf("create %s: %w", MoviesTable, err)
	}
	return true, nil
}

// HasTable checks information_schema for table in the current database.
func HasTable(ctx context.Context, q QueryRower, table string) (bool, error) {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup table %s: %w", table, err)
	}
	return name.Valid && name.String != "", nil
}
