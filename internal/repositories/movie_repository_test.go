package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"moviebrowser/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

var movieColumnNames = []string{
	"id", "color", "director_name", "num_critic_for_reviews", "duration",
	"director_facebook_likes", "actor_three_facebook_likes", "actor_two_name",
	"actor_one_facebook_likes", "gross", "genres", "actor_one_name", "movie_title",
	"num_voted_users", "cast_total_facebook_likes", "actor_three_name",
	"facenumber_in_poster", "plot_keywords", "movie_imdb_link", "num_user_for_reviews",
	"language", "country", "content_rating", "budget", "title_year",
	"actor_two_facebook_likes", "imdb_score", "aspect_ratio", "movie_facebook_likes",
}

// movieRow returns a row with only id and title set.
func movieRow(id int64, title string) []driver.Value {
	row := make([]driver.Value, len(movieColumnNames))
	row[0] = id
	row[12] = title
	return row
}

func TestMovieRepositoryPageReturnsCountAndSlice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(movieColumnNames)
	for i := 0; i < 5; i++ {
		rows.AddRow(movieRow(int64(26+i), fmt.Sprintf("Title %02d", 26+i))...)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM movies").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(30)))
	mock.ExpectQuery("FROM movies ORDER BY movie_title ASC, id ASC LIMIT \\? OFFSET \\?").
		WithArgs(25, int64(25)).
		WillReturnRows(rows)
	mock.ExpectCommit()

	total, movies, err := MovieRepository{DB: db}.Page(context.Background(), 25, 25)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if total != 30 {
		t.Fatalf("total = %d want 30", total)
	}
	if len(movies) != 5 {
		t.Fatalf("len(movies) = %d want 5", len(movies))
	}
	if movies[0].ID != 26 || movies[0].Title() != "Title 26" {
		t.Fatalf("unexpected first movie %+v", movies[0])
	}
	if movies[0].Color != nil || movies[0].ImdbScore != nil {
		t.Fatalf("NULL columns must stay nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMovieRepositoryPageScansOptionalColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	row := movieRow(1, "Avatar")
	row[1] = "Color"
	row[2] = "James Cameron"
	row[4] = int64(178)
	row[9] = int64(760505847)
	row[23] = int64(237000000)
	row[24] = int64(2009)
	row[26] = []byte("7.9")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("ORDER BY movie_title").
		WillReturnRows(sqlmock.NewRows(movieColumnNames).AddRow(row...))
	mock.ExpectCommit()

	_, movies, err := MovieRepository{DB: db}.Page(context.Background(), 0, 25)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	m := movies[0]
	if m.DirectorName == nil || *m.DirectorName != "James Cameron" {
		t.Fatalf("director not scanned: %v", m.DirectorName)
	}
	if m.Duration == nil || *m.Duration != 178 {
		t.Fatalf("duration not scanned: %v", m.Duration)
	}
	if m.Gross == nil || *m.Gross != 760505847 || m.Budget == nil || *m.Budget != 237000000 {
		t.Fatalf("financials not scanned: %v %v", m.Gross, m.Budget)
	}
	if m.ImdbScore == nil || *m.ImdbScore != 7.9 {
		t.Fatalf("score not scanned: %v", m.ImdbScore)
	}
	if m.Genres != nil {
		t.Fatalf("genres should be nil")
	}
}

func TestMovieRepositoryPageBeyondEndSkipsSliceQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(30)))
	mock.ExpectCommit()

	total, movies, err := MovieRepository{DB: db}.Page(context.Background(), 50, 25)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if total != 30 {
		t.Fatalf("total = %d want 30", total)
	}
	if movies == nil || len(movies) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", movies)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMovieRepositoryPageEmptyCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectCommit()

	total, movies, err := MovieRepository{DB: db}.Page(context.Background(), 0, 25)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if total != 0 || len(movies) != 0 {
		t.Fatalf("expected empty page, got %d %v", total, movies)
	}
}

func TestMovieRepositoryPagePropagatesQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	boom := errors.New("server has gone away")
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(30)))
	mock.ExpectQuery("ORDER BY movie_title").WillReturnError(boom)
	mock.ExpectRollback()

	_, _, err = MovieRepository{DB: db}.Page(context.Background(), 0, 25)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMovieRepositoryPageBeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	boom := errors.New("too many connections")
	mock.ExpectBegin().WillReturnError(boom)

	if _, _, err := (MovieRepository{DB: db}).Page(context.Background(), 0, 25); !errors.Is(err, boom) {
		t.Fatalf("expected begin error, got %v", err)
	}
}

func TestMovieRepositoryWithoutDatabase(t *testing.T) {
	_, _, err := MovieRepository{}.Page(context.Background(), 0, 25)
	if !domain.IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}
