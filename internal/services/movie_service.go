package services

import (
	"context"
	"errors"

	"moviebrowser/internal/domain"
	"moviebrowser/internal/logging"

	"github.com/rs/zerolog"
)

// MovieStore is the paged-query capability of the data store.
type MovieStore interface {
	Page(ctx context.Context, offset int64, limit int) (int64, []domain.Movie, error)
}

// MovieService answers page requests with a fixed page size and title ordering.
type MovieService struct {
	Store  MovieStore
	Logger zerolog.Logger
}

func NewMovieService(store MovieStore) MovieService {
	return MovieService{Store: store, Logger: logging.NewLogger("movies")}
}

// GetPage returns page (zero-based) of the catalog. Pages past the end come
// back with no items and the real total.
func (s MovieService) GetPage(ctx context.Context, page int) (domain.PageResult, error) {
	if err := domain.ValidatePage(page); err != nil {
		return domain.PageResult{}, err
	}

	total, movies, err := s.Store.Page(ctx, domain.Offset(page), domain.PageSize)
	if err != nil {
		s.Logger.Error().Err(err).Int("page", page).Msg("load movie page failed")
		if domain.IsUnavailable(err) || errors.Is(err, context.Canceled) {
			return domain.PageResult{}, err
		}
		return domain.PageResult{}, domain.InternalError{Msg: "failed to load movies", Err: err}
	}
	if movies == nil {
		movies = []domain.Movie{}
	}

	s.Logger.Debug().Int("page", page).Int64("total", total).Int("items", len(movies)).Msg("movie page loaded")
	return domain.PageResult{TotalCount: total, Items: movies}, nil
}
