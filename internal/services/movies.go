package services

import (
	"context"

	"github.com/localnerve/catalogdb/internal/localization"
	"github.com/localnerve/catalogdb/internal/models"
	"gorm.io/gorm"
)

// MovieService manages movies. Categories are stored as localization keys
// and translated into the culture carried by the context on read.
type MovieService struct {
	*Repository[models.Movie]
}

func NewMovieService(db *gorm.DB) *MovieService {
	return &MovieService{
		Repository: NewRepository(db, "Movie", func(dst, src *models.Movie) {
			dst.Title = src.Title
			dst.Category = src.Category
		}),
	}
}

func translateCategory(ctx context.Context, m *models.Movie) {
	m.Category = localization.Translate(localization.CultureFrom(ctx), m.Category)
}

func (s *MovieService) List(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.Find(ctx)
	if err != nil {
		return nil, err
	}
	for i := range movies {
		translateCategory(ctx, &movies[i])
	}
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.Repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	translateCategory(ctx, movie)
	return movie, nil
}
