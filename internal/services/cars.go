package services

import (
	"context"

	"github.com/localnerve/catalogdb/internal/models"
	"gorm.io/gorm"
)

// CarFilter selects cars whose year, make and model are in the given lists
type CarFilter struct {
	Years  []uint
	Makes  []string
	Models []string
}

// CacheKey returns the canonical form of the filter
func (f CarFilter) CacheKey() string {
	k := &keyBuilder{}
	return k.uints("years", f.Years).strings("makes", f.Makes).strings("models", f.Models).String()
}

func (f CarFilter) scopes() []Scope {
	return []Scope{
		WhereIn("year", f.Years),
		WhereIn("make", f.Makes),
		WhereIn("model", f.Models),
	}
}

// CarService manages cars
type CarService struct {
	*Repository[models.Car]
}

func NewCarService(db *gorm.DB) *CarService {
	return &CarService{
		Repository: NewRepository(db, "Car", func(dst, src *models.Car) {
			dst.Price = src.Price
			dst.Year = src.Year
			dst.Make = src.Make
			dst.Model = src.Model
		}),
	}
}

// List returns the cars matching filter
func (s *CarService) List(ctx context.Context, filter CarFilter) ([]models.Car, error) {
	return s.With(filter.scopes()...).Find(ctx)
}
