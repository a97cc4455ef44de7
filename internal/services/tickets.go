package services

import (
	"context"

	"github.com/localnerve/catalogdb/internal/models"
	"gorm.io/gorm"
)

// TicketFilter selects tickets by title and author name
type TicketFilter struct {
	Titles      []string
	AuthorNames []string
}

// TicketService manages support tickets
type TicketService struct {
	*Repository[models.Ticket]
}

func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{
		Repository: NewRepository(db, "Ticket", func(dst, src *models.Ticket) {
			dst.Title = src.Title
			dst.Body = src.Body
			dst.PublishedDate = src.PublishedDate
		}),
	}
}

func (s *TicketService) List(ctx context.Context, filter TicketFilter) ([]models.Ticket, error) {
	return s.With(WhereIn("title", filter.Titles), WhereIn("author_name", filter.AuthorNames)).Find(ctx)
}
