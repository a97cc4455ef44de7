package services

import (
	"context"
	"time"

	"github.com/localnerve/catalogdb/internal/models"
	"gorm.io/gorm"
)

// NewsFeedFilter selects items by exact body, author name and title
type NewsFeedFilter struct {
	Body        []string
	AuthorNames []string
	Titles      []string
}

// CacheKey returns the canonical form of the filter
func (f NewsFeedFilter) CacheKey() string {
	k := &keyBuilder{}
	return k.strings("body", f.Body).strings("authorNames", f.AuthorNames).strings("title", f.Titles).String()
}

func (f NewsFeedFilter) scopes() []Scope {
	return []Scope{
		WhereIn("body", f.Body),
		WhereIn("author_name", f.AuthorNames),
		WhereIn("title", f.Titles),
	}
}

// NewsFeedService manages news feed items. DateCreated comes from the server clock.
type NewsFeedService struct {
	*Repository[models.NewsFeedItem]
	now func() time.Time
}

func NewNewsFeedService(db *gorm.DB) *NewsFeedService {
	return &NewsFeedService{
		Repository: NewRepository(db, "News feed item", func(dst, src *models.NewsFeedItem) {
			dst.Body = src.Body
			dst.Title = src.Title
			dst.AllowComments = src.AllowComments
		}),
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *NewsFeedService) List(ctx context.Context, filter NewsFeedFilter) ([]models.NewsFeedItem, error) {
	return s.With(filter.scopes()...).Find(ctx)
}

func (s *NewsFeedService) Create(ctx context.Context, item *models.NewsFeedItem) error {
	item.DateCreated = s.now()
	return s.Repository.Create(ctx, item)
}

func (s *NewsFeedService) CreateBatch(ctx context.Context, items []models.NewsFeedItem) error {
	now := s.now()
	for i := range items {
		items[i].DateCreated = now
	}
	return s.Repository.CreateBatch(ctx, items)
}
