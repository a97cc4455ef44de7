package services

import (
	"context"

	"github.com/localnerve/catalogdb/internal/models"
	"gorm.io/gorm"
)

// LibraryService manages libraries with their books and rooms.
// Deleting a library deletes its books and rooms in the same transaction.
type LibraryService struct {
	*Repository[models.Library]
	books *Children[models.Library, models.Book]
	rooms *Children[models.Library, models.Room]
}

func NewLibraryService(db *gorm.DB) *LibraryService {
	libraries := NewRepository(db, "Library", func(dst, src *models.Library) {
		dst.Name = src.Name
		dst.Location = src.Location
	}).OnDelete(func(tx *gorm.DB, id uint) error {
		if err := tx.Where("library_id = ?", id).Delete(&models.Book{}).Error; err != nil {
			return err
		}
		return tx.Where("library_id = ?", id).Delete(&models.Room{}).Error
	})

	books := NewRepository(db, "Book", func(dst, src *models.Book) {
		dst.Name = src.Name
		dst.Category = src.Category
	})
	rooms := NewRepository(db, "Room", func(dst, src *models.Room) {
		dst.Name = src.Name
		dst.Capacity = src.Capacity
	})

	return &LibraryService{
		Repository: libraries,
		books: NewChildren(libraries, books, "library_id", func(b *models.Book, libraryID uint) {
			b.LibraryID = libraryID
		}),
		rooms: NewChildren(libraries, rooms, "library_id", func(r *models.Room, libraryID uint) {
			r.LibraryID = libraryID
		}),
	}
}

func (s *LibraryService) List(ctx context.Context) ([]models.Library, error) {
	return s.Find(ctx)
}

func (s *LibraryService) ListBooks(ctx context.Context, libraryID uint) ([]models.Book, error) {
	return s.books.List(ctx, libraryID)
}

func (s *LibraryService) GetBook(ctx context.Context, libraryID, id uint) (*models.Book, error) {
	return s.books.Get(ctx, libraryID, id)
}

func (s *LibraryService) CreateBook(ctx context.Context, libraryID uint, b *models.Book) error {
	return s.books.Create(ctx, libraryID, b)
}

func (s *LibraryService) UpdateBook(ctx context.Context, libraryID, id uint, b *models.Book) error {
	return s.books.Update(ctx, libraryID, id, b)
}

func (s *LibraryService) DeleteBook(ctx context.Context, libraryID, id uint) error {
	return s.books.Delete(ctx, libraryID, id)
}

func (s *LibraryService) ListRooms(ctx context.Context, libraryID uint) ([]models.Room, error) {
	return s.rooms.List(ctx, libraryID)
}

func (s *LibraryService) GetRoom(ctx context.Context, libraryID, id uint) (*models.Room, error) {
	return s.rooms.Get(ctx, libraryID, id)
}

func (s *LibraryService) CreateRoom(ctx context.Context, libraryID uint, r *models.Room) error {
	return s.rooms.Create(ctx, libraryID, r)
}

func (s *LibraryService) UpdateRoom(ctx context.Context, libraryID, id uint, r *models.Room) error {
	return s.rooms.Update(ctx, libraryID, id, r)
}

func (s *LibraryService) DeleteRoom(ctx context.Context, libraryID, id uint) error {
	return s.rooms.Delete(ctx, libraryID, id)
}
