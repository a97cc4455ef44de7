package services

import (
	"context"
	"time"

	"github.com/localnerve/catalogdb/internal/models"
	"gorm.io/gorm"
)

// SongFilter selects songs by singer name and song name
type SongFilter struct {
	Singers []string
	Names   []string
}

// CacheKey returns the canonical form of the filter
func (f SongFilter) CacheKey() string {
	k := &keyBuilder{}
	return k.strings("singers", f.Singers).strings("names", f.Names).String()
}

// SongService manages songs. ReleaseDate comes from the server clock.
type SongService struct {
	*Repository[models.Song]
	db      *gorm.DB
	singers *Repository[models.Singer]
	now     func() time.Time
}

func NewSongService(db *gorm.DB) *SongService {
	return &SongService{
		Repository: NewRepository(db, "Song", func(dst, src *models.Song) {
			dst.Name = src.Name
			dst.SingerID = src.SingerID
			dst.Singer = nil
		}).With(func(tx *gorm.DB) *gorm.DB { return tx.Preload("Singer") }),
		db:      db,
		singers: NewRepository[models.Singer](db, "Singer", nil),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *SongService) List(ctx context.Context, filter SongFilter) ([]models.Song, error) {
	bySinger := func(tx *gorm.DB) *gorm.DB {
		if len(filter.Singers) == 0 {
			return tx
		}
		names := s.db.Session(&gorm.Session{NewDB: true}).
			Model(&models.Singer{}).
			Select("id").
			Where("name IN ?", filter.Singers)
		return tx.Where("singer_id IN (?)", names)
	}
	return s.With(bySinger, WhereIn("name", filter.Names)).Find(ctx)
}

// inTx runs fn with song and singer repositories bound to one transaction
func (s *SongService) inTx(ctx context.Context, fn func(songs *Repository[models.Song], singers *Repository[models.Singer]) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.Repository.Bind(tx), s.singers.Bind(tx))
	})
}

// resolveSinger points song at its singer. A singer object without an id is
// created first; a singer id must reference an existing singer.
func resolveSinger(ctx context.Context, singers *Repository[models.Singer], song *models.Song) error {
	if song.Singer != nil {
		if song.Singer.ID == 0 {
			if err := singers.Create(ctx, song.Singer); err != nil {
				return err
			}
		}
		id := song.Singer.ID
		song.SingerID = &id
	}
	if song.SingerID != nil {
		if err := singers.Exists(ctx, *song.SingerID); err != nil {
			return err
		}
	}
	return nil
}

// Create stores song and any new singer it carries in one transaction
func (s *SongService) Create(ctx context.Context, song *models.Song) error {
	err := s.inTx(ctx, func(songs *Repository[models.Song], singers *Repository[models.Singer]) error {
		if err := resolveSinger(ctx, singers, song); err != nil {
			return err
		}
		song.ReleaseDate = s.now()
		return songs.Create(ctx, song)
	})
	if err != nil {
		return err
	}
	return s.loadSinger(ctx, song)
}

// CreateBatch stores every song and new singer, or none of them
func (s *SongService) CreateBatch(ctx context.Context, songs []models.Song) error {
	now := s.now()
	err := s.inTx(ctx, func(repo *Repository[models.Song], singers *Repository[models.Singer]) error {
		for i := range songs {
			if err := resolveSinger(ctx, singers, &songs[i]); err != nil {
				return err
			}
			songs[i].ReleaseDate = now
		}
		return repo.CreateBatch(ctx, songs)
	})
	if err != nil {
		return err
	}
	for i := range songs {
		if err := s.loadSinger(ctx, &songs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *SongService) Update(ctx context.Context, id uint, song *models.Song) error {
	return s.inTx(ctx, func(songs *Repository[models.Song], singers *Repository[models.Singer]) error {
		if err := resolveSinger(ctx, singers, song); err != nil {
			return err
		}
		return songs.Update(ctx, id, song)
	})
}

func (s *SongService) loadSinger(ctx context.Context, song *models.Song) error {
	if song.SingerID == nil {
		song.Singer = nil
		return nil
	}
	singer, err := s.singers.Get(ctx, *song.SingerID)
	if err != nil {
		return err
	}
	song.Singer = singer
	return nil
}

// SingerService manages singers. Deleting a singer detaches its songs.
type SingerService struct {
	*Repository[models.Singer]
}

func NewSingerService(db *gorm.DB) *SingerService {
	repo := NewRepository(db, "Singer", func(dst, src *models.Singer) {
		dst.Name = src.Name
	}).OnDelete(func(tx *gorm.DB, id uint) error {
		return tx.Model(&models.Song{}).Where("singer_id = ?", id).Update("singer_id", nil).Error
	})
	return &SingerService{Repository: repo}
}

func (s *SingerService) List(ctx context.Context) ([]models.Singer, error) {
	return s.Find(ctx)
}
