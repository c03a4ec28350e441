package store

import (
	"errors"
	"strings"
	"tund/internal/models"

	"gorm.io/gorm"
)

type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Get looks up a song by id.
func (s *Catalog) Get(id uint) (*models.Song, error) {
	var song models.Song
	if err := s.db.First(&song, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSongNotFound
		}
		return nil, err
	}
	return &song, nil
}

// FindOrCreate returns the song for (title, artist), inserting it when
// absent. An existing song keeps its external link untouched: first write
// wins, which keeps the operation idempotent.
func (s *Catalog) FindOrCreate(title, artist, link string) (*models.Song, error) {
	var song models.Song
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("title = ? AND artist = ?", title, artist).First(&song).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		song = models.Song{Title: title, Artist: artist, ExternalLink: link}
		return tx.Create(&song).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent request inserted the pair first; return its row
		if ferr := s.db.Where("title = ? AND artist = ?", title, artist).First(&song).Error; ferr != nil {
			return nil, ferr
		}
		return &song, nil
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// AddNew is the strict variant behind the explicit "add song" action: a
// duplicate (title, artist) pair is a user-visible conflict, not a silent
// dedup.
func (s *Catalog) AddNew(title, artist, link string) (*models.Song, error) {
	song := models.Song{Title: title, Artist: artist, ExternalLink: link}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Song{}).Where("title = ? AND artist = ?", title, artist).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrSongExists
		}
		return tx.Create(&song).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrSongExists
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// Search does a case-insensitive substring match on title or artist. The
// catalog is small, so there is no pagination.
func (s *Catalog) Search(query string) ([]models.Song, error) {
	like := "%" + strings.ToLower(query) + "%"
	var songs []models.Song
	err := s.db.
		Where("LOWER(title) LIKE ? OR LOWER(artist) LIKE ?", like, like).
		Order("id ASC").
		Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}
