package store

import (
	"errors"
	"time"
	"tund/internal/models"

	"gorm.io/gorm"
)

// UpsertOutcome tells the caller whether Upsert inserted a new review or
// updated an existing one, so the right message can be shown.
type UpsertOutcome int

const (
	ReviewCreated UpsertOutcome = iota
	ReviewUpdated
)

// SongRating is one row of the top-rated chart.
type SongRating struct {
	Song    models.Song
	Average float64
}

// AuthorStats are the dashboard aggregates for one user.
type AuthorStats struct {
	TotalReviews    int64
	DistinctSongs   int64
	DistinctArtists int64
}

type ReviewStore struct {
	db *gorm.DB
}

func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// Upsert records a rating for (user, song). A second submission for the same
// pair mutates the existing row in place and refreshes its timestamp.
func (s *ReviewStore) Upsert(userID, songID uint, rating int, comment string) (*models.Review, UpsertOutcome, error) {
	if rating < 1 || rating > 5 {
		return nil, ReviewCreated, ErrInvalidRating
	}

	var review models.Review
	outcome := ReviewCreated
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var song models.Song
		if err := tx.First(&song, songID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSongNotFound
			}
			return err
		}

		err := tx.Where("user_id = ? AND song_id = ?", userID, songID).First(&review).Error
		if err == nil {
			outcome = ReviewUpdated
			review.Rating = rating
			review.Comment = comment
			review.CreatedAt = time.Now()
			return tx.Save(&review).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		review = models.Review{Rating: rating, Comment: comment, UserID: userID, SongID: songID}
		return tx.Create(&review).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent submission created the row first; retry as an update
		return s.Upsert(userID, songID, rating, comment)
	}
	if err != nil {
		return nil, outcome, err
	}
	return &review, outcome, nil
}

// Get looks up a review by id.
func (s *ReviewStore) Get(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.Preload("Song").First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// ListByAuthor returns a user's reviews newest first, insertion order as the
// tie-break.
func (s *ReviewStore) ListByAuthor(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("Song").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListForSong returns all reviews of one song newest first, with authors.
func (s *ReviewStore) ListForSong(songID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("User").
		Where("song_id = ?", songID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// ForAuthorAndSong returns the caller's review of a song, if any.
func (s *ReviewStore) ForAuthorAndSong(userID, songID uint) (*models.Review, error) {
	var review models.Review
	err := s.db.Where("user_id = ? AND song_id = ?", userID, songID).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// TopRated groups reviews by song and orders by mean rating descending.
// Equal averages are ordered by song id so repeated calls render the same
// chart.
func (s *ReviewStore) TopRated(limit int) ([]SongRating, error) {
	type row struct {
		SongID  uint
		Average float64
	}
	var rows []row
	err := s.db.Model(&models.Review{}).
		Select("song_id, AVG(rating) AS average").
		Group("song_id").
		Order("average DESC, song_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]uint, len(rows))
	for i, r := range rows {
		ids[i] = r.SongID
	}
	var songs []models.Song
	if err := s.db.Where("id IN ?", ids).Find(&songs).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Song, len(songs))
	for _, song := range songs {
		byID[song.ID] = song
	}

	ratings := make([]SongRating, 0, len(rows))
	for _, r := range rows {
		ratings = append(ratings, SongRating{Song: byID[r.SongID], Average: r.Average})
	}
	return ratings, nil
}

// Statistics computes the dashboard aggregates. DistinctArtists counts
// unique artist names across the author's reviewed songs, not unique songs.
func (s *ReviewStore) Statistics(userID uint) (AuthorStats, error) {
	var stats AuthorStats
	err := s.db.Model(&models.Review{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalReviews).Error
	if err != nil {
		return stats, err
	}
	err = s.db.Model(&models.Review{}).
		Where("user_id = ?", userID).
		Distinct("song_id").
		Count(&stats.DistinctSongs).Error
	if err != nil {
		return stats, err
	}
	err = s.db.Model(&models.Review{}).
		Joins("JOIN songs ON songs.id = reviews.song_id").
		Where("reviews.user_id = ?", userID).
		Distinct("songs.artist").
		Count(&stats.DistinctArtists).Error
	if err != nil {
		return stats, err
	}
	return stats, nil
}
