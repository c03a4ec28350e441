package store

import (
	"path/filepath"
	"testing"
	"tund/internal/models"
	"tund/internal/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a throwaway sqlite database with the production schema and
// the same error translation the postgres connection uses.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tund.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Song{},
		&models.Review{},
		&models.Share{},
	))
	return db
}

func mustUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("password")
	require.NoError(t, err)
	user := models.User{Username: username, Password: hash}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func mustSong(t *testing.T, db *gorm.DB, title, artist string) *models.Song {
	t.Helper()
	song := models.Song{Title: title, Artist: artist}
	require.NoError(t, db.Create(&song).Error)
	return &song
}
