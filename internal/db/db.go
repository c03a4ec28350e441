package db

import (
	"log"
	"os"
	"tund/internal/models"
	"tund/internal/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=tund port=5432 sslmode=disable"
	}

	var err error
	// TranslateError maps unique index violations to gorm.ErrDuplicatedKey,
	// which the stores convert into domain conflicts.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Song{},
		&models.Review{},
		&models.Share{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed starter catalog
	seedSongs()
}

// seedSongs fills an empty catalog with a small starter set. FindOrCreate
// keeps this idempotent across restarts.
func seedSongs() {
	catalog := store.NewCatalog(DB)
	songs := []models.Song{
		{Title: "Bohemian Rhapsody", Artist: "Queen"},
		{Title: "Imagine", Artist: "John Lennon"},
		{Title: "Billie Jean", Artist: "Michael Jackson"},
		{Title: "Hey Jude", Artist: "The Beatles"},
		{Title: "Smells Like Teen Spirit", Artist: "Nirvana"},
	}

	for _, song := range songs {
		if _, err := catalog.FindOrCreate(song.Title, song.Artist, ""); err != nil {
			log.Printf("Failed to seed song %s: %v", song.Title, err)
		}
	}
	log.Println("Starter catalog ready")
}
