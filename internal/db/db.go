package db

import (
	"log"

	"buildboard/internal/config"
	"buildboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := config.Get().DatabaseURL
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=buildboard port=5432 sslmode=disable"
	}

	var err error
	// TranslateError lets callers classify conflicts via gorm.ErrDuplicatedKey
	// instead of matching driver-specific error codes.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")
}

// Migrate applies the schema. The unique indexes created here (vote
// composite key, username, social account IDs) are load-bearing: the
// engine resolves write races through them.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Vote{},
		&models.Feedback{},
		&models.Notification{},
	)
}
