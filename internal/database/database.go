package database

import (
	"log"
	"time"

	"github.com/quicklinks/quicklinks-backend/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the store. Without DATABASE_URL the service runs on an
// in-memory SQLite database, keeping the original's process-lifetime-only
// data: everything is lost on restart. With DATABASE_URL set it connects
// to PostgreSQL with pooled connections.
func Connect() {
	var (
		db  *gorm.DB
		err error
	)

	dsn := config.AppConfig.DatabaseURL
	if dsn == "" {
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			log.Fatalf("Failed to open in-memory database: %v", err)
		}
		DB = db
		log.Println("Connected to in-memory SQLite (volatile, data lost on restart)")
		return
	}

	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	DB = db
	log.Println("Connected to PostgreSQL with connection pooling (max: 25, idle: 10)")
}
