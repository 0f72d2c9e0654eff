package db

import (
	"database/sql"
	"fmt"
	"log"

	"ArtLens/config"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

var DB *sql.DB

// ConnectDB establishes a connection to the database.
func ConnectDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to the database.")
	return nil
}

// CloseDB closes the database connection.
func CloseDB() error {
	if DB == nil {
		return nil
	}
	return DB.Close()
}

// InitDB initializes the database schema, creating tables if they don't exist.
func InitDB() error {
	for name, query := range schemaStatements {
		if _, err := DB.Exec(query); err != nil {
			return fmt.Errorf("failed to create %s table: %w", name, err)
		}
	}
	log.Println("Database schema initialized (or already exists).")
	return nil
}

var schemaStatements = map[string]string{
	"users": `
	CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	);
	`,
	"artworks": `
	CREATE TABLE IF NOT EXISTS artworks (
		id VARCHAR(64) PRIMARY KEY,
		artist_id VARCHAR(64),
		title VARCHAR(255) NOT NULL,
		image_url VARCHAR(767) NOT NULL,
		description TEXT,
		categories VARCHAR(512),
		dimensions VARCHAR(100),
		medium VARCHAR(100),
		price VARCHAR(50),
		on_sale TINYINT(1) DEFAULT 0,
		like_count INT DEFAULT 0,
		comment_count INT DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_artworks_artist (artist_id),
		INDEX idx_artworks_categories (categories)
	);
	`,
}

// Artist and AR model tables are managed by GORM AutoMigrate (see gorm.go);
// the raw schema here covers only the hand-written SQL repositories.
