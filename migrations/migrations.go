package migrations

import (
	"database/sql"
	"fmt"
)

var db *sql.DB

// Init sets the DB connection for migrations
func Init(database *sql.DB) {
	db = database
}

// Migrate creates required tables if they do not exist
func Migrate() error {
	if db == nil {
		return fmt.Errorf("db is not initialized")
	}
	createQueryLog := `
	CREATE TABLE IF NOT EXISTS query_log (
		id INT AUTO_INCREMENT PRIMARY KEY,
		request_id VARCHAR(36) NOT NULL,
		query_text TEXT NOT NULL,
		user_type VARCHAR(20) NOT NULL,
		context_type VARCHAR(50) NOT NULL,
		specialty VARCHAR(50) NOT NULL,
		escalated TINYINT(1) NOT NULL DEFAULT 0,
		model VARCHAR(100) NOT NULL DEFAULT '',
		response_mode VARCHAR(20) NOT NULL DEFAULT '',
		citation_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`
	if _, err := db.Exec(createQueryLog); err != nil {
		return err
	}
	return nil
}
