package postgres

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"college_backend/config"
)

var DB *sql.DB

// Connect opens the Postgres pool from the DB_* environment variables and
// verifies it with a ping.
func Connect() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.GetEnvDefault("DB_HOST", "localhost"),
		config.GetEnvDefault("DB_PORT", "5432"),
		config.GetEnvDefault("DB_USER", "postgres"),
		config.GetEnv("DB_PASSWORD"),
		config.GetEnvDefault("DB_NAME", "college"),
		config.GetEnvDefault("DB_SSLMODE", "disable"),
	)

	var err error
	DB, err = sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("failed to open postgres connection:", err)
	}

	if err = DB.Ping(); err != nil {
		log.Fatal("failed to connect to postgres:", err)
	}

	log.Println("postgres connected")
}

// GetDB returns the shared pool opened by Connect.
func GetDB() *sql.DB {
	return DB
}
