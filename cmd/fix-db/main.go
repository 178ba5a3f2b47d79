package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// Утилита для ручного сброса "dirty" состояния миграций после неудачного деплоя.
// Использование: go run ./cmd/fix-db -version N
func main() {
	version := flag.Int("version", 0, "версия, на которую принудительно выставить миграции")
	flag.Parse()

	if *version <= 0 {
		log.Fatal("укажите -version: последняя успешно применённая версия миграций")
	}

	host := envOr("DATABASE_HOST", "localhost")
	port := envOr("DATABASE_PORT", "5432")
	user := envOr("DATABASE_USER", "postgres")
	password := os.Getenv("DATABASE_PASSWORD")
	dbname := envOr("DATABASE_DBNAME", "biohack_db")
	sslmode := envOr("DATABASE_SSLMODE", "disable")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Forcing migration version to %d to clean dirty state...\n", *version)

	if err := m.Force(*version); err != nil {
		log.Fatalf("Failed to force version: %v", err)
	}

	fmt.Println("Success! Dirty state cleaned. You can now run the app normally.")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
