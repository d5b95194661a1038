package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Connect opens a pgx backed pool and pings it.
func Connect(dbURL string) (*sql.DB, error) {
	if dbURL == "" {
		return nil, errors.New("database url is empty")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sections (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		"order" INT NOT NULL DEFAULT 0,
		parent_id INT REFERENCES sections(id)
	)`,
	`CREATE TABLE IF NOT EXISTS brands (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		"order" INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		"order" INT NOT NULL DEFAULT 0,
		price NUMERIC(18, 2) NOT NULL CHECK (price >= 0),
		image_url TEXT NOT NULL DEFAULT '',
		section_id INT NOT NULL REFERENCES sections(id),
		brand_id INT REFERENCES brands(id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		user_name TEXT NOT NULL,
		phone TEXT NOT NULL,
		address TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id INT NOT NULL,
		name TEXT NOT NULL,
		price NUMERIC(18, 2) NOT NULL,
		quantity INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id SERIAL PRIMARY KEY,
		last_name TEXT NOT NULL,
		first_name TEXT NOT NULL,
		patronymic TEXT NOT NULL DEFAULT '',
		age INT NOT NULL
	)`,
}

// EnsureSchema creates the tables the Postgres repositories read and write.
func EnsureSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
