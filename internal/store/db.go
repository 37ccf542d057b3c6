package store

import (
	"database/sql"
	"errors"
	"log/slog"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a row targeted by id does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	DB *sql.DB
}

func NewStore(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &Store{DB: db}, nil
}

// InitSchema creates the full schema directly. The server runs file-based
// migrations instead; this is for the CLI and tests, which may run against
// a fresh database without a migrations directory on hand.
func (s *Store) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		more_description TEXT NOT NULL DEFAULT '',
		price REAL NOT NULL,
		sale_price REAL,
		category TEXT NOT NULL,
		material TEXT NOT NULL DEFAULT '',
		sizes TEXT NOT NULL DEFAULT '[]',
		colors TEXT NOT NULL DEFAULT '[]',
		tags TEXT NOT NULL DEFAULT '[]',
		stock INTEGER NOT NULL DEFAULT 0,
		sku TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		weight REAL NOT NULL DEFAULT 0,
		length REAL NOT NULL DEFAULT 0,
		width REAL NOT NULL DEFAULT 0,
		height REAL NOT NULL DEFAULT 0,
		image_url TEXT NOT NULL DEFAULT '',
		rating REAL NOT NULL DEFAULT 0,
		num_reviews INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		age INTEGER NOT NULL DEFAULT 0,
		mobile_number TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		items TEXT NOT NULL DEFAULT '[]',
		total_price REAL NOT NULL DEFAULT 0,
		ship_name TEXT NOT NULL DEFAULT '',
		ship_mobile TEXT NOT NULL DEFAULT '',
		ship_address TEXT NOT NULL DEFAULT '',
		ship_pincode TEXT NOT NULL DEFAULT '',
		ship_state TEXT NOT NULL DEFAULT '',
		payment_method TEXT NOT NULL DEFAULT '',
		order_status TEXT NOT NULL DEFAULT 'Pending',
		delivery_option TEXT NOT NULL DEFAULT 'Option 1 - 5 days to delivery',
		admin_message TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS admins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);
	`
	_, err := s.DB.Exec(query)
	if err != nil {
		slog.Error("Error creating schema", "error", err)
		return err
	}
	return nil
}
