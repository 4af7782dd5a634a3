package repos

import (
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a lookup or update matches no row.
var ErrNotFound = errors.New("not found")

// OpenDB connects with driver ("sqlite" or "postgres"), creates the schema
// and seeds the demo catalog and users.
func OpenDB(driver, dsn string) (*sqlx.DB, error) {
	if driver == "" {
		driver = "sqlite"
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// every pooled connection to ":memory:" would be its own database
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	if err := seedUsers(db); err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	return db, nil
}

const sqliteSchema = `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price INTEGER NOT NULL CHECK (price >= 0),
  stock INTEGER NOT NULL CHECK (stock >= 0),
  image TEXT,
  discount INTEGER NOT NULL DEFAULT 0 CHECK (discount BETWEEN 0 AND 100),
  active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USUARIO','ADMIN'))
);

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  last_seen TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

CREATE TABLE IF NOT EXISTS subscriptions(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  created_at TEXT NOT NULL
);
`

// Postgres has no multi-statement PRAGMA and spells autoincrement BIGSERIAL.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS products(
	  id BIGSERIAL PRIMARY KEY,
	  name TEXT NOT NULL,
	  price INTEGER NOT NULL CHECK (price >= 0),
	  stock INTEGER NOT NULL CHECK (stock >= 0),
	  image TEXT,
	  discount INTEGER NOT NULL DEFAULT 0 CHECK (discount BETWEEN 0 AND 100),
	  active INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS users(
	  id TEXT PRIMARY KEY,
	  email TEXT NOT NULL UNIQUE,
	  password_hash TEXT NOT NULL,
	  role TEXT NOT NULL CHECK (role IN ('USUARIO','ADMIN'))
	)`,
	`CREATE TABLE IF NOT EXISTS sessions(
	  id TEXT PRIMARY KEY,
	  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
	  last_seen TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id)`,
	`CREATE TABLE IF NOT EXISTS subscriptions(
	  id BIGSERIAL PRIMARY KEY,
	  name TEXT NOT NULL,
	  email TEXT NOT NULL,
	  created_at TEXT NOT NULL
	)`,
}

func ensureSchema(db *sqlx.DB) error {
	if db.DriverName() == "postgres" {
		for _, stmt := range postgresSchema {
			if _, err := db.Exec(stmt); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := db.Exec(sqliteSchema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products")

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	seed := []struct {
		name            string
		price, stock, d int
		img             string
	}{
		{"Paracetamol 500mg", 1990, 35, 10, "paracetamol.jpg"},
		{"Ibuprofeno 400mg", 2990, 22, 0, "ibuprofeno.jpg"},
		{"Amoxicilina 500mg", 4990, 5, 0, "amoxicilina.jpg"},
	}
	for _, p := range seed {
		if _, err := tx.Exec(tx.Rebind(`INSERT INTO products(name,price,stock,discount,image) VALUES(?,?,?,?,?)`),
			p.name, p.price, p.stock, p.d, p.img); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// seedUsers ensures the demo ADMIN and USUARIO exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Role, Hash string
	}
	mk := func(id, email, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
		return u{ID: id, Email: email, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-admin", "admin@demo.cl", "ADMIN", "123456"),
		mk("u-user", "user@demo.cl", "USUARIO", "123456"),
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(tx.Rebind(`
			INSERT INTO users(id,email,password_hash,role)
			VALUES(?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`), x.ID, x.Email, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
