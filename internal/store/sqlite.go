package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/the-usman/task-back-end/internal/models"
	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteStore implements UserStore on top of a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates a new SQLite-backed user store and applies the schema.
// Pass ":memory:" for an ephemeral store.
func Open(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	// Email is intentionally not UNIQUE: uniqueness is enforced by the
	// workflow's pre-insert existence check, matching the collection-store
	// semantics this adapter stands in for.
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
	`
	_, err := s.db.Exec(sqlStmt)
	return err
}

// Insert stores a new user record and returns the generated id.
func (s *SQLiteStore) Insert(ctx context.Context, user models.User) (string, error) {
	id := uuid.New().String()

	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO users(id, first_name, last_name, email, password_hash) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	if _, err = stmt.ExecContext(ctx, id, user.FirstName, user.LastName, user.Email, user.PasswordHash); err != nil {
		return "", err
	}
	return id, nil
}

// GetByID retrieves a single user record by its id.
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, "SELECT id, first_name, last_name, email, password_hash FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// FindByEmail retrieves the first user record whose email field equals the
// given address.
func (s *SQLiteStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, "SELECT id, first_name, last_name, email, password_hash FROM users WHERE email = ? LIMIT 1", email)
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// UpdatePassword overwrites only the password hash of the given record.
func (s *SQLiteStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE users SET password_hash = ? WHERE id = ?", passwordHash, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
