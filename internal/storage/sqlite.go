// Package storage persists posts in a SQLite database file.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/dablog/dablog/internal/post"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// schema is the persisted-state contract shared with earlier dablog releases.
const schema = `
	CREATE TABLE posts (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		title      TEXT NOT NULL,
		body       TEXT NOT NULL
	)`

func init() {
	// modernc registers as "sqlite", which sqlx does not know as a ? driver.
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}

// DB wraps a SQLite database connection.
type DB struct {
	db  *sqlx.DB
	log *zap.Logger
}

// Option configures a DB.
type Option func(*DB)

// WithLogger sets the logger used for statement-level debug output.
func WithLogger(l *zap.Logger) Option {
	return func(d *DB) {
		if l != nil {
			d.log = l
		}
	}
}

func connect(ctx context.Context, path string, opts []Option) (*DB, error) {
	db, err := sqlx.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	d := &DB{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Initialize creates the database file if needed and defines the posts table.
// It fails if a posts table already exists.
func Initialize(ctx context.Context, path string, opts ...Option) (*DB, error) {
	d, err := connect(ctx, path, opts)
	if err != nil {
		return nil, &InitError{Path: path, Err: err}
	}

	exists, err := d.hasPostsTable(ctx)
	if err != nil {
		d.Close()
		return nil, &InitError{Path: path, Err: err}
	}
	if exists {
		d.Close()
		return nil, &InitError{Path: path, Err: ErrAlreadyInitialized}
	}

	d.log.Debug("creating posts table", zap.String("path", path))
	if _, err := d.db.ExecContext(ctx, schema); err != nil {
		d.Close()
		return nil, &InitError{Path: path, Err: fmt.Errorf("creating schema: %w", err)}
	}

	return d, nil
}

// Open opens an existing database created by Initialize.
func Open(ctx context.Context, path string, opts ...Option) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &InitError{Path: path, Err: ErrNotInitialized}
		}
		return nil, &InitError{Path: path, Err: err}
	}

	d, err := connect(ctx, path, opts)
	if err != nil {
		return nil, &InitError{Path: path, Err: err}
	}

	exists, err := d.hasPostsTable(ctx)
	if err != nil {
		d.Close()
		return nil, &InitError{Path: path, Err: err}
	}
	if !exists {
		d.Close()
		return nil, &InitError{Path: path, Err: ErrNotInitialized}
	}

	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) hasPostsTable(ctx context.Context) (bool, error) {
	var n int
	err := d.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'posts'`)
	if err != nil {
		return false, fmt.Errorf("reading schema: %w", err)
	}
	return n > 0, nil
}

// Insert stores a new post and returns its assigned id. p.ID is ignored.
func (d *DB) Insert(ctx context.Context, p post.Post) (int64, error) {
	res, err := d.db.NamedExecContext(ctx, `
		INSERT INTO posts (created_at, title, body)
		VALUES (:created_at, :title, :body)`, p)
	if err != nil {
		return 0, &WriteError{Op: "inserting", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &WriteError{Op: "inserting", Err: err}
	}

	d.log.Debug("inserted post", zap.Int64("id", id), zap.Int("body_bytes", len(p.Body)))
	return id, nil
}

// FindByID retrieves a post by id. Returns ErrNotFound if it does not exist.
func (d *DB) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	var p post.Post
	err := d.db.GetContext(ctx, &p,
		`SELECT id, created_at, title, body FROM posts WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("reading post %d: %w", id, err)
	}
	return &p, nil
}

// DeleteByID removes a post. Deleting a missing id is not an error.
func (d *DB) DeleteByID(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return &WriteError{Op: "deleting", Err: err}
	}

	n, _ := res.RowsAffected()
	d.log.Debug("deleted post", zap.Int64("id", id), zap.Int64("rows", n))
	return nil
}

// UpdateBody replaces the body of a post, leaving title and created_at as they are.
// Returns ErrNotFound if the post does not exist.
func (d *DB) UpdateBody(ctx context.Context, id int64, body string) error {
	res, err := d.db.ExecContext(ctx, `UPDATE posts SET body = ? WHERE id = ?`, body, id)
	if err != nil {
		return &WriteError{Op: "updating", Err: err}
	}

	n, err := res.RowsAffected()
	if err != nil {
		return &WriteError{Op: "updating", Err: err}
	}
	if n == 0 {
		return fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	return nil
}

// List returns all posts in ascending id order.
func (d *DB) List(ctx context.Context) ([]post.Post, error) {
	posts := []post.Post{}
	err := d.db.SelectContext(ctx, &posts,
		`SELECT id, created_at, title, body FROM posts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}
