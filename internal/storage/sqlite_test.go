package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dablog/dablog/internal/post"
)

var testNow = time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

// setupTestDB initializes a fresh database in a temp dir.
func setupTestDB(t *testing.T) (*DB, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "dablog.db")
	db, err := Initialize(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db, dbPath
}

func mustInsert(t *testing.T, db *DB, p post.Post) int64 {
	t.Helper()

	id, err := db.Insert(context.Background(), p)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	return id
}

// countPosts returns the number of rows in the posts table.
func countPosts(t *testing.T, db *DB) int {
	t.Helper()

	var count int
	if err := db.db.Get(&count, `SELECT COUNT(*) FROM posts`); err != nil {
		t.Fatalf("counting posts: %v", err)
	}
	return count
}

func TestInitialize_CreatesFile(t *testing.T) {
	_, dbPath := setupTestDB(t)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Initialize() did not create database file")
	}
}

func TestInitialize_Twice(t *testing.T) {
	db, dbPath := setupTestDB(t)
	db.Close()

	_, err := Initialize(context.Background(), dbPath)
	if err == nil {
		t.Fatal("second Initialize() succeeded, want error")
	}

	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("error = %T, want *InitError", err)
	}
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("error = %v, want ErrAlreadyInitialized", err)
	}
}

func TestInitialize_NotADatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dablog.db")
	junk := make([]byte, 4096)
	for i := range junk {
		junk[i] = 'x'
	}
	if err := os.WriteFile(dbPath, junk, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Initialize(context.Background(), dbPath)
	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("Initialize() error = %v, want *InitError", err)
	}
}

func TestInitialize_UnwritableDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing", "dablog.db")

	_, err := Initialize(context.Background(), dbPath)
	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("Initialize() error = %v, want *InitError", err)
	}
	if initErr.Path != dbPath {
		t.Errorf("InitError.Path = %q, want %q", initErr.Path, dbPath)
	}
}

func TestOpen_Missing(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dablog.db")

	_, err := Open(context.Background(), dbPath)
	if !IsNotInitialized(err) {
		t.Fatalf("Open() error = %v, want ErrNotInitialized", err)
	}
	if _, statErr := os.Stat(dbPath); !os.IsNotExist(statErr) {
		t.Error("Open() created a database file")
	}
}

func TestOpen_NoPostsTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "other.db")
	d, err := connect(context.Background(), dbPath, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.db.Exec(`CREATE TABLE notes (id INTEGER PRIMARY KEY)`); err != nil {
		t.Fatal(err)
	}
	d.Close()

	_, err = Open(context.Background(), dbPath)
	if !IsNotInitialized(err) {
		t.Errorf("Open() error = %v, want ErrNotInitialized", err)
	}
}

func TestOpen_Existing(t *testing.T) {
	db, dbPath := setupTestDB(t)
	id := mustInsert(t, db, post.Seed(testNow))
	db.Close()

	reopened, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer reopened.Close()

	if _, err := reopened.FindByID(context.Background(), id); err != nil {
		t.Errorf("FindByID() after reopen error = %v", err)
	}
}

func TestDB_SeedReadAfterWrite(t *testing.T) {
	db, _ := setupTestDB(t)
	ctx := context.Background()

	id := mustInsert(t, db, post.Seed(testNow))
	if id != 1 {
		t.Errorf("first id = %d, want 1", id)
	}

	got, err := db.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Title != "Hello, World!" {
		t.Errorf("Title = %q, want %q", got.Title, "Hello, World!")
	}
	if got.Body != "Hello, World! Welcome to my **dablog**." {
		t.Errorf("Body = %q", got.Body)
	}
	if got.CreatedAt != post.FormatTimestamp(testNow) {
		t.Errorf("CreatedAt = %q, want %q", got.CreatedAt, post.FormatTimestamp(testNow))
	}
}

func TestDB_IDsMonotonicAcrossDeletes(t *testing.T) {
	db, _ := setupTestDB(t)
	ctx := context.Background()

	var maxID int64
	for i := 0; i < 5; i++ {
		id := mustInsert(t, db, post.Untitled("body", testNow))
		if id <= maxID {
			t.Fatalf("insert %d: id %d not greater than %d", i, id, maxID)
		}
		maxID = id

		// Deleting the newest row must not let its id be handed out again.
		if i%2 == 0 {
			if err := db.DeleteByID(ctx, id); err != nil {
				t.Fatalf("DeleteByID(%d) error = %v", id, err)
			}
		}
	}
}

func TestDB_DeleteIdempotent(t *testing.T) {
	db, _ := setupTestDB(t)
	ctx := context.Background()

	keep := mustInsert(t, db, post.Seed(testNow))
	drop := mustInsert(t, db, post.Untitled("gone", testNow))

	for i := 0; i < 2; i++ {
		if err := db.DeleteByID(ctx, drop); err != nil {
			t.Fatalf("DeleteByID() call %d error = %v", i+1, err)
		}
		if count := countPosts(t, db); count != 1 {
			t.Errorf("after delete %d: %d posts, want 1", i+1, count)
		}
	}

	if err := db.DeleteByID(ctx, 999); err != nil {
		t.Errorf("DeleteByID(never assigned) error = %v", err)
	}
	if _, err := db.FindByID(ctx, keep); err != nil {
		t.Errorf("FindByID(kept) error = %v", err)
	}
}

func TestDB_FindByID_NotFound(t *testing.T) {
	db, _ := setupTestDB(t)
	ctx := context.Background()

	deleted := mustInsert(t, db, post.Seed(testNow))
	if err := db.DeleteByID(ctx, deleted); err != nil {
		t.Fatal(err)
	}

	for _, id := range []int64{0, -1, deleted, 42} {
		got, err := db.FindByID(ctx, id)
		if !IsNotFound(err) {
			t.Errorf("FindByID(%d) error = %v, want ErrNotFound", id, err)
		}
		if got != nil {
			t.Errorf("FindByID(%d) = %+v, want nil", id, got)
		}
	}
}

func TestDB_UpdateBody(t *testing.T) {
	db, _ := setupTestDB(t)
	ctx := context.Background()

	id := mustInsert(t, db, post.Seed(testNow))
	if err := db.UpdateBody(ctx, id, "rewritten"); err != nil {
		t.Fatalf("UpdateBody() error = %v", err)
	}

	got, err := db.FindByID(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Body != "rewritten" {
		t.Errorf("Body = %q, want %q", got.Body, "rewritten")
	}
	if got.Title != post.SeedTitle {
		t.Errorf("Title = %q, want unchanged %q", got.Title, post.SeedTitle)
	}
	if got.CreatedAt != post.FormatTimestamp(testNow) {
		t.Errorf("CreatedAt changed to %q", got.CreatedAt)
	}

	if err := db.UpdateBody(ctx, id+100, "nobody"); !IsNotFound(err) {
		t.Errorf("UpdateBody(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDB_List(t *testing.T) {
	db, _ := setupTestDB(t)
	ctx := context.Background()

	empty, err := db.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("List() on empty db = %d posts", len(empty))
	}

	mustInsert(t, db, post.Seed(testNow))
	mustInsert(t, db, post.Untitled("second post", testNow.Add(time.Minute)))

	posts, err := db.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("List() = %d posts, want 2", len(posts))
	}
	if posts[0].ID != 1 || posts[1].ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", posts[0].ID, posts[1].ID)
	}
	if posts[1].Body != "second post" || posts[1].Title != post.UntitledTitle {
		t.Errorf("second post = %+v", posts[1])
	}
}

func TestDB_BodyVerbatim(t *testing.T) {
	db, _ := setupTestDB(t)

	body := "line one\n\n  indented 'quoted' \"double\"\ttab\nunicode: héllo ✓\n"
	id := mustInsert(t, db, post.Untitled(body, testNow))

	got, err := db.FindByID(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Body != body {
		t.Errorf("Body = %q, want %q", got.Body, body)
	}
}
