// Package library handles SQLite persistence of imported books, so a book
// is parsed once and reopened from the cache afterwards.
package library

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/flickread/flick/internal/book"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Library wraps SQLite access for imported books.
type Library struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Library, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	lib := &Library{db: db}
	if err := lib.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return lib, nil
}

// Close closes the underlying database.
func (l *Library) Close() error {
	return l.db.Close()
}

func (l *Library) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS books (
			id INTEGER PRIMARY KEY,
			hash TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS chapters (
			book_id INTEGER NOT NULL,
			idx INTEGER NOT NULL,
			title TEXT NOT NULL,
			text TEXT NOT NULL,
			word_count INTEGER NOT NULL,
			PRIMARY KEY (book_id, idx)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_books_hash ON books(hash);`,
	}
	for _, stmt := range stmts {
		if _, err := l.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Put stores a parsed book under its content hash, replacing any previous
// import with the same hash.
func (l *Library) Put(ctx context.Context, hash string, b book.Book) (err error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM chapters WHERE book_id IN (SELECT id FROM books WHERE hash = ?)`, hash); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM books WHERE hash = ?`, hash); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO books (hash, title) VALUES (?, ?)`, hash, b.Title)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	if len(b.Chapters) > 0 {
		stmt, err2 := tx.PrepareContext(ctx,
			`INSERT INTO chapters (book_id, idx, title, text, word_count) VALUES (?, ?, ?, ?, ?)`)
		if err2 != nil {
			err = err2
			return err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, ch := range b.Chapters {
			if _, err = stmt.ExecContext(ctx, id, ch.Index, ch.Title, ch.Text, ch.WordCount); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// Get loads a book by content hash. The second return is false when the
// hash has not been imported.
func (l *Library) Get(ctx context.Context, hash string) (book.Book, bool, error) {
	var id int64
	var b book.Book
	err := l.db.QueryRowContext(ctx, `SELECT id, title FROM books WHERE hash = ?`, hash).Scan(&id, &b.Title)
	if err == sql.ErrNoRows {
		return book.Book{}, false, nil
	}
	if err != nil {
		return book.Book{}, false, err
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT idx, title, text, word_count FROM chapters WHERE book_id = ? ORDER BY idx ASC`, id)
	if err != nil {
		return book.Book{}, false, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	for rows.Next() {
		var ch book.Chapter
		if err := rows.Scan(&ch.Index, &ch.Title, &ch.Text, &ch.WordCount); err != nil {
			return book.Book{}, false, err
		}
		b.Chapters = append(b.Chapters, ch)
	}
	if err := rows.Err(); err != nil {
		return book.Book{}, false, err
	}
	return b, true, nil
}
