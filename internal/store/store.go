// Package store provides SQLite persistence for skim.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/abelbrown/skim/internal/track"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex // Protects all database operations
}

// Article is a stored article plus its analysis.
type Article struct {
	ID         string
	SourceName string
	Title      string
	URL        string
	Author     string
	Published  time.Time
	Fetched    time.Time
	Content    string

	// Analysis fields. Recomputing replaces the whole set.
	Sentiment   float64
	Signal      float64
	Topics      []string
	TLDR        string
	ReadMinutes int
	AnalyzedAt  time.Time

	Read bool
}

// Open creates a Store at the given database path, creating tables as
// needed. WAL mode is enabled for file-based databases.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS articles (
		id TEXT PRIMARY KEY,
		source_name TEXT NOT NULL,
		title TEXT NOT NULL,
		url TEXT UNIQUE,
		author TEXT,
		published_at DATETIME NOT NULL,
		fetched_at DATETIME NOT NULL,
		content TEXT,
		sentiment REAL DEFAULT 0,
		signal REAL DEFAULT 0,
		topics TEXT DEFAULT '[]',
		tldr TEXT DEFAULT '',
		read_minutes INTEGER DEFAULT 1,
		analyzed_at DATETIME,
		read INTEGER DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published_at DESC);
	CREATE INDEX IF NOT EXISTS idx_articles_source ON articles(source_name);
	CREATE INDEX IF NOT EXISTS idx_articles_read ON articles(read);

	-- Append-only read log. The consumption window is derived from the
	-- most recent rows; no other drift state is persisted.
	CREATE TABLE IF NOT EXISTS reads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		article_id TEXT NOT NULL,
		topics TEXT NOT NULL,
		read_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reads_time ON reads(read_at DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveArticles stores articles, returning the count of new rows.
// Duplicates (by URL) are silently ignored via INSERT OR IGNORE.
func (s *Store) SaveArticles(articles []Article) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(articles) == 0 {
		return 0, nil
	}

	stmt, err := s.db.Prepare(`
		INSERT OR IGNORE INTO articles (
			id, source_name, title, url, author, published_at, fetched_at,
			content, sentiment, signal, topics, tldr, read_minutes,
			analyzed_at, read
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	newCount := 0
	for _, a := range articles {
		topicsJSON, err := json.Marshal(a.Topics)
		if err != nil {
			return newCount, fmt.Errorf("marshal topics: %w", err)
		}

		result, err := stmt.Exec(
			a.ID,
			a.SourceName,
			a.Title,
			a.URL,
			a.Author,
			a.Published,
			a.Fetched,
			a.Content,
			a.Sentiment,
			a.Signal,
			string(topicsJSON),
			a.TLDR,
			a.ReadMinutes,
			a.AnalyzedAt,
			boolToInt(a.Read),
		)
		if err != nil {
			return newCount, err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return newCount, err
		}
		if affected > 0 {
			newCount++
		}
	}

	return newCount, nil
}

// GetArticles retrieves articles for display, newest published first.
// If includeRead is false, only unread articles are returned.
func (s *Store) GetArticles(limit int, includeRead bool) ([]Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := selectArticles + ` ORDER BY published_at DESC LIMIT ?`
	if !includeRead {
		query = selectArticles + ` WHERE read = 0 ORDER BY published_at DESC LIMIT ?`
	}

	return s.queryArticles(query, limit)
}

// GetArticle retrieves one article by id. Returns sql.ErrNoRows when
// the article does not exist.
func (s *Store) GetArticle(id string) (Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	articles, err := s.queryArticles(selectArticles+` WHERE id = ?`, id)
	if err != nil {
		return Article{}, err
	}
	if len(articles) == 0 {
		return Article{}, sql.ErrNoRows
	}
	return articles[0], nil
}

// MarkRead marks an article read and appends a read event carrying the
// article's topics at read time. The two writes share a transaction.
func (s *Store) MarkRead(id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var topicsJSON string
	if err := tx.QueryRow("SELECT topics FROM articles WHERE id = ?", id).Scan(&topicsJSON); err != nil {
		return fmt.Errorf("look up article %s: %w", id, err)
	}

	if _, err := tx.Exec("UPDATE articles SET read = 1 WHERE id = ?", id); err != nil {
		return err
	}

	if _, err := tx.Exec(
		"INSERT INTO reads (article_id, topics, read_at) VALUES (?, ?, ?)",
		id, topicsJSON, at,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// RecentReads returns the most recent read events, newest first. This
// is the query backing the drift window.
func (s *Store) RecentReads(limit int) ([]track.ReadEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT article_id, topics, read_at
		FROM reads
		ORDER BY read_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []track.ReadEvent
	for rows.Next() {
		var ev track.ReadEvent
		var topicsJSON string
		if err := rows.Scan(&ev.ArticleID, &topicsJSON, &ev.ReadAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(topicsJSON), &ev.Topics); err != nil {
			return nil, fmt.Errorf("unmarshal topics: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

const selectArticles = `
	SELECT id, source_name, title, url, author, published_at, fetched_at,
		content, sentiment, signal, topics, tldr, read_minutes,
		analyzed_at, read
	FROM articles`

// queryArticles executes a query and scans results. Caller must hold s.mu.
func (s *Store) queryArticles(query string, args ...any) ([]Article, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		var topicsJSON string
		var analyzedAt sql.NullTime
		var readInt int
		err := rows.Scan(
			&a.ID,
			&a.SourceName,
			&a.Title,
			&a.URL,
			&a.Author,
			&a.Published,
			&a.Fetched,
			&a.Content,
			&a.Sentiment,
			&a.Signal,
			&topicsJSON,
			&a.TLDR,
			&a.ReadMinutes,
			&analyzedAt,
			&readInt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(topicsJSON), &a.Topics); err != nil {
			return nil, fmt.Errorf("unmarshal topics: %w", err)
		}
		if analyzedAt.Valid {
			a.AnalyzedAt = analyzedAt.Time
		}
		a.Read = readInt != 0
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return articles, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
