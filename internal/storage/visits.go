package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Visit is one page view recorded during this session.
type Visit struct {
	ID        int64
	URL       string
	Title     string
	VisitedAt time.Time
}

// VisitLog records normal-mode page views for the current session.
type VisitLog struct {
	db  *sql.DB
	now func() time.Time
}

// NewVisitLog creates a visit log using the given database.
func NewVisitLog(db *DB) *VisitLog {
	return &VisitLog{db: db.Conn(), now: time.Now}
}

// Record adds a visit. If the URL was already the most recent visit, only its
// timestamp is refreshed.
func (vl *VisitLog) Record(url, title string) error {
	if url == "" {
		return nil
	}
	ts := vl.now().UnixMilli()

	var lastID int64
	var lastURL string
	err := vl.db.QueryRow(`SELECT id, url FROM visits ORDER BY id DESC LIMIT 1`).Scan(&lastID, &lastURL)
	switch {
	case err == nil && lastURL == url:
		if _, err := vl.db.Exec(`UPDATE visits SET visited_at = ?, title = ? WHERE id = ?`, ts, title, lastID); err != nil {
			return fmt.Errorf("updating visit: %w", err)
		}
		return nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("reading last visit: %w", err)
	}

	if _, err := vl.db.Exec(
		`INSERT INTO visits (url, title, visited_at) VALUES (?, ?, ?)`,
		url, title, ts,
	); err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// Recent returns up to limit visits, newest first. A limit <= 0 returns all.
func (vl *VisitLog) Recent(limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := vl.db.Query(
		`SELECT id, url, title, visited_at FROM visits ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing visits: %w", err)
	}
	defer rows.Close()
	return scanVisits(rows)
}

func scanVisits(rows *sql.Rows) ([]Visit, error) {
	var visits []Visit
	for rows.Next() {
		var v Visit
		var ms int64
		if err := rows.Scan(&v.ID, &v.URL, &v.Title, &ms); err != nil {
			return nil, fmt.Errorf("scanning visit: %w", err)
		}
		v.VisitedAt = time.UnixMilli(ms)
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// Search finds visits whose URL or title contains query, newest first.
func (vl *VisitLog) Search(query string) ([]Visit, error) {
	like := "%" + query + "%"
	rows, err := vl.db.Query(
		`SELECT id, url, title, visited_at FROM visits
		 WHERE title LIKE ? OR url LIKE ?
		 ORDER BY id DESC`,
		like, like,
	)
	if err != nil {
		return nil, fmt.Errorf("searching visits: %w", err)
	}
	defer rows.Close()
	return scanVisits(rows)
}

// Count returns the number of recorded visits.
func (vl *VisitLog) Count() (int, error) {
	var count int
	if err := vl.db.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting visits: %w", err)
	}
	return count, nil
}

// Clear removes all visits.
func (vl *VisitLog) Clear() error {
	if _, err := vl.db.Exec(`DELETE FROM visits`); err != nil {
		return fmt.Errorf("clearing visits: %w", err)
	}
	return nil
}
