package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/upmon/upmon/internal/domain"
	"github.com/upmon/upmon/internal/repo"
)

var _ repo.CheckStore = (*Store)(nil)
var _ repo.ResultStore = (*Store)(nil)

// Store is the embedded SQLite adapter. WAL journaling lets the API read
// while the worker writes; busy_timeout covers the occasional overlap.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS checks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			url TEXT NOT NULL,
			interval_seconds INTEGER NOT NULL,
			alert_email TEXT,
			is_active INTEGER NOT NULL DEFAULT 1,
			last_status TEXT,
			last_checked_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS check_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			check_id TEXT NOT NULL REFERENCES checks(id),
			checked_at TIMESTAMP NOT NULL,
			status TEXT NOT NULL,
			http_status INTEGER,
			latency_ms INTEGER,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_check_checked
			ON check_results(check_id, checked_at DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// ---- CheckStore ----

func (s *Store) Add(ctx context.Context, c *domain.Check) error {
	if c.LastStatus == "" {
		c.LastStatus = domain.StatusUnknown
	}
	active := 0
	if c.IsActive {
		active = 1
	}
	var email any
	if c.AlertEmail != "" {
		email = c.AlertEmail
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO checks (id, name, url, interval_seconds, alert_email, is_active)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(c.ID), c.Name, c.URL, c.IntervalSeconds, email, active)
	if err != nil {
		return fmt.Errorf("insert check: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Check, error) {
	return s.listWhere(ctx, ``)
}

func (s *Store) ListActive(ctx context.Context) ([]domain.Check, error) {
	return s.listWhere(ctx, `WHERE is_active = 1`)
}

func (s *Store) listWhere(ctx context.Context, where string) ([]domain.Check, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, url, interval_seconds, alert_email, is_active, last_status, last_checked_at
		   FROM checks `+where)
	if err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}
	defer rows.Close()

	var out []domain.Check
	for rows.Next() {
		c, err := scanCheck(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id domain.CheckID) (*domain.Check, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, url, interval_seconds, alert_email, is_active, last_status, last_checked_at
		   FROM checks WHERE id = ?`, string(id))
	if err != nil {
		return nil, fmt.Errorf("get check: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	c, err := scanCheck(rows)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCheck(rows *sql.Rows) (domain.Check, error) {
	var (
		c         domain.Check
		email     sql.NullString
		active    int
		status    sql.NullString
		checkedAt sql.NullTime
	)
	if err := rows.Scan(&c.ID, &c.Name, &c.URL, &c.IntervalSeconds, &email, &active, &status, &checkedAt); err != nil {
		return domain.Check{}, fmt.Errorf("scan check: %w", err)
	}
	c.AlertEmail = email.String
	c.IsActive = active == 1
	c.LastStatus = domain.ParseStatus(status.String)
	if checkedAt.Valid {
		ts := checkedAt.Time.UTC()
		c.LastCheckedAt = &ts
	}
	return c, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id domain.CheckID, status domain.Status, checkedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE checks SET last_status = ?, last_checked_at = ? WHERE id = ?`,
		string(status), checkedAt.UTC(), string(id))
	if err != nil {
		return fmt.Errorf("update check status: %w", err)
	}
	return nil
}

// ---- ResultStore ----

func (s *Store) Append(ctx context.Context, r *domain.CheckResult) error {
	var httpStatus, latency, errText any
	if r.HTTPStatus != nil {
		httpStatus = *r.HTTPStatus
	}
	if r.LatencyMS != nil {
		latency = *r.LatencyMS
	}
	if r.Error != "" {
		errText = r.Error
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO check_results (check_id, checked_at, status, http_status, latency_ms, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(r.CheckID), r.CheckedAt.UTC(), string(r.Status), httpStatus, latency, errText)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		r.ID = id
	}
	return nil
}

func (s *Store) ListByCheck(ctx context.Context, id domain.CheckID) ([]domain.CheckResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, check_id, checked_at, status, http_status, latency_ms, error
		   FROM check_results
		  WHERE check_id = ?
		  ORDER BY checked_at DESC, id DESC`, string(id))
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var out []domain.CheckResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) LastByCheck(ctx context.Context, id domain.CheckID) (*domain.CheckResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, check_id, checked_at, status, http_status, latency_ms, error
		   FROM check_results
		  WHERE check_id = ?
		  ORDER BY checked_at DESC, id DESC
		  LIMIT 1`, string(id))
	if err != nil {
		return nil, fmt.Errorf("last result: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	r, err := scanResult(rows)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanResult(rows *sql.Rows) (domain.CheckResult, error) {
	var (
		r          domain.CheckResult
		status     string
		httpStatus sql.NullInt64
		latency    sql.NullInt64
		errText    sql.NullString
	)
	if err := rows.Scan(&r.ID, &r.CheckID, &r.CheckedAt, &status, &httpStatus, &latency, &errText); err != nil {
		return domain.CheckResult{}, fmt.Errorf("scan result: %w", err)
	}
	r.CheckedAt = r.CheckedAt.UTC()
	r.Status = domain.ParseStatus(status)
	if httpStatus.Valid {
		v := int(httpStatus.Int64)
		r.HTTPStatus = &v
	}
	if latency.Valid {
		v := latency.Int64
		r.LatencyMS = &v
	}
	r.Error = errText.String
	return r, nil
}
