// Package database opens the SQLite file that backs visitor analytics and
// applies its schema.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// TimeLayout is how timestamps are written to SQLite. Values compare
// correctly as strings and are understood by SQLite's date functions.
const TimeLayout = "2006-01-02 15:04:05"

// Open opens (creating if needed) the SQLite database at path. Use
// ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// SQLite allows a single writer; one connection also keeps :memory:
	// databases alive for the life of the pool.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(0)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	if path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	for _, p := range pragmas {
		if _, err := db.ExecContext(pingCtx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	slog.Debug("sqlite database opened", "path", path)
	return db, nil
}

// FormatTime converts t to the stored representation.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime reads a stored timestamp in TimeLayout or RFC 3339 form.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(TimeLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// Time scans a timestamp column. The driver returns DATETIME columns as
// time.Time and untyped expressions as text; both are accepted.
type Time struct {
	time.Time
}

func (t *Time) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
	case time.Time:
		t.Time = v.UTC()
	case string:
		parsed, err := ParseTime(v)
		if err != nil {
			return err
		}
		t.Time = parsed
	case []byte:
		parsed, err := ParseTime(string(v))
		if err != nil {
			return err
		}
		t.Time = parsed
	default:
		return fmt.Errorf("scan timestamp: unsupported type %T", src)
	}
	return nil
}
