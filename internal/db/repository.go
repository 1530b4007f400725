package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Store gives the rest of the app access to persisted entries.
type Store struct {
	conn *sql.DB
}

func OpenStore(path string) (*Store, error) {
	conn, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &Store{conn: conn}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

// Filter narrows entry listings. Flavor "" or "all" matches everything;
// Start and End are inclusive calendar dates ("2006-01-02"); malformed
// dates are ignored.
type Filter struct {
	Flavor string
	Start  string
	End    string
}

func (f Filter) active() (flavor string, start, end time.Time, dated bool) {
	flavor = strings.ToLower(strings.TrimSpace(f.Flavor))
	if flavor == "all" {
		flavor = ""
	}
	if t, err := time.Parse("2006-01-02", f.Start); err == nil {
		start = t
		dated = true
	}
	if t, err := time.Parse("2006-01-02", f.End); err == nil {
		// Inclusive end of day.
		end = t.AddDate(0, 0, 1).Add(-time.Second)
		dated = true
	}
	return flavor, start, end, dated
}

func (s *Store) Insert(e Entry) error {
	analysis, err := json.Marshal(e.Analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	support, err := json.Marshal(e.Support)
	if err != nil {
		return fmt.Errorf("marshal support: %w", err)
	}
	var wisdom *string
	if e.Wisdom != nil {
		raw, err := json.Marshal(e.Wisdom)
		if err != nil {
			return fmt.Errorf("marshal wisdom: %w", err)
		}
		enc := string(raw)
		wisdom = &enc
	}

	if _, err := s.conn.Exec(
		`INSERT INTO entries(id, timestamp, text, mood_slider, flavor, analysis, support, quote, spiritual, wisdom)
		 VALUES(?,?,?,?,?,?,?,?,?,?)`,
		e.ID, e.Timestamp, e.Text, e.MoodSlider, e.Flavor,
		string(analysis), string(support), e.Quote, e.Spiritual, wisdom,
	); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// List returns all entries in chronological order.
func (s *Store) List() ([]Entry, error) {
	return s.ListFiltered(Filter{})
}

// ListFiltered returns matching entries in chronological order. When a date
// filter is active, entries with unparseable timestamps are excluded.
func (s *Store) ListFiltered(f Filter) ([]Entry, error) {
	rows, err := s.conn.Query(
		`SELECT id, timestamp, text, mood_slider, flavor, analysis, support, quote, spiritual, wisdom
		 FROM entries ORDER BY timestamp ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	flavor, start, end, dated := f.active()

	out := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		if flavor != "" && e.Flavor != flavor {
			continue
		}
		if dated {
			t := e.Time()
			if t.IsZero() {
				continue
			}
			if !start.IsZero() && t.Before(start) {
				continue
			}
			if !end.IsZero() && t.After(end) {
				continue
			}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return out, nil
}

// Last returns the most recent entry, or nil when the journal is empty.
func (s *Store) Last() (*Entry, error) {
	row := s.conn.QueryRow(
		`SELECT id, timestamp, text, mood_slider, flavor, analysis, support, quote, spiritual, wisdom
		 FROM entries ORDER BY timestamp DESC, rowid DESC LIMIT 1`)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteByID removes one entry, reporting whether a row was deleted.
func (s *Store) DeleteByID(id string) (bool, error) {
	res, err := s.conn.Exec(`DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func (s *Store) Count() (int, error) {
	var n int
	if err := s.conn.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var e Entry
	var analysis, support string
	var wisdom sql.NullString
	if err := row.Scan(
		&e.ID, &e.Timestamp, &e.Text, &e.MoodSlider, &e.Flavor,
		&analysis, &support, &e.Quote, &e.Spiritual, &wisdom,
	); err != nil {
		if err == sql.ErrNoRows {
			return e, err
		}
		return e, fmt.Errorf("scan entry: %w", err)
	}
	if err := json.Unmarshal([]byte(analysis), &e.Analysis); err != nil {
		return e, fmt.Errorf("decode analysis: %w", err)
	}
	if err := json.Unmarshal([]byte(support), &e.Support); err != nil {
		return e, fmt.Errorf("decode support: %w", err)
	}
	if wisdom.Valid {
		if err := json.Unmarshal([]byte(wisdom.String), &e.Wisdom); err != nil {
			return e, fmt.Errorf("decode wisdom: %w", err)
		}
	}
	return e, nil
}
