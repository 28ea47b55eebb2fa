// Package runlog records training runs in a SQLite database
package runlog

import "context"
import "database/sql"
import "sync"
import "time"

import _ "github.com/mattn/go-sqlite3"
import "github.com/google/uuid"
import "github.com/pkg/errors"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id             TEXT PRIMARY KEY,
	started        TEXT NOT NULL,
	finished       TEXT NOT NULL,
	dataset        TEXT NOT NULL,
	clauses        INTEGER NOT NULL,
	max_activation INTEGER NOT NULL,
	s              REAL NOT NULL,
	threshold      REAL NOT NULL,
	features       INTEGER NOT NULL,
	seed           TEXT NOT NULL,
	epochs         INTEGER NOT NULL,
	correct        INTEGER NOT NULL,
	total          INTEGER NOT NULL
)`

const insert = `
INSERT INTO runs (
	id, started, finished, dataset,
	clauses, max_activation, s, threshold, features, seed,
	epochs, correct, total
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const list = `
SELECT id, started, finished, dataset,
	clauses, max_activation, s, threshold, features, seed,
	epochs, correct, total
FROM runs ORDER BY started DESC LIMIT ?`

// fixed width, so ORDER BY on the text column is chronological
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one training run
type Run struct {
	ID       uuid.UUID
	Started  time.Time
	Finished time.Time
	Dataset  string

	Clauses       int
	MaxActivation int
	S             float64
	Threshold     float64
	Features      int
	Seed          uint64

	Epochs  int
	Correct int
	Total   int
}

// Store is a run log backed by a SQLite file
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens or creates the run log at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, errors.Wrapf(err, "open run log %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "init run log %s", path)
	}
	return &Store{db: db}, nil
}

// Record stores a run. A zero ID is replaced by a fresh random one, which is returned.
func (s *Store) Record(ctx context.Context, r Run) (uuid.UUID, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, insert,
		r.ID.String(),
		r.Started.UTC().Format(timeFormat),
		r.Finished.UTC().Format(timeFormat),
		r.Dataset,
		r.Clauses,
		r.MaxActivation,
		r.S,
		r.Threshold,
		r.Features,
		// sqlite integers are signed, keep the full uint64 range
		formatSeed(r.Seed),
		r.Epochs,
		r.Correct,
		r.Total,
	)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "record run")
	}
	return r.ID, nil
}

// List returns up to limit runs, most recent first
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, list, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var id, started, finished, seed string
		err := rows.Scan(&id, &started, &finished, &r.Dataset,
			&r.Clauses, &r.MaxActivation, &r.S, &r.Threshold, &r.Features, &seed,
			&r.Epochs, &r.Correct, &r.Total)
		if err != nil {
			return nil, errors.Wrap(err, "scan run")
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, errors.Wrapf(err, "run id %q", id)
		}
		if r.Started, err = time.Parse(timeFormat, started); err != nil {
			return nil, errors.Wrapf(err, "run %s start", id)
		}
		if r.Finished, err = time.Parse(timeFormat, finished); err != nil {
			return nil, errors.Wrapf(err, "run %s finish", id)
		}
		if r.Seed, err = parseSeed(seed); err != nil {
			return nil, errors.Wrapf(err, "run %s seed", id)
		}
		runs = append(runs, r)
	}
	return runs, errors.Wrap(rows.Err(), "list runs")
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
