package history

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	repo := &Repository{db: db}
	if err := repo.init(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *Repository) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL DEFAULT '',
		theme TEXT NOT NULL,
		from_at TEXT NOT NULL,
		to_at TEXT NOT NULL,
		started_run_at TEXT NOT NULL,
		ended_run_at TEXT NOT NULL DEFAULT '',
		outcome TEXT NOT NULL DEFAULT ''
	)
	`
	_, err := r.db.Exec(query)
	return err
}

// Record inserts a session row at run start and fills in its ID. The
// outcome stays empty until Finalize.
func (r *Repository) Record(s *Session) error {
	result, err := r.db.Exec(
		"INSERT INTO sessions (title, theme, from_at, to_at, started_run_at) VALUES (?, ?, ?, ?, ?)",
		s.Title,
		s.Theme,
		s.From.Format(time.RFC3339),
		s.To.Format(time.RFC3339),
		s.StartedRunAt.Format(time.RFC3339),
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *Repository) Finalize(id int64, outcome string, endedAt time.Time) error {
	_, err := r.db.Exec(
		"UPDATE sessions SET outcome = ?, ended_run_at = ? WHERE id = ?",
		outcome, endedAt.Format(time.RFC3339), id,
	)
	return err
}

// Recent returns the most recently ended sessions, newest first.
func (r *Repository) Recent(limit int) ([]Session, error) {
	rows, err := r.db.Query(
		`SELECT id, title, theme, from_at, to_at, started_run_at, ended_run_at, outcome
		 FROM sessions ORDER BY started_run_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var from, to, started, ended string
		if err := rows.Scan(&s.ID, &s.Title, &s.Theme, &from, &to, &started, &ended, &s.Outcome); err != nil {
			return nil, err
		}
		s.From, _ = time.Parse(time.RFC3339, from)
		s.To, _ = time.Parse(time.RFC3339, to)
		s.StartedRunAt, _ = time.Parse(time.RFC3339, started)
		if ended != "" {
			s.EndedRunAt, _ = time.Parse(time.RFC3339, ended)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}
