package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"ubizy/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	due_date    TEXT NOT NULL,
	completed   INTEGER NOT NULL DEFAULT 0,
	is_static   INTEGER NOT NULL DEFAULT 0,
	category    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS events (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	start_date  TEXT NOT NULL,
	end_date    TEXT NOT NULL,
	completed   INTEGER NOT NULL DEFAULT 0,
	is_static   INTEGER NOT NULL DEFAULT 0,
	category    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS habits (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	frequency   TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS habit_completions (
	habit_id     TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	completed_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_habit_completions_habit ON habit_completions(habit_id);
`

// SQLiteStore persists collections in a local SQLite database so a session
// can be resumed. Listings come back in insertion (rowid) order.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'ubizy init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema is idempotent; applying it on load covers upgrades that add tables.
	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) AddTask(task models.Task) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO tasks (id, title, description, due_date, completed, is_static, category)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Description, task.DueDate.Format(time.RFC3339Nano),
		boolToInt(task.Completed), boolToInt(task.IsStatic), task.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(
		`SELECT id, title, description, due_date, completed, is_static, category FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (s *SQLiteStore) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, due_date, completed, is_static, category FROM tasks ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *SQLiteStore) UpdateTask(task models.Task) error {
	res, err := s.db.Exec(
		`UPDATE tasks SET title = ?, description = ?, due_date = ?, completed = ?, is_static = ?, category = ?
		 WHERE id = ?`,
		task.Title, task.Description, task.DueDate.Format(time.RFC3339Nano),
		boolToInt(task.Completed), boolToInt(task.IsStatic), task.Category, task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return requireRow(res)
}

func (s *SQLiteStore) DeleteTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireRow(res)
}

func (s *SQLiteStore) AddEvent(event models.Event) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO events (id, title, description, start_date, end_date, completed, is_static, category)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.Title, event.Description,
		event.StartDate.Format(time.RFC3339Nano), event.EndDate.Format(time.RFC3339Nano),
		boolToInt(event.Completed), boolToInt(event.IsStatic), event.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to add event: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetEvent(id string) (models.Event, error) {
	row := s.db.QueryRow(
		`SELECT id, title, description, start_date, end_date, completed, is_static, category FROM events WHERE id = ?`, id)
	return scanEvent(row)
}

func (s *SQLiteStore) GetAllEvents() ([]models.Event, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, start_date, end_date, completed, is_static, category FROM events ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) UpdateEvent(event models.Event) error {
	res, err := s.db.Exec(
		`UPDATE events SET title = ?, description = ?, start_date = ?, end_date = ?, completed = ?, is_static = ?, category = ?
		 WHERE id = ?`,
		event.Title, event.Description,
		event.StartDate.Format(time.RFC3339Nano), event.EndDate.Format(time.RFC3339Nano),
		boolToInt(event.Completed), boolToInt(event.IsStatic), event.Category, event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return requireRow(res)
}

func (s *SQLiteStore) DeleteEvent(id string) error {
	res, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return requireRow(res)
}

func (s *SQLiteStore) AddHabit(habit models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO habits (id, title, description, frequency, category) VALUES (?, ?, ?, ?, ?)`,
		habit.ID, habit.Title, habit.Description, string(habit.Frequency), habit.Category,
	); err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}
	if err := replaceCompletions(tx, habit); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(
		`SELECT id, title, description, frequency, category FROM habits WHERE id = ?`, id)

	var habit models.Habit
	var freq string
	if err := row.Scan(&habit.ID, &habit.Title, &habit.Description, &freq, &habit.Category); err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, ErrNotFound
		}
		return models.Habit{}, fmt.Errorf("failed to get habit: %w", err)
	}
	habit.Frequency = models.Frequency(freq)

	dates, err := s.completionsFor(habit.ID)
	if err != nil {
		return models.Habit{}, err
	}
	habit.CompletedDates = dates
	return habit, nil
}

func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, frequency, category FROM habits ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var habit models.Habit
		var freq string
		if err := rows.Scan(&habit.ID, &habit.Title, &habit.Description, &freq, &habit.Category); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habit.Frequency = models.Frequency(freq)
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		dates, err := s.completionsFor(habits[i].ID)
		if err != nil {
			return nil, err
		}
		habits[i].CompletedDates = dates
	}
	return habits, nil
}

func (s *SQLiteStore) UpdateHabit(habit models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE habits SET title = ?, description = ?, frequency = ?, category = ? WHERE id = ?`,
		habit.Title, habit.Description, string(habit.Frequency), habit.Category, habit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	if err := replaceCompletions(tx, habit); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) DeleteHabit(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM habit_completions WHERE habit_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete habit completions: %w", err)
	}
	res, err := tx.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) completionsFor(habitID string) ([]time.Time, error) {
	rows, err := s.db.Query(
		`SELECT completed_at FROM habit_completions WHERE habit_id = ? ORDER BY rowid`, habitID)
	if err != nil {
		return nil, fmt.Errorf("failed to query habit completions: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan habit completion: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid completion timestamp %q: %w", raw, err)
		}
		dates = append(dates, t)
	}
	return dates, rows.Err()
}

// replaceCompletions rewrites a habit's completion rows to match the given
// record. Completion sets are small, so a full rewrite keeps insertion
// order without diffing.
func replaceCompletions(tx *sql.Tx, habit models.Habit) error {
	if _, err := tx.Exec(`DELETE FROM habit_completions WHERE habit_id = ?`, habit.ID); err != nil {
		return fmt.Errorf("failed to clear habit completions: %w", err)
	}
	for _, d := range habit.CompletedDates {
		if _, err := tx.Exec(
			`INSERT INTO habit_completions (habit_id, completed_at) VALUES (?, ?)`,
			habit.ID, d.Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("failed to insert habit completion: %w", err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var task models.Task
	var due string
	var completed, isStatic int
	if err := row.Scan(&task.ID, &task.Title, &task.Description, &due, &completed, &isStatic, &task.Category); err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, fmt.Errorf("failed to scan task: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, due)
	if err != nil {
		return models.Task{}, fmt.Errorf("invalid due date %q: %w", due, err)
	}
	task.DueDate = t
	task.Completed = completed != 0
	task.IsStatic = isStatic != 0
	return task, nil
}

func scanEvent(row rowScanner) (models.Event, error) {
	var event models.Event
	var start, end string
	var completed, isStatic int
	if err := row.Scan(&event.ID, &event.Title, &event.Description, &start, &end, &completed, &isStatic, &event.Category); err != nil {
		if err == sql.ErrNoRows {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, fmt.Errorf("failed to scan event: %w", err)
	}
	st, err := time.Parse(time.RFC3339Nano, start)
	if err != nil {
		return models.Event{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	et, err := time.Parse(time.RFC3339Nano, end)
	if err != nil {
		return models.Event{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	event.StartDate = st
	event.EndDate = et
	event.Completed = completed != 0
	event.IsStatic = isStatic != 0
	return event, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
