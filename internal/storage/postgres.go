package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"

	"ubizy/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	seq         BIGSERIAL,
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	due_date    TIMESTAMPTZ NOT NULL,
	completed   BOOLEAN NOT NULL DEFAULT FALSE,
	is_static   BOOLEAN NOT NULL DEFAULT FALSE,
	category    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS events (
	seq         BIGSERIAL,
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	start_date  TIMESTAMPTZ NOT NULL,
	end_date    TIMESTAMPTZ NOT NULL,
	completed   BOOLEAN NOT NULL DEFAULT FALSE,
	is_static   BOOLEAN NOT NULL DEFAULT FALSE,
	category    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS habits (
	seq         BIGSERIAL,
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	frequency   TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS habit_completions (
	seq          BIGSERIAL,
	habit_id     TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	completed_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_habit_completions_habit ON habit_completions(habit_id);
`

// PostgresStore is the shared-database counterpart of SQLiteStore, for
// setups where the planner state lives on a server.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: connStr}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Those are rejected at startup; the keyring or
// environment should hold credentials instead.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

func (s *PostgresStore) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) AddTask(task models.Task) error {
	_, err := s.db.Exec(
		`INSERT INTO tasks (id, title, description, due_date, completed, is_static, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET title = $2, description = $3, due_date = $4, completed = $5, is_static = $6, category = $7`,
		task.ID, task.Title, task.Description, task.DueDate, task.Completed, task.IsStatic, task.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(
		`SELECT id, title, description, due_date, completed, is_static, category FROM tasks WHERE id = $1`, id)
	return scanPGTask(row)
}

func (s *PostgresStore) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, due_date, completed, is_static, category FROM tasks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanPGTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *PostgresStore) UpdateTask(task models.Task) error {
	res, err := s.db.Exec(
		`UPDATE tasks SET title = $1, description = $2, due_date = $3, completed = $4, is_static = $5, category = $6
		 WHERE id = $7`,
		task.Title, task.Description, task.DueDate, task.Completed, task.IsStatic, task.Category, task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) DeleteTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) AddEvent(event models.Event) error {
	_, err := s.db.Exec(
		`INSERT INTO events (id, title, description, start_date, end_date, completed, is_static, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET title = $2, description = $3, start_date = $4, end_date = $5, completed = $6, is_static = $7, category = $8`,
		event.ID, event.Title, event.Description, event.StartDate, event.EndDate,
		event.Completed, event.IsStatic, event.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to add event: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetEvent(id string) (models.Event, error) {
	row := s.db.QueryRow(
		`SELECT id, title, description, start_date, end_date, completed, is_static, category FROM events WHERE id = $1`, id)
	return scanPGEvent(row)
}

func (s *PostgresStore) GetAllEvents() ([]models.Event, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, start_date, end_date, completed, is_static, category FROM events ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanPGEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *PostgresStore) UpdateEvent(event models.Event) error {
	res, err := s.db.Exec(
		`UPDATE events SET title = $1, description = $2, start_date = $3, end_date = $4, completed = $5, is_static = $6, category = $7
		 WHERE id = $8`,
		event.Title, event.Description, event.StartDate, event.EndDate,
		event.Completed, event.IsStatic, event.Category, event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) DeleteEvent(id string) error {
	res, err := s.db.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) AddHabit(habit models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO habits (id, title, description, frequency, category)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET title = $2, description = $3, frequency = $4, category = $5`,
		habit.ID, habit.Title, habit.Description, string(habit.Frequency), habit.Category,
	); err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}
	if err := replacePGCompletions(tx, habit); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *PostgresStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(
		`SELECT id, title, description, frequency, category FROM habits WHERE id = $1`, id)

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

func (s *PostgresStore) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, frequency, category FROM habits ORDER BY seq`)
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

func (s *PostgresStore) UpdateHabit(habit models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE habits SET title = $1, description = $2, frequency = $3, category = $4 WHERE id = $5`,
		habit.Title, habit.Description, string(habit.Frequency), habit.Category, habit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	if err := replacePGCompletions(tx, habit); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *PostgresStore) DeleteHabit(id string) error {
	res, err := s.db.Exec(`DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) completionsFor(habitID string) ([]time.Time, error) {
	rows, err := s.db.Query(
		`SELECT completed_at FROM habit_completions WHERE habit_id = $1 ORDER BY seq`, habitID)
	if err != nil {
		return nil, fmt.Errorf("failed to query habit completions: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan habit completion: %w", err)
		}
		dates = append(dates, t)
	}
	return dates, rows.Err()
}

func replacePGCompletions(tx *sql.Tx, habit models.Habit) error {
	if _, err := tx.Exec(`DELETE FROM habit_completions WHERE habit_id = $1`, habit.ID); err != nil {
		return fmt.Errorf("failed to clear habit completions: %w", err)
	}
	for _, d := range habit.CompletedDates {
		if _, err := tx.Exec(
			`INSERT INTO habit_completions (habit_id, completed_at) VALUES ($1, $2)`,
			habit.ID, d,
		); err != nil {
			return fmt.Errorf("failed to insert habit completion: %w", err)
		}
	}
	return nil
}

func scanPGTask(row rowScanner) (models.Task, error) {
	var task models.Task
	if err := row.Scan(&task.ID, &task.Title, &task.Description, &task.DueDate, &task.Completed, &task.IsStatic, &task.Category); err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, fmt.Errorf("failed to scan task: %w", err)
	}
	return task, nil
}

func scanPGEvent(row rowScanner) (models.Event, error) {
	var event models.Event
	if err := row.Scan(&event.ID, &event.Title, &event.Description, &event.StartDate, &event.EndDate, &event.Completed, &event.IsStatic, &event.Category); err != nil {
		if err == sql.ErrNoRows {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, fmt.Errorf("failed to scan event: %w", err)
	}
	return event, nil
}
