// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Seven tables in dependency order: users first, workout_sets last.
package storage

// initSchema creates the schema if absent. Idempotent; the FOREIGN KEY
// clauses document ownership but are not enforced (see configurePragmas).
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY NOT NULL,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS user_stats (
		user_id TEXT PRIMARY KEY NOT NULL,
		name TEXT,
		bodyweight REAL,
		bench REAL,
		squat REAL,
		deadlift REAL,
		preferences TEXT,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS bodyweight_logs (
		id TEXT PRIMARY KEY NOT NULL,
		user_id TEXT NOT NULL,
		ts TEXT NOT NULL,
		weight REAL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id TEXT PRIMARY KEY NOT NULL,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		exercises TEXT NOT NULL,
		created_at TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS workout_logs (
		id TEXT PRIMARY KEY NOT NULL,
		user_id TEXT NOT NULL,
		workout_id TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		duration INTEGER,
		notes TEXT,
		FOREIGN KEY (user_id) REFERENCES users(id),
		FOREIGN KEY (workout_id) REFERENCES workouts(id)
	);

	CREATE TABLE IF NOT EXISTS workout_sets (
		id TEXT PRIMARY KEY NOT NULL,
		workout_log_id TEXT NOT NULL,
		exercise_name TEXT NOT NULL,
		set_number INTEGER NOT NULL,
		reps INTEGER,
		weight REAL,
		completed INTEGER DEFAULT 0,
		FOREIGN KEY (workout_log_id) REFERENCES workout_logs(id)
	);

	CREATE TABLE IF NOT EXISTS user_settings (
		user_id TEXT PRIMARY KEY NOT NULL,
		theme TEXT,
		accent TEXT,
		notifications INTEGER,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE INDEX IF NOT EXISTS idx_bodyweight_logs_user_ts ON bodyweight_logs(user_id, ts DESC);
	CREATE INDEX IF NOT EXISTS idx_workouts_user_created ON workouts(user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_workout_logs_user_completed ON workout_logs(user_id, completed_at DESC);
	CREATE INDEX IF NOT EXISTS idx_workout_sets_log ON workout_sets(workout_log_id);
	`

	_, err := s.db.Exec(schema)
	return err
}
