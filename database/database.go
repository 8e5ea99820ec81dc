package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

func Connect(host string, port int, user, password, dbname, sslmode string) (*sql.DB, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Test the connection
	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	return db, nil
}

// EnsureSchema creates the portal tables if they don't exist. The
// unique index on lower(name) backs the atomic skill get-or-create;
// the unique (student, internship) pair keeps applications one-shot.
func EnsureSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255),
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS students (
		id SERIAL PRIMARY KEY,
		user_id INTEGER UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		resume_file VARCHAR(512),
		resume_data JSONB,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS skills (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS skills_name_lower_idx ON skills ((lower(name)));

	CREATE TABLE IF NOT EXISTS student_skills (
		student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		skill_id INTEGER NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		position INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (student_id, skill_id)
	);

	CREATE TABLE IF NOT EXISTS internships (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		company VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location VARCHAR(150) NOT NULL DEFAULT '',
		stipend NUMERIC(10, 2),
		duration VARCHAR(100),
		posted_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS internship_skills (
		internship_id INTEGER NOT NULL REFERENCES internships(id) ON DELETE CASCADE,
		skill_id INTEGER NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		PRIMARY KEY (internship_id, skill_id)
	);

	CREATE TABLE IF NOT EXISTS applications (
		id SERIAL PRIMARY KEY,
		student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		internship_id INTEGER NOT NULL REFERENCES internships(id) ON DELETE CASCADE,
		status VARCHAR(20) NOT NULL DEFAULT 'Applied',
		applied_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (student_id, internship_id)
	);

	CREATE TABLE IF NOT EXISTS quiz_questions (
		id SERIAL PRIMARY KEY,
		internship_id INTEGER NOT NULL REFERENCES internships(id) ON DELETE CASCADE,
		question_text TEXT NOT NULL,
		options JSONB NOT NULL,
		correct_answer_key VARCHAR(10) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS coding_questions (
		id SERIAL PRIMARY KEY,
		internship_id INTEGER NOT NULL REFERENCES internships(id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		problem_statement TEXT NOT NULL,
		test_cases JSONB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS interview_questions (
		id SERIAL PRIMARY KEY,
		internship_id INTEGER NOT NULL REFERENCES internships(id) ON DELETE CASCADE,
		question_text TEXT NOT NULL,
		suggested_answer TEXT
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("error creating schema: %v", err)
	}
	return nil
}
