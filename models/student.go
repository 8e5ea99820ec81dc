package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Student is the profile that owns the parsed resume and the skill
// set. One row per user, created lazily on first use.
type Student struct {
	ID         int             `json:"id"`
	UserID     int             `json:"user_id"`
	ResumeFile string          `json:"resume_file,omitempty"`
	ResumeData json.RawMessage `json:"resume_data,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type StudentModel struct {
	DB *sql.DB
}

func NewStudentModel(db *sql.DB) *StudentModel {
	return &StudentModel{DB: db}
}

// GetOrCreateByUserID returns the student profile for a user, creating
// it if this is the first touch.
func (m *StudentModel) GetOrCreateByUserID(userID int) (*Student, error) {
	student := &Student{}
	var resumeFile sql.NullString
	var resumeData []byte
	query := `
		INSERT INTO students (user_id, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET user_id = students.user_id
		RETURNING id, user_id, resume_file, resume_data, created_at, updated_at
	`
	err := m.DB.QueryRow(query, userID).Scan(
		&student.ID, &student.UserID, &resumeFile, &resumeData, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	student.ResumeFile = resumeFile.String
	student.ResumeData = resumeData
	return student, nil
}

// SaveParsedResume replaces the stored resume file reference and the
// structured parse. Re-uploads overwrite any prior value.
func (m *StudentModel) SaveParsedResume(studentID int, resumeFile string, resumeData json.RawMessage) error {
	query := `
		UPDATE students SET resume_file = $1, resume_data = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := m.DB.Exec(query, resumeFile, []byte(resumeData), studentID)
	return err
}

// Skills returns the student's skill set in stored order
func (m *StudentModel) Skills(studentID int) ([]Skill, error) {
	skills := []Skill{}
	query := `
		SELECT s.id, s.name
		FROM student_skills ss
		JOIN skills s ON s.id = ss.skill_id
		WHERE ss.student_id = $1
		ORDER BY ss.position
	`
	rows, err := m.DB.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var skill Skill
		if err := rows.Scan(&skill.ID, &skill.Name); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

// ReplaceSkills clears the student's skill set and repopulates it with
// the given skills, preserving their order, inside one transaction.
func (m *StudentModel) ReplaceSkills(studentID int, skillIDs []int) error {
	tx, err := m.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM student_skills WHERE student_id = $1`, studentID); err != nil {
		return err
	}

	for position, skillID := range skillIDs {
		_, err := tx.Exec(
			`INSERT INTO student_skills (student_id, skill_id, position) VALUES ($1, $2, $3)
			 ON CONFLICT (student_id, skill_id) DO NOTHING`,
			studentID, skillID, position,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
