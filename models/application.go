package models

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

// ErrAlreadyApplied is returned when a student applies to the same
// internship twice.
var ErrAlreadyApplied = errors.New("already applied to this internship")

type Application struct {
	ID           int       `json:"id"`
	StudentID    int       `json:"student_id"`
	InternshipID int       `json:"internship_id"`
	Status       string    `json:"status"`
	AppliedDate  time.Time `json:"applied_date"`

	// Denormalized for listing views
	InternshipTitle   string `json:"internship_title,omitempty"`
	InternshipCompany string `json:"internship_company,omitempty"`
}

type ApplicationModel struct {
	DB *sql.DB
}

func NewApplicationModel(db *sql.DB) *ApplicationModel {
	return &ApplicationModel{DB: db}
}

func (m *ApplicationModel) Create(studentID, internshipID int) (*Application, error) {
	app := &Application{}
	query := `
		INSERT INTO applications (student_id, internship_id, status, applied_date)
		VALUES ($1, $2, 'Applied', NOW())
		RETURNING id, student_id, internship_id, status, applied_date
	`
	err := m.DB.QueryRow(query, studentID, internshipID).Scan(
		&app.ID, &app.StudentID, &app.InternshipID, &app.Status, &app.AppliedDate,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return app, nil
}

func (m *ApplicationModel) Exists(studentID, internshipID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE student_id = $1 AND internship_id = $2)`
	err := m.DB.QueryRow(query, studentID, internshipID).Scan(&exists)
	return exists, err
}

// ListByStudent returns the student's applications, newest first
func (m *ApplicationModel) ListByStudent(studentID int) ([]Application, error) {
	apps := []Application{}
	query := `
		SELECT a.id, a.student_id, a.internship_id, a.status, a.applied_date,
		       i.title, i.company
		FROM applications a
		JOIN internships i ON i.id = a.internship_id
		WHERE a.student_id = $1
		ORDER BY a.applied_date DESC
	`
	rows, err := m.DB.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var app Application
		err := rows.Scan(&app.ID, &app.StudentID, &app.InternshipID, &app.Status,
			&app.AppliedDate, &app.InternshipTitle, &app.InternshipCompany)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}
