package models

import (
	"database/sql"
	"time"
)

type Internship struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Stipend        float64   `json:"stipend"`
	Duration       string    `json:"duration"`
	PostedDate     time.Time `json:"posted_date"`
	RequiredSkills []Skill   `json:"required_skills"`
}

type InternshipModel struct {
	DB *sql.DB
}

func NewInternshipModel(db *sql.DB) *InternshipModel {
	return &InternshipModel{DB: db}
}

// All returns every internship, newest first, with required skills
// loaded. Catalog order is the tie-break order for recommendations.
func (m *InternshipModel) All() ([]Internship, error) {
	query := `
		SELECT id, title, company, description, location,
		       COALESCE(stipend, 0) as stipend,
		       COALESCE(duration, '') as duration,
		       posted_date
		FROM internships
		ORDER BY posted_date DESC, id DESC
	`
	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	internships := []Internship{}
	for rows.Next() {
		var in Internship
		err := rows.Scan(&in.ID, &in.Title, &in.Company, &in.Description,
			&in.Location, &in.Stipend, &in.Duration, &in.PostedDate)
		if err != nil {
			return nil, err
		}
		internships = append(internships, in)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range internships {
		skills, err := m.requiredSkills(internships[i].ID)
		if err != nil {
			return nil, err
		}
		internships[i].RequiredSkills = skills
	}
	return internships, nil
}

func (m *InternshipModel) GetByID(id int) (*Internship, error) {
	in := &Internship{}
	query := `
		SELECT id, title, company, description, location,
		       COALESCE(stipend, 0) as stipend,
		       COALESCE(duration, '') as duration,
		       posted_date
		FROM internships WHERE id = $1
	`
	err := m.DB.QueryRow(query, id).Scan(&in.ID, &in.Title, &in.Company,
		&in.Description, &in.Location, &in.Stipend, &in.Duration, &in.PostedDate)
	if err != nil {
		return nil, err
	}

	in.RequiredSkills, err = m.requiredSkills(in.ID)
	if err != nil {
		return nil, err
	}
	return in, nil
}

func (m *InternshipModel) Create(title, company, description, location, duration string, stipend float64) (*Internship, error) {
	in := &Internship{}
	query := `
		INSERT INTO internships (title, company, description, location, stipend, duration, posted_date)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, title, company, description, location, COALESCE(stipend, 0), COALESCE(duration, ''), posted_date
	`
	err := m.DB.QueryRow(query, title, company, description, location, stipend, duration).Scan(
		&in.ID, &in.Title, &in.Company, &in.Description, &in.Location, &in.Stipend, &in.Duration, &in.PostedDate,
	)
	if err != nil {
		return nil, err
	}
	in.RequiredSkills = []Skill{}
	return in, nil
}

// AddRequiredSkill attaches a vocabulary skill to an internship
func (m *InternshipModel) AddRequiredSkill(internshipID, skillID int) error {
	query := `
		INSERT INTO internship_skills (internship_id, skill_id)
		VALUES ($1, $2)
		ON CONFLICT (internship_id, skill_id) DO NOTHING
	`
	_, err := m.DB.Exec(query, internshipID, skillID)
	return err
}

func (m *InternshipModel) requiredSkills(internshipID int) ([]Skill, error) {
	skills := []Skill{}
	query := `
		SELECT s.id, s.name
		FROM internship_skills isk
		JOIN skills s ON s.id = isk.skill_id
		WHERE isk.internship_id = $1
		ORDER BY s.id
	`
	rows, err := m.DB.Query(query, internshipID)
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
