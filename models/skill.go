package models

import (
	"database/sql"
)

// Skill is one entry of the canonical skill vocabulary. Names are
// unique case-insensitively; the stored name is the canonical display
// form.
type Skill struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SkillModel struct {
	DB *sql.DB
}

func NewSkillModel(db *sql.DB) *SkillModel {
	return &SkillModel{DB: db}
}

// GetOrCreate resolves a skill name against the vocabulary in a single
// atomic statement. The unique index on lower(name) makes concurrent
// resolution of the same new name converge on one row; the no-op
// DO UPDATE lets RETURNING yield the existing row on conflict.
func (m *SkillModel) GetOrCreate(name string) (*Skill, error) {
	skill := &Skill{}
	query := `
		INSERT INTO skills (name)
		VALUES ($1)
		ON CONFLICT ((lower(name))) DO UPDATE SET name = skills.name
		RETURNING id, name
	`
	err := m.DB.QueryRow(query, name).Scan(&skill.ID, &skill.Name)
	if err != nil {
		return nil, err
	}
	return skill, nil
}

// GetByName looks up a skill case-insensitively
func (m *SkillModel) GetByName(name string) (*Skill, error) {
	skill := &Skill{}
	query := `SELECT id, name FROM skills WHERE lower(name) = lower($1)`
	err := m.DB.QueryRow(query, name).Scan(&skill.ID, &skill.Name)
	if err != nil {
		return nil, err
	}
	return skill, nil
}

// All returns the whole vocabulary, alphabetically
func (m *SkillModel) All() ([]Skill, error) {
	skills := []Skill{}
	rows, err := m.DB.Query(`SELECT id, name FROM skills ORDER BY lower(name)`)
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
