package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"internhub/models"
)

// SkillStore resolves names against the canonical vocabulary. The
// implementation must make GetOrCreate atomic with respect to the
// vocabulary's case-insensitive uniqueness.
type SkillStore interface {
	GetOrCreate(name string) (*models.Skill, error)
}

// StudentSkillStore swaps a student's skill set
type StudentSkillStore interface {
	ReplaceSkills(studentID int, skillIDs []int) error
}

// SkillService reconciles free-text skill names against the canonical
// vocabulary and maintains student skill sets.
type SkillService struct {
	skillModel   SkillStore
	studentModel StudentSkillStore
}

func NewSkillService(skillModel SkillStore, studentModel StudentSkillStore) *SkillService {
	return &SkillService{
		skillModel:   skillModel,
		studentModel: studentModel,
	}
}

// ResolveSkills maps skill names to vocabulary entries in order,
// creating entries for novel names with the title-cased form as the
// canonical display name. Resolution is idempotent per name; the
// storage layer's case-insensitive uniqueness absorbs concurrent
// creation of the same name.
func (s *SkillService) ResolveSkills(names []string) ([]models.Skill, error) {
	caser := cases.Title(language.English)
	resolved := []models.Skill{}
	seen := make(map[string]bool)

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if len(name) <= 1 {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		skill, err := s.skillModel.GetOrCreate(caser.String(name))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve skill %q: %v", name, err)
		}
		resolved = append(resolved, *skill)
	}
	return resolved, nil
}

// ReplaceStudentSkills swaps the student's entire skill set for the
// resolved form of the given names, preserving order.
func (s *SkillService) ReplaceStudentSkills(studentID int, names []string) ([]models.Skill, error) {
	skills, err := s.ResolveSkills(names)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(skills))
	for i, skill := range skills {
		ids[i] = skill.ID
	}
	if err := s.studentModel.ReplaceSkills(studentID, ids); err != nil {
		return nil, fmt.Errorf("failed to replace student skills: %v", err)
	}
	return skills, nil
}
