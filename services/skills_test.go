package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"internhub/models"
)

// fakeSkillStore behaves like the vocabulary table: names are unique
// case-insensitively and the first-stored display form is canonical.
type fakeSkillStore struct {
	byLowerName map[string]*models.Skill
	nextID      int
	creations   int
}

func newFakeSkillStore() *fakeSkillStore {
	return &fakeSkillStore{byLowerName: make(map[string]*models.Skill), nextID: 1}
}

func (f *fakeSkillStore) GetOrCreate(name string) (*models.Skill, error) {
	key := strings.ToLower(name)
	if skill, ok := f.byLowerName[key]; ok {
		return skill, nil
	}
	skill := &models.Skill{ID: f.nextID, Name: name}
	f.nextID++
	f.creations++
	f.byLowerName[key] = skill
	return skill, nil
}

type fakeStudentSkillStore struct {
	replaced map[int][]int
}

func (f *fakeStudentSkillStore) ReplaceSkills(studentID int, skillIDs []int) error {
	if f.replaced == nil {
		f.replaced = make(map[int][]int)
	}
	f.replaced[studentID] = skillIDs
	return nil
}

func TestResolveSkills_TitleCaseAndOrder(t *testing.T) {
	store := newFakeSkillStore()
	s := NewSkillService(store, &fakeStudentSkillStore{})

	skills, err := s.ResolveSkills([]string{"python", "SQL", "docker"})

	assert.NoError(t, err)
	assert.Len(t, skills, 3)
	assert.Equal(t, "Python", skills[0].Name)
	assert.Equal(t, "Sql", skills[1].Name)
	assert.Equal(t, "Docker", skills[2].Name)
}

func TestResolveSkills_Idempotent(t *testing.T) {
	store := newFakeSkillStore()
	s := NewSkillService(store, &fakeStudentSkillStore{})

	first, err := s.ResolveSkills([]string{"Python", "SQL"})
	assert.NoError(t, err)
	second, err := s.ResolveSkills([]string{"python", "sql"})
	assert.NoError(t, err)

	// Same vocabulary entries both times, no duplicates created
	assert.Equal(t, 2, store.creations)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[1].ID, second[1].ID)
}

func TestResolveSkills_SkipsShortAndDuplicateNames(t *testing.T) {
	store := newFakeSkillStore()
	s := NewSkillService(store, &fakeStudentSkillStore{})

	skills, err := s.ResolveSkills([]string{"Go", "x", " ", "go", "GO"})

	assert.NoError(t, err)
	assert.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Name)
	assert.Equal(t, 1, store.creations)
}

func TestReplaceStudentSkills_ReplacesWholeSet(t *testing.T) {
	store := newFakeSkillStore()
	studentStore := &fakeStudentSkillStore{}
	s := NewSkillService(store, studentStore)

	skills, err := s.ReplaceStudentSkills(7, []string{"Python", "Django"})

	assert.NoError(t, err)
	assert.Len(t, skills, 2)
	assert.Equal(t, []int{skills[0].ID, skills[1].ID}, studentStore.replaced[7])
}
