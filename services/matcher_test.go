package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"internhub/models"
)

func skillSet(names ...string) []models.Skill {
	skills := make([]models.Skill, len(names))
	for i, name := range names {
		skills[i] = models.Skill{ID: i + 1, Name: name}
	}
	return skills
}

func internship(id int, required ...string) models.Internship {
	return models.Internship{
		ID:             id,
		Title:          "Internship",
		Company:        "Acme",
		PostedDate:     time.Now(),
		RequiredSkills: skillSet(required...),
	}
}

func TestMatch_PartialMatch(t *testing.T) {
	s := NewMatchService()
	in := internship(1, "Python", "SQL", "Django")

	result, err := s.Match(skillSet("python", "sql"), &in)

	assert.NoError(t, err)
	assert.Len(t, result.MatchingSkills, 2)
	assert.Equal(t, "Python", result.MatchingSkills[0].Name)
	assert.Equal(t, "SQL", result.MatchingSkills[1].Name)
	assert.Equal(t, 66.7, result.MatchPercentage)
	assert.True(t, s.Recommended(result))
}

func TestMatch_NoOverlap(t *testing.T) {
	s := NewMatchService()
	in := internship(1, "Java")

	result, err := s.Match(skillSet("Python"), &in)

	assert.NoError(t, err)
	assert.Empty(t, result.MatchingSkills)
	assert.Equal(t, 0.0, result.MatchPercentage)
	assert.False(t, s.Recommended(result))
}

func TestMatch_SubstringContainment(t *testing.T) {
	s := NewMatchService()
	in := internship(1, "Python")

	// Required name contained in the student's skill name
	result, err := s.Match(skillSet("Python Programming"), &in)
	assert.NoError(t, err)
	assert.Len(t, result.MatchingSkills, 1)
	assert.Equal(t, 100.0, result.MatchPercentage)

	// And the other direction
	in2 := internship(2, "Python Programming")
	result2, err := s.Match(skillSet("python"), &in2)
	assert.NoError(t, err)
	assert.Len(t, result2.MatchingSkills, 1)
}

func TestMatch_DenominatorIsRequiredCount(t *testing.T) {
	s := NewMatchService()
	in := internship(1, "Python")

	// Many student skills, one required: percentage over |R|, not |S|
	result, err := s.Match(skillSet("Python", "Go", "Rust", "SQL"), &in)

	assert.NoError(t, err)
	assert.Equal(t, 100.0, result.MatchPercentage)
}

func TestMatch_EachRequiredCountsOnce(t *testing.T) {
	s := NewMatchService()
	in := internship(1, "Java")

	// Both student skills contain "java"; the requirement matches once
	result, err := s.Match(skillSet("JavaScript", "Java"), &in)

	assert.NoError(t, err)
	assert.Len(t, result.MatchingSkills, 1)
	assert.Equal(t, 100.0, result.MatchPercentage)
}

func TestMatch_EmptyRequirements(t *testing.T) {
	s := NewMatchService()
	in := internship(1)

	_, err := s.Match(skillSet("Python"), &in)

	assert.Error(t, err)
}

func TestRankRecommendations_FilterAndOrder(t *testing.T) {
	s := NewMatchService()
	catalog := []models.Internship{
		internship(1, "Java"),                    // 0%, filtered out
		internship(2, "Python", "SQL", "Django"), // 66.7%
		internship(3),                            // no requirements, excluded
		internship(4, "Python"),                  // 100%
		internship(5, "Python", "Go", "Rust", "C++", "Java"), // 20%, below threshold
	}

	ranked := s.RankRecommendations(skillSet("python", "sql"), catalog)

	assert.Len(t, ranked, 2)
	assert.Equal(t, 4, ranked[0].Internship.ID)
	assert.Equal(t, 100.0, ranked[0].MatchPercentage)
	assert.Equal(t, 2, ranked[1].Internship.ID)
	assert.Equal(t, 66.7, ranked[1].MatchPercentage)
}

func TestRankRecommendations_StableOnTies(t *testing.T) {
	s := NewMatchService()
	catalog := []models.Internship{
		internship(10, "Python", "SQL"),
		internship(11, "Python", "Go"),
		internship(12, "SQL", "Rust"),
	}

	// All three score 50%; catalog order must be preserved
	ranked := s.RankRecommendations(skillSet("Python", "SQL"), catalog)

	assert.Len(t, ranked, 3)
	assert.Equal(t, 10, ranked[0].Internship.ID)
	assert.Equal(t, 11, ranked[1].Internship.ID)
	assert.Equal(t, 12, ranked[2].Internship.ID)
}

func TestRankRecommendations_EmptyStudentSkills(t *testing.T) {
	s := NewMatchService()
	catalog := []models.Internship{internship(1, "Python")}

	ranked := s.RankRecommendations(nil, catalog)

	assert.Empty(t, ranked)
}
