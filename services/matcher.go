package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"internhub/models"
)

// RecommendThreshold is the minimum match percentage at which an
// internship is considered a recommendation.
const RecommendThreshold = 25.0

// MatchResult scores one internship against a student's skill set.
// Results are computed per request and never persisted or cached.
type MatchResult struct {
	Internship      *models.Internship `json:"internship"`
	MatchingSkills  []models.Skill     `json:"matching_skills"`
	MatchPercentage float64            `json:"match_percentage"`
}

// MatchService computes fuzzy skill matches between students and
// internships. A required skill counts as matched when it equals a
// student skill case-insensitively or either name contains the other
// as a substring. The substring rule is intentionally loose ("Java"
// matches "JavaScript"); it mirrors how the vocabulary is written in
// listings versus resumes.
type MatchService struct{}

func NewMatchService() *MatchService {
	return &MatchService{}
}

// Match scores a single internship. The denominator is always the
// internship's required-skill count; internships with no required
// skills cannot be scored.
func (s *MatchService) Match(studentSkills []models.Skill, internship *models.Internship) (*MatchResult, error) {
	required := internship.RequiredSkills
	if len(required) == 0 {
		return nil, fmt.Errorf("internship %d has no required skills", internship.ID)
	}

	matching := []models.Skill{}
	for _, req := range required {
		reqName := strings.ToLower(req.Name)
		for _, own := range studentSkills {
			ownName := strings.ToLower(own.Name)
			if reqName == ownName ||
				strings.Contains(ownName, reqName) ||
				strings.Contains(reqName, ownName) {
				matching = append(matching, req)
				break
			}
		}
	}

	percentage := math.Round(float64(len(matching))/float64(len(required))*100*10) / 10

	return &MatchResult{
		Internship:      internship,
		MatchingSkills:  matching,
		MatchPercentage: percentage,
	}, nil
}

// Recommended reports whether a result clears the recommendation bar
func (s *MatchService) Recommended(result *MatchResult) bool {
	return result.MatchPercentage >= RecommendThreshold
}

// RankRecommendations scores the whole catalog, keeps recommended
// internships only, and sorts them by match percentage descending.
// Ties keep catalog order (stable sort). Internships without required
// skills are excluded entirely.
func (s *MatchService) RankRecommendations(studentSkills []models.Skill, catalog []models.Internship) []MatchResult {
	recommended := []MatchResult{}

	for i := range catalog {
		internship := &catalog[i]
		if len(internship.RequiredSkills) == 0 {
			continue
		}
		result, err := s.Match(studentSkills, internship)
		if err != nil {
			continue
		}
		if len(result.MatchingSkills) == 0 || !s.Recommended(result) {
			continue
		}
		recommended = append(recommended, *result)
	}

	sort.SliceStable(recommended, func(i, j int) bool {
		return recommended[i].MatchPercentage > recommended[j].MatchPercentage
	})
	return recommended
}
