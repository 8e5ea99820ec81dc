package parsers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParsedResume represents the structured resume information
type ParsedResume struct {
	ContactInfo ContactInfo       `json:"contact_info"`
	Summary     string            `json:"summary"`
	Experience  []ExperienceEntry `json:"experience"`
	Education   []EducationEntry  `json:"education"`
	Skills      []string          `json:"skills"`
	Projects    []ProjectEntry    `json:"projects"`
	RawText     string            `json:"raw_text"`
}

// ContactInfo holds the contact details found near the top of a resume
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
}

// ExperienceEntry represents a work experience entry
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// EducationEntry represents an education entry
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Dates       string `json:"dates"`
}

// ProjectEntry represents a personal or academic project
type ProjectEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

const (
	contactScanLines = 15
	nameScanLines    = 5

	maxExperienceEntries = 5
	experienceWindow     = 15

	maxEducationEntries = 3
	educationWindow     = 10

	sectionScanWindow = 8
	maxSkills         = 20
)

var (
	summaryKeywords      = []string{"summary", "objective", "profile", "about"}
	experienceKeywords   = []string{"experience", "work", "employment", "career", "professional", "internship"}
	experienceStopWords  = []string{"education", "skills", "projects", "certifications"}
	jobTitleWords        = []string{"intern", "developer", "engineer", "analyst", "manager"}
	educationKeywords    = []string{"education", "degree", "university", "college", "school", "academic"}
	educationStopWords   = []string{"experience", "skills", "projects"}
	degreeWords          = []string{"bachelor", "master", "phd", "degree", "university", "college"}
	skillSectionKeywords = []string{"skills", "technologies", "tools", "programming", "technical", "software", "languages"}
	projectKeywords      = []string{"projects", "portfolio", "work"}
	nameSkipKeywords     = []string{"resume", "cv", "curriculum", "vitae", "email", "phone", "address", "linkedin"}
	skillDelimiters      = []string{",", "•", "·", "|", ";", "/", "\n", "\t"}
)

// commonSkills is the fixed vocabulary scanned for across the whole
// document, independent of any skills section heading.
var commonSkills = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node.js", "django", "flask",
	"html", "css", "sql", "mongodb", "postgresql", "mysql", "git", "docker", "kubernetes",
	"aws", "azure", "gcp", "machine learning", "data analysis", "pandas", "numpy", "tensorflow",
	"pytorch", "scikit-learn", "r", "matlab", "c++", "c#", "php", "ruby", "go", "rust",
	"swift", "kotlin", "flutter", "react native", "bootstrap", "tailwind", "sass", "less",
	"webpack", "babel", "typescript", "graphql", "rest api", "microservices", "agile", "scrum",
}

// ResumeParser extracts structured data from resume text using
// bounded-window keyword heuristics. Every section locator is a pure
// scan over the same line slice, so locators can run in any order.
type ResumeParser struct {
	emailRegex   *regexp.Regexp
	phoneRegexes []*regexp.Regexp
	yearRegex    *regexp.Regexp
}

// NewResumeParser creates a new resume parser with compiled regexes
func NewResumeParser() *ResumeParser {
	return &ResumeParser{
		emailRegex: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		// Tried in order; the first pattern matching any line wins.
		phoneRegexes: []*regexp.Regexp{
			regexp.MustCompile(`\+?1?[-\s]?\(?\d{3}\)?[-\s]?\d{3}[-\s]?\d{4}`),
			regexp.MustCompile(`\(?\d{3}\)?[-\s]?\d{3}[-\s]?\d{4}`),
			regexp.MustCompile(`\d{3}[-\s]?\d{3}[-\s]?\d{4}`),
		},
		yearRegex: regexp.MustCompile(`\d{4}`),
	}
}

// Parse extracts structured data from raw resume text. Locators that
// find nothing leave their field empty; Parse only fails when there is
// no text to work with at all.
func (p *ResumeParser) Parse(rawText string) (*ParsedResume, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, fmt.Errorf("empty resume text")
	}

	lines := SplitLines(rawText)

	return &ParsedResume{
		ContactInfo: p.extractContactInfo(lines),
		Summary:     p.extractSummary(lines),
		Experience:  p.extractExperience(lines),
		Education:   p.extractEducation(lines),
		Skills:      p.extractSkills(lines),
		Projects:    p.extractProjects(lines),
		RawText:     rawText,
	}, nil
}

// extractContactInfo scans the first 15 lines for email, linkedin,
// phone and name. Per line the checks run in that priority; the name
// check runs independently and only over the first 5 lines.
func (p *ResumeParser) extractContactInfo(lines []string) ContactInfo {
	var info ContactInfo

	for i, line := range lines {
		if i >= contactScanLines {
			break
		}
		lower := strings.ToLower(line)

		if strings.Contains(line, "@") && strings.Contains(line, ".") && info.Email == "" {
			if match := p.emailRegex.FindString(line); match != "" {
				info.Email = match
			}
		} else if strings.Contains(lower, "linkedin") && info.LinkedIn == "" {
			info.LinkedIn = line
		} else if info.Phone == "" {
			for _, re := range p.phoneRegexes {
				if match := re.FindString(line); match != "" {
					info.Phone = match
					break
				}
			}
		}

		if info.Name == "" && i < nameScanLines && looksLikeName(line, lower) {
			info.Name = line
		}
	}

	return info
}

// looksLikeName filters out headings, contact lines and anything with
// digits; what survives in the top lines is taken as the name.
func looksLikeName(line, lower string) bool {
	if len(strings.Fields(line)) > 4 || len(line) <= 3 {
		return false
	}
	if containsAny(lower, nameSkipKeywords) || strings.Contains(line, "@") {
		return false
	}
	return !containsDigit(line)
}

// extractSummary returns the 3 lines after the first summary-style
// heading, joined by single spaces.
func (p *ResumeParser) extractSummary(lines []string) string {
	for i, line := range lines {
		if containsAny(strings.ToLower(line), summaryKeywords) {
			end := i + 4
			if end > len(lines) {
				end = len(lines)
			}
			return strings.Join(lines[i+1:end], " ")
		}
	}
	return ""
}

// extractExperience processes the first experience-style section
// heading and walks a window of up to 15 lines after it. Short lines
// with a digit or a job-title word open a new entry, the following
// short non-bullet line becomes the company, bullets and long lines
// accumulate into the description.
func (p *ResumeParser) extractExperience(lines []string) []ExperienceEntry {
	var entries []ExperienceEntry

	for i, line := range lines {
		if !containsAny(strings.ToLower(line), experienceKeywords) || len(line) >= 50 {
			continue
		}

		var current *ExperienceEntry
		for j := i + 1; j < len(lines) && j < i+experienceWindow; j++ {
			cur := lines[j]
			curLower := strings.ToLower(cur)

			if containsAny(curLower, experienceStopWords) {
				break
			}

			if len(cur) < 100 && (containsDigit(cur) || containsAny(curLower, jobTitleWords)) {
				if current != nil {
					entries = append(entries, *current)
				}
				current = &ExperienceEntry{Title: cur}

				if j+1 < len(lines) {
					next := lines[j+1]
					if len(next) < 80 && !strings.HasPrefix(next, "•") {
						current.Company = next
						j++
					}
				}
			} else if current != nil && (strings.HasPrefix(cur, "•") || strings.HasPrefix(cur, "-") || len(cur) > 50) {
				if current.Description != "" {
					current.Description += " " + cur
				} else {
					current.Description = cur
				}
			}
		}
		if current != nil {
			entries = append(entries, *current)
		}
		break
	}

	if len(entries) > maxExperienceEntries {
		entries = entries[:maxExperienceEntries]
	}
	return entries
}

// extractEducation mirrors the experience scan with a 10-line window.
// A line naming a degree opens an entry, the next short line is the
// institution, and any later line carrying a 4-digit year sets the
// dates for the open entry.
func (p *ResumeParser) extractEducation(lines []string) []EducationEntry {
	var entries []EducationEntry

	for i, line := range lines {
		if !containsAny(strings.ToLower(line), educationKeywords) || len(line) >= 50 {
			continue
		}

		var current *EducationEntry
		for j := i + 1; j < len(lines) && j < i+educationWindow; j++ {
			cur := lines[j]
			curLower := strings.ToLower(cur)

			if containsAny(curLower, educationStopWords) {
				break
			}

			if len(cur) < 100 {
				if containsAny(curLower, degreeWords) {
					if current != nil {
						entries = append(entries, *current)
					}
					current = &EducationEntry{Degree: cur}

					if j+1 < len(lines) && len(lines[j+1]) < 80 {
						current.Institution = lines[j+1]
						j++
					}
				} else if current != nil && containsDigit(cur) && p.yearRegex.MatchString(cur) {
					current.Dates = cur
				}
			}
		}
		if current != nil {
			entries = append(entries, *current)
		}
		break
	}

	if len(entries) > maxEducationEntries {
		entries = entries[:maxEducationEntries]
	}
	return entries
}

// extractSkills unions two passes: the first delimiter-splits a single
// line below the first skills-style heading, the second sweeps the
// whole document for the common-skill vocabulary. The result is
// title-cased, case-insensitively deduplicated in first-seen order and
// capped at 20.
func (p *ResumeParser) extractSkills(lines []string) []string {
	var collected []string

	for i, line := range lines {
		if !containsAny(strings.ToLower(line), skillSectionKeywords) {
			continue
		}
		for j := i + 1; j < len(lines) && j < i+sectionScanWindow; j++ {
			if startsWithSection(lines[j], "experience", "education", "projects") {
				continue
			}
			for _, token := range splitSkillTokens(lines[j]) {
				if len(token) > 1 && len(token) < 30 {
					collected = append(collected, token)
				}
			}
			break
		}
		break
	}

	fullText := strings.ToLower(strings.Join(lines, " "))
	caser := cases.Title(language.English)
	for _, term := range commonSkills {
		if strings.Contains(fullText, term) && !containsFold(collected, term) {
			collected = append(collected, caser.String(term))
		}
	}

	seen := make(map[string]bool)
	var skills []string
	for _, raw := range collected {
		skill := caser.String(strings.TrimSpace(raw))
		key := strings.ToLower(skill)
		if len(skill) <= 1 || seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, skill)
	}

	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	return skills
}

// extractProjects takes the first qualifying line after the first
// projects-style heading as a single project, with the next two lines
// as its description.
func (p *ResumeParser) extractProjects(lines []string) []ProjectEntry {
	var projects []ProjectEntry

	for i, line := range lines {
		if !containsAny(strings.ToLower(line), projectKeywords) {
			continue
		}
		for j := i + 1; j < len(lines) && j < i+sectionScanWindow; j++ {
			if startsWithSection(lines[j], "experience", "education", "skills") {
				continue
			}
			description := ""
			if j+1 < len(lines) {
				end := j + 3
				if end > len(lines) {
					end = len(lines)
				}
				description = strings.Join(lines[j+1:end], " ")
			}
			projects = append(projects, ProjectEntry{Title: lines[j], Description: description})
			break
		}
		break
	}

	return projects
}

func splitSkillTokens(line string) []string {
	for _, delim := range skillDelimiters {
		line = strings.ReplaceAll(line, delim, "|")
	}
	var tokens []string
	for _, token := range strings.Split(line, "|") {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

func startsWithSection(line string, sections ...string) bool {
	lower := strings.ToLower(line)
	for _, section := range sections {
		if strings.HasPrefix(lower, section) {
			return true
		}
	}
	return false
}
