package parsers

import (
	"strings"
	"testing"
)

const sampleResume = `
Jane Q Public
jane.q@example.com
555-123-4567
linkedin.com/in/janeqpublic

SUMMARY
Motivated computer science student with internship experience
building web applications and data pipelines.
Looking for a backend internship.

EXPERIENCE
Software Engineering Intern 2023
Acme Corp
• Developed REST APIs in Go and Python
• Improved data pipeline throughput by 30%

EDUCATION
Bachelor of Science in Computer Science
State University
2021 - 2025

SKILLS
Python, SQL | Docker, Git

PROJECTS
Campus Event Tracker
Web app for discovering campus events.
Built with Django and PostgreSQL.
`

func TestResumeParser_Basic(t *testing.T) {
	parser := NewResumeParser()

	result, err := parser.Parse(sampleResume)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if result.ContactInfo.Name != "Jane Q Public" {
		t.Errorf("Expected name 'Jane Q Public', got '%s'", result.ContactInfo.Name)
	}
	if result.ContactInfo.Email != "jane.q@example.com" {
		t.Errorf("Expected email 'jane.q@example.com', got '%s'", result.ContactInfo.Email)
	}
	if result.ContactInfo.Phone != "555-123-4567" {
		t.Errorf("Expected phone '555-123-4567', got '%s'", result.ContactInfo.Phone)
	}
	if !strings.Contains(strings.ToLower(result.ContactInfo.LinkedIn), "linkedin") {
		t.Errorf("Expected a linkedin line, got '%s'", result.ContactInfo.LinkedIn)
	}

	if result.Summary == "" {
		t.Error("Summary should not be empty")
	}
	if !strings.Contains(result.Summary, "Motivated computer science student") {
		t.Errorf("Unexpected summary: '%s'", result.Summary)
	}

	if len(result.Experience) == 0 {
		t.Fatal("Should have extracted experience entries")
	}
	exp := result.Experience[0]
	if !strings.Contains(exp.Title, "Software Engineering Intern") {
		t.Errorf("Expected title to contain 'Software Engineering Intern', got '%s'", exp.Title)
	}
	if exp.Company != "Acme Corp" {
		t.Errorf("Expected company 'Acme Corp', got '%s'", exp.Company)
	}
	if !strings.Contains(exp.Description, "REST APIs") {
		t.Errorf("Expected description with bullet content, got '%s'", exp.Description)
	}

	if len(result.Education) == 0 {
		t.Fatal("Should have extracted education entries")
	}
	edu := result.Education[0]
	if !strings.Contains(edu.Degree, "Bachelor of Science") {
		t.Errorf("Expected degree line, got '%s'", edu.Degree)
	}
	if edu.Institution != "State University" {
		t.Errorf("Expected institution 'State University', got '%s'", edu.Institution)
	}
	if !strings.Contains(edu.Dates, "2021") {
		t.Errorf("Expected dates with a year, got '%s'", edu.Dates)
	}

	if len(result.Skills) == 0 {
		t.Error("Should have extracted skills")
	}

	if len(result.Projects) == 0 {
		t.Fatal("Should have extracted a project")
	}
	if result.Projects[0].Title != "Campus Event Tracker" {
		t.Errorf("Expected project title 'Campus Event Tracker', got '%s'", result.Projects[0].Title)
	}
	if !strings.Contains(result.Projects[0].Description, "campus events") {
		t.Errorf("Expected project description, got '%s'", result.Projects[0].Description)
	}

	if result.RawText != sampleResume {
		t.Error("RawText should carry the original text unchanged")
	}
}

func TestResumeParser_EmptyInput(t *testing.T) {
	parser := NewResumeParser()

	if _, err := parser.Parse(""); err == nil {
		t.Error("Expected error for empty input")
	}
	if _, err := parser.Parse("   \n\t\n"); err == nil {
		t.Error("Expected error for whitespace-only input")
	}
}

func TestResumeParser_ContactScanOrder(t *testing.T) {
	parser := NewResumeParser()
	lines := []string{"Jane Q Public", "jane.q@example.com", "555-123-4567"}

	info := parser.extractContactInfo(lines)

	if info.Name != "Jane Q Public" {
		t.Errorf("Expected name 'Jane Q Public', got '%s'", info.Name)
	}
	if info.Email != "jane.q@example.com" {
		t.Errorf("Expected email 'jane.q@example.com', got '%s'", info.Email)
	}
	if info.Phone != "555-123-4567" {
		t.Errorf("Expected phone '555-123-4567', got '%s'", info.Phone)
	}
}

func TestResumeParser_NameSkipsHeadingsAndDigits(t *testing.T) {
	parser := NewResumeParser()
	lines := []string{"Resume", "Apt 4B", "John Smith", "john@example.com"}

	info := parser.extractContactInfo(lines)

	if info.Name != "John Smith" {
		t.Errorf("Expected name 'John Smith', got '%s'", info.Name)
	}
}

func TestResumeParser_SkillsDelimitersAndTitleCase(t *testing.T) {
	parser := NewResumeParser()
	lines := []string{"Skills", "Python, SQL | Docker"}

	skills := parser.extractSkills(lines)

	if len(skills) < 3 {
		t.Fatalf("Expected at least 3 skills, got %v", skills)
	}
	// Sectioned tokens come first, title-cased, in the order written.
	for i, want := range []string{"Python", "Sql", "Docker"} {
		if skills[i] != want {
			t.Errorf("skills[%d]: expected '%s', got '%s'", i, want, skills[i])
		}
	}
	for i, s := range skills {
		for j := i + 1; j < len(skills); j++ {
			if strings.EqualFold(s, skills[j]) {
				t.Errorf("Duplicate skill '%s' at %d and %d", s, i, j)
			}
		}
	}
}

func TestResumeParser_SkillsVocabularySweep(t *testing.T) {
	parser := NewResumeParser()
	lines := []string{"Built services with kubernetes and machine learning pipelines"}

	skills := parser.extractSkills(lines)

	if !containsFold(skills, "Kubernetes") {
		t.Errorf("Expected vocabulary sweep to find Kubernetes, got %v", skills)
	}
	if !containsFold(skills, "Machine Learning") {
		t.Errorf("Expected vocabulary sweep to find Machine Learning, got %v", skills)
	}
}

func TestResumeParser_Caps(t *testing.T) {
	parser := NewResumeParser()

	var sb strings.Builder
	sb.WriteString("SKILLS\n")
	sb.WriteString("Alpha1x, Alpha2x, Alpha3x, Alpha4x, Alpha5x, Alpha6x, Alpha7x, Alpha8x, Alpha9x, Alpha10x, ")
	sb.WriteString("Alpha11x, Alpha12x, Alpha13x, Alpha14x, Alpha15x, Alpha16x, Alpha17x, Alpha18x, Alpha19x, Alpha20x, ")
	sb.WriteString("Alpha21x, Alpha22x\n")
	sb.WriteString("EXPERIENCE\n")
	for i := 0; i < 8; i++ {
		sb.WriteString("Engineer 202")
		sb.WriteByte(byte('0' + i))
		sb.WriteString("\nSome Company\n")
	}

	result, err := parser.Parse(sb.String())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(result.Skills) > 20 {
		t.Errorf("Skills should be capped at 20, got %d", len(result.Skills))
	}
	if len(result.Experience) > 5 {
		t.Errorf("Experience should be capped at 5, got %d", len(result.Experience))
	}
	if len(result.Education) > 3 {
		t.Errorf("Education should be capped at 3, got %d", len(result.Education))
	}
}

func TestResumeParser_ExperienceStopsAtNextSection(t *testing.T) {
	parser := NewResumeParser()
	lines := []string{
		"EXPERIENCE",
		"Data Analyst Intern 2022",
		"Beta Labs",
		"Education",
		"Bachelor of Arts",
	}

	entries := parser.extractExperience(lines)

	if len(entries) != 1 {
		t.Fatalf("Expected 1 experience entry, got %d", len(entries))
	}
	if entries[0].Company != "Beta Labs" {
		t.Errorf("Expected company 'Beta Labs', got '%s'", entries[0].Company)
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("  one \n\n\t\n two\nthree  ")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "one" || lines[1] != "two" || lines[2] != "three" {
		t.Errorf("Unexpected lines: %v", lines)
	}
}
