package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"internhub/models"
	"internhub/parsers"
	"internhub/utils"
)

// ParseError means resume structuring failed because the upstream
// extraction step failed. No partial record is produced.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("resume parsing failed: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ResumeService owns the upload pipeline: extract text, structure it,
// persist the parse on the student and replace the skill set. The S3
// archive is best effort and may be absent.
type ResumeService struct {
	extractor    *parsers.TextExtractor
	parser       *parsers.ResumeParser
	studentModel *models.StudentModel
	skillService *SkillService
	s3Service    *S3Service
}

func NewResumeService(studentModel *models.StudentModel, skillService *SkillService, s3Service *S3Service) *ResumeService {
	return &ResumeService{
		extractor:    parsers.NewTextExtractor(),
		parser:       parsers.NewResumeParser(),
		studentModel: studentModel,
		skillService: skillService,
		s3Service:    s3Service,
	}
}

// ParseResumeFile runs extraction and structuring without touching
// storage. This is the single entry point for turning a file into a
// ParsedResume.
func (s *ResumeService) ParseResumeFile(filePath string) (*parsers.ParsedResume, error) {
	text, err := s.extractor.ExtractFromFile(filePath)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	parsed, err := s.parser.Parse(text)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return parsed, nil
}

// ProcessUpload parses an uploaded resume for a user and persists the
// outcome: the structured record replaces any previous parse, and the
// student's skill set is rebuilt from the extracted skills.
func (s *ResumeService) ProcessUpload(userID int, filePath, originalName string) (*parsers.ParsedResume, []models.Skill, error) {
	student, err := s.studentModel.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load student profile: %v", err)
	}

	parsed, err := s.ParseResumeFile(filePath)
	if err != nil {
		return nil, nil, err
	}

	storedName := s.GenerateUniqueFilename(filepath.Ext(originalName))
	if s.s3Service != nil {
		if err := s.archiveOriginal(filePath, storedName); err != nil {
			utils.LogWarn("resume archive failed", map[string]string{"file": originalName, "error": err.Error()})
		}
	}

	data, err := json.Marshal(parsed)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode parsed resume: %v", err)
	}
	if err := s.studentModel.SaveParsedResume(student.ID, storedName, data); err != nil {
		return nil, nil, fmt.Errorf("failed to save parsed resume: %v", err)
	}

	skills, err := s.skillService.ReplaceStudentSkills(student.ID, parsed.Skills)
	if err != nil {
		return nil, nil, err
	}

	return parsed, skills, nil
}

func (s *ResumeService) archiveOriginal(filePath, storedName string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	_, err = s.s3Service.UploadBytes("resumes/"+storedName, content, contentTypeFor(storedName))
	return err
}

func (s *ResumeService) GenerateUniqueFilename(extension string) string {
	return fmt.Sprintf("resume_%s%s", uuid.NewString(), extension)
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain"
	}
}
