package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"internhub/middleware"
	"internhub/models"
	"internhub/services"
	"internhub/utils"
)

var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

type ResumeController struct {
	resumeService *services.ResumeService
	studentModel  *models.StudentModel
	tempDir       string
}

func NewResumeController(resumeService *services.ResumeService, studentModel *models.StudentModel, tempDir string) *ResumeController {
	return &ResumeController{
		resumeService: resumeService,
		studentModel:  studentModel,
		tempDir:       tempDir,
	}
}

// Upload accepts a multipart resume file, parses it and replaces the
// student's stored resume and skill set. A document that cannot be
// read is the caller's problem, not a server failure.
func (c *ResumeController) Upload(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		utils.UnauthorizedError(ctx, "Not authenticated")
		return
	}

	file, err := ctx.FormFile("resume")
	if err != nil {
		utils.BadRequestError(ctx, "No resume file provided", err)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedResumeExtensions[ext] {
		utils.BadRequestError(ctx, "Unsupported file type; upload a PDF, DOCX or TXT resume", nil)
		return
	}

	tempPath := filepath.Join(c.tempDir, "upload_"+uuid.NewString()+ext)
	if err := ctx.SaveUploadedFile(file, tempPath); err != nil {
		utils.InternalServerError(ctx, "Failed to store uploaded file", err)
		return
	}
	defer os.Remove(tempPath)

	parsed, skills, err := c.resumeService.ProcessUpload(userID, tempPath, file.Filename)
	if err != nil {
		var parseErr *services.ParseError
		if errors.As(err, &parseErr) {
			utils.BadRequestError(ctx, "Failed to parse resume. Please ensure it is a valid PDF.", err)
			return
		}
		utils.InternalServerError(ctx, "Failed to process resume", err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Resume uploaded and parsed successfully!", gin.H{
		"resume":       parsed,
		"skills":       skills,
		"skills_count": len(skills),
	})
}

// Get returns the student's stored resume parse
func (c *ResumeController) Get(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		utils.UnauthorizedError(ctx, "Not authenticated")
		return
	}

	student, err := c.studentModel.GetOrCreateByUserID(userID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load student profile", err)
		return
	}

	if len(student.ResumeData) == 0 {
		utils.NotFoundError(ctx, "No resume uploaded yet")
		return
	}

	skills, err := c.studentModel.Skills(student.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load skills", err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Resume", gin.H{
		"resume": json.RawMessage(student.ResumeData),
		"skills": skills,
	})
}
