package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"internhub/middleware"
	"internhub/models"
	"internhub/services"
	"internhub/utils"
)

type InternshipController struct {
	internshipModel  *models.InternshipModel
	studentModel     *models.StudentModel
	applicationModel *models.ApplicationModel
	skillService     *services.SkillService
	matchService     *services.MatchService
}

func NewInternshipController(
	internshipModel *models.InternshipModel,
	studentModel *models.StudentModel,
	applicationModel *models.ApplicationModel,
	skillService *services.SkillService,
	matchService *services.MatchService,
) *InternshipController {
	return &InternshipController{
		internshipModel:  internshipModel,
		studentModel:     studentModel,
		applicationModel: applicationModel,
		skillService:     skillService,
		matchService:     matchService,
	}
}

// List returns the whole catalog, newest first
func (c *InternshipController) List(ctx *gin.Context) {
	internships, err := c.internshipModel.All()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load internships", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Internships", internships)
}

// Get returns one internship plus the caller's match against it. The
// match is computed fresh on every request.
func (c *InternshipController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid internship id", err)
		return
	}

	internship, err := c.internshipModel.GetByID(id)
	if err != nil {
		utils.NotFoundError(ctx, "Internship not found")
		return
	}

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

	hasApplied, err := c.applicationModel.Exists(student.ID, internship.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load application state", err)
		return
	}

	response := gin.H{
		"internship":       internship,
		"has_applied":      hasApplied,
		"matching_skills":  []models.Skill{},
		"match_percentage": 0.0,
	}

	if len(internship.RequiredSkills) > 0 {
		studentSkills, err := c.studentModel.Skills(student.ID)
		if err != nil {
			utils.InternalServerError(ctx, "Failed to load skills", err)
			return
		}
		if result, err := c.matchService.Match(studentSkills, internship); err == nil {
			response["matching_skills"] = result.MatchingSkills
			response["match_percentage"] = result.MatchPercentage
		}
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Internship", response)
}

type CreateInternshipRequest struct {
	Title          string   `json:"title" binding:"required"`
	Company        string   `json:"company" binding:"required"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Stipend        float64  `json:"stipend"`
	Duration       string   `json:"duration"`
	RequiredSkills []string `json:"required_skills"`
}

// Create adds an internship to the catalog. Required skills are
// resolved through the shared vocabulary, so listings and resumes
// meet on the same canonical names.
func (c *InternshipController) Create(ctx *gin.Context) {
	var req CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}

	internship, err := c.internshipModel.Create(req.Title, req.Company, req.Description, req.Location, req.Duration, req.Stipend)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to create internship", err)
		return
	}

	skills, err := c.skillService.ResolveSkills(req.RequiredSkills)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to resolve required skills", err)
		return
	}
	for _, skill := range skills {
		if err := c.internshipModel.AddRequiredSkill(internship.ID, skill.ID); err != nil {
			utils.InternalServerError(ctx, "Failed to attach required skill", err)
			return
		}
	}
	internship.RequiredSkills = skills

	utils.SuccessResponse(ctx, http.StatusCreated, "Internship created", internship)
}

// Apply records an application for the caller
func (c *InternshipController) Apply(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid internship id", err)
		return
	}

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

	if _, err := c.internshipModel.GetByID(id); err != nil {
		utils.NotFoundError(ctx, "Internship not found")
		return
	}

	application, err := c.applicationModel.Create(student.ID, id)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyApplied) {
			utils.ConflictError(ctx, "You have already applied for this internship")
			return
		}
		utils.InternalServerError(ctx, "Failed to create application", err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusCreated, "Application submitted", application)
}

// MyApplications lists the caller's applications, newest first
func (c *InternshipController) MyApplications(ctx *gin.Context) {
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

	applications, err := c.applicationModel.ListByStudent(student.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load applications", err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Applications", applications)
}
