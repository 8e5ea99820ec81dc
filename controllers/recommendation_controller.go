package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internhub/middleware"
	"internhub/models"
	"internhub/services"
	"internhub/utils"
)

type RecommendationController struct {
	internshipModel *models.InternshipModel
	studentModel    *models.StudentModel
	matchService    *services.MatchService
}

func NewRecommendationController(
	internshipModel *models.InternshipModel,
	studentModel *models.StudentModel,
	matchService *services.MatchService,
) *RecommendationController {
	return &RecommendationController{
		internshipModel: internshipModel,
		studentModel:    studentModel,
		matchService:    matchService,
	}
}

// List ranks the catalog against the caller's skill set. The ranking
// is recomputed from scratch on every request.
func (c *RecommendationController) List(ctx *gin.Context) {
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

	studentSkills, err := c.studentModel.Skills(student.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load skills", err)
		return
	}

	if len(studentSkills) == 0 {
		utils.SuccessResponse(ctx, http.StatusOK, "Upload a resume to get recommendations", []services.MatchResult{})
		return
	}

	catalog, err := c.internshipModel.All()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load internships", err)
		return
	}

	ranked := c.matchService.RankRecommendations(studentSkills, catalog)
	utils.SuccessResponse(ctx, http.StatusOK, "Recommended internships", ranked)
}
