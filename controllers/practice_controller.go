package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"internhub/models"
	"internhub/utils"
)

// PracticeController serves the preparation content attached to an
// internship: quizzes, coding challenges and interview questions.
type PracticeController struct {
	internshipModel *models.InternshipModel
	questionModel   *models.QuestionModel
}

func NewPracticeController(internshipModel *models.InternshipModel, questionModel *models.QuestionModel) *PracticeController {
	return &PracticeController{
		internshipModel: internshipModel,
		questionModel:   questionModel,
	}
}

func (c *PracticeController) Quiz(ctx *gin.Context) {
	internshipID, ok := c.internshipID(ctx)
	if !ok {
		return
	}
	questions, err := c.questionModel.QuizByInternship(internshipID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load quiz questions", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Quiz questions", questions)
}

func (c *PracticeController) Coding(ctx *gin.Context) {
	internshipID, ok := c.internshipID(ctx)
	if !ok {
		return
	}
	questions, err := c.questionModel.CodingByInternship(internshipID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load coding questions", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Coding questions", questions)
}

func (c *PracticeController) Interview(ctx *gin.Context) {
	internshipID, ok := c.internshipID(ctx)
	if !ok {
		return
	}
	questions, err := c.questionModel.InterviewByInternship(internshipID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load interview questions", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Interview questions", questions)
}

func (c *PracticeController) internshipID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid internship id", err)
		return 0, false
	}
	if _, err := c.internshipModel.GetByID(id); err != nil {
		utils.NotFoundError(ctx, "Internship not found")
		return 0, false
	}
	return id, true
}
