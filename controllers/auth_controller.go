package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"internhub/middleware"
	"internhub/models"
	"internhub/services"
)

type AuthController struct {
	userModel    *models.UserModel
	studentModel *models.StudentModel
	jwtService   *services.JWTService
}

func NewAuthController(userModel *models.UserModel, studentModel *models.StudentModel, jwtService *services.JWTService) *AuthController {
	return &AuthController{
		userModel:    userModel,
		studentModel: studentModel,
		jwtService:   jwtService,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    string `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request data: " + err.Error(),
		})
		return
	}

	existingUser, err := c.userModel.GetByEmail(req.Email)
	if err == nil && existingUser != nil {
		ctx.JSON(http.StatusConflict, AuthResponse{
			Success: false,
			Message: "User with this email already exists",
		})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to hash password",
		})
		return
	}

	user, err := c.userModel.Create(req.Email, req.Name, string(hashedPassword))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to create user account",
		})
		return
	}

	// Student profile exists from the first moment the account does
	if _, err := c.studentModel.GetOrCreateByUserID(user.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to create student profile",
		})
		return
	}

	token, err := c.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to generate authentication token",
		})
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Registration successful",
		User:    user.Email,
		Token:   token,
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request data: " + err.Error(),
		})
		return
	}

	user, err := c.userModel.GetByEmail(req.Email)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	token, err := c.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to generate authentication token",
		})
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    user.Email,
		Token:   token,
	})
}

func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, AuthResponse{Success: false, Message: "Not authenticated"})
		return
	}

	user, err := c.userModel.GetByID(userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, AuthResponse{Success: false, Message: "User not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
