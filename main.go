package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"internhub/config"
	"internhub/controllers"
	"internhub/database"
	"internhub/middleware"
	"internhub/models"
	"internhub/services"
	"internhub/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.GetAppConfig()

	db, err := database.Connect(
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.DBName, cfg.Database.SSLMode,
	)
	if err != nil {
		log.Fatal("Database connection failed: ", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatal("Schema setup failed: ", err)
	}

	userModel := models.NewUserModel(db)
	studentModel := models.NewStudentModel(db)
	skillModel := models.NewSkillModel(db)
	internshipModel := models.NewInternshipModel(db)
	applicationModel := models.NewApplicationModel(db)
	questionModel := models.NewQuestionModel(db)

	jwtService := services.NewJWTService(cfg.JWTSecret)
	skillService := services.NewSkillService(skillModel, studentModel)
	matchService := services.NewMatchService()

	s3Service, err := services.NewS3Service()
	if err != nil {
		utils.LogWarn("S3 not configured, resume archiving disabled")
		s3Service = nil
	}
	resumeService := services.NewResumeService(studentModel, skillService, s3Service)

	authController := controllers.NewAuthController(userModel, studentModel, jwtService)
	resumeController := controllers.NewResumeController(resumeService, studentModel, cfg.Upload.TempDir)
	internshipController := controllers.NewInternshipController(internshipModel, studentModel, applicationModel, skillService, matchService)
	recommendationController := controllers.NewRecommendationController(internshipModel, studentModel, matchService)
	practiceController := controllers.NewPracticeController(internshipModel, questionModel)

	uploadLimiter := middleware.NewRateLimiter(10, time.Minute)

	r := gin.Default()
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	api := r.Group("/api")
	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)

	authed := api.Group("", middleware.RequireAuth(jwtService))
	authed.GET("/me", authController.Me)

	authed.POST("/resume",
		uploadLimiter.Limit(),
		middleware.MaxRequestSize(cfg.Upload.MaxSizeBytes),
		middleware.ValidateContentType("multipart/form-data"),
		resumeController.Upload,
	)
	authed.GET("/resume", resumeController.Get)

	authed.GET("/internships", internshipController.List)
	authed.POST("/internships", internshipController.Create)
	authed.GET("/internships/:id", internshipController.Get)
	authed.POST("/internships/:id/apply", internshipController.Apply)
	authed.GET("/internships/:id/quiz", practiceController.Quiz)
	authed.GET("/internships/:id/coding", practiceController.Coding)
	authed.GET("/internships/:id/interview", practiceController.Interview)

	authed.GET("/applications", internshipController.MyApplications)
	authed.GET("/recommendations", recommendationController.List)

	utils.LogInfo("Starting server", map[string]string{"port": cfg.Port})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
