package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/VertingsXin/ai-mock-interview/config"
	"github.com/VertingsXin/ai-mock-interview/database"
	_ "github.com/VertingsXin/ai-mock-interview/docs" // Swagger docs - auto-generated
	adminctrl "github.com/VertingsXin/ai-mock-interview/internal/controller/admin"
	userctrl "github.com/VertingsXin/ai-mock-interview/internal/controller/user"
	"github.com/VertingsXin/ai-mock-interview/internal/logger"
	"github.com/VertingsXin/ai-mock-interview/internal/middleware"
	"github.com/VertingsXin/ai-mock-interview/internal/model"
	"github.com/VertingsXin/ai-mock-interview/internal/repository"
	"github.com/VertingsXin/ai-mock-interview/internal/service"
)

// @title AI Mock Interview API
// @version 1.0
// @description Mock-interview practice: pick subjects, answer sampled questions, get similarity scores and AI critiques.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewSubjectRepository,
			repository.NewQuestionRepository,
			repository.NewInterviewRepository,
			repository.NewAttemptRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewContentService,
			service.NewSimilarityService,
			service.NewGeminiFeedbackService,
			service.NewFeedbackService,
			func(
				interviewRepo repository.InterviewRepository,
				questionRepo repository.QuestionRepository,
				attemptRepo repository.AttemptRepository,
				cfg *config.Config,
				db *gorm.DB,
			) service.InterviewService {
				return service.NewInterviewService(interviewRepo, questionRepo, attemptRepo, cfg, db)
			},
			service.NewSummaryService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewInterviewController,
			adminctrl.NewAdminContentController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authSvc service.AuthService,
	authCtrl *userctrl.AuthController,
	interviewCtrl *userctrl.InterviewController,
	adminCtrl *adminctrl.AdminContentController,
) {
	apiGroup := router.Group("/api/v1")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)

		// Interview routes require a valid bearer token.
		authed := apiGroup.Group("")
		authed.Use(middleware.JWTAuth(authSvc))
		authed.GET("/subjects", interviewCtrl.ListSubjects)
		authed.POST("/interviews", interviewCtrl.StartInterview)
		authed.GET("/interviews", interviewCtrl.ListInterviews)
		authed.GET("/interviews/:interview_id/questions/:index", interviewCtrl.GetQuestion)
		authed.POST("/interviews/:interview_id/questions/:index/answers", interviewCtrl.SubmitAnswer)
		authed.GET("/interviews/:interview_id/summary", interviewCtrl.GetSummary)

		adminGroup := apiGroup.Group("/admin")
		adminGroup.POST("/subjects", adminCtrl.CreateSubject)
		adminGroup.POST("/subjects/:subject_id/questions", adminCtrl.AddQuestion)
		adminGroup.GET("/questions", adminCtrl.ListQuestions)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("AI Mock Interview server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Question{},
		&model.Interview{},
		&model.InterviewQuestion{},
		&model.Attempt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
