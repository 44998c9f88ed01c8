package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/zhu0lin/hack-knight/internal/auth"
	"github.com/zhu0lin/hack-knight/internal/chatbot"
	"github.com/zhu0lin/hack-knight/internal/db"
	"github.com/zhu0lin/hack-knight/internal/food"
	"github.com/zhu0lin/hack-knight/internal/goal"
	"github.com/zhu0lin/hack-knight/internal/middleware"
	"github.com/zhu0lin/hack-knight/internal/nutrition"
	"github.com/zhu0lin/hack-knight/internal/recognition"
	"github.com/zhu0lin/hack-knight/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"S3_BUCKET_NAME",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE + RECOGNITION ─────────────────────────
	s3Client, err := storage.NewS3Client(context.Background())
	if err != nil {
		log.Fatal("❌ S3 init failed:", err)
	}

	var recognizer recognition.Recognizer
	if os.Getenv("AWS_REGION") != "" {
		recognizer, err = recognition.NewRekognitionRecognizer(context.Background())
		if err != nil {
			log.Fatal("❌ Rekognition init failed:", err)
		}
	} else {
		log.Println("AWS_REGION not set, using static food recognizer")
		recognizer = recognition.StaticRecognizer{}
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	users := r.Group("/api/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/profile", authHandler.GetProfile)
		users.PUT("/profile", authHandler.UpdateProfile)
	}

	// ───────────────────────── ENGINE ─────────────────────────
	logRepo := food.NewPostgresRepository(pgDB)
	summaryStore := nutrition.NewPostgresSummaryStore(pgDB)
	streakStore := nutrition.NewPostgresStreakStore(pgDB)

	engine := nutrition.NewService(logRepo, summaryStore, streakStore)
	nutritionHandler := nutrition.NewHandler(engine, recognizer, s3Client)

	foodGroup := r.Group("/api/food")
	foodGroup.Use(middleware.AuthMiddleware())
	{
		foodGroup.POST("/logs", nutritionHandler.CreateLog)
		foodGroup.POST("/upload", nutritionHandler.Upload)
		foodGroup.GET("/logs", nutritionHandler.ListLogs)
		foodGroup.DELETE("/logs/:id", nutritionHandler.DeleteLog)
	}

	analytics := r.Group("/api/analytics")
	analytics.Use(middleware.AuthMiddleware())
	{
		analytics.GET("/summary/today", nutritionHandler.TodaySummary)
		analytics.GET("/summary/week", nutritionHandler.WeekSummaryHandler)
		analytics.GET("/summary/history", nutritionHandler.SummaryHistory)
		analytics.GET("/missing-groups", nutritionHandler.MissingGroupsHandler)
		analytics.GET("/streak", nutritionHandler.GetStreak)
	}

	// ───────────────────────── GOALS ─────────────────────────
	goalRepo := goal.NewPostgresRepository(pgDB)
	goalService := goal.NewService(goalRepo)
	goalHandler := goal.NewHandler(goalService, profileBiometrics{users: authService})

	goals := r.Group("/api/goals")
	goals.Use(middleware.AuthMiddleware())
	{
		goals.POST("", goalHandler.SetGoal)
		goals.GET("", goalHandler.GetGoal)
		goals.GET("/recommendations", goalHandler.GetRecommendations)
		goals.GET("/target-calories", goalHandler.GetTargetCalories)
	}

	// ───────────────────────── CHAT ─────────────────────────
	chatService := chatbot.NewService(chatbot.NewGeminiClient(), engine)
	chatHandler := chatbot.NewHandler(chatService)

	chat := r.Group("/api/chat")
	chat.Use(middleware.AuthMiddleware())
	{
		chat.POST("", chatHandler.Chat)
		chat.GET("/suggestions", chatHandler.Suggestions)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}

// profileBiometrics feeds stored profile data into the goal handler
// without coupling the goal package to auth.
type profileBiometrics struct {
	users *auth.Service
}

func (p profileBiometrics) Biometrics(ctx context.Context, userID string) (*goal.Biometrics, error) {
	u, err := p.users.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal.Biometrics{
		WeightKg:      u.CurrentWeightKg,
		HeightCm:      u.HeightCm,
		Age:           u.Age,
		ActivityLevel: u.ActivityLevel,
	}, nil
}
