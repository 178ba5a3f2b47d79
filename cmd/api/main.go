package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/biohack-api/internal/config"
	"github.com/yourusername/biohack-api/internal/handler"
	"github.com/yourusername/biohack-api/internal/middleware"
	pgRepo "github.com/yourusername/biohack-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/biohack-api/internal/repository/redis"
	"github.com/yourusername/biohack-api/internal/service"
	ws "github.com/yourusername/biohack-api/internal/websocket"
	"github.com/yourusername/biohack-api/pkg/auth"
	"github.com/yourusername/biohack-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции (схема + иммутабельный контент викторины)
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)

	challengeRepo, err := redisRepo.NewChallengeRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize ChallengeRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем JWT сервис
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Хаб рассылки рейтинга
	hub := ws.NewHub()

	// Инициализируем сервисы
	authService, err := service.NewAuthService(userRepo, jwtService)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}
	scoreService := service.NewScoreService(userRepo, hub)
	gameService, err := service.NewGameService(questionRepo, challengeRepo, scoreService, cfg.Game.QuizPoints, cfg.Game.ChallengeTTL)
	if err != nil {
		log.Printf("Failed to initialize GameService: %v", err)
		os.Exit(1)
	}

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(scoreService)
	gameHandler := handler.NewGameHandler(gameService)
	wsHandler := handler.NewWSHandler(hub, scoreService)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Аутентификация
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Пользователи
		users := api.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			users.GET("/me", authHandler.GetMe)
		}

		// Лидерборд (публичные маршруты)
		api.GET("/leaderboard", userHandler.GetLeaderboard)
		api.GET("/leaderboard/export", userHandler.ExportLeaderboard)

		// Челленджи: выдача публичная, личность при ответе - из токена, если он есть
		challenges := api.Group("/challenges")
		challenges.Use(authMiddleware.OptionalAuth())
		{
			challenges.POST("", gameHandler.CreateChallenge)
			challenges.POST("/:id/answer", gameHandler.SubmitAnswer)
		}
	}

	// WebSocket маршрут: живые обновления рейтинга
	router.GET("/ws/leaderboard", wsHandler.HandleLeaderboard)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
