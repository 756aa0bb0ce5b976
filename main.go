package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
}

func setupRouter(client *mongo.Client, categoryCache *services.CategoryCache) *gin.Engine {
	dbConfig := config.LoadDatabaseConfig()

	userRepo := repository.GetUserRepo(client, dbConfig.DatabaseName)
	notesRepo := repository.GetNotesRepo(client, dbConfig.DatabaseName)
	categoriesRepo := repository.GetCategoriesRepo(client, dbConfig.DatabaseName)

	userService := &usecase.UserService{Users: userRepo}
	notesService := &usecase.NotesService{
		Notes:      notesRepo,
		Categories: categoriesRepo,
		Cache:      categoryCache,
	}

	authHandler := handler.NewAuthHandler(userService)
	notesHandler := handler.NewNotesHandler(notesService)
	healthHandler := handler.NewHealthHandler(client)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBodySize))

	router.GET("/health", healthHandler.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}
	}

	notes := router.Group("/api/notes")
	notes.Use(middleware.AuthMiddleware())
	{
		notes.GET("", notesHandler.ListNotes)
		notes.POST("", notesHandler.CreateNote)
		notes.GET("/category", middleware.CacheControlMiddleware("60"), notesHandler.ListCategories)
		notes.POST("/category", notesHandler.CreateCategory)
		notes.GET("/category/:categoryId", notesHandler.ListNotesByCategory)
		notes.GET("/:id", notesHandler.GetNote)
		notes.PUT("/:id", notesHandler.UpdateNote)
		notes.DELETE("/:id", notesHandler.DeleteNote)
	}

	return router
}

func main() {
	dbConfig := config.LoadDatabaseConfig()
	utils.InitMongoClient(dbConfig.URI, dbConfig.MaxPoolSize, dbConfig.MinPoolSize, dbConfig.MaxConnIdleTime)

	db := utils.MongoClient.Database(dbConfig.DatabaseName)
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	var categoryCache *services.CategoryCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		ttl := utils.GetEnvAsDuration("CATEGORY_CACHE_TTL", 5*time.Minute)
		cache, err := services.NewCategoryCache(redisURL, ttl)
		if err != nil {
			log.Printf("Category cache disabled: %v", err)
		} else {
			categoryCache = cache
			log.Println("Category cache enabled")
		}
	}

	router := setupRouter(utils.MongoClient, categoryCache)

	port := utils.GetEnvAsString("PORT", "8080")
	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
