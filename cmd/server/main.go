package main

import (
	"log"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/studify/studify-api/internal/config"
	"github.com/studify/studify-api/internal/constants"
	"github.com/studify/studify-api/internal/database"
	"github.com/studify/studify-api/internal/handlers"
	"github.com/studify/studify-api/internal/middleware"
	"github.com/studify/studify-api/internal/repository"
	"github.com/studify/studify-api/internal/services"
	"github.com/studify/studify-api/internal/storage"
)

func main() {
	// Load configuration; refuses to run without an explicit JWT secret
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	secret := []byte(cfg.JWTSecret)
	db := database.GetDB()
	store := storage.NewStore(cfg.UploadRoot)

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, secret)
	taskHandler := handlers.NewTaskHandler(repository.NewTaskRepository(db))
	noteHandler := handlers.NewNoteHandler(repository.NewNoteRepository(db))
	eventHandler := handlers.NewEventHandler(repository.NewEventRepository(db))
	courseHandler := handlers.NewCourseHandler(repository.NewCourseRepository(db), store)
	resourceHandler := handlers.NewResourceHandler(repository.NewResourceRepository(db), store)
	pomodoroHandler := handlers.NewPomodoroHandler(repository.NewPomodoroRepository(db))

	// Initialize Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Uploaded files are served back under their storage paths
	r.Static("/"+constants.CertificateDir, filepath.Join(cfg.UploadRoot, filepath.FromSlash(constants.CertificateDir)))
	r.Static("/"+constants.ResourceDir, filepath.Join(cfg.UploadRoot, filepath.FromSlash(constants.ResourceDir)))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Bienvenido al backend de Studify")
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (register and login are the only public endpoints)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/verify", middleware.RequireAuth(secret), authHandler.Verify)
		}

		// Every feature route sits behind the auth gateway; the owning
		// user is always the token's subject.
		protected := api.Group("", middleware.RequireAuth(secret))

		tareas := protected.Group("/tareas")
		{
			tareas.POST("/create", taskHandler.Create)
			tareas.GET("/list", taskHandler.List)
			tareas.PUT("/update/:id_tarea", taskHandler.Update)
			tareas.DELETE("/delete/:id_tarea", taskHandler.Delete)
		}

		notas := protected.Group("/notas")
		{
			notas.POST("/create", noteHandler.Create)
			notas.GET("/list", noteHandler.List)
			notas.PUT("/update/:id_nota", noteHandler.Update)
			notas.DELETE("/delete/:id_nota", noteHandler.Delete)
		}

		planificador := protected.Group("/planificador")
		{
			planificador.POST("/create", eventHandler.Create)
			planificador.GET("/list", eventHandler.List)
			planificador.PUT("/update/:id_evento", eventHandler.Update)
			planificador.DELETE("/delete/:id_evento", eventHandler.Delete)
		}

		cursos := protected.Group("/cursos")
		{
			cursos.POST("/create", courseHandler.Create)
			cursos.GET("/list", courseHandler.List)
			cursos.PUT("/update/:id_curso", courseHandler.Update)
			cursos.POST("/upload/:id_curso", courseHandler.UploadCertificate)
			cursos.DELETE("/delete/:id_curso", courseHandler.Delete)
		}

		recursos := protected.Group("/recursos")
		{
			recursos.POST("/upload", resourceHandler.Upload)
			recursos.GET("/list", resourceHandler.List)
			recursos.GET("/search", resourceHandler.Search)
			recursos.DELETE("/delete/:id_recurso", resourceHandler.Delete)
		}

		pomodoro := protected.Group("/pomodoro")
		{
			pomodoro.POST("/register", pomodoroHandler.Register)
			pomodoro.GET("/history", pomodoroHandler.History)
			pomodoro.DELETE("/delete/:id", pomodoroHandler.Delete)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
