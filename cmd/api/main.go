package main

import (
	"os"

	"notedeck/internal/auth"
	"notedeck/internal/config"
	"notedeck/internal/domain/sqlite"
	"notedeck/internal/domain/sqlite/repository"
	handler2 "notedeck/internal/http/handler"
	authmw "notedeck/internal/http/middleware"
	"notedeck/internal/service"
	"notedeck/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars from .env outside production
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Warnf("no .env file loaded: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Init SQLite
	db, err := sqlite.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("failed to initialize token issuer: %v", err)
	}

	// Getting repos
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	noteLabelRepo := repository.NewNoteLabelRepository(db)
	noteCategoryRepo := repository.NewNoteCategoryRepository(db)

	// Getting services
	userService := service.NewUserService(userRepo, issuer, validate)
	noteService := service.NewNoteService(noteRepo, labelRepo, categoryRepo, noteLabelRepo, noteCategoryRepo, validate)
	labelService := service.NewLabelService(labelRepo, validate)
	categoryService := service.NewCategoryService(categoryRepo, validate)

	// Getting handlers
	userRoutes := handler2.NewUserDefault(userService)
	noteRoutes := handler2.NewNoteDefault(noteService)
	labelRoutes := handler2.NewLabelDefault(labelService)
	categoryRoutes := handler2.NewCategoryDefault(categoryService)

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	// Auth
	e.POST("/auth/register", userRoutes.Register)
	e.POST("/auth/login", userRoutes.Login)
	e.GET("/auth/validate", userRoutes.Validate)

	guard := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{
		Issuer:   issuer,
		UserRepo: userRepo,
	})

	// Notes
	api := e.Group("", guard)
	api.GET("/notes", noteRoutes.GetNotes)
	api.GET("/notes/:id", noteRoutes.GetNote)
	api.POST("/notes", noteRoutes.CreateNote)
	api.PUT("/notes", noteRoutes.UpdateNote)
	api.DELETE("/notes/:id", noteRoutes.DeleteNote)

	// Note associations
	api.GET("/notes/:id/labels/", noteRoutes.GetNoteLabels)
	api.PUT("/notes/:note_id/labels/:label_id", noteRoutes.AttachLabel)
	api.DELETE("/notes/:note_id/labels/:label_id", noteRoutes.DetachLabel)
	api.GET("/notes/:id/categories/", noteRoutes.GetNoteCategories)
	api.PUT("/notes/:note_id/categories/:category_id", noteRoutes.AttachCategory)
	api.DELETE("/notes/:note_id/categories/:category_id", noteRoutes.DetachCategory)

	// Labels
	api.GET("/labels", labelRoutes.GetLabels)
	api.GET("/labels/:id", labelRoutes.GetLabel)
	api.POST("/labels", labelRoutes.CreateLabel)
	api.PUT("/labels", labelRoutes.UpdateLabel)
	api.DELETE("/labels/:id", labelRoutes.DeleteLabel)

	// Categories
	api.GET("/categories", categoryRoutes.GetCategories)
	api.GET("/categories/:id", categoryRoutes.GetCategory)
	api.POST("/categories", categoryRoutes.CreateCategory)
	api.PUT("/categories", categoryRoutes.UpdateCategory)
	api.DELETE("/categories/:id", categoryRoutes.DeleteCategory)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
