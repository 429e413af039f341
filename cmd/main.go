package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/db"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/handlers"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/logger"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/middleware"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/repos"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/server"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/services"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/utils"
)

func main() {
	// Env file, if present
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	programRepo := repos.NewProgramRepo(thePG, log)
	workoutRepo := repos.NewWorkoutRepo(thePG, log)
	exerciseRepo := repos.NewExerciseRepo(thePG, log)
	workoutExerciseRepo := repos.NewWorkoutExerciseRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	programService := services.NewProgramService(thePG, log, programRepo, workoutRepo, workoutExerciseRepo)
	workoutService := services.NewWorkoutService(thePG, log, programRepo, workoutRepo, workoutExerciseRepo)
	exerciseService := services.NewExerciseService(thePG, log, exerciseRepo)
	assignmentService := services.NewAssignmentService(thePG, log, workoutRepo, exerciseRepo, workoutExerciseRepo)

	// Base catalog
	if err := exerciseService.SeedCatalog(context.Background()); err != nil {
		log.Warn("Exercise catalog seeding failed", "error", err)
	}

	// Handlers
	log.Info("Setting up handlers from main...")
	programHandler := handlers.NewProgramHandler(log, programService, workoutService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService, assignmentService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	// Middleware
	requestIDMiddleware := middleware.NewRequestIDMiddleware(log)

	// Router
	log.Info("Setting up router from main...")
	var allowedOrigins []string
	if raw := utils.GetEnv("CORS_ALLOWED_ORIGINS", "", log); raw != "" {
		allowedOrigins = strings.Split(raw, ",")
	}
	router := server.NewRouter(server.RouterConfig{
		RequestIDMiddleware: requestIDMiddleware,
		ProgramHandler:      programHandler,
		WorkoutHandler:      workoutHandler,
		ExerciseHandler:     exerciseHandler,
		AssignmentHandler:   assignmentHandler,
		AllowedOrigins:      allowedOrigins,
	})

	port := utils.GetEnv("PORT", "3000", log)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: stop the listener, then release the pool.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownTimeout := utils.GetEnvAsInt("SHUTDOWN_TIMEOUT", 10, log)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("Server shutdown failed", "error", err)
	}
	if err := postgresService.Close(); err != nil {
		log.Warn("Closing postgres failed", "error", err)
	}
	log.Info("Server stopped")
}
