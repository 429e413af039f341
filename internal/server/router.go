package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/handlers"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/middleware"
)

type RouterConfig struct {
	RequestIDMiddleware *middleware.RequestIDMiddleware
	ProgramHandler      *handlers.ProgramHandler
	WorkoutHandler      *handlers.WorkoutHandler
	ExerciseHandler     *handlers.ExerciseHandler
	AssignmentHandler   *handlers.AssignmentHandler
	AllowedOrigins      []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:5173",
			"https://workout-plus.vercel.app",
		}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	router.Use(cfg.RequestIDMiddleware.Tag())

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Programs
		api.GET("/programs", cfg.ProgramHandler.ListPrograms)
		api.POST("/programs", cfg.ProgramHandler.CreateProgram)
		api.GET("/programs/:id", cfg.ProgramHandler.GetProgramDetail)
		api.DELETE("/programs/:id", cfg.ProgramHandler.DeleteProgram)
		api.POST("/programs/:id/workouts", cfg.ProgramHandler.CreateWorkout)
		// Exercise catalog
		api.GET("/exercises", cfg.ExerciseHandler.ListExercises)
		api.POST("/exercises", cfg.ExerciseHandler.CreateExercise)
		// Workouts
		api.PUT("/workouts/:id", cfg.WorkoutHandler.RenameWorkout)
		api.DELETE("/workouts/:id", cfg.WorkoutHandler.DeleteWorkout)
		api.GET("/workouts/:id/exercises", cfg.WorkoutHandler.ListWorkoutExercises)
		// Assignments
		api.POST("/workouts/:id/exercises", cfg.AssignmentHandler.AssignExercise)
		api.PUT("/workouts/:id/exercises/:assignmentId", cfg.AssignmentHandler.UpdateAssignment)
		api.DELETE("/workouts/:id/exercises/:assignmentId", cfg.AssignmentHandler.RemoveAssignmentScoped)
		api.DELETE("/workout-exercises/:id", cfg.AssignmentHandler.RemoveAssignment)
	}

	return router
}
