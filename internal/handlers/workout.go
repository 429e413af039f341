package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/services"
)

type WorkoutHandler struct {
	workoutService    services.WorkoutService
	assignmentService services.AssignmentService
}

func NewWorkoutHandler(workoutService services.WorkoutService, assignmentService services.AssignmentService) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService:    workoutService,
		assignmentService: assignmentService,
	}
}

// PUT /api/workouts/:id
func (h *WorkoutHandler) RenameWorkout(c *gin.Context) {
	workoutID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	if err := h.workoutService.Rename(c.Request.Context(), nil, workoutID, req.Name); err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "workout updated successfully"})
}

// DELETE /api/workouts/:id
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	workoutID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.workoutService.CascadeDelete(c.Request.Context(), nil, workoutID); err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "workout deleted successfully"})
}

// GET /api/workouts/:id/exercises
func (h *WorkoutHandler) ListWorkoutExercises(c *gin.Context) {
	workoutID, ok := parseID(c, "id")
	if !ok {
		return
	}
	details, err := h.assignmentService.ListForWorkout(c.Request.Context(), nil, workoutID)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, details)
}
