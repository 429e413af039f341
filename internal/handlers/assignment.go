package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/services"
)

type AssignmentHandler struct {
	assignmentService services.AssignmentService
}

func NewAssignmentHandler(assignmentService services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// POST /api/workouts/:id/exercises
func (h *AssignmentHandler) AssignExercise(c *gin.Context) {
	workoutID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		ExerciseID int64   `json:"exerciseId"`
		Sets       int     `json:"sets"`
		Reps       string  `json:"reps"`
		Weight     string  `json:"weight"`
		RestTime   int     `json:"restTime"`
		Notes      *string `json:"notes"`
		OrderIndex int     `json:"orderIndex"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	assignment, err := h.assignmentService.Assign(c.Request.Context(), nil, workoutID, req.ExerciseID, services.AssignmentInput{
		Sets:       req.Sets,
		Reps:       req.Reps,
		Weight:     req.Weight,
		RestTime:   req.RestTime,
		Notes:      req.Notes,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondCreated(c, assignment)
}

// PUT /api/workouts/:id/exercises/:assignmentId
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	workoutID, ok := parseID(c, "id")
	if !ok {
		return
	}
	assignmentID, ok := parseID(c, "assignmentId")
	if !ok {
		return
	}
	var req struct {
		Sets     int     `json:"sets"`
		Reps     string  `json:"reps"`
		Weight   string  `json:"weight"`
		RestTime int     `json:"restTime"`
		Notes    *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	err := h.assignmentService.Update(c.Request.Context(), nil, workoutID, assignmentID, services.AssignmentInput{
		Sets:     req.Sets,
		Reps:     req.Reps,
		Weight:   req.Weight,
		RestTime: req.RestTime,
		Notes:    req.Notes,
	})
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "exercise updated successfully"})
}

// DELETE /api/workouts/:id/exercises/:assignmentId
func (h *AssignmentHandler) RemoveAssignmentScoped(c *gin.Context) {
	workoutID, ok := parseID(c, "id")
	if !ok {
		return
	}
	assignmentID, ok := parseID(c, "assignmentId")
	if !ok {
		return
	}
	if err := h.assignmentService.RemoveScoped(c.Request.Context(), nil, workoutID, assignmentID); err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "exercise removed successfully"})
}

// DELETE /api/workout-exercises/:id
func (h *AssignmentHandler) RemoveAssignment(c *gin.Context) {
	assignmentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.assignmentService.Remove(c.Request.Context(), nil, assignmentID); err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "exercise removed successfully"})
}
