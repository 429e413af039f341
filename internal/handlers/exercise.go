package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/services"
)

type ExerciseHandler struct {
	exerciseService services.ExerciseService
}

func NewExerciseHandler(exerciseService services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// GET /api/exercises
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.List(c.Request.Context(), nil)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, exercises)
}

// POST /api/exercises
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		VideoURL string `json:"video_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	exercise, err := h.exerciseService.Create(c.Request.Context(), nil, req.Name, req.Type, req.VideoURL)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondCreated(c, exercise)
}
