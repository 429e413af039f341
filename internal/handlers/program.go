package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/logger"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/services"
)

type ProgramHandler struct {
	log            *logger.Logger
	programService services.ProgramService
	workoutService services.WorkoutService
}

func NewProgramHandler(log *logger.Logger, programService services.ProgramService, workoutService services.WorkoutService) *ProgramHandler {
	return &ProgramHandler{
		log:            log.With("handler", "ProgramHandler"),
		programService: programService,
		workoutService: workoutService,
	}
}

// GET /api/programs
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	programs, err := h.programService.List(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("ListPrograms failed", "error", err)
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, programs)
}

// POST /api/programs
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Level       string `json:"level"`
		Type        string `json:"type"`
		Category    string `json:"category"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	program, err := h.programService.Create(c.Request.Context(), nil, req.Name, req.Level, req.Type, req.Category, req.Description)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondCreated(c, program)
}

// GET /api/programs/:id
func (h *ProgramHandler) GetProgramDetail(c *gin.Context) {
	programID, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail, err := h.programService.GetWithWorkouts(c.Request.Context(), nil, programID)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, detail)
}

// POST /api/programs/:id/workouts
func (h *ProgramHandler) CreateWorkout(c *gin.Context) {
	programID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name       string `json:"name"`
		DayNumber  int    `json:"dayNumber"`
		WeekNumber int    `json:"weekNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	workout, err := h.workoutService.Create(c.Request.Context(), nil, programID, req.Name, req.DayNumber, req.WeekNumber)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondCreated(c, workout)
}

// DELETE /api/programs/:id
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	programID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.programService.CascadeDelete(c.Request.Context(), nil, programID); err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "program deleted successfully"})
}
