package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError maps a service error onto the response envelope. Anything
// that is not an *apierr.Error collapses to a generic failure without
// leaking internals.
func RespondAPIError(c *gin.Context, err error) {
	apiErr := apierr.From(err)
	if apiErr.Status == http.StatusInternalServerError {
		RespondError(c, apiErr.Status, apiErr.Code, nil)
		return
	}
	RespondError(c, apiErr.Status, apiErr.Code, apiErr)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid_id", nil)
		return 0, false
	}
	return id, true
}
