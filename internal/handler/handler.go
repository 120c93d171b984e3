package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
	apperrors "github.com/parakita/backoffice/internal/errors"
	"github.com/parakita/backoffice/internal/middleware"
)

// respondError maps a service error onto the HTTP status contract and the
// standard error envelope.
func respondError(c *gin.Context, message string, err error) {
	status := apperrors.ToHTTPStatus(err)
	c.JSON(status, constants.BuildErrorResponse(message, apperrors.GetErrorMessage(err)))
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
}

// actorID returns the authenticated user's id set by the auth middleware
func actorID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
