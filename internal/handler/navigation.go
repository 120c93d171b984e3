package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
	"github.com/parakita/backoffice/internal/service"
)

type NavigationHandler struct {
	navigation *service.NavigationService
}

func NewNavigationHandler(navigation *service.NavigationService) *NavigationHandler {
	return &NavigationHandler{navigation: navigation}
}

// Menu returns the navigation tree the authenticated user may see
func (h *NavigationHandler) Menu(c *gin.Context) {
	menu, err := h.navigation.MenuFor(c.Request.Context(), actorID(c))
	if err != nil {
		respondError(c, "Failed to build menu", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildDataResponse(menu))
}
