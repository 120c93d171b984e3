package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
	"github.com/parakita/backoffice/internal/dto"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/service"
)

type ConfigHandler struct {
	configs *service.ConfigService
}

func NewConfigHandler(configs *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{configs: configs}
}

func (h *ConfigHandler) List(c *gin.Context) {
	opts, err := query.ParseOptions(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	page, err := h.configs.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, "Failed to list configs", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ConfigHandler) GetByName(c *gin.Context) {
	resp, err := h.configs.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, "Failed to load config", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Upsert creates or replaces the named config value
func (h *ConfigHandler) Upsert(c *gin.Context) {
	var req dto.ConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.configs.Upsert(c.Request.Context(), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to save config", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConfigHandler) Delete(c *gin.Context) {
	if err := h.configs.Delete(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		respondError(c, "Failed to delete config", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Config deleted"))
}
