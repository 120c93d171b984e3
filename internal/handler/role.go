package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
	"github.com/parakita/backoffice/internal/dto"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/service"
)

type RoleHandler struct {
	roles *service.RoleService
}

func NewRoleHandler(roles *service.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

func (h *RoleHandler) List(c *gin.Context) {
	opts, err := query.ParseOptions(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	page, err := h.roles.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, "Failed to list roles", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *RoleHandler) Get(c *gin.Context) {
	resp, err := h.roles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to load role", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.roles.Create(c.Request.Context(), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to create role", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RoleHandler) Update(c *gin.Context) {
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.roles.Update(c.Request.Context(), c.Param("id"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to update role", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoleHandler) Delete(c *gin.Context) {
	if err := h.roles.Delete(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		respondError(c, "Failed to delete role", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Role deleted"))
}
