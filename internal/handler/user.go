package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
	"github.com/parakita/backoffice/internal/dto"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *gin.Context) {
	opts, err := query.ParseOptions(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	page, err := h.users.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, "Failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *UserHandler) Get(c *gin.Context) {
	resp, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to load user", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user's own profile
func (h *UserHandler) Me(c *gin.Context) {
	resp, err := h.users.Get(c.Request.Context(), actorID(c))
	if err != nil {
		respondError(c, "Failed to load profile", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.users.Create(c.Request.Context(), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to create user", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.users.Update(c.Request.Context(), c.Param("id"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to update user", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ChangePassword updates the authenticated user's own password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), actorID(c), &req); err != nil {
		respondError(c, "Failed to change password", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Password changed"))
}

func (h *UserHandler) Block(c *gin.Context) {
	if err := h.users.Block(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		respondError(c, "Failed to block user", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("User blocked"))
}

func (h *UserHandler) Unblock(c *gin.Context) {
	if err := h.users.Unblock(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		respondError(c, "Failed to unblock user", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("User unblocked"))
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		respondError(c, "Failed to delete user", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("User deleted"))
}

func (h *UserHandler) AssignRoles(c *gin.Context) {
	var req dto.AssignRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.users.AssignRoles(c.Request.Context(), c.Param("id"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to assign roles", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
