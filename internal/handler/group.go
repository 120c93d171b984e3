package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
	"github.com/parakita/backoffice/internal/dto"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/service"
)

// groupOps is the shared surface of the vendor and customer group
// services, so both sides reuse one handler.
type groupOps interface {
	List(ctx context.Context, opts query.Options) (*query.PagedList[dto.GroupResponse], error)
	Get(ctx context.Context, id string) (*dto.GroupResponse, error)
	Create(ctx context.Context, req *dto.GroupRequest, actorID string) (*dto.GroupResponse, error)
	Update(ctx context.Context, id string, req *dto.GroupRequest, actorID string) (*dto.GroupResponse, error)
	Delete(ctx context.Context, id, actorID string) error
	AddSubGroup(ctx context.Context, groupID string, req *dto.SubGroupRequest, actorID string) (*dto.GroupResponse, error)
	UpdateSubGroup(ctx context.Context, groupID, subID string, req *dto.SubGroupRequest, actorID string) (*dto.GroupResponse, error)
	RemoveSubGroup(ctx context.Context, groupID, subID, actorID string) error
}

type GroupHandler struct {
	groups groupOps
	label  string
}

func NewVendorGroupHandler(groups *service.VendorGroupService) *GroupHandler {
	return &GroupHandler{groups: groups, label: "vendor group"}
}

func NewCustomerGroupHandler(groups *service.CustomerGroupService) *GroupHandler {
	return &GroupHandler{groups: groups, label: "customer group"}
}

func (h *GroupHandler) List(c *gin.Context) {
	opts, err := query.ParseOptions(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	page, err := h.groups.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, "Failed to list "+h.label+"s", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *GroupHandler) Get(c *gin.Context) {
	resp, err := h.groups.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to load "+h.label, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GroupHandler) Create(c *gin.Context) {
	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.groups.Create(c.Request.Context(), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to create "+h.label, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GroupHandler) Update(c *gin.Context) {
	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.groups.Update(c.Request.Context(), c.Param("id"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to update "+h.label, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GroupHandler) Delete(c *gin.Context) {
	if err := h.groups.Delete(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		respondError(c, "Failed to delete "+h.label, err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Group deleted"))
}

func (h *GroupHandler) AddSubGroup(c *gin.Context) {
	var req dto.SubGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.groups.AddSubGroup(c.Request.Context(), c.Param("id"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to add sub group", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GroupHandler) UpdateSubGroup(c *gin.Context) {
	var req dto.SubGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.groups.UpdateSubGroup(c.Request.Context(), c.Param("id"), c.Param("subId"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to update sub group", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GroupHandler) RemoveSubGroup(c *gin.Context) {
	if err := h.groups.RemoveSubGroup(c.Request.Context(), c.Param("id"), c.Param("subId"), actorID(c)); err != nil {
		respondError(c, "Failed to remove sub group", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Sub group removed"))
}
