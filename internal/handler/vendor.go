package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
	"github.com/parakita/backoffice/internal/dto"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/service"
)

type VendorHandler struct {
	vendors *service.VendorService
}

func NewVendorHandler(vendors *service.VendorService) *VendorHandler {
	return &VendorHandler{vendors: vendors}
}

// List returns a filtered, sorted page of vendors
func (h *VendorHandler) List(c *gin.Context) {
	opts, err := query.ParseOptions(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	page, err := h.vendors.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, "Failed to list vendors", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *VendorHandler) Get(c *gin.Context) {
	resp, err := h.vendors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to load vendor", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VendorHandler) Create(c *gin.Context) {
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.vendors.Create(c.Request.Context(), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to create vendor", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VendorHandler) Update(c *gin.Context) {
	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.vendors.Update(c.Request.Context(), c.Param("id"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to update vendor", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VendorHandler) Delete(c *gin.Context) {
	if err := h.vendors.Delete(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		respondError(c, "Failed to delete vendor", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Vendor deleted"))
}

func (h *VendorHandler) AddContact(c *gin.Context) {
	var req dto.VendorContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.vendors.AddContact(c.Request.Context(), c.Param("id"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to add contact", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VendorHandler) UpdateContact(c *gin.Context) {
	var req dto.VendorContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.vendors.UpdateContact(c.Request.Context(), c.Param("id"), c.Param("contactId"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to update contact", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VendorHandler) RemoveContact(c *gin.Context) {
	if err := h.vendors.RemoveContact(c.Request.Context(), c.Param("id"), c.Param("contactId"), actorID(c)); err != nil {
		respondError(c, "Failed to remove contact", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Contact removed"))
}
