package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
	"github.com/parakita/backoffice/internal/dto"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/service"
)

type CustomerHandler struct {
	customers *service.CustomerService
}

func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// List returns a filtered, sorted page of customers
func (h *CustomerHandler) List(c *gin.Context) {
	opts, err := query.ParseOptions(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	page, err := h.customers.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, "Failed to list customers", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	resp, err := h.customers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to load customer", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.customers.Create(c.Request.Context(), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to create customer", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.customers.Update(c.Request.Context(), c.Param("id"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to update customer", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customers.Delete(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		respondError(c, "Failed to delete customer", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Customer deleted"))
}

func (h *CustomerHandler) AddContact(c *gin.Context) {
	var req dto.CustomerContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.customers.AddContact(c.Request.Context(), c.Param("id"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to add contact", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CustomerHandler) UpdateContact(c *gin.Context) {
	var req dto.CustomerContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.customers.UpdateContact(c.Request.Context(), c.Param("id"), c.Param("contactId"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to update contact", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) RemoveContact(c *gin.Context) {
	if err := h.customers.RemoveContact(c.Request.Context(), c.Param("id"), c.Param("contactId"), actorID(c)); err != nil {
		respondError(c, "Failed to remove contact", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Contact removed"))
}
