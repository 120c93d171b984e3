package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
	"github.com/parakita/backoffice/internal/dto"
	"github.com/parakita/backoffice/internal/query"
	"github.com/parakita/backoffice/internal/service"
)

type CurrencyHandler struct {
	currencies *service.CurrencyService
}

func NewCurrencyHandler(currencies *service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencies: currencies}
}

func (h *CurrencyHandler) List(c *gin.Context) {
	opts, err := query.ParseOptions(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	page, err := h.currencies.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, "Failed to list currencies", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CurrencyHandler) Get(c *gin.Context) {
	resp, err := h.currencies.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to load currency", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CurrencyHandler) Create(c *gin.Context) {
	var req dto.CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.currencies.Create(c.Request.Context(), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to create currency", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CurrencyHandler) Update(c *gin.Context) {
	var req dto.CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.currencies.Update(c.Request.Context(), c.Param("id"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to update currency", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CurrencyHandler) Delete(c *gin.Context) {
	if err := h.currencies.Delete(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		respondError(c, "Failed to delete currency", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Currency deleted"))
}

type GenderHandler struct {
	genders *service.GenderService
}

func NewGenderHandler(genders *service.GenderService) *GenderHandler {
	return &GenderHandler{genders: genders}
}

func (h *GenderHandler) List(c *gin.Context) {
	opts, err := query.ParseOptions(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	page, err := h.genders.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, "Failed to list genders", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *GenderHandler) Get(c *gin.Context) {
	resp, err := h.genders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to load gender", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GenderHandler) Create(c *gin.Context) {
	var req dto.GenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.genders.Create(c.Request.Context(), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to create gender", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *GenderHandler) Update(c *gin.Context) {
	var req dto.GenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.genders.Update(c.Request.Context(), c.Param("id"), &req, actorID(c))
	if err != nil {
		respondError(c, "Failed to update gender", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GenderHandler) Delete(c *gin.Context) {
	if err := h.genders.Delete(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		respondError(c, "Failed to delete gender", err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Gender deleted"))
}
