package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	discountUseCase usecase.DiscountUseCase
}

func NewDiscountHandler(discountUseCase usecase.DiscountUseCase) *DiscountHandler {
	return &DiscountHandler{
		discountUseCase: discountUseCase,
	}
}

// @Summary Create discount
// @Tags discounts
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDiscountRequest true "Discount request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /discounts [post]
func (h *DiscountHandler) Create(c *gin.Context) {
	var req reqdto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.BindingMessage(err))
		return
	}

	d, err := h.discountUseCase.CreateDiscount(c.Request.Context(), req.ToParams())
	if err != nil {
		abortDiscountError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.Success("discount created", resdto.FromDiscount(d)))
}

// @Summary List discounts
// @Tags discounts
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /discounts [get]
func (h *DiscountHandler) List(c *gin.Context) {
	discounts, err := h.discountUseCase.ListDiscounts(c.Request.Context())
	if err != nil {
		abortDiscountError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success("discounts retrieved", resdto.FromDiscounts(discounts)))
}

// @Summary Get discount
// @Tags discounts
// @Produce json
// @Param id path string true "Discount ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /discounts/{id} [get]
func (h *DiscountHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.discountUseCase.GetDiscount(c.Request.Context(), id)
	if err != nil {
		abortDiscountError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success("discount retrieved", resdto.FromDiscount(d)))
}

// @Summary Update discount
// @Tags discounts
// @Accept json
// @Produce json
// @Param id path string true "Discount ID"
// @Param request body reqdto.UpdateDiscountRequest true "Fields to update"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /discounts/{id} [put]
func (h *DiscountHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.BindingMessage(err))
		return
	}

	d, err := h.discountUseCase.UpdateDiscount(c.Request.Context(), id, req.ToParams())
	if err != nil {
		abortDiscountError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success("discount updated", resdto.FromDiscount(d)))
}

// @Summary Delete discount
// @Tags discounts
// @Produce json
// @Param id path string true "Discount ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /discounts/{id} [delete]
func (h *DiscountHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.discountUseCase.DeleteDiscount(c.Request.Context(), id); err != nil {
		abortDiscountError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success("discount deleted", nil))
}

func abortDiscountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrDiscountNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Discount not found")
	case errors.Is(err, usecase.ErrEmptyUpdate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No fields to update")
	case errors.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discount data")
	case errors.Is(err, usecase.ErrDuplicateCode):
		httperr.AbortWithError(c, http.StatusConflict, err, "Discount code already exists")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
