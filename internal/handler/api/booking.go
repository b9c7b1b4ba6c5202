package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Create a booking; the total price is computed server-side from room rate, stay length, and an optional discount
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.BindingMessage(err))
		return
	}

	b, err := h.bookingUseCase.CreateBooking(c.Request.Context(), req.ToParams())
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.Success("booking created", resdto.FromBooking(b)))
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookingUseCase.ListBookings(c.Request.Context())
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success("bookings retrieved", resdto.FromBookings(bookings)))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.bookingUseCase.GetBooking(c.Request.Context(), id)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success("booking retrieved", resdto.FromBooking(b)))
}

// @Summary Update booking
// @Description Patch booking fields; stay or room changes recompute the total price
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.BindingMessage(err))
		return
	}

	b, err := h.bookingUseCase.UpdateBooking(c.Request.Context(), id, req.ToParams())
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success("booking updated", resdto.FromBooking(b)))
}

// @Summary Delete booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	removed, err := h.bookingUseCase.DeleteBooking(c.Request.Context(), id)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success("booking deleted", resdto.FromBooking(removed)))
}

func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
	case errors.Is(err, usecase.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found")
	case errors.Is(err, usecase.ErrDiscountNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Discount not found")
	case errors.Is(err, usecase.ErrInvalidStayRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out must be later than check-in")
	case errors.Is(err, usecase.ErrEmptyUpdate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No fields to update")
	case errors.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data")
	case errors.Is(err, usecase.ErrDiscountExpired):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Discount is expired and cannot be used")
	case errors.Is(err, usecase.ErrUsageLimitReached):
		httperr.AbortWithError(c, http.StatusConflict, err, "Discount has reached its maximum usage")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
