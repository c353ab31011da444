package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventgrid/eventgrid/internal/domain"
	"github.com/eventgrid/eventgrid/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/:bookingId", h.get)
	router.PUT("/:bookingId/status", h.updateStatus)
}

func (h *BookingHandler) create(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, domain.NewValidationError("Invalid request body"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), currentUser(c).ID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, created)
}

func (h *BookingHandler) list(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.service.List(c.Request.Context(), currentUser(c).ID, booking.ListBookingsInput{
		Status:  c.Query("status"),
		EventID: c.Query("eventId"),
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result)
}

func (h *BookingHandler) get(c *gin.Context) {
	found, err := h.service.Get(c.Request.Context(), currentUser(c).ID, c.Param("bookingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, found)
}

func (h *BookingHandler) updateStatus(c *gin.Context) {
	var input booking.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, domain.NewValidationError("Invalid request body"))
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), currentUser(c).ID, c.Param("bookingId"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, updated)
}
