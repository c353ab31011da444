package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventgrid/eventgrid/internal/domain"
	"github.com/eventgrid/eventgrid/internal/service/events"
)

type EventHandler struct {
	service events.EventUseCase
}

func NewEventHandler(service events.EventUseCase) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/:eventId", h.get)
	router.PUT("/:eventId", h.update)
	router.DELETE("/:eventId", h.delete)
}

func (h *EventHandler) create(c *gin.Context) {
	var input events.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, domain.NewValidationError("Invalid request body"))
		return
	}

	event, err := h.service.Create(c.Request.Context(), currentUser(c).ID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, event)
}

func (h *EventHandler) list(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.service.List(c.Request.Context(), currentUser(c).ID, events.ListEventsInput{
		Status:    c.Query("status"),
		EventType: c.Query("type"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result)
}

func (h *EventHandler) get(c *gin.Context) {
	event, err := h.service.Get(c.Request.Context(), currentUser(c).ID, c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, event)
}

func (h *EventHandler) update(c *gin.Context) {
	var input events.UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, domain.NewValidationError("Invalid request body"))
		return
	}

	event, err := h.service.Update(c.Request.Context(), currentUser(c).ID, c.Param("eventId"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, event)
}

func (h *EventHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), currentUser(c).ID, c.Param("eventId")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
