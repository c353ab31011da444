package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventgrid/eventgrid/internal/domain"
	"github.com/eventgrid/eventgrid/internal/service/booking"
)

type PaymentHandler struct {
	service booking.BookingUseCase
}

func NewPaymentHandler(service booking.BookingUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// RegisterHistory mounts the organizer-facing payment listing under the
// authenticated group.
func (h *PaymentHandler) RegisterHistory(router *gin.RouterGroup) {
	router.GET("/history", h.history)
}

// RegisterWebhook mounts the gateway callback outside the session
// middleware: the gateway is not a user. Signature verification happens at
// the edge before the request reaches this process.
func (h *PaymentHandler) RegisterWebhook(router *gin.RouterGroup) {
	router.POST("/webhook", h.webhook)
}

const (
	webhookPaymentSucceeded = "payment_intent.succeeded"
	webhookPaymentFailed    = "payment_intent.payment_failed"
)

type webhookRequest struct {
	Type      string  `json:"type"`
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

func (h *PaymentHandler) webhook(c *gin.Context) {
	var req webhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewValidationError("Invalid request body"))
		return
	}
	if req.BookingID == "" {
		respondError(c, domain.NewValidationError("Missing required field: bookingId"))
		return
	}

	switch req.Type {
	case webhookPaymentSucceeded:
		if _, err := h.service.ConfirmPayment(c.Request.Context(), req.BookingID, req.Amount, req.Currency); err != nil {
			respondError(c, err)
			return
		}
	case webhookPaymentFailed:
		if _, err := h.service.FailPayment(c.Request.Context(), req.BookingID); err != nil {
			respondError(c, err)
			return
		}
	default:
		// Unhandled gateway event types are acknowledged and ignored.
	}

	respond(c, http.StatusOK, gin.H{"status": "success"})
}

func (h *PaymentHandler) history(c *gin.Context) {
	records, err := h.service.PaymentHistory(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"payments": records, "total": len(records)})
}
