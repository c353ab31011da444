package api

import "github.com/gin-gonic/gin"

// NewRouter wires every handler onto one engine. Everything under /api
// requires a resolved bearer token; the payment webhook does not, because
// the gateway has no user session.
func NewRouter(identity IdentityDirectory, events *EventHandler, bookings *BookingHandler, marketplace *MarketplaceHandler, payments *PaymentHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	authed := router.Group("/api", Auth(identity))
	events.Register(authed.Group("/events"))
	bookings.Register(authed.Group("/bookings"))
	marketplace.Register(authed.Group("/marketplace"))
	payments.RegisterHistory(authed.Group("/payments"))

	payments.RegisterWebhook(router.Group("/payments"))

	return router
}
