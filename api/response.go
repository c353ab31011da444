package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventgrid/eventgrid/internal/domain"
)

// Every response uses the same envelope: success + data on the happy path,
// success=false + a coded error otherwise.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *errorBody  `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, envelope{Success: true, Data: data})
}

// respondError maps a domain error to its wire code and status. Anything
// that is not a *domain.Error is logged and hidden behind INTERNAL_ERROR.
func respondError(c *gin.Context, err error) {
	if domainErr, ok := domain.AsError(err); ok {
		c.JSON(statusFor(domainErr.Code), envelope{
			Success: false,
			Error:   &errorBody{Code: string(domainErr.Code), Message: domainErr.Message},
		})
		return
	}

	log.Printf("ERROR: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, envelope{
		Success: false,
		Error:   &errorBody{Code: string(domain.CodeInternal), Message: "An unexpected error occurred"},
	})
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeEventNotFound, domain.CodeVendorNotFound, domain.CodeVenueNotFound, domain.CodeBookingNotFound:
		return http.StatusNotFound
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// pageParams reads ?page and ?limit, leaving clamping to the services.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}
