package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventgrid/eventgrid/internal/service/catalog"
)

type MarketplaceHandler struct {
	service catalog.CatalogUseCase
}

func NewMarketplaceHandler(service catalog.CatalogUseCase) *MarketplaceHandler {
	return &MarketplaceHandler{service: service}
}

func (h *MarketplaceHandler) Register(router *gin.RouterGroup) {
	router.GET("/vendors", h.searchVendors)
	router.GET("/vendors/:vendorId", h.getVendor)
	router.GET("/categories", h.categories)
	router.GET("/featured", h.featured)
}

func (h *MarketplaceHandler) searchVendors(c *gin.Context) {
	page, limit := pageParams(c)
	input := catalog.SearchVendorsInput{
		Query:    c.Query("query"),
		Category: c.Query("category"),
		Location: c.Query("location"),
		Sort:     c.DefaultQuery("sort", "rating_desc"),
		Page:     page,
		Limit:    limit,
	}
	if raw := c.Query("rating"); raw != "" {
		if rating, err := strconv.ParseFloat(raw, 64); err == nil {
			input.MinRating = &rating
		}
	}

	result, err := h.service.SearchVendors(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result)
}

func (h *MarketplaceHandler) getVendor(c *gin.Context) {
	vendor, err := h.service.GetVendor(c.Request.Context(), c.Param("vendorId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"vendor": vendor})
}

func (h *MarketplaceHandler) categories(c *gin.Context) {
	counts, err := h.service.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"categories": counts})
}

func (h *MarketplaceHandler) featured(c *gin.Context) {
	vendors, err := h.service.Featured(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"vendors": vendors})
}
