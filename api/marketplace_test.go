package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eventgrid/eventgrid/internal/domain"
	"github.com/eventgrid/eventgrid/internal/service/catalog"
)

type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) SearchVendors(ctx context.Context, input catalog.SearchVendorsInput) (*catalog.SearchResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SearchResult), args.Error(1)
}

func (m *MockCatalogUseCase) GetVendor(ctx context.Context, vendorID string) (*catalog.VendorDetail, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.VendorDetail), args.Error(1)
}

func (m *MockCatalogUseCase) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

func (m *MockCatalogUseCase) Featured(ctx context.Context) ([]domain.Vendor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func newMarketplaceRouter(service catalog.CatalogUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api/marketplace", authAs("usr_1"))
	NewMarketplaceHandler(service).Register(group)
	return router
}

func TestMarketplaceHandler_SearchVendors_DefaultSort(t *testing.T) {
	service := &MockCatalogUseCase{}
	router := newMarketplaceRouter(service)

	service.On("SearchVendors", mock.Anything, catalog.SearchVendorsInput{
		Sort:  "rating_desc",
		Page:  1,
		Limit: 20,
	}).Return(&catalog.SearchResult{Vendors: []domain.Vendor{}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/marketplace/vendors", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestMarketplaceHandler_SearchVendors_ParsesRating(t *testing.T) {
	service := &MockCatalogUseCase{}
	router := newMarketplaceRouter(service)

	service.On("SearchVendors", mock.Anything, mock.MatchedBy(func(input catalog.SearchVendorsInput) bool {
		return input.Query == "sound" &&
			input.Category == "Audio" &&
			input.MinRating != nil && *input.MinRating == 4.0 &&
			input.Sort == "price_asc"
	})).Return(&catalog.SearchResult{Vendors: []domain.Vendor{}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/marketplace/vendors?query=sound&category=Audio&rating=4.0&sort=price_asc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestMarketplaceHandler_SearchVendors_BadRatingIgnored(t *testing.T) {
	service := &MockCatalogUseCase{}
	router := newMarketplaceRouter(service)

	service.On("SearchVendors", mock.Anything, mock.MatchedBy(func(input catalog.SearchVendorsInput) bool {
		return input.MinRating == nil
	})).Return(&catalog.SearchResult{Vendors: []domain.Vendor{}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/marketplace/vendors?rating=lots", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestMarketplaceHandler_GetVendor(t *testing.T) {
	service := &MockCatalogUseCase{}
	router := newMarketplaceRouter(service)

	service.On("GetVendor", mock.Anything, "vnd_1").Return(&catalog.VendorDetail{
		Vendor:  domain.Vendor{ID: "vnd_1", BusinessName: "Apex Sound"},
		Website: "https://apexsound.example",
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/marketplace/vendors/vnd_1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]interface{})
	vendor := data["vendor"].(map[string]interface{})
	assert.Equal(t, "vnd_1", vendor["vendorId"])
	assert.Equal(t, "https://apexsound.example", vendor["website"])
}

func TestMarketplaceHandler_GetVendor_NotFound(t *testing.T) {
	service := &MockCatalogUseCase{}
	router := newMarketplaceRouter(service)

	service.On("GetVendor", mock.Anything, "vnd_missing").Return(nil, domain.ErrVendorNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/marketplace/vendors/vnd_missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "VENDOR_NOT_FOUND", errBody["code"])
}

func TestMarketplaceHandler_Categories(t *testing.T) {
	service := &MockCatalogUseCase{}
	router := newMarketplaceRouter(service)

	service.On("Categories", mock.Anything).Return([]domain.CategoryCount{
		{Name: "Catering", Count: 7, Slug: "catering"},
		{Name: "Live Music", Count: 3, Slug: "live_music"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/marketplace/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]interface{})
	categories := data["categories"].([]interface{})
	assert.Len(t, categories, 2)
	first := categories[0].(map[string]interface{})
	assert.Equal(t, "catering", first["slug"])
}

func TestMarketplaceHandler_Featured(t *testing.T) {
	service := &MockCatalogUseCase{}
	router := newMarketplaceRouter(service)

	service.On("Featured", mock.Anything).Return([]domain.Vendor{
		{ID: "vnd_1", AverageRating: 4.9, TotalReviews: 12},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/marketplace/featured", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]interface{})
	vendors := data["vendors"].([]interface{})
	assert.Len(t, vendors, 1)
}
