package catalog

import (
	"context"

	"github.com/eventgrid/eventgrid/internal/domain"
	"github.com/eventgrid/eventgrid/internal/pagination"
	"github.com/eventgrid/eventgrid/internal/repository"
)

type CatalogUseCase interface {
	SearchVendors(ctx context.Context, input SearchVendorsInput) (*SearchResult, error)
	GetVendor(ctx context.Context, vendorID string) (*VendorDetail, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	Featured(ctx context.Context) ([]domain.Vendor, error)
}

// Cache is the catalog's read-through cache. Both getters treat a miss as
// (nil, nil).
type Cache interface {
	GetCategories(ctx context.Context) ([]domain.CategoryCount, error)
	SetCategories(ctx context.Context, counts []domain.CategoryCount) error
	GetFeatured(ctx context.Context) ([]domain.Vendor, error)
	SetFeatured(ctx context.Context, vendors []domain.Vendor) error
}

const (
	featuredMinReviews = 5
	featuredMinRating  = 4.5
	featuredLimit      = 12
)

type CatalogService struct {
	vendors repository.VendorRepository
	users   repository.UserRepository
	cache   Cache
}

func NewCatalogService(vendors repository.VendorRepository, users repository.UserRepository, cache Cache) *CatalogService {
	return &CatalogService{vendors: vendors, users: users, cache: cache}
}

type SearchVendorsInput struct {
	Query     string
	Category  string
	Location  string
	MinRating *float64
	Sort      string
	Page      int
	Limit     int
}

type AppliedFilters struct {
	Query     string   `json:"query"`
	Category  string   `json:"category,omitempty"`
	Location  string   `json:"location,omitempty"`
	MinRating *float64 `json:"minRating,omitempty"`
}

type SortOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type SearchResult struct {
	Vendors             []domain.Vendor `json:"vendors"`
	Pagination          Pagination      `json:"pagination"`
	AppliedFilters      AppliedFilters  `json:"appliedFilters"`
	AvailableCategories []string        `json:"availableCategories"`
	SortOptions         []SortOption    `json:"sortOptions"`
}

// VendorDetail is a vendor with contact fields merged in from the owning
// user's business profile, when one exists.
type VendorDetail struct {
	domain.Vendor
	Website string `json:"website,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func sortOptions() []SortOption {
	return []SortOption{
		{Value: "rating_desc", Label: "Highest Rated"},
		{Value: "rating_asc", Label: "Lowest Rated"},
		{Value: "price_asc", Label: "Price: Low to High"},
		{Value: "price_desc", Label: "Price: High to Low"},
		{Value: "name_asc", Label: "Name: A to Z"},
		{Value: "newest", Label: "Newest First"},
	}
}

func (s *CatalogService) SearchVendors(ctx context.Context, input SearchVendorsInput) (*SearchResult, error) {
	page := pagination.Normalize(input.Page, input.Limit)
	vendors, total, err := s.vendors.Search(ctx, repository.VendorFilter{
		Query:     input.Query,
		Category:  input.Category,
		Location:  input.Location,
		MinRating: input.MinRating,
		Sort:      input.Sort,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	})
	if err != nil {
		return nil, err
	}

	counts, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]string, len(counts))
	for i, c := range counts {
		categories[i] = c.Name
	}

	return &SearchResult{
		Vendors: vendors,
		Pagination: Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      total,
			TotalPages: pagination.TotalPages(total, page.Limit),
		},
		AppliedFilters: AppliedFilters{
			Query:     input.Query,
			Category:  input.Category,
			Location:  input.Location,
			MinRating: input.MinRating,
		},
		AvailableCategories: categories,
		SortOptions:         sortOptions(),
	}, nil
}

func (s *CatalogService) GetVendor(ctx context.Context, vendorID string) (*VendorDetail, error) {
	vendor, err := s.vendors.GetActive(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	detail := &VendorDetail{Vendor: *vendor}
	profile, err := s.users.GetBusinessProfile(ctx, vendor.UserID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		detail.Website = profile.Website
		detail.Phone = profile.Phone
		detail.Address = profile.Address
	}
	return detail, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetCategories(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	counts, err := s.vendors.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetCategories(ctx, counts)
	}
	return counts, nil
}

func (s *CatalogService) Featured(ctx context.Context) ([]domain.Vendor, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFeatured(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	vendors, err := s.vendors.Featured(ctx, featuredMinReviews, featuredMinRating, featuredLimit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFeatured(ctx, vendors)
	}
	return vendors, nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
