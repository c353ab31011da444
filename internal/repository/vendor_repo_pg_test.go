package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewVendorRepository(t *testing.T) {
	repo := NewVendorRepository(&pgxpool.Pool{})
	assert.NotNil(t, repo)
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{sort: "rating_desc", want: "average_rating DESC"},
		{sort: "rating_asc", want: "average_rating ASC"},
		{sort: "price_asc", want: "starting_price ASC"},
		{sort: "price_desc", want: "starting_price DESC"},
		{sort: "name_asc", want: "business_name ASC"},
		{sort: "newest", want: "created_at DESC"},
		{sort: "", want: "created_at DESC"},
		{sort: "ORDER BY 1; DROP TABLE vendors", want: "created_at DESC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, orderClause(tt.sort), "sort %q", tt.sort)
	}
}
