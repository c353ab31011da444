package pagination

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is a normalized 1-indexed page request.
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize clamps a raw page/limit pair: page floors at 1, limit defaults
// to 20 and caps at 100 no matter what was requested.
func Normalize(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages rounds up; zero rows is zero pages.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
