package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a normalized page/limit window. Build one with NewParams so the
// bounds invariants (page >= 1, 1 <= limit <= 100) always hold.
type Params struct {
	Page  int
	Limit int
}

// NewParams clamps raw query values into valid bounds. Zero values select
// the defaults, so absent query parameters behave as page=1, limit=10.
func NewParams(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset is the number of records to skip before the window starts.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}
