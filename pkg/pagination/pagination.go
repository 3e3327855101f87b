package pagination

// PageRequest is a page-number request over an ordered, counted result set.
type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize clamps the request to sane values. Page numbers start at 1;
// a non-positive size falls back to defaultSize.
func (r PageRequest) Normalize(defaultSize int) PageRequest {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = defaultSize
	}
	return r
}

func (r PageRequest) Limit() int {
	return r.PageSize
}

func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Page is one window of an ordered result set plus the metadata the
// renderer needs to draw a pager.
type Page[T any] struct {
	Items       []T
	Page        int
	PageSize    int
	TotalItems  int64
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

// NewPage assembles a Page from the items of one window and the total row
// count of the underlying query.
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	totalPages := int((total + int64(req.PageSize) - 1) / int64(req.PageSize))

	return Page[T]{
		Items:       items,
		Page:        req.Page,
		PageSize:    req.PageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     req.Page < totalPages,
		HasPrevious: req.Page > 1 && total > 0,
	}
}
