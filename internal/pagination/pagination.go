// Package pagination holds the page envelope returned by collection queries.
package pagination

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type PageRequest struct {
	PageIndex int
	PageSize  int
	SortBy    []string
	SortDesc  bool
}

func (p PageRequest) Normalized() PageRequest {
	if p.PageIndex < 0 {
		p.PageIndex = 0
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p PageRequest) Offset() int { return p.PageIndex * p.PageSize }

// FetchLimit over-fetches by one row so HasNext needs no second round-trip.
func (p PageRequest) FetchLimit() int { return p.PageSize + 1 }

type PageInfo struct {
	PageIndex int   `json:"page_index"`
	PageSize  int   `json:"page_size"`
	HasNext   bool  `json:"has_next"`
	Total     int64 `json:"total"`
}

type Page[T any] struct {
	Items []T      `json:"items"`
	Info  PageInfo `json:"info"`
}

// NewPage trims an over-fetched slice down to the page size. HasNext is true
// iff more rows existed upstream of the cut.
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	hasNext := len(items) > req.PageSize
	if hasNext {
		items = items[:req.PageSize]
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items: items,
		Info: PageInfo{
			PageIndex: req.PageIndex,
			PageSize:  req.PageSize,
			HasNext:   hasNext,
			Total:     total,
		},
	}
}
