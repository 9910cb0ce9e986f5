package listing

// TopicPageSize is the fixed page size for article listings.
const TopicPageSize int64 = 30

// PageWindow is the (offset, limit) pair derived from a raw page index.
type PageWindow struct {
	Page     int64
	PageSize int64
	Offset   int64
}

// NewPageWindow builds a window from an optional 0-based page index.
// Absent or negative indexes fall back to page 0.
func NewPageWindow(page *int64, pageSize int64) PageWindow {
	p := int64(0)
	if page != nil && *page > 0 {
		p = *page
	}
	return PageWindow{Page: p, PageSize: pageSize, Offset: p * pageSize}
}

// Page is one window of a listing result plus the metadata needed to render
// a pager. PageTotal is ceil(RecordTotal/PageSize) and is 0 only when
// RecordTotal is 0.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Page        int64 `json:"page"`
	PageSize    int64 `json:"page_size"`
	PageTotal   int64 `json:"page_total"`
	RecordTotal int64 `json:"record_total"`
}

// NewPage assembles a Page from one window of items and the total count.
func NewPage[T any](items []T, w PageWindow, recordTotal int64) Page[T] {
	return Page[T]{
		Items:       items,
		Page:        w.Page,
		PageSize:    w.PageSize,
		PageTotal:   (recordTotal + w.PageSize - 1) / w.PageSize,
		RecordTotal: recordTotal,
	}
}
