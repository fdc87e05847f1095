package model

// PaginationInfo describes the server page window. CurrentPage is
// 1-indexed; HasNext holds exactly when CurrentPage < TotalPages.
type PaginationInfo struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// DefaultPageSize matches the API default for paginated listings.
const DefaultPageSize = 20

// EmptyPagination returns the state before any page has loaded.
func EmptyPagination(size int) PaginationInfo {
	if size <= 0 {
		size = DefaultPageSize
	}
	return PaginationInfo{CurrentPage: 1, PageSize: size}
}
