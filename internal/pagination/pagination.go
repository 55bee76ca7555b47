// Package pagination provides the page descriptor attached to every list
// response and the offset arithmetic for the underlying range queries.
package pagination

// Fixed page sizes. Each listing uses its own size; the asymmetry between
// the 20-item and 100-item listings is part of the public contract.
const (
	GroupsPageSize        = 20
	GroupSessionsPageSize = 20
	WordsPageSize         = 100
	SessionsPageSize      = 100
)

// Page is the descriptor returned alongside every paged list result.
type Page struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// New builds a page descriptor for the given page number, total item count
// and page size. TotalPages is the ceiling of totalItems/itemsPerPage, with
// a floor of one page when the collection is empty so callers always see at
// least one page. Pages beyond the available range are not rejected; the
// caller returns an empty item slice with this descriptor.
func New(page, totalItems, itemsPerPage int) Page {
	totalPages := 1
	if totalItems > 0 {
		totalPages = (totalItems + itemsPerPage - 1) / itemsPerPage
	}

	return Page{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: itemsPerPage,
	}
}

// Offset returns the range-query offset for the given page: (page-1)*size.
// Page numbers below 1 are rejected before this point, so the result is
// never negative.
func Offset(page, itemsPerPage int) int {
	return (page - 1) * itemsPerPage
}
