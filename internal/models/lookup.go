package models

// ListFilter holds the paging and filtering options shared by the lookup catalogs
type ListFilter struct {
	Page   int
	Count  int
	Search string
	Active *bool
}

// Offset returns the row offset of the current page
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Count
}
