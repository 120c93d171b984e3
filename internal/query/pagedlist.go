package query

import "math"

// PagedList is the response envelope for every list endpoint. The JSON
// field names are a contract with the front end.
type PagedList[T any] struct {
	Items        []T   `json:"items"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int   `json:"totalPages"`
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	Count        int   `json:"count"`
}

// NewPagedList wraps an already-sliced page together with the known total.
// A zero limit yields page 1 instead of dividing by zero.
func NewPagedList[T any](items []T, total int64, skip, top int) *PagedList[T] {
	if items == nil {
		items = []T{}
	}

	page := 1
	totalPages := 1
	if top > 0 {
		page = skip/top + 1
		totalPages = int(math.Ceil(float64(total) / float64(top)))
	}

	return &PagedList[T]{
		Items:        items,
		TotalRecords: total,
		TotalPages:   totalPages,
		Page:         page,
		Limit:        top,
		Count:        len(items),
	}
}

// PageFromSlice slices a fully materialized list in memory. Used by the
// engine when ordering crosses a relation boundary.
func PageFromSlice[T any](all []T, skip, top int) *PagedList[T] {
	total := int64(len(all))

	start := skip
	if start < 0 {
		start = 0
	}
	if start > len(all) {
		start = len(all)
	}

	end := len(all)
	if top > 0 && start+top < end {
		end = start + top
	}

	return NewPagedList(all[start:end], total, skip, top)
}
