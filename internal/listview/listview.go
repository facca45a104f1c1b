// Package listview derives the filtered, paginated view the asset table
// renders from the in-memory collection.
package listview

import (
	"strings"

	"asset-registry/internal/models"
)

// PageSize is fixed; the table always shows at most 10 rows.
const PageSize = 10

// Filter narrows the collection: case-insensitive substring match of Query
// against name or code, then exact category, then exact status. Empty fields
// are inactive.
type Filter struct {
	Query    string
	Category string
	Status   string
}

// Apply returns the assets passing every active filter, in input order.
func Apply(assets []models.Asset, f Filter) []models.Asset {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if q != "" &&
			!strings.Contains(strings.ToLower(a.Name), q) &&
			!strings.Contains(strings.ToLower(a.Code), q) {
			continue
		}
		if f.Category != "" && string(a.Category) != f.Category {
			continue
		}
		if f.Status != "" && string(a.Status) != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Page is one slice of the filtered collection.
type Page struct {
	Items []models.Asset
	Index int // 1-based, clamped
	Count int // total pages, at least 1
	Total int // filtered item count
}

func (p Page) HasPrev() bool { return p.Index > 1 }
func (p Page) HasNext() bool { return p.Index < p.Count }
func (p Page) Prev() int     { return p.Index - 1 }
func (p Page) Next() int     { return p.Index + 1 }

// Paginate slices the filtered list into the requested page. The index is
// clamped into [1, ceil(len/PageSize)]; an empty list yields one empty page.
func Paginate(filtered []models.Asset, page int) Page {
	count := (len(filtered) + PageSize - 1) / PageSize
	if count < 1 {
		count = 1
	}
	if page < 1 {
		page = 1
	}
	if page > count {
		page = count
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{
		Items: filtered[start:end],
		Index: page,
		Count: count,
		Total: len(filtered),
	}
}
