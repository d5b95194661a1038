package models

// Page is one slice of a larger ordered result. PageSize 0 marks an unpaged
// result that holds every match.
type Page[T any] struct {
	Items      []T `json:"Items"`
	PageNumber int `json:"PageNumber"`
	PageSize   int `json:"PageSize"`
	TotalCount int `json:"TotalCount"`
}

func NewPage[T any](items []T, pageNumber, pageSize, totalCount int) Page[T] {
	return Page[T]{
		Items:      items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
}

// PagesCount returns ceil(TotalCount/PageSize), or 0 for unpaged results.
func (p Page[T]) PagesCount() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// MapPage converts the items of a page and keeps its paging metadata.
func MapPage[A, B any](p Page[A], fn func(A) B) Page[B] {
	var items []B
	if p.Items != nil {
		items = make([]B, len(p.Items))
		for i, item := range p.Items {
			items[i] = fn(item)
		}
	}
	return NewPage(items, p.PageNumber, p.PageSize, p.TotalCount)
}
