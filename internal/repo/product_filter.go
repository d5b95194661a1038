package repo

import (
	"math"

	"github.com/rogerio-castellano/webstore/internal/models"
)

// ProductFilter selects products by section and brand and optionally pages
// the result. A nil or zero PageSize means every match is returned.
type ProductFilter struct {
	SectionID  *int `json:"SectionId,omitempty"`
	BrandID    *int `json:"BrandId,omitempty"`
	PageNumber int  `json:"PageNumber"`
	PageSize   *int `json:"PageSize,omitempty"`
}

func DefaultProductFilter() ProductFilter {
	return ProductFilter{PageNumber: 1}
}

func (f ProductFilter) Paged() bool {
	return f.PageSize != nil && *f.PageSize > 0
}

// Page returns the 1-based page number, clamped to 1.
func (f ProductFilter) Page() int {
	if f.PageNumber < 1 {
		return 1
	}
	return f.PageNumber
}

// Size returns the page size, or 0 for unpaged filters.
func (f ProductFilter) Size() int {
	if !f.Paged() {
		return 0
	}
	return *f.PageSize
}

// OffsetInRange reports whether the offset of the requested page fits in an int.
func (f ProductFilter) OffsetInRange() bool {
	size := f.Size()
	return size == 0 || f.Page()-1 <= math.MaxInt/size
}

// Offset returns the number of matches before the requested page. It
// saturates at math.MaxInt, which selects no items.
func (f ProductFilter) Offset() int {
	if !f.OffsetInRange() {
		return math.MaxInt
	}
	return (f.Page() - 1) * f.Size()
}

func (f ProductFilter) matches(p models.Product) bool {
	if f.SectionID != nil && p.SectionID != *f.SectionID {
		return false
	}
	if f.BrandID != nil && (p.BrandID == nil || *p.BrandID != *f.BrandID) {
		return false
	}
	return true
}
