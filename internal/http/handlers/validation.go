package handlers

import (
	"strings"

	"github.com/rogerio-castellano/webstore/internal/repo"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProductFilter(f repo.ProductFilter) []ValidationError {
	errs := []ValidationError{}
	if f.PageSize != nil && *f.PageSize < 0 {
		errs = append(errs, ValidationError{Field: "PageSize", Description: "PageSize cannot be negative"})
	} else if !f.OffsetInRange() {
		errs = append(errs, ValidationError{Field: "PageNumber", Description: "PageNumber is too large for PageSize"})
	}
	if f.SectionID != nil && *f.SectionID <= 0 {
		errs = append(errs, ValidationError{Field: "SectionId", Description: "SectionId must be positive"})
	}
	if f.BrandID != nil && *f.BrandID <= 0 {
		errs = append(errs, ValidationError{Field: "BrandId", Description: "BrandId must be positive"})
	}
	return errs
}

func validateOrder(o OrderRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(o.Phone) == "" {
		errs = append(errs, ValidationError{Field: "Phone", Description: "Phone is required"})
	} else if len(o.Phone) > 200 {
		errs = append(errs, ValidationError{Field: "Phone", Description: "Phone is too long"})
	}
	if strings.TrimSpace(o.Address) == "" {
		errs = append(errs, ValidationError{Field: "Address", Description: "Address is required"})
	} else if len(o.Address) > 200 {
		errs = append(errs, ValidationError{Field: "Address", Description: "Address is too long"})
	}
	return errs
}

func validateEmployee(e EmployeeRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(e.LastName) == "" {
		errs = append(errs, ValidationError{Field: "LastName", Description: "LastName is required"})
	}
	if strings.TrimSpace(e.FirstName) == "" {
		errs = append(errs, ValidationError{Field: "FirstName", Description: "FirstName is required"})
	}
	if e.Age < 18 || e.Age > 80 {
		errs = append(errs, ValidationError{Field: "Age", Description: "Age must be between 18 and 80"})
	}
	return errs
}
