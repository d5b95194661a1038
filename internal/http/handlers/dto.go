package handlers

import (
	"time"

	"github.com/rogerio-castellano/webstore/internal/cart"
	"github.com/rogerio-castellano/webstore/internal/http/paging"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserLogin = CredentialsRequest

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type PageView struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type CatalogView struct {
	SectionId *int               `json:"section_id,omitempty"`
	BrandId   *int               `json:"brand_id,omitempty"`
	Products  []cart.ProductView `json:"products"`
	Page      PageView           `json:"page"`
	Links     []paging.PageLink  `json:"links"`
}

type SectionView struct {
	Id            int           `json:"id"`
	Name          string        `json:"name"`
	Order         int           `json:"order"`
	ChildSections []SectionView `json:"child_sections"`
}

type BrandView struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	ProductsCount int    `json:"products_count"`
}

type OrderRequest struct {
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type OrderCreatedResult struct {
	Id int `json:"id"`
}

type UserOrderView struct {
	Id          int       `json:"id"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	TotalPrice  float64   `json:"total_price"`
	Date        time.Time `json:"date"`
}

type EmployeeRequest struct {
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	Patronymic string `json:"patronymic"`
	Age        int    `json:"age"`
}

type EmployeeCreatedResult struct {
	Id int `json:"id"`
}
