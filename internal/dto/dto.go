// Package dto holds the wire representation of catalog entities exchanged
// between the Products API and its clients.
package dto

type SectionDTO struct {
	Id       int    `json:"Id"`
	Name     string `json:"Name"`
	Order    int    `json:"Order"`
	ParentId *int   `json:"ParentId"`
}

// BrandDTO carries the number of products of a brand, not the products.
type BrandDTO struct {
	Id            int    `json:"Id"`
	Name          string `json:"Name"`
	Order         int    `json:"Order"`
	ProductsCount int    `json:"ProductsCount"`
}

type ProductDTO struct {
	Id       int         `json:"Id"`
	Name     string      `json:"Name"`
	Order    int         `json:"Order"`
	Section  *SectionDTO `json:"Section"`
	Brand    *BrandDTO   `json:"Brand"`
	ImageUrl string      `json:"ImageUrl"`
	Price    float64     `json:"Price"`
}
