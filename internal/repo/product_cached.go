package repo

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/webstore/internal/dto"
	"github.com/rogerio-castellano/webstore/internal/models"
	"github.com/rogerio-castellano/webstore/internal/redissvc"
)

const (
	sectionsCacheKey = "webstore:catalog:sections"
	brandsCacheKey   = "webstore:catalog:brands"
)

// CachedProductData keeps the section and brand lists of another ProductData
// in Redis. Products and single lookups always go to the inner store.
type CachedProductData struct {
	inner ProductData
	rs    *redissvc.RedisService
	ttl   time.Duration
}

func NewCachedProductData(inner ProductData, rs *redissvc.RedisService, ttl time.Duration) *CachedProductData {
	return &CachedProductData{inner: inner, rs: rs, ttl: ttl}
}

func (c *CachedProductData) GetSections() ([]models.Section, error) {
	var cached []dto.SectionDTO
	if c.load(sectionsCacheKey, &cached) {
		return dto.SectionsFromDTO(cached), nil
	}

	sections, err := c.inner.GetSections()
	if err != nil {
		return nil, err
	}
	c.store(sectionsCacheKey, dto.SectionsToDTO(sections))
	return sections, nil
}

func (c *CachedProductData) GetSectionByID(id int) (*models.Section, error) {
	return c.inner.GetSectionByID(id)
}

func (c *CachedProductData) GetBrands() ([]models.Brand, error) {
	var cached []dto.BrandDTO
	if c.load(brandsCacheKey, &cached) {
		return dto.BrandsFromDTO(cached), nil
	}

	brands, err := c.inner.GetBrands()
	if err != nil {
		return nil, err
	}
	c.store(brandsCacheKey, dto.BrandsToDTO(brands))
	return brands, nil
}

func (c *CachedProductData) GetBrandByID(id int) (*models.Brand, error) {
	return c.inner.GetBrandByID(id)
}

func (c *CachedProductData) GetProducts(filter *ProductFilter) (models.Page[models.Product], error) {
	return c.inner.GetProducts(filter)
}

func (c *CachedProductData) GetProductByID(id int) (*models.Product, error) {
	return c.inner.GetProductByID(id)
}

// Invalidate drops the cached lists.
func (c *CachedProductData) Invalidate() error {
	return c.rs.Rdb().Del(c.rs.Ctx(), sectionsCacheKey, brandsCacheKey).Err()
}

func (c *CachedProductData) load(key string, dest any) bool {
	data, err := c.rs.Rdb().Get(c.rs.Ctx(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		log.Printf("cache read %s failed: %v", key, err)
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("cache decode %s failed: %v", key, err)
		return false
	}
	return true
}

func (c *CachedProductData) store(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache encode %s failed: %v", key, err)
		return
	}
	if err := c.rs.Rdb().Set(c.rs.Ctx(), key, data, c.ttl).Err(); err != nil {
		log.Printf("cache write %s failed: %v", key, err)
	}
}
