package service

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
	"github.com/quochao170402/ecommerce-catalog/internal/placeholder"
)

type BrandInput struct {
	BrandName   string `json:"brandName"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
	Country     string `json:"country"`
}

type BrandPatch struct {
	BrandName   *string `json:"brandName"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
	Country     *string `json:"country"`
}

func (p BrandPatch) apply(b *domain.Brand) {
	if p.BrandName != nil {
		b.BrandName = *p.BrandName
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Active != nil {
		b.Active = *p.Active
	}
	if p.Country != nil {
		b.Country = *p.Country
	}
}

type BrandFilter struct {
	Size   int
	Active *bool
}

type BrandsService struct {
	catalog *Catalog
}

// FindAll applies the active filter before the size truncation. The returned
// total is always the unfiltered store size.
func (s *BrandsService) FindAll(filter BrandFilter) ([]domain.Brand, int) {
	c := s.catalog
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := c.brands.List()
	total := len(list)
	if filter.Active != nil {
		filtered := list[:0]
		for _, b := range list {
			if b.Active == *filter.Active {
				filtered = append(filtered, b)
			}
		}
		list = filtered
	}
	return truncate(list, filter.Size), total
}

func (s *BrandsService) FindOne(id int) (domain.Brand, error) {
	c := s.catalog
	c.mu.RLock()
	defer c.mu.RUnlock()

	brand, ok := c.brands.Get(id)
	if !ok {
		return domain.Brand{}, domain.NotFoundf("Brand with id %d does not exist", id)
	}
	return brand, nil
}

func (s *BrandsService) Create(in BrandInput) (domain.Brand, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	if in.BrandName == "" {
		return domain.Brand{}, domain.Validationf("Brand name is required")
	}
	if c.brandNameTaken(in.BrandName, 0) {
		return domain.Brand{}, domain.Conflictf("Brand name already exists")
	}

	description := in.Description
	if description == "" {
		description = placeholder.CatchPhrase()
	}
	country := in.Country
	if country == "" {
		country = placeholder.Country()
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	brand := domain.Brand{
		ID:          c.brands.NextID(),
		BrandName:   in.BrandName,
		Description: description,
		Active:      active,
		Country:     country,
	}
	c.brands.Append(&brand)
	zap.S().Infow("brand created", "id", brand.ID, "name", brand.BrandName)
	return brand, nil
}

func (s *BrandsService) Update(id int, in BrandInput) (domain.Brand, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.brands.IndexOf(id)
	if i < 0 {
		return domain.Brand{}, domain.NotFoundf("Brand with id %d does not exist", id)
	}
	if in.BrandName == "" {
		return domain.Brand{}, domain.Validationf("Brand name is required")
	}
	if c.brandNameTaken(in.BrandName, id) {
		return domain.Brand{}, domain.Conflictf("Brand name already exists")
	}

	brand := c.brands.At(i)
	brand.BrandName = in.BrandName
	if in.Description != "" {
		brand.Description = in.Description
	}
	if in.Active != nil {
		brand.Active = *in.Active
	}
	if in.Country != "" {
		brand.Country = in.Country
	}
	brand.SetUpdatedAt(time.Now())
	c.brands.ReplaceAt(i, brand)
	return brand, nil
}

func (s *BrandsService) PartialUpdate(id int, patch BrandPatch) (domain.Brand, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.brands.IndexOf(id)
	if i < 0 {
		return domain.Brand{}, domain.NotFoundf("Brand with id %d does not exist", id)
	}
	if patch.BrandName != nil && *patch.BrandName != "" && c.brandNameTaken(*patch.BrandName, id) {
		return domain.Brand{}, domain.Conflictf("Brand name already exists")
	}

	brand := c.brands.At(i)
	patch.apply(&brand)
	brand.ID = id
	brand.SetUpdatedAt(time.Now())
	c.brands.ReplaceAt(i, brand)
	return brand, nil
}

// Delete removes a brand unless live products still reference it.
func (s *BrandsService) Delete(id int) (domain.Brand, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.brands.IndexOf(id)
	if i < 0 {
		return domain.Brand{}, domain.NotFoundf("Brand with id %d does not exist", id)
	}
	if c.brandHasProducts(id) {
		return domain.Brand{}, domain.Conflictf(
			"Brand with id %d has associated products and cannot be deleted. Delete or reassign all products of this brand first", id)
	}
	brand := c.brands.RemoveAt(i)
	zap.S().Infow("brand deleted", "id", id)
	return brand, nil
}

// brandNameTaken reports whether another brand already holds the name.
// The comparison is case-insensitive.
func (c *Catalog) brandNameTaken(name string, excludeID int) bool {
	for _, b := range c.brands.List() {
		if strings.EqualFold(b.BrandName, name) && b.ID != excludeID {
			return true
		}
	}
	return false
}
