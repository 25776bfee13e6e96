package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
	"github.com/quochao170402/ecommerce-catalog/internal/placeholder"
)

// ProductInput carries the fields for creating or fully replacing a product.
// Price, categoryId and brandId are pointers so a missing field can be told
// apart from a zero.
type ProductInput struct {
	ProductName string   `json:"productName"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	CategoryID  *int     `json:"categoryId"`
	BrandID     *int     `json:"brandId"`
	Image       string   `json:"image"`
}

type ProductPatch struct {
	ProductName *string  `json:"productName"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	CategoryID  *int     `json:"categoryId"`
	BrandID     *int     `json:"brandId"`
	Image       *string  `json:"image"`
}

func (p ProductPatch) apply(prod *domain.Product) {
	if p.ProductName != nil {
		prod.ProductName = *p.ProductName
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Stock != nil {
		prod.Stock = *p.Stock
	}
	if p.CategoryID != nil {
		prod.CategoryID = *p.CategoryID
	}
	if p.BrandID != nil {
		prod.BrandID = *p.BrandID
	}
	if p.Image != nil {
		prod.Image = *p.Image
	}
}

type ProductFilter struct {
	Size     int
	MinPrice *float64
	MaxPrice *float64
	MinStock *int
}

type ProductsService struct {
	catalog *Catalog
}

// FindAll applies the inclusive price/stock bounds, then the size truncation.
// The returned total is the store size before any filtering.
func (s *ProductsService) FindAll(filter ProductFilter) ([]domain.Product, int) {
	c := s.catalog
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := c.products.List()
	total := len(list)

	filtered := list[:0]
	for _, p := range list {
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.MinStock != nil && p.Stock < *filter.MinStock {
			continue
		}
		filtered = append(filtered, p)
	}
	return truncate(filtered, filter.Size), total
}

// FindByCategory returns the products referencing the category. Unlike
// FindAll, the total reported here is the matching count.
func (s *ProductsService) FindByCategory(categoryID, size int) ([]domain.Product, int, error) {
	c := s.catalog
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.categoryExists(categoryID) {
		return nil, 0, domain.NotFoundf("Category with id %d does not exist", categoryID)
	}

	var matching []domain.Product
	for _, p := range c.products.List() {
		if p.CategoryID == categoryID {
			matching = append(matching, p)
		}
	}
	if len(matching) == 0 {
		return nil, 0, domain.NotFoundf("No products found for category %d", categoryID)
	}
	return truncate(matching, size), len(matching), nil
}

// FindByBrand is the brand counterpart of FindByCategory.
func (s *ProductsService) FindByBrand(brandID, size int) ([]domain.Product, int, error) {
	c := s.catalog
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.brandExists(brandID) {
		return nil, 0, domain.NotFoundf("Brand with id %d does not exist", brandID)
	}

	var matching []domain.Product
	for _, p := range c.products.List() {
		if p.BrandID == brandID {
			matching = append(matching, p)
		}
	}
	if len(matching) == 0 {
		return nil, 0, domain.NotFoundf("No products found for brand %d", brandID)
	}
	return truncate(matching, size), len(matching), nil
}

func (s *ProductsService) FindOne(id int) (domain.Product, error) {
	c := s.catalog
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.products.Get(id)
	if !ok {
		return domain.Product{}, domain.NotFoundf("Product with id %d does not exist", id)
	}
	return product, nil
}

func (s *ProductsService) Create(in ProductInput) (domain.Product, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	if in.ProductName == "" || in.Price == nil || in.CategoryID == nil || in.BrandID == nil {
		return domain.Product{}, domain.Validationf("Product name, price, categoryId and brandId are required")
	}
	if *in.Price < 0 {
		return domain.Product{}, domain.Validationf("Price cannot be negative")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return domain.Product{}, domain.Validationf("Stock cannot be negative")
	}
	if !c.categoryExists(*in.CategoryID) {
		return domain.Product{}, domain.NotFoundf("Cannot create product. Category with id %d does not exist.", *in.CategoryID)
	}
	if !c.brandExists(*in.BrandID) {
		return domain.Product{}, domain.NotFoundf("Cannot create product. Brand with id %d does not exist.", *in.BrandID)
	}

	description := in.Description
	if description == "" {
		description = placeholder.Paragraph()
	}
	stock := placeholder.Stock()
	if in.Stock != nil {
		stock = *in.Stock
	}
	image := in.Image
	if image == "" {
		image = placeholder.ImageURL(400, 400, "product")
	}

	product := domain.Product{
		ID:          c.products.NextID(),
		ProductName: in.ProductName,
		Description: description,
		Price:       *in.Price,
		Stock:       stock,
		CategoryID:  *in.CategoryID,
		BrandID:     *in.BrandID,
		Image:       image,
	}
	c.products.Append(&product)
	zap.S().Infow("product created", "id", product.ID, "name", product.ProductName)
	return product, nil
}

func (s *ProductsService) Update(id int, in ProductInput) (domain.Product, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.products.IndexOf(id)
	if i < 0 {
		return domain.Product{}, domain.NotFoundf("Product with id %d does not exist", id)
	}
	if in.ProductName == "" || in.Price == nil || in.CategoryID == nil || in.BrandID == nil {
		return domain.Product{}, domain.Validationf("Product name, price, categoryId and brandId are required")
	}
	if *in.Price < 0 {
		return domain.Product{}, domain.Validationf("Price cannot be negative")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return domain.Product{}, domain.Validationf("Stock cannot be negative")
	}
	if !c.categoryExists(*in.CategoryID) {
		return domain.Product{}, domain.NotFoundf("Cannot update product. Category with id %d does not exist.", *in.CategoryID)
	}
	if !c.brandExists(*in.BrandID) {
		return domain.Product{}, domain.NotFoundf("Cannot update product. Brand with id %d does not exist.", *in.BrandID)
	}

	product := c.products.At(i)
	product.ProductName = in.ProductName
	if in.Description != "" {
		product.Description = in.Description
	}
	product.Price = *in.Price
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	product.CategoryID = *in.CategoryID
	product.BrandID = *in.BrandID
	if in.Image != "" {
		product.Image = in.Image
	}
	product.SetUpdatedAt(time.Now())
	c.products.ReplaceAt(i, product)
	return product, nil
}

// PartialUpdate validates only the fields present in the patch; supplied
// categoryId/brandId references must exist at call time.
func (s *ProductsService) PartialUpdate(id int, patch ProductPatch) (domain.Product, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.products.IndexOf(id)
	if i < 0 {
		return domain.Product{}, domain.NotFoundf("Product with id %d does not exist", id)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return domain.Product{}, domain.Validationf("Price cannot be negative")
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return domain.Product{}, domain.Validationf("Stock cannot be negative")
	}
	if patch.CategoryID != nil && !c.categoryExists(*patch.CategoryID) {
		return domain.Product{}, domain.NotFoundf("Cannot update product. Category with id %d does not exist.", *patch.CategoryID)
	}
	if patch.BrandID != nil && !c.brandExists(*patch.BrandID) {
		return domain.Product{}, domain.NotFoundf("Cannot update product. Brand with id %d does not exist.", *patch.BrandID)
	}

	product := c.products.At(i)
	patch.apply(&product)
	product.ID = id
	product.SetUpdatedAt(time.Now())
	c.products.ReplaceAt(i, product)
	return product, nil
}

// Delete removes a product. Nothing references products, so there is no
// guard.
func (s *ProductsService) Delete(id int) (domain.Product, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.products.IndexOf(id)
	if i < 0 {
		return domain.Product{}, domain.NotFoundf("Product with id %d does not exist", id)
	}
	product := c.products.RemoveAt(i)
	zap.S().Infow("product deleted", "id", id)
	return product, nil
}
