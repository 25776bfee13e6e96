// Package service implements the catalog operations over the in-memory
// stores: CRUD per entity, uniqueness rules, and the referential-integrity
// checks between products, categories and brands.
package service

import (
	"sync"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
	"github.com/quochao170402/ecommerce-catalog/internal/store"
)

// Catalog owns the four entity stores and the services operating on them.
// A single lock covers all stores: each operation is one check-then-write
// critical section, and cross-store reads (category/brand existence checks,
// product-reference delete guards) observe the same snapshot as the local
// mutation.
type Catalog struct {
	mu sync.RWMutex

	users      *store.Store[domain.User]
	categories *store.Store[domain.Category]
	brands     *store.Store[domain.Brand]
	products   *store.Store[domain.Product]

	Users      *UsersService
	Categories *CategoriesService
	Brands     *BrandsService
	Products   *ProductsService
}

func NewCatalog() *Catalog {
	c := &Catalog{
		users:      store.New[domain.User](),
		categories: store.New[domain.Category](),
		brands:     store.New[domain.Brand](),
		products:   store.New[domain.Product](),
	}
	c.Users = &UsersService{catalog: c}
	c.Categories = &CategoriesService{catalog: c}
	c.Brands = &BrandsService{catalog: c}
	c.Products = &ProductsService{catalog: c}
	return c
}

// Seed loads bootstrap records directly into the stores, bypassing the
// service validations. Each store's id counter ends up above the highest
// seeded id.
func (c *Catalog) Seed(users []domain.User, categories []domain.Category, brands []domain.Brand, products []domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range users {
		c.users.Append(&users[i])
	}
	for i := range categories {
		c.categories.Append(&categories[i])
	}
	for i := range brands {
		c.brands.Append(&brands[i])
	}
	for i := range products {
		c.products.Append(&products[i])
	}
}

func (c *Catalog) categoryExists(id int) bool {
	_, ok := c.categories.Get(id)
	return ok
}

func (c *Catalog) brandExists(id int) bool {
	_, ok := c.brands.Get(id)
	return ok
}

// categoryHasProducts re-scans the live products store, so the delete guard
// never acts on a stale reference count.
func (c *Catalog) categoryHasProducts(id int) bool {
	for _, p := range c.products.List() {
		if p.CategoryID == id {
			return true
		}
	}
	return false
}

func (c *Catalog) brandHasProducts(id int) bool {
	for _, p := range c.products.List() {
		if p.BrandID == id {
			return true
		}
	}
	return false
}

// truncate keeps the first size records. A size of zero or less means no
// truncation.
func truncate[T any](list []T, size int) []T {
	if size > 0 && size < len(list) {
		return list[:size]
	}
	return list
}
