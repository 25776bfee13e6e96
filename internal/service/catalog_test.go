package service_test

import (
	"time"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
	"github.com/quochao170402/ecommerce-catalog/internal/service"
)

var seedTime = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

// seededCatalog builds a catalog with a known fixture:
// 2 users, 4 categories (products reference 1 and 2), 3 brands (products
// reference 1 and 2), 5 products.
func seededCatalog() *service.Catalog {
	c := service.NewCatalog()
	c.Seed(
		[]domain.User{
			{ID: 1, Name: "Alice Smith", Username: "alice", Password: "secret1", Email: "alice@example.com", CreatedAt: seedTime},
			{ID: 2, Name: "Bob Jones", Username: "bob", Password: "secret2", Email: "bob@example.com", CreatedAt: seedTime},
		},
		[]domain.Category{
			{ID: 1, CategoryName: "Electronics", Description: "Devices", Active: true, CreatedAt: seedTime},
			{ID: 2, CategoryName: "Clothing", Description: "Apparel", Active: false, CreatedAt: seedTime},
			{ID: 3, CategoryName: "Books", Description: "Reading", Active: true, CreatedAt: seedTime},
			{ID: 4, CategoryName: "Toys", Description: "Play", Active: false, CreatedAt: seedTime},
		},
		[]domain.Brand{
			{ID: 1, BrandName: "Apple", Description: "Think different", Active: true, Country: "United States", CreatedAt: seedTime},
			{ID: 2, BrandName: "Nike", Description: "Just do it", Active: true, Country: "United States", CreatedAt: seedTime},
			{ID: 3, BrandName: "Sony", Description: "Make believe", Active: false, Country: "Japan", CreatedAt: seedTime},
		},
		[]domain.Product{
			{ID: 1, ProductName: "Phone", Description: "A phone", Price: 10, Stock: 5, CategoryID: 1, BrandID: 1, Image: "img1", CreatedAt: seedTime},
			{ID: 2, ProductName: "Laptop", Description: "A laptop", Price: 25, Stock: 10, CategoryID: 1, BrandID: 2, Image: "img2", CreatedAt: seedTime},
			{ID: 3, ProductName: "Shirt", Description: "A shirt", Price: 50, Stock: 0, CategoryID: 2, BrandID: 1, Image: "img3", CreatedAt: seedTime},
			{ID: 4, ProductName: "Jacket", Description: "A jacket", Price: 75.5, Stock: 20, CategoryID: 2, BrandID: 2, Image: "img4", CreatedAt: seedTime},
			{ID: 5, ProductName: "Headphones", Description: "Headphones", Price: 5, Stock: 3, CategoryID: 1, BrandID: 1, Image: "img5", CreatedAt: seedTime},
		},
	)
	return c
}

func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
