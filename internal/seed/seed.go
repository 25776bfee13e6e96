// Package seed populates the catalog with an initial data set at startup so
// the stores begin non-empty and every id counter sits above the seeded max.
package seed

import (
	"go.uber.org/zap"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
	"github.com/quochao170402/ecommerce-catalog/internal/placeholder"
	"github.com/quochao170402/ecommerce-catalog/internal/service"
)

const (
	userCount     = 10
	categoryCount = 10
	brandCount    = 10
	productCount  = 20
)

var categoryNames = []string{
	"Electronics", "Clothing", "Home & Garden", "Sports",
	"Books", "Toys", "Automotive", "Beauty", "Food", "Health",
}

var brandNames = []string{
	"Apple", "Samsung", "Nike", "Adidas", "Sony",
	"Microsoft", "Google", "Amazon", "Tesla", "Netflix",
}

// Catalog fills every store of c with placeholder records.
func Catalog(c *service.Catalog) {
	users := make([]domain.User, 0, userCount)
	for i := 1; i <= userCount; i++ {
		users = append(users, domain.User{
			ID:        i,
			Name:      placeholder.FullName(),
			Username:  placeholder.Username(),
			Password:  placeholder.Password(),
			Email:     placeholder.Email(),
			CreatedAt: placeholder.PastDate(),
		})
	}

	categories := make([]domain.Category, 0, categoryCount)
	for i := 1; i <= categoryCount; i++ {
		categories = append(categories, domain.Category{
			ID:           i,
			CategoryName: categoryNames[i-1],
			Description:  placeholder.Sentence(),
			Active:       placeholder.Bool(),
			CreatedAt:    placeholder.PastDate(),
		})
	}

	brands := make([]domain.Brand, 0, brandCount)
	for i := 1; i <= brandCount; i++ {
		brands = append(brands, domain.Brand{
			ID:          i,
			BrandName:   brandNames[i-1],
			Description: placeholder.CatchPhrase(),
			Active:      placeholder.Bool(),
			Country:     placeholder.Country(),
			CreatedAt:   placeholder.PastDate(),
		})
	}

	products := make([]domain.Product, 0, productCount)
	for i := 1; i <= productCount; i++ {
		products = append(products, domain.Product{
			ID:          i,
			ProductName: placeholder.ProductName(),
			Description: placeholder.Paragraph(),
			Price:       placeholder.Price(),
			Stock:       placeholder.Stock(),
			CategoryID:  1 + (i-1)%categoryCount,
			BrandID:     1 + (i-1)%brandCount,
			Image:       placeholder.ImageURL(400, 400, "product"),
			CreatedAt:   placeholder.PastDate(),
		})
	}

	c.Seed(users, categories, brands, products)
	zap.S().Infow("catalog seeded",
		"users", len(users), "categories", len(categories),
		"brands", len(brands), "products", len(products))
}
