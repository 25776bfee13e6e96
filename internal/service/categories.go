package service

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
	"github.com/quochao170402/ecommerce-catalog/internal/placeholder"
)

type CategoryInput struct {
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	Active       *bool  `json:"active"`
}

type CategoryPatch struct {
	CategoryName *string `json:"categoryName"`
	Description  *string `json:"description"`
	Active       *bool   `json:"active"`
}

func (p CategoryPatch) apply(c *domain.Category) {
	if p.CategoryName != nil {
		c.CategoryName = *p.CategoryName
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Active != nil {
		c.Active = *p.Active
	}
}

type CategoryFilter struct {
	Size   int
	Active *bool
}

type CategoriesService struct {
	catalog *Catalog
}

// FindAll applies the active filter before the size truncation. The returned
// total is always the unfiltered store size.
func (s *CategoriesService) FindAll(filter CategoryFilter) ([]domain.Category, int) {
	c := s.catalog
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := c.categories.List()
	total := len(list)
	if filter.Active != nil {
		filtered := list[:0]
		for _, cat := range list {
			if cat.Active == *filter.Active {
				filtered = append(filtered, cat)
			}
		}
		list = filtered
	}
	return truncate(list, filter.Size), total
}

func (s *CategoriesService) FindOne(id int) (domain.Category, error) {
	c := s.catalog
	c.mu.RLock()
	defer c.mu.RUnlock()

	category, ok := c.categories.Get(id)
	if !ok {
		return domain.Category{}, domain.NotFoundf("Category with id %d does not exist", id)
	}
	return category, nil
}

func (s *CategoriesService) Create(in CategoryInput) (domain.Category, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	if in.CategoryName == "" {
		return domain.Category{}, domain.Validationf("Category name is required")
	}
	if c.categoryNameTaken(in.CategoryName, 0) {
		return domain.Category{}, domain.Conflictf("Category name already exists")
	}

	description := in.Description
	if description == "" {
		description = placeholder.Sentence()
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	category := domain.Category{
		ID:           c.categories.NextID(),
		CategoryName: in.CategoryName,
		Description:  description,
		Active:       active,
	}
	c.categories.Append(&category)
	zap.S().Infow("category created", "id", category.ID, "name", category.CategoryName)
	return category, nil
}

func (s *CategoriesService) Update(id int, in CategoryInput) (domain.Category, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.categories.IndexOf(id)
	if i < 0 {
		return domain.Category{}, domain.NotFoundf("Category with id %d does not exist", id)
	}
	if in.CategoryName == "" {
		return domain.Category{}, domain.Validationf("Category name is required")
	}
	if c.categoryNameTaken(in.CategoryName, id) {
		return domain.Category{}, domain.Conflictf("Category name already exists")
	}

	category := c.categories.At(i)
	category.CategoryName = in.CategoryName
	if in.Description != "" {
		category.Description = in.Description
	}
	if in.Active != nil {
		category.Active = *in.Active
	}
	category.SetUpdatedAt(time.Now())
	c.categories.ReplaceAt(i, category)
	return category, nil
}

func (s *CategoriesService) PartialUpdate(id int, patch CategoryPatch) (domain.Category, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.categories.IndexOf(id)
	if i < 0 {
		return domain.Category{}, domain.NotFoundf("Category with id %d does not exist", id)
	}
	if patch.CategoryName != nil && *patch.CategoryName != "" && c.categoryNameTaken(*patch.CategoryName, id) {
		return domain.Category{}, domain.Conflictf("Category name already exists")
	}

	category := c.categories.At(i)
	patch.apply(&category)
	category.ID = id
	category.SetUpdatedAt(time.Now())
	c.categories.ReplaceAt(i, category)
	return category, nil
}

// Delete removes a category unless live products still reference it.
func (s *CategoriesService) Delete(id int) (domain.Category, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.categories.IndexOf(id)
	if i < 0 {
		return domain.Category{}, domain.NotFoundf("Category with id %d does not exist", id)
	}
	if c.categoryHasProducts(id) {
		return domain.Category{}, domain.Conflictf(
			"Category with id %d has associated products and cannot be deleted. Delete or reassign all products in this category first", id)
	}
	category := c.categories.RemoveAt(i)
	zap.S().Infow("category deleted", "id", id)
	return category, nil
}

// DeleteAll clears the categories store. It refuses while any product exists,
// since every product references some category.
func (s *CategoriesService) DeleteAll() (int, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.products.Len() > 0 {
		return 0, domain.Conflictf("Cannot delete all categories while products exist. Delete all products first")
	}
	count := c.categories.Clear()
	zap.S().Infow("all categories deleted", "count", count)
	return count, nil
}

// categoryNameTaken reports whether another category already holds the name.
// The comparison is case-insensitive.
func (c *Catalog) categoryNameTaken(name string, excludeID int) bool {
	for _, cat := range c.categories.List() {
		if strings.EqualFold(cat.CategoryName, name) && cat.ID != excludeID {
			return true
		}
	}
	return false
}
