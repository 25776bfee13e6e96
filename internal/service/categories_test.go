package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
	"github.com/quochao170402/ecommerce-catalog/internal/service"
)

func TestCategoriesFindAllActiveFilter(t *testing.T) {
	c := seededCatalog()

	categories, total := c.Categories.FindAll(service.CategoryFilter{Active: boolPtr(true)})
	require.Len(t, categories, 2)
	assert.Equal(t, "Electronics", categories[0].CategoryName)
	assert.Equal(t, "Books", categories[1].CategoryName)
	// total reflects the store size, not the filtered result.
	assert.Equal(t, 4, total)
}

func TestCategoriesFindAllFilterBeforeTruncation(t *testing.T) {
	c := seededCatalog()

	categories, total := c.Categories.FindAll(service.CategoryFilter{
		Active: boolPtr(false),
		Size:   1,
	})
	require.Len(t, categories, 1)
	assert.Equal(t, "Clothing", categories[0].CategoryName)
	assert.Equal(t, 4, total)
}

func TestCategoriesCreateThenDuplicate(t *testing.T) {
	c := seededCatalog()

	created, err := c.Categories.Create(service.CategoryInput{CategoryName: "Gadgets"})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.True(t, created.Active, "active defaults to true")
	assert.NotEmpty(t, created.Description, "description is defaulted when omitted")

	_, err = c.Categories.Create(service.CategoryInput{CategoryName: "Gadgets"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, "Category name already exists", err.Error())
}

func TestCategoryNameUniquenessIsCaseInsensitive(t *testing.T) {
	c := seededCatalog()

	_, err := c.Categories.Create(service.CategoryInput{CategoryName: "ELECTRONICS"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	_, err = c.Categories.PartialUpdate(3, service.CategoryPatch{CategoryName: strPtr("clothing")})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestCategoriesCreateRequiresName(t *testing.T) {
	c := seededCatalog()

	_, err := c.Categories.Create(service.CategoryInput{Description: "nameless"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "Category name is required", err.Error())
}

func TestCategoriesUpdate(t *testing.T) {
	c := seededCatalog()

	updated, err := c.Categories.Update(3, service.CategoryInput{
		CategoryName: "Literature",
		Active:       boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.ID)
	assert.Equal(t, "Literature", updated.CategoryName)
	assert.False(t, updated.Active)
	assert.Equal(t, "Reading", updated.Description, "empty description keeps the stored one")
	assert.NotNil(t, updated.UpdatedAt)

	// Keeping your own name is not a conflict.
	_, err = c.Categories.Update(3, service.CategoryInput{CategoryName: "LITERATURE"})
	require.NoError(t, err)
}

func TestCategoriesPartialUpdatePinsID(t *testing.T) {
	c := seededCatalog()

	after, err := c.Categories.PartialUpdate(4, service.CategoryPatch{Active: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, 4, after.ID)
	assert.True(t, after.Active)
	assert.Equal(t, "Toys", after.CategoryName)
}

func TestCategoriesDeleteGuard(t *testing.T) {
	c := seededCatalog()

	// Category 1 is referenced by products 1, 2 and 5.
	_, err := c.Categories.Delete(1)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Contains(t, err.Error(), "has associated products")

	for _, id := range []int{1, 2, 5} {
		_, err := c.Products.Delete(id)
		require.NoError(t, err)
	}

	// The guard re-scans live products, so the delete now goes through.
	removed, err := c.Categories.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", removed.CategoryName)
}

func TestCategoriesDeleteUnreferencedCategory(t *testing.T) {
	c := seededCatalog()

	removed, err := c.Categories.Delete(3)
	require.NoError(t, err)
	assert.Equal(t, "Books", removed.CategoryName)

	_, err = c.Categories.Delete(99)
	assert.True(t, domain.IsNotFound(err))
}

func TestCategoriesDeleteAll(t *testing.T) {
	c := seededCatalog()

	_, err := c.Categories.DeleteAll()
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, "Cannot delete all categories while products exist. Delete all products first", err.Error())

	for id := 1; id <= 5; id++ {
		_, err := c.Products.Delete(id)
		require.NoError(t, err)
	}

	count, err := c.Categories.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	// The id counter keeps its position after the wipe.
	created, err := c.Categories.Create(service.CategoryInput{CategoryName: "Fresh"})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
}
