package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
	"github.com/quochao170402/ecommerce-catalog/internal/service"
)

func TestBrandsFindAllActiveFilter(t *testing.T) {
	c := seededCatalog()

	brands, total := c.Brands.FindAll(service.BrandFilter{Active: boolPtr(false)})
	require.Len(t, brands, 1)
	assert.Equal(t, "Sony", brands[0].BrandName)
	assert.Equal(t, 3, total, "total is the unfiltered store size")
}

func TestBrandsCreateDefaults(t *testing.T) {
	c := seededCatalog()

	brand, err := c.Brands.Create(service.BrandInput{BrandName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, 4, brand.ID)
	assert.True(t, brand.Active)
	assert.NotEmpty(t, brand.Description)
	assert.NotEmpty(t, brand.Country)
}

func TestBrandNameUniquenessIsCaseInsensitive(t *testing.T) {
	c := seededCatalog()

	_, err := c.Brands.Create(service.BrandInput{BrandName: "apple"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Equal(t, "Brand name already exists", err.Error())

	_, err = c.Brands.PartialUpdate(2, service.BrandPatch{BrandName: strPtr("SONY")})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestBrandsCreateRequiresName(t *testing.T) {
	c := seededCatalog()

	_, err := c.Brands.Create(service.BrandInput{Country: "Germany"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "Brand name is required", err.Error())
}

func TestBrandsUpdate(t *testing.T) {
	c := seededCatalog()

	updated, err := c.Brands.Update(3, service.BrandInput{
		BrandName: "Sony Group",
		Country:   "Japan",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.ID)
	assert.Equal(t, "Sony Group", updated.BrandName)
	assert.Equal(t, "Make believe", updated.Description)
	assert.False(t, updated.Active, "active is kept when not supplied")
	assert.NotNil(t, updated.UpdatedAt)
}

func TestBrandsPartialUpdate(t *testing.T) {
	c := seededCatalog()

	after, err := c.Brands.PartialUpdate(3, service.BrandPatch{Country: strPtr("South Korea")})
	require.NoError(t, err)
	assert.Equal(t, 3, after.ID)
	assert.Equal(t, "South Korea", after.Country)
	assert.Equal(t, "Sony", after.BrandName)
}

func TestBrandsDeleteGuard(t *testing.T) {
	c := seededCatalog()

	// Brand 2 is referenced by products 2 and 4.
	_, err := c.Brands.Delete(2)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	for _, id := range []int{2, 4} {
		_, err := c.Products.Delete(id)
		require.NoError(t, err)
	}

	removed, err := c.Brands.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, "Nike", removed.BrandName)
}

func TestBrandsDeleteUnreferencedBrand(t *testing.T) {
	c := seededCatalog()

	removed, err := c.Brands.Delete(3)
	require.NoError(t, err)
	assert.Equal(t, "Sony", removed.BrandName)

	_, err = c.Brands.FindOne(3)
	assert.True(t, domain.IsNotFound(err))

	_, err = c.Brands.Delete(99)
	assert.True(t, domain.IsNotFound(err))
}
