package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopfront/internal/models"
	"shopfront/internal/repositories"
	"shopfront/internal/seed"
)

func TestSeedProducts_EmptyStore(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	err := seed.Products(repo)
	assert.NoError(t, err)

	count, err := repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(10), count)

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 10)
	assert.Equal(t, "Wireless Bluetooth Headphones", products[0].Name)
	for _, p := range products {
		assert.NoError(t, p.Validate(), "fixture %q must satisfy product constraints", p.Name)
		assert.Greater(t, p.ID, 0)
	}
}

func TestSeedProducts_Idempotent(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	assert.NoError(t, seed.Products(repo))
	before, err := repo.GetAll()
	assert.NoError(t, err)

	// Second call is a guaranteed no-op: the store is no longer empty.
	assert.NoError(t, seed.Products(repo))
	after, err := repo.GetAll()
	assert.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestSeedProducts_NonEmptyStoreUntouched(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	existing := models.Product{Name: "Already", Price: 1, Stock: 1}
	assert.NoError(t, repo.Create(&existing))

	assert.NoError(t, seed.Products(repo))

	count, err := repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := repo.GetByID(existing.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Already", got.Name)
}
