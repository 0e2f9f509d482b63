package repositories_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shopfront/internal/models"
	"shopfront/internal/repositories"
)

// newGORMRepo opens a dedicated in-memory SQLite database and returns a
// GORM-backed repository over it.
func newGORMRepo(t *testing.T) *repositories.GORMProductRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Product{}))
	return repositories.NewGORMProductRepository(db)
}

// repoImplementations runs the contract tests against both store backends.
func repoImplementations(t *testing.T) map[string]repositories.ProductRepository {
	t.Helper()
	return map[string]repositories.ProductRepository{
		"gorm":   newGORMRepo(t),
		"memory": repositories.NewMemoryProductRepository(),
	}
}

func TestProductRepository_CreateAssignsUniqueIDs(t *testing.T) {
	for name, repo := range repoImplementations(t) {
		t.Run(name, func(t *testing.T) {
			first := models.Product{Name: "First", Price: 10, Stock: 1}
			second := models.Product{Name: "Second", Price: 20, Stock: 2}

			assert.NoError(t, repo.Create(&first))
			assert.NoError(t, repo.Create(&second))

			assert.Greater(t, first.ID, 0)
			assert.Greater(t, second.ID, first.ID)
		})
	}
}

func TestProductRepository_GetAllInsertionOrder(t *testing.T) {
	for name, repo := range repoImplementations(t) {
		t.Run(name, func(t *testing.T) {
			names := []string{"A", "B", "C"}
			for _, n := range names {
				p := models.Product{Name: n, Price: 1, Stock: 1}
				assert.NoError(t, repo.Create(&p))
			}

			products, err := repo.GetAll()
			assert.NoError(t, err)
			assert.Len(t, products, 3)
			for i, p := range products {
				assert.Equal(t, names[i], p.Name)
			}
		})
	}
}

func TestProductRepository_GetByID(t *testing.T) {
	for name, repo := range repoImplementations(t) {
		t.Run(name, func(t *testing.T) {
			p := models.Product{Name: "Widget", Description: "A widget", Price: 9.99, Stock: 3}
			assert.NoError(t, repo.Create(&p))

			got, err := repo.GetByID(p.ID)
			assert.NoError(t, err)
			assert.Equal(t, p.Name, got.Name)
			assert.Equal(t, p.Description, got.Description)
			assert.Equal(t, p.Price, got.Price)
			assert.Equal(t, p.Stock, got.Stock)

			_, err = repo.GetByID(9999)
			assert.ErrorIs(t, err, repositories.ErrProductNotFound)
		})
	}
}

func TestProductRepository_Update(t *testing.T) {
	for name, repo := range repoImplementations(t) {
		t.Run(name, func(t *testing.T) {
			p := models.Product{Name: "A", Price: 1, Stock: 1}
			assert.NoError(t, repo.Create(&p))

			updated, err := repo.Update(p.ID, &models.Product{
				Name:        "Updated",
				Description: "Desc",
				Price:       10,
				Stock:       5,
			})
			assert.NoError(t, err)
			assert.Equal(t, p.ID, updated.ID)
			assert.Equal(t, "Updated", updated.Name)
			assert.Equal(t, 10.0, updated.Price)

			got, err := repo.GetByID(p.ID)
			assert.NoError(t, err)
			assert.Equal(t, "Updated", got.Name)
			assert.Equal(t, 5, got.Stock)

			_, err = repo.Update(999, &models.Product{Name: "X", Price: 1, Stock: 1})
			assert.ErrorIs(t, err, repositories.ErrProductNotFound)
		})
	}
}

func TestProductRepository_UpdateWritesZeroStock(t *testing.T) {
	for name, repo := range repoImplementations(t) {
		t.Run(name, func(t *testing.T) {
			p := models.Product{Name: "A", Price: 1, Stock: 7}
			assert.NoError(t, repo.Create(&p))

			_, err := repo.Update(p.ID, &models.Product{Name: "A", Price: 1, Stock: 0})
			assert.NoError(t, err)

			got, err := repo.GetByID(p.ID)
			assert.NoError(t, err)
			assert.Equal(t, 0, got.Stock)
		})
	}
}

func TestProductRepository_Delete(t *testing.T) {
	for name, repo := range repoImplementations(t) {
		t.Run(name, func(t *testing.T) {
			first := models.Product{Name: "A", Price: 1, Stock: 1}
			second := models.Product{Name: "B", Price: 2, Stock: 2}
			assert.NoError(t, repo.Create(&first))
			assert.NoError(t, repo.Create(&second))

			assert.NoError(t, repo.Delete(first.ID))

			count, err := repo.Count()
			assert.NoError(t, err)
			assert.Equal(t, int64(1), count)

			_, err = repo.GetByID(first.ID)
			assert.ErrorIs(t, err, repositories.ErrProductNotFound)

			// Deleting an already deleted product reports not found.
			assert.ErrorIs(t, repo.Delete(first.ID), repositories.ErrProductNotFound)
		})
	}
}

func TestProductRepository_CountAndIsEmpty(t *testing.T) {
	for name, repo := range repoImplementations(t) {
		t.Run(name, func(t *testing.T) {
			empty, err := repo.IsEmpty()
			assert.NoError(t, err)
			assert.True(t, empty)

			p := models.Product{Name: "A", Price: 1, Stock: 1}
			assert.NoError(t, repo.Create(&p))

			empty, err = repo.IsEmpty()
			assert.NoError(t, err)
			assert.False(t, empty)

			count, err := repo.Count()
			assert.NoError(t, err)
			assert.Equal(t, int64(1), count)
		})
	}
}

func TestMemoryProductRepository_ConcurrentCreateAssignsDistinctIDs(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	const n = 50
	ids := make(chan int, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			p := models.Product{Name: fmt.Sprintf("Concurrent %d", i), Price: 1, Stock: 1}
			if err := repo.Create(&p); err != nil {
				t.Errorf("create failed: %v", err)
				return
			}
			ids <- p.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		assert.Greater(t, id, 0)
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	count, err := repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(n), count)
}

func TestMemoryProductRepository_NeverReusesIDs(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	first := models.Product{Name: "A", Price: 1, Stock: 1}
	assert.NoError(t, repo.Create(&first))
	assert.NoError(t, repo.Delete(first.ID))

	second := models.Product{Name: "B", Price: 2, Stock: 2}
	assert.NoError(t, repo.Create(&second))
	assert.Greater(t, second.ID, first.ID)
}
