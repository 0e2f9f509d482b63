package repositories

import (
	"errors"

	"shopfront/internal/models"
)

// ErrProductNotFound is returned when no product exists for the requested ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	Create(product *models.Product) error
	Update(id int, product *models.Product) (*models.Product, error)
	Delete(id int) error
	Count() (int64, error)
	IsEmpty() (bool, error)
}
