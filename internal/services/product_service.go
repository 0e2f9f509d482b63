package services

import (
	"log"

	"shopfront/internal/models"
	"shopfront/internal/repositories"
	"shopfront/pkg/rabbitmq"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client // nil when no broker is configured
}

// NewProductService creates a new ProductService. The RabbitMQ client may be
// nil, in which case no catalog events are published.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates the product and persists it. On a validation
// failure the store is never touched. On success the product carries the
// ID assigned by the store.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publishEvent("product.created", product)
	return nil
}

// UpdateProduct validates the new values and replaces the mutable fields of
// the product with the given ID. Returns repositories.ErrProductNotFound if
// the ID is absent.
func (s *ProductService) UpdateProduct(id int, product *models.Product) (*models.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(id, product)
	if err != nil {
		return nil, err
	}
	s.publishEvent("product.updated", updated)
	return updated, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("product.deleted", &models.Product{ID: id})
	return nil
}

// publishEvent sends a catalog change event when a broker is configured.
// Publishing is best-effort: a broker failure never fails the mutation that
// already committed.
func (s *ProductService) publishEvent(action string, product *models.Product) {
	if s.mqClient == nil {
		return
	}
	event := map[string]interface{}{
		"action":  action,
		"product": product,
	}
	if err := s.mqClient.PublishCatalogEvent(event); err != nil {
		log.Printf("Failed to publish %s event for product %d: %v", action, product.ID, err)
	}
}
