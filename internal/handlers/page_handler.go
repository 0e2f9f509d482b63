package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"shopfront/internal/repositories"
	"shopfront/internal/services"
)

// PageHandler renders the server-side HTML catalog pages.
type PageHandler struct {
	service *services.ProductService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(service *services.ProductService) *PageHandler {
	return &PageHandler{
		service: service,
	}
}

// RegisterRoutes registers the HTML page routes with the Fiber app.
func (h *PageHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)
	router.Get("/products/:id", h.HandleDetail)
}

// HandleIndex renders the catalog index page.
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error loading catalog index: %v", err)
		return fiber.ErrInternalServerError
	}
	return c.Render("index", fiber.Map{
		"Title":    "Catalog",
		"Products": products,
	})
}

// HandleDetail renders the product detail page.
func (h *PageHandler) HandleDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{
			"Message": "This product does not exist",
		})
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{
				"Message": "This product does not exist",
			})
		}
		log.Printf("Error loading product page %d: %v", id, err)
		return fiber.ErrInternalServerError
	}
	return c.Render("product", fiber.Map{
		"Title":   product.Name,
		"Product": product,
	})
}
