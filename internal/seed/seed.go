// Package seed populates an empty catalog store with the initial fixture
// products. Seeding is idempotent: a store that already holds any product is
// left untouched.
package seed

import (
	"fmt"

	"shopfront/internal/models"
	"shopfront/internal/repositories"
)

// fixtures is the initial catalog. IDs are assigned by the store on insert.
var fixtures = []models.Product{
	{
		Name:        "Wireless Bluetooth Headphones",
		Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life. Perfect for music lovers and professionals.",
		Price:       129.99,
		Stock:       25,
	},
	{
		Name:        "Smartphone Case",
		Description: "Durable protective case for smartphones with shockproof design and wireless charging compatibility.",
		Price:       24.99,
		Stock:       50,
	},
	{
		Name:        "USB-C Cable 6ft",
		Description: "Fast charging USB-C cable with data transfer speeds up to 480Mbps. Compatible with most modern devices.",
		Price:       15.99,
		Stock:       75,
	},
	{
		Name:        "Wireless Charging Pad",
		Description: "10W fast wireless charging pad compatible with Qi-enabled devices. Includes LED indicator and safety features.",
		Price:       39.99,
		Stock:       30,
	},
	{
		Name:        "Bluetooth Speaker",
		Description: "Portable waterproof Bluetooth speaker with 360-degree sound and 12-hour battery life. Perfect for outdoor activities.",
		Price:       79.99,
		Stock:       20,
	},
	{
		Name:        "Gaming Mouse",
		Description: "High-precision gaming mouse with customizable RGB lighting and programmable buttons. 16000 DPI sensor.",
		Price:       69.99,
		Stock:       15,
	},
	{
		Name:        "Mechanical Keyboard",
		Description: "Compact mechanical keyboard with tactile switches and customizable backlighting. Perfect for gaming and productivity.",
		Price:       149.99,
		Stock:       12,
	},
	{
		Name:        "USB Flash Drive 128GB",
		Description: "High-speed USB 3.0 flash drive with 128GB storage capacity. Compact design with keychain attachment.",
		Price:       29.99,
		Stock:       40,
	},
	{
		Name:        "Laptop Stand",
		Description: "Adjustable aluminum laptop stand with ergonomic design. Improves airflow and reduces neck strain.",
		Price:       49.99,
		Stock:       18,
	},
	{
		Name:        "Smart Watch",
		Description: "Fitness tracking smartwatch with heart rate monitor, GPS, and 5-day battery life. Water resistant up to 50m.",
		Price:       199.99,
		Stock:       8,
	},
}

// Products seeds the repository with the fixture catalog if it is empty.
// Calling it on a non-empty store is a no-op regardless of its contents.
func Products(repo repositories.ProductRepository) error {
	empty, err := repo.IsEmpty()
	if err != nil {
		return fmt.Errorf("failed to check if store is empty: %w", err)
	}
	if !empty {
		return nil
	}

	for i := range fixtures {
		product := fixtures[i]
		if err := repo.Create(&product); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", product.Name, err)
		}
	}
	return nil
}
