package services

import (
	"lojinha/internal/models"
	"lojinha/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetByID retrieves a single product by its ID.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Search retrieves products whose name contains the pattern,
// case-insensitively. An empty pattern returns the full catalog.
func (s *ProductService) Search(namePattern string) ([]models.Product, error) {
	return s.repo.Search(namePattern)
}
