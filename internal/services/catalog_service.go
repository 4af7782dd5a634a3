package services

import (
	"strings"

	"farmacia/internal/domain"
	"farmacia/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) Get(id int64) (domain.Product, error) {
	return s.Prods.Get(id)
}

// Create stores a new product. Price is clamped to 0..domain.MaxPrice,
// negative stock becomes 0 and the discount is clamped to 0-100.
func (s *CatalogService) Create(name string, price, stock, discount int, image string) (int64, error) {
	return s.Prods.Create(domain.Product{
		Name:     strings.TrimSpace(name),
		Price:    clampPrice(price),
		Stock:    max(stock, 0),
		Discount: clampPercent(discount),
		Image:    strings.TrimSpace(image),
	})
}

func (s *CatalogService) UpdateStock(id int64, stock int) error {
	return s.Prods.UpdateStock(id, max(stock, 0))
}

// UpdateDiscount changes the live discount. Lines already in a cart keep
// the discount they were added with.
func (s *CatalogService) UpdateDiscount(id int64, discount int) error {
	return s.Prods.UpdateDiscount(id, clampPercent(discount))
}

func (s *CatalogService) Delete(id int64) error {
	return s.Prods.Deactivate(id)
}
