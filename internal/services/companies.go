package services

import (
	"context"

	"github.com/localnerve/catalogdb/internal/models"
	"gorm.io/gorm"
)

// CompanyService manages companies and their products.
// Deleting a company deletes its products in the same transaction.
type CompanyService struct {
	*Repository[models.Company]
	products *Children[models.Company, models.Product]
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	companies := NewRepository(db, "Company", func(dst, src *models.Company) {
		dst.Name = src.Name
		dst.Location = src.Location
	}).OnDelete(func(tx *gorm.DB, id uint) error {
		return tx.Where("company_id = ?", id).Delete(&models.Product{}).Error
	})

	products := NewRepository(db, "Product", func(dst, src *models.Product) {
		dst.Name = src.Name
		dst.Category = src.Category
	})

	return &CompanyService{
		Repository: companies,
		products: NewChildren(companies, products, "company_id", func(p *models.Product, companyID uint) {
			p.CompanyID = companyID
		}),
	}
}

func (s *CompanyService) List(ctx context.Context) ([]models.Company, error) {
	return s.Find(ctx)
}

func (s *CompanyService) ListProducts(ctx context.Context, companyID uint) ([]models.Product, error) {
	return s.products.List(ctx, companyID)
}

func (s *CompanyService) GetProduct(ctx context.Context, companyID, id uint) (*models.Product, error) {
	return s.products.Get(ctx, companyID, id)
}

func (s *CompanyService) CreateProduct(ctx context.Context, companyID uint, p *models.Product) error {
	return s.products.Create(ctx, companyID, p)
}

func (s *CompanyService) UpdateProduct(ctx context.Context, companyID, id uint, p *models.Product) error {
	return s.products.Update(ctx, companyID, id, p)
}

func (s *CompanyService) DeleteProduct(ctx context.Context, companyID, id uint) error {
	return s.products.Delete(ctx, companyID, id)
}
