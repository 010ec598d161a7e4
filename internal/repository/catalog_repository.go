package repository

import (
	"github.com/arremato/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormCatalogRepository is a GORM implementation of CatalogRepository
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCatalogRepository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *GormCatalogRepository) ListExpenseTypes() ([]models.ExpenseType, error) {
	var types []models.ExpenseType
	if err := r.db.Order("name").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *GormCatalogRepository) CreateLoan(loan *models.Loan) error {
	return r.db.Create(loan).Error
}

func (r *GormCatalogRepository) CreateProcess(process *models.Process) error {
	return r.db.Create(process).Error
}
