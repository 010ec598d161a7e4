package repository

import (
	"github.com/arremato/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormPropertyRepository is a GORM implementation of PropertyRepository
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &GormPropertyRepository{db: db}
}

// Create creates a new property
func (r *GormPropertyRepository) Create(property *models.Property) error {
	return r.db.Create(property).Error
}

// FindByID finds a property by ID
func (r *GormPropertyRepository) FindByID(id uint64) (*models.Property, error) {
	var property models.Property
	if err := r.db.First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// ListByUserID lists all properties owned by a user
func (r *GormPropertyRepository) ListByUserID(userID uint64) ([]models.Property, error) {
	var properties []models.Property
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// IDsByUserID returns the ids of all properties owned by a user
func (r *GormPropertyRepository) IDsByUserID(userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&models.Property{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
