package repository

import (
	"github.com/arremato/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormConstructionRepository is a GORM implementation of ConstructionRepository
type GormConstructionRepository struct {
	db *gorm.DB
}

// NewConstructionRepository creates a new ConstructionRepository
func NewConstructionRepository(db *gorm.DB) ConstructionRepository {
	return &GormConstructionRepository{db: db}
}

// Create creates a new construction
func (r *GormConstructionRepository) Create(construction *models.PropertyConstruction) error {
	return r.db.Create(construction).Error
}

// FindByID finds a construction by ID
func (r *GormConstructionRepository) FindByID(id uint64) (*models.PropertyConstruction, error) {
	var construction models.PropertyConstruction
	if err := r.db.First(&construction, id).Error; err != nil {
		return nil, err
	}
	return &construction, nil
}

// ListByPropertyID lists the constructions attached to a property
func (r *GormConstructionRepository) ListByPropertyID(propertyID uint64) ([]models.PropertyConstruction, error) {
	var constructions []models.PropertyConstruction
	if err := r.db.Where("property_id = ?", propertyID).Find(&constructions).Error; err != nil {
		return nil, err
	}
	return constructions, nil
}

// ListByPropertyIDs lists the constructions attached to any of the given properties
func (r *GormConstructionRepository) ListByPropertyIDs(propertyIDs []uint64) ([]models.PropertyConstruction, error) {
	if len(propertyIDs) == 0 {
		return []models.PropertyConstruction{}, nil
	}

	var constructions []models.PropertyConstruction
	if err := r.db.Where("property_id IN ?", propertyIDs).Find(&constructions).Error; err != nil {
		return nil, err
	}
	return constructions, nil
}

// Update persists changes to a construction
func (r *GormConstructionRepository) Update(construction *models.PropertyConstruction) error {
	return r.db.Save(construction).Error
}

// Delete soft deletes a construction
func (r *GormConstructionRepository) Delete(id uint64) error {
	return r.db.Delete(&models.PropertyConstruction{}, id).Error
}
