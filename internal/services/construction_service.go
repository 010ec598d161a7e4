package services

import (
	"fmt"

	"github.com/arremato/portfolio-api/internal/models"
	"github.com/arremato/portfolio-api/internal/repository"
)

// ConstructionService handles construction project business logic.
type ConstructionService struct {
	constructionRepo repository.ConstructionRepository
	propertyRepo     repository.PropertyRepository
	ownership        *OwnershipService
}

// NewConstructionService creates a new ConstructionService
func NewConstructionService(
	constructionRepo repository.ConstructionRepository,
	propertyRepo repository.PropertyRepository,
	ownership *OwnershipService,
) *ConstructionService {
	return &ConstructionService{
		constructionRepo: constructionRepo,
		propertyRepo:     propertyRepo,
		ownership:        ownership,
	}
}

// CreateConstructionInput represents input for creating a construction
type CreateConstructionInput struct {
	PropertyID       uint64
	Budget           float64
	Spent            float64
	DeliveryDays     int
	ResponsibleName  string
	ResponsiblePhone string
	Status           string
}

// CreateConstruction registers a construction on a property the caller owns.
func (s *ConstructionService) CreateConstruction(userID uint64, input CreateConstructionInput) (*models.PropertyConstruction, error) {
	if _, err := s.ownership.Property(userID, input.PropertyID); err != nil {
		return nil, err
	}

	construction := &models.PropertyConstruction{
		PropertyID:       input.PropertyID,
		Budget:           input.Budget,
		Spent:            input.Spent,
		DeliveryDays:     input.DeliveryDays,
		ResponsibleName:  input.ResponsibleName,
		ResponsiblePhone: input.ResponsiblePhone,
		Status:           input.Status,
	}

	if err := s.constructionRepo.Create(construction); err != nil {
		return nil, fmt.Errorf("failed to create construction: %w", err)
	}

	return construction, nil
}

// UpdateConstructionInput is the allow-list of mutable construction fields.
type UpdateConstructionInput struct {
	Budget           *float64
	Spent            *float64
	DeliveryDays     *int
	ResponsibleName  *string
	ResponsiblePhone *string
	Status           *string
}

// UpdateConstruction applies a partial update to a construction on a property
// the caller owns.
func (s *ConstructionService) UpdateConstruction(userID, constructionID uint64, input UpdateConstructionInput) (*models.PropertyConstruction, error) {
	construction, err := s.ownership.Construction(userID, constructionID)
	if err != nil {
		return nil, err
	}

	if input.Budget != nil {
		construction.Budget = *input.Budget
	}
	if input.Spent != nil {
		construction.Spent = *input.Spent
	}
	if input.DeliveryDays != nil {
		construction.DeliveryDays = *input.DeliveryDays
	}
	if input.ResponsibleName != nil {
		construction.ResponsibleName = *input.ResponsibleName
	}
	if input.ResponsiblePhone != nil {
		construction.ResponsiblePhone = *input.ResponsiblePhone
	}
	if input.Status != nil {
		construction.Status = *input.Status
	}

	if err := s.constructionRepo.Update(construction); err != nil {
		return nil, fmt.Errorf("failed to update construction: %w", err)
	}

	return construction, nil
}

// DeleteConstruction removes a construction on a property the caller owns.
func (s *ConstructionService) DeleteConstruction(userID, constructionID uint64) error {
	construction, err := s.ownership.Construction(userID, constructionID)
	if err != nil {
		return err
	}

	if err := s.constructionRepo.Delete(construction.ID); err != nil {
		return fmt.Errorf("failed to delete construction: %w", err)
	}

	return nil
}

// ListConstructions returns the constructions across every property the
// caller owns.
func (s *ConstructionService) ListConstructions(userID uint64) ([]models.PropertyConstruction, error) {
	propertyIDs, err := s.propertyRepo.IDsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	constructions, err := s.constructionRepo.ListByPropertyIDs(propertyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list constructions: %w", err)
	}
	return constructions, nil
}

// ListPropertyConstructions returns the constructions of a property the
// caller owns.
func (s *ConstructionService) ListPropertyConstructions(userID, propertyID uint64) ([]models.PropertyConstruction, error) {
	if _, err := s.ownership.Property(userID, propertyID); err != nil {
		return nil, err
	}

	constructions, err := s.constructionRepo.ListByPropertyID(propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list constructions: %w", err)
	}
	return constructions, nil
}
