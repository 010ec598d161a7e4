package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/arremato/portfolio-api/internal/models"
	"github.com/arremato/portfolio-api/internal/repository"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrActivityRequired     = errors.New("process activity is required")
	ErrInvalidProgress      = errors.New("progress must be between 0 and 100")
)

// CatalogService covers categories, expense types, loans and processes.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	ownership   *OwnershipService
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(catalogRepo repository.CatalogRepository, ownership *OwnershipService) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		ownership:   ownership,
	}
}

// ListCategories returns every category.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	categories, err := s.catalogRepo.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a new category.
func (s *CatalogService) CreateCategory(name, description string) (*models.Category, error) {
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	category := &models.Category{
		Name:        name,
		Description: description,
	}

	if err := s.catalogRepo.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// ListExpenseTypes returns every expense type.
func (s *CatalogService) ListExpenseTypes() ([]models.ExpenseType, error) {
	types, err := s.catalogRepo.ListExpenseTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to list expense types: %w", err)
	}
	return types, nil
}

// CreateLoanInput represents input for registering a loan
type CreateLoanInput struct {
	Amount             float64
	OutstandingBalance float64
	DueDate            *time.Time
}

// CreateLoan registers a loan for the caller.
func (s *CatalogService) CreateLoan(userID uint64, input CreateLoanInput) (*models.Loan, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	loan := &models.Loan{
		UserID:             userID,
		Amount:             input.Amount,
		OutstandingBalance: input.OutstandingBalance,
		DueDate:            input.DueDate,
	}

	if err := s.catalogRepo.CreateLoan(loan); err != nil {
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}
	return loan, nil
}

// CreateProcessInput represents input for creating a process
type CreateProcessInput struct {
	PropertyID  uint64
	Activity    string
	Status      string
	Progress    int
	Description string
	UpdatedBy   string
}

// CreateProcess records a process step on a property the caller owns.
func (s *CatalogService) CreateProcess(userID uint64, input CreateProcessInput) (*models.Process, error) {
	if input.Activity == "" {
		return nil, ErrActivityRequired
	}
	if input.Progress < 0 || input.Progress > 100 {
		return nil, ErrInvalidProgress
	}

	if _, err := s.ownership.Property(userID, input.PropertyID); err != nil {
		return nil, err
	}

	process := &models.Process{
		PropertyID:  input.PropertyID,
		Activity:    input.Activity,
		Status:      input.Status,
		Progress:    input.Progress,
		Description: input.Description,
		UpdatedBy:   input.UpdatedBy,
	}

	if err := s.catalogRepo.CreateProcess(process); err != nil {
		return nil, fmt.Errorf("failed to create process: %w", err)
	}
	return process, nil
}
