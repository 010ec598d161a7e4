package services

import (
	"errors"
	"fmt"

	"github.com/arremato/portfolio-api/internal/models"
	"github.com/arremato/portfolio-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNotOwner             = errors.New("caller does not own this resource")
	ErrTaskNotFound         = errors.New("task not found")
	ErrConstructionNotFound = errors.New("construction not found")
)

// OwnershipService resolves the ownership chain from a resource to the
// authenticated user. Every user-scoped mutation goes through one of these
// checks before touching the row. The lookup and the following mutation are
// separate statements; nothing serializes the two, so a row can change owner
// between them (known limitation carried from the original design).
type OwnershipService struct {
	propertyRepo     repository.PropertyRepository
	taskRepo         repository.TaskRepository
	transactionRepo  repository.TransactionRepository
	constructionRepo repository.ConstructionRepository
}

// NewOwnershipService creates a new OwnershipService
func NewOwnershipService(
	propertyRepo repository.PropertyRepository,
	taskRepo repository.TaskRepository,
	transactionRepo repository.TransactionRepository,
	constructionRepo repository.ConstructionRepository,
) *OwnershipService {
	return &OwnershipService{
		propertyRepo:     propertyRepo,
		taskRepo:         taskRepo,
		transactionRepo:  transactionRepo,
		constructionRepo: constructionRepo,
	}
}

// Property confirms the property exists and belongs to userID. A missing
// property and a foreign property are both reported as ErrNotOwner so the
// response does not reveal which ids exist.
func (s *OwnershipService) Property(userID, propertyID uint64) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotOwner
		}
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if property.UserID != userID {
		return nil, ErrNotOwner
	}
	return property, nil
}

// Task resolves task -> property -> user. A missing task is ErrTaskNotFound;
// a task on a property the caller does not own is ErrNotOwner.
func (s *OwnershipService) Task(userID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	if _, err := s.Property(userID, task.PropertyID); err != nil {
		return nil, err
	}
	return task, nil
}

// Transaction checks the transaction's user_id directly.
func (s *OwnershipService) Transaction(userID, transactionID uint64) (*models.FinancialTransaction, error) {
	transaction, err := s.transactionRepo.FindByID(transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotOwner
		}
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	if transaction.UserID != userID {
		return nil, ErrNotOwner
	}
	return transaction, nil
}

// Construction resolves construction -> property -> user.
func (s *OwnershipService) Construction(userID, constructionID uint64) (*models.PropertyConstruction, error) {
	construction, err := s.constructionRepo.FindByID(constructionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConstructionNotFound
		}
		return nil, fmt.Errorf("failed to load construction: %w", err)
	}

	if _, err := s.Property(userID, construction.PropertyID); err != nil {
		return nil, err
	}
	return construction, nil
}
