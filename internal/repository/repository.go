package repository

import (
	"github.com/arremato/portfolio-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List returns all users
	List() ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// PropertyRepository defines the interface for property data access
type PropertyRepository interface {
	// Create creates a new property
	Create(property *models.Property) error

	// FindByID finds a property by ID
	FindByID(id uint64) (*models.Property, error)

	// ListByUserID lists all properties owned by a user
	ListByUserID(userID uint64) ([]models.Property, error)

	// IDsByUserID returns the ids of all properties owned by a user
	IDsByUserID(userID uint64) ([]uint64, error)
}

// TransactionFilter holds filtering options for listing transactions
type TransactionFilter struct {
	UserID      *uint64
	PropertyIDs []uint64
	Page        int
	PageSize    int
}

// FinancialSummary aggregates a user's ledger
type FinancialSummary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpense  float64 `json:"total_expense"`
	Balance       float64 `json:"balance"`
	PendingAmount float64 `json:"pending_amount"`
}

// TransactionRepository defines the interface for financial transaction data access
type TransactionRepository interface {
	// Create creates a single transaction
	Create(tx *models.FinancialTransaction) error

	// CreateBatch inserts an installment group atomically: either every
	// record is committed or none is.
	CreateBatch(txs []models.FinancialTransaction) error

	// FindByID finds a transaction by ID
	FindByID(id uint64) (*models.FinancialTransaction, error)

	// List retrieves transactions matching the filter
	List(filter TransactionFilter) ([]models.FinancialTransaction, int64, error)

	// Update persists changes to a transaction
	Update(tx *models.FinancialTransaction) error

	// DeleteGroup deletes the group root identified by rootID together with
	// every transaction whose parent_id references it
	DeleteGroup(rootID uint64) error

	// Summarize aggregates income, expense and pending amounts for a user
	Summarize(userID uint64) (*FinancialSummary, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id uint64) (*models.Task, error)
	ListByUserID(userID uint64) ([]models.Task, error)
	ListByPropertyID(propertyID uint64) ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id uint64) error
}

// ConstructionRepository defines the interface for property construction data access
type ConstructionRepository interface {
	Create(construction *models.PropertyConstruction) error
	FindByID(id uint64) (*models.PropertyConstruction, error)
	ListByPropertyID(propertyID uint64) ([]models.PropertyConstruction, error)
	ListByPropertyIDs(propertyIDs []uint64) ([]models.PropertyConstruction, error)
	Update(construction *models.PropertyConstruction) error
	Delete(id uint64) error
}

// CatalogRepository covers the simple reference/record entities.
type CatalogRepository interface {
	ListCategories() ([]models.Category, error)
	CreateCategory(category *models.Category) error
	ListExpenseTypes() ([]models.ExpenseType, error)
	CreateLoan(loan *models.Loan) error
	CreateProcess(process *models.Process) error
}
