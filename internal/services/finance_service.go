package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/arremato/portfolio-api/internal/models"
	"github.com/arremato/portfolio-api/internal/repository"
)

var (
	ErrInvalidAmount       = errors.New("amount must be a number greater than zero")
	ErrInvalidInstallments = errors.New("total_installments must be a positive integer")
)

// InstallmentRounding selects how the per-installment amount is computed.
type InstallmentRounding string

const (
	// RoundingNone divides with plain float64 division. The sum of the
	// installment amounts may drift from the original total for amounts not
	// evenly divisible by the count. This matches the historical behavior
	// and is the default.
	RoundingNone InstallmentRounding = ""

	// RoundingLast computes amounts in integer cents and lets the final
	// installment absorb the remainder, so the installments always sum to
	// the original amount.
	RoundingLast InstallmentRounding = "last"
)

// FinanceService owns the transaction lifecycle: single entries, installment
// expansion, the group deletion cascade and the financial summary.
type FinanceService struct {
	transactionRepo repository.TransactionRepository
	propertyRepo    repository.PropertyRepository
	ownership       *OwnershipService
	rounding        InstallmentRounding
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(
	transactionRepo repository.TransactionRepository,
	propertyRepo repository.PropertyRepository,
	ownership *OwnershipService,
	rounding InstallmentRounding,
) *FinanceService {
	return &FinanceService{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
		ownership:       ownership,
		rounding:        rounding,
	}
}

// CreateTransactionInput is a property-scoped ledger entry.
type CreateTransactionInput struct {
	PropertyID    uint64
	Type          models.TransactionType
	Category      string
	Date          time.Time
	Amount        float64
	Description   string
	Receipt       string
	FundingSource string
}

// CreateTransaction records a transaction against a property the caller owns.
func (s *FinanceService) CreateTransaction(userID uint64, input CreateTransactionInput) (*models.FinancialTransaction, error) {
	if _, err := s.ownership.Property(userID, input.PropertyID); err != nil {
		return nil, err
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	transaction := &models.FinancialTransaction{
		UserID:        userID,
		PropertyID:    &input.PropertyID,
		Type:          input.Type,
		Category:      input.Category,
		Date:          input.Date,
		Amount:        input.Amount,
		Status:        models.StatusPaid,
		Description:   input.Description,
		Receipt:       input.Receipt,
		FundingSource: input.FundingSource,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// CreateFinanceInput carries every writable transaction field.
type CreateFinanceInput struct {
	PropertyID         *uint64
	Type               models.TransactionType
	Category           string
	Date               time.Time
	Amount             float64
	Status             models.TransactionStatus
	PaymentMethod      models.PaymentMethod
	TotalInstallments  int
	CurrentInstallment int
	InstallmentValue   float64
	ParentID           *uint64
	Description        string
}

// CreateFinance records a transaction owned directly by the caller.
func (s *FinanceService) CreateFinance(userID uint64, input CreateFinanceInput) (*models.FinancialTransaction, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if input.InstallmentValue < 0 {
		return nil, ErrInvalidAmount
	}

	transaction := &models.FinancialTransaction{
		UserID:             userID,
		PropertyID:         input.PropertyID,
		Type:               input.Type,
		Category:           input.Category,
		Date:               input.Date,
		Amount:             input.Amount,
		Status:             input.Status,
		PaymentMethod:      input.PaymentMethod,
		TotalInstallments:  input.TotalInstallments,
		CurrentInstallment: input.CurrentInstallment,
		InstallmentValue:   input.InstallmentValue,
		ParentID:           input.ParentID,
		Description:        input.Description,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// CreateInstallmentsInput describes an obligation split across monthly due dates.
type CreateInstallmentsInput struct {
	PropertyID        *uint64
	Type              models.TransactionType
	Category          string
	Date              time.Time
	Amount            float64
	TotalInstallments int
	Description       string
}

// CreateInstallments expands the input into one pending transaction per
// installment and persists the whole group atomically. Installment i is due
// i-1 calendar months after the start date.
func (s *FinanceService) CreateInstallments(userID uint64, input CreateInstallmentsInput) ([]models.FinancialTransaction, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if input.TotalInstallments < 1 {
		return nil, ErrInvalidInstallments
	}

	if input.PropertyID != nil {
		if _, err := s.ownership.Property(userID, *input.PropertyID); err != nil {
			return nil, err
		}
	}

	amounts := s.splitAmount(input.Amount, input.TotalInstallments)

	transactions := make([]models.FinancialTransaction, input.TotalInstallments)
	for i := 0; i < input.TotalInstallments; i++ {
		transactions[i] = models.FinancialTransaction{
			UserID:             userID,
			PropertyID:         input.PropertyID,
			Type:               input.Type,
			Category:           input.Category,
			Date:               input.Date.AddDate(0, i, 0),
			Amount:             amounts[i],
			Status:             models.StatusPending,
			PaymentMethod:      models.PaymentInstallment,
			TotalInstallments:  input.TotalInstallments,
			CurrentInstallment: i + 1,
			InstallmentValue:   amounts[0],
			Description:        input.Description,
		}
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		return nil, fmt.Errorf("failed to create installments: %w", err)
	}

	return transactions, nil
}

// splitAmount returns the per-installment amounts. With RoundingNone every
// installment gets amount/total as-is; with RoundingLast the division is done
// in cents and the last installment takes the remainder.
func (s *FinanceService) splitAmount(amount float64, total int) []float64 {
	amounts := make([]float64, total)

	if s.rounding == RoundingLast {
		totalCents := int64(math.Round(amount * 100))
		baseCents := totalCents / int64(total)
		for i := range amounts {
			amounts[i] = float64(baseCents) / 100
		}
		amounts[total-1] = float64(totalCents-baseCents*int64(total-1)) / 100
		return amounts
	}

	value := amount / float64(total)
	for i := range amounts {
		amounts[i] = value
	}
	return amounts
}

// UpdateFinanceInput is the allow-list of mutable transaction fields.
type UpdateFinanceInput struct {
	PropertyID         *uint64
	Type               *models.TransactionType
	Category           *string
	Date               *time.Time
	Amount             *float64
	Status             *models.TransactionStatus
	PaymentMethod      *models.PaymentMethod
	TotalInstallments  *int
	CurrentInstallment *int
	InstallmentValue   *float64
	Description        *string
}

// UpdateFinance applies a partial update to a transaction the caller owns.
func (s *FinanceService) UpdateFinance(userID, transactionID uint64, input UpdateFinanceInput) (*models.FinancialTransaction, error) {
	transaction, err := s.ownership.Transaction(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		transaction.Amount = *input.Amount
	}
	if input.InstallmentValue != nil {
		if *input.InstallmentValue <= 0 {
			return nil, ErrInvalidAmount
		}
		transaction.InstallmentValue = *input.InstallmentValue
	}
	if input.PropertyID != nil {
		transaction.PropertyID = input.PropertyID
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Category != nil {
		transaction.Category = *input.Category
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Status != nil {
		transaction.Status = *input.Status
	}
	if input.PaymentMethod != nil {
		transaction.PaymentMethod = *input.PaymentMethod
	}
	if input.TotalInstallments != nil {
		transaction.TotalInstallments = *input.TotalInstallments
	}
	if input.CurrentInstallment != nil {
		transaction.CurrentInstallment = *input.CurrentInstallment
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return transaction, nil
}

// DeleteFinance removes a transaction together with its installment group.
// Deleting the group root removes the root and every child; deleting a child
// removes the root and every sibling as well. The whole-group semantics on
// child deletion are deliberate: a split obligation is cancelled as a unit,
// never one due date at a time. Returns true when the target was the root.
func (s *FinanceService) DeleteFinance(userID, transactionID uint64) (bool, error) {
	transaction, err := s.ownership.Transaction(userID, transactionID)
	if err != nil {
		return false, err
	}

	rootID := transaction.ID
	isRoot := transaction.ParentID == nil
	if !isRoot {
		rootID = *transaction.ParentID
	}

	if err := s.transactionRepo.DeleteGroup(rootID); err != nil {
		return false, fmt.Errorf("failed to delete transaction group: %w", err)
	}

	return isRoot, nil
}

// ListUserFinances returns every transaction owned directly by the user.
func (s *FinanceService) ListUserFinances(userID uint64, page, pageSize int) ([]models.FinancialTransaction, int64, error) {
	return s.transactionRepo.List(repository.TransactionFilter{
		UserID:   &userID,
		Page:     page,
		PageSize: pageSize,
	})
}

// ListPropertyFinances returns the transactions recorded against a property
// the caller owns.
func (s *FinanceService) ListPropertyFinances(userID, propertyID uint64) ([]models.FinancialTransaction, error) {
	if _, err := s.ownership.Property(userID, propertyID); err != nil {
		return nil, err
	}

	transactions, _, err := s.transactionRepo.List(repository.TransactionFilter{
		PropertyIDs: []uint64{propertyID},
	})
	return transactions, err
}

// ListPortfolioTransactions returns the transactions across every property
// the caller owns.
func (s *FinanceService) ListPortfolioTransactions(userID uint64) ([]models.FinancialTransaction, error) {
	propertyIDs, err := s.propertyRepo.IDsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	transactions, _, err := s.transactionRepo.List(repository.TransactionFilter{
		PropertyIDs: propertyIDs,
	})
	return transactions, err
}

// Summary aggregates the caller's ledger.
func (s *FinanceService) Summary(userID uint64) (*repository.FinancialSummary, error) {
	summary, err := s.transactionRepo.Summarize(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}
	return summary, nil
}
