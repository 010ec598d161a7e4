package repository

import (
	"github.com/arremato/portfolio-api/internal/database"
	"github.com/arremato/portfolio-api/internal/models"
	"github.com/arremato/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

// GormTransactionRepository is a GORM implementation of TransactionRepository
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create creates a single transaction
func (r *GormTransactionRepository) Create(tx *models.FinancialTransaction) error {
	return r.db.Create(tx).Error
}

// CreateBatch inserts an installment group inside one store transaction so a
// mid-batch failure never leaves a partial group behind. The first record is
// the group root; children get their ParentID pointed at it after the root's
// id is known.
func (r *GormTransactionRepository) CreateBatch(txs []models.FinancialTransaction) error {
	if len(txs) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		root := &txs[0]
		if err := tx.Create(root).Error; err != nil {
			return err
		}

		if len(txs) == 1 {
			return nil
		}

		children := txs[1:]
		for i := range children {
			children[i].ParentID = &root.ID
		}

		return tx.Create(&children).Error
	})
}

// FindByID finds a transaction by ID
func (r *GormTransactionRepository) FindByID(id uint64) (*models.FinancialTransaction, error) {
	var transaction models.FinancialTransaction
	if err := r.db.First(&transaction, id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// List retrieves transactions matching the filter
func (r *GormTransactionRepository) List(filter TransactionFilter) ([]models.FinancialTransaction, int64, error) {
	query := r.db.Model(&models.FinancialTransaction{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.PropertyIDs != nil {
		if len(filter.PropertyIDs) == 0 {
			return []models.FinancialTransaction{}, 0, nil
		}
		query = query.Where("property_id IN ?", filter.PropertyIDs)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("date DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Page:   filter.Page,
			Limit:  filter.PageSize,
			Offset: (filter.Page - 1) * filter.PageSize,
		}))
	}

	var transactions []models.FinancialTransaction
	if err := listQuery.Preload("Property").Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// Update persists changes to a transaction
func (r *GormTransactionRepository) Update(tx *models.FinancialTransaction) error {
	return r.db.Save(tx).Error
}

// DeleteGroup deletes the group root and every transaction referencing it.
// For a standalone transaction this is a single-row delete.
func (r *GormTransactionRepository) DeleteGroup(rootID uint64) error {
	return r.db.Where("id = ? OR parent_id = ?", rootID, rootID).
		Delete(&models.FinancialTransaction{}).Error
}

// Summarize aggregates income, expense and pending amounts for a user
func (r *GormTransactionRepository) Summarize(userID uint64) (*FinancialSummary, error) {
	var summary FinancialSummary

	err := r.db.Model(&models.FinancialTransaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ?", userID, models.TransactionIncome).
		Scan(&summary.TotalIncome).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.FinancialTransaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ?", userID, models.TransactionExpense).
		Scan(&summary.TotalExpense).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.FinancialTransaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ? AND status = ?", userID, models.TransactionExpense, models.StatusPending).
		Scan(&summary.PendingAmount).Error
	if err != nil {
		return nil, err
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpense
	return &summary, nil
}
