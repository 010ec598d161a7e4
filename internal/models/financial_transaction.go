package models

import (
	"time"

	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionExpense TransactionType = "expense"
	TransactionIncome  TransactionType = "income"
)

type TransactionStatus string

const (
	StatusPaid    TransactionStatus = "paid"
	StatusPending TransactionStatus = "pending"
)

type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentFinanced    PaymentMethod = "financed"
	PaymentInstallment PaymentMethod = "installment"
)

// FinancialTransaction is a single ledger entry. Installment plans are stored
// as one row per due date: the first row of the group is the parent and every
// later row points back at it through ParentID.
type FinancialTransaction struct {
	ID         uint64  `gorm:"primarykey" json:"id"`
	UserID     uint64  `gorm:"not null;index" json:"user_id"`
	PropertyID *uint64 `gorm:"index" json:"property_id"`

	Type          TransactionType   `gorm:"type:varchar(20);not null" json:"type"`
	Category      string            `gorm:"type:varchar(100)" json:"category"`
	Date          time.Time         `gorm:"not null" json:"date"`
	Amount        float64           `gorm:"not null" json:"amount"`
	Status        TransactionStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentMethod PaymentMethod     `gorm:"type:varchar(20)" json:"payment_method"`

	TotalInstallments  int     `json:"total_installments"`
	CurrentInstallment int     `json:"current_installment"`
	InstallmentValue   float64 `json:"installment_value"`
	ParentID           *uint64 `gorm:"index" json:"parent_id"`

	Description   string `gorm:"type:text" json:"description"`
	Receipt       string `gorm:"type:varchar(255)" json:"receipt"`
	FundingSource string `gorm:"type:varchar(100)" json:"funding_source"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}
