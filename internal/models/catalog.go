package models

import "time"

// Reference and record entities with no cross-entity invariants beyond
// their foreign keys.

type Category struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ExpenseType struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Loan struct {
	ID                 uint64     `gorm:"primarykey" json:"id"`
	UserID             uint64     `gorm:"not null;index" json:"user_id"`
	Amount             float64    `gorm:"not null" json:"amount"`
	OutstandingBalance float64    `json:"outstanding_balance"`
	DueDate            *time.Time `json:"due_date"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

type Process struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	PropertyID  uint64    `gorm:"not null;index" json:"property_id"`
	Activity    string    `gorm:"type:varchar(255);not null" json:"activity"`
	Status      string    `gorm:"type:varchar(20)" json:"status"`
	Progress    int       `json:"progress"`
	Description string    `gorm:"type:text" json:"description"`
	UpdatedBy   string    `gorm:"type:varchar(255)" json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Property Property `gorm:"foreignKey:PropertyID" json:"-"`
}
