package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Properties   []Property             `gorm:"foreignKey:UserID" json:"-"`
	Transactions []FinancialTransaction `gorm:"foreignKey:UserID" json:"-"`
	Tasks        []Task                 `gorm:"foreignKey:UserID" json:"-"`
	Loans        []Loan                 `gorm:"foreignKey:UserID" json:"-"`
}
