package models

import (
	"time"

	"gorm.io/gorm"
)

type PropertyConstruction struct {
	ID               uint64         `gorm:"primarykey" json:"id"`
	PropertyID       uint64         `gorm:"not null;index" json:"property_id"`
	Budget           float64        `json:"budget"`
	Spent            float64        `json:"spent"`
	DeliveryDays     int            `json:"delivery_days"`
	ResponsibleName  string         `gorm:"type:varchar(255)" json:"responsible_name"`
	ResponsiblePhone string         `gorm:"type:varchar(50)" json:"responsible_phone"`
	Status           string         `gorm:"type:varchar(50)" json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Property Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}
