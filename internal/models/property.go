package models

import (
	"time"

	"gorm.io/gorm"
)

type PropertyPurpose string

const (
	PurposeSale      PropertyPurpose = "sale"
	PurposeRental    PropertyPurpose = "rental"
	PurposeResidence PropertyPurpose = "residence"
)

type Property struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	UserID uint64 `gorm:"not null;index" json:"user_id"`

	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	PostalCode   string `gorm:"type:varchar(20)" json:"postal_code"`
	Address      string `gorm:"type:varchar(255)" json:"address"`
	Number       string `gorm:"type:varchar(20)" json:"number"`
	PropertyType string `gorm:"type:varchar(50)" json:"property_type"`
	State        string `gorm:"type:varchar(50)" json:"state"`

	BidValue               float64 `json:"bid_value"`
	MarketValue            float64 `json:"market_value"`
	ITBI                   float64 `json:"itbi"`
	Registration           string  `gorm:"type:varchar(100)" json:"registration"`
	PurchasedAlone         bool    `json:"purchased_alone"`
	InvestorName           string  `gorm:"type:varchar(255)" json:"investor_name"`
	InvestedAmount         float64 `json:"invested_amount"`
	MonthlyCondoFee        float64 `json:"monthly_condo_fee"`
	AnnualIPTU             float64 `json:"annual_iptu"`
	CondoDebt              float64 `json:"condo_debt"`
	IPTUDebt               float64 `json:"iptu_debt"`
	OtherDebts             float64 `json:"other_debts"`
	BrokerName             string  `gorm:"type:varchar(255)" json:"broker_name"`
	BrokerCommission       float64 `json:"broker_commission"`
	ExpectedMonthsToSell   int     `json:"expected_months_to_sell"`
	ExpectedRenovationCost float64 `json:"expected_renovation_cost"`
	TaxationType           string  `gorm:"type:varchar(50)" json:"taxation_type"`

	AcquisitionDate  *time.Time      `json:"acquisition_date"`
	Purpose          PropertyPurpose `gorm:"type:varchar(20)" json:"purpose"`
	PaymentMethod    string          `gorm:"type:varchar(50)" json:"payment_method"`
	DownPayment      float64         `json:"down_payment"`
	Installments     int             `json:"installments"`
	InstallmentValue float64         `json:"installment_value"`
	AuctionOrigin    string          `gorm:"type:varchar(255)" json:"auction_origin"`
	LegalStatus      string          `gorm:"type:varchar(100)" json:"legal_status"`
	RegisteredIn     string          `gorm:"type:varchar(255)" json:"registered_in"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User          User                   `gorm:"foreignKey:UserID" json:"-"`
	Transactions  []FinancialTransaction `gorm:"foreignKey:PropertyID" json:"transactions,omitempty"`
	Tasks         []Task                 `gorm:"foreignKey:PropertyID" json:"tasks,omitempty"`
	Constructions []PropertyConstruction `gorm:"foreignKey:PropertyID" json:"constructions,omitempty"`
}
