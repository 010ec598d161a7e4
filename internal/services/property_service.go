package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/arremato/portfolio-api/internal/models"
	"github.com/arremato/portfolio-api/internal/repository"
)

var (
	ErrPropertyNameRequired = errors.New("property name is required")
	ErrInvalidPurpose       = errors.New("purpose must be one of: sale, rental, residence")
)

// PropertyService handles property registration and listing.
type PropertyService struct {
	propertyRepo repository.PropertyRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo repository.PropertyRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

// CreatePropertyInput carries the descriptive, financial and acquisition
// attributes of a property.
type CreatePropertyInput struct {
	Name                   string
	PostalCode             string
	Address                string
	Number                 string
	PropertyType           string
	State                  string
	BidValue               float64
	MarketValue            float64
	ITBI                   float64
	Registration           string
	PurchasedAlone         bool
	InvestorName           string
	InvestedAmount         float64
	MonthlyCondoFee        float64
	AnnualIPTU             float64
	CondoDebt              float64
	IPTUDebt               float64
	OtherDebts             float64
	BrokerName             string
	BrokerCommission       float64
	ExpectedMonthsToSell   int
	ExpectedRenovationCost float64
	TaxationType           string
	AcquisitionDate        *time.Time
	Purpose                models.PropertyPurpose
	PaymentMethod          string
	DownPayment            float64
	Installments           int
	InstallmentValue       float64
	AuctionOrigin          string
	LegalStatus            string
	RegisteredIn           string
}

// CreateProperty registers a property owned by userID.
func (s *PropertyService) CreateProperty(userID uint64, input CreatePropertyInput) (*models.Property, error) {
	if input.Name == "" {
		return nil, ErrPropertyNameRequired
	}

	switch input.Purpose {
	case "", models.PurposeSale, models.PurposeRental, models.PurposeResidence:
	default:
		return nil, ErrInvalidPurpose
	}

	property := &models.Property{
		UserID:                 userID,
		Name:                   input.Name,
		PostalCode:             input.PostalCode,
		Address:                input.Address,
		Number:                 input.Number,
		PropertyType:           input.PropertyType,
		State:                  input.State,
		BidValue:               input.BidValue,
		MarketValue:            input.MarketValue,
		ITBI:                   input.ITBI,
		Registration:           input.Registration,
		PurchasedAlone:         input.PurchasedAlone,
		InvestorName:           input.InvestorName,
		InvestedAmount:         input.InvestedAmount,
		MonthlyCondoFee:        input.MonthlyCondoFee,
		AnnualIPTU:             input.AnnualIPTU,
		CondoDebt:              input.CondoDebt,
		IPTUDebt:               input.IPTUDebt,
		OtherDebts:             input.OtherDebts,
		BrokerName:             input.BrokerName,
		BrokerCommission:       input.BrokerCommission,
		ExpectedMonthsToSell:   input.ExpectedMonthsToSell,
		ExpectedRenovationCost: input.ExpectedRenovationCost,
		TaxationType:           input.TaxationType,
		AcquisitionDate:        input.AcquisitionDate,
		Purpose:                input.Purpose,
		PaymentMethod:          input.PaymentMethod,
		DownPayment:            input.DownPayment,
		Installments:           input.Installments,
		InstallmentValue:       input.InstallmentValue,
		AuctionOrigin:          input.AuctionOrigin,
		LegalStatus:            input.LegalStatus,
		RegisteredIn:           input.RegisteredIn,
	}

	if err := s.propertyRepo.Create(property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return property, nil
}

// ListProperties returns the caller's properties.
func (s *PropertyService) ListProperties(userID uint64) ([]models.Property, error) {
	properties, err := s.propertyRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}
