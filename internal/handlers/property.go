package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "github.com/arremato/portfolio-api/internal/errors"
	"github.com/arremato/portfolio-api/internal/middleware"
	"github.com/arremato/portfolio-api/internal/models"
	"github.com/arremato/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PropertyHandler coordinates property HTTP handlers.
type PropertyHandler struct {
	propertyService *services.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// CreateProperty registers a new property for the caller.
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreatePropertyRequest struct {
		Name                   string                 `json:"name" binding:"required"`
		PostalCode             string                 `json:"postal_code"`
		Address                string                 `json:"address"`
		Number                 string                 `json:"number"`
		PropertyType           string                 `json:"property_type"`
		State                  string                 `json:"state"`
		BidValue               float64                `json:"bid_value"`
		MarketValue            float64                `json:"market_value"`
		ITBI                   float64                `json:"itbi"`
		Registration           string                 `json:"registration"`
		PurchasedAlone         bool                   `json:"purchased_alone"`
		InvestorName           string                 `json:"investor_name"`
		InvestedAmount         float64                `json:"invested_amount"`
		MonthlyCondoFee        float64                `json:"monthly_condo_fee"`
		AnnualIPTU             float64                `json:"annual_iptu"`
		CondoDebt              float64                `json:"condo_debt"`
		IPTUDebt               float64                `json:"iptu_debt"`
		OtherDebts             float64                `json:"other_debts"`
		BrokerName             string                 `json:"broker_name"`
		BrokerCommission       float64                `json:"broker_commission"`
		ExpectedMonthsToSell   int                    `json:"expected_months_to_sell"`
		ExpectedRenovationCost float64                `json:"expected_renovation_cost"`
		TaxationType           string                 `json:"taxation_type"`
		AcquisitionDate        *time.Time             `json:"acquisition_date"`
		Purpose                models.PropertyPurpose `json:"purpose"`
		PaymentMethod          string                 `json:"payment_method"`
		DownPayment            float64                `json:"down_payment"`
		Installments           int                    `json:"installments"`
		InstallmentValue       float64                `json:"installment_value"`
		AuctionOrigin          string                 `json:"auction_origin"`
		LegalStatus            string                 `json:"legal_status"`
		RegisteredIn           string                 `json:"registered_in"`
	}

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	property, err := h.propertyService.CreateProperty(userID, services.CreatePropertyInput{
		Name:                   req.Name,
		PostalCode:             req.PostalCode,
		Address:                req.Address,
		Number:                 req.Number,
		PropertyType:           req.PropertyType,
		State:                  req.State,
		BidValue:               req.BidValue,
		MarketValue:            req.MarketValue,
		ITBI:                   req.ITBI,
		Registration:           req.Registration,
		PurchasedAlone:         req.PurchasedAlone,
		InvestorName:           req.InvestorName,
		InvestedAmount:         req.InvestedAmount,
		MonthlyCondoFee:        req.MonthlyCondoFee,
		AnnualIPTU:             req.AnnualIPTU,
		CondoDebt:              req.CondoDebt,
		IPTUDebt:               req.IPTUDebt,
		OtherDebts:             req.OtherDebts,
		BrokerName:             req.BrokerName,
		BrokerCommission:       req.BrokerCommission,
		ExpectedMonthsToSell:   req.ExpectedMonthsToSell,
		ExpectedRenovationCost: req.ExpectedRenovationCost,
		TaxationType:           req.TaxationType,
		AcquisitionDate:        req.AcquisitionDate,
		Purpose:                req.Purpose,
		PaymentMethod:          req.PaymentMethod,
		DownPayment:            req.DownPayment,
		Installments:           req.Installments,
		InstallmentValue:       req.InstallmentValue,
		AuctionOrigin:          req.AuctionOrigin,
		LegalStatus:            req.LegalStatus,
		RegisteredIn:           req.RegisteredIn,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPropertyNameRequired),
			errors.Is(err, services.ErrInvalidPurpose):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to create property")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Property created successfully",
		"property": property,
	})
}

// ListProperties returns the caller's properties.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	properties, err := h.propertyService.ListProperties(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list properties")
		return
	}

	c.JSON(http.StatusOK, properties)
}
