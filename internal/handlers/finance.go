package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/arremato/portfolio-api/internal/errors"
	"github.com/arremato/portfolio-api/internal/middleware"
	"github.com/arremato/portfolio-api/internal/models"
	"github.com/arremato/portfolio-api/internal/services"
	"github.com/arremato/portfolio-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// FinanceHandler coordinates financial transaction HTTP handlers.
type FinanceHandler struct {
	financeService *services.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(financeService *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{
		financeService: financeService,
	}
}

// CreateTransaction records a transaction against a property the caller owns.
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTransactionRequest struct {
		PropertyID    uint64                 `json:"property_id" binding:"required"`
		Type          models.TransactionType `json:"type" binding:"required,oneof=expense income"`
		Date          time.Time              `json:"date" binding:"required"`
		Amount        float64                `json:"amount" binding:"required"`
		Category      string                 `json:"category"`
		Description   string                 `json:"description"`
		Receipt       string                 `json:"receipt"`
		FundingSource string                 `json:"funding_source"`
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	transaction, err := h.financeService.CreateTransaction(userID, services.CreateTransactionInput{
		PropertyID:    req.PropertyID,
		Type:          req.Type,
		Category:      req.Category,
		Date:          req.Date,
		Amount:        req.Amount,
		Description:   req.Description,
		Receipt:       req.Receipt,
		FundingSource: req.FundingSource,
	})
	if err != nil {
		respondFinanceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Transaction created successfully",
		"transaction": transaction,
	})
}

// ListPortfolioTransactions returns the transactions across all the caller's
// properties.
func (h *FinanceHandler) ListPortfolioTransactions(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	transactions, err := h.financeService.ListPortfolioTransactions(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CreateFinance records a transaction owned directly by the caller.
func (h *FinanceHandler) CreateFinance(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateFinanceRequest struct {
		PropertyID         *uint64                  `json:"property_id"`
		Type               models.TransactionType   `json:"type" binding:"required,oneof=expense income"`
		Category           string                   `json:"category"`
		Date               time.Time                `json:"date" binding:"required"`
		Amount             float64                  `json:"amount" binding:"required"`
		Status             models.TransactionStatus `json:"status" binding:"omitempty,oneof=paid pending"`
		PaymentMethod      models.PaymentMethod     `json:"payment_method" binding:"omitempty,oneof=cash financed installment"`
		TotalInstallments  int                      `json:"total_installments"`
		CurrentInstallment int                      `json:"current_installment"`
		InstallmentValue   float64                  `json:"installment_value"`
		ParentID           *uint64                  `json:"parent_id"`
		Description        string                   `json:"description"`
	}

	var req CreateFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Status == "" {
		req.Status = models.StatusPending
	}

	transaction, err := h.financeService.CreateFinance(userID, services.CreateFinanceInput{
		PropertyID:         req.PropertyID,
		Type:               req.Type,
		Category:           req.Category,
		Date:               req.Date,
		Amount:             req.Amount,
		Status:             req.Status,
		PaymentMethod:      req.PaymentMethod,
		TotalInstallments:  req.TotalInstallments,
		CurrentInstallment: req.CurrentInstallment,
		InstallmentValue:   req.InstallmentValue,
		ParentID:           req.ParentID,
		Description:        req.Description,
	})
	if err != nil {
		respondFinanceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Transaction created successfully",
		"transaction": transaction,
	})
}

// CreateInstallments expands an amount into monthly installment transactions.
func (h *FinanceHandler) CreateInstallments(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateInstallmentsRequest struct {
		PropertyID        *uint64                `json:"property_id"`
		Type              models.TransactionType `json:"type" binding:"required,oneof=expense income"`
		Category          string                 `json:"category"`
		Date              time.Time              `json:"date" binding:"required"`
		Amount            float64                `json:"amount" binding:"required"`
		TotalInstallments int                    `json:"total_installments" binding:"required"`
		Description       string                 `json:"description"`
	}

	var req CreateInstallmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	transactions, err := h.financeService.CreateInstallments(userID, services.CreateInstallmentsInput{
		PropertyID:        req.PropertyID,
		Type:              req.Type,
		Category:          req.Category,
		Date:              req.Date,
		Amount:            req.Amount,
		TotalInstallments: req.TotalInstallments,
		Description:       req.Description,
	})
	if err != nil {
		respondFinanceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Installment transactions created successfully",
		"transactions": transactions,
	})
}

// ListUserFinances returns every transaction owned by the caller.
func (h *FinanceHandler) ListUserFinances(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	transactions, total, err := h.financeService.ListUserFinances(userID, params.Page, params.Limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": transactions,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// ListPropertyFinances returns the transactions of one property.
func (h *FinanceHandler) ListPropertyFinances(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	propertyID, err := strconv.ParseUint(c.Param("property_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid property id")
		return
	}

	transactions, err := h.financeService.ListPropertyFinances(userID, propertyID)
	if err != nil {
		respondFinanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// UpdateFinance partially updates a transaction the caller owns.
func (h *FinanceHandler) UpdateFinance(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	transactionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid transaction id")
		return
	}

	type UpdateFinanceRequest struct {
		PropertyID         *uint64                   `json:"property_id"`
		Type               *models.TransactionType   `json:"type" binding:"omitempty,oneof=expense income"`
		Category           *string                   `json:"category"`
		Date               *time.Time                `json:"date"`
		Amount             *float64                  `json:"amount"`
		Status             *models.TransactionStatus `json:"status" binding:"omitempty,oneof=paid pending"`
		PaymentMethod      *models.PaymentMethod     `json:"payment_method" binding:"omitempty,oneof=cash financed installment"`
		TotalInstallments  *int                      `json:"total_installments"`
		CurrentInstallment *int                      `json:"current_installment"`
		InstallmentValue   *float64                  `json:"installment_value"`
		Description        *string                   `json:"description"`
	}

	var req UpdateFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	transaction, err := h.financeService.UpdateFinance(userID, transactionID, services.UpdateFinanceInput{
		PropertyID:         req.PropertyID,
		Type:               req.Type,
		Category:           req.Category,
		Date:               req.Date,
		Amount:             req.Amount,
		Status:             req.Status,
		PaymentMethod:      req.PaymentMethod,
		TotalInstallments:  req.TotalInstallments,
		CurrentInstallment: req.CurrentInstallment,
		InstallmentValue:   req.InstallmentValue,
		Description:        req.Description,
	})
	if err != nil {
		respondFinanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Transaction updated successfully",
		"transaction": transaction,
	})
}

// DeleteFinance removes a transaction and its installment group.
func (h *FinanceHandler) DeleteFinance(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	transactionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid transaction id")
		return
	}

	wasRoot, err := h.financeService.DeleteFinance(userID, transactionID)
	if err != nil {
		respondFinanceError(c, err)
		return
	}

	message := "All related installments deleted successfully"
	if wasRoot {
		message = "Transaction and all related installments deleted successfully"
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// GetFinancialSummary aggregates the caller's ledger.
func (h *FinanceHandler) GetFinancialSummary(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	summary, err := h.financeService.Summary(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to build financial summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

func respondFinanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidInstallments):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotOwner):
		apierrors.Forbidden(c, "You do not have permission to access this resource")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
