package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "github.com/arremato/portfolio-api/internal/errors"
	"github.com/arremato/portfolio-api/internal/middleware"
	"github.com/arremato/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CatalogHandler covers categories, expense types, loans and processes.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListCategories returns every category.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		apierrors.InternalError(c, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a new category.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	type CreateCategoryRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.catalogService.CreateCategory(req.Name, req.Description)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully",
		"category": category,
	})
}

// ListExpenseTypes returns every expense type.
func (h *CatalogHandler) ListExpenseTypes(c *gin.Context) {
	types, err := h.catalogService.ListExpenseTypes()
	if err != nil {
		apierrors.InternalError(c, "Failed to list expense types")
		return
	}

	c.JSON(http.StatusOK, types)
}

// CreateLoan registers a loan for the caller.
func (h *CatalogHandler) CreateLoan(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateLoanRequest struct {
		Amount             float64    `json:"amount" binding:"required"`
		OutstandingBalance float64    `json:"outstanding_balance"`
		DueDate            *time.Time `json:"due_date"`
	}

	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	loan, err := h.catalogService.CreateLoan(userID, services.CreateLoanInput{
		Amount:             req.Amount,
		OutstandingBalance: req.OutstandingBalance,
		DueDate:            req.DueDate,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Loan created successfully",
		"loan":    loan,
	})
}

// CreateProcess records a process step on a property the caller owns.
func (h *CatalogHandler) CreateProcess(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateProcessRequest struct {
		PropertyID  uint64 `json:"property_id" binding:"required"`
		Activity    string `json:"activity" binding:"required"`
		Status      string `json:"status"`
		Progress    int    `json:"progress"`
		Description string `json:"description"`
		UpdatedBy   string `json:"updated_by"`
	}

	var req CreateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	process, err := h.catalogService.CreateProcess(userID, services.CreateProcessInput{
		PropertyID:  req.PropertyID,
		Activity:    req.Activity,
		Status:      req.Status,
		Progress:    req.Progress,
		Description: req.Description,
		UpdatedBy:   req.UpdatedBy,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Process created successfully",
		"process": process,
	})
}

func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNameRequired),
		errors.Is(err, services.ErrActivityRequired),
		errors.Is(err, services.ErrInvalidProgress),
		errors.Is(err, services.ErrInvalidAmount):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotOwner):
		apierrors.Forbidden(c, "You do not have permission to access this resource")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
