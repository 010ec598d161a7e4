package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apierrors "github.com/arremato/portfolio-api/internal/errors"
	"github.com/arremato/portfolio-api/internal/middleware"
	"github.com/arremato/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ConstructionHandler coordinates construction project HTTP handlers.
type ConstructionHandler struct {
	constructionService *services.ConstructionService
}

// NewConstructionHandler creates a new ConstructionHandler.
func NewConstructionHandler(constructionService *services.ConstructionService) *ConstructionHandler {
	return &ConstructionHandler{
		constructionService: constructionService,
	}
}

// CreateConstruction registers a construction on a property the caller owns.
func (h *ConstructionHandler) CreateConstruction(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateConstructionRequest struct {
		PropertyID       uint64  `json:"property_id" binding:"required"`
		Budget           float64 `json:"budget"`
		Spent            float64 `json:"spent"`
		DeliveryDays     int     `json:"delivery_days"`
		ResponsibleName  string  `json:"responsible_name"`
		ResponsiblePhone string  `json:"responsible_phone"`
		Status           string  `json:"status"`
	}

	var req CreateConstructionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	construction, err := h.constructionService.CreateConstruction(userID, services.CreateConstructionInput{
		PropertyID:       req.PropertyID,
		Budget:           req.Budget,
		Spent:            req.Spent,
		DeliveryDays:     req.DeliveryDays,
		ResponsibleName:  req.ResponsibleName,
		ResponsiblePhone: req.ResponsiblePhone,
		Status:           req.Status,
	})
	if err != nil {
		respondConstructionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Construction created successfully",
		"construction": construction,
	})
}

// ListConstructions returns the constructions across the caller's properties.
func (h *ConstructionHandler) ListConstructions(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	constructions, err := h.constructionService.ListConstructions(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list constructions")
		return
	}

	c.JSON(http.StatusOK, constructions)
}

// ListPropertyConstructions returns the constructions of one property.
func (h *ConstructionHandler) ListPropertyConstructions(c *gin.Context) {
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

	constructions, err := h.constructionService.ListPropertyConstructions(userID, propertyID)
	if err != nil {
		respondConstructionError(c, err)
		return
	}

	c.JSON(http.StatusOK, constructions)
}

// UpdateConstruction partially updates a construction.
func (h *ConstructionHandler) UpdateConstruction(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	constructionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid construction id")
		return
	}

	type UpdateConstructionRequest struct {
		Budget           *float64 `json:"budget"`
		Spent            *float64 `json:"spent"`
		DeliveryDays     *int     `json:"delivery_days"`
		ResponsibleName  *string  `json:"responsible_name"`
		ResponsiblePhone *string  `json:"responsible_phone"`
		Status           *string  `json:"status"`
	}

	var req UpdateConstructionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	construction, err := h.constructionService.UpdateConstruction(userID, constructionID, services.UpdateConstructionInput{
		Budget:           req.Budget,
		Spent:            req.Spent,
		DeliveryDays:     req.DeliveryDays,
		ResponsibleName:  req.ResponsibleName,
		ResponsiblePhone: req.ResponsiblePhone,
		Status:           req.Status,
	})
	if err != nil {
		respondConstructionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Construction updated successfully",
		"construction": construction,
	})
}

// DeleteConstruction removes a construction.
func (h *ConstructionHandler) DeleteConstruction(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	constructionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid construction id")
		return
	}

	if err := h.constructionService.DeleteConstruction(userID, constructionID); err != nil {
		respondConstructionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Construction deleted successfully"})
}

func respondConstructionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrConstructionNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotOwner):
		apierrors.Forbidden(c, "You do not have permission to access this resource")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
