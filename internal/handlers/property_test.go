package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arremato/portfolio-api/internal/constants"
	"github.com/arremato/portfolio-api/internal/models"
	"github.com/arremato/portfolio-api/internal/repository"
	"github.com/arremato/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPropertyTestEnv(t *testing.T) (*gorm.DB, *PropertyHandler) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Property{})
	require.NoError(t, err)

	propertyRepo := repository.NewPropertyRepository(db)
	handler := NewPropertyHandler(services.NewPropertyService(propertyRepo))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, handler
}

func propertyRouter(handler *PropertyHandler, userID uint64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
	})
	r.GET("/properties", handler.ListProperties)
	r.POST("/properties", handler.CreateProperty)
	return r
}

func TestPropertyHandler_CreateThenListExactlyOnce(t *testing.T) {
	db, handler := setupPropertyTestEnv(t)

	user := &models.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	r := propertyRouter(handler, user.ID)

	body, err := json.Marshal(map[string]any{
		"name":         "Auction Lot 42",
		"address":      "Rua das Flores",
		"bid_value":    185000,
		"market_value": 310000,
		"purpose":      "sale",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/properties", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	listReq := httptest.NewRequest(http.MethodGet, "/properties", nil)
	listW := httptest.NewRecorder()
	r.ServeHTTP(listW, listReq)
	require.Equal(t, http.StatusOK, listW.Code)

	var properties []models.Property
	require.NoError(t, json.Unmarshal(listW.Body.Bytes(), &properties))
	require.Len(t, properties, 1)
	require.Equal(t, "Auction Lot 42", properties[0].Name)
	require.Equal(t, models.PurposeSale, properties[0].Purpose)
	require.Equal(t, user.ID, properties[0].UserID)
}

func TestPropertyHandler_CreateRequiresName(t *testing.T) {
	db, handler := setupPropertyTestEnv(t)

	user := &models.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	r := propertyRouter(handler, user.ID)

	body, err := json.Marshal(map[string]any{"bid_value": 185000})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/properties", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPropertyHandler_CreateRejectsUnknownPurpose(t *testing.T) {
	db, handler := setupPropertyTestEnv(t)

	user := &models.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	r := propertyRouter(handler, user.ID)

	body, err := json.Marshal(map[string]any{
		"name":    "Auction Lot 42",
		"purpose": "flip",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/properties", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPropertyHandler_ListOnlyReturnsCallersProperties(t *testing.T) {
	db, handler := setupPropertyTestEnv(t)

	owner := &models.User{Name: "Owner", Email: "owner@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(owner).Error)
	other := &models.User{Name: "Other", Email: "other@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, db.Create(&models.Property{UserID: owner.ID, Name: "Mine"}).Error)
	require.NoError(t, db.Create(&models.Property{UserID: other.ID, Name: "Theirs"}).Error)

	r := propertyRouter(handler, owner.ID)

	req := httptest.NewRequest(http.MethodGet, "/properties", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var properties []models.Property
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &properties))
	require.Len(t, properties, 1)
	require.Equal(t, "Mine", properties[0].Name)
}
