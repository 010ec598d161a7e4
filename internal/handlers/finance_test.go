package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arremato/portfolio-api/internal/constants"
	"github.com/arremato/portfolio-api/internal/models"
	"github.com/arremato/portfolio-api/internal/repository"
	"github.com/arremato/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// FinanceHandlerTestSuite defines the test suite for FinanceHandler
type FinanceHandlerTestSuite struct {
	suite.Suite
	db             *gorm.DB
	handler        *FinanceHandler
	financeService *services.FinanceService
}

// SetupTest runs before each test
func (suite *FinanceHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.FinancialTransaction{},
	)
	suite.Require().NoError(err)

	propertyRepo := repository.NewPropertyRepository(suite.db)
	transactionRepo := repository.NewTransactionRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	constructionRepo := repository.NewConstructionRepository(suite.db)

	ownership := services.NewOwnershipService(propertyRepo, taskRepo, transactionRepo, constructionRepo)
	suite.financeService = services.NewFinanceService(transactionRepo, propertyRepo, ownership, services.RoundingNone)
	suite.handler = NewFinanceHandler(suite.financeService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *FinanceHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *FinanceHandlerTestSuite) createTestUser(email string) *models.User {
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *FinanceHandlerTestSuite) createTestProperty(userID uint64, name string) *models.Property {
	property := &models.Property{
		UserID: userID,
		Name:   name,
	}
	suite.db.Create(property)
	return property
}

// router returns an engine with every finance route and the given caller
// already authenticated.
func (suite *FinanceHandlerTestSuite) router(userID uint64) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
	})
	r.POST("/finances", suite.handler.CreateFinance)
	r.POST("/finances/installments", suite.handler.CreateInstallments)
	r.PUT("/finances/:id", suite.handler.UpdateFinance)
	r.DELETE("/finances/:id", suite.handler.DeleteFinance)
	r.GET("/finances", suite.handler.ListUserFinances)
	r.GET("/finances/property/:property_id", suite.handler.ListPropertyFinances)
	r.GET("/financial-summary", suite.handler.GetFinancialSummary)
	return r
}

func (suite *FinanceHandlerTestSuite) do(r *gin.Engine, method, url string, payload any) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (suite *FinanceHandlerTestSuite) TestCreateInstallments_SplitsAmountAcrossMonths() {
	user := suite.createTestUser("owner@example.com")
	property := suite.createTestProperty(user.ID, "Apartment 12")
	r := suite.router(user.ID)

	w := suite.do(r, http.MethodPost, "/finances/installments", gin.H{
		"property_id":        property.ID,
		"type":               "expense",
		"category":           "renovation",
		"date":               "2026-01-15T00:00:00Z",
		"amount":             1200,
		"total_installments": 12,
		"description":        "Kitchen renovation",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var stored []models.FinancialTransaction
	err := suite.db.Order("current_installment").Find(&stored).Error
	suite.Require().NoError(err)
	suite.Require().Len(stored, 12)

	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	for i, tx := range stored {
		suite.Equal(float64(100), tx.Amount)
		suite.Equal(i+1, tx.CurrentInstallment)
		suite.Equal(12, tx.TotalInstallments)
		suite.Equal(models.StatusPending, tx.Status)
		suite.Equal(models.PaymentInstallment, tx.PaymentMethod)
		suite.True(start.AddDate(0, i, 0).Equal(tx.Date), "installment %d due date", i+1)
	}

	// The first record is the group root; every other record points at it.
	suite.Nil(stored[0].ParentID)
	for _, tx := range stored[1:] {
		suite.Require().NotNil(tx.ParentID)
		suite.Equal(stored[0].ID, *tx.ParentID)
	}
}

func (suite *FinanceHandlerTestSuite) TestCreateInstallments_RoundingLastAbsorbsRemainder() {
	user := suite.createTestUser("owner@example.com")

	propertyRepo := repository.NewPropertyRepository(suite.db)
	transactionRepo := repository.NewTransactionRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	constructionRepo := repository.NewConstructionRepository(suite.db)
	ownership := services.NewOwnershipService(propertyRepo, taskRepo, transactionRepo, constructionRepo)
	rounding := services.NewFinanceService(transactionRepo, propertyRepo, ownership, services.RoundingLast)

	created, err := rounding.CreateInstallments(user.ID, services.CreateInstallmentsInput{
		Type:              models.TransactionExpense,
		Date:              time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:            100,
		TotalInstallments: 3,
	})
	suite.Require().NoError(err)
	suite.Require().Len(created, 3)

	suite.Equal(33.33, created[0].Amount)
	suite.Equal(33.33, created[1].Amount)
	suite.Equal(33.34, created[2].Amount)
}

func (suite *FinanceHandlerTestSuite) TestCreateInstallments_RejectsNonPositiveCount() {
	user := suite.createTestUser("owner@example.com")
	property := suite.createTestProperty(user.ID, "Apartment 12")
	r := suite.router(user.ID)

	w := suite.do(r, http.MethodPost, "/finances/installments", gin.H{
		"property_id":        property.ID,
		"type":               "expense",
		"date":               "2026-01-15T00:00:00Z",
		"amount":             1200,
		"total_installments": -3,
	})

	suite.Equal(http.StatusBadRequest, w.Code)

	var count int64
	suite.db.Model(&models.FinancialTransaction{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *FinanceHandlerTestSuite) TestCreateInstallments_ForeignPropertyForbidden() {
	owner := suite.createTestUser("owner@example.com")
	intruder := suite.createTestUser("intruder@example.com")
	property := suite.createTestProperty(owner.ID, "Apartment 12")
	r := suite.router(intruder.ID)

	w := suite.do(r, http.MethodPost, "/finances/installments", gin.H{
		"property_id":        property.ID,
		"type":               "expense",
		"date":               "2026-01-15T00:00:00Z",
		"amount":             1200,
		"total_installments": 12,
	})

	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.FinancialTransaction{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *FinanceHandlerTestSuite) seedInstallmentGroup(userID uint64, total int) []models.FinancialTransaction {
	_, err := suite.financeService.CreateInstallments(userID, services.CreateInstallmentsInput{
		Type:              models.TransactionExpense,
		Date:              time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:            float64(total * 100),
		TotalInstallments: total,
	})
	suite.Require().NoError(err)

	var stored []models.FinancialTransaction
	suite.Require().NoError(suite.db.Order("current_installment").Find(&stored).Error)
	suite.Require().Len(stored, total)
	return stored
}

func (suite *FinanceHandlerTestSuite) TestDeleteFinance_ParentRemovesWholeGroup() {
	user := suite.createTestUser("owner@example.com")
	group := suite.seedInstallmentGroup(user.ID, 6)
	r := suite.router(user.ID)

	w := suite.do(r, http.MethodDelete, fmt.Sprintf("/finances/%d", group[0].ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.FinancialTransaction{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *FinanceHandlerTestSuite) TestDeleteFinance_ChildRemovesWholeGroup() {
	user := suite.createTestUser("owner@example.com")
	group := suite.seedInstallmentGroup(user.ID, 6)
	r := suite.router(user.ID)

	// Deleting one child cancels the whole obligation: parent and siblings go too.
	w := suite.do(r, http.MethodDelete, fmt.Sprintf("/finances/%d", group[3].ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.FinancialTransaction{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *FinanceHandlerTestSuite) TestDeleteFinance_NotOwnerForbidden() {
	owner := suite.createTestUser("owner@example.com")
	intruder := suite.createTestUser("intruder@example.com")
	group := suite.seedInstallmentGroup(owner.ID, 6)
	r := suite.router(intruder.ID)

	w := suite.do(r, http.MethodDelete, fmt.Sprintf("/finances/%d", group[0].ID), nil)
	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.FinancialTransaction{}).Count(&count)
	suite.Equal(int64(6), count)
}

func (suite *FinanceHandlerTestSuite) TestUpdateFinance_PartialUpdate() {
	user := suite.createTestUser("owner@example.com")
	r := suite.router(user.ID)

	created, err := suite.financeService.CreateFinance(user.ID, services.CreateFinanceInput{
		Type:   models.TransactionExpense,
		Date:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount: 500,
		Status: models.StatusPending,
	})
	suite.Require().NoError(err)

	w := suite.do(r, http.MethodPut, fmt.Sprintf("/finances/%d", created.ID), gin.H{
		"amount": 750,
		"status": "paid",
	})
	suite.Equal(http.StatusOK, w.Code)

	var stored models.FinancialTransaction
	suite.Require().NoError(suite.db.First(&stored, created.ID).Error)
	suite.Equal(float64(750), stored.Amount)
	suite.Equal(models.StatusPaid, stored.Status)
	suite.Equal(models.TransactionExpense, stored.Type)
}

func (suite *FinanceHandlerTestSuite) TestUpdateFinance_RejectsNonPositiveAmount() {
	user := suite.createTestUser("owner@example.com")
	r := suite.router(user.ID)

	created, err := suite.financeService.CreateFinance(user.ID, services.CreateFinanceInput{
		Type:   models.TransactionExpense,
		Date:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount: 500,
		Status: models.StatusPending,
	})
	suite.Require().NoError(err)

	w := suite.do(r, http.MethodPut, fmt.Sprintf("/finances/%d", created.ID), gin.H{
		"amount": -10,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *FinanceHandlerTestSuite) TestGetFinancialSummary() {
	user := suite.createTestUser("owner@example.com")
	r := suite.router(user.ID)

	seed := []struct {
		txType models.TransactionType
		status models.TransactionStatus
		amount float64
	}{
		{models.TransactionIncome, models.StatusPaid, 5000},
		{models.TransactionExpense, models.StatusPaid, 1200},
		{models.TransactionExpense, models.StatusPending, 300},
	}
	for _, s := range seed {
		_, err := suite.financeService.CreateFinance(user.ID, services.CreateFinanceInput{
			Type:   s.txType,
			Date:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Amount: s.amount,
			Status: s.status,
		})
		suite.Require().NoError(err)
	}

	w := suite.do(r, http.MethodGet, "/financial-summary", nil)
	suite.Equal(http.StatusOK, w.Code)

	var summary repository.FinancialSummary
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &summary))
	suite.Equal(float64(5000), summary.TotalIncome)
	suite.Equal(float64(1500), summary.TotalExpense)
	suite.Equal(float64(3500), summary.Balance)
	suite.Equal(float64(300), summary.PendingAmount)
}

func (suite *FinanceHandlerTestSuite) TestListPropertyFinances_ForeignPropertyForbidden() {
	owner := suite.createTestUser("owner@example.com")
	intruder := suite.createTestUser("intruder@example.com")
	property := suite.createTestProperty(owner.ID, "Apartment 12")
	r := suite.router(intruder.ID)

	w := suite.do(r, http.MethodGet, fmt.Sprintf("/finances/property/%d", property.ID), nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func TestFinanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceHandlerTestSuite))
}
