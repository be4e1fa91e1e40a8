package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/apperrors"
	"github.com/SscSPs/tax_ledger_app/internal/bankexchange"
	"github.com/SscSPs/tax_ledger_app/internal/core/calendar"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/core/reconcile"
	"github.com/SscSPs/tax_ledger_app/internal/dto"
	"github.com/SscSPs/tax_ledger_app/internal/handlers"
	"github.com/SscSPs/tax_ledger_app/internal/middleware"
	"github.com/SscSPs/tax_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "tax-ledger-test"
	testUserID = "user-1"
	profileID  = "profile-1"
)

type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockProfile *MockProfileService
	mockLedger  *MockLedgerService
	mockImport  *MockImportService
	mockTax     *MockTaxService
	token       string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testSecret, testIssuer))

	suite.mockProfile = new(MockProfileService)
	suite.mockLedger = new(MockLedgerService)
	suite.mockImport = new(MockImportService)
	suite.mockTax = new(MockTaxService)

	handlers.RegisterValidators()
	v1 := suite.router.Group("/api/v1")
	profile := handlers.RegisterProfileRoutes(v1, suite.mockProfile)
	handlers.RegisterTransactionRoutes(profile, suite.mockLedger)
	handlers.RegisterImportRoutes(profile, suite.mockImport, 1<<20)
	handlers.RegisterTaxRoutes(profile, suite.mockTax)

	token, err := utils.GenerateJWT(testUserID, testSecret, time.Hour, testIssuer)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *HandlerTestSuite) do(method, url string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) doJSON(method, url string, payload any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(payload)
	suite.Require().NoError(err)
	return suite.do(method, url, bytes.NewBuffer(raw), "application/json")
}

func (suite *HandlerTestSuite) doUpload(url, field string, content []byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if field != "" {
		part, err := writer.CreateFormFile(field, "statement.txt")
		suite.Require().NoError(err)
		_, err = part.Write(content)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(writer.Close())
	return suite.do(http.MethodPost, url, body, writer.FormDataContentType())
}

func decodeError(body []byte) string {
	var resp map[string]string
	_ = json.Unmarshal(body, &resp)
	return resp["error"]
}

// --- Auth ---

func (suite *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProfile.AssertNotCalled(suite.T(), "ListProfiles", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestWrongIssuer() {
	token, err := utils.GenerateJWT(testUserID, testSecret, time.Hour, "someone-else")
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Profiles ---

func (suite *HandlerTestSuite) TestCreateProfile_Success() {
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	created := &domain.BusinessProfile{
		ProfileID: profileID,
		OwnerID:   testUserID,
		Name:      "Shop",
		Regime:    domain.RegimeConfig{Primary: domain.RegimeFlatRevenue},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	suite.mockProfile.On("CreateProfile", mock.Anything, mock.MatchedBy(func(r dto.CreateProfileRequest) bool {
		return r.Name == "Shop" && r.Regime.Primary == string(domain.RegimeFlatRevenue)
	}), testUserID).Return(created, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/profiles", map[string]any{
		"name":   "Shop",
		"regime": map[string]any{"primary": "FLAT_REVENUE"},
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProfileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(profileID, resp.ProfileID)
	suite.mockProfile.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateProfile_UnknownRegimeRejectedByBinding() {
	w := suite.doJSON(http.MethodPost, "/api/v1/profiles", map[string]any{
		"name":   "Shop",
		"regime": map[string]any{"primary": "PATENT"},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(decodeError(w.Body.Bytes()), "regime")
	suite.mockProfile.AssertNotCalled(suite.T(), "CreateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateProfile_BadINN() {
	w := suite.doJSON(http.MethodPost, "/api/v1/profiles", map[string]any{
		"name":   "Shop",
		"inn":    "12ab",
		"regime": map[string]any{"primary": "NONE"},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetProfile_ErrorMapping() {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: not yours", apperrors.ErrForbidden), http.StatusForbidden},
		{apperrors.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.mockProfile.On("GetProfile", mock.Anything, profileID, testUserID).Return(nil, tc.err).Once()

		w := suite.do(http.MethodGet, "/api/v1/profiles/"+profileID, nil, "")

		suite.Equal(tc.status, w.Code, tc.err.Error())
	}

	suite.mockProfile.On("GetProfile", mock.Anything, profileID, testUserID).Return(nil, fmt.Errorf("pq: secret detail")).Once()
	w := suite.do(http.MethodGet, "/api/v1/profiles/"+profileID, nil, "")
	suite.Equal("Failed to retrieve profile", decodeError(w.Body.Bytes()), "internal details stay hidden")
}

func (suite *HandlerTestSuite) TestUpdateRegime_Misconfigured() {
	suite.mockProfile.On("UpdateRegime", mock.Anything, profileID, mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: fragment without add-on", apperrors.ErrRegimeMisconfigured)).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/profiles/"+profileID+"/regime", map[string]any{
		"primary":                 "FLAT_REVENUE",
		"fixedFeeAccountFragment": "0001",
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestListProfiles() {
	suite.mockProfile.On("ListProfiles", mock.Anything, testUserID).
		Return([]domain.BusinessProfile{{ProfileID: "a"}, {ProfileID: "b"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/profiles", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListProfilesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Profiles, 2)
}

// --- Transactions ---

func (suite *HandlerTestSuite) TestListTransactions_DefaultLimit() {
	page := &portssvc.LedgerPage{
		Transactions: domain.Ledger{
			{TransactionID: "t1", Date: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC), Direction: domain.Income, Amount: decimal.NewFromInt(10)},
			{TransactionID: "t2", Date: time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC), Direction: domain.Expense, Amount: decimal.NewFromInt(5)},
		},
		NextToken: "next",
	}
	suite.mockLedger.On("ListTransactions", mock.Anything, profileID, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Limit == 100 && p.Direction == "INCOME"
	}), testUserID).Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/profiles/"+profileID+"/transactions?direction=INCOME", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 2)
	suite.Equal("2024-03-01", resp.Transactions[0].Date)
	suite.Equal(1, resp.IncomeCount)
	suite.Equal(1, resp.ExpenseCount)
	suite.Equal("next", resp.NextToken)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions_InvalidQuery() {
	w := suite.do(http.MethodGet, "/api/v1/profiles/"+profileID+"/transactions?from=01.02.2024", nil, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAddTransaction() {
	txn := &domain.Transaction{
		TransactionID: "t1",
		Date:          time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
		Amount:        decimal.RequireFromString("1500.50"),
		Direction:     domain.Income,
		Source:        domain.SourceManual,
	}
	suite.mockLedger.On("AddTransaction", mock.Anything, profileID, mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
		return r.Amount.Equal(decimal.RequireFromString("1500.50")) && r.Date == "2024-03-01"
	}), testUserID).Return(txn, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/profiles/"+profileID+"/transactions", map[string]any{
		"date":      "2024-03-01",
		"amount":    "1500.50",
		"direction": "INCOME",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAddTransaction_InvalidDirection() {
	w := suite.doJSON(http.MethodPost, "/api/v1/profiles/"+profileID+"/transactions", map[string]any{
		"date":      "2024-03-01",
		"amount":    "10",
		"direction": "REFUND",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteTransaction() {
	suite.mockLedger.On("DeleteTransaction", mock.Anything, profileID, "t1", testUserID).Return(nil).Once()
	suite.mockLedger.On("DeleteTransaction", mock.Anything, profileID, "t2", testUserID).Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/profiles/"+profileID+"/transactions/t1", nil, "")
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/profiles/"+profileID+"/transactions/t2", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestToggleRegimeTag() {
	suite.mockLedger.On("ToggleRegimeTag", mock.Anything, profileID, "t1", testUserID).
		Return(&domain.Transaction{TransactionID: "t1", RegimeTag: domain.FixedFeeTag}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/profiles/"+profileID+"/transactions/t1/regime-tag", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.FixedFeeTag, resp.RegimeTag)
}

// --- Imports ---

const uploaded = "1CClientBankExchange\nСекцияДокумент=Платежное поручение\nДата=15.01.2024\nСумма=100,00\nКонецДокумента\nКонецФайла\n"

func (suite *HandlerTestSuite) TestPreviewImport() {
	preview := &portssvc.ImportPreview{
		Stats:   bankexchange.Stats{Documents: 1, Extracted: 1},
		Preview: reconcile.Preview{NewCount: 1, NewIncome: 1, ExistingCount: 4},
	}
	suite.mockImport.On("PreviewImport", mock.Anything, profileID, []byte(uploaded), testUserID).Return(preview, nil).Once()

	w := suite.doUpload("/api/v1/profiles/"+profileID+"/imports/preview", handlers.UploadField, []byte(uploaded))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ImportPreviewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.NewCount)
	suite.True(resp.NeedsDecision)
	suite.mockImport.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPreviewImport_MissingFile() {
	w := suite.doUpload("/api/v1/profiles/"+profileID+"/imports/preview", "", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockImport.AssertNotCalled(suite.T(), "PreviewImport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPreviewImport_Unrecognized() {
	suite.mockImport.On("PreviewImport", mock.Anything, profileID, mock.Anything, testUserID).
		Return(nil, apperrors.ErrUnrecognizedFormat).Once()

	w := suite.doUpload("/api/v1/profiles/"+profileID+"/imports/preview", handlers.UploadField, []byte("a,b,c"))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCommitImport_ConfirmationRequired() {
	preview := &portssvc.ImportPreview{
		Stats:   bankexchange.Stats{Documents: 1, Extracted: 1},
		Preview: reconcile.Preview{NewCount: 1, ExistingCount: 3, Duplicates: 1},
	}
	suite.mockImport.On("CommitImport", mock.Anything, profileID, []byte(uploaded), reconcile.Unset, testUserID).
		Return(nil, preview, apperrors.ErrConfirmationRequired).Once()

	w := suite.doUpload("/api/v1/profiles/"+profileID+"/imports", handlers.UploadField, []byte(uploaded))

	suite.Equal(http.StatusConflict, w.Code)
	var resp dto.ConfirmationRequiredResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Error)
	suite.Equal(3, resp.Preview.ExistingCount)
	suite.Equal(1, resp.Preview.Duplicates)
}

func (suite *HandlerTestSuite) TestCommitImport_Merge() {
	outcome := &portssvc.ImportOutcome{
		Stats:  bankexchange.Stats{Documents: 1, Extracted: 1},
		Result: reconcile.Result{Strategy: reconcile.Merge, Added: 1, Total: 4},
	}
	suite.mockImport.On("CommitImport", mock.Anything, profileID, []byte(uploaded), reconcile.Merge, testUserID).
		Return(outcome, nil, nil).Once()

	w := suite.doUpload("/api/v1/profiles/"+profileID+"/imports?strategy=merge", handlers.UploadField, []byte(uploaded))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ImportResultResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(reconcile.Merge, resp.Strategy)
	suite.Equal(4, resp.Total)
}

func (suite *HandlerTestSuite) TestCommitImport_UnknownStrategy() {
	w := suite.doUpload("/api/v1/profiles/"+profileID+"/imports?strategy=append", handlers.UploadField, []byte(uploaded))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCommitImport_TooLarge() {
	big := strings.Repeat("x", 2<<20)

	w := suite.doUpload("/api/v1/profiles/"+profileID+"/imports?strategy=replace", handlers.UploadField, []byte(big))

	suite.Equal(http.StatusRequestEntityTooLarge, w.Code)
}

// --- Tax ---

func (suite *HandlerTestSuite) TestTaxSummary() {
	summary := &portssvc.TaxSummary{
		Year:              2024,
		Regime:            domain.RegimeConfig{Primary: domain.RegimeFlatRevenue},
		Result:            domain.TaxResult{NetTax: decimal.NewFromInt(4000), LoadRatio: decimal.NewFromInt(2)},
		SafeLoadThreshold: decimal.NewFromInt(6),
	}
	suite.mockTax.On("Summary", mock.Anything, profileID, 2024, testUserID).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/profiles/"+profileID+"/tax?year=2024", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TaxSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(decimal.NewFromInt(4000).Equal(resp.Result.NetTax))
	suite.False(resp.LoadElevated)
}

func (suite *HandlerTestSuite) TestTaxSummary_InvalidYear() {
	w := suite.do(http.MethodGet, "/api/v1/profiles/"+profileID+"/tax?year=1999", nil, "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCalendar() {
	amount := decimal.NewFromInt(4000)
	obs := []calendar.Obligation{{
		Deadline: calendar.Deadline{Code: "ADVANCE_H1", Kind: calendar.KindRegimeTax, Year: 2024, Quarter: 2},
		Amount:   &amount,
	}}
	suite.mockTax.On("Calendar", mock.Anything, profileID, testUserID).Return(2024, obs, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/profiles/"+profileID+"/calendar", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CalendarResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2024, resp.Year)
	suite.Require().Len(resp.Obligations, 1)
	suite.Equal("ADVANCE_H1", resp.Obligations[0].Code)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
