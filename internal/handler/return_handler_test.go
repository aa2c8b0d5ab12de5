package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbook/internal/domain"
	"gstbook/internal/middleware"
	"gstbook/internal/service"
	"gstbook/mocks"
)

const testGSTIN = "29ABCDE1234F1Z5"

var testPeriod = domain.ReturnPeriod{Month: 4, Year: 2025}

func setupRouter(svc service.ReturnService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// Inject auth context directly; token verification has its own tests.
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyGSTIN, testGSTIN)
		c.Set(middleware.ContextKeyLegalName, "Acme Traders")
		c.Set(middleware.ContextKeyNotifyEmail, "accounts@acme.example")
		c.Next()
	})

	h := NewReturnHandler(svc)
	r.POST("/returns", h.Open)
	r.GET("/returns", h.List)
	r.GET("/returns/:period", h.Get)
	r.PATCH("/returns/:period", h.Update)
	r.GET("/returns/:period/totals", h.Totals)
	r.POST("/returns/:period/preview", h.Preview)
	r.POST("/returns/:period/submit", h.Submit)
	r.GET("/returns/:period/export", h.Export)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOpenReturn(t *testing.T) {
	svc := new(mocks.MockReturnService)
	doc := domain.NewReturnDocument(testGSTIN, "Acme Traders", "", testPeriod)
	svc.On("Open", mock.Anything, mock.MatchedBy(func(in *service.OpenReturnInput) bool {
		return in.GSTIN == testGSTIN && in.Period == testPeriod
	})).Return(doc, nil)

	w := doRequest(setupRouter(svc), http.MethodPost, "/returns", `{"period":"042025"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestOpenReturnBadPeriod(t *testing.T) {
	svc := new(mocks.MockReturnService)

	w := doRequest(setupRouter(svc), http.MethodPost, "/returns", `{"period":"132025"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
}

func TestUpdateDecodesTypedCommand(t *testing.T) {
	svc := new(mocks.MockReturnService)
	doc := domain.NewReturnDocument(testGSTIN, "Acme Traders", "", testPeriod)
	svc.On("ApplyUpdate", mock.Anything, testGSTIN, testPeriod, mock.MatchedBy(func(u domain.Update) bool {
		cmd, ok := u.(domain.SetOutwardSupply)
		return ok && cmd.Slot == domain.OutwardTaxable && cmd.Entry.IGST.String() == "18000"
	})).Return(doc, nil)

	body := `{"section":"outward_supplies","slot":"taxable","entry":{"taxable_value":100000,"igst":18000}}`
	w := doRequest(setupRouter(svc), http.MethodPatch, "/returns/042025", body)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestUpdateLenientOnBadNumbers(t *testing.T) {
	svc := new(mocks.MockReturnService)
	doc := domain.NewReturnDocument(testGSTIN, "Acme Traders", "", testPeriod)
	svc.On("ApplyUpdate", mock.Anything, testGSTIN, testPeriod, mock.MatchedBy(func(u domain.Update) bool {
		cmd, ok := u.(domain.SetOutwardSupply)
		return ok && cmd.Entry.IGST.IsZero()
	})).Return(doc, nil)

	// Garbage numeric input coerces to zero instead of failing.
	body := `{"section":"outward_supplies","slot":"taxable","entry":{"igst":"not a number"}}`
	w := doRequest(setupRouter(svc), http.MethodPatch, "/returns/042025", body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateUnknownSection(t *testing.T) {
	svc := new(mocks.MockReturnService)

	body := `{"section":"no_such_section","entry":{}}`
	w := doRequest(setupRouter(svc), http.MethodPatch, "/returns/042025", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNKNOWN_SECTION", resp.Error.Code)
}

func TestUpdateUnknownSlot(t *testing.T) {
	svc := new(mocks.MockReturnService)
	svc.On("ApplyUpdate", mock.Anything, testGSTIN, testPeriod, mock.Anything).Return(nil, domain.ErrUnknownSlot)

	body := `{"section":"outward_supplies","slot":"bogus","entry":{}}`
	w := doRequest(setupRouter(svc), http.MethodPatch, "/returns/042025", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSubmittedConflict(t *testing.T) {
	svc := new(mocks.MockReturnService)
	svc.On("ApplyUpdate", mock.Anything, testGSTIN, testPeriod, mock.Anything).Return(nil, domain.ErrReturnSubmitted)

	body := `{"section":"verification","entry":{"signatory_name":"X"}}`
	w := doRequest(setupRouter(svc), http.MethodPatch, "/returns/042025", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmit(t *testing.T) {
	svc := new(mocks.MockReturnService)
	svc.On("Submit", mock.Anything, mock.MatchedBy(func(in *service.SubmitInput) bool {
		return in.GSTIN == testGSTIN &&
			in.ConfirmedLiability.String() == "18000" &&
			in.NotifyEmail == "accounts@acme.example"
	})).Return(&service.SubmissionResult{ARN: "AB20250520123456", AckDate: "2025-05-20", Status: domain.StatusSubmitted}, nil)

	w := doRequest(setupRouter(svc), http.MethodPost, "/returns/042025/submit", `{"confirmed_liability":18000}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AB20250520123456")
}

func TestSubmitConfirmationMismatch(t *testing.T) {
	svc := new(mocks.MockReturnService)
	svc.On("Submit", mock.Anything, mock.Anything).Return(nil, domain.ErrConfirmationMismatch)

	w := doRequest(setupRouter(svc), http.MethodPost, "/returns/042025/submit", `{"confirmed_liability":1}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmitValidationFailed(t *testing.T) {
	svc := new(mocks.MockReturnService)
	svc.On("Submit", mock.Anything, mock.Anything).Return(nil, domain.ErrValidationFailed)

	w := doRequest(setupRouter(svc), http.MethodPost, "/returns/042025/submit", `{"confirmed_liability":0}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetNotFound(t *testing.T) {
	svc := new(mocks.MockReturnService)
	svc.On("Get", mock.Anything, testGSTIN, testPeriod).Return(nil, domain.ErrReturnNotFound)

	w := doRequest(setupRouter(svc), http.MethodGet, "/returns/042025", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportStreamsWorkbook(t *testing.T) {
	svc := new(mocks.MockReturnService)
	doc := domain.NewReturnDocument(testGSTIN, "Acme Traders", "", testPeriod)
	svc.On("Get", mock.Anything, testGSTIN, testPeriod).Return(doc, nil)

	w := doRequest(setupRouter(svc), http.MethodGet, "/returns/042025/export", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "gstr3b_29ABCDE1234F1Z5_042025.xlsx")
	assert.NotZero(t, w.Body.Len())
}
