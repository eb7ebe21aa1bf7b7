package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/datalab-ge/datalab-api/internal/auth"
	"github.com/datalab-ge/datalab-api/internal/cache"
	"github.com/datalab-ge/datalab-api/internal/config"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/http/handler"
	"github.com/datalab-ge/datalab-api/internal/http/middleware"
	"github.com/datalab-ge/datalab-api/internal/http/router"
	"github.com/datalab-ge/datalab-api/internal/pricing"
	"github.com/datalab-ge/datalab-api/internal/repository"
	"github.com/datalab-ge/datalab-api/internal/service"
	"github.com/datalab-ge/datalab-api/internal/storage"
	"github.com/datalab-ge/datalab-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testAPIKey = "test-admin-key"

type testServer struct {
	db      *gorm.DB
	handler http.Handler
}

func newTestServer(t *testing.T, jwtSecret string) *testServer {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	c := cache.NewMemory()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{
		App:       config.AppConfig{Name: "datalab-api", Environment: "test"},
		RateLimit: config.RateLimitConfig{Enabled: false},
	}

	tokens := auth.NewTokenIssuer(jwtSecret, "datalab-api", time.Hour)
	authMiddleware := auth.NewMiddleware(testAPIKey, tokens, logger)

	caseNumbers := service.NewCaseNumberService(repository.NewCaseSequenceRepository(db), logger)
	requests := service.NewServiceRequestService(
		repository.NewServiceRequestRepository(db),
		repository.NewStatusHistoryRepository(db),
		caseNumbers,
		c,
		logger,
	)
	contact := service.NewContactService(repository.NewContactMessageRepository(db), c, logger)
	testimonials := service.NewTestimonialService(repository.NewTestimonialRepository(db), store, c, logger)

	rt := router.NewRouter(cfg, logger, db, c, authMiddleware, middleware.NewRateLimiter(&cfg.RateLimit, logger), router.Handlers{
		ServiceRequests: handler.NewServiceRequestHandler(requests, logger),
		Contact:         handler.NewContactHandler(contact, logger),
		Testimonials:    handler.NewTestimonialHandler(testimonials, 5, logger),
		Pricing:         handler.NewPricingHandler(logger),
		Analytics:       handler.NewAnalyticsHandler(service.NewAnalyticsService(requests, testimonials, logger), logger),
		Auth:            handler.NewAuthHandler(authMiddleware, tokens, logger),
	})

	return &testServer{db: db, handler: rt.Setup()}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set("x-api-key", testAPIKey)
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func TestServiceRequestHandler_Create(t *testing.T) {
	srv := newTestServer(t, "")

	rr := srv.do(t, http.MethodPost, "/api/service-requests/", map[string]string{
		"name":                "Giorgi Kapanadze",
		"email":               "giorgi@example.ge",
		"phone":               "+995599112233",
		"device_type":         "ssd",
		"problem_description": "Laptop SSD disappeared after a firmware update",
		"urgency":             "high",
	}, false)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	resp := decode[domain.CreateServiceRequestResponse](t, rr)
	assert.True(t, resp.Success)
	assert.Regexp(t, `^DL\d{8}$`, resp.CaseID)
	assert.False(t, resp.EstimatedCompletion.IsZero())

	// the new case is immediately trackable
	rr = srv.do(t, http.MethodGet, "/api/service-requests/"+resp.CaseID, nil, false)
	require.Equal(t, http.StatusOK, rr.Code)
	record := decode[domain.CaseRecord](t, rr)
	assert.Equal(t, domain.StatusUnread, record.Status)
	assert.Equal(t, 0, record.ProgressPercentage)
}

func TestServiceRequestHandler_Create_ValidationError(t *testing.T) {
	srv := newTestServer(t, "")

	rr := srv.do(t, http.MethodPost, "/api/service-requests/", map[string]string{
		"name":        "G",
		"email":       "not-an-email",
		"device_type": "floppy",
	}, false)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	apiErr := decode[domain.APIError](t, rr)
	assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
	assert.Contains(t, apiErr.Errors, "email")
	assert.Contains(t, apiErr.Errors, "device_type")
}

func TestServiceRequestHandler_GetCase_NotFound(t *testing.T) {
	srv := newTestServer(t, "")

	rr := srv.do(t, http.MethodGet, "/api/service-requests/DL20259999", nil, false)

	require.Equal(t, http.StatusNotFound, rr.Code)
	apiErr := decode[domain.APIError](t, rr)
	assert.Equal(t, "Case not found", apiErr.Detail)
}

func TestServiceRequestHandler_GetCase_CaseInsensitive(t *testing.T) {
	srv := newTestServer(t, "")
	testutil.CreateServiceRequest(t, srv.db, "DL20250042", domain.StatusInProgress)

	rr := srv.do(t, http.MethodGet, "/api/service-requests/dl20250042", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	record := decode[domain.CaseRecord](t, rr)
	assert.Equal(t, "DL20250042", record.CaseID)
	assert.Equal(t, 50, record.ProgressPercentage)
}

func TestServiceRequestHandler_AdminRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t, "")
	sr := testutil.CreateServiceRequest(t, srv.db, "DL20250001", domain.StatusUnread)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/service-requests/"},
		{http.MethodGet, "/api/service-requests/archived"},
		{http.MethodPut, "/api/service-requests/" + sr.ID.String()},
		{http.MethodPut, "/api/service-requests/" + sr.ID.String() + "/archive"},
		{http.MethodGet, "/api/service-requests/" + sr.ID.String() + "/history"},
		{http.MethodGet, "/api/contact/"},
		{http.MethodGet, "/api/testimonials/all"},
		{http.MethodGet, "/api/analytics/metrics"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := srv.do(t, tc.method, tc.path, nil, false)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestServiceRequestHandler_InvalidAPIKey(t *testing.T) {
	srv := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/service-requests/", nil)
	req.Header.Set("x-api-key", "wrong")
	rr := httptest.NewRecorder()
	srv.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestServiceRequestHandler_ListActive(t *testing.T) {
	srv := newTestServer(t, "")
	testutil.CreateServiceRequest(t, srv.db, "DL20250001", domain.StatusUnread)
	testutil.CreateServiceRequest(t, srv.db, "DL20250002", domain.StatusArchived)

	rr := srv.do(t, http.MethodGet, "/api/service-requests/", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	active := decode[[]domain.ServiceRequestDTO](t, rr)
	require.Len(t, active, 1)
	assert.Equal(t, "DL20250001", active[0].CaseID)

	rr = srv.do(t, http.MethodGet, "/api/service-requests/archived", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	archived := decode[[]domain.ServiceRequestDTO](t, rr)
	require.Len(t, archived, 1)
	assert.Equal(t, "DL20250002", archived[0].CaseID)
}

func TestServiceRequestHandler_Update(t *testing.T) {
	srv := newTestServer(t, "")
	sr := testutil.CreateServiceRequest(t, srv.db, "DL20250001", domain.StatusUnread)

	rr := srv.do(t, http.MethodPut, "/api/service-requests/"+sr.ID.String(), map[string]interface{}{
		"status": "in_progress",
		"price":  250,
	}, true)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	dto := decode[domain.ServiceRequestDTO](t, rr)
	assert.Equal(t, domain.StatusInProgress, dto.Status)
	assert.True(t, dto.IsRead)
	require.NotNil(t, dto.StartedAt)
	require.NotNil(t, dto.Price)
	assert.InDelta(t, 250, *dto.Price, 0.001)

	rr = srv.do(t, http.MethodGet, "/api/service-requests/"+sr.ID.String()+"/history", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	history := decode[[]domain.StatusHistoryDTO](t, rr)
	require.NotEmpty(t, history)
	assert.Equal(t, domain.StatusInProgress, history[len(history)-1].ToStatus)
	assert.Equal(t, auth.APIKeySubject, history[len(history)-1].ChangedBy)
}

func TestServiceRequestHandler_Update_Errors(t *testing.T) {
	srv := newTestServer(t, "")
	sr := testutil.CreateServiceRequest(t, srv.db, "DL20250001", domain.StatusUnread)

	t.Run("empty body", func(t *testing.T) {
		rr := srv.do(t, http.MethodPut, "/api/service-requests/"+sr.ID.String(), map[string]interface{}{}, true)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("archive through update from unread", func(t *testing.T) {
		rr := srv.do(t, http.MethodPut, "/api/service-requests/"+sr.ID.String(), map[string]string{"status": "archived"}, true)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("negative price", func(t *testing.T) {
		rr := srv.do(t, http.MethodPut, "/api/service-requests/"+sr.ID.String(), map[string]interface{}{"price": -5}, true)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		rr := srv.do(t, http.MethodPut, "/api/service-requests/not-a-uuid", map[string]string{"status": "pending"}, true)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		rr := srv.do(t, http.MethodPut, "/api/service-requests/00000000-0000-0000-0000-000000000001", map[string]string{"status": "pending"}, true)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestServiceRequestHandler_Archive(t *testing.T) {
	srv := newTestServer(t, "")
	open := testutil.CreateServiceRequest(t, srv.db, "DL20250001", domain.StatusPending)
	done := testutil.CreateServiceRequest(t, srv.db, "DL20250002", domain.StatusCompleted)

	rr := srv.do(t, http.MethodPut, "/api/service-requests/"+open.ID.String()+"/archive", nil, true)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = srv.do(t, http.MethodPut, "/api/service-requests/"+done.ID.String()+"/archive", nil, true)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, domain.StatusArchived, decode[domain.ServiceRequestDTO](t, rr).Status)

	// archived is terminal
	rr = srv.do(t, http.MethodPut, "/api/service-requests/"+done.ID.String(), map[string]string{"status": "completed"}, true)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestContactHandler_Flow(t *testing.T) {
	srv := newTestServer(t, "")

	rr := srv.do(t, http.MethodPost, "/api/contact/", map[string]string{
		"name":    "Ana Lomidze",
		"email":   "ana@example.ge",
		"subject": "RAID rebuild",
		"message": "Our NAS lost two disks during a rebuild, can you help?",
	}, false)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	receipt := decode[domain.ContactMessageReceipt](t, rr)
	assert.Equal(t, service.ContactReceivedStatus, receipt.Status)

	rr = srv.do(t, http.MethodPut, "/api/contact/"+receipt.ID.String()+"/status", map[string]string{"status": "replied"}, true)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = srv.do(t, http.MethodGet, "/api/contact/stats", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	stats := decode[domain.ContactStatsDTO](t, rr)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.Replied)

	rr = srv.do(t, http.MethodPut, "/api/contact/"+receipt.ID.String()+"/status", map[string]string{"status": "spam"}, true)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTestimonialHandler_PublicListShowsActiveOnly(t *testing.T) {
	srv := newTestServer(t, "")
	testutil.CreateTestimonial(t, srv.db, "Visible", 5, true)
	testutil.CreateTestimonial(t, srv.db, "Hidden", 4, false)

	rr := srv.do(t, http.MethodGet, "/api/testimonials/", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)
	public := decode[[]domain.TestimonialDTO](t, rr)
	require.Len(t, public, 1)
	assert.Equal(t, "Visible", public[0].Name)

	rr = srv.do(t, http.MethodGet, "/api/testimonials/all", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]domain.TestimonialDTO](t, rr), 2)
}

func TestPricingHandler_Estimate(t *testing.T) {
	srv := newTestServer(t, "")

	rr := srv.do(t, http.MethodPost, "/api/price-estimate/", pricing.Selection{
		DeviceType:  "ssd",
		ProblemType: "physical",
		Urgency:     "urgent",
	}, false)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	estimate := decode[pricing.Estimate](t, rr)
	assert.Equal(t, 338, estimate.Price)
	assert.Equal(t, pricing.Currency, estimate.Currency)
}

func TestPricingHandler_Estimate_Incomplete(t *testing.T) {
	srv := newTestServer(t, "")

	rr := srv.do(t, http.MethodPost, "/api/price-estimate/", pricing.Selection{DeviceType: "hdd"}, false)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = srv.do(t, http.MethodPost, "/api/price-estimate/", pricing.Selection{
		DeviceType:  "floppy",
		ProblemType: "logical",
		Urgency:     "standard",
	}, false)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPricingHandler_Info(t *testing.T) {
	srv := newTestServer(t, "")

	rr := srv.do(t, http.MethodGet, "/api/price-estimate/pricing-info", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	info := decode[pricing.Info](t, rr)
	assert.InDelta(t, 300, info.BasePrices["raid"], 0.001)
	assert.Contains(t, info.Timeframes, "emergency")
}

func TestAuthHandler_Token(t *testing.T) {
	srv := newTestServer(t, "0123456789abcdef0123456789abcdef")

	rr := srv.do(t, http.MethodPost, "/api/auth/token", domain.TokenRequest{APIKey: "wrong"}, false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = srv.do(t, http.MethodPost, "/api/auth/token", domain.TokenRequest{APIKey: testAPIKey}, false)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	token := decode[domain.TokenResponse](t, rr)
	assert.Equal(t, "Bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)

	// the token opens admin routes
	req := httptest.NewRequest(http.MethodGet, "/api/service-requests/", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	out := httptest.NewRecorder()
	srv.handler.ServeHTTP(out, req)
	assert.Equal(t, http.StatusOK, out.Code)
}

func TestAuthHandler_Token_Disabled(t *testing.T) {
	srv := newTestServer(t, "")

	rr := srv.do(t, http.MethodPost, "/api/auth/token", domain.TokenRequest{APIKey: testAPIKey}, false)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestAnalyticsHandler(t *testing.T) {
	srv := newTestServer(t, "")
	now := time.Now().UTC()
	testutil.CreateServiceRequest(t, srv.db, "DL20250001", domain.StatusCompleted, func(sr *domain.ServiceRequest) {
		sr.Price = testutil.Ptr(200.0)
		sr.CreatedAt = now.Add(-48 * time.Hour)
		sr.StartedAt = testutil.Ptr(now.Add(-48 * time.Hour))
		sr.CompletedAt = testutil.Ptr(now.Add(-24 * time.Hour))
	})

	t.Run("metrics", func(t *testing.T) {
		rr := srv.do(t, http.MethodGet, "/api/analytics/metrics?timeframe=month", nil, true)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "month", body["timeframe"])
		metrics := body["metrics"].(map[string]interface{})
		assert.InDelta(t, 200, metrics["total_revenue"], 0.001)
		assert.InDelta(t, 1, metrics["completed_cases"], 0.001)
	})

	t.Run("invalid timeframe", func(t *testing.T) {
		rr := srv.do(t, http.MethodGet, "/api/analytics/metrics?timeframe=decade", nil, true)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("export", func(t *testing.T) {
		rr := srv.do(t, http.MethodGet, "/api/analytics/export", nil, true)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "analytics_week_")
		assert.Contains(t, rr.Body.String(), `"export_date"`)
	})
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, "")

	for _, path := range []string{"/health", "/health/db", "/health/ready"} {
		rr := srv.do(t, http.MethodGet, path, nil, false)
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}
