package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/recruit-ops/internal/api/http/handlers"
	"github.com/spec-kit/recruit-ops/internal/auth"
	"github.com/spec-kit/recruit-ops/internal/config"
	"github.com/spec-kit/recruit-ops/internal/events"
	"github.com/spec-kit/recruit-ops/internal/observability"
	"github.com/spec-kit/recruit-ops/internal/persistence"
	"github.com/spec-kit/recruit-ops/internal/ratelimit"
	"github.com/spec-kit/recruit-ops/internal/repository"
	"github.com/spec-kit/recruit-ops/internal/service"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct-horse"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	metrics, err := observability.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	dispatcher := events.NewInMemoryDispatcher()

	users := repository.NewMemoryUserRepository()
	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 15, BcryptCost: bcrypt.MinCost}}
	authService := service.NewAuthService(cfg, service.AuthDependencies{UserRepo: users, Logger: logger})
	_, err = authService.EnsureAdmin(context.Background(), "Admin", testAdminEmail, testAdminPassword)
	require.NoError(t, err)

	hr := service.NewHROperationsService(service.HROperationsDependencies{
		Store:      repository.NewMemoryHRStore(repository.SeedDataset(time.Now().UTC())),
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	postingRepo := repository.NewMemoryJobPostingRepository(repository.SeedJobPostings()...)
	postings := service.NewJobPostingService(service.JobPostingDependencies{Repo: postingRepo, Dispatcher: dispatcher, Logger: logger})
	applications := service.NewJobApplicationService(service.JobApplicationDependencies{
		Repo:       repository.NewMemoryJobApplicationRepository(),
		Postings:   postingRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	bench := service.NewBenchService(repository.NewMemoryBenchRepository(), logger)

	app := NewApp("recruit-ops")
	RegisterMiddlewares(app, logger, metrics, 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:          handlers.NewHealthHandler("recruit-ops", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Auth:            handlers.NewAuthHandler(authService),
		Dashboard:       handlers.NewDashboardHandler(hr),
		HR:              handlers.NewHRHandler(hr),
		Facilities:      handlers.NewFacilityHandler(hr),
		JobPostings:     handlers.NewJobPostingHandler(postings),
		Bench:           handlers.NewBenchHandler(bench),
		JobApplications: handlers.NewJobApplicationHandler(applications),
		Tools:           handlers.NewToolsHandler(),
		AuthMiddleware:  auth.NewAuthMiddleware(authService.TokenManager(), users),
		SubmitLimiter:   RateLimit(ratelimit.NewLocal(0, 1), metrics, logger),
		Metrics:         metrics.Handler(),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != fiber.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp.StatusCode, env
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, env := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"email": testAdminEmail, "password": testAdminPassword,
	})
	require.Equal(t, fiber.StatusOK, status)
	var data struct {
		Auth struct {
			Token string `json:"token"`
		} `json:"auth"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Auth.Token)
	return data.Auth.Token
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health/live", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	var body struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ready", body.Status)
	assert.Equal(t, "disabled", body.Dependencies["postgres"])

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthRoutes(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", map[string]string{
		"email": testAdminEmail, "password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	token := login(t, app)
	status, env = doJSON(t, app, fiber.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), testAdminEmail)
	assert.NotContains(t, string(env.Data), "password")

	status, _ = doJSON(t, app, fiber.MethodPut, "/api/auth/password", token, map[string]string{
		"currentPassword": testAdminPassword, "newPassword": "battery-staple",
	})
	assert.Equal(t, fiber.StatusNoContent, status)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodPut, "/api/positions/1/status", "", map[string]string{"status": "FILLED"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	token := login(t, app)
	status, env = doJSON(t, app, fiber.MethodPut, "/api/positions/1/status", token, map[string]string{"status": "FILLED"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"status":"FILLED"`)

	status, env = doJSON(t, app, fiber.MethodPut, "/api/positions/1/status", token, map[string]string{"status": "ARCHIVED"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	status, env = doJSON(t, app, fiber.MethodPut, "/api/positions/99/status", token, map[string]string{"status": "OPEN"})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestApplicationAndHireFlow(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	status, env := doJSON(t, app, fiber.MethodPost, "/api/applications", "", map[string]any{
		"name": "Priya Patel", "email": "priya@example.com", "positionApplied": "Data Analyst",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, string(env.Data), `"title":"Data Analyst Application"`)

	status, env = doJSON(t, app, fiber.MethodPost, "/api/applications", "", map[string]any{"name": "No Email"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	status, env = doJSON(t, app, fiber.MethodPost, "/api/applications/1/hire", token, nil)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, string(env.Data), `"status":"IN_PROGRESS"`)

	status, env = doJSON(t, app, fiber.MethodPost, "/api/applications/1/hire", token, nil)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	status, _ = doJSON(t, app, fiber.MethodPut, "/api/onboarding/1/tasks/9", token, map[string]bool{"completed": true})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env = doJSON(t, app, fiber.MethodGet, "/api/dashboard/activity?limit=1", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), "New hire onboarding started")
}

func TestDepartmentRoutes(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	status, env := doJSON(t, app, fiber.MethodPut, "/api/departments/Human%20Resources/head", token, map[string]string{"head": "Grace Lee"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"head":"Grace Lee"`)

	status, env = doJSON(t, app, fiber.MethodPost, "/api/departments/Technology/refresh", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"recruiterCount":2`)

	status, _ = doJSON(t, app, fiber.MethodPost, "/api/departments/Legal/refresh", token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestFacilityRoutes(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	status, _ := doJSON(t, app, fiber.MethodPut, "/api/rooms/2/status", "", map[string]string{"status": "CLEAN"})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, env := doJSON(t, app, fiber.MethodPut, "/api/rooms/2/status", token, map[string]string{"status": "CLEAN"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"status":"CLEAN"`)

	status, _ = doJSON(t, app, fiber.MethodPut, "/api/rooms/99/status", token, map[string]string{"status": "CLEAN"})
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = doJSON(t, app, fiber.MethodPut, "/api/rooms/2/status", token, map[string]string{"status": "SPARKLING"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = doJSON(t, app, fiber.MethodPut, "/api/requests/1/status", token, map[string]string{"status": "COMPLETED"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"status":"COMPLETED"`)

	status, _ = doJSON(t, app, fiber.MethodPut, "/api/inventory/3/quantity", token, map[string]int{"quantity": -5})
	assert.Equal(t, fiber.StatusBadRequest, status)
	status, _ = doJSON(t, app, fiber.MethodPut, "/api/inventory/3/quantity", token, map[string]string{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	status, env = doJSON(t, app, fiber.MethodPut, "/api/inventory/3/quantity", token, map[string]int{"quantity": 60})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"quantity":60`)

	status, env = doJSON(t, app, fiber.MethodGet, "/api/inventory?lowStock=true", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))

	status, env = doJSON(t, app, fiber.MethodGet, "/api/dashboard/rooms", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	var rooms []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &rooms))
	assert.Len(t, rooms, 4)

	status, env = doJSON(t, app, fiber.MethodGet, "/api/dashboard/requests", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"Leaky faucet"`)

	status, env = doJSON(t, app, fiber.MethodGet, "/api/dashboard/performance", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"Sales":95`)

	status, env = doJSON(t, app, fiber.MethodGet, "/api/dashboard/stats", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"pendingRequests":1`)
	assert.Contains(t, string(env.Data), `"lowStockItems":0`)

	status, env = doJSON(t, app, fiber.MethodGet, "/api/dashboard/activity?limit=1", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `Coffee Beans quantity set to 60`)
}

func TestToolsRoutes(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodPost, "/api/tools/cost-per-hire", "", map[string]any{
		"externalCosts": 900, "internalCosts": 100, "hires": 4,
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"totalCosts":1000,"costPerHire":250}`, string(env.Data))

	status, env = doJSON(t, app, fiber.MethodPost, "/api/tools/cost-per-hire", "", map[string]any{"hires": 0})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "hires", env.Error.Details["field"])

	status, _ = doJSON(t, app, fiber.MethodPost, "/api/tools/horoscope", "", map[string]any{})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env = doJSON(t, app, fiber.MethodGet, "/api/tools", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), "fmla-eligibility")
}

func TestPublicJobsAndPostings(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	status, env := doJSON(t, app, fiber.MethodPost, "/api/job-postings", token, map[string]any{
		"title": "Data Engineer", "department": "Technology", "description": "Pipelines",
		"requirements": "SQL", "experience": "3 years", "location": "Remote",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, string(env.Data), `"status":"draft"`)

	status, env = doJSON(t, app, fiber.MethodGet, "/api/public-jobs", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	var jobs []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &jobs))
	assert.Len(t, jobs, 4)

	status, env = doJSON(t, app, fiber.MethodPost, "/api/job-postings", token, map[string]any{"title": "Incomplete"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Missing required field: department", env.Error.Message)
}

func newMultipart(t *testing.T, fields map[string]string, fileField, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestJobApplicationSubmitIsRateLimited(t *testing.T) {
	app := newTestApp(t)
	fields := map[string]string{
		"jobId": "1", "fullName": "Sam Rivera", "email": "sam@example.com", "phone": "5551234567",
	}

	body, contentType := newMultipart(t, fields, "", "", "")
	req := httptest.NewRequest(fiber.MethodPost, "/api/job-application", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, contentType = newMultipart(t, fields, "", "", "")
	req = httptest.NewRequest(fiber.MethodPost, "/api/job-application", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))
}

func TestBenchUploadAndExport(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	csv := "Name,Title,Experience,Skills,Monthly Rate\nAsha Rao,Go Developer,5 years,Go;Kafka,\n,Missing Name,1 year,,\n"
	body, contentType := newMultipart(t, nil, "file", "bench.csv", csv)
	req := httptest.NewRequest(fiber.MethodPost, "/api/bench-list/upload", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var result service.ImportResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)

	body, contentType = newMultipart(t, nil, "file", "bench.txt", "x")
	req = httptest.NewRequest(fiber.MethodPost, "/api/bench-list/upload", body)
	req.Header.Set(fiber.HeaderContentType, contentType)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	status, listEnv := doJSON(t, app, fiber.MethodGet, "/api/bench-list", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(listEnv.Data), `"monthly_rate":"On Request"`)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/api/bench-list/export", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), "application/vnd.openxmlformats"))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "bench-list.xlsx")
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestFormSubmissionsKeepStoredValues(t *testing.T) {
	app := newTestApp(t)

	status := postForm(t, app, "/api/applications", url.Values{
		"name":            {"Alice Walker"},
		"email":           {"alice@example.com"},
		"positionApplied": {"Data Analyst"},
	})
	require.Equal(t, fiber.StatusCreated, status)

	for i := 0; i < 5; i++ {
		status = postForm(t, app, "/api/applications", url.Values{
			"name":            {fmt.Sprintf("Xavier Number %d", i)},
			"email":           {fmt.Sprintf("xavier%d@example.org", i)},
			"positionApplied": {"Warehouse Operative"},
		})
		require.Equal(t, fiber.StatusCreated, status)
	}

	status, env := doJSON(t, app, fiber.MethodGet, "/api/candidates/8", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	var candidate struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		PositionApplied string `json:"positionApplied"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &candidate))
	assert.Equal(t, "Alice Walker", candidate.Name)
	assert.Equal(t, "alice@example.com", candidate.Email)
	assert.Equal(t, "Data Analyst", candidate.PositionApplied)
}

func TestErrorMetricsUseRoutePatterns(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 5; i++ {
		status, _ := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/candidates/%d", 100+i), "", nil)
		require.Equal(t, fiber.StatusNotFound, status)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, fmt.Sprintf("/random-%d", i), nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `http_errors_total{code="NOT_FOUND",method="GET",path="/api/candidates/:id"} 5`)
	assert.Contains(t, body, `http_errors_total{code="NOT_FOUND",method="GET",path="unmatched"} 5`)
	assert.NotContains(t, body, "random-")
}
