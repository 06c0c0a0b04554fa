package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HexHarvest_Go/internal/domain"
	"github.com/osse101/HexHarvest_Go/internal/harvester"
)

type stubPool struct{ err error }

func (p stubPool) Ping(context.Context) error { return p.err }
func (stubPool) Close()                       {}

// stubHarvesterService answers every call with a harvester carrying the requested id
type stubHarvesterService struct{}

func (stubHarvesterService) Grant(_ context.Context, ownerID, itemID string) (*domain.Harvester, error) {
	return &domain.Harvester{ID: "granted", OwnerID: ownerID, ItemID: itemID}, nil
}

func (stubHarvesterService) Deploy(_ context.Context, id, _ string) (*domain.DeployResult, error) {
	return &domain.DeployResult{Harvester: &domain.Harvester{ID: id}}, nil
}

func (stubHarvesterService) TransferEnergy(_ context.Context, id string, _ harvester.TransferRequest) (*domain.Harvester, error) {
	return &domain.Harvester{ID: id}, nil
}

func (stubHarvesterService) Collect(_ context.Context, _, id string) (*domain.CollectResult, error) {
	return &domain.CollectResult{HarvesterID: id, Credited: map[string]int{}}, nil
}

func (stubHarvesterService) Reclaim(_ context.Context, id string) (*domain.ReclaimResult, error) {
	return &domain.ReclaimResult{Harvester: &domain.Harvester{ID: id}}, nil
}

func (stubHarvesterService) GetHarvester(_ context.Context, id string) (*domain.Harvester, error) {
	return &domain.Harvester{ID: id}, nil
}

func (stubHarvesterService) ListHarvesters(context.Context, string) ([]domain.Harvester, error) {
	return []domain.Harvester{{ID: "h-1"}}, nil
}

func (stubHarvesterService) GetStatus(_ context.Context, id string) (*domain.HarvesterStatus, error) {
	return &domain.HarvesterStatus{Harvester: &domain.Harvester{ID: id}}, nil
}

const testAPIKey = "test-key"

func TestRouter_Routes(t *testing.T) {
	router := NewRouter(Options{APIKey: testAPIKey}, stubPool{}, stubHarvesterService{})

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK, `"status":"ok"`},
		{http.MethodGet, "/readyz", "", http.StatusOK, `"status":"ok"`},
		{http.MethodGet, "/version", "", http.StatusOK, `"go_version"`},
		{http.MethodPost, "/api/v1/harvesters", `{"owner_id":"u1","item_id":"basic-harvester"}`, http.StatusCreated, `"id":"granted"`},
		{http.MethodGet, "/api/v1/harvesters/h-9", "", http.StatusOK, `"id":"h-9"`},
		{http.MethodPost, "/api/v1/harvesters/h-9/deploy", `{"cell_id":"8928308280fffff"}`, http.StatusOK, `"id":"h-9"`},
		{http.MethodPost, "/api/v1/harvesters/h-9/energy", `{"amount":5,"energy_resource_id":"coal"}`, http.StatusOK, `"id":"h-9"`},
		{http.MethodPost, "/api/v1/harvesters/h-9/collect", `{"owner_id":"u1"}`, http.StatusOK, `"harvester_id":"h-9"`},
		{http.MethodPost, "/api/v1/harvesters/h-9/reclaim", "", http.StatusOK, `"id":"h-9"`},
		{http.MethodGet, "/api/v1/users/u1/harvesters", "", http.StatusOK, `"id":"h-1"`},
		{http.MethodDelete, "/api/v1/harvesters/h-9", "", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set(HeaderAPIKey, testAPIKey)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	router := NewRouter(Options{APIKey: testAPIKey}, stubPool{}, stubHarvesterService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/harvesters", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ReadyzReportsDatabaseDown(t *testing.T) {
	router := NewRouter(Options{APIKey: testAPIKey}, stubPool{err: assert.AnError}, stubHarvesterService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := loggingMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/harvesters/h-1", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, LogMsgRequestHeaders)
	assert.Contains(t, out, "request_id=")
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
}

func TestLoggingMiddleware_SkipsPolledPaths(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Empty(t, buf.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := NewRouter(Options{APIKey: testAPIKey, CORSAllowedOrigins: []string{"https://map.example.com"}}, stubPool{}, stubHarvesterService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/harvesters/h-1/energy", nil)
	req.Header.Set("Origin", "https://map.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://map.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimited(t *testing.T) {
	limiter, err := NewClientRateLimiter(0.001, 1, 16)
	require.NoError(t, err)
	router := NewRouter(Options{APIKey: testAPIKey, RateLimiter: limiter}, stubPool{}, stubHarvesterService{})

	codes := make([]int, 0, 2)
	for range 2 {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/harvesters/h-1", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_SwaggerDocIsPublic(t *testing.T) {
	router := NewRouter(Options{APIKey: testAPIKey}, stubPool{}, stubHarvesterService{})

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Contains(t, doc.Paths, "/harvesters/{id}/energy")
	assert.Contains(t, doc.Paths, "/harvesters/{id}/deploy")
}
