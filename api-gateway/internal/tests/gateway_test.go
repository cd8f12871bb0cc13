package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pavanxo/api-gateway/internal/gateway"
	"pavanxo/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_ProxiesAPI(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantURL    string
		respStatus int
		respBody   string
	}{
		{
			name:       "menu",
			method:     http.MethodGet,
			target:     "/api/menu",
			wantURL:    "http://menu-svc/api/menu",
			respStatus: http.StatusOK,
			respBody:   `[{"id":1,"name":"Pizza"}]`,
		},
		{
			name:       "popular with query",
			method:     http.MethodGet,
			target:     "/api/menu/popular?limit=3",
			wantURL:    "http://menu-svc/api/menu/popular?limit=3",
			respStatus: http.StatusOK,
			respBody:   `[]`,
		},
		{
			name:       "order validation error passes through",
			method:     http.MethodPost,
			target:     "/api/orders",
			body:       `{}`,
			wantURL:    "http://menu-svc/api/orders",
			respStatus: http.StatusBadRequest,
			respBody:   `{"message":"invalid order: items are required"}`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{MenuSvcURL: "http://menu-svc/"}, mockClient, nil)

			mockResp := &http.Response{
				StatusCode: testCase.respStatus,
				Body:       io.NopCloser(strings.NewReader(testCase.respBody)),
				Header:     http.Header{"Content-Type": []string{"application/json"}},
			}
			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == testCase.method && req.URL.String() == testCase.wantURL
			})).Return(mockResp, nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.target, strings.NewReader(testCase.body))
			rr := httptest.NewRecorder()

			gw.SetupRoutes().ServeHTTP(rr, req)

			assert.Equal(t, testCase.respStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, testCase.respBody, rr.Body.String())
		})
	}
}

func TestGateway_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{MenuSvcURL: "http://invalid"}, mockClient, nil)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.JSONEq(t, `{"message":"Menu service unavailable"}`, rr.Body.String())
}

func TestGateway_StaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Home</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.html"), []byte("<h1>Cart</h1>"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "images"), 0o755))

	gw := gateway.NewGateway(gateway.Config{StaticDir: dir}, nil, nil)
	router := gw.SetupRoutes()

	tests := []struct {
		name     string
		target   string
		wantBody string
	}{
		{name: "existing file", target: "/cart.html", wantBody: "Cart"},
		{name: "root", target: "/", wantBody: "Home"},
		{name: "unknown page falls back", target: "/order.html?order_id=3", wantBody: "Home"},
		{name: "directory falls back", target: "/images", wantBody: "Home"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, testCase.target, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), testCase.wantBody)
		})
	}
}

func TestGateway_StaticMissingIndex(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{StaticDir: t.TempDir()}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
