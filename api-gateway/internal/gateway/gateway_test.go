package gateway_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feastly/api-gateway/internal/gateway"
	"feastly/api-gateway/internal/mocks"
	"feastly/logger"
)

var testConfig = gateway.Config{
	OrderSvcURL: "http://order-svc",
	StatsSvcURL: "http://stats-svc",
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, logger.Discard())

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_Routing(t *testing.T) {
	testCases := []struct {
		name    string
		method  string
		path    string
		wantURL string
	}{
		{"order create", http.MethodPost, "/api/orders", "http://order-svc/orders"},
		{"order status", http.MethodPatch, "/api/orders/o-1/status", "http://order-svc/orders/o-1/status"},
		{"restaurants", http.MethodGet, "/api/restaurants", "http://order-svc/restaurants"},
		{"restaurant menu", http.MethodGet, "/api/restaurants/r-1/menu", "http://order-svc/restaurants/r-1/menu"},
		{"webhook", http.MethodPost, "/api/payments/webhook", "http://order-svc/payments/webhook"},
		{"query kept", http.MethodGet, "/api/menu-items?restaurant_id=r-1", "http://order-svc/menu-items?restaurant_id=r-1"},
		{"restaurant stats", http.MethodGet, "/api/restaurants/r-1/stats", "http://stats-svc/api/restaurants/r-1/stats"},
		{"today stats", http.MethodGet, "/api/stats/today", "http://stats-svc/api/stats/today"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			client := mocks.NewHTTPClient(t)
			client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == testCase.method && req.URL.String() == testCase.wantURL
			})).Return(okResponse(`{"ok":true}`), nil).Once()

			gw := gateway.NewGateway(testConfig, client, logger.Discard())
			req := httptest.NewRequest(testCase.method, testCase.path, strings.NewReader(`{}`))
			rr := httptest.NewRecorder()

			gw.SetupRoutes().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestGateway_ForwardsHeadersAndRequestID(t *testing.T) {
	client := mocks.NewHTTPClient(t)
	client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("X-Paystack-Signature") == "sig" && req.Header.Get("X-Request-ID") == "req-7"
	})).Return(&http.Response{
		StatusCode: http.StatusUnauthorized,
		Body:       io.NopCloser(strings.NewReader(`{"message":"Invalid signature"}`)),
		Header:     make(http.Header),
	}, nil).Once()

	gw := gateway.NewGateway(testConfig, client, logger.Discard())
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(`{}`))
	req.Header.Set("X-Paystack-Signature", "sig")
	req.Header.Set("X-Request-ID", "req-7")
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "req-7", rr.Header().Get("X-Request-ID"))
	assert.Contains(t, rr.Body.String(), "Invalid signature")
}

func TestGateway_ProxyError(t *testing.T) {
	client := mocks.NewHTTPClient(t)
	client.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	gw := gateway.NewGateway(testConfig, client, logger.Discard())
	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/restaurants", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.JSONEq(t, `{"message":"Upstream service unavailable"}`, rr.Body.String())
}

func TestGateway_UnknownRoute(t *testing.T) {
	client := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, client, logger.Discard())

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/index.html", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	client.AssertNotCalled(t, "Do", mock.Anything)
}

func TestGateway_UpstreamServer(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"Order placed successfully"}`))
	}))
	defer upstream.Close()

	gw := gateway.NewGateway(gateway.Config{OrderSvcURL: upstream.URL}, gateway.NewTracedClient(), logger.Discard())
	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/orders", gotPath)
}
