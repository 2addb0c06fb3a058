package testutil

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"objectviewer/internal/authentication"
	"objectviewer/internal/config"
	"objectviewer/internal/middlewares"
	"objectviewer/internal/mocks"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for testing
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockSession    *mocks.MockWebSessionProvider
	MockOIDC       *mocks.MockOIDCProvider
	MockStorage    *mocks.MockStorageProvider
	LogHandler     *TestLogHandler
}

// NewTestContext creates a test setup without a request, for code that only
// needs the AppContext as a context.Context.
func NewTestContext(t *testing.T) *TestContext {
	tc := NewTestContextWithURL(t, http.MethodGet, "/")
	tc.AppContext.Context = context.Background()
	return tc
}

// NewTestContextWithURL creates a complete test setup with sensible defaults
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	return newTestContext(t, httptest.NewRequest(method, url, nil))
}

// NewTestContextWithBody is NewTestContextWithURL with a JSON request body.
func NewTestContextWithBody(t *testing.T, method, url, body string) *TestContext {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return newTestContext(t, req)
}

func newTestContext(t *testing.T, req *http.Request) *TestContext {
	cfg := &config.Config{
		Sessions:    config.DefaultSessionConfig,
		Breadcrumbs: config.DefaultBreadcrumbsConfig,
	}

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockSession := mocks.NewMockWebSessionProvider(ctrl)
	mockOIDC := mocks.NewMockOIDCProvider(ctrl)
	mockStorage := mocks.NewMockStorageProvider(ctrl)

	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:      req.Context(),
		Config:       cfg,
		Logger:       logger,
		WebSession:   mockSession,
		OIDCProvider: mockOIDC,
		Storage:      mockStorage,
		Request:      req,
		Response:     rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Request:        req,
		Response:       rr,
		MockController: ctrl,
		MockSession:    mockSession,
		MockOIDC:       mockOIDC,
		MockStorage:    mockStorage,
		LogHandler:     logHandler,
	}
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	t.Helper()
	count := tc.LogHandler.CountByLevel(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}

func (tc *TestContext) GetLogRecords() []TestLogRecord {
	return tc.LogHandler.GetRecords()
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

func (tc *TestContext) AssertLocationHeader(t *testing.T, expected string) {
	t.Helper()
	if location := tc.Response.Header().Get("Location"); location != expected {
		t.Errorf("Expected Location %q, got %q", expected, location)
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// GetJSONResponseArray parses the response body as a JSON array
func (tc *TestContext) GetJSONResponseArray(t *testing.T) []interface{} {
	t.Helper()
	var response []interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON array response: %v", err)
	}
	return response
}

func (tc *TestContext) AssertJSONBool(t *testing.T, field string, expected bool) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualBool, ok := actual.(bool)
	if !ok {
		t.Errorf("Expected %s to be a boolean, got %T", field, actual)
		return
	}

	if actualBool != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, actualBool)
	}
}

// AssertJSONString checks a specific string field in a JSON response
func (tc *TestContext) AssertJSONString(t *testing.T, field string, expected string) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualString, ok := actual.(string)
	if !ok {
		t.Errorf("Expected %s to be a string, got %T", field, actual)
		return
	}

	if actualString != expected {
		t.Errorf("Expected %s to be %q, got %q", field, expected, actualString)
	}
}

// AssertJSONStrings checks a field holding an array of strings.
func (tc *TestContext) AssertJSONStrings(t *testing.T, field string, expected []string) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, ok := response[field].([]interface{})
	if !ok {
		t.Errorf("Expected %s to be an array, got %T", field, response[field])
		return
	}

	if len(actual) != len(expected) {
		t.Errorf("Expected %s to have %d entries, got %d", field, len(expected), len(actual))
		return
	}

	for i, v := range actual {
		if v != expected[i] {
			t.Errorf("Expected %s[%d] to be %q, got %v", field, i, expected[i], v)
		}
	}
}

// AssertJSONObject validates an object field with expected key-value pairs
func (tc *TestContext) AssertJSONObject(t *testing.T, field string, expectedFields map[string]interface{}) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualObj, ok := actual.(map[string]interface{})
	if !ok {
		t.Errorf("Expected %s to be an object, got %T", field, actual)
		return
	}

	for key, expectedValue := range expectedFields {
		if actualValue, keyExists := actualObj[key]; !keyExists {
			t.Errorf("Expected field %s.%s to exist", field, key)
		} else if actualValue != expectedValue {
			t.Errorf("Expected %s.%s to be %v, got %v", field, key, expectedValue, actualValue)
		}
	}
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithoutOIDC clears the OIDC provider, as when OIDC is not configured.
func (tc *TestContext) WithoutOIDC() *TestContext {
	tc.AppContext.OIDCProvider = nil
	return tc
}

// WithoutStorage clears the storage provider, as when storage is disabled.
func (tc *TestContext) WithoutStorage() *TestContext {
	tc.AppContext.Storage = nil
	return tc
}

func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Set(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// WithURLParam sets a chi route parameter on the request.
func (tc *TestContext) WithURLParam(key, value string) *TestContext {
	rctx := chi.RouteContext(tc.Request.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
		tc.Request = tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx))
		tc.AppContext.Request = tc.Request
		tc.AppContext.Context = tc.Request.Context()
	}
	rctx.URLParams.Add(key, value)
	return tc
}

// WithBody replaces the request body.
func (tc *TestContext) WithBody(body string) *TestContext {
	tc.Request.Body = io.NopCloser(strings.NewReader(body))
	tc.Request.ContentLength = int64(len(body))
	return tc
}

func (tc *TestContext) ExpectSignedIn(result bool) *gomock.Call {
	return tc.MockSession.EXPECT().IsSignedIn(tc.AppContext).Return(result)
}

func (tc *TestContext) ExpectAuthenticationSession(session *authentication.Session) *gomock.Call {
	return tc.MockSession.EXPECT().AuthenticationSession(tc.AppContext).Return(session)
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

// AssertJSONField checks a specific field in a JSON response
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

func (tc *TestContext) AssertLogsContainMessage(t *testing.T, level slog.Level, message string) {
	t.Helper()
	tc.AssertLogContains(t, level, message)
}
