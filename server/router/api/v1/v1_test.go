package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/summarify/internal/profile"
	"github.com/hrygo/summarify/store"
	"github.com/hrygo/summarify/store/db/sqlite"
)

// fakeGenerator substitutes the LLM adapter in handler tests.
type fakeGenerator struct {
	output string
	err    error
	calls  int
}

func (f *fakeGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func newTestService(t *testing.T) (*APIV1Service, *echo.Echo) {
	t.Helper()

	testProfile := &profile.Profile{
		Mode:   "dev",
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "test.db"),
		Secret: "test-secret",
	}

	driver, err := sqlite.NewDB(testProfile)
	require.NoError(t, err)

	storeInstance := store.New(driver, testProfile)
	require.NoError(t, storeInstance.Migrate(context.Background()))
	t.Cleanup(func() {
		_ = storeInstance.Close()
	})

	service := NewAPIV1Service(testProfile.Secret, testProfile, storeInstance, &fakeGenerator{})
	e := echo.New()
	service.RegisterRoutes(e)

	return service, e
}

func performRequest(e *echo.Echo, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// registerAndLogin creates an account through the registration endpoint and
// returns an access token obtained through the token endpoint.
func registerAndLogin(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec := performRequest(e, http.MethodPost, "/user-registration/", map[string]string{
		"email":    "testuser@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = performRequest(e, http.MethodPost, "/token/", map[string]string{
		"username": "testuser@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	token, ok := body["access"].(string)
	require.True(t, ok, "token response should contain access token")
	return token
}

func listRecords(t *testing.T, s *APIV1Service) []*store.GenerationRecord {
	t.Helper()
	records, err := s.Store.ListGenerationRecords(context.Background(), &store.FindGenerationRecord{})
	require.NoError(t, err)
	return records
}
