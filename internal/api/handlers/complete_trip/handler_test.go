package complete_trip

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/middleware"
	"github.com/Obaraten64/TravelPlanningRestService/pkg/token"
)

type fakeTripsService struct {
	completed bool
	err       error
}

func (f *fakeTripsService) Complete(context.Context, int64) (bool, error) {
	return f.completed, f.err
}

type stubParser struct{}

func (stubParser) Parse(string) (*token.Claims, error) {
	return &token.Claims{UserID: 1, Email: "user@example.com", Role: "TRAVELER"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func do(t *testing.T, svc *fakeTripsService) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, nopLogger{})
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/travel/complete", nil)
	r.Header.Set("Authorization", "Bearer token")
	middleware.Auth(stubParser{})(http.HandlerFunc(h.Handle)).ServeHTTP(w, r)
	return w
}

func TestHandle_Completed(t *testing.T) {
	w := do(t, &fakeTripsService{completed: true})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "What a beautiful trip", body["message"])
}

func TestHandle_NoPlannedTrip(t *testing.T) {
	w := do(t, &fakeTripsService{completed: false})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "You haven't planned a travel", body["error"])
}

func TestHandle_InternalError(t *testing.T) {
	w := do(t, &fakeTripsService{err: errors.New("db down")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
