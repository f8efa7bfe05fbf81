package create_trip

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/middleware"
	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	createTrip "github.com/Obaraten64/TravelPlanningRestService/internal/usecase/create_trip"
	"github.com/Obaraten64/TravelPlanningRestService/pkg/token"
)

type fakeUseCase struct {
	err  error
	trip *domain.Trip
	got  *createTrip.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createTrip.Request) (*domain.Trip, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.trip, nil
}

type stubParser struct{}

func (stubParser) Parse(string) (*token.Claims, error) {
	return &token.Claims{UserID: 1, Email: "user@example.com", Role: "TRAVELER"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func do(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/travel/create", strings.NewReader(body))
	r.Header.Set("Authorization", "Bearer token")
	middleware.Auth(stubParser{})(http.HandlerFunc(h.Handle)).ServeHTTP(w, r)
	return w
}

func errorField(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func plannedTrip() *domain.Trip {
	return &domain.Trip{
		ID:          10,
		UserID:      1,
		Departure:   domain.City{ID: 1, Name: "Kiev"},
		Destination: domain.City{ID: 2, Name: "Berlin"},
		TravelTime:  time.Date(2024, 12, 12, 12, 12, 12, 0, time.UTC),
		Services:    make([]domain.Service, 0),
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{trip: plannedTrip()}

	w := do(t, uc, `{"departure":"Kiev","destination":"Berlin","travel_time":"2024-12-12T12:12:12"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var view struct {
		Departure   string `json:"departure"`
		Destination string `json:"destination"`
		TravelTime  string `json:"travel_time"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Kiev", view.Departure)
	assert.Equal(t, "Berlin", view.Destination)
	assert.Equal(t, "2024-12-12T12:12:12", view.TravelTime)

	// Список услуг опускается, пока ничего не забронировано
	assert.NotContains(t, w.Body.String(), "services")

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.UserID)
}

func TestHandle_ValidationMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing departure",
			body: `{"destination":"Berlin","travel_time":"2024-12-12T12:12:12"}`,
			want: "Write down the city of departure!",
		},
		{
			name: "missing destination",
			body: `{"departure":"Kiev","travel_time":"2024-12-12T12:12:12"}`,
			want: "Write down the destination city!",
		},
		{
			name: "missing travel time",
			body: `{"departure":"Kiev","destination":"Berlin"}`,
			want: "Choose the date and time for your travel!",
		},
		{
			name: "unparseable travel time",
			body: `{"departure":"Kiev","destination":"Berlin","travel_time":"tomorrow"}`,
			want: "Choose the date and time for your travel!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, &fakeUseCase{}, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, errorField(t, w))
		})
	}
}

func TestHandle_TripAlreadyPlanned(t *testing.T) {
	w := do(t, &fakeUseCase{err: createTrip.ErrTripAlreadyExists},
		`{"departure":"Kiev","destination":"Berlin","travel_time":"2024-12-12T12:12:12"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You have already planned your travel", errorField(t, w))
}

func TestHandle_UnknownCity(t *testing.T) {
	w := do(t, &fakeUseCase{err: createTrip.ErrUnknownCity},
		`{"departure":"Atlantis","destination":"Berlin","travel_time":"2024-12-12T12:12:12"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "We cannot pick you up from your city or deliver you to your destination", errorField(t, w))
}

func TestHandle_NoToken(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/travel/create", strings.NewReader(`{}`))
	middleware.Auth(stubParser{})(http.HandlerFunc(h.Handle)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
