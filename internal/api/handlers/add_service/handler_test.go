package add_service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	"github.com/Obaraten64/TravelPlanningRestService/internal/service/catalog"
)

type fakeCatalogService struct {
	svc *domain.Service
	err error
}

func (f *fakeCatalogService) Add(context.Context, string, string) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.svc, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func do(t *testing.T, svc *fakeCatalogService, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, nopLogger{})
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/services/add", strings.NewReader(body))
	h.Handle(w, r)
	return w
}

func errorField(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeCatalogService{svc: &domain.Service{ID: 1, Name: "Museum tour", CityID: 2, CityName: "Berlin"}}

	w := do(t, svc, `{"name":"Museum tour","city":"Berlin"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var view struct {
		Name string `json:"name"`
		City string `json:"city"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Museum tour", view.Name)
	assert.Equal(t, "Berlin", view.City)
}

func TestHandle_ValidationMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing service name",
			body: `{"city":"Berlin"}`,
			want: "Write down the name of service!",
		},
		{
			name: "missing city",
			body: `{"name":"Museum tour"}`,
			want: "Write down the name of the city where the service is located",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, &fakeCatalogService{}, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, errorField(t, w))
		})
	}
}

func TestHandle_ServiceAlreadyExists(t *testing.T) {
	w := do(t, &fakeCatalogService{err: catalog.ErrServiceAlreadyExists}, `{"name":"Museum tour","city":"Berlin"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "The service already exists", errorField(t, w))
}

func TestHandle_InternalError(t *testing.T) {
	w := do(t, &fakeCatalogService{err: catalog.ErrInternal}, `{"name":"Museum tour","city":"Berlin"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
