package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

func sampleTrip(services ...domain.Service) *domain.Trip {
	if services == nil {
		services = make([]domain.Service, 0)
	}
	return &domain.Trip{
		ID:          10,
		UserID:      1,
		Departure:   domain.City{ID: 1, Name: "Kiev"},
		Destination: domain.City{ID: 2, Name: "Berlin"},
		TravelTime:  time.Date(2024, 12, 12, 12, 12, 12, 0, time.UTC),
		Services:    services,
	}
}

func TestNewTripView_WithoutBookingsOmitsServices(t *testing.T) {
	data, err := json.Marshal(NewTripView(sampleTrip()))
	require.NoError(t, err)

	assert.JSONEq(t, `{"departure":"Kiev","destination":"Berlin","travel_time":"2024-12-12T12:12:12"}`, string(data))
}

func TestNewTripView_WithBookings(t *testing.T) {
	trip := sampleTrip(
		domain.Service{ID: 5, Name: "Museum tour", CityID: 2, CityName: "Berlin"},
		domain.Service{ID: 5, Name: "Museum tour", CityID: 2, CityName: "Berlin"},
	)

	data, err := json.Marshal(NewTripView(trip))
	require.NoError(t, err)

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &view))

	services, ok := view["services"].([]interface{})
	require.True(t, ok)
	// Повторное бронирование видно в ответе дважды
	assert.Len(t, services, 2)
}

func TestNewTripViews_EmptyInputSerializesAsEmptyArray(t *testing.T) {
	data, err := json.Marshal(NewTripViews(nil))
	require.NoError(t, err)

	assert.Equal(t, "[]", string(data))
}

func TestNewServiceViews(t *testing.T) {
	views := NewServiceViews([]*domain.Service{
		{ID: 1, Name: "Museum tour", CityID: 2, CityName: "Berlin"},
	})

	require.Len(t, views, 1)
	assert.Equal(t, "Museum tour", views[0].Name)
	assert.Equal(t, "Berlin", views[0].City)
}
