package handlers

import "github.com/Obaraten64/TravelPlanningRestService/internal/domain"

// ServiceView представление услуги для ответов API
type ServiceView struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// TripView представление поездки для ответов API.
// Список услуг опускается, пока на поездку ничего не забронировано.
type TripView struct {
	Departure   string        `json:"departure"`
	Destination string        `json:"destination"`
	TravelTime  string        `json:"travel_time"`
	Services    []ServiceView `json:"services,omitempty"`
}

// NewServiceView собирает представление услуги
func NewServiceView(s *domain.Service) ServiceView {
	return ServiceView{
		Name: s.Name,
		City: s.CityName,
	}
}

// NewServiceViews собирает представления списка услуг
func NewServiceViews(services []*domain.Service) []ServiceView {
	views := make([]ServiceView, 0, len(services))
	for _, s := range services {
		views = append(views, NewServiceView(s))
	}
	return views
}

// NewTripView собирает представление поездки
func NewTripView(t *domain.Trip) TripView {
	view := TripView{
		Departure:   t.Departure.Name,
		Destination: t.Destination.Name,
		TravelTime:  t.TravelTime.Format(domain.TravelTimeFormat),
	}

	if len(t.Services) > 0 {
		view.Services = make([]ServiceView, 0, len(t.Services))
		for i := range t.Services {
			view.Services = append(view.Services, NewServiceView(&t.Services[i]))
		}
	}

	return view
}

// NewTripViews собирает представления списка поездок
func NewTripViews(trips []*domain.Trip) []TripView {
	views := make([]TripView, 0, len(trips))
	for _, t := range trips {
		views = append(views, NewTripView(t))
	}
	return views
}
