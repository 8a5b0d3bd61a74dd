package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var departure = time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC)

func sampleFlight() domain.Flight {
	return domain.Flight{
		ID:            1,
		RouteID:       3,
		AirplaneID:    4,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(2 * time.Hour),
		Route: domain.Route{
			ID:          3,
			Distance:    470,
			Source:      domain.Airport{ID: 1, Name: "Boryspil", ClosestBigCity: "Kyiv"},
			Destination: domain.Airport{ID: 2, Name: "Lviv", ClosestBigCity: "Lviv"},
		},
		Airplane:         domain.Airplane{ID: 4, Name: "Mriya", Rows: 10, SeatsInRow: 6, Type: domain.AirplaneType{ID: 1, Name: "Cargo"}},
		TicketsAvailable: 57,
	}
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/?source=bor&date=2026-11-02", nil)

	date := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	filter := domain.FlightFilter{Source: "bor", Date: &date}
	mockService.On("List", c.Request.Context(), filter).Return([]domain.Flight{sampleFlight()}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Boryspil - Lviv", body[0]["route"])
	assert.Equal(t, "Mriya", body[0]["airplane"])
	assert.EqualValues(t, 60, body[0]["airplane_capacity"])
	assert.EqualValues(t, 57, body[0]["tickets_available"])

	mockService.AssertExpectations(t)
}

func TestFlightHandler_list_BadDate(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newTestRouter(Handlers{Flights: NewFlightHandler(mockService)})

	w := doRequest(router, http.MethodGet, "/api/airport/flights/?date=02.11.2026", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"date":["Date has wrong format. Use YYYY-MM-DD."]}`, w.Body.String())
	mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/flights/1/", nil)

	flight := sampleFlight()
	mockService.On("GetByID", c.Request.Context(), int64(1)).Return(&flight, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Route struct {
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"route"`
		Airplane struct {
			Capacity int `json:"capacity"`
		} `json:"airplane"`
		Duration         string `json:"duration"`
		TicketsAvailable int    `json:"tickets_available"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Boryspil", body.Route.Source.Name)
	assert.Equal(t, 60, body.Airplane.Capacity)
	assert.Equal(t, "2h0m0s", body.Duration)
	assert.Equal(t, 57, body.TicketsAvailable)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newTestRouter(Handlers{Flights: NewFlightHandler(mockService)})

	mockService.On("GetByID", mock.Anything, int64(42)).Return(nil, domain.ErrNotFound)

	w := doRequest(router, http.MethodGet, "/api/airport/flights/42/", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, w.Body.String())
}

func TestFlightHandler_get_MalformedID(t *testing.T) {
	router := newTestRouter(Handlers{Flights: NewFlightHandler(&MockFlightUseCase{})})

	w := doRequest(router, http.MethodGet, "/api/airport/flights/abc/", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlightHandler_create_ArrivalBeforeDeparture(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newTestRouter(Handlers{Flights: NewFlightHandler(mockService)})

	verr := domain.NewValidationError(domain.NonFieldErrors, "Arrival time must be later than departure time.")
	mockService.On("Create", mock.Anything, mock.AnythingOfType("flights.FlightInput")).Return(nil, verr)

	body := `{"route":3,"airplane":4,"departure_time":"2026-11-02T10:00:00Z","arrival_time":"2026-11-02T08:00:00Z"}`
	w := doRequest(router, http.MethodPost, "/api/airport/flights/", body, map[string]string{"Authorization": bearer(t, 1, true)})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"non_field_errors":["Arrival time must be later than departure time."]}`, w.Body.String())
}

func TestFlightHandler_create(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newTestRouter(Handlers{Flights: NewFlightHandler(mockService)})

	input := flights.FlightInput{RouteID: 3, AirplaneID: 4, DepartureTime: departure, ArrivalTime: departure.Add(2 * time.Hour)}
	created := &domain.Flight{ID: 9, RouteID: 3, AirplaneID: 4, DepartureTime: input.DepartureTime, ArrivalTime: input.ArrivalTime}
	mockService.On("Create", mock.Anything, input).Return(created, nil)

	body := `{"route":3,"airplane":4,"departure_time":"2026-11-02T08:00:00Z","arrival_time":"2026-11-02T10:00:00Z"}`
	w := doRequest(router, http.MethodPost, "/api/airport/flights/", body, map[string]string{"Authorization": bearer(t, 1, true)})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":9,"route":3,"airplane":4,"departure_time":"2026-11-02T08:00:00Z","arrival_time":"2026-11-02T10:00:00Z"}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestFlightHandler_partialUpdate(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newTestRouter(Handlers{Flights: NewFlightHandler(mockService)})

	arrival := departure.Add(3 * time.Hour)
	updated := &domain.Flight{ID: 1, RouteID: 3, AirplaneID: 4, DepartureTime: departure, ArrivalTime: arrival}
	mockService.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p flights.FlightPatch) bool {
		return p.RouteID == nil && p.AirplaneID == nil && p.DepartureTime == nil && p.ArrivalTime != nil && p.ArrivalTime.Equal(arrival)
	})).Return(updated, nil)

	w := doRequest(router, http.MethodPatch, "/api/airport/flights/1/", `{"arrival_time":"2026-11-02T11:00:00Z"}`,
		map[string]string{"Authorization": bearer(t, 1, true)})

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_delete(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newTestRouter(Handlers{Flights: NewFlightHandler(mockService)})

	mockService.On("Delete", mock.Anything, int64(1)).Return(nil)

	w := doRequest(router, http.MethodDelete, "/api/airport/flights/1/", "", map[string]string{"Authorization": bearer(t, 1, true)})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestFlightHandler_availability(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newTestRouter(Handlers{Flights: NewFlightHandler(mockService)})

	av := domain.NewAvailability(1, domain.SeatLayout{Rows: 10, SeatsInRow: 6}, 3)
	mockService.On("Availability", mock.Anything, int64(1)).Return(&av, nil)

	w := doRequest(router, http.MethodGet, "/api/airport/flights/1/availability/", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"flight":1,"capacity":60,"booked":3,"tickets_available":57}`, w.Body.String())
}

var _ flights.FlightUseCase = (*MockFlightUseCase)(nil)
