package api

import (
	"net/http"
	"testing"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/airports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleRoute() domain.Route {
	return domain.Route{
		ID:            3,
		SourceID:      1,
		DestinationID: 2,
		Distance:      470,
		Source:        domain.Airport{ID: 1, Name: "Boryspil", ClosestBigCity: "Kyiv"},
		Destination:   domain.Airport{ID: 2, Name: "Lviv", ClosestBigCity: "Lviv"},
	}
}

func TestAirportHandler_createAirport(t *testing.T) {
	mockService := &MockAirportUseCase{}
	router := newTestRouter(Handlers{Airports: NewAirportHandler(mockService)})

	input := airports.AirportInput{Name: "Boryspil", ClosestBigCity: "Kyiv"}
	mockService.On("CreateAirport", mock.Anything, input).Return(&domain.Airport{ID: 1, Name: "Boryspil", ClosestBigCity: "Kyiv"}, nil).Once()

	w := doRequest(router, http.MethodPost, "/api/airport/airports/", `{"name":"Boryspil","closest_big_city":"Kyiv"}`,
		map[string]string{"Authorization": bearer(t, 1, true)})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Boryspil","closest_big_city":"Kyiv"}`, w.Body.String())
}

func TestAirportHandler_listRoutes(t *testing.T) {
	mockService := &MockAirportUseCase{}
	router := newTestRouter(Handlers{Airports: NewAirportHandler(mockService)})

	mockService.On("ListRoutes", mock.Anything, domain.RouteFilter{Source: "bor"}).Return([]domain.Route{sampleRoute()}, nil).Once()

	w := doRequest(router, http.MethodGet, "/api/airport/routes/?source=bor", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":3,"source":"Boryspil","destination":"Lviv","distance":470}]`, w.Body.String())
}

func TestAirportHandler_getRoute(t *testing.T) {
	mockService := &MockAirportUseCase{}
	router := newTestRouter(Handlers{Airports: NewAirportHandler(mockService)})

	route := sampleRoute()
	mockService.On("GetRoute", mock.Anything, int64(3)).Return(&route, nil).Once()

	w := doRequest(router, http.MethodGet, "/api/airport/routes/3/", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":3,"distance":470,
		"source":{"id":1,"name":"Boryspil","closest_big_city":"Kyiv"},
		"destination":{"id":2,"name":"Lviv","closest_big_city":"Lviv"}}`, w.Body.String())
}

func TestAirportHandler_createRoute_SameEndpoints(t *testing.T) {
	mockService := &MockAirportUseCase{}
	router := newTestRouter(Handlers{Airports: NewAirportHandler(mockService)})

	rejected := (&domain.Route{SourceID: 1, DestinationID: 1, Distance: 100}).Validate()
	mockService.On("CreateRoute", mock.Anything, airports.RouteInput{SourceID: 1, DestinationID: 1, Distance: 100}).Return(nil, rejected).Once()

	w := doRequest(router, http.MethodPost, "/api/airport/routes/", `{"source":1,"destination":1,"distance":100}`,
		map[string]string{"Authorization": bearer(t, 1, true)})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domain.NonFieldErrors)
}

func TestAirportHandler_createRoute_MalformedBody(t *testing.T) {
	mockService := &MockAirportUseCase{}
	router := newTestRouter(Handlers{Airports: NewAirportHandler(mockService)})

	w := doRequest(router, http.MethodPost, "/api/airport/routes/", `{"source":"one"}`,
		map[string]string{"Authorization": bearer(t, 1, true)})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateRoute", mock.Anything, mock.Anything)
}
