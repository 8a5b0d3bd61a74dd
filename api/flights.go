package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup, access *Access) {
	access.Handle(router, http.MethodGet, "/flights/", ResourceFlights, OpList, h.list)
	access.Handle(router, http.MethodPost, "/flights/", ResourceFlights, OpCreate, h.create)
	access.Handle(router, http.MethodGet, "/flights/:id/", ResourceFlights, OpRetrieve, h.get)
	access.Handle(router, http.MethodPut, "/flights/:id/", ResourceFlights, OpUpdate, h.update)
	access.Handle(router, http.MethodPatch, "/flights/:id/", ResourceFlights, OpPartialUpdate, h.partialUpdate)
	access.Handle(router, http.MethodDelete, "/flights/:id/", ResourceFlights, OpDelete, h.delete)
	access.Handle(router, http.MethodGet, "/flights/:id/availability/", ResourceFlights, OpAvailability, h.availability)
}

func parseFlightFilter(c *gin.Context) (domain.FlightFilter, error) {
	filter := domain.FlightFilter{
		Airplane:    c.Query("airplane"),
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
	}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, domain.NewValidationError("date", "Date has wrong format. Use YYYY-MM-DD.")
		}
		filter.Date = &date
	}
	return filter, nil
}

func (h *FlightHandler) list(c *gin.Context) {
	filter, err := parseFlightFilter(c)
	if err != nil {
		writeError(c, err)
		return
	}
	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, flightListView))
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flightDetailView(*flight))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flights.FlightInput
	if !bindJSON(c, &req) {
		return
	}
	flight, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flightWriteView(*flight))
}

func (h *FlightHandler) update(c *gin.Context) {
	var req flights.FlightInput
	if !bindJSON(c, &req) {
		return
	}
	h.save(c, flights.FlightPatch{
		RouteID:       &req.RouteID,
		AirplaneID:    &req.AirplaneID,
		DepartureTime: &req.DepartureTime,
		ArrivalTime:   &req.ArrivalTime,
	})
}

func (h *FlightHandler) partialUpdate(c *gin.Context) {
	var req flights.FlightPatch
	if !bindJSON(c, &req) {
		return
	}
	h.save(c, req)
}

func (h *FlightHandler) save(c *gin.Context, patch flights.FlightPatch) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	flight, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flightWriteView(*flight))
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) availability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	av, err := h.service.Availability(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, availabilityView(*av))
}
