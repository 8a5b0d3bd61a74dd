package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/airports"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service airports.AirportUseCase
}

func NewAirportHandler(service airports.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup, access *Access) {
	access.Handle(router, http.MethodGet, "/airports/", ResourceAirports, OpList, h.listAirports)
	access.Handle(router, http.MethodPost, "/airports/", ResourceAirports, OpCreate, h.createAirport)

	access.Handle(router, http.MethodGet, "/routes/", ResourceRoutes, OpList, h.listRoutes)
	access.Handle(router, http.MethodPost, "/routes/", ResourceRoutes, OpCreate, h.createRoute)
	access.Handle(router, http.MethodGet, "/routes/:id/", ResourceRoutes, OpRetrieve, h.getRoute)
}

func (h *AirportHandler) listAirports(c *gin.Context) {
	list, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, airportView))
}

func (h *AirportHandler) createAirport(c *gin.Context) {
	var req airports.AirportInput
	if !bindJSON(c, &req) {
		return
	}
	airport, err := h.service.CreateAirport(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airportView(*airport))
}

func (h *AirportHandler) listRoutes(c *gin.Context) {
	filter := domain.RouteFilter{
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
	}
	routes, err := h.service.ListRoutes(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(routes, routeListView))
}

func (h *AirportHandler) createRoute(c *gin.Context) {
	var req airports.RouteInput
	if !bindJSON(c, &req) {
		return
	}
	route, err := h.service.CreateRoute(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, routeWriteView(*route))
}

func (h *AirportHandler) getRoute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	route, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, routeDetailView(*route))
}
