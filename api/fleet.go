package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/fleet"
	"github.com/gin-gonic/gin"
)

type CrewHandler struct {
	service fleet.CrewUseCase
}

func NewCrewHandler(service fleet.CrewUseCase) *CrewHandler {
	return &CrewHandler{service: service}
}

func (h *CrewHandler) Register(router *gin.RouterGroup, access *Access) {
	access.Handle(router, http.MethodGet, "/crews/", ResourceCrews, OpList, h.list)
	access.Handle(router, http.MethodPost, "/crews/", ResourceCrews, OpCreate, h.create)
	access.Handle(router, http.MethodGet, "/crews/:id/", ResourceCrews, OpRetrieve, h.get)
	access.Handle(router, http.MethodPut, "/crews/:id/", ResourceCrews, OpUpdate, h.update)
	access.Handle(router, http.MethodPatch, "/crews/:id/", ResourceCrews, OpPartialUpdate, h.partialUpdate)
	access.Handle(router, http.MethodDelete, "/crews/:id/", ResourceCrews, OpDelete, h.delete)
}

func (h *CrewHandler) list(c *gin.Context) {
	crews, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(crews, crewView))
}

func (h *CrewHandler) create(c *gin.Context) {
	var req fleet.CrewInput
	if !bindJSON(c, &req) {
		return
	}
	crew, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crewView(*crew))
}

func (h *CrewHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	crew, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, crewView(*crew))
}

func (h *CrewHandler) update(c *gin.Context) {
	var req fleet.CrewInput
	if !bindJSON(c, &req) {
		return
	}
	h.save(c, fleet.CrewPatch{FirstName: &req.FirstName, LastName: &req.LastName})
}

func (h *CrewHandler) partialUpdate(c *gin.Context) {
	var req fleet.CrewPatch
	if !bindJSON(c, &req) {
		return
	}
	h.save(c, req)
}

func (h *CrewHandler) save(c *gin.Context, patch fleet.CrewPatch) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	crew, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, crewView(*crew))
}

func (h *CrewHandler) delete(c *gin.Context) {
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

type AirplaneHandler struct {
	service fleet.AirplaneUseCase
}

func NewAirplaneHandler(service fleet.AirplaneUseCase) *AirplaneHandler {
	return &AirplaneHandler{service: service}
}

func (h *AirplaneHandler) Register(router *gin.RouterGroup, access *Access) {
	access.Handle(router, http.MethodGet, "/airplane-types/", ResourceAirplaneTypes, OpList, h.listTypes)
	access.Handle(router, http.MethodPost, "/airplane-types/", ResourceAirplaneTypes, OpCreate, h.createType)
	access.Handle(router, http.MethodGet, "/airplane-types/:id/", ResourceAirplaneTypes, OpRetrieve, h.getType)
	access.Handle(router, http.MethodPut, "/airplane-types/:id/", ResourceAirplaneTypes, OpUpdate, h.updateType)
	access.Handle(router, http.MethodPatch, "/airplane-types/:id/", ResourceAirplaneTypes, OpPartialUpdate, h.partialUpdateType)
	access.Handle(router, http.MethodDelete, "/airplane-types/:id/", ResourceAirplaneTypes, OpDelete, h.deleteType)

	access.Handle(router, http.MethodGet, "/airplanes/", ResourceAirplanes, OpList, h.list)
	access.Handle(router, http.MethodPost, "/airplanes/", ResourceAirplanes, OpCreate, h.create)
	access.Handle(router, http.MethodGet, "/airplanes/:id/", ResourceAirplanes, OpRetrieve, h.get)
}

func (h *AirplaneHandler) listTypes(c *gin.Context) {
	types, err := h.service.ListTypes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(types, airplaneTypeView))
}

func (h *AirplaneHandler) createType(c *gin.Context) {
	var req fleet.AirplaneTypeInput
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.service.CreateType(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplaneTypeView(*t))
}

func (h *AirplaneHandler) getType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.service.GetType(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneTypeView(*t))
}

func (h *AirplaneHandler) updateType(c *gin.Context) {
	var req fleet.AirplaneTypeInput
	if !bindJSON(c, &req) {
		return
	}
	h.saveType(c, fleet.AirplaneTypePatch{Name: &req.Name})
}

func (h *AirplaneHandler) partialUpdateType(c *gin.Context) {
	var req fleet.AirplaneTypePatch
	if !bindJSON(c, &req) {
		return
	}
	h.saveType(c, req)
}

func (h *AirplaneHandler) saveType(c *gin.Context, patch fleet.AirplaneTypePatch) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.service.UpdateType(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneTypeView(*t))
}

func (h *AirplaneHandler) deleteType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteType(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AirplaneHandler) list(c *gin.Context) {
	filter := domain.AirplaneFilter{
		Name:         c.Query("name"),
		AirplaneType: c.Query("air_plane_type"),
	}
	airplanes, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(airplanes, airplaneListView))
}

func (h *AirplaneHandler) create(c *gin.Context) {
	var req fleet.AirplaneInput
	if !bindJSON(c, &req) {
		return
	}
	airplane, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplaneWriteView(*airplane))
}

func (h *AirplaneHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	airplane, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplaneDetailView(*airplane))
}
