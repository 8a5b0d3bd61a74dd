package api

import (
	"net/http"

	"github.com/Domenick1991/airport/internal/service/users"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service users.UserUseCase
}

func NewUserHandler(service users.UserUseCase) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(router *gin.RouterGroup, access *Access) {
	access.Handle(router, http.MethodPost, "/register/", ResourceUsers, OpRegister, h.register)
	access.Handle(router, http.MethodPost, "/token/", ResourceUsers, OpToken, h.token)
	access.Handle(router, http.MethodPost, "/token/refresh/", ResourceUsers, OpTokenRefresh, h.refresh)
	access.Handle(router, http.MethodGet, "/me/", ResourceUsers, OpMe, h.me)
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

func (h *UserHandler) register(c *gin.Context) {
	var req users.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userView(*user))
}

func (h *UserHandler) token(c *gin.Context) {
	var req users.LoginInput
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

func (h *UserHandler) refresh(c *gin.Context) {
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}
	access, err := h.service.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

func (h *UserHandler) me(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context(), identityFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, userView(*user))
}
