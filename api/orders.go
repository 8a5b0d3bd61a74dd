package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service     booking.BookingUseCase
	idempotency IdempotencyStore
}

func NewOrderHandler(service booking.BookingUseCase, idempotency IdempotencyStore) *OrderHandler {
	return &OrderHandler{service: service, idempotency: idempotency}
}

func (h *OrderHandler) Register(router *gin.RouterGroup, access *Access) {
	access.Handle(router, http.MethodGet, "/orders/", ResourceOrders, OpList, h.list)
	access.Handle(router, http.MethodPost, "/orders/", ResourceOrders, OpCreate, Idempotency(h.idempotency), h.create)
}

type orderPageResponse struct {
	Count    int                 `json:"count"`
	Next     *string             `json:"next"`
	Previous *string             `json:"previous"`
	Results  []orderListResponse `json:"results"`
}

func (h *OrderHandler) create(c *gin.Context) {
	var req booking.CreateOrderInput
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.service.CreateOrder(c.Request.Context(), identityFrom(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderWriteView(*order))
}

func (h *OrderHandler) list(c *gin.Context) {
	page := domain.Page{Number: 1}
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": detailInvalidPage})
			return
		}
		page.Number = n
	}
	if raw := c.Query("page_size"); raw != "" {
		// invalid sizes fall back to the default
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page.Size = n
		}
	}

	result, err := h.service.ListOrders(c.Request.Context(), identityFrom(c), page)
	if err != nil {
		writeError(c, err)
		return
	}
	if result.Page.Number > 1 && len(result.Orders) == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": detailInvalidPage})
		return
	}

	resp := orderPageResponse{
		Count:   result.Total,
		Results: mapSlice(result.Orders, orderListView),
	}
	if result.HasNext() {
		resp.Next = pageURL(c, result.Page.Number+1)
	}
	if result.HasPrevious() {
		resp.Previous = pageURL(c, result.Page.Number-1)
	}
	c.JSON(http.StatusOK, resp)
}

// pageURL rebuilds the request URL with another page number.
func pageURL(c *gin.Context, number int) *string {
	u := url.URL{Scheme: "http", Host: c.Request.Host, Path: c.Request.URL.Path}
	if c.Request.TLS != nil {
		u.Scheme = "https"
	}
	query := c.Request.URL.Query()
	if number == 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(number))
	}
	u.RawQuery = query.Encode()
	s := u.String()
	return &s
}
