package handler

import (
	"net/http"
	"strconv"

	"erp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/orders
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/orders")
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.GET("/client/:clientId", h.listByClient)
}

// 一覧は封筒なしの素の配列
func (h *OrderHandler) list(c echo.Context) error {
	orders, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	order, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: order})
}

func (h *OrderHandler) create(c echo.Context) error {
	var req usecase.OrderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid body"})
	}

	order, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

func (h *OrderHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	var req usecase.OrderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid body"})
	}

	order, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Order updated successfully",
		Data:    order,
	})
}

func (h *OrderHandler) listByClient(c echo.Context) error {
	clientID, err := strconv.ParseInt(c.Param("clientId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid clientId"})
	}

	orders, err := h.uc.ListByClient(c.Request().Context(), clientID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: orders})
}
