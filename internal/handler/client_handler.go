package handler

import (
	"net/http"
	"strconv"

	"erp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/clients
type ClientHandler struct {
	uc *usecase.ClientUsecase
}

// DI
func NewClientHandler(uc *usecase.ClientUsecase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

func (h *ClientHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/clients")
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.GET("/:id/orders", h.listOrders)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
}

// 一覧・詳細・作成・更新は封筒なし（既存フロントの期待に合わせる）
func (h *ClientHandler) list(c echo.Context) error {
	clients, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	client, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, client)
}

// 取引先の注文履歴
func (h *ClientHandler) listOrders(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *ClientHandler) create(c echo.Context) error {
	var req usecase.ClientInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid body"})
	}

	client, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	var req usecase.ClientInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid body"})
	}

	client, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, client)
}
