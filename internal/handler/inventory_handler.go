package handler

import (
	"net/http"
	"strconv"

	"erp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/inventory（在庫品目CRUD＋ストック取引）
type InventoryHandler struct {
	uc *usecase.InventoryUsecase
}

// DI
func NewInventoryHandler(uc *usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func (h *InventoryHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/inventory")
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.GET("/:id/transactions", h.listTransactions)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.POST("/transactions", h.createTransaction)
	g.DELETE("/:id", h.delete)
}

// 一覧は封筒なしの素の配列（既存フロントの期待に合わせる）
func (h *InventoryHandler) list(c echo.Context) error {
	items, err := h.uc.ListItems(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	item, err := h.uc.GetItem(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: item})
}

func (h *InventoryHandler) listTransactions(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	rows, err := h.uc.ListTransactions(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: rows})
}

func (h *InventoryHandler) create(c echo.Context) error {
	var req usecase.InventoryItemInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid body"})
	}

	item, err := h.uc.CreateItem(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "Inventory item created successfully",
		Data:    item,
	})
}

func (h *InventoryHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	var req usecase.InventoryItemInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid body"})
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Inventory item updated successfully",
		Data:    item,
	})
}

// Stock In / Stock Outの記録
func (h *InventoryHandler) createTransaction(c echo.Context) error {
	var req usecase.RecordStockTransactionInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid body"})
	}

	out, err := h.uc.RecordStockTransaction(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "Inventory transaction processed successfully",
		Data:    out,
	})
}

func (h *InventoryHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	if err := h.uc.DeleteItem(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Inventory item deleted successfully",
	})
}
