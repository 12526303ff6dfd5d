package handler

import (
	"net/http"
	"strconv"

	"erp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/suppliers
type SupplierHandler struct {
	uc *usecase.SupplierUsecase
}

// DI
func NewSupplierHandler(uc *usecase.SupplierUsecase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

func (h *SupplierHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/suppliers")
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
}

func (h *SupplierHandler) list(c echo.Context) error {
	suppliers, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: suppliers})
}

func (h *SupplierHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	supplier, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: supplier})
}

func (h *SupplierHandler) create(c echo.Context) error {
	var req usecase.SupplierInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid body"})
	}

	supplier, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "Supplier created successfully",
		Data:    supplier,
	})
}

func (h *SupplierHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	var req usecase.SupplierInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid body"})
	}

	supplier, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Supplier updated successfully",
		Data:    supplier,
	})
}
