package handler

import (
	"net/http"
	"strconv"

	"erp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/employee（元システムは単数形のパス）
type EmployeeHandler struct {
	uc *usecase.EmployeeUsecase
}

// DI
func NewEmployeeHandler(uc *usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

func (h *EmployeeHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/employee")
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
}

func (h *EmployeeHandler) list(c echo.Context) error {
	employees, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: employees})
}

func (h *EmployeeHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	employee, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: employee})
}

func (h *EmployeeHandler) create(c echo.Context) error {
	var req usecase.EmployeeInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "Employee created successfully",
		Data:    out,
	})
}

func (h *EmployeeHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid id"})
	}

	var req usecase.EmployeeInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid body"})
	}

	if err := h.uc.Update(c.Request().Context(), id, req); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Employee updated successfully",
	})
}
