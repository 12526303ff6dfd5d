package handler

import (
	"net/http"

	"erp/internal/domain/model"
	"erp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/attendance（午前・午後の打刻と期間レポート）
type AttendanceHandler struct {
	uc *usecase.AttendanceUsecase
}

// DI
func NewAttendanceHandler(uc *usecase.AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

func (h *AttendanceHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/attendance")
	g.GET("/morning/:date", h.listByDate(model.SessionMorning))
	g.GET("/afternoon/:date", h.listByDate(model.SessionAfternoon))
	g.POST("/morning", h.record(model.SessionMorning))
	g.POST("/afternoon", h.record(model.SessionAfternoon))
	g.GET("/report", h.report)
}

func (h *AttendanceHandler) listByDate(session model.AttendanceSession) echo.HandlerFunc {
	return func(c echo.Context) error {
		rows, err := h.uc.ListByDate(c.Request().Context(), session, c.Param("date"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, Envelope{Success: true, Data: rows})
	}
}

func (h *AttendanceHandler) record(session model.AttendanceSession) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req usecase.AttendanceInput
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "invalid body"})
		}

		if err := h.uc.Record(c.Request().Context(), session, req); err != nil {
			return writeError(c, err)
		}

		message := "Morning attendance recorded successfully"
		if session == model.SessionAfternoon {
			message = "Afternoon attendance recorded successfully"
		}
		return c.JSON(http.StatusCreated, Envelope{
			Success: true,
			Message: message,
			Data:    req,
		})
	}
}

func (h *AttendanceHandler) report(c echo.Context) error {
	out, err := h.uc.Report(c.Request().Context(), c.QueryParam("startDate"), c.QueryParam("endDate"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: out})
}
