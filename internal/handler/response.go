package handler

import (
	"net/http"

	"erp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 全ルート共通のレスポンス封筒
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// usecaseのHTTPErrorをステータス＋封筒に変換する。
// 500系は生のエラー文字列もerrorフィールドで返す（社内向けツール）。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= http.StatusInternalServerError {
			c.Logger().Errorf("%s: %s", he.Message, he.Detail)
		}
		return c.JSON(he.Status, Envelope{Success: false, Message: he.Message, Error: he.Detail})
	}

	//500
	c.Logger().Errorf("unhandled error: %v", err)
	return c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Message: "Internal server error",
		Error:   err.Error(),
	})
}
