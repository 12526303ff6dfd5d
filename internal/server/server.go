package server

import (
	"net/http"

	"erp/internal/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// 各HandlerはここでEchoにルートを登録する
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// New はミドルウェアとルートを組み立てたEchoを返す。
func New(cfg config.Config, handlers ...RouteRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.FEOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to Opzon ERP API"})
	})

	for _, h := range handlers {
		h.RegisterRoutes(e)
	}

	// 未定義ルートは404のJSON
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"success": false,
			"message": "Route not found",
		})
	})

	return e
}

// Start はサーバを起動する。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
