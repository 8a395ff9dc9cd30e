package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const onlineMessage = "HandPay server online"

// Home godoc
// @Summary Liveness message
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": onlineMessage})
}

// Healthz godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
