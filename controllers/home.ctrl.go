package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

func (controller *HomeController) Home(c echo.Context) error {
	return c.String(http.StatusOK, "API is running...")
}
