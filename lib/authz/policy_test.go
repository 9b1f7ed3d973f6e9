package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	assert.True(t, Can("Owner", ActionUserDelete))
	assert.True(t, Can("Admin", ActionUserDelete))
	assert.True(t, Can("Manager", ActionLedgerCreate))
	assert.False(t, Can("Manager", ActionLedgerDelete))
	assert.False(t, Can("Staff", ActionVehicleDelete))
	assert.False(t, Can("Cashier", ActionTicketCreate))
}

func TestMiddlewareForbidsDisallowedRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("UserRole", "Staff")

	handler := Middleware(ActionVehicleDelete)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMiddlewarePassesAllowedRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("UserRole", "Owner")

	handler := Middleware(ActionVehicleDelete)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareForbidsMissingRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(ActionVehicleDelete)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
