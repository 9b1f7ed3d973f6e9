package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealerdesk/dealerdesk.go/lib/responses"
	"github.com/dealerdesk/dealerdesk.go/lib/service"
	"github.com/dealerdesk/dealerdesk.go/storage"
)

// LedgerController : daily cash book CRUD. Derived columns are computed by
// the service, never taken from the client.
type LedgerController struct {
	svc *service.DealerdeskService
}

func NewLedgerController(svc *service.DealerdeskService) *LedgerController {
	return &LedgerController{svc: svc}
}

func (controller *LedgerController) List(c echo.Context) error {
	entries, err := controller.svc.ListLedgerEntries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (controller *LedgerController) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	entry, err := controller.svc.FindLedgerEntry(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

func (controller *LedgerController) Create(c echo.Context) error {
	var body service.LedgerEntryInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Customer == nil || *body.Customer == "" {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	entry, err := controller.svc.CreateLedgerEntry(c.Request().Context(), &body)
	if err != nil {
		if errors.Is(err, service.ErrTotalMismatch) {
			return c.JSON(http.StatusBadRequest, responses.TotalMismatchError)
		}
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

func (controller *LedgerController) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body service.LedgerEntryInput
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	entry, err := controller.svc.UpdateLedgerEntry(c.Request().Context(), id, &body)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		case errors.Is(err, service.ErrTotalMismatch):
			return c.JSON(http.StatusBadRequest, responses.TotalMismatchError)
		}
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

func (controller *LedgerController) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteLedgerEntry(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Ledger entry removed"})
}
