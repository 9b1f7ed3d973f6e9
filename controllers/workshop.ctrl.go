package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dealerdesk/dealerdesk.go/db/models"
	"github.com/dealerdesk/dealerdesk.go/lib/responses"
	"github.com/dealerdesk/dealerdesk.go/lib/service"
	"github.com/dealerdesk/dealerdesk.go/storage"
)

// WorkshopController : service ticket CRUD.
type WorkshopController struct {
	svc *service.DealerdeskService
}

func NewWorkshopController(svc *service.DealerdeskService) *WorkshopController {
	return &WorkshopController{svc: svc}
}

type TicketRequestBody struct {
	Vehicle             string    `json:"vehicle" validate:"required"`
	Customer            string    `json:"customer" validate:"required"`
	Service             string    `json:"service" validate:"required"`
	Status              string    `json:"status"`
	Date                time.Time `json:"date"`
	EstimatedCompletion time.Time `json:"estimated_completion" validate:"required"`
	Cost                float64   `json:"cost" validate:"gte=0"`
}

func (controller *WorkshopController) List(c echo.Context) error {
	tickets, err := controller.svc.ListTickets(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

func (controller *WorkshopController) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	ticket, err := controller.svc.FindTicket(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

func (controller *WorkshopController) Create(c echo.Context) error {
	var body TicketRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	ticket := &models.WorkshopTicket{
		Vehicle:             body.Vehicle,
		Customer:            body.Customer,
		Service:             body.Service,
		Status:              body.Status,
		Date:                body.Date,
		EstimatedCompletion: body.EstimatedCompletion,
		Cost:                body.Cost,
	}
	if err := controller.svc.CreateTicket(c.Request().Context(), ticket); err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		return err
	}
	return c.JSON(http.StatusCreated, ticket)
}

type UpdateTicketRequestBody struct {
	Vehicle             *string    `json:"vehicle"`
	Customer            *string    `json:"customer"`
	Service             *string    `json:"service"`
	Status              *string    `json:"status"`
	Date                *time.Time `json:"date"`
	EstimatedCompletion *time.Time `json:"estimated_completion"`
	Cost                *float64   `json:"cost"`
}

func (controller *WorkshopController) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body UpdateTicketRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	ticket, err := controller.svc.UpdateTicket(c.Request().Context(), id, service.TicketUpdate{
		Vehicle:             body.Vehicle,
		Customer:            body.Customer,
		Service:             body.Service,
		Status:              body.Status,
		Date:                body.Date,
		EstimatedCompletion: body.EstimatedCompletion,
		Cost:                body.Cost,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		case errors.Is(err, service.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

func (controller *WorkshopController) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteTicket(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Workshop entry removed"})
}
