package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealerdesk/dealerdesk.go/db/models"
	"github.com/dealerdesk/dealerdesk.go/lib/responses"
	"github.com/dealerdesk/dealerdesk.go/lib/service"
	"github.com/dealerdesk/dealerdesk.go/storage"
)

// VehiclesController : showroom stock CRUD.
type VehiclesController struct {
	svc *service.DealerdeskService
}

func NewVehiclesController(svc *service.DealerdeskService) *VehiclesController {
	return &VehiclesController{svc: svc}
}

type VehicleRequestBody struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

func (controller *VehiclesController) List(c echo.Context) error {
	vehicles, err := controller.svc.ListVehicles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicles)
}

func (controller *VehiclesController) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	vehicle, err := controller.svc.FindVehicle(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, vehicle)
}

func (controller *VehiclesController) Create(c echo.Context) error {
	var body VehicleRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	vehicle := &models.Vehicle{
		Name:        body.Name,
		Price:       body.Price,
		Description: body.Description,
		Image:       body.Image,
	}
	if err := controller.svc.CreateVehicle(c.Request().Context(), vehicle); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, vehicle)
}

type UpdateVehicleRequestBody struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

func (controller *VehiclesController) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body UpdateVehicleRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	vehicle, err := controller.svc.UpdateVehicle(c.Request().Context(), id, service.VehicleUpdate{
		Name:        body.Name,
		Price:       body.Price,
		Description: body.Description,
		Image:       body.Image,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, vehicle)
}

func (controller *VehiclesController) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteVehicle(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Vehicle removed"})
}
