package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dealerdesk/dealerdesk.go/lib/responses"
	"github.com/dealerdesk/dealerdesk.go/lib/service"
	"github.com/dealerdesk/dealerdesk.go/storage"
)

// UsersController : staff account CRUD.
type UsersController struct {
	svc *service.DealerdeskService
}

func NewUsersController(svc *service.DealerdeskService) *UsersController {
	return &UsersController{svc: svc}
}

func paramID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (controller *UsersController) List(c echo.Context) error {
	users, err := controller.svc.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	response := make([]*UserResponseBody, len(users))
	for i := range users {
		response[i] = userResponse(&users[i], "")
	}
	return c.JSON(http.StatusOK, response)
}

func (controller *UsersController) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	user, err := controller.svc.FindUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, userResponse(user, ""))
}

// Create reuses the registration path: same required fields, same duplicate
// checks, same hashing. It just does not hand back a session token.
func (controller *UsersController) Create(c echo.Context) error {
	var body RegisterRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if !service.ValidMobile(body.Mobile) {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	user, err := controller.svc.RegisterUser(c.Request().Context(), body.Name, body.Email, body.Mobile, body.Password, body.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, responses.EmailTakenError)
		case errors.Is(err, service.ErrMobileTaken):
			return c.JSON(http.StatusBadRequest, responses.MobileTakenError)
		case errors.Is(err, service.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		return err
	}
	return c.JSON(http.StatusCreated, userResponse(user, ""))
}

type UpdateUserRequestBody struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Mobile   *string `json:"mobile"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	Password *string `json:"password"`
}

func (controller *UsersController) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body UpdateUserRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Mobile != nil && !service.ValidMobile(*body.Mobile) {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	user, err := controller.svc.UpdateUser(c.Request().Context(), id, service.UserUpdate{
		Name:     body.Name,
		Email:    body.Email,
		Mobile:   body.Mobile,
		Role:     body.Role,
		Status:   body.Status,
		Password: body.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		case errors.Is(err, service.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, responses.EmailTakenError)
		case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		return err
	}
	return c.JSON(http.StatusOK, userResponse(user, ""))
}

func (controller *UsersController) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteUser(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User removed"})
}
