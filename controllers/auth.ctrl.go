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

// AuthController : registration, login, profile and the OTP reset flow.
type AuthController struct {
	svc *service.DealerdeskService
}

func NewAuthController(svc *service.DealerdeskService) *AuthController {
	return &AuthController{svc: svc}
}

type RegisterRequestBody struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequestBody struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponseBody struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile,omitempty"`
	Role   string `json:"role"`
	Status string `json:"status"`
	Token  string `json:"token,omitempty"`
}

func userResponse(user *models.User, token string) *UserResponseBody {
	return &UserResponseBody{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Mobile: user.Mobile,
		Role:   user.Role,
		Status: user.Status,
		Token:  token,
	}
}

func (controller *AuthController) Register(c echo.Context) error {
	var body RegisterRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load register request body: %v", err)
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

	token, err := controller.svc.GenerateToken(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, userResponse(user, token))
}

func (controller *AuthController) Login(c echo.Context) error {
	var body LoginRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load login request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	user, err := controller.svc.LoginUser(c.Request().Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
		}
		return err
	}

	token, err := controller.svc.GenerateToken(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse(user, token))
}

func (controller *AuthController) Profile(c echo.Context) error {
	userID := c.Get("UserID").(int64)

	user, err := controller.svc.FindUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, userResponse(user, ""))
}

type GenerateOTPRequestBody struct {
	Mobile string `json:"mobile" validate:"required"`
}

type VerifyOTPRequestBody struct {
	Mobile string `json:"mobile" validate:"required"`
	OTP    string `json:"otp" validate:"required"`
}

type VerifyOTPResponseBody struct {
	ResetToken string `json:"reset_token"`
}

type ResetPasswordRequestBody struct {
	ResetToken string `json:"reset_token" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (controller *AuthController) GenerateOTP(c echo.Context) error {
	var body GenerateOTPRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := controller.svc.GenerateOTP(c.Request().Context(), body.Mobile); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "OTP sent"})
}

func (controller *AuthController) VerifyOTP(c echo.Context) error {
	var body VerifyOTPRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	resetToken, err := controller.svc.VerifyOTP(c.Request().Context(), body.Mobile, body.OTP)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOTP) {
			return c.JSON(http.StatusBadRequest, responses.InvalidOTPError)
		}
		return err
	}
	return c.JSON(http.StatusOK, &VerifyOTPResponseBody{ResetToken: resetToken})
}

func (controller *AuthController) ResetPassword(c echo.Context) error {
	var body ResetPasswordRequestBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	user, err := controller.svc.ResetPassword(c.Request().Context(), body.ResetToken, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			return c.JSON(http.StatusBadRequest, responses.InvalidResetTokenError)
		}
		return err
	}

	token, err := controller.svc.GenerateToken(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse(user, token))
}
