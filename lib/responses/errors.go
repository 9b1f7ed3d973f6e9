package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

// BadAuthError deliberately does not say whether the email exists.
var BadAuthError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "Invalid email or password",
	HttpStatusCode: 401,
}

var ForbiddenError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        "Forbidden: your role does not have permission to perform this action",
	HttpStatusCode: 403,
}

var NotFoundError = ErrorResponse{
	Error:          true,
	Code:           4,
	Message:        "Not found",
	HttpStatusCode: 404,
}

var EmailTakenError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "Email already in use",
	HttpStatusCode: 400,
}

var MobileTakenError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "Mobile number already in use",
	HttpStatusCode: 400,
}

var InvalidOTPError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "Invalid OTP",
	HttpStatusCode: 400,
}

var InvalidResetTokenError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "Invalid or expired reset token",
	HttpStatusCode: 400,
}

var TotalMismatchError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "Total does not match the payment split",
	HttpStatusCode: 400,
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("UserID", c.Get("UserID"))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
	} else {
		c.JSON(http.StatusInternalServerError, GeneralServerError)
	}
}
