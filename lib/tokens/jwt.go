package tokens

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"github.com/dealerdesk/dealerdesk.go/db/models"
)

type jwtCustomClaims struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`

	jwt.StandardClaims
}

// GenerateAccessToken issues the session token. Expiry is configured in
// seconds (30 days by default). The role claim feeds the authorization
// middleware so mutating routes do not need a user lookup.
func GenerateAccessToken(secret []byte, expiryInSeconds int, u *models.User) (string, error) {
	claims := &jwtCustomClaims{
		ID:   u.ID,
		Role: u.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expiryInSeconds) * time.Second).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return t, nil
}

// Middleware checks the Authorization: Bearer header and stores UserID and
// UserRole on the echo context.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return &echo.HTTPError{Code: http.StatusUnauthorized, Message: "missing or malformed token"}
			}
			tokenString := strings.TrimPrefix(auth, "Bearer ")

			claims := &jwtCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return &echo.HTTPError{Code: http.StatusUnauthorized, Message: "invalid or expired token"}
			}

			c.Set("UserID", claims.ID)
			c.Set("UserRole", claims.Role)
			return next(c)
		}
	}
}
