package integration_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/dealerdesk/dealerdesk.go/lib/logging"
	"github.com/dealerdesk/dealerdesk.go/lib/responses"
	"github.com/dealerdesk/dealerdesk.go/lib/service"
	"github.com/dealerdesk/dealerdesk.go/lib/tokens"
	"github.com/dealerdesk/dealerdesk.go/lib/transport"
	"github.com/dealerdesk/dealerdesk.go/storage/memory"
)

// Seeded owner account, see storage/memory/seed.go.
const (
	seedOwnerEmail  = "rajesh@example.com"
	seedOwnerMobile = "9876543210"
	seedPassword    = "password123"
)

// capturingMessenger records outgoing texts so tests can read the OTP code
// that would have gone to a phone.
type capturingMessenger struct {
	mu   sync.Mutex
	sent []string
}

func (m *capturingMessenger) Send(ctx context.Context, to string, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, text)
	return nil
}

// lastCode pulls the 6-digit code out of the most recent message.
func (m *capturingMessenger) lastCode() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return ""
	}
	last := m.sent[len(m.sent)-1]
	return strings.TrimSpace(last[strings.LastIndex(last, ":")+1:])
}

func dealerdeskTestServiceInit(messenger *capturingMessenger) (*service.DealerdeskService, error) {
	c := &service.Config{
		JWTSecret:            []byte("SECRET"),
		JWTAccessTokenExpiry: 3600,
		OTPExpiry:            600,
		ResetTokenExpiry:     1800,
		DefaultRateLimit:     100,
		StrictRateLimit:      100,
		BurstRateLimit:       100,
	}

	store := memory.NewStore()
	if err := store.Seed(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed test store: %w", err)
	}

	svc := &service.DealerdeskService{
		Config:    c,
		Store:     store,
		Logger:    logging.Logger(""),
		Messenger: messenger,
	}
	return svc, nil
}

// newTestEcho builds the server the way cmd/server does, full middleware
// chain included, so the tests exercise auth and the policy checks too.
func newTestEcho(svc *service.DealerdeskService) *echo.Echo {
	e := transport.InitEcho(svc.Config, svc.Logger)
	logMw := transport.CreateLoggingMiddleware(svc.Logger)
	strictRateLimitMiddleware := transport.CreateRateLimitMiddleware(svc.Config.StrictRateLimit, svc.Config.BurstRateLimit)
	secured := e.Group("", tokens.Middleware(svc.Config.JWTSecret), logMw)
	transport.RegisterEndpoints(svc, e, secured, strictRateLimitMiddleware)
	return e
}

type TestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (suite *TestSuite) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func checkErrResponse(suite *TestSuite, rec *httptest.ResponseRecorder) *responses.ErrorResponse {
	errorResponse := &responses.ErrorResponse{}
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(errorResponse))
	return errorResponse
}

// loginUser trades credentials for a session token through the real endpoint.
func (suite *TestSuite) loginUser(email, password string) string {
	rec := suite.request(http.MethodPost, "/api/auth/login", &loginRequest{Email: email, Password: password}, "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	response := &userResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(response))
	assert.NotEmpty(suite.T(), response.Token)
	return response.Token
}

// registerUser creates an account with the given role and returns its token.
func (suite *TestSuite) registerUser(name, email, mobile, role string) string {
	rec := suite.request(http.MethodPost, "/api/auth/register", &registerRequest{
		Name:     name,
		Email:    email,
		Mobile:   mobile,
		Password: seedPassword,
		Role:     role,
	}, "")
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	response := &userResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(response))
	assert.NotEmpty(suite.T(), response.Token)
	return response.Token
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile,omitempty"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Role   string `json:"role"`
	Status string `json:"status"`
	Token  string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}
