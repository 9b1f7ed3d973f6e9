package integration_tests

import (
	"encoding/json"
	"log"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/dealerdesk/dealerdesk.go/lib/responses"
	"github.com/dealerdesk/dealerdesk.go/lib/service"
)

type AuthTestSuite struct {
	TestSuite
	service *service.DealerdeskService
}

func (suite *AuthTestSuite) SetupSuite() {
	svc, err := dealerdeskTestServiceInit(&capturingMessenger{})
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = newTestEcho(svc)
}

func (suite *AuthTestSuite) TestRegisterAndLogin() {
	rec := suite.request(http.MethodPost, "/api/auth/register", &registerRequest{
		Name:     "Amit Verma",
		Email:    "amit@example.com",
		Mobile:   "9876501234",
		Password: "hunter22",
		Role:     "Cashier",
	}, "")
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	created := &userResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(created))
	assert.NotEmpty(suite.T(), created.Token)
	assert.Equal(suite.T(), "Cashier", created.Role)
	assert.Equal(suite.T(), "Active", created.Status)

	token := suite.loginUser("amit@example.com", "hunter22")
	assert.NotEmpty(suite.T(), token)
}

func (suite *AuthTestSuite) TestRegisterDuplicateEmail() {
	rec := suite.request(http.MethodPost, "/api/auth/register", &registerRequest{
		Name:     "Impostor",
		Email:    seedOwnerEmail,
		Password: "whatever",
		Role:     "Staff",
	}, "")
	errorResponse := checkErrResponse(&suite.TestSuite, rec)
	assert.Equal(suite.T(), responses.EmailTakenError.Message, errorResponse.Message)
}

func (suite *AuthTestSuite) TestRegisterUnknownRole() {
	rec := suite.request(http.MethodPost, "/api/auth/register", &registerRequest{
		Name:     "Nobody",
		Email:    "nobody@example.com",
		Password: "whatever",
		Role:     "Janitor",
	}, "")
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *AuthTestSuite) TestRegisterBadMobile() {
	rec := suite.request(http.MethodPost, "/api/auth/register", &registerRequest{
		Name:     "Nobody",
		Email:    "nobody2@example.com",
		Mobile:   "not-a-number",
		Password: "whatever",
		Role:     "Staff",
	}, "")
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

// Wrong password and unknown email must be indistinguishable.
func (suite *AuthTestSuite) TestLoginBadCredentials() {
	rec := suite.request(http.MethodPost, "/api/auth/login", &loginRequest{
		Email:    seedOwnerEmail,
		Password: "wrong-password",
	}, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
	errorResponse := &responses.ErrorResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(errorResponse))
	assert.Equal(suite.T(), responses.BadAuthError.Message, errorResponse.Message)

	rec = suite.request(http.MethodPost, "/api/auth/login", &loginRequest{
		Email:    "ghost@example.com",
		Password: "wrong-password",
	}, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
	ghostResponse := &responses.ErrorResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(ghostResponse))
	assert.Equal(suite.T(), errorResponse.Message, ghostResponse.Message)
}

func (suite *AuthTestSuite) TestProfile() {
	token := suite.loginUser(seedOwnerEmail, seedPassword)

	rec := suite.request(http.MethodGet, "/api/auth/profile", nil, token)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	profile := &userResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(profile))
	assert.Equal(suite.T(), seedOwnerEmail, profile.Email)
	assert.Equal(suite.T(), "Owner", profile.Role)
	// profile responses never carry a token
	assert.Empty(suite.T(), profile.Token)
}

func (suite *AuthTestSuite) TestProfileWithoutToken() {
	rec := suite.request(http.MethodGet, "/api/auth/profile", nil, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
