package integration_tests

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/uptrace/bun"

	"github.com/dealerdesk/dealerdesk.go/db/models"
	"github.com/dealerdesk/dealerdesk.go/lib/responses"
	"github.com/dealerdesk/dealerdesk.go/lib/security"
	"github.com/dealerdesk/dealerdesk.go/lib/service"
)

type generateOTPRequest struct {
	Mobile string `json:"mobile"`
}

type verifyOTPRequest struct {
	Mobile string `json:"mobile"`
	OTP    string `json:"otp"`
}

type verifyOTPResponse struct {
	ResetToken string `json:"reset_token"`
}

type resetPasswordRequest struct {
	ResetToken string `json:"reset_token"`
	Password   string `json:"password"`
}

type OTPTestSuite struct {
	TestSuite
	service   *service.DealerdeskService
	messenger *capturingMessenger
}

func (suite *OTPTestSuite) SetupSuite() {
	messenger := &capturingMessenger{}
	svc, err := dealerdeskTestServiceInit(messenger)
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.messenger = messenger
	suite.echo = newTestEcho(svc)
}

func (suite *OTPTestSuite) TestGenerateOTPUnknownMobile() {
	rec := suite.request(http.MethodPost, "/api/auth/generate-otp", &generateOTPRequest{Mobile: "0000000000"}, "")
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func (suite *OTPTestSuite) TestVerifyWrongCode() {
	rec := suite.request(http.MethodPost, "/api/auth/generate-otp", &generateOTPRequest{Mobile: seedOwnerMobile}, "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	rec = suite.request(http.MethodPost, "/api/auth/verify-otp", &verifyOTPRequest{Mobile: seedOwnerMobile, OTP: "000000"}, "")
	errorResponse := checkErrResponse(&suite.TestSuite, rec)
	assert.Equal(suite.T(), responses.InvalidOTPError.Message, errorResponse.Message)
}

// Full reset flow: request a code, trade it for a reset token, set a new
// password, log in with it. The code must not be accepted a second time.
func (suite *OTPTestSuite) TestResetFlow() {
	rec := suite.request(http.MethodPost, "/api/auth/generate-otp", &generateOTPRequest{Mobile: seedOwnerMobile}, "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	code := suite.messenger.lastCode()
	assert.Len(suite.T(), code, 6)

	rec = suite.request(http.MethodPost, "/api/auth/verify-otp", &verifyOTPRequest{Mobile: seedOwnerMobile, OTP: code}, "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	verifyResponse := &verifyOTPResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(verifyResponse))
	assert.NotEmpty(suite.T(), verifyResponse.ResetToken)

	// single use: the same code must be rejected now
	rec = suite.request(http.MethodPost, "/api/auth/verify-otp", &verifyOTPRequest{Mobile: seedOwnerMobile, OTP: code}, "")
	errorResponse := checkErrResponse(&suite.TestSuite, rec)
	assert.Equal(suite.T(), responses.InvalidOTPError.Message, errorResponse.Message)

	rec = suite.request(http.MethodPost, "/api/auth/reset-password", &resetPasswordRequest{
		ResetToken: verifyResponse.ResetToken,
		Password:   "new-password",
	}, "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	resetResponse := &userResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(resetResponse))
	assert.NotEmpty(suite.T(), resetResponse.Token)

	token := suite.loginUser(seedOwnerEmail, "new-password")
	assert.NotEmpty(suite.T(), token)

	// the reset token is cleared after use
	rec = suite.request(http.MethodPost, "/api/auth/reset-password", &resetPasswordRequest{
		ResetToken: verifyResponse.ResetToken,
		Password:   "another-password",
	}, "")
	errorResponse = checkErrResponse(&suite.TestSuite, rec)
	assert.Equal(suite.T(), responses.InvalidResetTokenError.Message, errorResponse.Message)
}

// A code past its window is rejected even when it matches exactly.
func (suite *OTPTestSuite) TestExpiredCodeRejected() {
	otp := &models.OTP{
		Mobile:    seedOwnerMobile,
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	assert.NoError(suite.T(), suite.service.Store.ReplaceOTP(context.Background(), otp))

	rec := suite.request(http.MethodPost, "/api/auth/verify-otp", &verifyOTPRequest{Mobile: seedOwnerMobile, OTP: "123456"}, "")
	errorResponse := checkErrResponse(&suite.TestSuite, rec)
	assert.Equal(suite.T(), responses.InvalidOTPError.Message, errorResponse.Message)
}

// The reset token has its own, longer window; past it the token is dead.
func (suite *OTPTestSuite) TestExpiredResetTokenRejected() {
	ctx := context.Background()
	user, err := suite.service.Store.GetUserByMobile(ctx, seedOwnerMobile)
	assert.NoError(suite.T(), err)

	token, hash, err := security.GenerateResetToken()
	assert.NoError(suite.T(), err)
	user.ResetTokenHash = hash
	user.ResetTokenExpiresAt = bun.NullTime{Time: time.Now().Add(-time.Minute)}
	assert.NoError(suite.T(), suite.service.Store.UpdateUser(ctx, user))

	rec := suite.request(http.MethodPost, "/api/auth/reset-password", &resetPasswordRequest{
		ResetToken: token,
		Password:   "should-not-stick",
	}, "")
	errorResponse := checkErrResponse(&suite.TestSuite, rec)
	assert.Equal(suite.T(), responses.InvalidResetTokenError.Message, errorResponse.Message)
}

// A fresh code replaces any outstanding one for the number.
func (suite *OTPTestSuite) TestRegenerateInvalidatesPreviousCode() {
	rec := suite.request(http.MethodPost, "/api/auth/generate-otp", &generateOTPRequest{Mobile: seedOwnerMobile}, "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	firstCode := suite.messenger.lastCode()

	rec = suite.request(http.MethodPost, "/api/auth/generate-otp", &generateOTPRequest{Mobile: seedOwnerMobile}, "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	secondCode := suite.messenger.lastCode()

	if firstCode != secondCode {
		rec = suite.request(http.MethodPost, "/api/auth/verify-otp", &verifyOTPRequest{Mobile: seedOwnerMobile, OTP: firstCode}, "")
		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	}

	rec = suite.request(http.MethodPost, "/api/auth/verify-otp", &verifyOTPRequest{Mobile: seedOwnerMobile, OTP: secondCode}, "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func TestOTPTestSuite(t *testing.T) {
	suite.Run(t, new(OTPTestSuite))
}
