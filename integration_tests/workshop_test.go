package integration_tests

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/dealerdesk/dealerdesk.go/db/models"
	"github.com/dealerdesk/dealerdesk.go/lib/service"
)

type WorkshopTestSuite struct {
	TestSuite
	service      *service.DealerdeskService
	ownerToken   string
	managerToken string
}

func (suite *WorkshopTestSuite) SetupSuite() {
	svc, err := dealerdeskTestServiceInit(&capturingMessenger{})
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = newTestEcho(svc)
	suite.ownerToken = suite.loginUser(seedOwnerEmail, seedPassword)
	// managers can open tickets but not edit or remove them
	suite.managerToken = suite.loginUser("sunil@example.com", seedPassword)
}

func (suite *WorkshopTestSuite) TestListIsPublic() {
	rec := suite.request(http.MethodGet, "/api/workshop", nil, "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	var tickets []models.WorkshopTicket
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&tickets))
	assert.GreaterOrEqual(suite.T(), len(tickets), 2)
}

func (suite *WorkshopTestSuite) TestTicketLifecycle() {
	rec := suite.request(http.MethodPost, "/api/workshop", map[string]interface{}{
		"vehicle":              "Hero Glamour #4411",
		"customer":             "Mahesh Gupta",
		"service":              "Clutch Replacement",
		"estimated_completion": time.Now().Add(24 * time.Hour),
		"cost":                 3200,
	}, suite.managerToken)
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	created := &models.WorkshopTicket{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(created))
	// status and date default when omitted
	assert.Equal(suite.T(), models.TicketStatusPending, created.Status)
	assert.False(suite.T(), created.Date.IsZero())

	// a manager may open tickets but only the owner can edit them
	status := models.TicketStatusCompleted
	rec = suite.request(http.MethodPut, fmt.Sprintf("/api/workshop/%d", created.ID), map[string]interface{}{
		"status": status,
	}, suite.managerToken)
	assert.Equal(suite.T(), http.StatusForbidden, rec.Code)

	rec = suite.request(http.MethodPut, fmt.Sprintf("/api/workshop/%d", created.ID), map[string]interface{}{
		"status": status,
	}, suite.ownerToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	updated := &models.WorkshopTicket{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(updated))
	assert.Equal(suite.T(), status, updated.Status)
	assert.Equal(suite.T(), created.Customer, updated.Customer)

	rec = suite.request(http.MethodDelete, fmt.Sprintf("/api/workshop/%d", created.ID), nil, suite.ownerToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	deleteResponse := &messageResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(deleteResponse))
	assert.Equal(suite.T(), "Workshop entry removed", deleteResponse.Message)
}

func (suite *WorkshopTestSuite) TestCreateMissingFields() {
	rec := suite.request(http.MethodPost, "/api/workshop", map[string]interface{}{
		"vehicle": "Hero Passion #1100",
	}, suite.managerToken)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *WorkshopTestSuite) TestBadStatusRejected() {
	rec := suite.request(http.MethodPost, "/api/workshop", map[string]interface{}{
		"vehicle":              "Hero Passion #1100",
		"customer":             "Suresh",
		"service":              "Wash",
		"status":               "Lost",
		"estimated_completion": time.Now().Add(time.Hour),
	}, suite.managerToken)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *WorkshopTestSuite) TestMissingTicket() {
	rec := suite.request(http.MethodPut, "/api/workshop/99999", map[string]interface{}{
		"status": models.TicketStatusCompleted,
	}, suite.ownerToken)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func TestWorkshopTestSuite(t *testing.T) {
	suite.Run(t, new(WorkshopTestSuite))
}
